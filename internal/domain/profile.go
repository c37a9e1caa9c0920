package domain

import (
	"context"
	"time"
)

// ProfileSingletonID 固定主键，保证全局至多一行，并让 upsert 走 ON CONFLICT
const ProfileSingletonID = "author-profile"

type AuthorProfile struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	UserID      string    `gorm:"size:36" json:"userId"`
	DisplayName string    `gorm:"size:255;not null" json:"displayName"`
	Bio         string    `gorm:"type:text" json:"bio"`
	AvatarURL   string    `gorm:"size:255" json:"avatarUrl"`
	Location    string    `gorm:"size:255" json:"location"`
	Website     string    `gorm:"size:255" json:"website"`
	Twitter     string    `gorm:"size:255" json:"twitter"`
	Linkedin    string    `gorm:"size:255" json:"linkedin"`
	Github      string    `gorm:"size:255" json:"github"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (AuthorProfile) TableName() string { return "author_profile" }

type ProfileRepository interface {
	Get(ctx context.Context) (*AuthorProfile, error)
	Upsert(ctx context.Context, p *AuthorProfile) error
}
