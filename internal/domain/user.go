package domain

import (
	"context"
	"time"
)

// User 身份提供方在本地的镜像行，登录成功时 upsert
type User struct {
	ID              string    `gorm:"primaryKey;size:36" json:"id"`
	Email           string    `gorm:"uniqueIndex;size:191" json:"email"`
	FirstName       string    `gorm:"size:64" json:"firstName"`
	LastName        string    `gorm:"size:64" json:"lastName"`
	ProfileImageURL string    `gorm:"size:255" json:"profileImageUrl"`
	PasswordHash    string    `gorm:"size:191" json:"-"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func (User) TableName() string { return "users" }

type UserRepository interface {
	Upsert(ctx context.Context, u *User) error
	FindByID(ctx context.Context, id string) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
}
