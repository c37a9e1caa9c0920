package domain

import (
	"context"
	"time"
)

type ContactMessage struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Email     string    `gorm:"size:255;not null" json:"email"`
	Subject   string    `gorm:"size:255;not null" json:"subject"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	Read      bool      `gorm:"not null;default:false" json:"read"`
	CreatedAt time.Time `json:"createdAt"`
}

func (ContactMessage) TableName() string { return "contact_messages" }

type ContactRepository interface {
	Create(ctx context.Context, m *ContactMessage) error
	FindByID(ctx context.Context, id string) (*ContactMessage, error)
	ListAll(ctx context.Context) ([]ContactMessage, error)
	MarkRead(ctx context.Context, id string) (*ContactMessage, error)
	Delete(ctx context.Context, id string) error
}
