package domain

import (
	"context"
	"time"
)

// Image 以 base64 存库（data 不含 data-URI 前缀），创建后不可变
type Image struct {
	ID         string    `gorm:"primaryKey;size:36" json:"id"`
	Filename   string    `gorm:"size:255;not null" json:"filename"`
	MimeType   string    `gorm:"size:100;not null" json:"mimeType"`
	Data       string    `gorm:"not null" json:"data"` // 不钉类型，各方言自选无界文本
	UploadedBy string    `gorm:"size:36" json:"uploadedBy"`
	CreatedAt  time.Time `json:"createdAt"`
}

func (Image) TableName() string { return "images" }

type ImageRepository interface {
	Create(ctx context.Context, img *Image) error
	FindByID(ctx context.Context, id string) (*Image, error)
	ListAll(ctx context.Context) ([]Image, error)
	Delete(ctx context.Context, id string) error
}
