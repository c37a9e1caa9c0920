package domain

import (
	"context"
	"time"
)

type BlogPost struct {
	ID               string     `gorm:"primaryKey;size:36" json:"id"`
	Title            string     `gorm:"size:255;not null" json:"title"`
	Slug             string     `gorm:"uniqueIndex;size:255;not null" json:"slug"`
	Excerpt          string     `gorm:"type:text" json:"excerpt"`
	Content          string     `gorm:"type:text;not null" json:"content"`
	FeaturedImageURL string     `gorm:"size:255" json:"featuredImageUrl"`
	Published        bool       `gorm:"not null;default:false;index" json:"published"`
	AuthorID         string     `gorm:"size:36;index" json:"authorId"`
	Tags             []string   `gorm:"serializer:json" json:"tags"`
	MetaTitle        string     `gorm:"size:70" json:"metaTitle"`
	MetaDescription  string     `gorm:"size:160" json:"metaDescription"`
	ReadingTime      string     `gorm:"size:32" json:"readingTime"` // 派生字段，服务层计算
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        time.Time  `json:"updatedAt"`
	PublishedAt      *time.Time `json:"publishedAt"` // 仅首次发布时写入
}

func (BlogPost) TableName() string { return "blog_posts" }

type PostRepository interface {
	Create(ctx context.Context, p *BlogPost) error
	Save(ctx context.Context, p *BlogPost) error
	FindByID(ctx context.Context, id string) (*BlogPost, error)
	FindBySlug(ctx context.Context, slug string) (*BlogPost, error)
	ListAll(ctx context.Context) ([]BlogPost, error)
	ListPublished(ctx context.Context) ([]BlogPost, error)
	Delete(ctx context.Context, id string) error
}
