package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"go-blog-api/internal/domain"
)

type PostRepo struct{ db *gorm.DB }

func NewPostRepo(db *gorm.DB) *PostRepo { return &PostRepo{db: db} }

func (r *PostRepo) Create(ctx context.Context, p *domain.BlogPost) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *PostRepo) Save(ctx context.Context, p *domain.BlogPost) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *PostRepo) FindByID(ctx context.Context, id string) (*domain.BlogPost, error) {
	var p domain.BlogPost
	err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PostRepo) FindBySlug(ctx context.Context, slug string) (*domain.BlogPost, error) {
	var p domain.BlogPost
	err := r.db.WithContext(ctx).First(&p, "slug = ?", slug).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PostRepo) ListAll(ctx context.Context) ([]domain.BlogPost, error) {
	var posts []domain.BlogPost
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&posts).Error
	return posts, err
}

// ListPublished 按发布时间倒序；publishedAt 为空的排最后
func (r *PostRepo) ListPublished(ctx context.Context) ([]domain.BlogPost, error) {
	var posts []domain.BlogPost
	err := r.db.WithContext(ctx).
		Where("published = ?", true).
		Order("published_at IS NULL").
		Order("published_at DESC").
		Find(&posts).Error
	return posts, err
}

func (r *PostRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.BlogPost{}).Error
}
