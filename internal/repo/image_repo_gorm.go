package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"go-blog-api/internal/domain"
)

type ImageRepo struct{ db *gorm.DB }

func NewImageRepo(db *gorm.DB) *ImageRepo { return &ImageRepo{db: db} }

func (r *ImageRepo) Create(ctx context.Context, img *domain.Image) error {
	return r.db.WithContext(ctx).Create(img).Error
}

func (r *ImageRepo) FindByID(ctx context.Context, id string) (*domain.Image, error) {
	var img domain.Image
	err := r.db.WithContext(ctx).First(&img, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &img, nil
}

func (r *ImageRepo) ListAll(ctx context.Context) ([]domain.Image, error) {
	var imgs []domain.Image
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&imgs).Error
	return imgs, err
}

func (r *ImageRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Image{}).Error
}
