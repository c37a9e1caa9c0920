package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"go-blog-api/internal/domain"
)

type ContactRepo struct{ db *gorm.DB }

func NewContactRepo(db *gorm.DB) *ContactRepo { return &ContactRepo{db: db} }

func (r *ContactRepo) Create(ctx context.Context, m *domain.ContactMessage) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *ContactRepo) FindByID(ctx context.Context, id string) (*domain.ContactMessage, error) {
	var m domain.ContactMessage
	err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *ContactRepo) ListAll(ctx context.Context) ([]domain.ContactMessage, error) {
	var msgs []domain.ContactMessage
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&msgs).Error
	return msgs, err
}

func (r *ContactRepo) MarkRead(ctx context.Context, id string) (*domain.ContactMessage, error) {
	res := r.db.WithContext(ctx).Model(&domain.ContactMessage{}).
		Where("id = ?", id).Update("read", true)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return r.FindByID(ctx, id)
}

func (r *ContactRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.ContactMessage{}).Error
}
