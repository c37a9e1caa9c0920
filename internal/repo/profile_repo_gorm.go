package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"go-blog-api/internal/domain"
)

type ProfileRepo struct{ db *gorm.DB }

func NewProfileRepo(db *gorm.DB) *ProfileRepo { return &ProfileRepo{db: db} }

func (r *ProfileRepo) Get(ctx context.Context) (*domain.AuthorProfile, error) {
	var p domain.AuthorProfile
	err := r.db.WithContext(ctx).First(&p, "id = ?", domain.ProfileSingletonID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Upsert 固定主键 + ON CONFLICT DO UPDATE，读-判-写的竞态在存储层消除
func (r *ProfileRepo) Upsert(ctx context.Context, p *domain.AuthorProfile) error {
	p.ID = domain.ProfileSingletonID
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"user_id", "display_name", "bio", "avatar_url", "location",
			"website", "twitter", "linkedin", "github", "updated_at",
		}),
	}).Create(p).Error
}
