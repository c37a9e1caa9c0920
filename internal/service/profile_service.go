package service

import (
	"context"

	"go-blog-api/internal/domain"
)

type ProfileService struct {
	profiles domain.ProfileRepository
}

func NewProfileService(profiles domain.ProfileRepository) *ProfileService {
	return &ProfileService{profiles: profiles}
}

type ProfileInput struct {
	DisplayName string `json:"displayName" validate:"required,max=255"`
	Bio         string `json:"bio"`
	AvatarURL   string `json:"avatarUrl" validate:"omitempty,max=255"`
	Location    string `json:"location" validate:"omitempty,max=255"`
	Website     string `json:"website" validate:"omitempty,max=255"`
	Twitter     string `json:"twitter" validate:"omitempty,max=255"`
	Linkedin    string `json:"linkedin" validate:"omitempty,max=255"`
	Github      string `json:"github" validate:"omitempty,max=255"`
}

// Get 没有资料行不算错误，返回 (nil, nil)
func (s *ProfileService) Get(ctx context.Context) (*domain.AuthorProfile, error) {
	return s.profiles.Get(ctx)
}

// Upsert 单行表：存储层原子 upsert，调用两次也只会有一行
func (s *ProfileService) Upsert(ctx context.Context, userID string, in ProfileInput) (*domain.AuthorProfile, error) {
	if verr := checkStruct(in); verr != nil {
		return nil, verr
	}
	p := &domain.AuthorProfile{
		UserID:      userID,
		DisplayName: in.DisplayName,
		Bio:         in.Bio,
		AvatarURL:   in.AvatarURL,
		Location:    in.Location,
		Website:     in.Website,
		Twitter:     in.Twitter,
		Linkedin:    in.Linkedin,
		Github:      in.Github,
	}
	if err := s.profiles.Upsert(ctx, p); err != nil {
		return nil, err
	}
	return s.profiles.Get(ctx)
}
