package service

import (
	"context"

	"go-blog-api/internal/domain"
	"go-blog-api/pkg/utils"
)

type ContactService struct {
	messages domain.ContactRepository
}

func NewContactService(messages domain.ContactRepository) *ContactService {
	return &ContactService{messages: messages}
}

type ContactInput struct {
	Name    string `json:"name" validate:"required,min=2,max=255"`
	Email   string `json:"email" validate:"required,email,max=255"`
	Subject string `json:"subject" validate:"required,min=5,max=255"`
	Message string `json:"message" validate:"required,min=20"`
}

func (s *ContactService) Submit(ctx context.Context, in ContactInput) (*domain.ContactMessage, error) {
	if verr := checkStruct(in); verr != nil {
		return nil, verr
	}
	m := &domain.ContactMessage{
		ID:      utils.NewID(),
		Name:    in.Name,
		Email:   in.Email,
		Subject: in.Subject,
		Message: in.Message,
	}
	if err := s.messages.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *ContactService) MarkRead(ctx context.Context, id string) (*domain.ContactMessage, error) {
	m, err := s.messages.MarkRead(ctx, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, ErrNotFound
	}
	return m, nil
}

func (s *ContactService) ListAll(ctx context.Context) ([]domain.ContactMessage, error) {
	return s.messages.ListAll(ctx)
}

func (s *ContactService) Delete(ctx context.Context, id string) error {
	return s.messages.Delete(ctx, id)
}
