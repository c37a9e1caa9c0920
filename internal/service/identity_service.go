package service

import (
	"context"
	"errors"
	"strings"

	"go-blog-api/internal/core/auth"
	"go-blog-api/internal/domain"
	"go-blog-api/pkg/utils"
)

// IdentityService 身份提供方接缝：签发令牌并维护本地 User 镜像。
// 首次出现的邮箱自动注册（单作者系统，第一个登录的就是作者）。
type IdentityService struct {
	users domain.UserRepository
	jwter *auth.JWTer
}

func NewIdentityService(users domain.UserRepository, jwter *auth.JWTer) *IdentityService {
	return &IdentityService{users: users, jwter: jwter}
}

type LoginInput struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=6"`
	FirstName string `json:"firstName" validate:"omitempty,max=64"`
	LastName  string `json:"lastName" validate:"omitempty,max=64"`
}

type LoginResult struct {
	Token string       `json:"token"`
	IsNew bool         `json:"isNew"`
	User  *domain.User `json:"user"`
}

var ErrInvalidCredentials = errors.New("invalid credentials")

func (s *IdentityService) Login(ctx context.Context, in LoginInput) (*LoginResult, error) {
	if verr := checkStruct(in); verr != nil {
		return nil, verr
	}
	email := strings.TrimSpace(strings.ToLower(in.Email))

	u, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	isNew := u == nil
	if isNew {
		firstName := strings.TrimSpace(in.FirstName)
		if firstName == "" {
			if at := strings.IndexByte(email, '@'); at > 0 {
				firstName = email[:at]
			}
		}
		u = &domain.User{
			ID:           utils.NewID(),
			Email:        email,
			FirstName:    firstName,
			LastName:     strings.TrimSpace(in.LastName),
			PasswordHash: utils.HashPassword(in.Password),
		}
	} else if !utils.CheckPassword(in.Password, u.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	// 每次认证成功都刷新镜像行
	if err := s.users.Upsert(ctx, u); err != nil {
		// 并发注册撞唯一键 → 再查一次
		if !isNew {
			return nil, err
		}
		u2, e2 := s.users.FindByEmail(ctx, email)
		if e2 != nil || u2 == nil {
			return nil, err
		}
		u = u2
		isNew = false
	}

	name := strings.TrimSpace(u.FirstName + " " + u.LastName)
	token, err := s.jwter.Issue(u.ID, u.Email, name, u.ProfileImageURL)
	if err != nil {
		return nil, err
	}
	return &LoginResult{Token: token, IsNew: isNew, User: u}, nil
}

func (s *IdentityService) CurrentUser(ctx context.Context, uid string) (*domain.User, error) {
	u, err := s.users.FindByID(ctx, uid)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrNotFound
	}
	return u, nil
}
