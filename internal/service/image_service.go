package service

import (
	"context"
	"encoding/base64"
	"regexp"

	"go-blog-api/internal/domain"
	"go-blog-api/pkg/utils"
)

const (
	maxImageBytes  = 5 << 20 // 解码后上限 5MiB
	maxFilenameLen = 255
)

var allowedMimeTypes = map[string]struct{}{
	"image/jpeg":    {},
	"image/png":     {},
	"image/gif":     {},
	"image/webp":    {},
	"image/svg+xml": {},
}

var (
	dataURIPrefix  = regexp.MustCompile(`^data:image/[a-zA-Z+]+;base64,`)
	base64Alphabet = regexp.MustCompile(`^[A-Za-z0-9+/=]+$`)
	unsafeFilename = regexp.MustCompile(`[^a-zA-Z0-9._-]`)
)

type ImageService struct {
	images domain.ImageRepository
}

func NewImageService(images domain.ImageRepository) *ImageService {
	return &ImageService{images: images}
}

type CreateImageInput struct {
	Filename string `json:"filename" validate:"required"`
	MimeType string `json:"mimeType" validate:"required"`
	Data     string `json:"data" validate:"required"`
}

func (s *ImageService) Create(ctx context.Context, uploadedBy string, in CreateImageInput) (*domain.Image, error) {
	if verr := checkStruct(in); verr != nil {
		return nil, verr
	}
	if _, ok := allowedMimeTypes[in.MimeType]; !ok {
		return nil, fieldError("mimeType", "must be one of JPEG, PNG, GIF, WebP, SVG")
	}

	clean := dataURIPrefix.ReplaceAllString(in.Data, "")
	if !base64Alphabet.MatchString(clean) {
		return nil, fieldError("data", "must be valid base64")
	}
	raw, err := base64.StdEncoding.DecodeString(clean)
	if err != nil {
		return nil, fieldError("data", "must be valid base64")
	}
	if len(raw) > maxImageBytes {
		return nil, fieldError("data", "image too large, maximum size is 5MB")
	}

	filename := unsafeFilename.ReplaceAllString(in.Filename, "_")
	if len(filename) > maxFilenameLen {
		filename = filename[:maxFilenameLen]
	}

	img := &domain.Image{
		ID:         utils.NewID(),
		Filename:   filename,
		MimeType:   in.MimeType,
		Data:       clean,
		UploadedBy: uploadedBy,
	}
	if err := s.images.Create(ctx, img); err != nil {
		return nil, err
	}
	return img, nil
}

// Render 返回解码后的二进制和 mime，公共访问走长缓存
func (s *ImageService) Render(ctx context.Context, id string) (string, []byte, error) {
	img, err := s.images.FindByID(ctx, id)
	if err != nil {
		return "", nil, err
	}
	if img == nil {
		return "", nil, ErrNotFound
	}
	raw, err := base64.StdEncoding.DecodeString(img.Data)
	if err != nil {
		return "", nil, err
	}
	return img.MimeType, raw, nil
}

func (s *ImageService) ListAll(ctx context.Context) ([]domain.Image, error) {
	return s.images.ListAll(ctx)
}

func (s *ImageService) Delete(ctx context.Context, id string) error {
	return s.images.Delete(ctx, id)
}
