package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"go-blog-api/internal/core/cache"
	"go-blog-api/internal/domain"
	"go-blog-api/internal/repo"
	"go-blog-api/pkg/utils"
)

const (
	cacheKeyPublished  = "posts:published"
	cacheKeySlugPrefix = "post:slug:"
)

// PostService 持有发布状态机的全部规则，仓储只做持久化
type PostService struct {
	posts domain.PostRepository
	cache *cache.Cache // 可为 nil，直连仓储
	ttl   time.Duration
	log   *zap.Logger
}

func NewPostService(posts domain.PostRepository, c *cache.Cache, ttl time.Duration, log *zap.Logger) *PostService {
	return &PostService{posts: posts, cache: c, ttl: ttl, log: log}
}

type CreatePostInput struct {
	Title            string   `json:"title" validate:"required,max=255"`
	Slug             string   `json:"slug" validate:"required,max=255,slug"`
	Excerpt          string   `json:"excerpt"`
	Content          string   `json:"content" validate:"required"`
	FeaturedImageURL string   `json:"featuredImageUrl" validate:"omitempty,max=255"`
	Published        bool     `json:"published"`
	Tags             []string `json:"tags"`
	MetaTitle        string   `json:"metaTitle" validate:"omitempty,max=70"`
	MetaDescription  string   `json:"metaDescription" validate:"omitempty,max=160"`
}

// UpdatePostInput 补丁语义：nil 表示不动该字段。
// omitnil 只放行 nil，字段一旦出现就按创建时的规则校验（omitempty 会把 "" 一并放过）
type UpdatePostInput struct {
	Title            *string   `json:"title" validate:"omitnil,required,max=255"`
	Slug             *string   `json:"slug" validate:"omitnil,required,max=255,slug"`
	Excerpt          *string   `json:"excerpt"`
	Content          *string   `json:"content" validate:"omitnil,required"`
	FeaturedImageURL *string   `json:"featuredImageUrl" validate:"omitnil,max=255"`
	Published        *bool     `json:"published"`
	Tags             *[]string `json:"tags"`
	MetaTitle        *string   `json:"metaTitle" validate:"omitnil,max=70"`
	MetaDescription  *string   `json:"metaDescription" validate:"omitnil,max=160"`
}

func (s *PostService) Create(ctx context.Context, authorID string, in CreatePostInput) (*domain.BlogPost, error) {
	if verr := checkStruct(in); verr != nil {
		return nil, verr
	}

	now := time.Now()
	p := &domain.BlogPost{
		ID:               utils.NewID(),
		Title:            in.Title,
		Slug:             in.Slug,
		Excerpt:          in.Excerpt,
		Content:          in.Content,
		FeaturedImageURL: in.FeaturedImageURL,
		Published:        in.Published,
		AuthorID:         authorID,
		Tags:             in.Tags,
		MetaTitle:        in.MetaTitle,
		MetaDescription:  in.MetaDescription,
		ReadingTime:      ReadingTime(in.Content),
	}
	if in.Published {
		p.PublishedAt = &now
	}

	if err := s.posts.Create(ctx, p); err != nil {
		if repo.IsDuplicate(err) {
			return nil, ErrConflict
		}
		return nil, err
	}
	s.invalidate(ctx, p.Slug)
	return p, nil
}

func (s *PostService) Update(ctx context.Context, id string, in UpdatePostInput) (*domain.BlogPost, error) {
	if verr := checkStruct(in); verr != nil {
		return nil, verr
	}

	p, err := s.posts.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrNotFound
	}
	oldSlug := p.Slug

	if in.Title != nil {
		p.Title = *in.Title
	}
	if in.Slug != nil {
		p.Slug = *in.Slug
	}
	if in.Excerpt != nil {
		p.Excerpt = *in.Excerpt
	}
	if in.Content != nil {
		p.Content = *in.Content
		p.ReadingTime = ReadingTime(*in.Content)
	}
	if in.FeaturedImageURL != nil {
		p.FeaturedImageURL = *in.FeaturedImageURL
	}
	if in.Tags != nil {
		p.Tags = *in.Tags
	}
	if in.MetaTitle != nil {
		p.MetaTitle = *in.MetaTitle
	}
	if in.MetaDescription != nil {
		p.MetaDescription = *in.MetaDescription
	}
	if in.Published != nil {
		// 首次发布打点；取消再发布不重置
		if *in.Published && !p.Published && p.PublishedAt == nil {
			now := time.Now()
			p.PublishedAt = &now
		}
		p.Published = *in.Published
	}

	if err := s.posts.Save(ctx, p); err != nil {
		if repo.IsDuplicate(err) {
			return nil, ErrConflict
		}
		return nil, err
	}
	s.invalidate(ctx, oldSlug, p.Slug)
	return p, nil
}

// SetPublished 发布开关，遵循同一条首发打点规则
func (s *PostService) SetPublished(ctx context.Context, id string, published bool) (*domain.BlogPost, error) {
	return s.Update(ctx, id, UpdatePostInput{Published: &published})
}

// Delete 无条件删除，id 不存在也算成功
func (s *PostService) Delete(ctx context.Context, id string) error {
	p, err := s.posts.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.posts.Delete(ctx, id); err != nil {
		return err
	}
	if p != nil {
		s.invalidate(ctx, p.Slug)
	} else {
		s.invalidate(ctx)
	}
	return nil
}

func (s *PostService) ListAll(ctx context.Context) ([]domain.BlogPost, error) {
	return s.posts.ListAll(ctx)
}

func (s *PostService) ListPublished(ctx context.Context) ([]domain.BlogPost, error) {
	if s.cache == nil {
		return s.posts.ListPublished(ctx)
	}
	out, err := cache.GetOrLoadJSON[[]domain.BlogPost](s.cache, ctx, cacheKeyPublished, s.ttl,
		func(ctx context.Context) (*[]domain.BlogPost, error) {
			posts, e := s.posts.ListPublished(ctx)
			if e != nil {
				return nil, e
			}
			return &posts, nil
		})
	if err != nil {
		return nil, err
	}
	if out == nil {
		return []domain.BlogPost{}, nil
	}
	return *out, nil
}

func (s *PostService) GetByID(ctx context.Context, id string) (*domain.BlogPost, error) {
	p, err := s.posts.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrNotFound
	}
	return p, nil
}

// GetPublicBySlug 公共入口：未发布一律按 NotFound 处理，避免 slug 猜测泄露草稿
func (s *PostService) GetPublicBySlug(ctx context.Context, slug string) (*domain.BlogPost, error) {
	p, err := s.getBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if p == nil || !p.Published {
		return nil, ErrNotFound
	}
	return p, nil
}

func (s *PostService) getBySlug(ctx context.Context, slug string) (*domain.BlogPost, error) {
	if s.cache == nil {
		return s.posts.FindBySlug(ctx, slug)
	}
	return cache.GetOrLoadJSON[domain.BlogPost](s.cache, ctx, cacheKeySlugPrefix+slug, s.ttl,
		func(ctx context.Context) (*domain.BlogPost, error) {
			return s.posts.FindBySlug(ctx, slug)
		})
}

func (s *PostService) invalidate(ctx context.Context, slugs ...string) {
	if s.cache == nil {
		return
	}
	keys := make([]string, 0, len(slugs)+1)
	keys = append(keys, cacheKeyPublished)
	for _, sl := range slugs {
		if sl != "" {
			keys = append(keys, cacheKeySlugPrefix+sl)
		}
	}
	s.cache.Invalidate(ctx, keys...)
}
