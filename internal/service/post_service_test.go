package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"go-blog-api/internal/repo"
)

func newPostService(t *testing.T) *PostService {
	t.Helper()
	db := newTestDB(t)
	return NewPostService(repo.NewPostRepo(db), nil, time.Minute, zap.NewNop())
}

func validCreateInput() CreatePostInput {
	return CreatePostInput{
		Title:   "Hello World",
		Slug:    "hello-world",
		Content: strings.TrimSpace(strings.Repeat("word ", 250)),
	}
}

func TestCreatePost_Draft(t *testing.T) {
	svc := newPostService(t)
	ctx := context.Background()

	p, err := svc.Create(ctx, "author-1", validCreateInput())
	require.NoError(t, err)

	assert.NotEmpty(t, p.ID)
	assert.Equal(t, "2 min read", p.ReadingTime)
	assert.False(t, p.Published)
	assert.Nil(t, p.PublishedAt)
	assert.Equal(t, "author-1", p.AuthorID)
}

func TestCreatePost_PublishedStampsPublishedAt(t *testing.T) {
	svc := newPostService(t)
	ctx := context.Background()

	in := validCreateInput()
	in.Published = true
	before := time.Now()

	p, err := svc.Create(ctx, "author-1", in)
	require.NoError(t, err)
	require.NotNil(t, p.PublishedAt)
	assert.WithinDuration(t, before, *p.PublishedAt, 5*time.Second)
}

func TestCreatePost_Validation(t *testing.T) {
	svc := newPostService(t)
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(*CreatePostInput)
		field  string
	}{
		{"missing title", func(in *CreatePostInput) { in.Title = "" }, "title"},
		{"missing slug", func(in *CreatePostInput) { in.Slug = "" }, "slug"},
		{"missing content", func(in *CreatePostInput) { in.Content = "" }, "content"},
		{"uppercase slug", func(in *CreatePostInput) { in.Slug = "Hello-World" }, "slug"},
		{"slug with spaces", func(in *CreatePostInput) { in.Slug = "hello world" }, "slug"},
		{"slug trailing hyphen", func(in *CreatePostInput) { in.Slug = "hello-" }, "slug"},
		{"meta title too long", func(in *CreatePostInput) { in.MetaTitle = strings.Repeat("x", 71) }, "metaTitle"},
		{"meta description too long", func(in *CreatePostInput) { in.MetaDescription = strings.Repeat("x", 161) }, "metaDescription"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validCreateInput()
			tt.mutate(&in)
			_, err := svc.Create(ctx, "author-1", in)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Contains(t, verr.Fields, tt.field)
		})
	}
}

func TestCreatePost_DuplicateSlug(t *testing.T) {
	svc := newPostService(t)
	ctx := context.Background()

	first, err := svc.Create(ctx, "author-1", validCreateInput())
	require.NoError(t, err)

	in := validCreateInput()
	in.Title = "Another"
	_, err = svc.Create(ctx, "author-1", in)
	assert.ErrorIs(t, err, ErrConflict)

	// 第一篇不受影响
	got, err := svc.GetByID(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, "Hello World", got.Title)
}

func TestUpdatePost_RejectsPresentButEmptyFields(t *testing.T) {
	svc := newPostService(t)
	ctx := context.Background()

	p, err := svc.Create(ctx, "author-1", validCreateInput())
	require.NoError(t, err)

	// 字段出现但为空：不能被当成"没传"放过
	empty := ""
	_, err = svc.Update(ctx, p.ID, UpdatePostInput{Title: &empty, Slug: &empty, Content: &empty})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "title")
	assert.Contains(t, verr.Fields, "slug")
	assert.Contains(t, verr.Fields, "content")

	// 原帖不受影响
	got, err := svc.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Hello World", got.Title)
	assert.Equal(t, "hello-world", got.Slug)
	assert.NotEmpty(t, got.Content)

	// nil 仍然是"不动该字段"
	title := "Renamed"
	updated, err := svc.Update(ctx, p.ID, UpdatePostInput{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Title)
	assert.Equal(t, "hello-world", updated.Slug)
}

func TestUpdatePost_NotFound(t *testing.T) {
	svc := newPostService(t)
	title := "New"
	_, err := svc.Update(context.Background(), "missing", UpdatePostInput{Title: &title})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdatePost_RecomputesReadingTime(t *testing.T) {
	svc := newPostService(t)
	ctx := context.Background()

	p, err := svc.Create(ctx, "author-1", validCreateInput())
	require.NoError(t, err)
	require.Equal(t, "2 min read", p.ReadingTime)

	longer := strings.TrimSpace(strings.Repeat("word ", 450))
	updated, err := svc.Update(ctx, p.ID, UpdatePostInput{Content: &longer})
	require.NoError(t, err)
	assert.Equal(t, "3 min read", updated.ReadingTime)

	// 不带 content 的补丁不动 readingTime
	title := "Renamed"
	updated, err = svc.Update(ctx, p.ID, UpdatePostInput{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "3 min read", updated.ReadingTime)
	assert.Equal(t, "Renamed", updated.Title)
}

func TestFirstPublishStamp(t *testing.T) {
	svc := newPostService(t)
	ctx := context.Background()

	p, err := svc.Create(ctx, "author-1", validCreateInput())
	require.NoError(t, err)
	require.Nil(t, p.PublishedAt)

	published, err := svc.SetPublished(ctx, p.ID, true)
	require.NoError(t, err)
	require.NotNil(t, published.PublishedAt)
	firstStamp := *published.PublishedAt

	// 取消发布不清空
	unpublished, err := svc.SetPublished(ctx, p.ID, false)
	require.NoError(t, err)
	assert.False(t, unpublished.Published)
	require.NotNil(t, unpublished.PublishedAt)

	// 再次发布不重置首发时间
	republished, err := svc.SetPublished(ctx, p.ID, true)
	require.NoError(t, err)
	require.NotNil(t, republished.PublishedAt)
	assert.True(t, firstStamp.Equal(*republished.PublishedAt))
}

func TestUpdatePost_DuplicateSlug(t *testing.T) {
	svc := newPostService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, "author-1", validCreateInput())
	require.NoError(t, err)

	in := validCreateInput()
	in.Slug = "second-post"
	second, err := svc.Create(ctx, "author-1", in)
	require.NoError(t, err)

	taken := "hello-world"
	_, err = svc.Update(ctx, second.ID, UpdatePostInput{Slug: &taken})
	assert.ErrorIs(t, err, ErrConflict)
}

func TestDeletePost_Idempotent(t *testing.T) {
	svc := newPostService(t)
	ctx := context.Background()

	p, err := svc.Create(ctx, "author-1", validCreateInput())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, p.ID))
	_, err = svc.GetByID(ctx, p.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	// 不存在的 id 也返回成功
	assert.NoError(t, svc.Delete(ctx, "missing"))
}

func TestListPublished_ExcludesDraftsAndOrders(t *testing.T) {
	svc := newPostService(t)
	ctx := context.Background()

	mk := func(slug string, published bool) {
		in := validCreateInput()
		in.Slug = slug
		in.Published = published
		_, err := svc.Create(ctx, "author-1", in)
		require.NoError(t, err)
		time.Sleep(5 * time.Millisecond)
	}
	mk("draft-post", false)
	mk("first-published", true)
	mk("second-published", true)

	published, err := svc.ListPublished(ctx)
	require.NoError(t, err)
	require.Len(t, published, 2)
	assert.Equal(t, "second-published", published[0].Slug)
	assert.Equal(t, "first-published", published[1].Slug)

	all, err := svc.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
	assert.Equal(t, "second-published", all[0].Slug) // createdAt 倒序
}

func TestGetPublicBySlug_HidesDrafts(t *testing.T) {
	svc := newPostService(t)
	ctx := context.Background()

	p, err := svc.Create(ctx, "author-1", validCreateInput())
	require.NoError(t, err)

	_, err = svc.GetPublicBySlug(ctx, p.Slug)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.GetPublicBySlug(ctx, "no-such-slug")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.SetPublished(ctx, p.ID, true)
	require.NoError(t, err)

	got, err := svc.GetPublicBySlug(ctx, p.Slug)
	require.NoError(t, err)
	assert.Equal(t, p.ID, got.ID)
}
