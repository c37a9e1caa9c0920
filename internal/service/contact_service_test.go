package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-blog-api/internal/repo"
)

func newContactService(t *testing.T) *ContactService {
	t.Helper()
	return NewContactService(repo.NewContactRepo(newTestDB(t)))
}

func validContactInput() ContactInput {
	return ContactInput{
		Name:    "Jane",
		Email:   "jane@example.com",
		Subject: "Question about a post",
		Message: strings.Repeat("x", 20),
	}
}

func TestSubmitContact_MessageBoundary(t *testing.T) {
	svc := newContactService(t)
	ctx := context.Background()

	in := validContactInput()
	in.Message = strings.Repeat("x", 19)
	_, err := svc.Submit(ctx, in)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "message")

	in.Message = strings.Repeat("x", 20)
	m, err := svc.Submit(ctx, in)
	require.NoError(t, err)
	assert.False(t, m.Read)
	assert.NotEmpty(t, m.ID)
}

func TestSubmitContact_Validation(t *testing.T) {
	svc := newContactService(t)
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(*ContactInput)
		field  string
	}{
		{"short name", func(in *ContactInput) { in.Name = "J" }, "name"},
		{"bad email", func(in *ContactInput) { in.Email = "not-an-email" }, "email"},
		{"short subject", func(in *ContactInput) { in.Subject = "hey" }, "subject"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validContactInput()
			tt.mutate(&in)
			_, err := svc.Submit(ctx, in)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Contains(t, verr.Fields, tt.field)
		})
	}
}

func TestMarkRead(t *testing.T) {
	svc := newContactService(t)
	ctx := context.Background()

	m, err := svc.Submit(ctx, validContactInput())
	require.NoError(t, err)

	read, err := svc.MarkRead(ctx, m.ID)
	require.NoError(t, err)
	assert.True(t, read.Read)

	_, err = svc.MarkRead(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteContact_Idempotent(t *testing.T) {
	svc := newContactService(t)
	ctx := context.Background()

	m, err := svc.Submit(ctx, validContactInput())
	require.NoError(t, err)
	require.NoError(t, svc.Delete(ctx, m.ID))
	assert.NoError(t, svc.Delete(ctx, m.ID))

	msgs, err := svc.ListAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, msgs)
}
