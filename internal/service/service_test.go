package service

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"go-blog-api/internal/core/database"
	"go-blog-api/internal/domain"
	"go-blog-api/pkg/utils"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.New(database.Opts{
		Driver:   "sqlite",
		DSN:      "file:" + utils.NewID() + "?mode=memory&cache=shared",
		LogLevel: "silent",
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&domain.User{},
		&domain.AuthorProfile{},
		&domain.BlogPost{},
		&domain.Image{},
		&domain.ContactMessage{},
	))
	return db
}
