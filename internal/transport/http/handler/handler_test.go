package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"go-blog-api/internal/core/auth"
	"go-blog-api/internal/core/config"
	"go-blog-api/internal/core/database"
	"go-blog-api/internal/domain"
	"go-blog-api/internal/repo"
	"go-blog-api/internal/service"
	"go-blog-api/internal/transport/http/handler"
	"go-blog-api/internal/transport/http/router"
	"go-blog-api/pkg/utils"
)

type testAPI struct {
	engine *gin.Engine
	jwter  *auth.JWTer
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()
	gin.SetMode(gin.TestMode)

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

	log := zap.NewNop()
	jwter := &auth.JWTer{Secret: []byte("test-secret"), Issuer: "test", TTL: time.Hour}

	postSvc := service.NewPostService(repo.NewPostRepo(db), nil, time.Minute, log)
	profileSvc := service.NewProfileService(repo.NewProfileRepo(db))
	imageSvc := service.NewImageService(repo.NewImageRepo(db))
	contactSvc := service.NewContactService(repo.NewContactRepo(db))
	identitySvc := service.NewIdentityService(repo.NewUserRepo(db), jwter)

	engine := router.NewAPIEngine(router.Deps{
		Log:   log,
		JWTer: jwter,
		Limits: config.Limits{
			RateRPS: 1000, RateBurst: 1000, MaxConcurrent: 100,
			MaxBodyMB: 16, StorageTimeoutSec: 5,
		},
		Auth:    handler.NewAuthHandler(identitySvc, log),
		Posts:   handler.NewPostHandler(postSvc, log),
		Profile: handler.NewProfileHandler(profileSvc, log),
		Images:  handler.NewImageHandler(imageSvc, log),
		Contact: handler.NewContactHandler(contactSvc, log),
	})
	return &testAPI{engine: engine, jwter: jwter}
}

func (a *testAPI) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	a.engine.ServeHTTP(w, req)
	return w
}

func (a *testAPI) login(t *testing.T) string {
	t.Helper()
	w := a.do(t, http.MethodPost, "/api/auth/login", "", gin.H{
		"email": "author@example.com", "password": "secret1", "firstName": "Jane",
	})
	require.Equal(t, http.StatusOK, w.Code)
	var res struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	require.NotEmpty(t, res.Token)
	return res.Token
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v))
	return v
}

func postBody(slug string, published bool) gin.H {
	return gin.H{
		"title":     "Hello World",
		"slug":      slug,
		"content":   strings.TrimSpace(strings.Repeat("word ", 250)),
		"published": published,
	}
}
