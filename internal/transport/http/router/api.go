package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"go-blog-api/internal/core/auth"
	"go-blog-api/internal/core/config"
	"go-blog-api/internal/transport/http/handler"
	mdw "go-blog-api/internal/transport/http/middleware"
)

type Deps struct {
	Log     *zap.Logger
	JWTer   *auth.JWTer
	Limits  config.Limits
	Auth    *handler.AuthHandler
	Posts   *handler.PostHandler
	Profile *handler.ProfileHandler
	Images  *handler.ImageHandler
	Contact *handler.ContactHandler
}

func NewAPIEngine(d Deps) *gin.Engine {
	r := gin.New()

	r.Use(
		mdw.RequestID(),
		cors.Default(),
		mdw.RateLimit(rate.Limit(d.Limits.RateRPS), d.Limits.RateBurst),
		mdw.ConcurrencyLimit(int64(d.Limits.MaxConcurrent)),
		mdw.MaxBodyBytes(int64(d.Limits.MaxBodyMB)<<20),
		mdw.Timeout(time.Duration(d.Limits.StorageTimeoutSec)*time.Second),
		ginzap.RecoveryWithZap(d.Log, true),
		mdw.Metrics(),
		mdw.AccessLog(d.Log),
	)

	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")

	// 公开读
	api.POST("/auth/login", d.Auth.Login)
	api.GET("/posts/published", d.Posts.ListPublished)
	api.GET("/posts/slug/:slug", d.Posts.GetPublicBySlug)
	api.GET("/author", d.Profile.Get)
	api.GET("/images/:id", d.Images.Render)
	api.POST("/contact", d.Contact.Submit)

	// 管理面：统一走鉴权
	authed := api.Group("")
	authed.Use(mdw.AuthJWT(d.JWTer))

	authed.GET("/auth/user", d.Auth.CurrentUser)

	authed.GET("/posts", d.Posts.ListAll)
	authed.GET("/posts/:id", d.Posts.GetByID)
	authed.POST("/posts", d.Posts.Create)
	authed.PUT("/posts/:id", d.Posts.Update)
	authed.PATCH("/posts/:id", d.Posts.TogglePublish)
	authed.DELETE("/posts/:id", d.Posts.Delete)

	authed.PUT("/author", d.Profile.Upsert)

	authed.GET("/images", d.Images.ListAll)
	authed.POST("/images", d.Images.Create)
	authed.DELETE("/images/:id", d.Images.Delete)

	authed.GET("/contact", d.Contact.ListAll)
	authed.PATCH("/contact/:id/read", d.Contact.MarkRead)
	authed.DELETE("/contact/:id", d.Contact.Delete)

	return r
}
