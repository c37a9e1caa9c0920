package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "go.uber.org/automaxprocs"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"go-blog-api/internal/core/auth"
	"go-blog-api/internal/core/cache"
	"go-blog-api/internal/core/config"
	"go-blog-api/internal/core/database"
	"go-blog-api/internal/core/logger"
	"go-blog-api/internal/core/server"
	"go-blog-api/internal/domain"
	"go-blog-api/internal/repo"
	"go-blog-api/internal/service"
	"go-blog-api/internal/transport/http/handler"
	"go-blog-api/internal/transport/http/router"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load(os.Getenv("CONFIG_PATH"))

	var log *zap.Logger
	var cleanup func()
	if cfg.Log.File != "" {
		log, cleanup = logger.NewWithRotate(cfg.Log.Level, cfg.Log.JSON, cfg.Log.File,
			cfg.Log.MaxSizeMB, cfg.Log.MaxBackups, cfg.Log.MaxAgeDays)
	} else {
		log, cleanup = logger.New(cfg.Log.Level, cfg.Log.JSON)
	}
	defer cleanup()

	db := mustOpenDB(cfg, log)
	log.Info("database connected", zap.String("driver", cfg.DB.Driver))

	if cfg.DB.AutoMigrate {
		if err := db.AutoMigrate(
			&domain.User{},
			&domain.AuthorProfile{},
			&domain.BlogPost{},
			&domain.Image{},
			&domain.ContactMessage{},
		); err != nil {
			log.Fatal("automigrate failed", zap.Error(err))
		}
		log.Info("automigrate done")
	}

	jwter := &auth.JWTer{
		Secret: []byte(cfg.JWT.Secret),
		Issuer: cfg.JWT.Issuer,
		TTL:    time.Duration(cfg.JWT.AccessTokenTTLMin) * time.Minute,
	}

	var rdb *cache.Cache
	if cfg.Redis.Enable {
		rdb = cache.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		log.Info("redis cache enabled", zap.String("addr", cfg.Redis.Addr))
	}

	postSvc := service.NewPostService(repo.NewPostRepo(db), rdb,
		time.Duration(cfg.Cache.PublishedTTLSec)*time.Second, log)
	profileSvc := service.NewProfileService(repo.NewProfileRepo(db))
	imageSvc := service.NewImageService(repo.NewImageRepo(db))
	contactSvc := service.NewContactService(repo.NewContactRepo(db))
	identitySvc := service.NewIdentityService(repo.NewUserRepo(db), jwter)

	r := router.NewAPIEngine(router.Deps{
		Log:     log,
		JWTer:   jwter,
		Limits:  cfg.Limits,
		Auth:    handler.NewAuthHandler(identitySvc, log),
		Posts:   handler.NewPostHandler(postSvc, log),
		Profile: handler.NewProfileHandler(profileSvc, log),
		Images:  handler.NewImageHandler(imageSvc, log),
		Contact: handler.NewContactHandler(contactSvc, log),
	})

	addr := server.Addr(cfg.App.HTTP.Host, cfg.App.HTTP.Port)
	srv := server.Build(
		addr, r,
		time.Duration(cfg.App.HTTP.ReadTimeoutSec)*time.Second,
		time.Duration(cfg.App.HTTP.WriteTimeoutSec)*time.Second,
		time.Duration(cfg.App.HTTP.IdleTimeoutSec)*time.Second,
	)

	log.Info("api starting", zap.String("addr", addr))
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("api start FAILED", zap.Error(err))
		}
	}()

	// 优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctx)
	log.Info("api stopped gracefully")
}

func mustOpenDB(cfg *config.Config, l *zap.Logger) *gorm.DB {
	db, err := database.New(database.Opts{
		Driver:             cfg.DB.Driver,
		DSN:                cfg.DB.DSN,
		MaxOpenConns:       cfg.DB.MaxOpenConns,
		MaxIdleConns:       cfg.DB.MaxIdleConns,
		ConnMaxLifetimeMin: cfg.DB.ConnMaxLifetimeMin,
		LogLevel:           cfg.DB.LogLevel,
	})
	if err != nil {
		l.Fatal("db open", zap.Error(err))
	}
	return db
}
