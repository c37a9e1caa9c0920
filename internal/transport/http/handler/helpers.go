package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"go-blog-api/internal/service"
	"go-blog-api/internal/transport/http/response"
)

// handleError 服务层错误统一映射；存储层失败只记日志，不外泄细节
func handleError(c *gin.Context, l *zap.Logger, err error, notFound, internal string) {
	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		response.ValidationFailed(c, verr.Fields)
	case errors.Is(err, service.ErrNotFound):
		if notFound == "" {
			notFound = "Not found"
		}
		response.Error(c, http.StatusNotFound, notFound)
	case errors.Is(err, service.ErrConflict):
		response.Error(c, http.StatusConflict, "Slug already exists")
	default:
		l.Error(internal, zap.Error(err), zap.String("path", c.Request.URL.Path))
		response.Error(c, http.StatusInternalServerError, internal)
	}
}

// nonNil 空列表序列化成 [] 而不是 null
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
