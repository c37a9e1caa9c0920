package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"go-blog-api/internal/service"
	"go-blog-api/internal/transport/http/middleware"
	"go-blog-api/internal/transport/http/response"
)

type ProfileHandler struct {
	svc *service.ProfileService
	log *zap.Logger
}

func NewProfileHandler(svc *service.ProfileService, log *zap.Logger) *ProfileHandler {
	return &ProfileHandler{svc: svc, log: log}
}

// Get 公开接口；没有资料行时返回 JSON null
func (h *ProfileHandler) Get(c *gin.Context) {
	profile, err := h.svc.Get(c.Request.Context())
	if err != nil {
		handleError(c, h.log, err, "", "Failed to fetch author profile")
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (h *ProfileHandler) Upsert(c *gin.Context) {
	var in service.ProfileInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	profile, err := h.svc.Upsert(c.Request.Context(), c.GetString(middleware.KeyUserID), in)
	if err != nil {
		handleError(c, h.log, err, "", "Failed to update author profile")
		return
	}
	c.JSON(http.StatusOK, profile)
}
