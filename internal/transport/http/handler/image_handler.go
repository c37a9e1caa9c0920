package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"go-blog-api/internal/service"
	"go-blog-api/internal/transport/http/middleware"
	"go-blog-api/internal/transport/http/response"
)

type ImageHandler struct {
	svc *service.ImageService
	log *zap.Logger
}

func NewImageHandler(svc *service.ImageService, log *zap.Logger) *ImageHandler {
	return &ImageHandler{svc: svc, log: log}
}

func (h *ImageHandler) ListAll(c *gin.Context) {
	imgs, err := h.svc.ListAll(c.Request.Context())
	if err != nil {
		handleError(c, h.log, err, "", "Failed to fetch images")
		return
	}
	c.JSON(http.StatusOK, nonNil(imgs))
}

// Render 公开出图：解码后的二进制 + 长缓存
func (h *ImageHandler) Render(c *gin.Context) {
	mime, raw, err := h.svc.Render(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleError(c, h.log, err, "Image not found", "Failed to fetch image")
		return
	}
	c.Header("Cache-Control", "public, max-age=31536000")
	c.Data(http.StatusOK, mime, raw)
}

func (h *ImageHandler) Create(c *gin.Context) {
	var in service.CreateImageInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	img, err := h.svc.Create(c.Request.Context(), c.GetString(middleware.KeyUserID), in)
	if err != nil {
		handleError(c, h.log, err, "", "Failed to upload image")
		return
	}
	c.JSON(http.StatusCreated, img)
}

func (h *ImageHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		handleError(c, h.log, err, "", "Failed to delete image")
		return
	}
	c.Status(http.StatusNoContent)
}
