package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"go-blog-api/internal/service"
	"go-blog-api/internal/transport/http/middleware"
	"go-blog-api/internal/transport/http/response"
)

type PostHandler struct {
	svc *service.PostService
	log *zap.Logger
}

func NewPostHandler(svc *service.PostService, log *zap.Logger) *PostHandler {
	return &PostHandler{svc: svc, log: log}
}

func (h *PostHandler) ListPublished(c *gin.Context) {
	posts, err := h.svc.ListPublished(c.Request.Context())
	if err != nil {
		handleError(c, h.log, err, "", "Failed to fetch posts")
		return
	}
	c.JSON(http.StatusOK, nonNil(posts))
}

func (h *PostHandler) GetPublicBySlug(c *gin.Context) {
	post, err := h.svc.GetPublicBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		handleError(c, h.log, err, "Post not found", "Failed to fetch post")
		return
	}
	c.JSON(http.StatusOK, post)
}

func (h *PostHandler) ListAll(c *gin.Context) {
	posts, err := h.svc.ListAll(c.Request.Context())
	if err != nil {
		handleError(c, h.log, err, "", "Failed to fetch posts")
		return
	}
	c.JSON(http.StatusOK, nonNil(posts))
}

func (h *PostHandler) GetByID(c *gin.Context) {
	post, err := h.svc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleError(c, h.log, err, "Post not found", "Failed to fetch post")
		return
	}
	c.JSON(http.StatusOK, post)
}

func (h *PostHandler) Create(c *gin.Context) {
	var in service.CreatePostInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	post, err := h.svc.Create(c.Request.Context(), c.GetString(middleware.KeyUserID), in)
	if err != nil {
		handleError(c, h.log, err, "", "Failed to create post")
		return
	}
	c.JSON(http.StatusCreated, post)
}

func (h *PostHandler) Update(c *gin.Context) {
	var in service.UpdatePostInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	post, err := h.svc.Update(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		handleError(c, h.log, err, "Post not found", "Failed to update post")
		return
	}
	c.JSON(http.StatusOK, post)
}

// TogglePublish PATCH 只认 published 字段
func (h *PostHandler) TogglePublish(c *gin.Context) {
	var in struct {
		Published *bool `json:"published"`
	}
	if err := c.ShouldBindJSON(&in); err != nil || in.Published == nil {
		response.Error(c, http.StatusBadRequest, "published must be a boolean")
		return
	}
	post, err := h.svc.SetPublished(c.Request.Context(), c.Param("id"), *in.Published)
	if err != nil {
		handleError(c, h.log, err, "Post not found", "Failed to update post")
		return
	}
	c.JSON(http.StatusOK, post)
}

func (h *PostHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		handleError(c, h.log, err, "", "Failed to delete post")
		return
	}
	c.Status(http.StatusNoContent)
}
