package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"go-blog-api/internal/service"
	"go-blog-api/internal/transport/http/response"
)

type ContactHandler struct {
	svc *service.ContactService
	log *zap.Logger
}

func NewContactHandler(svc *service.ContactService, log *zap.Logger) *ContactHandler {
	return &ContactHandler{svc: svc, log: log}
}

func (h *ContactHandler) Submit(c *gin.Context) {
	var in service.ContactInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	m, err := h.svc.Submit(c.Request.Context(), in)
	if err != nil {
		handleError(c, h.log, err, "", "Failed to send message")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Message sent successfully", "id": m.ID})
}

func (h *ContactHandler) ListAll(c *gin.Context) {
	msgs, err := h.svc.ListAll(c.Request.Context())
	if err != nil {
		handleError(c, h.log, err, "", "Failed to fetch messages")
		return
	}
	c.JSON(http.StatusOK, nonNil(msgs))
}

func (h *ContactHandler) MarkRead(c *gin.Context) {
	m, err := h.svc.MarkRead(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleError(c, h.log, err, "Message not found", "Failed to update message")
		return
	}
	c.JSON(http.StatusOK, m)
}

func (h *ContactHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		handleError(c, h.log, err, "", "Failed to delete message")
		return
	}
	c.Status(http.StatusNoContent)
}
