package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"go-blog-api/internal/service"
	"go-blog-api/internal/transport/http/middleware"
	"go-blog-api/internal/transport/http/response"
)

type AuthHandler struct {
	svc *service.IdentityService
	log *zap.Logger
}

func NewAuthHandler(svc *service.IdentityService, log *zap.Logger) *AuthHandler {
	return &AuthHandler{svc: svc, log: log}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var in service.LoginInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	res, err := h.svc.Login(c.Request.Context(), in)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			response.Error(c, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		handleError(c, h.log, err, "", "Login failed")
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *AuthHandler) CurrentUser(c *gin.Context) {
	u, err := h.svc.CurrentUser(c.Request.Context(), c.GetString(middleware.KeyUserID))
	if err != nil {
		handleError(c, h.log, err, "User not found", "Failed to fetch user")
		return
	}
	c.JSON(http.StatusOK, u)
}
