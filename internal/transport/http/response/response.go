package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Body 错误响应统一格式：message + 可选字段级明细
type Body struct {
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors,omitempty"`
}

func Error(c *gin.Context, status int, msg string) {
	c.JSON(status, Body{Message: msg})
}

func AbortError(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, Body{Message: msg})
}

func ValidationFailed(c *gin.Context, fields map[string]string) {
	c.JSON(http.StatusBadRequest, Body{Message: "Validation error", Errors: fields})
}
