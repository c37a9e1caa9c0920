package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-blog-api/internal/transport/http/response"
)

func MaxBodyBytes(n int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, n)
		c.Next()
		if c.Err() != nil && !c.Writer.Written() {
			response.AbortError(c, http.StatusRequestEntityTooLarge, "request body too large")
		}
	}
}
