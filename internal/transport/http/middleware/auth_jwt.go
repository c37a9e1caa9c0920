package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"go-blog-api/internal/core/auth"
	"go-blog-api/internal/transport/http/response"
)

const (
	KeyClaims = "claims"
	KeyUserID = "userId"
)

func AuthJWT(j *auth.JWTer) gin.HandlerFunc {
	return func(c *gin.Context) {
		ah := c.GetHeader("Authorization")
		if !strings.HasPrefix(ah, "Bearer ") {
			response.AbortError(c, http.StatusUnauthorized, "Unauthorized")
			return
		}
		claims, err := j.Parse(strings.TrimPrefix(ah, "Bearer "))
		if err != nil {
			response.AbortError(c, http.StatusUnauthorized, "Unauthorized")
			return
		}
		c.Set(KeyClaims, claims)
		c.Set(KeyUserID, claims.UID)
		c.Next()
	}
}
