package http

import (
	"net/http"
	"strings"

	"github.com/Lexv0lk/payment-service/internal/pkg/jwt"
	"github.com/gin-gonic/gin"
)

const (
	authHeaderName = "Authorization"
	bearerPrefix   = "Bearer"
)

func NewAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader(authHeaderName)
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"errors": "missing authorization header"})
			return
		}

		parts := strings.Fields(header)
		if len(parts) != 2 || !strings.EqualFold(parts[0], bearerPrefix) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"errors": "invalid auth header"})
			return
		}

		c.Set(jwt.TokenContextKey, parts[1])
		c.Next()
	}
}
