package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	// identityHeaderName carries the authenticated principal's email. Token
	// validation happens upstream; this service trusts the header as given.
	identityHeaderName = "X-User-Email"

	principalContextKey = "principalEmail"
)

func NewIdentityMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.GetHeader(identityHeaderName)
		if email == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"errors": "missing identity header"})
			return
		}

		c.Set(principalContextKey, email)
		c.Next()
	}
}

func principalEmail(c *gin.Context) string {
	return c.GetString(principalContextKey)
}
