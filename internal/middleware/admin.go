package middleware

import (
	"crypto/subtle"

	"github.com/gin-gonic/gin"

	"sweet-shop/pkg/response"
)

const AdminKeyHeader = "X-Admin-Key"

// AdminAuth rejects requests whose X-Admin-Key does not match the configured key.
func (m Middleware) AdminAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.cfg.AdminKey != "" {
			got := c.GetHeader(AdminKeyHeader)
			if subtle.ConstantTimeCompare([]byte(got), []byte(m.cfg.AdminKey)) != 1 {
				m.l.Warnf(c.Request.Context(), "middleware.AdminAuth: rejected %s %s", c.Request.Method, c.FullPath())
				response.Unauthorized(c)
				return
			}
		}

		sc := GetScope(c)
		sc.Admin = true
		c.Set(scopeKey, sc)
		c.Next()
	}
}
