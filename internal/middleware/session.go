package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"sweet-shop/internal/model"
	"sweet-shop/pkg/log"
)

const (
	SessionHeader = "X-Session-ID"
	SessionCookie = "session_id"

	scopeKey = "scope"
)

// Session resolves the browsing session from the header or cookie, minting a
// new one when neither is present. The id is echoed back on both.
func (m Middleware) Session() gin.HandlerFunc {
	return func(c *gin.Context) {
		sid := c.GetHeader(SessionHeader)
		if sid == "" {
			sid, _ = c.Cookie(SessionCookie)
		}
		if _, err := uuid.Parse(sid); err != nil {
			sid = uuid.NewString()
		}

		c.Header(SessionHeader, sid)
		c.SetCookie(SessionCookie, sid, m.cfg.CookieMaxAge, "/", "", m.cfg.CookieSecure, true)

		sc := GetScope(c)
		sc.SessionID = sid
		c.Set(scopeKey, sc)
		c.Request = c.Request.WithContext(log.WithSessionID(c.Request.Context(), sid))

		c.Next()
	}
}

// GetScope returns the request scope set by Session and AdminAuth.
func GetScope(c *gin.Context) model.Scope {
	if v, ok := c.Get(scopeKey); ok {
		if sc, ok := v.(model.Scope); ok {
			return sc
		}
	}
	return model.Scope{}
}
