package middleware

import (
	"net/http"

	jwtpkg "github.com/dealerhub/portal/internal/pkg/jwt"
	"github.com/dealerhub/portal/internal/pkg/logger"
	"github.com/dealerhub/portal/internal/pkg/models"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// sessionIDKey is the echo context key the session middleware populates
const sessionIDKey = "session_id"

// SessionCookie identifies the browser session. It reads the signed session
// cookie and puts the session ID on the context; when absent or invalid a
// fresh session ID is minted and a new cookie set. The cookie carries no
// Max-Age, so it lives exactly as long as the browser session.
func SessionCookie(cfg models.SessionConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if cookie, err := c.Cookie(cfg.CookieName); err == nil && cookie.Value != "" {
				if sid, err := jwtpkg.ParseSessionID(cookie.Value, cfg.Secret); err == nil {
					c.Set(sessionIDKey, sid)
					return next(c)
				}
				logger.Debug("Discarding invalid session cookie")
			}

			sid := uuid.New().String()
			token, err := jwtpkg.GenerateSessionToken(sid, cfg)
			if err != nil {
				return echo.NewHTTPError(http.StatusInternalServerError, "failed to establish session")
			}

			c.SetCookie(&http.Cookie{
				Name:     cfg.CookieName,
				Value:    token,
				Path:     "/",
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
			c.Set(sessionIDKey, sid)

			return next(c)
		}
	}
}

// SessionID returns the browser session ID set by SessionCookie, or ""
func SessionID(c echo.Context) string {
	sid, _ := c.Get(sessionIDKey).(string)
	return sid
}
