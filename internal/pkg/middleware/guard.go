package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/dealerhub/portal/internal/pkg/models"
	"github.com/dealerhub/portal/internal/utils"
	"github.com/labstack/echo/v4"
)

// SessionReader is the slice of the session manager the route guard needs
type SessionReader interface {
	CurrentSession(ctx context.Context, sid string) (*models.Session, error)
}

// Guard protects routes behind the session manager. With no roles given any
// authenticated user passes; with an allow-list the session role must be in
// it. Unauthenticated browsers are redirected to the login page (API callers
// get 401 JSON); wrong-role sessions go to the unauthorized page (403 JSON).
func Guard(sessions SessionReader, roles ...models.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sid := SessionID(c)
			if sid == "" {
				return rejectUnauthenticated(c)
			}

			sess, err := sessions.CurrentSession(c.Request().Context(), sid)
			if err != nil {
				return utils.InternalServerErrorResponse(c, "Failed to load session")
			}

			if !sess.IsAuthenticated() {
				return rejectUnauthenticated(c)
			}

			if len(roles) > 0 && !roleAllowed(sess.User, roles) {
				if wantsJSON(c) {
					return utils.ForbiddenResponse(c, "Access denied")
				}
				return c.Redirect(http.StatusFound, "/unauthorized")
			}

			c.Set("user", sess.User)
			c.Set("username", sess.User.Username)
			c.Set("role", sess.User.Role)

			return next(c)
		}
	}
}

// CurrentUser returns the user record the guard attached, or nil
func CurrentUser(c echo.Context) *models.User {
	user, _ := c.Get("user").(*models.User)
	return user
}

func rejectUnauthenticated(c echo.Context) error {
	if wantsJSON(c) {
		return utils.UnauthorizedResponse(c, "Authentication required")
	}
	return c.Redirect(http.StatusFound, "/login")
}

func roleAllowed(user *models.User, roles []models.Role) bool {
	if user == nil {
		return false
	}
	for _, role := range roles {
		if user.Role == role {
			return true
		}
	}
	return false
}

func wantsJSON(c echo.Context) bool {
	if strings.HasPrefix(c.Request().URL.Path, "/api/") {
		return true
	}
	return strings.Contains(c.Request().Header.Get(echo.HeaderAccept), echo.MIMEApplicationJSON)
}
