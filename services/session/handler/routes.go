package handler

import (
	"github.com/dealerhub/portal/internal/pkg/middleware"
	"github.com/dealerhub/portal/internal/pkg/models"
	"github.com/dealerhub/portal/services/session"
	"github.com/dealerhub/portal/services/session/handler/http"
	"github.com/labstack/echo/v4"
)

// Handler coordinates the session service routes
type Handler struct {
	sessionHandler *http.SessionHandler
	sessionUC      session.SessionUC
	cfg            *models.Config
}

// NewHandler creates and initializes the session handler set
func NewHandler(sessionHandler *http.SessionHandler, sessionUC session.SessionUC, cfg *models.Config) *Handler {
	return &Handler{
		sessionHandler: sessionHandler,
		sessionUC:      sessionUC,
		cfg:            cfg,
	}
}

// RegisterRoutes registers the session endpoints. All routes sit behind the
// session cookie middleware so every browser has a session ID; none of them
// require authentication (the session endpoints are how you become
// authenticated).
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	group := e.Group("/api/session", middleware.SessionCookie(h.cfg.Session))

	group.POST("/login", h.sessionHandler.Login)
	group.POST("/verify-otp", h.sessionHandler.VerifyOTP)
	group.POST("/logout", h.sessionHandler.Logout)
	group.POST("/register", h.sessionHandler.Register)
	group.POST("/verify-email", h.sessionHandler.VerifyEmail)
	group.GET("", h.sessionHandler.GetSession)
}
