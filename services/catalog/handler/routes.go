package handler

import (
	"github.com/dealerhub/portal/internal/pkg/middleware"
	"github.com/dealerhub/portal/internal/pkg/models"
	"github.com/dealerhub/portal/services/catalog/handler/http"
	"github.com/dealerhub/portal/services/session"
	"github.com/labstack/echo/v4"
)

// Handler coordinates the catalog service routes
type Handler struct {
	catalogHandler *http.CatalogHandler
	sessionUC      session.SessionUC
	cfg            *models.Config
}

// NewHandler creates and initializes the catalog handler set
func NewHandler(catalogHandler *http.CatalogHandler, sessionUC session.SessionUC, cfg *models.Config) *Handler {
	return &Handler{
		catalogHandler: catalogHandler,
		sessionUC:      sessionUC,
		cfg:            cfg,
	}
}

// RegisterRoutes registers the guarded portal data routes. Role allow-lists
// mirror the portal areas: admin dashboard, dealer schedule, customer pages.
// The vehicle catalog is open to any authenticated role.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api", middleware.SessionCookie(h.cfg.Session))

	vehicles := api.Group("/vehicles", middleware.Guard(h.sessionUC))
	vehicles.GET("", h.catalogHandler.ListVehicles)
	vehicles.GET("/:id", h.catalogHandler.GetVehicle)

	admin := api.Group("/admin", middleware.Guard(h.sessionUC, models.RoleAdmin))
	admin.GET("/summary", h.catalogHandler.AdminSummary)

	dealer := api.Group("/dealer", middleware.Guard(h.sessionUC, models.RoleDealer))
	dealer.GET("/schedule", h.catalogHandler.DealerSchedule)

	customer := api.Group("/customer", middleware.Guard(h.sessionUC, models.RoleCustomer))
	customer.GET("/quotes", h.catalogHandler.CustomerQuotes)
	customer.GET("/test-drives", h.catalogHandler.CustomerTestDrives)
	customer.GET("/profile", h.catalogHandler.Profile)
}
