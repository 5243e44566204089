package http

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/dealerhub/portal/internal/pkg/logger"
	"github.com/dealerhub/portal/internal/pkg/middleware"
	"github.com/dealerhub/portal/internal/pkg/models"
	"github.com/dealerhub/portal/internal/utils"
	"github.com/dealerhub/portal/services/catalog"
	"github.com/dealerhub/portal/services/session"
	"github.com/labstack/echo/v4"
)

// CatalogHandler serves the portal's display data and proxies the few
// authenticated backend calls
type CatalogHandler struct {
	sessionUC session.SessionUC
	catalogGW catalog.CatalogGW
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(sessionUC session.SessionUC, catalogGW catalog.CatalogGW) *CatalogHandler {
	return &CatalogHandler{
		sessionUC: sessionUC,
		catalogGW: catalogGW,
	}
}

// ListVehicles returns the showroom lineup, optionally filtered by type,
// price range and a name search
func (h *CatalogHandler) ListVehicles(c echo.Context) error {
	vehicles := catalog.Vehicles()

	vehicleType := c.QueryParam("type")
	search := strings.ToLower(c.QueryParam("q"))
	minPrice := queryFloat(c, "min_price", 0)
	maxPrice := queryFloat(c, "max_price", 0)

	filtered := make([]models.Vehicle, 0, len(vehicles))
	for _, v := range vehicles {
		if vehicleType != "" && v.Type != vehicleType {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(v.Name), search) {
			continue
		}
		if v.Price < minPrice {
			continue
		}
		if maxPrice > 0 && v.Price > maxPrice {
			continue
		}
		filtered = append(filtered, v)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Vehicles retrieved", filtered)
}

// GetVehicle returns a single catalog record
func (h *CatalogHandler) GetVehicle(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid vehicle ID")
	}

	for _, v := range catalog.Vehicles() {
		if v.ID == id {
			return utils.SuccessResponse(c, http.StatusOK, "Vehicle retrieved", v)
		}
	}

	return utils.NotFoundResponse(c, "Vehicle not found")
}

// AdminSummary returns the dashboard counters for the admin area
func (h *CatalogHandler) AdminSummary(c echo.Context) error {
	quotes := catalog.Quotes()
	pending := 0
	for _, q := range quotes {
		if q.Status == "PENDING" {
			pending++
		}
	}

	return utils.SuccessResponse(c, http.StatusOK, "Summary retrieved", map[string]int{
		"vehicles":      len(catalog.Vehicles()),
		"quotes":        len(quotes),
		"pendingQuotes": pending,
		"testDrives":    len(catalog.TestDrives()),
	})
}

// DealerSchedule returns the dealer's upcoming appointments
func (h *CatalogHandler) DealerSchedule(c echo.Context) error {
	return utils.SuccessResponse(c, http.StatusOK, "Schedule retrieved", catalog.Schedule())
}

// CustomerQuotes returns the customer's quote history
func (h *CatalogHandler) CustomerQuotes(c echo.Context) error {
	return utils.SuccessResponse(c, http.StatusOK, "Quotes retrieved", catalog.Quotes())
}

// CustomerTestDrives returns the customer's test-drive bookings
func (h *CatalogHandler) CustomerTestDrives(c echo.Context) error {
	return utils.SuccessResponse(c, http.StatusOK, "Test drives retrieved", catalog.TestDrives())
}

// Profile proxies the backend profile call with the session's bearer token.
// A 401 from the backend expires the local session: the rehydrated token was
// trusted until this first rejection.
func (h *CatalogHandler) Profile(c echo.Context) error {
	ctx := c.Request().Context()
	sid := middleware.SessionID(c)

	headers, err := h.sessionUC.AuthHeaders(ctx, sid)
	if err != nil {
		return utils.InternalServerErrorResponse(c, "Failed to load session")
	}
	if len(headers) == 0 {
		return utils.UnauthorizedResponse(c, "Authentication required")
	}

	profile, err := h.catalogGW.Profile(ctx, headers)
	if err != nil {
		if errors.Is(err, catalog.ErrUnauthorized) {
			if expireErr := h.sessionUC.Expire(ctx, sid); expireErr != nil {
				logger.Error("Failed to expire rejected session",
					logger.String("session_id", sid),
					logger.Err(expireErr))
			}
			return utils.UnauthorizedResponse(c, "Session expired, please log in again")
		}
		return utils.BadGatewayResponse(c, "")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Profile retrieved", profile)
}

func queryFloat(c echo.Context, name string, fallback float64) float64 {
	raw := c.QueryParam(name)
	if raw == "" {
		return fallback
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fallback
	}
	return value
}
