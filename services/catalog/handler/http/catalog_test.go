package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dealerhub/portal/internal/pkg/models"
	"github.com/dealerhub/portal/internal/utils"
	"github.com/dealerhub/portal/services/catalog"
	catalogmocks "github.com/dealerhub/portal/services/catalog/mocks"
	sessionmocks "github.com/dealerhub/portal/services/session/mocks"
)

const testSID = "sid-catalog"

func newTestContext(method, target string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("session_id", testSID)
	return c, rec
}

func decodeData(t *testing.T, rec *httptest.ResponseRecorder) interface{} {
	t.Helper()
	var resp utils.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp.Data
}

func newHandler(t *testing.T) (*CatalogHandler, *sessionmocks.MockSessionUC, *catalogmocks.MockCatalogGW) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockUC := sessionmocks.NewMockSessionUC(ctrl)
	mockGW := catalogmocks.NewMockCatalogGW(ctrl)
	return NewCatalogHandler(mockUC, mockGW), mockUC, mockGW
}

func TestListVehicles_Unfiltered(t *testing.T) {
	h, _, _ := newHandler(t)
	c, rec := newTestContext(http.MethodGet, "/api/vehicles")

	require.NoError(t, h.ListVehicles(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	data := decodeData(t, rec).([]interface{})
	assert.Len(t, data, 5)
}

func TestListVehicles_FilterByType(t *testing.T) {
	h, _, _ := newHandler(t)
	c, rec := newTestContext(http.MethodGet, "/api/vehicles?type=MPV")

	require.NoError(t, h.ListVehicles(c))

	data := decodeData(t, rec).([]interface{})
	require.Len(t, data, 2)
	for _, item := range data {
		assert.Equal(t, "MPV", item.(map[string]interface{})["type"])
	}
}

func TestListVehicles_FilterByPriceRange(t *testing.T) {
	h, _, _ := newHandler(t)
	c, rec := newTestContext(http.MethodGet, "/api/vehicles?min_price=1000000&max_price=2000000")

	require.NoError(t, h.ListVehicles(c))

	data := decodeData(t, rec).([]interface{})
	require.Len(t, data, 2)
	names := []string{
		data[0].(map[string]interface{})["name"].(string),
		data[1].(map[string]interface{})["name"].(string),
	}
	assert.ElementsMatch(t, []string{"Kia Seltos", "Kia Carens"}, names)
}

func TestListVehicles_SearchIsCaseInsensitive(t *testing.T) {
	h, _, _ := newHandler(t)
	c, rec := newTestContext(http.MethodGet, "/api/vehicles?q=ev6")

	require.NoError(t, h.ListVehicles(c))

	data := decodeData(t, rec).([]interface{})
	require.Len(t, data, 1)
	assert.Equal(t, "Kia EV6", data[0].(map[string]interface{})["name"])
}

func TestGetVehicle_Found(t *testing.T) {
	h, _, _ := newHandler(t)
	c, rec := newTestContext(http.MethodGet, "/api/vehicles/3")
	c.SetParamNames("id")
	c.SetParamValues("3")

	require.NoError(t, h.GetVehicle(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	data := decodeData(t, rec).(map[string]interface{})
	assert.Equal(t, "Kia Carnival", data["name"])
}

func TestGetVehicle_NotFound(t *testing.T) {
	h, _, _ := newHandler(t)
	c, rec := newTestContext(http.MethodGet, "/api/vehicles/99")
	c.SetParamNames("id")
	c.SetParamValues("99")

	require.NoError(t, h.GetVehicle(c))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetVehicle_BadID(t *testing.T) {
	h, _, _ := newHandler(t)
	c, rec := newTestContext(http.MethodGet, "/api/vehicles/abc")
	c.SetParamNames("id")
	c.SetParamValues("abc")

	require.NoError(t, h.GetVehicle(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAdminSummary_Counters(t *testing.T) {
	h, _, _ := newHandler(t)
	c, rec := newTestContext(http.MethodGet, "/api/admin/summary")

	require.NoError(t, h.AdminSummary(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	data := decodeData(t, rec).(map[string]interface{})
	assert.Equal(t, float64(5), data["vehicles"])
	assert.Equal(t, float64(3), data["quotes"])
	assert.Equal(t, float64(1), data["pendingQuotes"])
	assert.Equal(t, float64(2), data["testDrives"])
}

func TestDealerSchedule_ReturnsAppointments(t *testing.T) {
	h, _, _ := newHandler(t)
	c, rec := newTestContext(http.MethodGet, "/api/dealer/schedule")

	require.NoError(t, h.DealerSchedule(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	data := decodeData(t, rec).([]interface{})
	assert.Len(t, data, 3)
}

func TestProfile_Success(t *testing.T) {
	h, mockUC, mockGW := newHandler(t)

	headers := map[string]string{
		"Authorization": "Bearer jwt-token",
		"Content-Type":  "application/json",
	}
	mockUC.EXPECT().AuthHeaders(gomock.Any(), testSID).Return(headers, nil)
	mockGW.EXPECT().Profile(gomock.Any(), headers).Return(&models.Profile{
		Username: "budi",
		Email:    "budi@example.com",
		FullName: "budi",
	}, nil)

	c, rec := newTestContext(http.MethodGet, "/api/customer/profile")

	require.NoError(t, h.Profile(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	data := decodeData(t, rec).(map[string]interface{})
	assert.Equal(t, "budi", data["username"])
}

func TestProfile_AnonymousSession(t *testing.T) {
	h, mockUC, _ := newHandler(t)

	mockUC.EXPECT().AuthHeaders(gomock.Any(), testSID).Return(map[string]string{}, nil)
	// No backend call without a token.

	c, rec := newTestContext(http.MethodGet, "/api/customer/profile")

	require.NoError(t, h.Profile(c))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestProfile_BackendRejectionExpiresSession(t *testing.T) {
	h, mockUC, mockGW := newHandler(t)

	headers := map[string]string{
		"Authorization": "Bearer stale-token",
		"Content-Type":  "application/json",
	}
	mockUC.EXPECT().AuthHeaders(gomock.Any(), testSID).Return(headers, nil)
	mockGW.EXPECT().Profile(gomock.Any(), headers).Return(nil, catalog.ErrUnauthorized)
	mockUC.EXPECT().Expire(gomock.Any(), testSID).Return(nil)

	c, rec := newTestContext(http.MethodGet, "/api/customer/profile")

	require.NoError(t, h.Profile(c))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	var resp utils.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Session expired, please log in again", resp.Error)
}

func TestProfile_BackendOutageIsBadGateway(t *testing.T) {
	h, mockUC, mockGW := newHandler(t)

	headers := map[string]string{
		"Authorization": "Bearer jwt-token",
		"Content-Type":  "application/json",
	}
	mockUC.EXPECT().AuthHeaders(gomock.Any(), testSID).Return(headers, nil)
	mockGW.EXPECT().Profile(gomock.Any(), headers).Return(nil, errors.New("request failed: connection refused"))
	// The session survives a transport failure.

	c, rec := newTestContext(http.MethodGet, "/api/customer/profile")

	require.NoError(t, h.Profile(c))

	assert.Equal(t, http.StatusBadGateway, rec.Code)
}
