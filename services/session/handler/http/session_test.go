package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dealerhub/portal/internal/pkg/models"
	"github.com/dealerhub/portal/internal/utils"
	"github.com/dealerhub/portal/services/session/mocks"
)

const testSID = "sid-handler"

func newTestContext(method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("session_id", testSID)
	return c, rec
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) utils.Response {
	t.Helper()
	var resp utils.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) utils.ErrorResponse {
	t.Helper()
	var resp utils.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestLoginHandler_Success(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockSessionUC(ctrl)
	mockUC.EXPECT().
		Login(gomock.Any(), testSID, "budi", "secret").
		Return("budi@example.com", nil)

	h := NewSessionHandler(mockUC)
	c, rec := newTestContext(http.MethodPost, "/api/session/login", `{"username":"budi","password":"secret"}`)

	// Act
	err := h.Login(c)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	resp := decodeResponse(t, rec)
	assert.True(t, resp.Success)
	assert.Equal(t, "OTP sent", resp.Message)
	data := resp.Data.(map[string]interface{})
	assert.Equal(t, "budi@example.com", data["email"])
}

func TestLoginHandler_MissingFields(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockSessionUC(ctrl)
	// No usecase call for an incomplete payload.

	h := NewSessionHandler(mockUC)
	c, rec := newTestContext(http.MethodPost, "/api/session/login", `{"username":"budi"}`)

	// Act
	err := h.Login(c)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeError(t, rec)
	assert.Equal(t, "Username and password are required", resp.Error)
}

func TestLoginHandler_BackendRejectionVerbatim(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockSessionUC(ctrl)
	mockUC.EXPECT().
		Login(gomock.Any(), testSID, "budi", "wrong").
		Return("", &models.AuthError{StatusCode: http.StatusUnauthorized, Message: "Invalid credentials"})

	h := NewSessionHandler(mockUC)
	c, rec := newTestContext(http.MethodPost, "/api/session/login", `{"username":"budi","password":"wrong"}`)

	// Act
	err := h.Login(c)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	resp := decodeError(t, rec)
	assert.Equal(t, "Invalid credentials", resp.Error)
}

func TestLoginHandler_TransportFailureIsBadGateway(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockSessionUC(ctrl)
	mockUC.EXPECT().
		Login(gomock.Any(), testSID, "budi", "secret").
		Return("", errors.New("request failed: connection refused"))

	h := NewSessionHandler(mockUC)
	c, rec := newTestContext(http.MethodPost, "/api/session/login", `{"username":"budi","password":"secret"}`)

	// Act
	err := h.Login(c)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadGateway, rec.Code)
	resp := decodeError(t, rec)
	assert.Equal(t, "Authentication service unavailable", resp.Error)
}

func TestVerifyOTPHandler_Success(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockSessionUC(ctrl)
	mockUC.EXPECT().
		VerifyLoginOTP(gomock.Any(), testSID, "budi@example.com", "123456").
		Return("/customer/dashboard", nil)

	h := NewSessionHandler(mockUC)
	c, rec := newTestContext(http.MethodPost, "/api/session/verify-otp", `{"email":"budi@example.com","otp":"123456"}`)

	// Act
	err := h.VerifyOTP(c)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	resp := decodeResponse(t, rec)
	data := resp.Data.(map[string]interface{})
	assert.Equal(t, "/customer/dashboard", data["redirect"])
}

func TestVerifyOTPHandler_EmailMismatch(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockSessionUC(ctrl)
	mockUC.EXPECT().
		VerifyLoginOTP(gomock.Any(), testSID, "other@example.com", "123456").
		Return("", &models.AuthError{
			StatusCode: http.StatusBadRequest,
			Message:    "Email mismatch. Please try logging in again.",
		})

	h := NewSessionHandler(mockUC)
	c, rec := newTestContext(http.MethodPost, "/api/session/verify-otp", `{"email":"other@example.com","otp":"123456"}`)

	// Act
	err := h.VerifyOTP(c)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeError(t, rec)
	assert.Equal(t, "Email mismatch. Please try logging in again.", resp.Error)
}

func TestLogoutHandler_Success(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockSessionUC(ctrl)
	mockUC.EXPECT().
		Logout(gomock.Any(), testSID).
		Return("/login", nil)

	h := NewSessionHandler(mockUC)
	c, rec := newTestContext(http.MethodPost, "/api/session/logout", "")

	// Act
	err := h.Logout(c)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	resp := decodeResponse(t, rec)
	data := resp.Data.(map[string]interface{})
	assert.Equal(t, "/login", data["redirect"])
}

func TestRegisterHandler_Success(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockSessionUC(ctrl)
	mockUC.EXPECT().
		Register(gomock.Any(), &models.RegisterRequest{
			Username: "budi",
			Password: "secret",
			Email:    "budi@example.com",
			FullName: "Budi Santoso",
		}).
		Return(nil)

	h := NewSessionHandler(mockUC)
	c, rec := newTestContext(http.MethodPost, "/api/session/register",
		`{"username":"budi","password":"secret","email":"budi@example.com","fullName":"Budi Santoso"}`)

	// Act
	err := h.Register(c)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestRegisterHandler_MissingEmail(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockSessionUC(ctrl)

	h := NewSessionHandler(mockUC)
	c, rec := newTestContext(http.MethodPost, "/api/session/register", `{"username":"budi","password":"secret"}`)

	// Act
	err := h.Register(c)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestVerifyEmailHandler_Success(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockSessionUC(ctrl)
	mockUC.EXPECT().
		VerifyEmail(gomock.Any(), "budi@example.com", "123456").
		Return(nil)

	h := NewSessionHandler(mockUC)
	c, rec := newTestContext(http.MethodPost, "/api/session/verify-email", `{"email":"budi@example.com","otp":"123456"}`)

	// Act
	err := h.VerifyEmail(c)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	resp := decodeResponse(t, rec)
	assert.Equal(t, "Email verified successfully", resp.Message)
}

func TestGetSessionHandler_Authenticated(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockSessionUC(ctrl)
	mockUC.EXPECT().
		CurrentSession(gomock.Any(), testSID).
		Return(&models.Session{
			Token: "jwt-token",
			User: &models.User{
				Username: "budi",
				Email:    "budi@example.com",
				FullName: "budi",
				Role:     models.RoleCustomer,
			},
		}, nil)

	h := NewSessionHandler(mockUC)
	c, rec := newTestContext(http.MethodGet, "/api/session", "")

	// Act
	err := h.GetSession(c)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	resp := decodeResponse(t, rec)
	data := resp.Data.(map[string]interface{})
	assert.Equal(t, "/customer/dashboard", data["redirect"])
	user := data["user"].(map[string]interface{})
	assert.Equal(t, "budi", user["username"])
	assert.Equal(t, "CUSTOMER", user["role"])
}

func TestGetSessionHandler_Anonymous(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockSessionUC(ctrl)
	mockUC.EXPECT().
		CurrentSession(gomock.Any(), testSID).
		Return(&models.Session{}, nil)

	h := NewSessionHandler(mockUC)
	c, rec := newTestContext(http.MethodGet, "/api/session", "")

	// Act
	err := h.GetSession(c)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	resp := decodeError(t, rec)
	assert.Equal(t, "Not authenticated", resp.Error)
}
