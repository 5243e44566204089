package http

import (
	"errors"
	"net/http"

	"github.com/dealerhub/portal/internal/pkg/logger"
	"github.com/dealerhub/portal/internal/pkg/middleware"
	"github.com/dealerhub/portal/internal/pkg/models"
	"github.com/dealerhub/portal/internal/utils"
	"github.com/dealerhub/portal/services/session"
	"github.com/labstack/echo/v4"
)

// SessionHandler handles the portal-facing authentication endpoints
type SessionHandler struct {
	sessionUC session.SessionUC
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(sessionUC session.SessionUC) *SessionHandler {
	return &SessionHandler{
		sessionUC: sessionUC,
	}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type verifyOTPRequest struct {
	Email string `json:"email"`
	OTP   string `json:"otp"`
}

// Login submits credentials and opens the OTP challenge
func (h *SessionHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.Username == "" || req.Password == "" {
		return utils.BadRequestResponse(c, "Username and password are required")
	}

	email, err := h.sessionUC.Login(c.Request().Context(), middleware.SessionID(c), req.Username, req.Password)
	if err != nil {
		logger.Warn("Login failed",
			logger.String("username", req.Username),
			logger.Err(err))
		return respondAuthError(c, err, "Authentication service unavailable")
	}

	return utils.SuccessResponse(c, http.StatusOK, "OTP sent", map[string]string{
		"email": email,
	})
}

// VerifyOTP completes the pending login challenge
func (h *SessionHandler) VerifyOTP(c echo.Context) error {
	var req verifyOTPRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.Email == "" || req.OTP == "" {
		return utils.BadRequestResponse(c, "Email and OTP are required")
	}

	redirect, err := h.sessionUC.VerifyLoginOTP(c.Request().Context(), middleware.SessionID(c), req.Email, req.OTP)
	if err != nil {
		return respondAuthError(c, err, "Authentication service unavailable")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Login successful", map[string]string{
		"redirect": redirect,
	})
}

// Logout tears down the session; local cleanup always succeeds even when the
// backend is unreachable
func (h *SessionHandler) Logout(c echo.Context) error {
	redirect, err := h.sessionUC.Logout(c.Request().Context(), middleware.SessionID(c))
	if err != nil {
		return utils.InternalServerErrorResponse(c, "Failed to clear session")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Logged out", map[string]string{
		"redirect": redirect,
	})
}

// Register submits a new account registration
func (h *SessionHandler) Register(c echo.Context) error {
	var req models.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.Username == "" || req.Password == "" || req.Email == "" {
		return utils.BadRequestResponse(c, "Username, password and email are required")
	}

	if err := h.sessionUC.Register(c.Request().Context(), &req); err != nil {
		return respondAuthError(c, err, "Registration service unavailable")
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Registration successful, check your email for the verification code", nil)
}

// VerifyEmail completes a registration OTP challenge
func (h *SessionHandler) VerifyEmail(c echo.Context) error {
	var req verifyOTPRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.Email == "" || req.OTP == "" {
		return utils.BadRequestResponse(c, "Email and OTP are required")
	}

	if err := h.sessionUC.VerifyEmail(c.Request().Context(), req.Email, req.OTP); err != nil {
		return respondAuthError(c, err, "Verification service unavailable")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Email verified successfully", nil)
}

// GetSession rehydrates the current session; an authenticated browser gets
// its user record and the same role redirect a fresh login would produce
func (h *SessionHandler) GetSession(c echo.Context) error {
	sess, err := h.sessionUC.CurrentSession(c.Request().Context(), middleware.SessionID(c))
	if err != nil {
		return utils.InternalServerErrorResponse(c, "Failed to load session")
	}

	if !sess.IsAuthenticated() {
		return utils.UnauthorizedResponse(c, "Not authenticated")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Session active", map[string]interface{}{
		"user":     sess.User,
		"redirect": sess.RedirectPath(),
	})
}

// respondAuthError maps *AuthError to its status and verbatim message;
// anything else is a transport-level failure and gets the generic fallback
func respondAuthError(c echo.Context, err error, fallback string) error {
	var authErr *models.AuthError
	if errors.As(err, &authErr) {
		code := authErr.StatusCode
		if code < http.StatusBadRequest {
			code = http.StatusUnauthorized
		}
		return utils.ErrorResponseHandler(c, code, authErr.Message)
	}

	return utils.BadGatewayResponse(c, fallback)
}
