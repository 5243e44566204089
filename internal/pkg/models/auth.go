package models

import "time"

// LoginRequest carries the credentials submitted to the auth backend
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse is the useful subset of the backend login reply. Email may be
// empty; callers fall back to the submitted username.
type LoginResponse struct {
	Email string `json:"email"`
}

// VerifyLoginRequest completes the OTP challenge for a pending login
type VerifyLoginRequest struct {
	Email string `json:"email"`
	OTP   string `json:"otp"`
}

// VerifyLoginResponse is the backend payload that establishes a session
type VerifyLoginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     Role   `json:"role"`
}

// RegisterRequest carries a new account registration
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
	FullName string `json:"fullName"`
}

// VerifyEmailRequest completes the OTP challenge for a registration
type VerifyEmailRequest struct {
	Email string `json:"email"`
	OTP   string `json:"otp"`
}

// AuthError is an expected, user-facing authentication failure. Message is
// the server-reported text (or a generic fallback) and surfaces to the UI
// verbatim. Transport-level failures are plain wrapped errors, never
// *AuthError.
type AuthError struct {
	StatusCode int
	Message    string
}

func (e *AuthError) Error() string {
	return e.Message
}

// NewAuthError builds an AuthError, substituting fallback when the server
// supplied no message
func NewAuthError(statusCode int, message, fallback string) *AuthError {
	if message == "" {
		message = fallback
	}
	return &AuthError{StatusCode: statusCode, Message: message}
}

// SessionEvent is the audit payload published on login and logout
type SessionEvent struct {
	SessionID string    `json:"session_id"`
	Username  string    `json:"username"`
	Role      Role      `json:"role"`
	Timestamp time.Time `json:"timestamp"`
}
