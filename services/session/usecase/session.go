package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/dealerhub/portal/internal/pkg/constants"
	"github.com/dealerhub/portal/internal/pkg/logger"
	"github.com/dealerhub/portal/internal/pkg/models"
)

// Login submits credentials to the auth backend. On success the returned
// email (or the submitted username when the backend omits it) becomes the
// pending challenge target. A repeated Login deliberately replaces any
// earlier pending challenge so a user restarting the flow is never locked
// out.
func (m *SessionManager) Login(ctx context.Context, sid, username, password string) (string, error) {
	resp, err := m.gw.Login(ctx, &models.LoginRequest{
		Username: username,
		Password: password,
	})
	if err != nil {
		return "", err
	}

	email := resp.Email
	if email == "" {
		email = username
	}

	if err := m.store.Set(ctx, sid, constants.FieldPendingEmail, email); err != nil {
		return "", fmt.Errorf("failed to store pending challenge: %w", err)
	}

	logger.Info("Login challenge issued",
		logger.String("session_id", sid),
		logger.String("username", username))

	return email, nil
}

// VerifyLoginOTP completes the pending challenge. The presented email must
// match the pending one byte-for-byte; a mismatch fails before any network
// call and leaves session state untouched.
func (m *SessionManager) VerifyLoginOTP(ctx context.Context, sid, email, otp string) (string, error) {
	pending, err := m.store.Get(ctx, sid, constants.FieldPendingEmail)
	if err != nil {
		return "", fmt.Errorf("failed to read pending challenge: %w", err)
	}
	if pending == "" || pending != email {
		return "", &models.AuthError{
			StatusCode: http.StatusBadRequest,
			Message:    "Email mismatch. Please try logging in again.",
		}
	}

	resp, err := m.gw.VerifyLogin(ctx, &models.VerifyLoginRequest{
		Email: email,
		OTP:   otp,
	})
	if err != nil {
		// Existing session state, including the pending challenge, stays
		// untouched on a failed verification.
		return "", err
	}

	user := &models.User{
		Username: resp.Username,
		Email:    resp.Email,
		FullName: resp.Username,
		Role:     resp.Role,
	}

	userJSON, err := json.Marshal(user)
	if err != nil {
		return "", fmt.Errorf("failed to encode user record: %w", err)
	}

	// The token goes in last: a partial write must leave the session
	// unauthenticated, never authenticated without a user record.
	if err := m.store.Set(ctx, sid, constants.FieldUser, string(userJSON)); err != nil {
		return "", fmt.Errorf("failed to persist user record: %w", err)
	}
	if err := m.store.Set(ctx, sid, constants.FieldAuthToken, resp.Token); err != nil {
		return "", fmt.Errorf("failed to persist session token: %w", err)
	}
	if err := m.store.Delete(ctx, sid, constants.FieldPendingEmail); err != nil {
		return "", fmt.Errorf("failed to clear pending challenge: %w", err)
	}

	m.publishEvent(ctx, constants.SubjectSessionLogin, sid, user)

	logger.Info("Session established",
		logger.String("session_id", sid),
		logger.String("username", user.Username),
		logger.String("role", string(user.Role)))

	return user.Role.RedirectPath(), nil
}

// Logout best-effort notifies the auth backend and always clears local
// session state. Backend failures are logged and swallowed.
func (m *SessionManager) Logout(ctx context.Context, sid string) (string, error) {
	token, err := m.store.Get(ctx, sid, constants.FieldAuthToken)
	if err != nil {
		return "", fmt.Errorf("failed to read session token: %w", err)
	}

	user := m.currentUser(ctx, sid)

	if token != "" {
		if err := m.gw.Logout(ctx, token); err != nil {
			logger.Warn("Logout notification failed",
				logger.String("session_id", sid),
				logger.Err(err))
		}
	}

	if err := m.store.Clear(ctx, sid); err != nil {
		return "", fmt.Errorf("failed to clear session: %w", err)
	}

	m.publishEvent(ctx, constants.SubjectSessionLogout, sid, user)

	logger.Info("Session cleared", logger.String("session_id", sid))

	return "/login", nil
}

// Register submits a new account registration. Session state is untouched;
// the registration OTP is confirmed separately via VerifyEmail.
func (m *SessionManager) Register(ctx context.Context, req *models.RegisterRequest) error {
	return m.gw.Register(ctx, req)
}

// VerifyEmail completes a registration OTP challenge
func (m *SessionManager) VerifyEmail(ctx context.Context, email, otp string) error {
	return m.gw.VerifyEmail(ctx, &models.VerifyEmailRequest{
		Email: email,
		OTP:   otp,
	})
}

// CurrentSession rehydrates token and user from the store. The token is
// trusted as-is; validity is unknown until a protected backend call rejects
// it.
func (m *SessionManager) CurrentSession(ctx context.Context, sid string) (*models.Session, error) {
	token, err := m.store.Get(ctx, sid, constants.FieldAuthToken)
	if err != nil {
		return nil, fmt.Errorf("failed to read session token: %w", err)
	}
	userJSON, err := m.store.Get(ctx, sid, constants.FieldUser)
	if err != nil {
		return nil, fmt.Errorf("failed to read user record: %w", err)
	}

	if token == "" || userJSON == "" {
		return &models.Session{}, nil
	}

	var user models.User
	if err := json.Unmarshal([]byte(userJSON), &user); err != nil {
		// A corrupt record cannot be rehydrated; drop the session rather
		// than serving a half-authenticated state.
		logger.Warn("Corrupt user record in session store, clearing session",
			logger.String("session_id", sid),
			logger.Err(err))
		if clearErr := m.store.Clear(ctx, sid); clearErr != nil {
			return nil, fmt.Errorf("failed to clear corrupt session: %w", clearErr)
		}
		return &models.Session{}, nil
	}

	return &models.Session{Token: token, User: &user}, nil
}

// IsAuthenticated reports whether a token is persisted for the session
func (m *SessionManager) IsAuthenticated(ctx context.Context, sid string) (bool, error) {
	token, err := m.store.Get(ctx, sid, constants.FieldAuthToken)
	if err != nil {
		return false, fmt.Errorf("failed to read session token: %w", err)
	}
	return token != "", nil
}

// AuthHeaders reads the token fresh from the store and returns bearer-auth
// headers, or an empty map when no token exists
func (m *SessionManager) AuthHeaders(ctx context.Context, sid string) (map[string]string, error) {
	token, err := m.store.Get(ctx, sid, constants.FieldAuthToken)
	if err != nil {
		return nil, fmt.Errorf("failed to read session token: %w", err)
	}
	if token == "" {
		return map[string]string{}, nil
	}

	return map[string]string{
		"Authorization": "Bearer " + token,
		"Content-Type":  "application/json",
	}, nil
}

// Expire clears the session without notifying the backend. Used when an
// authenticated backend call came back 401: the token is no longer valid,
// so the session transitions straight to anonymous.
func (m *SessionManager) Expire(ctx context.Context, sid string) error {
	if err := m.store.Clear(ctx, sid); err != nil {
		return fmt.Errorf("failed to expire session: %w", err)
	}

	logger.Info("Session expired by upstream rejection", logger.String("session_id", sid))
	return nil
}

// currentUser returns the stored user record or nil; used for audit events
func (m *SessionManager) currentUser(ctx context.Context, sid string) *models.User {
	userJSON, err := m.store.Get(ctx, sid, constants.FieldUser)
	if err != nil || userJSON == "" {
		return nil
	}

	var user models.User
	if err := json.Unmarshal([]byte(userJSON), &user); err != nil {
		return nil
	}
	return &user
}

// publishEvent sends a session lifecycle event; publish failures are logged,
// never surfaced
func (m *SessionManager) publishEvent(ctx context.Context, subject, sid string, user *models.User) {
	event := &models.SessionEvent{
		SessionID: sid,
		Timestamp: time.Now(),
	}
	if user != nil {
		event.Username = user.Username
		event.Role = user.Role
	}

	var err error
	switch subject {
	case constants.SubjectSessionLogin:
		err = m.gw.PublishSessionLogin(ctx, event)
	case constants.SubjectSessionLogout:
		err = m.gw.PublishSessionLogout(ctx, event)
	}
	if err != nil {
		logger.Warn("Failed to publish session event",
			logger.String("subject", subject),
			logger.Err(err))
	}
}
