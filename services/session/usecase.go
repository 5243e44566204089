package session

import (
	"context"

	"github.com/dealerhub/portal/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/dealerhub/portal/services/session SessionUC

// SessionUC mediates the two-step (password + OTP) authentication protocol,
// persists the resulting session and answers authorization queries.
//
// State machine per browser session: ANONYMOUS -> Login -> AWAITING_OTP ->
// VerifyLoginOTP -> AUTHENTICATED -> Logout -> ANONYMOUS. An email mismatch
// during OTP verification is a no-op transition.
type SessionUC interface {
	// Login submits credentials to the auth backend and stores the pending
	// challenge email. It does not create a session. Returns the email the
	// passcode was sent to.
	Login(ctx context.Context, sid, username, password string) (string, error)

	// VerifyLoginOTP completes the pending challenge. The email must match
	// the pending one exactly or the call fails without touching the
	// network. On success the session is persisted and the role redirect
	// path is returned.
	VerifyLoginOTP(ctx context.Context, sid, email, otp string) (string, error)

	// Logout best-effort notifies the backend, always clears local session
	// state, and returns the login redirect path.
	Logout(ctx context.Context, sid string) (string, error)

	// Register submits a new account registration; no session state changes.
	Register(ctx context.Context, req *models.RegisterRequest) error

	// VerifyEmail completes a registration OTP challenge.
	VerifyEmail(ctx context.Context, email, otp string) error

	// CurrentSession rehydrates the session from the store. The returned
	// session is anonymous (empty token) when no login has completed.
	CurrentSession(ctx context.Context, sid string) (*models.Session, error)

	// IsAuthenticated reports whether a token is persisted for the session.
	IsAuthenticated(ctx context.Context, sid string) (bool, error)

	// AuthHeaders reads the token fresh from the store and returns bearer
	// headers, or an empty map when unauthenticated. This is the only
	// interface other components use to make authenticated backend calls.
	AuthHeaders(ctx context.Context, sid string) (map[string]string, error)

	// Expire clears the session without notifying the backend. Called when
	// an authenticated backend call is rejected with 401.
	Expire(ctx context.Context, sid string) error
}
