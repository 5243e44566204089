package session

import "context"

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/dealerhub/portal/services/session SessionStore

// SessionStore is the browser-session-scoped key/value store. Exactly three
// fields exist per session: authToken, user and pendingEmail.
type SessionStore interface {
	// Get returns the stored value, or "" when the field is absent
	Get(ctx context.Context, sid, field string) (string, error)

	// Set stores a field value, refreshing the session TTL
	Set(ctx context.Context, sid, field, value string) error

	// Delete removes the given fields
	Delete(ctx context.Context, sid string, fields ...string) error

	// Clear removes all session fields
	Clear(ctx context.Context, sid string) error
}
