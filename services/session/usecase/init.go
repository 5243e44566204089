package usecase

import (
	"github.com/dealerhub/portal/services/session"
)

type SessionManager struct {
	store session.SessionStore
	gw    session.SessionGW
}

// NewSessionManager creates a new session manager instance
func NewSessionManager(
	store session.SessionStore,
	gw session.SessionGW,
) *SessionManager {
	return &SessionManager{
		store: store,
		gw:    gw,
	}
}
