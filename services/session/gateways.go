package session

import (
	"context"

	"github.com/dealerhub/portal/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/dealerhub/portal/services/session SessionGW

// SessionGW defines the session service gateways: the external auth backend
// and the audit event bus
type SessionGW interface {
	// Auth backend (HTTP)
	Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error)
	VerifyLogin(ctx context.Context, req *models.VerifyLoginRequest) (*models.VerifyLoginResponse, error)
	Logout(ctx context.Context, token string) error
	Register(ctx context.Context, req *models.RegisterRequest) error
	VerifyEmail(ctx context.Context, req *models.VerifyEmailRequest) error

	// Audit events (NATS)
	PublishSessionLogin(ctx context.Context, event *models.SessionEvent) error
	PublishSessionLogout(ctx context.Context, event *models.SessionEvent) error
}
