package gateway

import (
	"context"

	"github.com/dealerhub/portal/internal/pkg/models"
)

// Login forwards to the HTTP auth client
func (g *SessionGW) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {
	return g.authClient.Login(ctx, req)
}

// VerifyLogin forwards to the HTTP auth client
func (g *SessionGW) VerifyLogin(ctx context.Context, req *models.VerifyLoginRequest) (*models.VerifyLoginResponse, error) {
	return g.authClient.VerifyLogin(ctx, req)
}

// Logout forwards to the HTTP auth client
func (g *SessionGW) Logout(ctx context.Context, token string) error {
	return g.authClient.Logout(ctx, token)
}

// Register forwards to the HTTP auth client
func (g *SessionGW) Register(ctx context.Context, req *models.RegisterRequest) error {
	return g.authClient.Register(ctx, req)
}

// VerifyEmail forwards to the HTTP auth client
func (g *SessionGW) VerifyEmail(ctx context.Context, req *models.VerifyEmailRequest) error {
	return g.authClient.VerifyEmail(ctx, req)
}

// PublishSessionLogin forwards to the NATS gateway
func (g *SessionGW) PublishSessionLogin(ctx context.Context, event *models.SessionEvent) error {
	return g.natsGateway.PublishSessionLogin(ctx, event)
}

// PublishSessionLogout forwards to the NATS gateway
func (g *SessionGW) PublishSessionLogout(ctx context.Context, event *models.SessionEvent) error {
	return g.natsGateway.PublishSessionLogout(ctx, event)
}
