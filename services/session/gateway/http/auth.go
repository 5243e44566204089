package gateway_http

import (
	"context"
	"fmt"
	nethttp "net/http"
	"time"

	"github.com/dealerhub/portal/internal/pkg/httpclient"
	"github.com/dealerhub/portal/internal/pkg/models"
)

// AuthClient is an HTTP client for the external authentication backend.
// Non-2xx replies become *models.AuthError carrying the server-reported
// message verbatim; transport failures stay plain wrapped errors.
type AuthClient struct {
	client *httpclient.Client
}

// NewAuthClient creates a new auth backend client
func NewAuthClient(cfg models.AuthBackendConfig) *AuthClient {
	return &AuthClient{
		client: httpclient.NewClient(cfg.URL, time.Duration(cfg.Timeout)*time.Second),
	}
}

// backendMessage is the error envelope the backend uses on failures
type backendMessage struct {
	Message string `json:"message"`
}

// Login submits credentials; the response email may be empty
func (c *AuthClient) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {
	resp, err := c.client.Post(ctx, "/api/auth/login", nil, req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode >= 300 {
		return nil, authErrorFromResponse(resp, "Login failed")
	}

	var out models.LoginResponse
	if err := httpclient.DecodeJSON(resp, &out); err != nil {
		return nil, fmt.Errorf("failed to decode login response: %w", err)
	}
	return &out, nil
}

// VerifyLogin completes the OTP challenge and returns the session payload
func (c *AuthClient) VerifyLogin(ctx context.Context, req *models.VerifyLoginRequest) (*models.VerifyLoginResponse, error) {
	resp, err := c.client.Post(ctx, "/api/auth/verify-login", nil, req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode >= 300 {
		return nil, authErrorFromResponse(resp, "OTP verification failed")
	}

	var out models.VerifyLoginResponse
	if err := httpclient.DecodeJSON(resp, &out); err != nil {
		return nil, fmt.Errorf("failed to decode verify-login response: %w", err)
	}
	return &out, nil
}

// Logout notifies the backend that the token is done. The reply status is
// ignored; callers treat the whole call as best-effort.
func (c *AuthClient) Logout(ctx context.Context, token string) error {
	headers := map[string]string{
		"Authorization": "Bearer " + token,
	}

	resp, err := c.client.Post(ctx, "/api/auth/logout", headers, nil)
	if err != nil {
		return err
	}

	return httpclient.DecodeJSON(resp, nil)
}

// Register submits a new account registration
func (c *AuthClient) Register(ctx context.Context, req *models.RegisterRequest) error {
	resp, err := c.client.Post(ctx, "/api/auth/register", nil, req)
	if err != nil {
		return err
	}

	if resp.StatusCode >= 300 {
		return authErrorFromResponse(resp, "Registration failed")
	}

	return httpclient.DecodeJSON(resp, nil)
}

// VerifyEmail completes a registration OTP challenge
func (c *AuthClient) VerifyEmail(ctx context.Context, req *models.VerifyEmailRequest) error {
	resp, err := c.client.Post(ctx, "/api/auth/verify-email", nil, req)
	if err != nil {
		return err
	}

	if resp.StatusCode >= 300 {
		return authErrorFromResponse(resp, "Failed to verify OTP")
	}

	return httpclient.DecodeJSON(resp, nil)
}

// authErrorFromResponse drains the error envelope and builds an AuthError,
// falling back to a generic message when the body carries none
func authErrorFromResponse(resp *nethttp.Response, fallback string) *models.AuthError {
	var body backendMessage
	// Decode failures leave the message empty and the fallback applies
	_ = httpclient.DecodeJSON(resp, &body)

	return models.NewAuthError(resp.StatusCode, body.Message, fallback)
}
