package gateway_http

import (
	"context"
	"fmt"
	nethttp "net/http"
	"time"

	"github.com/dealerhub/portal/internal/pkg/httpclient"
	"github.com/dealerhub/portal/internal/pkg/models"
	"github.com/dealerhub/portal/services/catalog"
)

// BackendClient makes authenticated calls to the portal backend on behalf of
// a signed-in browser session
type BackendClient struct {
	client *httpclient.Client
}

// NewBackendClient creates a new backend client
func NewBackendClient(cfg models.AuthBackendConfig) *BackendClient {
	return &BackendClient{
		client: httpclient.NewClient(cfg.URL, time.Duration(cfg.Timeout)*time.Second),
	}
}

// Profile fetches the signed-in user's account record. A 401 reply comes
// back as catalog.ErrUnauthorized so the session manager can expire the
// local session.
func (c *BackendClient) Profile(ctx context.Context, headers map[string]string) (*models.Profile, error) {
	resp, err := c.client.Get(ctx, "/api/user/profile", headers)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode == nethttp.StatusUnauthorized {
		_ = httpclient.DecodeJSON(resp, nil)
		return nil, catalog.ErrUnauthorized
	}
	if resp.StatusCode >= 300 {
		_ = httpclient.DecodeJSON(resp, nil)
		return nil, fmt.Errorf("profile request failed with status %d", resp.StatusCode)
	}

	var profile models.Profile
	if err := httpclient.DecodeJSON(resp, &profile); err != nil {
		return nil, fmt.Errorf("failed to decode profile response: %w", err)
	}
	return &profile, nil
}
