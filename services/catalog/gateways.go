package catalog

import (
	"context"
	"errors"

	"github.com/dealerhub/portal/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/dealerhub/portal/services/catalog CatalogGW

// ErrUnauthorized signals the backend rejected the bearer token. The caller
// must expire the local session: the token was trusted until now.
var ErrUnauthorized = errors.New("backend rejected credentials")

// CatalogGW defines the authenticated backend calls the catalog proxies
type CatalogGW interface {
	Profile(ctx context.Context, headers map[string]string) (*models.Profile, error)
}
