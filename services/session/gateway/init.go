package gateway

import (
	"github.com/dealerhub/portal/internal/pkg/models"
	natspkg "github.com/dealerhub/portal/internal/pkg/nats"
	gateway_http "github.com/dealerhub/portal/services/session/gateway/http"
	gateway_nats "github.com/dealerhub/portal/services/session/gateway/nats"
)

// SessionGW combines the HTTP auth backend client and the NATS event
// publisher behind the session.SessionGW interface
type SessionGW struct {
	authClient  *gateway_http.AuthClient
	natsGateway *gateway_nats.NATSGateway
}

// NewSessionGW creates the combined gateway. natsClient may be nil when no
// audit bus is configured.
func NewSessionGW(natsClient *natspkg.Client, backendCfg models.AuthBackendConfig) *SessionGW {
	return &SessionGW{
		authClient:  gateway_http.NewAuthClient(backendCfg),
		natsGateway: gateway_nats.NewNATSGateway(natsClient),
	}
}
