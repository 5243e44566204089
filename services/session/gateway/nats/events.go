package gateway_nats

import (
	"context"
	"encoding/json"

	"github.com/dealerhub/portal/internal/pkg/constants"
	"github.com/dealerhub/portal/internal/pkg/models"
	natspkg "github.com/dealerhub/portal/internal/pkg/nats"
)

// NATSGateway publishes session lifecycle audit events
type NATSGateway struct {
	client *natspkg.Client
}

// NewNATSGateway creates a new NATS gateway
func NewNATSGateway(client *natspkg.Client) *NATSGateway {
	return &NATSGateway{
		client: client,
	}
}

// PublishSessionLogin publishes a login event
func (g *NATSGateway) PublishSessionLogin(ctx context.Context, event *models.SessionEvent) error {
	return g.publish(constants.SubjectSessionLogin, event)
}

// PublishSessionLogout publishes a logout event
func (g *NATSGateway) PublishSessionLogout(ctx context.Context, event *models.SessionEvent) error {
	return g.publish(constants.SubjectSessionLogout, event)
}

func (g *NATSGateway) publish(subject string, event *models.SessionEvent) error {
	if g.client == nil {
		// Audit bus is optional; without it events are dropped silently
		return nil
	}

	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return g.client.Publish(subject, data)
}
