package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dealerhub/portal/internal/pkg/constants"
	"github.com/dealerhub/portal/internal/pkg/database"
	"github.com/dealerhub/portal/internal/pkg/models"
	"github.com/go-redis/redis/v8"
)

// SessionRepo is the Redis-backed session store. Each field lives under
// session:{sid}:{field} with the configured session TTL, refreshed on write.
type SessionRepo struct {
	client *database.RedisClient
	ttl    time.Duration
}

// NewSessionRepo creates a new Redis session store
func NewSessionRepo(cfg *models.Config, client *database.RedisClient) *SessionRepo {
	return &SessionRepo{
		client: client,
		ttl:    time.Duration(cfg.Session.TTL) * time.Minute,
	}
}

// Get returns the stored value, or "" when the field is absent
func (r *SessionRepo) Get(ctx context.Context, sid, field string) (string, error) {
	value, err := r.client.Get(ctx, sessionKey(sid, field))
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", fmt.Errorf("failed to read session field %s: %w", field, err)
	}
	return value, nil
}

// Set stores a field value with the session TTL
func (r *SessionRepo) Set(ctx context.Context, sid, field, value string) error {
	if err := r.client.Set(ctx, sessionKey(sid, field), value, r.ttl); err != nil {
		return fmt.Errorf("failed to write session field %s: %w", field, err)
	}
	return nil
}

// Delete removes the given fields
func (r *SessionRepo) Delete(ctx context.Context, sid string, fields ...string) error {
	if len(fields) == 0 {
		return nil
	}

	keys := make([]string, 0, len(fields))
	for _, field := range fields {
		keys = append(keys, sessionKey(sid, field))
	}

	if err := r.client.Delete(ctx, keys...); err != nil {
		return fmt.Errorf("failed to delete session fields: %w", err)
	}
	return nil
}

// Clear removes all session fields
func (r *SessionRepo) Clear(ctx context.Context, sid string) error {
	return r.Delete(ctx, sid,
		constants.FieldAuthToken,
		constants.FieldUser,
		constants.FieldPendingEmail,
	)
}

func sessionKey(sid, field string) string {
	return fmt.Sprintf(constants.SessionKeyFormat, sid, field)
}
