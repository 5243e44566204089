package jwt

import (
	"testing"

	"github.com/dealerhub/portal/internal/pkg/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestGenerateAndParseSessionToken(t *testing.T) {
	cfg := models.SessionConfig{
		CookieName: "dealerhub_session",
		Secret:     "test-secret",
		TTL:        60,
	}

	sid := uuid.New().String()

	tokenString, err := GenerateSessionToken(sid, cfg)
	assert.NoError(t, err)
	assert.NotEmpty(t, tokenString)

	parsed, err := ParseSessionID(tokenString, cfg.Secret)
	assert.NoError(t, err)
	assert.Equal(t, sid, parsed)
}

func TestParseSessionID_WrongSecret(t *testing.T) {
	cfg := models.SessionConfig{Secret: "secret-a", TTL: 60}

	tokenString, err := GenerateSessionToken(uuid.New().String(), cfg)
	assert.NoError(t, err)

	_, err = ParseSessionID(tokenString, "secret-b")
	assert.Error(t, err)
}

func TestParseSessionID_Garbage(t *testing.T) {
	_, err := ParseSessionID("not-a-token", "secret")
	assert.Error(t, err)
}
