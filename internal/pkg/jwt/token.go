package jwt

import (
	"fmt"
	"time"

	"github.com/dealerhub/portal/internal/pkg/models"
	"github.com/golang-jwt/jwt/v4"
)

// GenerateSessionToken signs a browser-session ID into a JWT for the session
// cookie. The token expires with the session store TTL.
func GenerateSessionToken(sessionID string, cfg models.SessionConfig) (string, error) {
	expirationTime := time.Now().Add(time.Duration(cfg.TTL) * time.Minute)

	claims := jwt.MapClaims{
		"sid": sessionID,
		"iat": time.Now().Unix(),
		"exp": expirationTime.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString([]byte(cfg.Secret))
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// ParseSessionID validates a session cookie token and returns the sid claim
func ParseSessionID(tokenString, secret string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", fmt.Errorf("invalid session token")
	}

	sid, ok := claims["sid"].(string)
	if !ok || sid == "" {
		return "", fmt.Errorf("invalid session token: missing sid claim")
	}

	return sid, nil
}
