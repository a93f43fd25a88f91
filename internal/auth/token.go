// Package auth provides token issuance/verification and password hashing.
package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"leadflow-crm/internal/entities"
)

// Claims is the signed payload carried by an access token.
type Claims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// TokenManager signs and verifies HS256 access tokens.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenManager builds a manager with the signing secret and token lifetime.
func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	return &TokenManager{secret: []byte(secret), ttl: ttl}
}

// Issue signs a token embedding the identity. Expiry is now+ttl.
func (m *TokenManager) Issue(identity entities.Identity) (string, error) {
	now := time.Now()
	claims := Claims{
		Username: identity.Username,
		Role:     string(identity.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identity.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify parses the token, checking signature and expiry, and returns the
// embedded identity.
func (m *TokenManager) Verify(token string) (entities.Identity, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil || !parsed.Valid {
		return entities.Identity{}, fmt.Errorf("verify token: %w", errInvalidToken(err))
	}

	return entities.Identity{
		UserID:   claims.Subject,
		Username: claims.Username,
		Role:     entities.Role(claims.Role),
	}, nil
}

func errInvalidToken(err error) error {
	if err == nil {
		return fmt.Errorf("token invalid")
	}
	return err
}
