// Package auth signs and verifies the session tokens carried in the browser
// cookie. The token only identifies a session; it grants no permissions.
package auth

import (
	"fmt"
	"time"

	"github.com/dmitrijs2005/liftlog/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Claims carries the standard claims plus the session identifier.
type Claims struct {
	jwt.RegisteredClaims
	SessionID string
}

// GenerateSessionToken returns an HS256 token for sessionID valid for ttl.
func GenerateSessionToken(sessionID string, secretKey []byte, ttl time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		SessionID: sessionID,
	})

	return token.SignedString(secretKey)
}

// SessionIDFromToken verifies the token and returns its session id. Every
// failure, including expiry, wraps common.ErrInvalidToken.
func SessionIDFromToken(tokenString string, secretKey []byte) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrInvalidToken, err)
	}

	if !token.Valid || claims.SessionID == "" {
		return "", common.ErrInvalidToken
	}

	return claims.SessionID, nil
}
