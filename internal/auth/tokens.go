// Package auth issues and verifies the session tokens protecting the API.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/auralog/auralog/internal/model"
)

// Claims carries the registered claims plus the authenticated username as the
// token subject.
type Claims struct {
	jwt.RegisteredClaims
}

// TokenService mints and verifies stateless HS256 session tokens. There is no
// server-side session state and no revocation list; a token is valid until its
// embedded expiry.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret []byte, ttl time.Duration) *TokenService {
	return &TokenService{secret: secret, ttl: ttl}
}

// Issue returns a signed token for username expiring after the configured TTL.
func (s *TokenService) Issue(username string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.ttl)),
		},
	})
	return token.SignedString(s.secret)
}

// Verify parses and validates tokenString and returns the embedded username.
// Expired tokens fail with model.ErrTokenExpired; any other parse or signature
// failure maps to model.ErrInvalidToken. Callers must still confirm the
// username exists in the credential store.
func (s *TokenService) Verify(tokenString string) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, model.ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", model.ErrTokenExpired
		}
		return "", model.ErrInvalidToken
	}
	if !token.Valid || claims.Subject == "" {
		return "", model.ErrInvalidToken
	}
	return claims.Subject, nil
}
