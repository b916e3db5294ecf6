package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/auralog/auralog/internal/api/respond"
	"github.com/auralog/auralog/internal/model"
	"github.com/auralog/auralog/internal/store"
)

type contextKey struct{}

var usernameKey contextKey

// UsernameFromContext returns the authenticated username stored by Middleware.
func UsernameFromContext(ctx context.Context) (string, bool) {
	u, ok := ctx.Value(usernameKey).(string)
	return u, ok
}

// ExtractBearerToken returns the token carried in the Authorization header.
// Anything other than a non-empty "Bearer <token>" value is rejected.
func ExtractBearerToken(r *http.Request) (string, error) {
	token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
	if !ok || token == "" {
		return "", model.ErrInvalidToken
	}
	return token, nil
}

// Middleware verifies the bearer token on protected routes, confirms the
// subject still exists in the credential store, and stores the username in the
// request context. Every token failure is a structured 401.
func Middleware(tokens *TokenService, users store.Users) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenString, err := ExtractBearerToken(r)
			if err != nil {
				respond.WriteUnauthorized(w, model.ErrInvalidCredentials.Error())
				return
			}

			username, err := tokens.Verify(tokenString)
			if err != nil {
				respond.WriteUnauthorized(w, model.ErrInvalidCredentials.Error())
				return
			}

			// The token is stateless; the account must still exist.
			if _, err := users.Get(r.Context(), username); err != nil {
				if !errors.Is(err, model.ErrNotFound) {
					log.Error().Err(err).Msg("credential store lookup failed during auth")
				}
				respond.WriteUnauthorized(w, model.ErrUnknownUser.Error())
				return
			}

			ctx := context.WithValue(r.Context(), usernameKey, username)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
