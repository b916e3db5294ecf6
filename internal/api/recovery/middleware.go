// Package recovery converts handler panics into structured 500 responses.
package recovery

import (
	"net/http"
	"runtime/debug"

	"github.com/rs/zerolog/log"

	"github.com/auralog/auralog/internal/api/respond"
)

// Middleware turns a downstream panic into a logged, structured 500 so one
// bad request cannot take the server down.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			log.Error().
				Interface("panic", rec).
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Str("remote", r.RemoteAddr).
				Bytes("stack", debug.Stack()).
				Msg("request handler panicked")
			respond.WriteInternalError(w, "")
		}()
		next.ServeHTTP(w, r)
	})
}
