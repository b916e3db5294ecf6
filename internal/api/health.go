package api

import (
	"context"
	"net/http"
	"time"

	"github.com/auralog/auralog/internal/api/respond"
)

// Pinger reports connectivity to one backing dependency.
type Pinger interface {
	HealthPing(ctx context.Context) error
}

// HealthHandler serves GET /api/health by probing the backing stores.
type HealthHandler struct {
	deps map[string]Pinger
}

func NewHealthHandler(deps map[string]Pinger) *HealthHandler {
	return &HealthHandler{deps: deps}
}

func (h *HealthHandler) CheckHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	status := http.StatusOK
	components := make(map[string]string, len(h.deps))
	for name, dep := range h.deps {
		if err := dep.HealthPing(ctx); err != nil {
			components[name] = "unhealthy"
			status = http.StatusServiceUnavailable
			continue
		}
		components[name] = "healthy"
	}

	respond.WriteJSON(w, status, map[string]interface{}{
		"status":     http.StatusText(status),
		"components": components,
	})
}
