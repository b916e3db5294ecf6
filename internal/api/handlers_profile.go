package api

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/auralog/auralog/internal/api/respond"
	"github.com/auralog/auralog/internal/api/validate"
	"github.com/auralog/auralog/internal/auth"
	"github.com/auralog/auralog/internal/services"
)

// ProfileHandler serves /setup-profile.
type ProfileHandler struct {
	svc *services.ProfileService
}

func NewProfileHandler(svc *services.ProfileService) *ProfileHandler {
	return &ProfileHandler{svc: svc}
}

// SetupProfile handles POST /setup-profile. The new profile fully replaces
// any prior one.
func (h *ProfileHandler) SetupProfile(w http.ResponseWriter, r *http.Request) {
	username, ok := auth.UsernameFromContext(r.Context())
	if !ok {
		respond.WriteUnauthorized(w, "invalid credentials")
		return
	}

	var in struct {
		Goals      []string `json:"goals"`
		Principles []string `json:"principles"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respond.WriteBadRequest(w, "invalid json")
		return
	}
	if err := validate.Profile(in.Goals, in.Principles); err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}

	if err := h.svc.Setup(r.Context(), username, in.Goals, in.Principles); err != nil {
		log.Error().Err(err).Str("user", username).Msg("profile setup failed")
		respond.WriteInternalError(w, "Setup profile failed")
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]string{"message": "Profile set successfully"})
}
