package api

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/auralog/auralog/internal/api/respond"
	"github.com/auralog/auralog/internal/api/validate"
	"github.com/auralog/auralog/internal/auth"
	"github.com/auralog/auralog/internal/model"
	"github.com/auralog/auralog/internal/services"
)

// JournalHandler serves /summarize and /search.
type JournalHandler struct {
	svc *services.JournalService
}

func NewJournalHandler(svc *services.JournalService) *JournalHandler {
	return &JournalHandler{svc: svc}
}

// Summarize handles POST /summarize.
func (h *JournalHandler) Summarize(w http.ResponseWriter, r *http.Request) {
	username, ok := auth.UsernameFromContext(r.Context())
	if !ok {
		respond.WriteUnauthorized(w, "invalid credentials")
		return
	}

	var in struct {
		Transcript string `json:"transcript"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respond.WriteBadRequest(w, "invalid json")
		return
	}
	if err := validate.Transcript(in.Transcript); err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}

	result, err := h.svc.Summarize(r.Context(), username, in.Transcript)
	if err != nil {
		// Upstream details are logged, not leaked.
		log.Error().Err(err).Str("user", username).Msg("summarize failed")
		respond.WriteInternalError(w, "Summarization failed")
		return
	}
	respond.WriteJSON(w, http.StatusOK, result)
}

// Search handles POST /search.
func (h *JournalHandler) Search(w http.ResponseWriter, r *http.Request) {
	username, ok := auth.UsernameFromContext(r.Context())
	if !ok {
		respond.WriteUnauthorized(w, "invalid credentials")
		return
	}

	var in struct {
		QueryText string `json:"query_text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respond.WriteBadRequest(w, "invalid json")
		return
	}
	if err := validate.Query(in.QueryText); err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}

	matches, err := h.svc.Search(r.Context(), username, in.QueryText)
	if err != nil {
		log.Error().Err(err).Str("user", username).Msg("search failed")
		respond.WriteInternalError(w, "Search failed")
		return
	}
	if matches == nil {
		matches = []model.SearchMatch{}
	}
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{"matches": matches})
}
