package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/auralog/auralog/internal/api/respond"
	"github.com/auralog/auralog/internal/api/validate"
	"github.com/auralog/auralog/internal/model"
	"github.com/auralog/auralog/internal/services"
)

// AuthHandler serves /register and /token.
type AuthHandler struct {
	svc *services.AuthService
}

func NewAuthHandler(svc *services.AuthService) *AuthHandler { return &AuthHandler{svc: svc} }

// Register handles POST /register.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respond.WriteBadRequest(w, "invalid json")
		return
	}
	if err := validate.Credentials(in.Username, in.Password); err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}

	if err := h.svc.Register(r.Context(), in.Username, in.Password); err != nil {
		if errors.Is(err, model.ErrAlreadyExists) {
			respond.WriteBadRequest(w, "user already exists")
			return
		}
		log.Error().Err(err).Msg("register failed")
		respond.WriteInternalError(w, "registration failed")
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]string{"message": "User registered successfully"})
}

// Token handles POST /token. The body is form-encoded username/password, the
// OAuth2 password-grant shape the reference clients send.
func (h *AuthHandler) Token(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		respond.WriteBadRequest(w, "invalid form body")
		return
	}
	username := r.PostFormValue("username")
	password := r.PostFormValue("password")
	if err := validate.Credentials(username, password); err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}

	token, err := h.svc.Login(r.Context(), username, password)
	if err != nil {
		if errors.Is(err, model.ErrInvalidCredentials) {
			respond.WriteUnauthorized(w, "invalid credentials")
			return
		}
		log.Error().Err(err).Msg("login failed")
		respond.WriteInternalError(w, "login failed")
		return
	}

	respond.WriteJSON(w, http.StatusOK, map[string]string{
		"access_token": token,
		"token_type":   "bearer",
	})
}
