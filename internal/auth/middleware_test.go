package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/auralog/auralog/internal/model"
)

type fakeUsers struct {
	known map[string]*model.User
}

func (f *fakeUsers) Create(ctx context.Context, u *model.User) error {
	if _, ok := f.known[u.Username]; ok {
		return model.ErrAlreadyExists
	}
	f.known[u.Username] = u
	return nil
}

func (f *fakeUsers) Get(ctx context.Context, username string) (*model.User, error) {
	u, ok := f.known[username]
	if !ok {
		return nil, model.ErrNotFound
	}
	return u, nil
}

func protectedEcho(t *testing.T) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		username, ok := UsernameFromContext(r.Context())
		require.True(t, ok)
		_, _ = w.Write([]byte(username))
	})
}

func TestMiddleware_ValidToken(t *testing.T) {
	tokens := NewTokenService([]byte("secret"), time.Hour)
	users := &fakeUsers{known: map[string]*model.User{"alice": {Username: "alice"}}}
	h := Middleware(tokens, users)(protectedEcho(t))

	tok, err := tokens.Issue("alice")
	require.NoError(t, err)

	req := httptest.NewRequest("POST", "/summarize", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "alice", w.Body.String())
}

func TestMiddleware_MissingHeader(t *testing.T) {
	tokens := NewTokenService([]byte("secret"), time.Hour)
	users := &fakeUsers{known: map[string]*model.User{}}
	h := Middleware(tokens, users)(protectedEcho(t))

	req := httptest.NewRequest("POST", "/summarize", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"error":"Unauthorized","code":401,"message":"invalid credentials"}`, w.Body.String())
}

func TestMiddleware_ExpiredToken(t *testing.T) {
	tokens := NewTokenService([]byte("secret"), -1*time.Minute)
	users := &fakeUsers{known: map[string]*model.User{"alice": {Username: "alice"}}}
	h := Middleware(tokens, users)(protectedEcho(t))

	tok, err := tokens.Issue("alice")
	require.NoError(t, err)

	req := httptest.NewRequest("POST", "/summarize", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMiddleware_DeletedUserRejected(t *testing.T) {
	// A token can outlive its account; verification must re-check existence.
	tokens := NewTokenService([]byte("secret"), time.Hour)
	users := &fakeUsers{known: map[string]*model.User{}}
	h := Middleware(tokens, users)(protectedEcho(t))

	tok, err := tokens.Issue("ghost")
	require.NoError(t, err)

	req := httptest.NewRequest("POST", "/summarize", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"Unauthorized","code":401,"message":"unknown user"}`, w.Body.String())
}

func TestExtractBearerToken(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	_, err := ExtractBearerToken(req)
	assert.Error(t, err)

	req.Header.Set("Authorization", "Basic abc")
	_, err = ExtractBearerToken(req)
	assert.Error(t, err)

	req.Header.Set("Authorization", "Bearer tok123")
	tok, err := ExtractBearerToken(req)
	require.NoError(t, err)
	assert.Equal(t, "tok123", tok)
}
