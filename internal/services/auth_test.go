package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/auralog/auralog/internal/auth"
	"github.com/auralog/auralog/internal/model"
)

// memUsers is an in-memory credential store for tests.
type memUsers struct {
	mu   sync.Mutex
	rows map[string]*model.User
}

func newMemUsers() *memUsers { return &memUsers{rows: map[string]*model.User{}} }

func (m *memUsers) Create(ctx context.Context, u *model.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.rows[u.Username]; ok {
		return model.ErrAlreadyExists
	}
	cp := *u
	m.rows[u.Username] = &cp
	return nil
}

func (m *memUsers) Get(ctx context.Context, username string) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.rows[username]
	if !ok {
		return nil, model.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func newAuthFixture() (*AuthService, *memUsers, *auth.TokenService) {
	users := newMemUsers()
	tokens := auth.NewTokenService([]byte("test-secret"), time.Hour)
	return NewAuthService(users, tokens), users, tokens
}

func TestAuthService_RegisterStoresHashNotPlaintext(t *testing.T) {
	svc, users, _ := newAuthFixture()
	ctx := context.Background()

	require.NoError(t, svc.Register(ctx, "alice", "pw1"))

	stored, err := users.Get(ctx, "alice")
	require.NoError(t, err)
	assert.NotEmpty(t, stored.PasswordHash)
	assert.NotEqual(t, "pw1", stored.PasswordHash)
}

func TestAuthService_RegisterDuplicateFails(t *testing.T) {
	svc, _, _ := newAuthFixture()
	ctx := context.Background()

	require.NoError(t, svc.Register(ctx, "alice", "pw1"))
	err := svc.Register(ctx, "alice", "pw2")
	assert.ErrorIs(t, err, model.ErrAlreadyExists)
}

func TestAuthService_LoginIssuesVerifiableToken(t *testing.T) {
	svc, _, tokens := newAuthFixture()
	ctx := context.Background()

	require.NoError(t, svc.Register(ctx, "alice", "pw1"))

	tok, err := svc.Login(ctx, "alice", "pw1")
	require.NoError(t, err)

	username, err := tokens.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, "alice", username)
}

func TestAuthService_LoginFailuresAreIndistinguishable(t *testing.T) {
	svc, _, _ := newAuthFixture()
	ctx := context.Background()

	require.NoError(t, svc.Register(ctx, "alice", "pw1"))

	// Wrong password and unknown user must return the same error kind.
	_, errWrongPw := svc.Login(ctx, "alice", "pw2")
	_, errNoUser := svc.Login(ctx, "bob", "pw1")
	assert.ErrorIs(t, errWrongPw, model.ErrInvalidCredentials)
	assert.ErrorIs(t, errNoUser, model.ErrInvalidCredentials)
}

func TestAuthService_RegisterThenWrongThenRightPassword(t *testing.T) {
	svc, _, tokens := newAuthFixture()
	ctx := context.Background()

	require.NoError(t, svc.Register(ctx, "alice", "pw1"))
	assert.ErrorIs(t, func() error { _, err := svc.Login(ctx, "alice", "pw2"); return err }(), model.ErrInvalidCredentials)

	tok, err := svc.Login(ctx, "alice", "pw1")
	require.NoError(t, err)
	username, err := tokens.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, "alice", username)
}
