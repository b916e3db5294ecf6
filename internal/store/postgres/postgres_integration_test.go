package postgres

import (
	"context"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/auralog/auralog/internal/model"
)

func makeUserStore(t *testing.T) *UserStore {
	t.Helper()
	dsn := os.Getenv("AURALOG_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("AURALOG_POSTGRES_DSN not set; skipping postgres integration test")
	}
	db, err := Open(dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	s := NewWithDB(db)
	require.NoError(t, s.EnsureSchema(context.Background()))
	return s
}

func TestUserStore_CreateAndGet(t *testing.T) {
	s := makeUserStore(t)
	ctx := context.Background()
	username := "it-" + uuid.New().String()

	require.NoError(t, s.Create(ctx, &model.User{Username: username, PasswordHash: "hash1"}))

	got, err := s.Get(ctx, username)
	require.NoError(t, err)
	assert.Equal(t, username, got.Username)
	assert.Equal(t, "hash1", got.PasswordHash)
}

func TestUserStore_DuplicateUsername(t *testing.T) {
	s := makeUserStore(t)
	ctx := context.Background()
	username := "it-" + uuid.New().String()

	require.NoError(t, s.Create(ctx, &model.User{Username: username, PasswordHash: "hash1"}))
	err := s.Create(ctx, &model.User{Username: username, PasswordHash: "hash2"})
	assert.ErrorIs(t, err, model.ErrAlreadyExists)
}

func TestUserStore_GetUnknown(t *testing.T) {
	s := makeUserStore(t)

	_, err := s.Get(context.Background(), "no-such-user-"+uuid.New().String())
	assert.ErrorIs(t, err, model.ErrNotFound)
}
