package docstore

import (
	"context"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/auralog/auralog/internal/model"
)

func makeMongoDB(t *testing.T) *mongo.Database {
	t.Helper()
	uri := os.Getenv("AURALOG_MONGO_URI")
	if uri == "" {
		t.Skip("AURALOG_MONGO_URI not set; skipping mongo integration test")
	}
	client, err := Connect(context.Background(), uri)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Disconnect(context.Background()) })
	return client.Database("journal_app_test")
}

func TestMongoEntries_InsertAndFind(t *testing.T) {
	db := makeMongoDB(t)
	s := NewMongoEntries(db)
	ctx := context.Background()

	e := &model.JournalEntry{
		EntryID:    uuid.New().String(),
		UserID:     "alice",
		Transcript: "went for a run",
		Summary:    "ran today",
	}
	require.NoError(t, s.Insert(ctx, e))

	got, err := s.FindByIDs(ctx, []string{e.EntryID, "missing-id"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, e.Transcript, got[e.EntryID].Transcript)
	assert.Equal(t, e.Summary, got[e.EntryID].Summary)
}

func TestMongoEntries_FindEmptyIDs(t *testing.T) {
	db := makeMongoDB(t)
	s := NewMongoEntries(db)

	got, err := s.FindByIDs(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestMongoProfiles_ReplaceIsFullReplace(t *testing.T) {
	db := makeMongoDB(t)
	s := NewMongoProfiles(db)
	ctx := context.Background()
	userID := "it-" + uuid.New().String()

	first := &model.Profile{
		UserID:      userID,
		Goals:       []string{"exercise more", "read daily"},
		Principles:  []string{"honesty"},
		GoalVectors: [][]float32{{1, 0}, {0, 1}},
		PrincipleVectors: [][]float32{
			{0.5, 0.5},
		},
	}
	require.NoError(t, s.Replace(ctx, first))

	second := &model.Profile{
		UserID:      userID,
		Goals:       []string{"sleep earlier"},
		GoalVectors: [][]float32{{0, 1}},
	}
	require.NoError(t, s.Replace(ctx, second))

	got, err := s.Get(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, []string{"sleep earlier"}, got.Goals)
	assert.Empty(t, got.Principles, "old principles must not survive a replace")
	assert.Len(t, got.GoalVectors, 1)
}

func TestMongoProfiles_GetUnknown(t *testing.T) {
	db := makeMongoDB(t)
	s := NewMongoProfiles(db)

	_, err := s.Get(context.Background(), "no-such-user-"+uuid.New().String())
	assert.ErrorIs(t, err, model.ErrNotFound)
}
