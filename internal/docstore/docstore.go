// Package docstore holds the document-store adapters for journal entries and
// user profiles.
package docstore

import (
	"context"

	"github.com/auralog/auralog/internal/model"
)

// Entries persists immutable journal entries.
type Entries interface {
	// Insert stores a new entry document.
	Insert(ctx context.Context, e *model.JournalEntry) error
	// FindByIDs returns the entries matching ids, keyed by entry id. Missing
	// ids are simply absent from the result.
	FindByIDs(ctx context.Context, ids []string) (map[string]*model.JournalEntry, error)
}

// Profiles persists per-user goal/principle profiles.
type Profiles interface {
	// Replace upserts the profile, fully replacing any prior document.
	Replace(ctx context.Context, p *model.Profile) error
	// Get returns the profile or model.ErrNotFound when the user has none.
	Get(ctx context.Context, userID string) (*model.Profile, error)
}
