package searchindex

import "context"

// Hit is one nearest-neighbor match returned by the index, in similarity
// order.
type Hit struct {
	EntryID string  `json:"entryId"`
	Score   float64 `json:"score"`
}

// Index provides vector upsert and owner-scoped nearest-neighbor search.
type Index interface {
	// UpsertEntry stores the vector for entryID tagged with userID.
	UpsertEntry(ctx context.Context, entryID, userID string, vec []float32) error
	// Search returns the topK nearest entries restricted to userID.
	Search(ctx context.Context, userID string, vec []float32, topK int) ([]Hit, error)
}

// HealthPinger is optionally implemented by an Index to expose a health
// probe. Returns nil when healthy.
type HealthPinger interface {
	HealthPing(ctx context.Context) error
}
