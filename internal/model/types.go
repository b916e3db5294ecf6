package model

// User is a credential-store row. Accounts are created at registration and
// never mutated afterwards.
type User struct {
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
}

// Profile holds a user's goals and principles together with their embedding
// vectors. Vectors are index-aligned with the texts. A profile setup fully
// replaces any prior profile.
type Profile struct {
	UserID           string      `json:"userId" bson:"_id"`
	Goals            []string    `json:"goals" bson:"goals"`
	Principles       []string    `json:"principles" bson:"principles"`
	GoalVectors      [][]float32 `json:"-" bson:"goal_vectors"`
	PrincipleVectors [][]float32 `json:"-" bson:"principle_vectors"`
}

// JournalEntry is an immutable journal record. The summary is generated once
// at creation time.
type JournalEntry struct {
	EntryID    string `json:"id" bson:"_id"`
	UserID     string `json:"userId" bson:"user_id"`
	Transcript string `json:"transcript" bson:"transcript"`
	Summary    string `json:"summary" bson:"summary"`
}

// SearchMatch is one hydrated semantic-search result.
type SearchMatch struct {
	EntryID    string `json:"id"`
	Transcript string `json:"transcript"`
	Summary    string `json:"summary"`
}
