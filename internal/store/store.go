package store

import (
	"context"

	"github.com/auralog/auralog/internal/model"
)

// Users is the credential store. Implementations live under
// internal/store/<driver>/ (e.g., postgres).
type Users interface {
	// Create inserts a new credential row. Returns model.ErrAlreadyExists
	// when the username is taken.
	Create(ctx context.Context, u *model.User) error
	// Get returns the credential row or model.ErrNotFound.
	Get(ctx context.Context, username string) (*model.User, error)
}
