package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/auralog/auralog/internal/model"
	"github.com/auralog/auralog/internal/store"
)

// Open opens a PostgreSQL connection using the pgx stdlib driver and verifies
// connectivity.
func Open(dsn string) (*sql.DB, error) {
	if dsn == "" {
		return nil, fmt.Errorf("postgres DSN is empty")
	}
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// NewWithDB constructs a credential store backed directly by database/sql.
func NewWithDB(db *sql.DB) *UserStore { return &UserStore{db: db} }

// UserStore implements store.Users on Postgres.
type UserStore struct{ db *sql.DB }

var _ store.Users = (*UserStore)(nil)

// EnsureSchema creates the credential table when it does not exist.
func (s *UserStore) EnsureSchema(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `
        CREATE TABLE IF NOT EXISTS users (
            username      TEXT PRIMARY KEY,
            password_hash TEXT NOT NULL
        )
    `)
	return err
}

func (s *UserStore) Create(ctx context.Context, u *model.User) error {
	_, err := s.db.ExecContext(ctx, `
        INSERT INTO users (username, password_hash) VALUES ($1, $2)
    `, u.Username, u.PasswordHash)
	if err != nil {
		var pgErr *pgconn.PgError
		// 23505 = unique_violation
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return model.ErrAlreadyExists
		}
		return err
	}
	return nil
}

func (s *UserStore) Get(ctx context.Context, username string) (*model.User, error) {
	var out model.User
	row := s.db.QueryRowContext(ctx, `
        SELECT username, password_hash FROM users WHERE username=$1
    `, username)
	if err := row.Scan(&out.Username, &out.PasswordHash); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrNotFound
		}
		return nil, err
	}
	return &out, nil
}

// HealthPing reports connectivity to Postgres.
func (s *UserStore) HealthPing(ctx context.Context) error {
	return s.db.PingContext(ctx)
}
