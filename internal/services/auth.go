package services

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/auralog/auralog/internal/auth"
	"github.com/auralog/auralog/internal/model"
	"github.com/auralog/auralog/internal/store"
)

// AuthService handles registration and login against the credential store.
type AuthService struct {
	users  store.Users
	tokens *auth.TokenService
}

func NewAuthService(users store.Users, tokens *auth.TokenService) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

// Register stores a new username with a bcrypt hash of password. Returns
// model.ErrAlreadyExists when the username is taken.
func (s *AuthService) Register(ctx context.Context, username, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	return s.users.Create(ctx, &model.User{Username: username, PasswordHash: string(hash)})
}

// Login checks the password against the stored hash and issues a session
// token. Unknown usernames and wrong passwords both return
// model.ErrInvalidCredentials so callers cannot enumerate accounts.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	u, err := s.users.Get(ctx, username)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return "", model.ErrInvalidCredentials
		}
		return "", err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return "", model.ErrInvalidCredentials
	}
	return s.tokens.Issue(username)
}
