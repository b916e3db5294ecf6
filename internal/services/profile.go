package services

import (
	"context"
	"fmt"

	"github.com/auralog/auralog/internal/docstore"
	"github.com/auralog/auralog/internal/genai"
	"github.com/auralog/auralog/internal/model"
)

// ProfileService replaces a user's goals and principles together with their
// embedding vectors.
type ProfileService struct {
	profiles docstore.Profiles
	embedder genai.Embedder
}

func NewProfileService(profiles docstore.Profiles, embedder genai.Embedder) *ProfileService {
	return &ProfileService{profiles: profiles, embedder: embedder}
}

// Setup embeds every goal and principle and upserts the profile document,
// fully replacing any prior profile for the user.
func (s *ProfileService) Setup(ctx context.Context, userID string, goals, principles []string) error {
	goalVecs, err := s.embedAll(ctx, goals)
	if err != nil {
		return fmt.Errorf("embed goals: %w", err)
	}
	principleVecs, err := s.embedAll(ctx, principles)
	if err != nil {
		return fmt.Errorf("embed principles: %w", err)
	}

	return s.profiles.Replace(ctx, &model.Profile{
		UserID:           userID,
		Goals:            goals,
		Principles:       principles,
		GoalVectors:      goalVecs,
		PrincipleVectors: principleVecs,
	})
}

func (s *ProfileService) embedAll(ctx context.Context, texts []string) ([][]float32, error) {
	out := make([][]float32, 0, len(texts))
	for _, t := range texts {
		vec, err := s.embedder.Embed(ctx, t)
		if err != nil {
			return nil, err
		}
		out = append(out, vec)
	}
	return out, nil
}
