package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/auralog/auralog/internal/alignment"
	"github.com/auralog/auralog/internal/docstore"
	"github.com/auralog/auralog/internal/genai"
	"github.com/auralog/auralog/internal/model"
	"github.com/auralog/auralog/internal/searchindex"
)

// SummarizeResult is the outcome of a summarize call: the generated summary
// plus one alignment label per profile goal.
type SummarizeResult struct {
	Summary       string   `json:"summary"`
	GoalAlignment []string `json:"goal_alignment"`
}

// JournalService orchestrates entry summarization and semantic search.
type JournalService struct {
	entries    docstore.Entries
	profiles   docstore.Profiles
	idx        searchindex.Index
	summarizer genai.Summarizer
	embedder   genai.Embedder
	topK       int
}

func NewJournalService(entries docstore.Entries, profiles docstore.Profiles, idx searchindex.Index, summarizer genai.Summarizer, embedder genai.Embedder, topK int) *JournalService {
	return &JournalService{
		entries:    entries,
		profiles:   profiles,
		idx:        idx,
		summarizer: summarizer,
		embedder:   embedder,
		topK:       topK,
	}
}

// Summarize runs the full entry pipeline: summary, embedding, persistence in
// the entry store and the vector index, then goal-alignment scoring against
// the caller's profile. Any failure before the alignment step fails the whole
// call; the entry-store and index writes are not transactional with each
// other.
func (s *JournalService) Summarize(ctx context.Context, userID, transcript string) (*SummarizeResult, error) {
	summary, err := s.summarizer.Summarize(ctx, transcript)
	if err != nil {
		return nil, fmt.Errorf("summarization unavailable: %w", err)
	}

	vec, err := s.embedder.Embed(ctx, transcript)
	if err != nil {
		return nil, fmt.Errorf("embedding unavailable: %w", err)
	}

	entry := &model.JournalEntry{
		EntryID:    uuid.New().String(),
		UserID:     userID,
		Transcript: transcript,
		Summary:    summary,
	}
	if err := s.entries.Insert(ctx, entry); err != nil {
		return nil, fmt.Errorf("persist entry: %w", err)
	}
	if err := s.idx.UpsertEntry(ctx, entry.EntryID, userID, vec); err != nil {
		return nil, fmt.Errorf("index entry: %w", err)
	}

	labels, err := s.scoreAlignment(ctx, userID, vec)
	if err != nil {
		return nil, err
	}
	return &SummarizeResult{Summary: summary, GoalAlignment: labels}, nil
}

// scoreAlignment loads the caller's profile and classifies the entry vector
// against each stored goal. No profile means no feedback, not an error.
func (s *JournalService) scoreAlignment(ctx context.Context, userID string, vec []float32) ([]string, error) {
	profile, err := s.profiles.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("load profile: %w", err)
	}
	return alignment.Score(vec, profile.Goals, profile.GoalVectors), nil
}

// Search embeds the query, asks the index for the caller's nearest entries,
// and hydrates the matches from the entry store in index order. An empty
// result set is a valid outcome.
func (s *JournalService) Search(ctx context.Context, userID, query string) ([]model.SearchMatch, error) {
	vec, err := s.embedder.Embed(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("embedding unavailable: %w", err)
	}

	hits, err := s.idx.Search(ctx, userID, vec, s.topK)
	if err != nil {
		return nil, fmt.Errorf("index search: %w", err)
	}

	ids := make([]string, 0, len(hits))
	for _, h := range hits {
		ids = append(ids, h.EntryID)
	}
	byID, err := s.entries.FindByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("hydrate entries: %w", err)
	}

	out := make([]model.SearchMatch, 0, len(hits))
	for _, h := range hits {
		e, ok := byID[h.EntryID]
		if !ok {
			// Index point without a document; skip rather than fail.
			continue
		}
		out = append(out, model.SearchMatch{
			EntryID:    e.EntryID,
			Transcript: e.Transcript,
			Summary:    e.Summary,
		})
	}
	return out, nil
}
