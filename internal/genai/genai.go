// Package genai wraps the hosted language-model API used for summaries,
// embeddings, and speech-to-text.
package genai

import (
	"context"
	"io"
)

// Summarizer produces a natural-language summary with feedback for a journal
// transcript.
type Summarizer interface {
	Summarize(ctx context.Context, transcript string) (string, error)
}

// Embedder produces vector representations for text.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// Transcriber converts an uploaded audio stream to text.
type Transcriber interface {
	Transcribe(ctx context.Context, filename string, audio io.Reader) (string, error)
}
