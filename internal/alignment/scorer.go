// Package alignment scores a journal entry's embedding against a user's goal
// vectors.
package alignment

import (
	"fmt"
	"math"
)

// Classification thresholds, evaluated in order.
const (
	alignedThreshold = 0.8
	partialThreshold = 0.5

	alignedLabel    = "Aligned with: %s"
	partialLabel    = "Partially aligned with: %s"
	misalignedLabel = "Misaligned with: %s"
)

// Cosine returns the cosine similarity of a and b, in [-1, 1]. A zero-length
// or zero-magnitude vector scores -1: it carries no directional signal and is
// treated as maximally misaligned rather than dividing by zero.
func Cosine(a, b []float32) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	var dot, normA, normB float64
	for i := 0; i < n; i++ {
		dot += float64(a[i]) * float64(b[i])
	}
	for _, v := range a {
		normA += float64(v) * float64(v)
	}
	for _, v := range b {
		normB += float64(v) * float64(v)
	}
	if normA == 0 || normB == 0 {
		return -1
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// Score classifies entry against each goal vector and returns one label per
// goal, in goal order. goals and vectors are index-aligned; output order
// matches input order and is not sorted by score. An empty profile yields an
// empty result.
func Score(entry []float32, goals []string, vectors [][]float32) []string {
	n := len(goals)
	if len(vectors) < n {
		n = len(vectors)
	}
	out := make([]string, 0, n)
	for i := 0; i < n; i++ {
		score := Cosine(entry, vectors[i])
		switch {
		case score > alignedThreshold:
			out = append(out, fmt.Sprintf(alignedLabel, goals[i]))
		case score > partialThreshold:
			out = append(out, fmt.Sprintf(partialLabel, goals[i]))
		default:
			out = append(out, fmt.Sprintf(misalignedLabel, goals[i]))
		}
	}
	return out
}
