// Package embedding computes semantic similarity between a resume and a job
// description using vector embeddings.
package embedding

import (
	"context"
	"math"
)

// Provider scores how semantically close two documents are on a 0-100 scale.
// Implementations are injected into the analyzer so scoring stays testable
// without network access.
type Provider interface {
	Similarity(ctx context.Context, resumeText, jobText string) (float64, error)
}

// CosineSimilarity returns the cosine of the angle between two vectors.
// Mismatched lengths or zero-magnitude vectors yield 0.
func CosineSimilarity(a, b []float32) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}

	if normA == 0 || normB == 0 {
		return 0
	}

	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// similarityScore converts a cosine value to the reported 0-100 scale,
// rounded to two decimals. Negative cosines clamp to 0.
func similarityScore(cosine float64) float64 {
	score := math.Round(cosine*100*100) / 100
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
