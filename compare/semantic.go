package compare

import (
	"context"
	"fmt"
	"math"
)

// SemanticScorer computes cosine similarity between dense text embeddings.
// The provider handle is shared read-only across all comparisons.
type SemanticScorer struct {
	provider EmbeddingsProvider
}

// NewSemanticScorer wraps an embeddings provider.
func NewSemanticScorer(provider EmbeddingsProvider) *SemanticScorer {
	return &SemanticScorer{provider: provider}
}

// ModelName reports the underlying embedding model.
func (s *SemanticScorer) ModelName() string { return s.provider.ModelName() }

// Similarity embeds both texts in one batch and returns their cosine
// similarity in [-1, 1]. An embedding failure is fatal for the caller.
func (s *SemanticScorer) Similarity(ctx context.Context, text1, text2 string) (float64, error) {
	vecs, err := s.provider.EmbedTexts(ctx, []string{text1, text2})
	if err != nil {
		return 0, fmt.Errorf("failed to embed texts: %w", err)
	}
	if len(vecs) != 2 {
		return 0, fmt.Errorf("expected 2 embeddings, got %d", len(vecs))
	}
	return Cosine(vecs[0], vecs[1]), nil
}

// PairwiseSimilarity embeds two equal-length batches and returns the diagonal
// of the cross-similarity matrix: similarity of expected[i] to actual[i].
func (s *SemanticScorer) PairwiseSimilarity(ctx context.Context, expected, actual []string) ([]float64, error) {
	if len(expected) != len(actual) {
		return nil, fmt.Errorf("batch length mismatch: %d vs %d", len(expected), len(actual))
	}
	if len(expected) == 0 {
		return nil, nil
	}

	vecsE, err := s.provider.EmbedTexts(ctx, expected)
	if err != nil {
		return nil, fmt.Errorf("failed to embed expected batch: %w", err)
	}
	vecsA, err := s.provider.EmbedTexts(ctx, actual)
	if err != nil {
		return nil, fmt.Errorf("failed to embed actual batch: %w", err)
	}

	sims := make([]float64, len(expected))
	for i := range sims {
		sims[i] = Cosine(vecsE[i], vecsA[i])
	}
	return sims, nil
}

// Cosine returns the cosine similarity of two vectors.
// A zero vector yields 0.
func Cosine(a, b []float32) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	var dot, normA, normB float64
	for i := 0; i < n; i++ {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
