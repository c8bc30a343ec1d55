package compare

import (
	"context"
	"math"
	"testing"
)

func TestCosine(t *testing.T) {
	cases := []struct {
		name string
		a, b []float32
		want float64
	}{
		{"identical", []float32{1, 2, 3}, []float32{1, 2, 3}, 1.0},
		{"orthogonal", []float32{1, 0}, []float32{0, 1}, 0.0},
		{"opposite", []float32{1, 0}, []float32{-1, 0}, -1.0},
		{"zero vector", []float32{0, 0}, []float32{1, 1}, 0.0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Cosine(tc.a, tc.b); math.Abs(got-tc.want) > 1e-9 {
				t.Errorf("Cosine = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestSimilarityEmbedsOneBatch(t *testing.T) {
	scorer := NewSemanticScorer(&stubEmbedder{vecs: map[string][]float32{
		"a": {1, 0},
		"b": {1, 0},
	}})

	got, err := scorer.Similarity(context.Background(), "a", "b")
	if err != nil {
		t.Fatalf("Similarity: %v", err)
	}
	if math.Abs(got-1.0) > 1e-9 {
		t.Errorf("similarity = %v, want 1.0", got)
	}
}

func TestSimilarityPropagatesBackendFailure(t *testing.T) {
	scorer := NewSemanticScorer(failingEmbedder{})
	if _, err := scorer.Similarity(context.Background(), "a", "b"); err == nil {
		t.Fatal("expected error from failing backend")
	}
}

func TestPairwiseSimilarityIsDiagonal(t *testing.T) {
	scorer := NewSemanticScorer(&stubEmbedder{vecs: map[string][]float32{
		"e0": {1, 0},
		"e1": {0, 1},
		"a0": {1, 0},
		"a1": {1, 0},
	}})

	sims, err := scorer.PairwiseSimilarity(context.Background(), []string{"e0", "e1"}, []string{"a0", "a1"})
	if err != nil {
		t.Fatalf("PairwiseSimilarity: %v", err)
	}
	if len(sims) != 2 {
		t.Fatalf("got %d similarities, want 2", len(sims))
	}
	// e0 pairs with a0 (same vector), e1 with a1 (orthogonal), never cross.
	if math.Abs(sims[0]-1.0) > 1e-9 || math.Abs(sims[1]-0.0) > 1e-9 {
		t.Errorf("diagonal = %v, want [1 0]", sims)
	}
}

func TestPairwiseSimilarityLengthMismatch(t *testing.T) {
	scorer := NewSemanticScorer(bagEmbedder{})
	if _, err := scorer.PairwiseSimilarity(context.Background(), []string{"a"}, nil); err == nil {
		t.Fatal("expected length mismatch error")
	}
}
