package compare

import (
	"context"
	"math"
	"testing"
)

func TestTextCompareIdenticalText(t *testing.T) {
	tc := NewTextComparator(NewSemanticScorer(bagEmbedder{}))

	result, err := tc.Compare(context.Background(), "Verification Score: 0.8", "Verification Score: 0.8")
	if err != nil {
		t.Fatalf("Compare: %v", err)
	}
	if math.Abs(result.CompositeScore-1.0) > 1e-9 {
		t.Errorf("composite = %v, want 1.0", result.CompositeScore)
	}
	if result.Result != VerdictPerfect {
		t.Errorf("verdict = %q, want %q", result.Result, VerdictPerfect)
	}
}

func TestTextCompareWeighting(t *testing.T) {
	// Orthogonal embeddings (semantic 0) with matching numbers (numeric 1):
	// composite = 0.5*0 + 0.5*1.
	tc := NewTextComparator(NewSemanticScorer(&stubEmbedder{vecs: map[string][]float32{
		"alpha 3": {1, 0},
		"omega 3": {0, 1},
	}}))

	result, err := tc.Compare(context.Background(), "alpha 3", "omega 3")
	if err != nil {
		t.Fatalf("Compare: %v", err)
	}
	if math.Abs(result.CompositeScore-0.5) > 1e-9 {
		t.Errorf("composite = %v, want 0.5", result.CompositeScore)
	}
	if result.SemanticScore != 0 || result.NumericScore != 1 {
		t.Errorf("breakdown = (%v, %v), want (0, 1)", result.SemanticScore, result.NumericScore)
	}
}

func TestTextCompareNormalizesBeforeScoring(t *testing.T) {
	// Whitespace-mangled input must be cleaned before embedding.
	tc := NewTextComparator(NewSemanticScorer(&stubEmbedder{vecs: map[string][]float32{
		"a b": {1, 0},
	}}))

	result, err := tc.Compare(context.Background(), "  a\t\tb ", "a b")
	if err != nil {
		t.Fatalf("Compare: %v", err)
	}
	if math.Abs(result.CompositeScore-1.0) > 1e-9 {
		t.Errorf("composite = %v, want 1.0", result.CompositeScore)
	}
}

func TestTextCompareSymmetric(t *testing.T) {
	tc := NewTextComparator(NewSemanticScorer(bagEmbedder{}))

	a := "Mean accuracy was 0.91 across 5 folds"
	b := "Accuracy averaged 0.90 over five folds"

	ab, err := tc.Compare(context.Background(), a, b)
	if err != nil {
		t.Fatalf("Compare(a,b): %v", err)
	}
	ba, err := tc.Compare(context.Background(), b, a)
	if err != nil {
		t.Fatalf("Compare(b,a): %v", err)
	}
	if math.Abs(ab.CompositeScore-ba.CompositeScore) > 1e-9 {
		t.Errorf("asymmetric composite: %v vs %v", ab.CompositeScore, ba.CompositeScore)
	}
}

func TestTextCompareEmptyActual(t *testing.T) {
	// Numeric extraction yields [0.8] vs []: zero pairs default the numeric
	// score to 1.0, so the composite is 0.5*semantic + 0.5.
	tc := NewTextComparator(NewSemanticScorer(&stubEmbedder{vecs: map[string][]float32{
		"Verification Score: 0.8": {1, 0},
		"":                        {0, 1},
	}}))

	result, err := tc.Compare(context.Background(), "Verification Score: 0.8", "")
	if err != nil {
		t.Fatalf("Compare: %v", err)
	}
	if result.NumericScore != 1.0 {
		t.Errorf("numeric score = %v, want 1.0", result.NumericScore)
	}
	if math.Abs(result.CompositeScore-0.5) > 1e-9 {
		t.Errorf("composite = %v, want 0.5", result.CompositeScore)
	}
}

func TestTextComparePropagatesBackendFailure(t *testing.T) {
	tc := NewTextComparator(NewSemanticScorer(failingEmbedder{}))
	if _, err := tc.Compare(context.Background(), "a", "b"); err == nil {
		t.Fatal("expected error from failing backend")
	}
}
