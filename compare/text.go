package compare

import (
	"context"

	"reprocheck/config"
)

// TextResult is the outcome of comparing two free-text snippets.
type TextResult struct {
	CompositeScore float64       `json:"composite_score"`
	SemanticScore  float64       `json:"semantic_score"`
	NumericScore   float64       `json:"numeric_score"`
	MatchedPairs   []NumericPair `json:"matched_pairs,omitempty"`
	Result         string        `json:"result"`
}

// TextComparator combines semantic similarity and numeric matching into a
// single composite score with a qualitative verdict.
type TextComparator struct {
	scorer *SemanticScorer
}

// NewTextComparator builds a comparator on top of a shared semantic scorer.
func NewTextComparator(scorer *SemanticScorer) *TextComparator {
	return &TextComparator{scorer: scorer}
}

// Compare normalizes both texts, scores them semantically and numerically,
// and blends the two into the composite score. The only error condition is
// the embedding backend being unavailable.
func (t *TextComparator) Compare(ctx context.Context, expected, actual string) (*TextResult, error) {
	expectedClean := CleanText(expected)
	actualClean := CleanText(actual)

	semantic, err := t.scorer.Similarity(ctx, expectedClean, actualClean)
	if err != nil {
		return nil, err
	}

	numeric := ScoreNumerics(expectedClean, actualClean)

	composite := config.TextSemanticWeight*semantic + config.TextNumericWeight*numeric.Score

	return &TextResult{
		CompositeScore: composite,
		SemanticScore:  semantic,
		NumericScore:   numeric.Score,
		MatchedPairs:   numeric.MatchedPairs,
		Result:         Verdict(composite),
	}, nil
}
