package compare

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestExtractNumbers(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want []float64
	}{
		{"integers and floats", "score 0.8 over 5 runs", []float64{0.8, 5}},
		{"negative", "delta -3.5", []float64{-3.5}},
		{"duplicates kept in order", "1 2 1", []float64{1, 2, 1}},
		{"trailing dot", "val 5. end", []float64{5}},
		{"none", "no numbers here", nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ExtractNumbers(tc.in)
			if len(got) == 0 {
				got = nil
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("ExtractNumbers(%q) mismatch (-want +got):\n%s", tc.in, diff)
			}
		})
	}
}

func TestScoreNumericsSelfIsPerfect(t *testing.T) {
	for _, text := range []string{"Verification Score: 0.8", "1 2 3 4", "no numbers"} {
		if got := ScoreNumerics(text, text).Score; got != 1.0 {
			t.Errorf("ScoreNumerics(%q, same) = %v, want 1.0", text, got)
		}
	}
}

func TestScoreNumericsExponentialDecay(t *testing.T) {
	if got := ScoreNumerics("5", "5").Score; got != 1.0 {
		t.Errorf("identical values: score %v, want 1.0", got)
	}

	got := ScoreNumerics("5", "6").Score
	want := math.Exp(-1)
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("distance 1: score %v, want %v", got, want)
	}
}

func TestScoreNumericsEmptyConventions(t *testing.T) {
	// Both sides empty: nothing to disagree on.
	r := ScoreNumerics("alpha", "beta")
	if r.Score != 1.0 || len(r.MatchedPairs) != 0 {
		t.Errorf("no numbers: got score %v pairs %v", r.Score, r.MatchedPairs)
	}

	// One side empty yields zero pairs; score defaults to 1.0 by convention.
	r = ScoreNumerics("Verification Score: 0.8", "")
	if r.Score != 1.0 {
		t.Errorf("zero pairs: got score %v, want 1.0", r.Score)
	}
	if len(r.MatchedPairs) != 0 {
		t.Errorf("zero pairs: got %d matched pairs", len(r.MatchedPairs))
	}
}

func TestScoreNumericsIgnoresTrailingUnmatched(t *testing.T) {
	// The longer side's extra numbers are silently ignored.
	r := ScoreNumerics("1 2 3", "1 2")
	if r.Score != 1.0 {
		t.Errorf("score %v, want 1.0", r.Score)
	}
	want := []NumericPair{{Expected: 1, Actual: 1}, {Expected: 2, Actual: 2}}
	if diff := cmp.Diff(want, r.MatchedPairs); diff != "" {
		t.Errorf("matched pairs mismatch (-want +got):\n%s", diff)
	}
}

func TestScoreNumericsMeanOfPairScores(t *testing.T) {
	// Pairs (1,1) and (1,2): mean of 1 and exp(-1).
	got := ScoreNumerics("1 1", "1 2").Score
	want := (1 + math.Exp(-1)) / 2
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("score %v, want %v", got, want)
	}
}
