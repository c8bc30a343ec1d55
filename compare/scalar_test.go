package compare

import "testing"

func TestCompareScalars(t *testing.T) {
	fc := NewFileComparator(NewSemanticScorer(bagEmbedder{}), 1e-6)

	cases := []struct {
		name      string
		expected  string
		actual    string
		wantScore float64
	}{
		{"floats within tolerance", "0.8", "0.8000000001", 1.0},
		{"floats outside tolerance", "0.8", "0.9", 0.0},
		{"nan equals nan", "NaN", "NaN", 1.0},
		{"non-float exact match", "passed", "passed", 1.0},
		{"non-float mismatch", "passed", "failed", 0.0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result := fc.compareScalars(tc.expected, tc.actual)
			if result.Score != tc.wantScore {
				t.Errorf("score = %v, want %v", result.Score, tc.wantScore)
			}
			if tc.wantScore == 1.0 && len(result.Differences) != 0 {
				t.Errorf("differences = %v, want none on a match", result.Differences)
			}
			if tc.wantScore == 0.0 && len(result.Differences) == 0 {
				t.Error("expected a recorded difference on a mismatch")
			}
		})
	}
}
