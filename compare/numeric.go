package compare

import (
	"math"
	"regexp"
	"strconv"
)

// numberRe matches an optional leading minus, one or more digits, and an
// optional decimal point with trailing digits.
var numberRe = regexp.MustCompile(`-?\d+\.?\d*`)

// NumericPair holds one positionally matched (expected, actual) value pair.
type NumericPair struct {
	Expected float64 `json:"expected"`
	Actual   float64 `json:"actual"`
}

// NumericResult is the outcome of matching the numeric tokens of two texts.
type NumericResult struct {
	Score        float64       `json:"score"`
	MatchedPairs []NumericPair `json:"matched_pairs"`
}

// ExtractNumbers pulls all numeric tokens from text, left to right,
// preserving order and duplicates.
func ExtractNumbers(text string) []float64 {
	matches := numberRe.FindAllString(text, -1)
	nums := make([]float64, 0, len(matches))
	for _, m := range matches {
		v, err := strconv.ParseFloat(m, 64)
		if err != nil {
			continue
		}
		nums = append(nums, v)
	}
	return nums
}

// ScoreNumerics extracts numbers from both texts and scores their positional
// alignment. Pairs are formed up to the shorter sequence's length; trailing
// unmatched numbers are ignored. Each pair scores exp(-|expected-actual|) and
// the final score is the mean. Two texts with no numbers at all score 1.0.
// A pairing that yields zero pairs also defaults to 1.0 instead of taking a
// degenerate empty mean.
func ScoreNumerics(expected, actual string) NumericResult {
	nums1 := ExtractNumbers(expected)
	nums2 := ExtractNumbers(actual)

	if len(nums1) == 0 && len(nums2) == 0 {
		return NumericResult{Score: 1.0}
	}

	n := len(nums1)
	if len(nums2) < n {
		n = len(nums2)
	}

	pairs := make([]NumericPair, 0, n)
	sum := 0.0
	for i := 0; i < n; i++ {
		pairs = append(pairs, NumericPair{Expected: nums1[i], Actual: nums2[i]})
		sum += math.Exp(-math.Abs(nums1[i] - nums2[i]))
	}

	if n == 0 {
		return NumericResult{Score: 1.0}
	}
	return NumericResult{Score: sum / float64(n), MatchedPairs: pairs}
}
