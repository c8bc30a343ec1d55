package compare

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"reprocheck/types"
)

// compareScalars handles artifacts that resolve to a single value. Two floats
// are close under the configured absolute tolerance; anything else requires
// exact equality. The score is binary.
func (c *FileComparator) compareScalars(expected, actual string) *types.ComparisonResult {
	result := &types.ComparisonResult{Differences: []string{}}

	e, errE := strconv.ParseFloat(strings.TrimSpace(expected), 64)
	a, errA := strconv.ParseFloat(strings.TrimSpace(actual), 64)

	if errE == nil && errA == nil {
		if math.Abs(e-a) <= c.tolerance || (math.IsNaN(e) && math.IsNaN(a)) {
			result.Score = 1.0
			return result
		}
		result.AddDifference(fmt.Sprintf("Numeric difference: %v vs %v", e, a))
		result.AddDifference(fmt.Sprintf("Absolute difference: %.2e", math.Abs(e-a)))
		result.Score = 0.0
		return result
	}

	if expected == actual {
		result.Score = 1.0
		return result
	}
	result.AddDifference("Scalar value mismatch")
	result.Score = 0.0
	return result
}
