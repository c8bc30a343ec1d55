package compare

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"reprocheck/config"
	"reprocheck/tabular"
	"reprocheck/types"
)

// FileComparator performs shape-aware comparison of validated artifact pairs.
// It is invoked only after both sides pass validation; well-formed-but-different
// inputs always come back as a result, never an error.
type FileComparator struct {
	scorer    *SemanticScorer
	tolerance float64
}

// NewFileComparator builds a comparator with the given absolute numeric
// tolerance. A non-positive tolerance falls back to the default.
func NewFileComparator(scorer *SemanticScorer, tolerance float64) *FileComparator {
	if tolerance <= 0 {
		tolerance = config.DefaultNumericTolerance
	}
	return &FileComparator{scorer: scorer, tolerance: tolerance}
}

// CompareFiles dispatches an artifact pair to the tabular, code, or scalar
// branch by file type. Mismatched extensions score 0.0 immediately. Load
// failures and embedding-backend failures are returned as errors.
func (c *FileComparator) CompareFiles(ctx context.Context, expectedPath, actualPath string) (*types.ComparisonResult, error) {
	expectedExt := strings.ToLower(filepath.Ext(expectedPath))
	actualExt := strings.ToLower(filepath.Ext(actualPath))

	if expectedExt != actualExt {
		return &types.ComparisonResult{
			Score: 0.0,
			Differences: []string{
				fmt.Sprintf("File type mismatch: %s vs %s", expectedExt, actualExt),
			},
		}, nil
	}

	switch types.KindForExt(expectedExt) {
	case types.KindCode:
		expectedSrc, err := os.ReadFile(expectedPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", expectedPath, err)
		}
		actualSrc, err := os.ReadFile(actualPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", actualPath, err)
		}
		return c.compareCode(ctx, string(expectedSrc), string(actualSrc))

	case types.KindTabular:
		expected, err := tabular.Open(expectedPath, config.DelimiterCandidates, 0)
		if err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", expectedPath, err)
		}
		actual, err := tabular.Open(actualPath, config.DelimiterCandidates, 0)
		if err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", actualPath, err)
		}
		if expected.IsScalar() && actual.IsScalar() {
			return c.compareScalars(expected.Cell(0, 0), actual.Cell(0, 0)), nil
		}
		return c.compareTables(ctx, expected, actual)

	default:
		return nil, fmt.Errorf("unsupported format: %s", expectedExt)
	}
}
