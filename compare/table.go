package compare

import (
	"context"
	"fmt"
	"math"
	"strings"

	"reprocheck/config"
	"reprocheck/tabular"
	"reprocheck/types"
)

// compareTables scores two shape-equal tables: per-column numeric closeness
// under absolute tolerance and per-column row-wise embedding similarity for
// text columns. Column scores accumulate multiplicatively so a mismatching
// column can never be offset by another column's surplus.
func (c *FileComparator) compareTables(ctx context.Context, expected, actual *tabular.Table) (*types.ComparisonResult, error) {
	result := &types.ComparisonResult{Differences: []string{}}

	if expected.RowCount() != actual.RowCount() || expected.ColCount() != actual.ColCount() {
		result.AddDifference(fmt.Sprintf(
			"Shape mismatch: expected (%d, %d), got (%d, %d)",
			expected.RowCount(), expected.ColCount(), actual.RowCount(), actual.ColCount()))
		result.Score = 0.0
		return result, nil
	}

	if missing := columnDiff(expected, actual); len(missing) > 0 {
		result.AddDifference("Missing columns: " + strings.Join(missing, ", "))
	}
	if extra := columnDiff(actual, expected); len(extra) > 0 {
		result.AddDifference("Extra columns: " + strings.Join(extra, ", "))
	}

	numericScore := 1.0
	textScore := 1.0

	for i, name := range expected.Columns {
		j := actual.ColumnIndex(name)
		if j < 0 {
			continue
		}

		if expected.Kind(i) == tabular.ColumnNumeric {
			colScore, maxDiff := c.numericColumnScore(expected.FloatColumn(i), actual.FloatColumn(j))
			numericScore *= colScore
			if colScore < 1.0 {
				result.AddDifference(fmt.Sprintf(
					"Numeric deviation in '%s': max difference %.2e", name, maxDiff))
			}
			continue
		}

		sims, err := c.scorer.PairwiseSimilarity(ctx, expected.TextColumn(i), actual.TextColumn(j))
		if err != nil {
			return nil, err
		}
		colScore := mean(sims)
		textScore *= colScore
		if colScore < config.TextColumnReportThreshold {
			result.AddDifference(fmt.Sprintf(
				"Text difference in '%s': similarity %.2f", name, colScore))
		}
	}

	result.Score = config.TableNumericWeight*numericScore + config.TableTextWeight*textScore
	result.Breakdown = map[string]float64{
		"numeric_score": numericScore,
		"text_score":    textScore,
	}
	return result, nil
}

// numericColumnScore returns the fraction of row values within tolerance and
// the largest absolute deviation seen. NaN on both sides counts as close.
func (c *FileComparator) numericColumnScore(expected, actual []float64) (float64, float64) {
	if len(expected) == 0 {
		return 1.0, 0
	}

	close := 0
	maxDiff := 0.0
	for i := range expected {
		e, a := expected[i], actual[i]
		if math.IsNaN(e) && math.IsNaN(a) {
			close++
			continue
		}
		diff := math.Abs(e - a)
		if diff <= c.tolerance {
			close++
			continue
		}
		if !math.IsNaN(diff) && diff > maxDiff {
			maxDiff = diff
		}
	}
	return float64(close) / float64(len(expected)), maxDiff
}

// columnDiff returns columns of a that are absent from b, in a's order.
func columnDiff(a, b *tabular.Table) []string {
	var out []string
	for _, name := range a.Columns {
		if b.ColumnIndex(name) < 0 {
			out = append(out, name)
		}
	}
	return out
}

func mean(vals []float64) float64 {
	if len(vals) == 0 {
		return 1.0
	}
	sum := 0.0
	for _, v := range vals {
		sum += v
	}
	return sum / float64(len(vals))
}
