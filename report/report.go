// Package report renders validation and comparison outcomes into the final
// human-readable summary. It is pure formatting and never fails: the worst
// case is a report stating that validation failed and why.
package report

import (
	"fmt"
	"sort"
	"strings"

	"reprocheck/types"
)

// Render assembles the full report for one artifact pair. The comparison
// section is emitted only when both sides validated successfully.
func Render(expected, actual *types.ValidationReport, comparison *types.ComparisonResult) string {
	var b strings.Builder
	b.WriteString("=== REPRODUCIBILITY REPORT ===\n")
	b.WriteString("\n[VALIDATION SUMMARY]\n")

	writeSide(&b, "EXPECTED", expected)
	writeSide(&b, "ACTUAL", actual)

	if expected != nil && actual != nil && expected.Valid && actual.Valid && comparison != nil {
		b.WriteString("\n[COMPARISON RESULTS]\n")
		fmt.Fprintf(&b, "\nReproducibility Score: %.2f/1.00\n", comparison.Score)

		if len(comparison.Differences) > 0 {
			b.WriteString("\nDifferences found:\n")
			for _, diff := range comparison.Differences {
				fmt.Fprintf(&b, "- %s\n", diff)
			}
		} else {
			b.WriteString("\n✅ Perfect match - fully reproducible!\n")
		}

		if len(comparison.Breakdown) > 0 {
			b.WriteString("\nScore Components:\n")
			names := make([]string, 0, len(comparison.Breakdown))
			for name := range comparison.Breakdown {
				names = append(names, name)
			}
			sort.Strings(names)
			for _, name := range names {
				fmt.Fprintf(&b, "- %s: %.2f\n", name, comparison.Breakdown[name])
			}
		}
	}

	return b.String()
}

func writeSide(b *strings.Builder, label string, r *types.ValidationReport) {
	fmt.Fprintf(b, "\n%s FILE:\n", label)
	if r == nil {
		b.WriteString("❌ Not validated\n")
		return
	}

	if r.Valid {
		b.WriteString("✅ Passed all checks\n")
		fmt.Fprintf(b, "File type: %s\n", r.FileType)
		writeMetadata(b, r)
	} else {
		b.WriteString("❌ Validation failed:\n")
		for _, err := range r.Errors {
			fmt.Fprintf(b, "- %s\n", err)
		}
	}
	for _, warning := range r.Warnings {
		fmt.Fprintf(b, "! %s\n", warning)
	}
}

// writeMetadata prints a short digest of the side's recorded metadata,
// shaped by artifact kind.
func writeMetadata(b *strings.Builder, r *types.ValidationReport) {
	if len(r.Columns) > 0 {
		fmt.Fprintf(b, "Columns: %s\n", strings.Join(r.Columns, ", "))
	}
	if shape, ok := r.Metadata["shape"].([]int); ok && len(shape) == 2 {
		fmt.Fprintf(b, "Shape: (%d, %d)\n", shape[0], shape[1])
	}
	if funcs, ok := r.Metadata["functions"].([]string); ok {
		fmt.Fprintf(b, "Functions: %d\n", len(funcs))
	}
	if typeNames, ok := r.Metadata["types"].([]string); ok {
		fmt.Fprintf(b, "Types: %d\n", len(typeNames))
	}
	if lines, ok := r.Metadata["line_count"].(int); ok {
		fmt.Fprintf(b, "Lines: %d\n", lines)
	}
}
