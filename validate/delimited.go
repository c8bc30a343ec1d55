package validate

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"reprocheck/tabular"
	"reprocheck/types"
)

// validateDelimited checks a delimited-text artifact: delimiter detection on
// the first line, then a bounded sample for column, header, and emptiness
// checks. Column names and inferred kinds are recorded as metadata.
func (v *Validator) validateDelimited(path string, report *types.ValidationReport) {
	firstLine, err := tabular.FirstLine(path)
	if err != nil {
		report.AddError(fmt.Sprintf("File unreadable: %v", err))
		return
	}
	if !utf8.ValidString(firstLine) {
		report.AddError("Encoding error - use UTF-8")
		return
	}

	delim := tabular.DetectDelimiter(firstLine, v.rules.DelimiterCandidates)
	if !v.delimiterAllowed(delim) {
		report.AddError(fmt.Sprintf(
			"Invalid delimiter %q. Use: %s", delim, strings.Join(v.rules.AllowedDelimiters, " ")))
		return
	}

	table, err := tabular.ReadCSV(path, delim, v.rules.SampleRows)
	if err != nil {
		report.AddError(fmt.Sprintf("CSV parsing error: %v", err))
		return
	}

	if table.ColCount() < v.rules.MinColumns {
		report.AddError(fmt.Sprintf("Minimum %d column(s) required", v.rules.MinColumns))
	}

	v.checkHeaders(table.Columns, report)

	switch table.RowCount() {
	case 0:
		report.AddError("Empty file - no data rows")
	case 1:
		report.AddWarning("Only one data row detected")
	}

	report.Columns = table.Columns
	report.Metadata["delimiter"] = delim
	report.Metadata["shape"] = []int{table.RowCount(), table.ColCount()}
	report.Metadata["dtypes"] = table.Kinds()
}

func (v *Validator) delimiterAllowed(delim string) bool {
	for _, allowed := range v.rules.AllowedDelimiters {
		if delim == allowed {
			return true
		}
	}
	return false
}
