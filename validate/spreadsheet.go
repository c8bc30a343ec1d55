package validate

import (
	"fmt"
	"strings"

	"reprocheck/tabular"
	"reprocheck/types"
)

// validateWorkbook checks a spreadsheet artifact. Only the first sheet is
// validated; additional sheets are a warning naming every sheet. Sheet names
// and shape are recorded as metadata.
func (v *Validator) validateWorkbook(path string, report *types.ValidationReport) {
	table, sheets, err := tabular.ReadWorkbook(path, v.rules.SampleRows)
	if err != nil {
		if len(sheets) == 0 && table == nil && strings.Contains(err.Error(), "no sheets") {
			report.AddError("No sheets found in spreadsheet")
			return
		}
		report.AddError(fmt.Sprintf("Spreadsheet error: %v", err))
		return
	}

	if table.ColCount() < v.rules.MinColumns {
		report.AddError(fmt.Sprintf("Minimum %d column(s) required", v.rules.MinColumns))
	}

	v.checkHeaders(table.Columns, report)
	for _, col := range table.Columns {
		if col == "" || strings.Contains(strings.ToLower(col), "unnamed") {
			report.AddWarning(fmt.Sprintf("Potential unnamed column: %q", col))
		}
	}

	switch table.RowCount() {
	case 0:
		report.AddError("Empty file - no data rows")
	case 1:
		report.AddWarning("Only one data row detected")
	}

	if len(sheets) > 1 {
		report.AddWarning(fmt.Sprintf(
			"Multiple sheets detected: %s. Only the first sheet is compared.",
			strings.Join(sheets, ", ")))
	}

	report.Columns = table.Columns
	report.Metadata["sheets"] = sheets
	report.Metadata["main_sheet"] = sheets[0]
	report.Metadata["shape"] = []int{table.RowCount(), table.ColCount()}
	report.Metadata["dtypes"] = table.Kinds()
}
