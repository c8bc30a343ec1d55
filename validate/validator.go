package validate

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"reprocheck/config"
	"reprocheck/types"
)

// Rules are the named validation options. Zero values fall back to the
// configured defaults via DefaultRules.
type Rules struct {
	AllowedFormats       []string
	MaxFileSizeMB        int64
	DelimiterCandidates  []string
	AllowedDelimiters    []string
	ForbiddenHeaderChars []string
	MinColumns           int
	SampleRows           int
}

// DefaultRules returns the stock submission guidelines.
func DefaultRules() Rules {
	return Rules{
		AllowedFormats:       config.AllowedFormats,
		MaxFileSizeMB:        config.MaxFileSizeMB,
		DelimiterCandidates:  config.DelimiterCandidates,
		AllowedDelimiters:    config.AllowedDelimiters,
		ForbiddenHeaderChars: config.ForbiddenHeaderChars,
		MinColumns:           config.MinColumns,
		SampleRows:           config.SampleRows,
	}
}

// Validator gatekeeps artifacts before any comparison is attempted.
type Validator struct {
	rules Rules
}

// New builds a Validator, filling unset rule fields with defaults.
func New(rules Rules) *Validator {
	defaults := DefaultRules()
	if rules.AllowedFormats == nil {
		rules.AllowedFormats = defaults.AllowedFormats
	}
	if rules.MaxFileSizeMB <= 0 {
		rules.MaxFileSizeMB = defaults.MaxFileSizeMB
	}
	if rules.DelimiterCandidates == nil {
		rules.DelimiterCandidates = defaults.DelimiterCandidates
	}
	if rules.AllowedDelimiters == nil {
		rules.AllowedDelimiters = defaults.AllowedDelimiters
	}
	if rules.ForbiddenHeaderChars == nil {
		rules.ForbiddenHeaderChars = defaults.ForbiddenHeaderChars
	}
	if rules.MinColumns <= 0 {
		rules.MinColumns = defaults.MinColumns
	}
	if rules.SampleRows <= 0 {
		rules.SampleRows = defaults.SampleRows
	}
	return &Validator{rules: rules}
}

// ValidateFile runs the fixed gate sequence for one artifact: format check,
// size check, then the type-specific structural check. The first fatal gate
// short-circuits. Warnings accumulate without affecting validity.
func (v *Validator) ValidateFile(path string) *types.ValidationReport {
	ext := strings.ToLower(filepath.Ext(path))
	report := types.NewValidationReport(ext)

	if !v.formatAllowed(ext) {
		report.AddError(fmt.Sprintf(
			"Invalid format %q. Allowed: %s", ext, strings.Join(v.rules.AllowedFormats, ", ")))
		return report
	}

	info, err := os.Stat(path)
	if err != nil {
		report.AddError(fmt.Sprintf("File unreadable: %v", err))
		return report
	}
	if info.Size() > v.rules.MaxFileSizeMB*1024*1024 {
		report.AddError(fmt.Sprintf("File size exceeds %dMB", v.rules.MaxFileSizeMB))
		return report
	}

	switch types.KindForExt(ext) {
	case types.KindTabular:
		if ext == ".xlsx" {
			v.validateWorkbook(path, report)
		} else {
			v.validateDelimited(path, report)
		}
	case types.KindCode:
		v.validateSource(path, report)
	}

	return report.Finalize()
}

func (v *Validator) formatAllowed(ext string) bool {
	for _, allowed := range v.rules.AllowedFormats {
		if ext == allowed {
			return true
		}
	}
	return false
}

// checkHeaders applies the forbidden-character rule to every column name and
// warns on names suggestive of merged or unnamed cells.
func (v *Validator) checkHeaders(columns []string, report *types.ValidationReport) {
	for _, col := range columns {
		for _, forbidden := range v.rules.ForbiddenHeaderChars {
			if strings.Contains(col, forbidden) {
				report.AddError(fmt.Sprintf("Header '%s' contains forbidden character", col))
				break
			}
		}
		lower := strings.ToLower(col)
		if strings.Contains(lower, "merged") || strings.Contains(lower, "combined") {
			report.AddWarning(fmt.Sprintf("Potential merged cells in column: %s", col))
		}
	}
}
