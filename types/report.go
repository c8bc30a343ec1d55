package types

// ValidationReport is the outcome of validating one artifact.
// Valid is true exactly when Errors is empty; warnings never affect validity.
// A report is created once per artifact and not modified afterwards.
type ValidationReport struct {
	Valid    bool                   `json:"valid"`
	Errors   []string               `json:"errors"`
	Warnings []string               `json:"warnings"`
	Columns  []string               `json:"columns,omitempty"`
	FileType string                 `json:"file_type,omitempty"`
	Metadata map[string]interface{} `json:"metadata,omitempty"`
}

// NewValidationReport returns an empty report for the given file type.
func NewValidationReport(fileType string) *ValidationReport {
	return &ValidationReport{
		FileType: fileType,
		Metadata: map[string]interface{}{},
	}
}

// AddError records a fatal finding and flips the report invalid.
func (r *ValidationReport) AddError(msg string) {
	r.Errors = append(r.Errors, msg)
	r.Valid = false
}

// AddWarning records a non-fatal finding.
func (r *ValidationReport) AddWarning(msg string) {
	r.Warnings = append(r.Warnings, msg)
}

// Finalize recomputes Valid from the error list and returns the report.
func (r *ValidationReport) Finalize() *ValidationReport {
	r.Valid = len(r.Errors) == 0
	return r
}

// ComparisonResult is the outcome of comparing one artifact pair.
// Score is in [0,1]; hard mismatches (type, shape, parse failure) score exactly 0.
type ComparisonResult struct {
	Score       float64            `json:"score"`
	Breakdown   map[string]float64 `json:"breakdown,omitempty"`
	Differences []string           `json:"differences"`
}

// AddDifference appends a human-readable discrepancy description.
func (c *ComparisonResult) AddDifference(msg string) {
	c.Differences = append(c.Differences, msg)
}
