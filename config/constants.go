package config

// Validation Rule Defaults
const (
	// MaxFileSizeMB is the maximum accepted size for any artifact
	MaxFileSizeMB = 5

	// MinColumns is the minimum number of columns a data file must declare
	MinColumns = 1

	// SampleRows bounds how many data rows a validator reads for structure checks
	SampleRows = 10
)

// AllowedFormats lists the file extensions accepted for validation and comparison
var AllowedFormats = []string{".csv", ".tsv", ".xlsx", ".go"}

// DelimiterCandidates are counted during delimiter detection, in tie-break order
var DelimiterCandidates = []string{",", "\t", ";"}

// AllowedDelimiters are the delimiters a delimited file may actually use
var AllowedDelimiters = []string{",", "\t"}

// ForbiddenHeaderChars may not appear in any column header
var ForbiddenHeaderChars = []string{"#", "@"}

// Comparison Constants
const (
	// DefaultNumericTolerance is the absolute tolerance for numeric cell equality
	DefaultNumericTolerance = 1e-6

	// TextSemanticWeight and TextNumericWeight combine the free-text sub-scores
	TextSemanticWeight = 0.5
	TextNumericWeight  = 0.5

	// TableNumericWeight and TableTextWeight combine the tabular sub-scores
	TableNumericWeight = 0.7
	TableTextWeight    = 0.3

	// CodeStructuralWeight and CodeSemanticWeight combine the source-code sub-scores
	CodeStructuralWeight = 0.6
	CodeSemanticWeight   = 0.4

	// StructuralDiffScore is the flat structural score when two parse trees differ
	StructuralDiffScore = 0.8

	// TextColumnReportThreshold is the per-column similarity below which a
	// text-column difference is recorded
	TextColumnReportThreshold = 0.99
)

// Verdict Thresholds (inclusive lower bounds on the composite score)
const (
	VerdictPerfectThreshold  = 0.95
	VerdictHighThreshold     = 0.90
	VerdictModerateThreshold = 0.85
	VerdictLowThreshold      = 0.80
)

// ScientificImports are matched as substrings against import paths to tag
// analysis code that depends on numeric/statistics libraries.
var ScientificImports = []string{"gonum", "stats", "dataframe", "plot", "mat"}
