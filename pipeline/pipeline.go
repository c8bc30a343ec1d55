// Package pipeline runs the full check for one artifact pair: validate both
// sides, compare only when both are valid, and render the final report.
package pipeline

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/google/uuid"

	"reprocheck/compare"
	"reprocheck/report"
	"reprocheck/types"
	"reprocheck/validate"
)

// Check statuses.
const (
	StatusSuccess          = "success"
	StatusValidationFailed = "validation_failed"
)

// Outcome is the complete result of one check.
type Outcome struct {
	ID           string                  `json:"id"`
	Status       string                  `json:"status"`
	ExpectedFile *types.Artifact         `json:"expected_file"`
	ActualFile   *types.Artifact         `json:"actual_file"`
	Expected     *types.ValidationReport `json:"expected"`
	Actual       *types.ValidationReport `json:"actual"`
	Comparison   *types.ComparisonResult `json:"comparison,omitempty"`
	Report       string                  `json:"report"`
	CheckedAt    time.Time               `json:"checked_at"`
}

// Archiver persists a finished outcome somewhere durable. Archiving is best
// effort: a failing archiver is logged, never fatal to the check.
type Archiver interface {
	Archive(ctx context.Context, outcome *Outcome) error
	Name() string
}

// Checker wires the validator and file comparator into one pipeline.
type Checker struct {
	validator *validate.Validator
	files     *compare.FileComparator
	archivers []Archiver
}

// NewChecker builds a Checker. Archivers are optional.
func NewChecker(validator *validate.Validator, files *compare.FileComparator, archivers ...Archiver) *Checker {
	return &Checker{validator: validator, files: files, archivers: archivers}
}

// Run validates both artifacts, compares them when both are valid, renders
// the report, and archives the outcome. Validation failures are data, not
// errors; only infrastructure failures (unreadable files at compare time,
// embedding backend down) return a non-nil error.
func (c *Checker) Run(ctx context.Context, expectedPath, actualPath string) (*Outcome, error) {
	outcome := &Outcome{
		ID:           uuid.NewString(),
		ExpectedFile: describe(expectedPath),
		ActualFile:   describe(actualPath),
		CheckedAt:    time.Now().UTC(),
	}

	outcome.Expected = c.validator.ValidateFile(expectedPath)
	outcome.Actual = c.validator.ValidateFile(actualPath)

	if outcome.Expected.Valid && outcome.Actual.Valid {
		comparison, err := c.files.CompareFiles(ctx, expectedPath, actualPath)
		if err != nil {
			return nil, err
		}
		outcome.Comparison = comparison
		outcome.Status = StatusSuccess
	} else {
		outcome.Status = StatusValidationFailed
	}

	outcome.Report = report.Render(outcome.Expected, outcome.Actual, outcome.Comparison)

	for _, a := range c.archivers {
		if err := a.Archive(ctx, outcome); err != nil {
			log.Printf("⚠️  %s archive failed for check %s: %v", a.Name(), outcome.ID, err)
		}
	}

	return outcome, nil
}

// describe records what was submitted. A stat failure leaves the size zero;
// validation reports the unreadable file on its own.
func describe(path string) *types.Artifact {
	var size int64
	if info, err := os.Stat(path); err == nil {
		size = info.Size()
	}
	return types.NewArtifact(path, size)
}
