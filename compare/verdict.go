package compare

import "reprocheck/config"

// Verdict labels, derived from the composite score by fixed thresholds.
const (
	VerdictPerfect  = "Perfect or near-perfect match. Auto-verified."
	VerdictHigh     = "High similarity. Acceptable in most cases."
	VerdictModerate = "Moderate similarity. Review recommended."
	VerdictLow      = "Low similarity. Likely needs correction."
	VerdictPoor     = "Poor match. Not verified."
)

// Verdict maps a composite score to its qualitative label.
// Thresholds are inclusive lower bounds.
func Verdict(score float64) string {
	switch {
	case score >= config.VerdictPerfectThreshold:
		return VerdictPerfect
	case score >= config.VerdictHighThreshold:
		return VerdictHigh
	case score >= config.VerdictModerateThreshold:
		return VerdictModerate
	case score >= config.VerdictLowThreshold:
		return VerdictLow
	default:
		return VerdictPoor
	}
}
