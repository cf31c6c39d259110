package services

import "github.com/LovationAdmin/buildadvisor-api/models"

const (
	criticalPenalty = 30
	warningPenalty  = 10
)

// Aggregate turns an issue list into the overall verdict. Confidence measures
// how sure we are the build works, not how fast it is.
func Aggregate(issues []models.Issue) models.Verdict {
	verdict := models.VerdictCompatible
	confidence := 100

	for _, issue := range issues {
		switch issue.Severity {
		case models.SeverityCritical:
			verdict = models.VerdictIncompatible
			confidence -= criticalPenalty
		case models.SeverityWarning:
			if verdict == models.VerdictCompatible {
				verdict = models.VerdictWarnings
			}
			confidence -= warningPenalty
		}
	}
	if confidence < 0 {
		confidence = 0
	}

	return models.Verdict{
		Verdict:     verdict,
		Confidence:  confidence,
		ChecksCount: ChecksCount,
	}
}
