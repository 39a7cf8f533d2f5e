// Package score combines per-file findings and codebase-wide issues into
// category scores and one overall score, each in [0, 10].
package score

import (
	"math"

	"github.com/dusk-indust/codescan/internal/scan"
)

// securityWeights is the per-severity impact of one security finding.
var securityWeights = map[scan.Severity]float64{
	scan.SeverityCritical: 2.5,
	scan.SeverityHigh:     1.5,
	scan.SeverityMedium:   0.5,
	scan.SeverityLow:      0.2,
}

// performanceWeights is the per-severity impact of one performance finding.
var performanceWeights = map[scan.Severity]float64{
	scan.SeverityHigh:   2.0,
	scan.SeverityMedium: 1.0,
	scan.SeverityLow:    0.3,
}

// Aggregate computes the score map. An empty file set yields an empty map:
// the degenerate case is explicit, not an error. The overall score is the
// unweighted mean of the defined category scores; complexity is undefined
// (and excluded from the mean) when no file carries structural metrics.
func Aggregate(analyses map[string]scan.FileAnalysis, archIssues []scan.ArchitectureIssue, gaps []scan.TestingGap) map[string]float64 {
	if len(analyses) == 0 {
		return map[string]float64{}
	}
	fileCount := float64(len(analyses))

	var secImpact, perfImpact, docSum float64
	var cyclomaticSum int
	structuralFiles := 0
	for _, fa := range analyses {
		for _, issue := range fa.SecurityIssues {
			secImpact += securityWeights[issue.Severity]
		}
		for _, issue := range fa.PerformanceIssues {
			perfImpact += performanceWeights[issue.Severity]
		}
		docSum += fa.DocScore
		if fa.Complexity.Cyclomatic > 0 {
			cyclomaticSum += fa.Complexity.Cyclomatic
			structuralFiles++
		}
	}

	scores := map[string]float64{
		"security":        clamp(10 - secImpact/fileCount),
		"performance":     clamp(10 - perfImpact/fileCount),
		"documentation":   clamp(docSum / fileCount),
		"maintainability": clamp(10 - 2*float64(len(archIssues)) - float64(len(gaps))),
	}

	if structuralFiles > 0 {
		avgCyclomatic := float64(cyclomaticSum) / float64(structuralFiles)
		scores["complexity"] = clamp(10 - avgCyclomatic/5)
	}

	var sum float64
	terms := 0
	for _, v := range scores {
		sum += v
		terms++
	}
	scores["overall"] = scan.Round1(sum / float64(terms))

	for k, v := range scores {
		scores[k] = scan.Round1(v)
	}
	return scores
}

// clamp bounds a score to [0, 10].
func clamp(v float64) float64 {
	return math.Max(0, math.Min(10, v))
}
