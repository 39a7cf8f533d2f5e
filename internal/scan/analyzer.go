package scan

import (
	"context"
	"log"
	"math"
	"strings"
)

// Analyzer computes the complete per-file analysis. It is a pure function of
// its inputs and the collaborator responses; collaborator failures degrade to
// empty issue lists and never abort the file.
type Analyzer struct {
	registry    *Registry
	structural  StructuralAnalyzer
	security    IssueDetector
	performance IssueDetector
}

// NewAnalyzer wires an Analyzer. structural may be nil, in which case every
// language degrades to zero complexity metrics and no quality findings.
func NewAnalyzer(registry *Registry, structural StructuralAnalyzer, security, performance IssueDetector) *Analyzer {
	return &Analyzer{
		registry:    registry,
		structural:  structural,
		security:    security,
		performance: performance,
	}
}

// Analyze builds the FileAnalysis for one file. path is the scan-relative
// path used as the result key.
func (a *Analyzer) Analyze(ctx context.Context, path, content string, lang Language) FileAnalysis {
	fa := FileAnalysis{
		Path:      path,
		Language:  lang,
		SizeBytes: len(content),
		LineCount: countLines(content),
	}

	fa.SecurityIssues = a.detect(ctx, a.security, path, content, lang, "security")
	fa.PerformanceIssues = a.detect(ctx, a.performance, path, content, lang, "performance")

	if a.structural != nil && a.structural.Supports(lang) {
		res, err := a.structural.Analyze(ctx, path, []byte(content), lang)
		if err != nil {
			// Setup-level failure, distinct from a parse failure (which is
			// reported inside the result). Degrade and keep going.
			log.Printf("WARNING: structural analysis failed for %s: %v", path, err)
		} else {
			fa.QualityIssues = res.Issues
			fa.Complexity = res.Metrics
		}
	}

	fa.Dependencies = ExtractDependencies(content, lang)
	fa.DocScore = DocumentationScore(content, a.registry.CommentPrefixes(lang))

	return fa
}

// detect invokes one collaborator and absorbs its failure modes.
func (a *Analyzer) detect(ctx context.Context, d IssueDetector, path, content string, lang Language, category string) []Issue {
	if d == nil {
		return nil
	}
	issues, err := d.Detect(ctx, content, lang)
	if err != nil {
		log.Printf("WARNING: %s detector failed for %s: %v", category, path, err)
		return nil
	}
	return issues
}

// DocumentationScore computes min(1, docLineRatio*2.5)*10 over non-blank
// lines, where a doc line starts with one of the language's comment prefixes.
// The result is rounded to one decimal and lies in [0, 10].
func DocumentationScore(content string, prefixes []string) float64 {
	nonBlank := 0
	docLines := 0
	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		nonBlank++
		for _, p := range prefixes {
			if strings.HasPrefix(trimmed, p) {
				docLines++
				break
			}
		}
	}
	if nonBlank == 0 {
		return 0
	}
	ratio := float64(docLines) / float64(nonBlank)
	return Round1(math.Min(1, ratio*2.5) * 10)
}

// Round1 rounds to one decimal place, the precision of all reported scores.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// countLines counts lines the way splitlines does: a trailing newline does
// not start an extra line, and empty content has zero lines.
func countLines(content string) int {
	if content == "" {
		return 0
	}
	n := strings.Count(content, "\n")
	if strings.HasSuffix(content, "\n") {
		return n
	}
	return n + 1
}
