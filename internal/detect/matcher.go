package detect

import (
	"context"
	"strings"

	"github.com/dusk-indust/codescan/internal/scan"
)

// Compile-time interface check.
var _ scan.IssueDetector = (*PatternDetector)(nil)

// PatternDetector evaluates a declarative rule table against file content.
// It backs both the security and performance detector slots and never
// returns an error: any internal failure degrades to zero findings.
type PatternDetector struct {
	rules []Rule
}

// NewSecurityDetector returns the built-in security pattern detector.
func NewSecurityDetector() *PatternDetector {
	return &PatternDetector{rules: securityRules}
}

// NewPerformanceDetector returns the built-in performance pattern detector.
func NewPerformanceDetector() *PatternDetector {
	return &PatternDetector{rules: performanceRules}
}

// Detect runs every rule registered for lang against content. Each pattern
// match produces one Issue at the 1-based line of the match start. Languages
// with no registered rules yield an empty list.
func (d *PatternDetector) Detect(ctx context.Context, content string, lang scan.Language) ([]scan.Issue, error) {
	lang = aliasLang(lang)
	var issues []scan.Issue
	for _, rule := range d.rules {
		if rule.Lang != lang {
			continue
		}
		if ctx.Err() != nil {
			return issues, nil
		}
		for _, loc := range rule.Pattern.FindAllStringIndex(content, -1) {
			issues = append(issues, scan.Issue{
				Severity: rule.Severity,
				Category: rule.Category,
				Line:     lineOf(content, loc[0]),
				Message:  rule.Message,
				Rule:     rule.ID,
			})
		}
	}
	return issues, nil
}

// lineOf returns the 1-based line number of byte offset off in content.
func lineOf(content string, off int) int {
	return strings.Count(content[:off], "\n") + 1
}
