// Package coverage classifies files as tests or sources by naming heuristics
// and reports testing gaps.
package coverage

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/dusk-indust/codescan/internal/scan"
)

// DefaultMinRatio is the test/source ratio below which a low-coverage gap is
// reported.
const DefaultMinRatio = 0.3

// testIndicators are the case-insensitive substrings that mark a path as a
// test file.
var testIndicators = []string{"test", "spec"}

// Analyze inspects the (relative) paths of one scan and returns the testing
// gaps: one low-coverage gap when the test/source ratio falls below minRatio,
// and one missing-test gap per source file whose stem appears in no test
// path. A non-positive minRatio uses the default. With zero source files the
// ratio check is skipped.
func Analyze(paths []string, minRatio float64) []scan.TestingGap {
	if minRatio <= 0 {
		minRatio = DefaultMinRatio
	}

	var sources, tests []string
	for _, path := range paths {
		if IsTestPath(path) {
			tests = append(tests, path)
		} else {
			sources = append(sources, path)
		}
	}

	var gaps []scan.TestingGap
	if len(sources) > 0 {
		ratio := float64(len(tests)) / float64(len(sources))
		if ratio < minRatio {
			gaps = append(gaps, scan.TestingGap{
				Kind:     scan.GapLowCoverageRatio,
				Severity: scan.SeverityMedium,
				Message:  fmt.Sprintf("only %d test files for %d source files (ratio %.2f, expected >= %.2f)", len(tests), len(sources), ratio, minRatio),
			})
		}
	}

	lowerTests := make([]string, len(tests))
	for i, t := range tests {
		lowerTests[i] = strings.ToLower(t)
	}

	for _, src := range sources {
		stem := strings.ToLower(pathStem(src))
		if stem == "" {
			continue
		}
		if hasTestFor(stem, lowerTests) {
			continue
		}
		gaps = append(gaps, scan.TestingGap{
			Kind:     scan.GapMissingTest,
			Severity: scan.SeverityMedium,
			Message:  fmt.Sprintf("no test file references %s", src),
			File:     src,
		})
	}

	return gaps
}

// IsTestPath reports whether the path contains a test indicator,
// case-insensitively.
func IsTestPath(path string) bool {
	lower := strings.ToLower(path)
	for _, ind := range testIndicators {
		if strings.Contains(lower, ind) {
			return true
		}
	}
	return false
}

// hasTestFor reports whether any test path contains the source stem.
func hasTestFor(stem string, lowerTests []string) bool {
	for _, t := range lowerTests {
		if strings.Contains(t, stem) {
			return true
		}
	}
	return false
}

// pathStem returns the base name without extension.
func pathStem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
