package score

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dusk-indust/codescan/internal/scan"
)

func TestAggregate_EmptyFileSet(t *testing.T) {
	scores := Aggregate(map[string]scan.FileAnalysis{}, nil, nil)
	assert.Empty(t, scores)
	assert.NotNil(t, scores)
}

func TestAggregate_CleanCodebase(t *testing.T) {
	analyses := map[string]scan.FileAnalysis{
		"a.py": {Path: "a.py", DocScore: 10},
		"b.py": {Path: "b.py", DocScore: 10},
	}

	scores := Aggregate(analyses, nil, nil)

	assert.Equal(t, 10.0, scores["security"])
	assert.Equal(t, 10.0, scores["performance"])
	assert.Equal(t, 10.0, scores["documentation"])
	assert.Equal(t, 10.0, scores["maintainability"])
	assert.Equal(t, 10.0, scores["overall"])

	// No file carries structural metrics: complexity is undefined.
	_, ok := scores["complexity"]
	assert.False(t, ok)
}

func TestAggregate_WeightedDeductions(t *testing.T) {
	analyses := map[string]scan.FileAnalysis{
		"a.py": {
			Path: "a.py",
			SecurityIssues: []scan.Issue{
				{Severity: scan.SeverityCritical},
				{Severity: scan.SeverityHigh},
			},
			PerformanceIssues: []scan.Issue{{Severity: scan.SeverityHigh}},
			DocScore:          5,
			Complexity:        scan.ComplexityMetrics{Cyclomatic: 10},
		},
		"b.py": {Path: "b.py", DocScore: 7},
	}
	archIssues := []scan.ArchitectureIssue{{Kind: scan.ArchCircularDependency}}
	gaps := []scan.TestingGap{{Kind: scan.GapLowCoverageRatio}}

	scores := Aggregate(analyses, archIssues, gaps)

	// (2.5 + 1.5) impact over 2 files.
	assert.Equal(t, 8.0, scores["security"])
	// 2.0 impact over 2 files.
	assert.Equal(t, 9.0, scores["performance"])
	assert.Equal(t, 6.0, scores["documentation"])
	// 10 - 2*1 arch issue - 1 gap.
	assert.Equal(t, 7.0, scores["maintainability"])
	// Average cyclomatic over the single structural file: 10 -> 10 - 2.
	assert.Equal(t, 8.0, scores["complexity"])
	// Mean of the five defined categories.
	assert.Equal(t, 7.6, scores["overall"])
}

func TestAggregate_ScoresClampToZero(t *testing.T) {
	issues := make([]scan.Issue, 20)
	for i := range issues {
		issues[i] = scan.Issue{Severity: scan.SeverityCritical}
	}
	analyses := map[string]scan.FileAnalysis{
		"a.py": {Path: "a.py", SecurityIssues: issues},
	}
	archIssues := make([]scan.ArchitectureIssue, 10)

	scores := Aggregate(analyses, archIssues, nil)

	assert.Equal(t, 0.0, scores["security"])
	assert.Equal(t, 0.0, scores["maintainability"])
	require.GreaterOrEqual(t, scores["overall"], 0.0)
}

func TestAggregate_ComplexityFromAverage(t *testing.T) {
	analyses := map[string]scan.FileAnalysis{
		"a.py": {Path: "a.py", Complexity: scan.ComplexityMetrics{Cyclomatic: 30}},
		"b.py": {Path: "b.py", Complexity: scan.ComplexityMetrics{Cyclomatic: 10}},
		"c.md": {Path: "c.md"},
	}

	scores := Aggregate(analyses, nil, nil)

	// Average over the two structural files is 20: 10 - 20/5 = 6.
	assert.Equal(t, 6.0, scores["complexity"])
}
