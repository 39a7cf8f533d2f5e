package coverage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dusk-indust/codescan/internal/scan"
)

func findGaps(gaps []scan.TestingGap, kind scan.TestingGapKind) []scan.TestingGap {
	var out []scan.TestingGap
	for _, g := range gaps {
		if g.Kind == kind {
			out = append(out, g)
		}
	}
	return out
}

func TestAnalyze_LowRatioAndMissingTests(t *testing.T) {
	paths := []string{
		"app.py",
		"models.py",
		"views.py",
		"db.py",
		"auth.py",
		"tests/test_app.py",
	}

	gaps := Analyze(paths, 0.3)

	// 1 test for 5 sources: ratio 0.2 < 0.3.
	low := findGaps(gaps, scan.GapLowCoverageRatio)
	require.Len(t, low, 1)
	assert.Equal(t, scan.SeverityMedium, low[0].Severity)
	assert.Contains(t, low[0].Message, "0.20")

	// app is covered by test_app; the other four sources are not.
	missing := findGaps(gaps, scan.GapMissingTest)
	require.Len(t, missing, 4)
	files := make([]string, len(missing))
	for i, g := range missing {
		files[i] = g.File
	}
	assert.ElementsMatch(t, []string{"models.py", "views.py", "db.py", "auth.py"}, files)
}

func TestAnalyze_HealthyRatio(t *testing.T) {
	paths := []string{
		"app.py",
		"models.py",
		"tests/test_app.py",
		"tests/test_models.py",
	}

	gaps := Analyze(paths, 0.3)
	assert.Empty(t, findGaps(gaps, scan.GapLowCoverageRatio))
	assert.Empty(t, findGaps(gaps, scan.GapMissingTest))
}

func TestAnalyze_NoSources(t *testing.T) {
	gaps := Analyze([]string{"tests/test_app.py"}, 0.3)
	assert.Empty(t, gaps)
}

func TestAnalyze_DefaultRatio(t *testing.T) {
	paths := []string{"app.py", "models.py", "views.py", "db.py", "tests/test_app.py"}

	// 1/4 = 0.25 < default 0.3.
	gaps := Analyze(paths, 0)
	assert.Len(t, findGaps(gaps, scan.GapLowCoverageRatio), 1)
}

func TestIsTestPath(t *testing.T) {
	assert.True(t, IsTestPath("tests/test_app.py"))
	assert.True(t, IsTestPath("src/app.spec.ts"))
	assert.True(t, IsTestPath("pkg/util_test.go"))
	assert.False(t, IsTestPath("src/app.py"))
	assert.False(t, IsTestPath("pkg/util.go"))
}
