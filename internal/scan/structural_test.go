package scan

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func analyze(t *testing.T, source string, lang Language) *StructuralResult {
	t.Helper()
	a := NewTreeSitterAnalyzer()
	defer a.Close()
	res, err := a.Analyze(context.Background(), "test-input", []byte(source), lang)
	require.NoError(t, err)
	require.NotNil(t, res)
	return res
}

// findIssues returns the issues matching a rule id.
func findIssues(issues []Issue, rule string) []Issue {
	var out []Issue
	for _, is := range issues {
		if is.Rule == rule {
			out = append(out, is)
		}
	}
	return out
}

func TestTreeSitterAnalyzer_Supports(t *testing.T) {
	a := NewTreeSitterAnalyzer()
	defer a.Close()

	for _, lang := range StructuralLanguages {
		assert.True(t, a.Supports(lang), "should support %s", lang)
	}
	assert.False(t, a.Supports(LangRuby))
	assert.False(t, a.Supports(LangUnknown))

	_, err := a.Analyze(context.Background(), "x.rb", []byte("puts 1"), LangRuby)
	assert.Error(t, err)
}

func TestTreeSitterAnalyzer_PythonCyclomatic(t *testing.T) {
	source := `def grade(score):
    if score > 90:
        return "A"
    if score > 80:
        return "B"
    if score > 70:
        return "C"
    return "D"
`
	res := analyze(t, source, LangPython)

	require.Len(t, res.Functions, 1)
	fn := res.Functions[0]
	assert.Equal(t, "grade", fn.Name)
	assert.Equal(t, 1, fn.Line)
	assert.Equal(t, 1, fn.ParamCount)
	assert.Equal(t, 4, fn.Cyclomatic) // base 1 + three if statements
	assert.Equal(t, 4, res.Metrics.Cyclomatic)
	assert.Empty(t, res.Issues)
}

func TestTreeSitterAnalyzer_PythonNesting(t *testing.T) {
	source := `def scan(rows):
    for row in rows:
        for cell in row:
            if cell:
                print(cell)
`
	res := analyze(t, source, LangPython)

	require.Len(t, res.Functions, 1)
	fn := res.Functions[0]
	assert.Equal(t, 4, fn.Cyclomatic)
	assert.Equal(t, 3, fn.MaxNesting)
	// Each construct weighs 1 + its depth: 1 + 2 + 3.
	assert.Equal(t, 6, fn.Cognitive)
	assert.Equal(t, 3, res.Metrics.MaxNesting)
}

func TestTreeSitterAnalyzer_PythonLongParameterList(t *testing.T) {
	source := `def configure(host, port, user, password, timeout, retries):
    return host
`
	res := analyze(t, source, LangPython)

	require.Len(t, res.Functions, 1)
	assert.Equal(t, 6, res.Functions[0].ParamCount)

	flagged := findIssues(res.Issues, "long-parameter-list")
	require.Len(t, flagged, 1)
	assert.Equal(t, SeverityMedium, flagged[0].Severity)
	assert.Equal(t, 1, flagged[0].Line)
}

func TestTreeSitterAnalyzer_PythonHighComplexity(t *testing.T) {
	source := `def dispatch(op):
    if op == 1:
        return 1
    if op == 2:
        return 2
    if op == 3:
        return 3
    if op == 4:
        return 4
    if op == 5:
        return 5
    if op == 6:
        return 6
    if op == 7:
        return 7
    if op == 8:
        return 8
    if op == 9:
        return 9
    if op == 10:
        return 10
    return 0
`
	res := analyze(t, source, LangPython)

	require.Len(t, res.Functions, 1)
	assert.Equal(t, 11, res.Functions[0].Cyclomatic)

	flagged := findIssues(res.Issues, "high-cyclomatic-complexity")
	require.Len(t, flagged, 1)
	assert.Equal(t, SeverityHigh, flagged[0].Severity)
}

func TestTreeSitterAnalyzer_PythonHandlers(t *testing.T) {
	source := `def load(path):
    try:
        return open(path).read()
    except:
        pass
`
	res := analyze(t, source, LangPython)

	broad := findIssues(res.Issues, "broad-exception-caught")
	require.Len(t, broad, 1)
	assert.Equal(t, SeverityMedium, broad[0].Severity)
	assert.Equal(t, 4, broad[0].Line)

	empty := findIssues(res.Issues, "empty-exception-handler")
	require.Len(t, empty, 1)
	assert.Equal(t, SeverityHigh, empty[0].Severity)
}

func TestTreeSitterAnalyzer_PythonNarrowHandlerClean(t *testing.T) {
	source := `def load(path):
    try:
        return open(path).read()
    except FileNotFoundError as err:
        raise RuntimeError(str(err))
`
	res := analyze(t, source, LangPython)

	assert.Empty(t, findIssues(res.Issues, "broad-exception-caught"))
	assert.Empty(t, findIssues(res.Issues, "empty-exception-handler"))
}

func TestTreeSitterAnalyzer_ParseError(t *testing.T) {
	res := analyze(t, "def broken(:\n", LangPython)

	require.Len(t, res.Issues, 1)
	is := res.Issues[0]
	assert.Equal(t, SeverityCritical, is.Severity)
	assert.Equal(t, "parse-error", is.Rule)
	assert.Equal(t, ComplexityMetrics{}, res.Metrics)
	assert.Empty(t, res.Functions)
}

func TestTreeSitterAnalyzer_Go(t *testing.T) {
	source := `package demo

func pick(a, b int, flag bool) int {
	if flag && a > b {
		return a
	}
	return b
}
`
	res := analyze(t, source, LangGo)

	require.Len(t, res.Functions, 1)
	fn := res.Functions[0]
	assert.Equal(t, "pick", fn.Name)
	assert.Equal(t, 3, fn.ParamCount)
	assert.Equal(t, 3, fn.Cyclomatic) // base 1 + if + &&
}

func TestTreeSitterAnalyzer_TypeScriptEmptyCatch(t *testing.T) {
	source := `function risky(input: string): string {
  try {
    return JSON.parse(input);
  } catch (err) {
  }
  return "";
}
`
	res := analyze(t, source, LangTypeScript)

	empty := findIssues(res.Issues, "empty-exception-handler")
	require.Len(t, empty, 1)
	assert.Equal(t, SeverityHigh, empty[0].Severity)
}

func TestTreeSitterAnalyzer_Rust(t *testing.T) {
	source := `fn classify(n: i32) -> &'static str {
    match n {
        0 => "zero",
        x if x > 0 => "positive",
        _ => "negative",
    }
}
`
	res := analyze(t, source, LangRust)

	require.Len(t, res.Functions, 1)
	fn := res.Functions[0]
	assert.Equal(t, "classify", fn.Name)
	assert.Equal(t, 1, fn.ParamCount)
	assert.Equal(t, 4, fn.Cyclomatic) // base 1 + three match arms
}
