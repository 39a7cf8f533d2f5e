package detect

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dusk-indust/codescan/internal/scan"
)

func findByRule(issues []scan.Issue, rule string) []scan.Issue {
	var out []scan.Issue
	for _, is := range issues {
		if is.Rule == rule {
			out = append(out, is)
		}
	}
	return out
}

func TestSecurityDetector_Python(t *testing.T) {
	d := NewSecurityDetector()

	content := `import hashlib

password = "hunter2"
digest = hashlib.md5(data)
`
	issues, err := d.Detect(context.Background(), content, scan.LangPython)
	require.NoError(t, err)

	secrets := findByRule(issues, "py-hardcoded-secret")
	require.Len(t, secrets, 1)
	assert.Equal(t, scan.SeverityCritical, secrets[0].Severity)
	assert.Equal(t, scan.CategorySecurity, secrets[0].Category)
	assert.Equal(t, 3, secrets[0].Line)

	weak := findByRule(issues, "py-weak-crypto")
	require.Len(t, weak, 1)
	assert.Equal(t, 4, weak[0].Line)
}

func TestSecurityDetector_Go(t *testing.T) {
	d := NewSecurityDetector()

	content := `package main

import "crypto/md5"

var apiKey = "sk-123456"
`
	issues, err := d.Detect(context.Background(), content, scan.LangGo)
	require.NoError(t, err)

	assert.Len(t, findByRule(issues, "go-hardcoded-secret"), 1)
	assert.Len(t, findByRule(issues, "go-weak-crypto"), 1)
}

func TestSecurityDetector_TypeScriptAliasesToJavaScript(t *testing.T) {
	d := NewSecurityDetector()

	content := "element.innerHTML = userInput;\n"
	issues, err := d.Detect(context.Background(), content, scan.LangTypeScript)
	require.NoError(t, err)
	assert.Len(t, findByRule(issues, "js-xss"), 1)
}

func TestSecurityDetector_NoRulesForLanguage(t *testing.T) {
	d := NewSecurityDetector()

	issues, err := d.Detect(context.Background(), "require 'digest/md5'\n", scan.LangRuby)
	require.NoError(t, err)
	assert.Empty(t, issues)
}

func TestPerformanceDetector_Python(t *testing.T) {
	d := NewPerformanceDetector()

	content := `for i in range(len(items)):
    out += str(items[i])
`
	issues, err := d.Detect(context.Background(), content, scan.LangPython)
	require.NoError(t, err)

	rangeLen := findByRule(issues, "py-range-len")
	require.Len(t, rangeLen, 1)
	assert.Equal(t, scan.SeverityLow, rangeLen[0].Severity)
	assert.Equal(t, scan.CategoryPerformance, rangeLen[0].Category)

	assert.Len(t, findByRule(issues, "py-string-concat"), 1)
}

func TestPerformanceDetector_CleanContent(t *testing.T) {
	d := NewPerformanceDetector()

	issues, err := d.Detect(context.Background(), "total = sum(items)\n", scan.LangPython)
	require.NoError(t, err)
	assert.Empty(t, issues)
}

func TestDetector_CanceledContext(t *testing.T) {
	d := NewSecurityDetector()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	issues, err := d.Detect(ctx, "password = \"hunter2\"\n", scan.LangPython)
	require.NoError(t, err)
	assert.Empty(t, issues)
}
