package detect

import (
	"regexp"

	"github.com/dusk-indust/codescan/internal/scan"
)

// Rule is one declarative detection rule: a compiled pattern scoped to a
// language and category, with a fixed severity and message.
type Rule struct {
	ID       string
	Lang     scan.Language
	Category scan.Category
	Severity scan.Severity
	Pattern  *regexp.Regexp
	Message  string
}

// securityRules covers the common per-language vulnerability patterns:
// injection, hardcoded secrets, unsafe evaluation, and weak cryptography.
var securityRules = []Rule{
	// Python
	{
		ID: "py-sql-injection", Lang: scan.LangPython, Category: scan.CategorySecurity,
		Severity: scan.SeverityHigh,
		Pattern:  regexp.MustCompile(`(?i)execute\s*\(\s*['"].*%s.*['"]|cursor\.execute\s*\(\s*f['"]`),
		Message:  "possible SQL injection: query built from interpolated strings",
	},
	{
		ID: "py-hardcoded-secret", Lang: scan.LangPython, Category: scan.CategorySecurity,
		Severity: scan.SeverityCritical,
		Pattern:  regexp.MustCompile(`(?i)(password|api_key|secret|token)\s*=\s*['"][^'"]+['"]`),
		Message:  "hardcoded credential in source",
	},
	{
		ID: "py-unsafe-eval", Lang: scan.LangPython, Category: scan.CategorySecurity,
		Severity: scan.SeverityHigh,
		Pattern:  regexp.MustCompile(`(?i)\b(eval|exec)\s*\(|subprocess\.(call|run|Popen).*shell\s*=\s*True`),
		Message:  "dynamic code execution or shell=True subprocess call",
	},
	{
		ID: "py-weak-crypto", Lang: scan.LangPython, Category: scan.CategorySecurity,
		Severity: scan.SeverityMedium,
		Pattern:  regexp.MustCompile(`(?i)\b(md5|sha1)\s*\(|random\.random\s*\(`),
		Message:  "weak hash or non-cryptographic randomness used",
	},
	// JavaScript / TypeScript
	{
		ID: "js-xss", Lang: scan.LangJavaScript, Category: scan.CategorySecurity,
		Severity: scan.SeverityHigh,
		Pattern:  regexp.MustCompile(`(?i)innerHTML\s*=|document\.write\s*\(`),
		Message:  "DOM sink assignment vulnerable to XSS",
	},
	{
		ID: "js-unsafe-eval", Lang: scan.LangJavaScript, Category: scan.CategorySecurity,
		Severity: scan.SeverityHigh,
		Pattern:  regexp.MustCompile(`(?i)\beval\s*\(|new\s+Function\s*\(|setTimeout\s*\(\s*['"]`),
		Message:  "dynamic code execution from a string",
	},
	{
		ID: "js-hardcoded-secret", Lang: scan.LangJavaScript, Category: scan.CategorySecurity,
		Severity: scan.SeverityCritical,
		Pattern:  regexp.MustCompile(`(?i)(password|apiKey|secret|token)\s*[:=]\s*['"][^'"]+['"]`),
		Message:  "hardcoded credential in source",
	},
	// Go
	{
		ID: "go-sql-injection", Lang: scan.LangGo, Category: scan.CategorySecurity,
		Severity: scan.SeverityHigh,
		Pattern:  regexp.MustCompile(`(?i)(Query|Exec)\s*\(\s*(fmt\.Sprintf|".*"\s*\+)`),
		Message:  "possible SQL injection: query built by string concatenation",
	},
	{
		ID: "go-hardcoded-secret", Lang: scan.LangGo, Category: scan.CategorySecurity,
		Severity: scan.SeverityCritical,
		Pattern:  regexp.MustCompile(`(?i)(password|apiKey|secret|token)\s*(:?=)\s*"[^"]+"`),
		Message:  "hardcoded credential in source",
	},
	{
		ID: "go-weak-crypto", Lang: scan.LangGo, Category: scan.CategorySecurity,
		Severity: scan.SeverityMedium,
		Pattern:  regexp.MustCompile(`crypto/(md5|sha1|des)`),
		Message:  "weak cryptographic primitive imported",
	},
}

// performanceRules covers common per-language inefficiency patterns:
// wasteful loops, repeated allocation, and string building in loops.
var performanceRules = []Rule{
	// Python
	{
		ID: "py-range-len", Lang: scan.LangPython, Category: scan.CategoryPerformance,
		Severity: scan.SeverityLow,
		Pattern:  regexp.MustCompile(`for\s+\w+\s+in\s+range\s*\(\s*len\s*\(`),
		Message:  "index loop over range(len(...)); iterate the sequence directly",
	},
	{
		ID: "py-list-grow", Lang: scan.LangPython, Category: scan.CategoryPerformance,
		Severity: scan.SeverityMedium,
		Pattern:  regexp.MustCompile(`\+\s*=\s*\[.*\]|\.extend\s*\(\s*\[.*\]\s*\)`),
		Message:  "list grown by repeated concatenation",
	},
	{
		ID: "py-string-concat", Lang: scan.LangPython, Category: scan.CategoryPerformance,
		Severity: scan.SeverityMedium,
		Pattern:  regexp.MustCompile(`\w+\s*\+=\s*(str\s*\(|['"])`),
		Message:  "string built by += in a loop; use join or a buffer",
	},
	{
		ID: "py-large-range", Lang: scan.LangPython, Category: scan.CategoryPerformance,
		Severity: scan.SeverityHigh,
		Pattern:  regexp.MustCompile(`range\s*\(\s*\d{6,}\s*\)`),
		Message:  "very large range materialized in a tight loop",
	},
	// JavaScript / TypeScript
	{
		ID: "js-dom-in-loop", Lang: scan.LangJavaScript, Category: scan.CategoryPerformance,
		Severity: scan.SeverityMedium,
		Pattern:  regexp.MustCompile(`(getElementById|getElementsBy\w+|querySelector)\s*\(.*\)\s*.*\bfor\b|\bfor\b.*(getElementById|querySelector)`),
		Message:  "DOM query inside a loop",
	},
	{
		ID: "js-length-in-loop", Lang: scan.LangJavaScript, Category: scan.CategoryPerformance,
		Severity: scan.SeverityLow,
		Pattern:  regexp.MustCompile(`for\s*\(\s*(var|let)\s+.*\.length\s*;`),
		Message:  "length recomputed on every loop iteration",
	},
	{
		ID: "js-large-array", Lang: scan.LangJavaScript, Category: scan.CategoryPerformance,
		Severity: scan.SeverityHigh,
		Pattern:  regexp.MustCompile(`new\s+Array\s*\(\s*\d{6,}\s*\)`),
		Message:  "very large array allocated eagerly",
	},
	// Go
	{
		ID: "go-string-concat", Lang: scan.LangGo, Category: scan.CategoryPerformance,
		Severity: scan.SeverityMedium,
		Pattern:  regexp.MustCompile(`\w+\s*\+=\s*("|\w+\s*\+\s*")`),
		Message:  "string built by += in a loop; use strings.Builder",
	},
	{
		ID: "go-defer-in-loop", Lang: scan.LangGo, Category: scan.CategoryPerformance,
		Severity: scan.SeverityMedium,
		Pattern:  regexp.MustCompile(`for\s+.*\{[^}]*\bdefer\b`),
		Message:  "defer inside a loop delays release until function exit",
	},
}

// aliasLang maps languages that share a rule set onto the language the rules
// are registered under. TypeScript reuses the JavaScript rules.
func aliasLang(lang scan.Language) scan.Language {
	if lang == scan.LangTypeScript {
		return scan.LangJavaScript
	}
	return lang
}
