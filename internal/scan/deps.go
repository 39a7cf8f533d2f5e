package scan

import "regexp"

// depPatterns extracts dependency tokens per language. Each pattern captures
// the imported module/path token in its first non-empty group. These are
// textual heuristics, not import resolvers.
var depPatterns = map[Language][]*regexp.Regexp{
	LangPython: {
		regexp.MustCompile(`(?m)^\s*from\s+([\w.]+)\s+import`),
		regexp.MustCompile(`(?m)^\s*import\s+([\w.]+)`),
	},
	LangJavaScript: {
		regexp.MustCompile(`(?m)\bfrom\s+['"]([^'"]+)['"]`),
		regexp.MustCompile(`(?m)\brequire\s*\(\s*['"]([^'"]+)['"]`),
		regexp.MustCompile(`(?m)^\s*import\s+['"]([^'"]+)['"]`),
	},
	LangTypeScript: {
		regexp.MustCompile(`(?m)\bfrom\s+['"]([^'"]+)['"]`),
		regexp.MustCompile(`(?m)^\s*import\s+['"]([^'"]+)['"]`),
	},
	LangGo: {
		// Single-line imports plus the quoted lines of an import block.
		regexp.MustCompile(`(?m)^\s*import\s+(?:\w+\s+)?"([^"]+)"`),
		regexp.MustCompile(`(?m)^\t(?:[_\w]+\s+)?"([^"]+)"$`),
	},
	LangJava: {
		regexp.MustCompile(`(?m)^\s*import\s+(?:static\s+)?([\w.]+)\s*;`),
	},
	LangCSharp: {
		regexp.MustCompile(`(?m)^\s*using\s+([\w.]+)\s*;`),
	},
	LangCpp: {
		regexp.MustCompile(`(?m)^\s*#include\s*[<"]([^>"]+)[>"]`),
	},
	LangRust: {
		regexp.MustCompile(`(?m)^\s*(?:pub\s+)?use\s+([\w:]+)`),
		regexp.MustCompile(`(?m)^\s*extern\s+crate\s+(\w+)`),
	},
	LangPHP: {
		regexp.MustCompile(`(?m)^\s*use\s+([\w\\]+)`),
		regexp.MustCompile(`(?m)\b(?:require|include)(?:_once)?\s*\(?\s*['"]([^'"]+)['"]`),
	},
	LangRuby: {
		regexp.MustCompile(`(?m)^\s*require(?:_relative)?\s+['"]([^'"]+)['"]`),
	},
	LangSwift: {
		regexp.MustCompile(`(?m)^\s*import\s+(\w+)`),
	},
}

// ExtractDependencies returns the deduplicated dependency tokens found in
// content for lang, in first-occurrence order. Unknown languages yield nil.
func ExtractDependencies(content string, lang Language) []string {
	patterns, ok := depPatterns[lang]
	if !ok {
		return nil
	}
	seen := make(map[string]bool)
	var deps []string
	for _, p := range patterns {
		for _, m := range p.FindAllStringSubmatch(content, -1) {
			token := m[1]
			if token == "" || seen[token] {
				continue
			}
			seen[token] = true
			deps = append(deps, token)
		}
	}
	return deps
}
