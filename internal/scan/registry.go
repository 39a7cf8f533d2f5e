package scan

import (
	"path/filepath"
	"strings"
)

// languageEntry binds a language to its file extensions, lexical signature
// keywords (used when no extension matches), comment prefixes (documentation
// scoring), and dependency-statement prefixes (import extraction).
type languageEntry struct {
	lang           Language
	extensions     []string
	signatures     []string
	commentPrefix  []string
	importPrefixes []string
}

// registryTable is the static per-language rule table. Extension lookup is
// case-insensitive; signature scoring is a fallback for extensionless files.
var registryTable = []languageEntry{
	{
		lang:           LangPython,
		extensions:     []string{".py", ".pyw"},
		signatures:     []string{"def ", "import ", "elif ", "self.", "__init__"},
		commentPrefix:  []string{"#", `"""`, "'''"},
		importPrefixes: []string{"import ", "from "},
	},
	{
		lang:           LangJavaScript,
		extensions:     []string{".js", ".jsx", ".mjs", ".cjs"},
		signatures:     []string{"function ", "const ", "=> ", "require(", "module.exports"},
		commentPrefix:  []string{"//", "/*", "*"},
		importPrefixes: []string{"import ", "const ", "require("},
	},
	{
		lang:           LangTypeScript,
		extensions:     []string{".ts", ".tsx", ".mts", ".cts"},
		signatures:     []string{"interface ", ": string", ": number", "export ", "=> "},
		commentPrefix:  []string{"//", "/*", "*"},
		importPrefixes: []string{"import ", "export "},
	},
	{
		lang:           LangJava,
		extensions:     []string{".java"},
		signatures:     []string{"public class", "private ", "void ", "extends ", "@Override"},
		commentPrefix:  []string{"//", "/*", "*"},
		importPrefixes: []string{"import "},
	},
	{
		lang:           LangCSharp,
		extensions:     []string{".cs"},
		signatures:     []string{"namespace ", "using System", "public class", "async Task"},
		commentPrefix:  []string{"//", "/*", "*"},
		importPrefixes: []string{"using "},
	},
	{
		lang:           LangCpp,
		extensions:     []string{".cpp", ".cc", ".cxx", ".hpp", ".h", ".c"},
		signatures:     []string{"#include", "std::", "template<", "nullptr"},
		commentPrefix:  []string{"//", "/*", "*"},
		importPrefixes: []string{"#include"},
	},
	{
		lang:           LangGo,
		extensions:     []string{".go"},
		signatures:     []string{"func ", "package ", ":= ", "go func", "chan "},
		commentPrefix:  []string{"//"},
		importPrefixes: []string{"import ", "\t\""},
	},
	{
		lang:           LangRust,
		extensions:     []string{".rs"},
		signatures:     []string{"fn ", "let mut", "impl ", "pub fn", "match "},
		commentPrefix:  []string{"//", "///", "/*"},
		importPrefixes: []string{"use ", "extern crate "},
	},
	{
		lang:           LangPHP,
		extensions:     []string{".php"},
		signatures:     []string{"<?php", "function ", "$this->", "echo "},
		commentPrefix:  []string{"//", "#", "/*", "*"},
		importPrefixes: []string{"use ", "require", "include"},
	},
	{
		lang:           LangRuby,
		extensions:     []string{".rb", ".rake"},
		signatures:     []string{"def ", "end\n", "require ", "puts ", "attr_"},
		commentPrefix:  []string{"#", "=begin"},
		importPrefixes: []string{"require ", "require_relative "},
	},
	{
		lang:           LangSwift,
		extensions:     []string{".swift"},
		signatures:     []string{"func ", "var ", "let ", "guard ", "protocol "},
		commentPrefix:  []string{"//", "/*", "*"},
		importPrefixes: []string{"import "},
	},
}

// Registry maps file extensions and lexical signatures to languages.
// The zero value is not usable; construct with NewRegistry.
type Registry struct {
	byExt   map[string]Language
	entries []languageEntry
}

// NewRegistry builds a Registry from the static language table.
func NewRegistry() *Registry {
	byExt := make(map[string]Language)
	for _, e := range registryTable {
		for _, ext := range e.extensions {
			byExt[ext] = e.lang
		}
	}
	return &Registry{byExt: byExt, entries: registryTable}
}

// Detect resolves the language for a path. If the extension is unknown and
// content is non-empty, each language is scored by counting occurrences of its
// signature keywords; the highest scorer wins. Detect is pure and total:
// unknown inputs yield LangUnknown, never an error.
func (r *Registry) Detect(path string, content string) Language {
	ext := strings.ToLower(filepath.Ext(path))
	if lang, ok := r.byExt[ext]; ok {
		return lang
	}
	if content == "" {
		return LangUnknown
	}

	best := LangUnknown
	bestScore := 0
	for _, e := range r.entries {
		score := 0
		for _, sig := range e.signatures {
			score += strings.Count(content, sig)
		}
		if score > bestScore {
			best = e.lang
			bestScore = score
		}
	}
	return best
}

// Supported reports whether the extension (case-insensitive, with leading dot)
// belongs to a registered language.
func (r *Registry) Supported(ext string) bool {
	_, ok := r.byExt[strings.ToLower(ext)]
	return ok
}

// CommentPrefixes returns the comment/docstring line prefixes for a language.
func (r *Registry) CommentPrefixes(lang Language) []string {
	for _, e := range r.entries {
		if e.lang == lang {
			return e.commentPrefix
		}
	}
	return nil
}

// ImportPrefixes returns the dependency-statement prefixes for a language.
func (r *Registry) ImportPrefixes(lang Language) []string {
	for _, e := range r.entries {
		if e.lang == lang {
			return e.importPrefixes
		}
	}
	return nil
}
