package graph

import (
	"context"
	"path/filepath"
	"sort"
	"strings"

	"github.com/dusk-indust/codescan/internal/scan"
)

// Build constructs the relationship graph from per-file dependency tokens.
// A token matches another file when, case-insensitively, the token contains
// the file's path stem or the stem contains the token. This is a heuristic,
// not an import resolver: false positives and negatives are a documented
// limitation of the design, not a defect.
func Build(analyses map[string]scan.FileAnalysis) map[string][]string {
	type stemEntry struct {
		path string
		stem string
	}
	stems := make([]stemEntry, 0, len(analyses))
	for path := range analyses {
		stems = append(stems, stemEntry{path: path, stem: strings.ToLower(pathStem(path))})
	}
	// Deterministic edge order regardless of map iteration.
	sort.Slice(stems, func(i, j int) bool { return stems[i].path < stems[j].path })

	relationships := make(map[string][]string, len(analyses))
	for path, fa := range analyses {
		seen := make(map[string]bool)
		var targets []string
		for _, dep := range fa.Dependencies {
			token := strings.ToLower(dep)
			for _, other := range stems {
				if other.path == path || seen[other.path] || other.stem == "" {
					continue
				}
				if strings.Contains(token, other.stem) || strings.Contains(other.stem, token) {
					seen[other.path] = true
					targets = append(targets, other.path)
				}
			}
		}
		sort.Strings(targets)
		relationships[path] = targets
	}
	return relationships
}

// Persist writes the graph into a Store: one File node per analysis and one
// DEPENDS_ON edge per relationship. Node inserts precede edge inserts so that
// backends with referential MATCH semantics resolve both endpoints.
func Persist(ctx context.Context, store Store, analyses map[string]scan.FileAnalysis, relationships map[string][]string) error {
	if err := store.InitSchema(ctx); err != nil {
		return err
	}

	paths := make([]string, 0, len(analyses))
	for path := range analyses {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	for _, path := range paths {
		fa := analyses[path]
		node := FileNode{Path: path, Language: fa.Language, LOC: fa.LineCount}
		if err := store.AddFile(ctx, node); err != nil {
			return err
		}
	}
	for _, path := range paths {
		for _, target := range relationships[path] {
			if err := store.AddEdge(ctx, Edge{Source: path, Target: target}); err != nil {
				return err
			}
		}
	}
	return nil
}

// pathStem returns the base name without extension.
func pathStem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
