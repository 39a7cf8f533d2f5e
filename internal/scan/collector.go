package scan

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ErrNotFound is returned when the scan root does not exist or is not a directory.
var ErrNotFound = errors.New("scan root not found")

// defaultExcludes are path segments that are never descended into:
// version control, dependency caches, and build output.
var defaultExcludes = map[string]bool{
	".git":         true,
	".hg":          true,
	".svn":         true,
	"__pycache__":  true,
	"node_modules": true,
	"vendor":       true,
	"build":        true,
	"dist":         true,
	"target":       true,
	"out":          true,
	".venv":        true,
	"venv":         true,
	".idea":        true,
	".vscode":      true,
}

// Collector walks a root directory and returns the supported source files.
type Collector struct {
	registry *Registry
	excludes map[string]bool
}

// NewCollector creates a Collector using the registry's supported extension
// set. extraExcludes are merged into the default exclusion segments.
func NewCollector(registry *Registry, extraExcludes []string) *Collector {
	excludes := make(map[string]bool, len(defaultExcludes)+len(extraExcludes))
	for seg := range defaultExcludes {
		excludes[seg] = true
	}
	for _, seg := range extraExcludes {
		excludes[seg] = true
	}
	return &Collector{registry: registry, excludes: excludes}
}

// Collect returns the relative paths of all supported files under root,
// sorted lexicographically so results are reproducible across runs.
// It fails with ErrNotFound if root does not exist or is not a directory.
func (c *Collector) Collect(root string) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, root)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrNotFound, root)
	}

	var paths []string
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Unreadable subtree: skip rather than abort the scan.
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			if path != root && c.excludes[d.Name()] {
				return filepath.SkipDir
			}
			return nil
		}
		if !c.registry.Supported(filepath.Ext(path)) {
			return nil
		}
		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			return nil
		}
		paths = append(paths, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", root, err)
	}

	sort.Strings(paths)
	return paths, nil
}

// Excluded reports whether any segment of the (relative) path is excluded.
// Used by tests and by callers that filter externally supplied path lists.
func (c *Collector) Excluded(rel string) bool {
	for _, seg := range strings.Split(filepath.ToSlash(rel), "/") {
		if c.excludes[seg] {
			return true
		}
	}
	return false
}
