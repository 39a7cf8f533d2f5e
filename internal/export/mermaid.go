package export

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/dusk-indust/codescan/internal/scan"
)

// GenerateMermaid produces a Mermaid graph TD diagram of the relationship
// graph. Files that participate in a circular-dependency issue are rendered
// with a highlighted class so cycles stand out.
func GenerateMermaid(analysis *scan.CodebaseAnalysis) string {
	// Build node → ID mapping for Mermaid (alphanumeric only).
	nodeIDs := make(map[string]string)
	nextID := 0
	getID := func(path string) string {
		if id, ok := nodeIDs[path]; ok {
			return id
		}
		id := fmt.Sprintf("N%d", nextID)
		nextID++
		nodeIDs[path] = id
		return id
	}

	inCycle := make(map[string]bool)
	for _, issue := range analysis.ArchitectureIssues {
		if issue.Kind != scan.ArchCircularDependency {
			continue
		}
		for _, f := range issue.Files {
			inCycle[f] = true
		}
	}

	paths := make([]string, 0, len(analysis.Relationships))
	for path := range analysis.Relationships {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	var sb strings.Builder
	sb.WriteString("graph TD\n")

	for _, path := range paths {
		sb.WriteString(fmt.Sprintf("  %s[\"%s\"]\n", getID(path), shortPath(path)))
	}
	for _, path := range paths {
		srcID := getID(path)
		for _, target := range analysis.Relationships[path] {
			sb.WriteString(fmt.Sprintf("  %s --> %s\n", srcID, getID(target)))
		}
	}

	if len(inCycle) > 0 {
		cyclePaths := make([]string, 0, len(inCycle))
		for path := range inCycle {
			cyclePaths = append(cyclePaths, path)
		}
		sort.Strings(cyclePaths)

		sb.WriteString("  classDef cycle fill:#f66,stroke:#900\n")
		ids := make([]string, 0, len(cyclePaths))
		for _, path := range cyclePaths {
			ids = append(ids, getID(path))
		}
		sb.WriteString(fmt.Sprintf("  class %s cycle\n", strings.Join(ids, ",")))
	}

	return sb.String()
}

// shortPath returns the last 2 path segments for readability.
func shortPath(path string) string {
	parts := strings.Split(filepath.ToSlash(path), "/")
	if len(parts) <= 2 {
		return path
	}
	return strings.Join(parts[len(parts)-2:], "/")
}
