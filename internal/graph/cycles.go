package graph

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dusk-indust/codescan/internal/scan"
)

// DefaultFanOutThreshold is the out-degree above which a file is reported as
// a high-fan-out ("god") file.
const DefaultFanOutThreshold = 10

// FindCycles runs a depth-first search over the relationship graph and
// returns the simple cycles it encounters: no file repeats within a cycle
// except the implicit closing edge back to the start. The DFS uses an
// explicit stack so pathological graphs cannot exhaust the call stack.
// Traversal restarts from every not-yet-visited node to cover disconnected
// components; densely connected graphs may report overlapping cycles, which
// is acceptable for the sparse graphs real codebases produce.
func FindCycles(relationships map[string][]string) [][]string {
	roots := make([]string, 0, len(relationships))
	for node := range relationships {
		roots = append(roots, node)
	}
	sort.Strings(roots)

	visited := make(map[string]bool, len(relationships))
	seen := make(map[string]bool) // canonical cycle keys
	var cycles [][]string

	type frame struct {
		node string
		next int // index of the next neighbor to explore
	}

	for _, root := range roots {
		if visited[root] {
			continue
		}

		stack := []frame{{node: root}}
		onPath := map[string]int{root: 0} // node -> stack index
		visited[root] = true

		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			neighbors := relationships[top.node]

			if top.next >= len(neighbors) {
				delete(onPath, top.node)
				stack = stack[:len(stack)-1]
				continue
			}

			nb := neighbors[top.next]
			top.next++

			if idx, ok := onPath[nb]; ok {
				// Back edge: the sub-path from nb to the current node is a cycle.
				cycle := make([]string, 0, len(stack)-idx)
				for _, f := range stack[idx:] {
					cycle = append(cycle, f.node)
				}
				key := cycleKey(cycle)
				if !seen[key] {
					seen[key] = true
					cycles = append(cycles, cycle)
				}
				continue
			}
			if visited[nb] {
				continue
			}

			visited[nb] = true
			onPath[nb] = len(stack)
			stack = append(stack, frame{node: nb})
		}
	}

	return cycles
}

// FindHighFanOut reports every file whose out-degree exceeds threshold,
// regardless of cycle membership. A threshold <= 0 uses the default.
func FindHighFanOut(relationships map[string][]string, threshold int) []scan.ArchitectureIssue {
	if threshold <= 0 {
		threshold = DefaultFanOutThreshold
	}

	paths := make([]string, 0, len(relationships))
	for path := range relationships {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	var issues []scan.ArchitectureIssue
	for _, path := range paths {
		fanOut := len(relationships[path])
		if fanOut <= threshold {
			continue
		}
		issues = append(issues, scan.ArchitectureIssue{
			Kind:     scan.ArchHighFanOut,
			Severity: scan.SeverityMedium,
			Message:  fmt.Sprintf("%s depends on %d files (threshold %d); consider splitting responsibilities", path, fanOut, threshold),
			Files:    []string{path},
		})
	}
	return issues
}

// Analyze combines cycle detection and fan-out reporting into the
// architecture issue list consumed by the score aggregator.
func Analyze(relationships map[string][]string, fanOutThreshold int) []scan.ArchitectureIssue {
	var issues []scan.ArchitectureIssue
	for _, cycle := range FindCycles(relationships) {
		issues = append(issues, scan.ArchitectureIssue{
			Kind:     scan.ArchCircularDependency,
			Severity: scan.SeverityHigh,
			Message:  fmt.Sprintf("circular dependency: %s", strings.Join(append(append([]string{}, cycle...), cycle[0]), " -> ")),
			Files:    cycle,
		})
	}
	issues = append(issues, FindHighFanOut(relationships, fanOutThreshold)...)
	return issues
}

// cycleKey canonicalizes a cycle by rotating its smallest member to the
// front, so the same cycle discovered from different roots dedupes.
func cycleKey(cycle []string) string {
	min := 0
	for i, node := range cycle {
		if node < cycle[min] {
			min = i
		}
	}
	rotated := make([]string, 0, len(cycle))
	rotated = append(rotated, cycle[min:]...)
	rotated = append(rotated, cycle[:min]...)
	return strings.Join(rotated, "\x00")
}
