// Package dup finds near-identical contiguous line blocks across file pairs.
package dup

import (
	"sort"
	"strings"

	"github.com/cespare/xxhash/v2"

	"github.com/dusk-indust/codescan/internal/scan"
)

const (
	// DefaultMinBlockSize is the minimum matched run length reported.
	DefaultMinBlockSize = 5

	// DefaultMaxFileLines is the per-file line ceiling: pairs where either
	// file exceeds it are skipped. The pairwise scan is O(L²), so this is a
	// resource boundary, not a correctness requirement; skipped pairs are
	// omitted, not reported as errors.
	DefaultMaxFileLines = 3000
)

// fileLines is the preprocessed view of one file: trimmed lines plus a
// 64-bit hash per line as a comparison fast path.
type fileLines struct {
	path   string
	lines  []string
	hashes []uint64
}

// Detector finds duplicate blocks across a file set.
type Detector struct {
	minBlockSize int
	maxFileLines int
}

// NewDetector creates a Detector. Non-positive arguments fall back to the
// package defaults.
func NewDetector(minBlockSize, maxFileLines int) *Detector {
	if minBlockSize <= 0 {
		minBlockSize = DefaultMinBlockSize
	}
	if maxFileLines <= 0 {
		maxFileLines = DefaultMaxFileLines
	}
	return &Detector{minBlockSize: minBlockSize, maxFileLines: maxFileLines}
}

// FindDuplicates compares every unordered pair of distinct files and reports
// runs of identical (whitespace-trimmed, non-blank) lines of at least the
// minimum block size. Within one pair, lines of the first file already
// covered by an emitted block are not re-anchored, and the second file's scan
// restarts past the matched block; overlapping duplicates that share an
// anchor line are therefore under-reported. That restart policy is inherited
// behavior, kept deliberately.
func (d *Detector) FindDuplicates(contents map[string]string) []scan.DuplicateBlock {
	paths := make([]string, 0, len(contents))
	for path := range contents {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	prepared := make([]fileLines, 0, len(paths))
	for _, path := range paths {
		prepared = append(prepared, prepare(path, contents[path]))
	}

	var blocks []scan.DuplicateBlock
	for i := 0; i < len(prepared); i++ {
		for j := i + 1; j < len(prepared); j++ {
			a, b := prepared[i], prepared[j]
			if len(a.lines) > d.maxFileLines || len(b.lines) > d.maxFileLines {
				continue
			}
			blocks = append(blocks, d.comparePair(a, b)...)
		}
	}
	return blocks
}

// comparePair scans every anchor line pair (ia, ib) and extends matches.
func (d *Detector) comparePair(a, b fileLines) []scan.DuplicateBlock {
	var blocks []scan.DuplicateBlock
	covered := make([]bool, len(a.lines))

	for ia := 0; ia < len(a.lines); ia++ {
		if covered[ia] || a.lines[ia] == "" {
			continue
		}
		for ib := 0; ib < len(b.lines); {
			if b.lines[ib] == "" || a.hashes[ia] != b.hashes[ib] || a.lines[ia] != b.lines[ib] {
				ib++
				continue
			}

			length := matchLength(a, b, ia, ib)
			if length < d.minBlockSize {
				ib++
				continue
			}

			blocks = append(blocks, scan.DuplicateBlock{
				FileA:      a.path,
				StartA:     ia + 1,
				FileB:      b.path,
				StartB:     ib + 1,
				Length:     length,
				Similarity: 1.0,
			})
			for k := ia; k < ia+length && k < len(covered); k++ {
				covered[k] = true
			}
			ib += length
		}
	}
	return blocks
}

// matchLength extends the matched window while trimmed lines stay equal and
// non-blank.
func matchLength(a, b fileLines, ia, ib int) int {
	length := 0
	for ia+length < len(a.lines) && ib+length < len(b.lines) {
		la := a.lines[ia+length]
		if la == "" || a.hashes[ia+length] != b.hashes[ib+length] || la != b.lines[ib+length] {
			break
		}
		length++
	}
	return length
}

// prepare trims each line and hashes the non-blank ones.
func prepare(path, content string) fileLines {
	raw := strings.Split(content, "\n")
	fl := fileLines{
		path:   path,
		lines:  make([]string, len(raw)),
		hashes: make([]uint64, len(raw)),
	}
	for i, line := range raw {
		trimmed := strings.TrimSpace(line)
		fl.lines[i] = trimmed
		if trimmed != "" {
			fl.hashes[i] = xxhash.Sum64String(trimmed)
		}
	}
	return fl
}
