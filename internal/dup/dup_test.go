package dup

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// block returns n distinct non-blank lines joined by newlines.
func block(n int) string {
	lines := make([]string, n)
	for i := range lines {
		lines[i] = fmt.Sprintf("value_%02d = compute(%d)", i, i)
	}
	return strings.Join(lines, "\n") + "\n"
}

func TestFindDuplicates_ExactBlock(t *testing.T) {
	d := NewDetector(0, 0)

	// Identical for 19 lines, diverging afterwards.
	contents := map[string]string{
		"a.py": block(19) + "tail_a = 1\n",
		"b.py": block(19) + "tail_b = 2\n",
	}

	blocks := d.FindDuplicates(contents)
	require.Len(t, blocks, 1)
	b := blocks[0]
	assert.Equal(t, "a.py", b.FileA)
	assert.Equal(t, "b.py", b.FileB)
	assert.Equal(t, 1, b.StartA)
	assert.Equal(t, 1, b.StartB)
	assert.Equal(t, 19, b.Length)
	assert.Equal(t, 1.0, b.Similarity)
}

func TestFindDuplicates_BelowMinimum(t *testing.T) {
	d := NewDetector(5, 0)

	contents := map[string]string{
		"a.py": block(4),
		"b.py": block(4),
	}
	assert.Empty(t, d.FindDuplicates(contents))
}

func TestFindDuplicates_BlankLinesBreakBlocks(t *testing.T) {
	d := NewDetector(5, 0)

	// 3 shared lines, a blank, 3 more shared lines: no run reaches 5.
	content := block(3) + "\n" + block(3)
	contents := map[string]string{
		"a.py": content,
		"b.py": content,
	}
	assert.Empty(t, d.FindDuplicates(contents))
}

func TestFindDuplicates_IndentationInsensitive(t *testing.T) {
	d := NewDetector(5, 0)

	plain := block(6)
	indented := "    " + strings.ReplaceAll(strings.TrimSuffix(plain, "\n"), "\n", "\n    ") + "\n"

	blocks := d.FindDuplicates(map[string]string{"a.py": plain, "b.py": indented})
	require.Len(t, blocks, 1)
	assert.Equal(t, 6, blocks[0].Length)
}

func TestFindDuplicates_OversizedFileSkipped(t *testing.T) {
	d := NewDetector(5, 10)

	contents := map[string]string{
		"a.py": block(19),
		"b.py": block(19),
	}
	assert.Empty(t, d.FindDuplicates(contents))
}

func TestFindDuplicates_AnchorNotReused(t *testing.T) {
	d := NewDetector(3, 0)

	// b.py repeats a.py's block twice. The same anchor line of a.py matches
	// both occurrences (one block each), but the covered lines of a.py are
	// never re-anchored, so the sub-runs starting at lines 2..5 are not
	// reported again.
	contents := map[string]string{
		"a.py": block(5),
		"b.py": block(5) + block(5),
	}

	blocks := d.FindDuplicates(contents)
	require.Len(t, blocks, 2)
	for _, b := range blocks {
		assert.Equal(t, 5, b.Length)
		assert.Equal(t, 1, b.StartA)
	}
	assert.Equal(t, 1, blocks[0].StartB)
	assert.Equal(t, 6, blocks[1].StartB)
}

func TestFindDuplicates_SingleFileNoPairs(t *testing.T) {
	d := NewDetector(0, 0)
	assert.Empty(t, d.FindDuplicates(map[string]string{"a.py": block(30)}))
	assert.Empty(t, d.FindDuplicates(nil))
}
