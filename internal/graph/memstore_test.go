package graph

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dusk-indust/codescan/internal/scan"
)

func TestMemStore_Basics(t *testing.T) {
	ctx := context.Background()
	store := NewMemStore()
	require.NoError(t, store.InitSchema(ctx))

	require.NoError(t, store.AddFile(ctx, FileNode{Path: "a.py", Language: scan.LangPython, LOC: 5}))
	require.NoError(t, store.AddFile(ctx, FileNode{Path: "b.py", Language: scan.LangPython, LOC: 9}))
	require.NoError(t, store.AddEdge(ctx, Edge{Source: "a.py", Target: "b.py"}))

	stats, err := store.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.FileCount)
	assert.Equal(t, 1, stats.EdgeCount)

	edges, err := store.GetAllEdges(ctx)
	require.NoError(t, err)
	assert.Equal(t, []Edge{{Source: "a.py", Target: "b.py"}}, edges)

	require.NoError(t, store.Close())
}

func TestMemStore_UpsertByPath(t *testing.T) {
	ctx := context.Background()
	store := NewMemStore()

	require.NoError(t, store.AddFile(ctx, FileNode{Path: "a.py", LOC: 5}))
	require.NoError(t, store.AddFile(ctx, FileNode{Path: "a.py", LOC: 7}))

	stats, err := store.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.FileCount)
}

func TestMemStore_ConcurrentWrites(t *testing.T) {
	ctx := context.Background()
	store := NewMemStore()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = store.AddEdge(ctx, Edge{Source: "a.py", Target: "b.py"})
		}()
	}
	wg.Wait()

	stats, err := store.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 20, stats.EdgeCount)
}
