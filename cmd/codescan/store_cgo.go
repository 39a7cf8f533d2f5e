//go:build cgo

package main

import "github.com/dusk-indust/codescan/internal/graph"

// openStore returns a file-backed KuzuDB store when dbPath is set, otherwise
// nil so the scanner falls back to its in-memory store.
func openStore(dbPath string) (graph.Store, error) {
	if dbPath == "" {
		return nil, nil
	}
	return graph.NewKuzuFileStore(dbPath)
}
