// Package graph builds and analyzes the cross-file relationship graph:
// heuristic dependency edges, circular-dependency detection, and high-fan-out
// reporting, with optional persistence behind the Store interface.
package graph

import (
	"context"
	"io"

	"github.com/dusk-indust/codescan/internal/scan"
)

// FileNode is a source file as stored in the relationship graph.
type FileNode struct {
	Path     string        `json:"path"`
	Language scan.Language `json:"language"`
	LOC      int           `json:"loc"`
}

// Edge is one directed depends-on relationship between two files.
type Edge struct {
	Source string `json:"source"`
	Target string `json:"target"`
}

// Stats summarizes a stored relationship graph.
type Stats struct {
	FileCount int `json:"fileCount"`
	EdgeCount int `json:"edgeCount"`
}

// Store is the backend for the relationship graph.
// Implementations: KuzuStore (persistent, cgo), MemStore (default).
type Store interface {
	io.Closer

	// InitSchema is called once before any data is inserted.
	InitSchema(ctx context.Context) error

	AddFile(ctx context.Context, node FileNode) error
	AddEdge(ctx context.Context, edge Edge) error

	GetAllEdges(ctx context.Context) ([]Edge, error)
	Stats(ctx context.Context) (*Stats, error)
}
