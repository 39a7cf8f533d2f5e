//go:build !cgo

package main

import (
	"fmt"
	"os"

	"github.com/dusk-indust/codescan/internal/graph"
)

// openStore without CGO cannot reach KuzuDB; a configured database path is
// ignored with a warning and the scanner uses its in-memory store.
func openStore(dbPath string) (graph.Store, error) {
	if dbPath != "" {
		fmt.Fprintln(os.Stderr, "warning: graph persistence requires a CGO build; using in-memory store")
	}
	return nil, nil
}
