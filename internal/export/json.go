// Package export serializes a finished analysis: JSON for storage or
// transmission, Mermaid for diagramming. Both are pure data renderers; no
// transport or presentation lives here.
package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/dusk-indust/codescan/internal/scan"
)

// AnalysisExport wraps a CodebaseAnalysis with export metadata. The embedded
// analysis keeps its stable field names, so round-tripping the document
// yields the original value.
type AnalysisExport struct {
	Root       string                 `json:"root"`
	ExportedAt string                 `json:"exportedAt"`
	Analysis   *scan.CodebaseAnalysis `json:"analysis"`
}

// MarshalAnalysis serializes an analysis for the given scan root.
func MarshalAnalysis(root string, analysis *scan.CodebaseAnalysis) ([]byte, error) {
	doc := AnalysisExport{
		Root:       root,
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
		Analysis:   analysis,
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal analysis: %w", err)
	}
	return data, nil
}

// WriteAnalysis writes the serialized analysis to path, creating parent
// directories as needed.
func WriteAnalysis(path, root string, analysis *scan.CodebaseAnalysis) error {
	data, err := MarshalAnalysis(root, analysis)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir %s: %w", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// UnmarshalAnalysis parses a document produced by MarshalAnalysis.
func UnmarshalAnalysis(data []byte) (*AnalysisExport, error) {
	var doc AnalysisExport
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("unmarshal analysis: %w", err)
	}
	return &doc, nil
}
