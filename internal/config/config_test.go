package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFile(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.Workers)

	cfg.Normalize()
	assert.Equal(t, DefaultWorkers, cfg.Workers)
}

func TestLoad_Yaml(t *testing.T) {
	dir := t.TempDir()
	content := `workers: 4
excludeDirs:
  - generated
  - fixtures
minDuplicateBlock: 8
maxDuplicateFileLines: 500
fanOutThreshold: 15
minCoverageRatio: 0.5
graphDBPath: .codescan/graph.db
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "codescan.yml"), []byte(content), 0o644))

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, 4, cfg.Workers)
	assert.Equal(t, []string{"generated", "fixtures"}, cfg.ExcludeDirs)
	assert.Equal(t, 8, cfg.MinDuplicateBlock)
	assert.Equal(t, 500, cfg.MaxDuplicateFileLines)
	assert.Equal(t, 15, cfg.FanOutThreshold)
	assert.Equal(t, 0.5, cfg.MinCoverageRatio)
	assert.Equal(t, ".codescan/graph.db", cfg.GraphDBPath)

	// Normalize leaves explicit values alone.
	cfg.Normalize()
	assert.Equal(t, 4, cfg.Workers)
}

func TestLoad_YamlExtension(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "codescan.yaml"), []byte("workers: 2\n"), 0o644))

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Workers)
}

func TestLoad_InvalidYaml(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "codescan.yml"), []byte("workers: [not an int\n"), 0o644))

	_, err := Load(dir)
	assert.Error(t, err)
}
