// Package config loads project-level scanner settings from codescan.yml.
package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the tunable settings of one scan. Zero values mean "use the
// built-in default"; Normalize resolves them.
type Config struct {
	// Workers bounds the per-file analysis concurrency.
	Workers int `yaml:"workers,omitempty"`

	// ExcludeDirs are path segments skipped during collection, merged with
	// the built-in exclusions (VCS, caches, build output).
	ExcludeDirs []string `yaml:"excludeDirs,omitempty"`

	// MinDuplicateBlock is the minimum duplicate block length.
	MinDuplicateBlock int `yaml:"minDuplicateBlock,omitempty"`

	// MaxDuplicateFileLines skips duplicate comparison for larger files.
	MaxDuplicateFileLines int `yaml:"maxDuplicateFileLines,omitempty"`

	// FanOutThreshold is the out-degree above which a file is flagged.
	FanOutThreshold int `yaml:"fanOutThreshold,omitempty"`

	// MinCoverageRatio is the test/source ratio below which a gap is reported.
	MinCoverageRatio float64 `yaml:"minCoverageRatio,omitempty"`

	// GraphDBPath, when set, persists the relationship graph to a KuzuDB
	// database at this path instead of the in-memory store.
	GraphDBPath string `yaml:"graphDBPath,omitempty"`
}

// DefaultWorkers is the per-file concurrency bound when unconfigured.
const DefaultWorkers = 8

// Load attempts to read codescan.yml or codescan.yaml from the given
// directory. Returns a zero-value config (not an error) if no config file
// exists.
func Load(dir string) (*Config, error) {
	for _, name := range []string{"codescan.yml", "codescan.yaml"} {
		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		var cfg Config
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, err
		}
		return &cfg, nil
	}
	return &Config{}, nil
}

// Normalize fills unset fields with defaults and returns the config.
func (c *Config) Normalize() *Config {
	if c.Workers <= 0 {
		c.Workers = DefaultWorkers
	}
	return c
}
