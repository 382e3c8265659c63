// Package config loads the optional .archguard.yml project-local defaults
// file: a baseline violation count, a source-extension override, and path
// exclusions, merged with the project's .gitignore when present. This is
// ambient CLI tooling, not part of the DSL's data model — it is read only
// by the cmd/archguard entry point; pkg/arkitect does not consult it.
// Deliberately without an extends/merge chain across ancestor
// directories (out of scope for a single-project tool; see DESIGN.md).
package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the configuration file searched for at the project root.
const FileName = ".archguard.yml"

// DefaultSourceExtension is used when Config.SourceExtension is unset.
const DefaultSourceExtension = ".rs"

// Config carries project-local defaults for the CLI entry point.
type Config struct {
	// Baseline is the number of pre-existing violations the CLI
	// tolerates before exiting with failure.
	Baseline int `yaml:"baseline"`

	// SourceExtension overrides the file extension sourceloc.Resolver
	// accepts. Empty means DefaultSourceExtension.
	SourceExtension string `yaml:"sourceExtension"`

	// Exclude lists glob patterns of paths to skip during project
	// discovery, merged with .gitignore unless AutoLoadGitignore is
	// explicitly false.
	Exclude []string `yaml:"exclude"`

	// AutoLoadGitignore defaults to true; set to false to stop merging
	// .gitignore patterns into Exclude.
	AutoLoadGitignore *bool `yaml:"autoLoadGitignore"`
}

// Load reads and parses the configuration file at path. A missing file is
// not an error: it returns a zero-value Config, since every field has a
// sensible default.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Config{}, nil
	}
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadWithGitignore loads the configuration at path and merges rootDir's
// .gitignore patterns into Exclude, unless AutoLoadGitignore is false.
func LoadWithGitignore(path, rootDir string) (*Config, error) {
	cfg, err := Load(path)
	if err != nil {
		return nil, err
	}
	if cfg.AutoLoadGitignore != nil && !*cfg.AutoLoadGitignore {
		return cfg, nil
	}
	patterns, err := LoadGitignorePatterns(rootDir)
	if err != nil {
		return cfg, nil
	}
	cfg.Exclude = MergeWithGitignore(cfg.Exclude, patterns)
	return cfg, nil
}

// ResolvedSourceExtension returns SourceExtension, or DefaultSourceExtension
// when unset.
func (c *Config) ResolvedSourceExtension() string {
	if c.SourceExtension == "" {
		return DefaultSourceExtension
	}
	return c.SourceExtension
}

// Path joins dir with FileName, the conventional lookup location.
func Path(dir string) string {
	return filepath.Join(dir, FileName)
}
