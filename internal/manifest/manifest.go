// Package manifest reads the Cargo.toml-shaped package and workspace
// manifests that anchor logical-path resolution and project discovery.
package manifest

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Name is the manifest file name searched for at each ancestor directory.
const Name = "Cargo.toml"

// Manifest is the subset of a package manifest this tool reads. Other
// fields (dependencies, features, profiles, ...) are ignored.
type Manifest struct {
	Package   *PackageSection   `toml:"package"`
	Workspace *WorkspaceSection `toml:"workspace"`
}

// PackageSection carries the package's declared name.
type PackageSection struct {
	Name string `toml:"name"`
}

// WorkspaceSection carries the workspace's member package directories.
type WorkspaceSection struct {
	Members []string `toml:"members"`
}

// Load reads and parses the manifest at path.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("manifest: read %s: %w", path, err)
	}

	var m Manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("manifest: parse %s: %w", path, err)
	}
	return &m, nil
}

// PackageName returns the package name declared in [package], or an error
// if the section or the name is missing or empty.
func (m *Manifest) PackageName() (string, error) {
	if m.Package == nil || m.Package.Name == "" {
		return "", fmt.Errorf("manifest: missing [package].name")
	}
	return m.Package.Name, nil
}

// IsWorkspace reports whether the manifest declares a [workspace] section.
func (m *Manifest) IsWorkspace() bool {
	return m.Workspace != nil
}
