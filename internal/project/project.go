// Package project discovers a Rust package or workspace's source files and
// resolves each to a parsed sourcefile.SourceFile, the unit the rule
// engine operates on. Grounded on
// original_source/src/rust_project.rs (RustProject::from_directory) and
// src/dsl_v2/project.rs (Project::new/from_relative_path), using the
// internal/walker for filesystem traversal.
package project

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/archguard/archguard/internal/archerr"
	"github.com/archguard/archguard/internal/manifest"
	"github.com/archguard/archguard/internal/sourcefile"
	"github.com/archguard/archguard/internal/sourceloc"
	"github.com/archguard/archguard/internal/walker"
)

// manifestDirEnv mirrors CARGO_MANIFEST_DIR, the environment variable a
// build tool sets to the directory holding the package manifest currently
// being built.
const manifestDirEnv = "ARCHGUARD_MANIFEST_DIR"

// Project is a discovered set of source files ready for rule evaluation.
type Project struct {
	Root  string
	Files []*sourcefile.SourceFile
}

// ScanOptions narrows what a filesystem scan picks up: Exclude is a list
// of glob patterns skipped during traversal (typically a project's
// .archguard.yml exclusions merged with its .gitignore); Extension
// overrides the default .rs source file suffix. Both are ambient CLI
// configuration, not part of original_source's Project API, so they are
// opt-in via the *WithOptions variants rather than default parameters.
type ScanOptions struct {
	Exclude   []string
	Extension string
}

// FromPackageManifestDir builds a Project from a single package's root
// directory (the directory containing its Cargo.toml).
func FromPackageManifestDir(dir string) (*Project, error) {
	return FromPackageManifestDirWithOptions(dir, ScanOptions{})
}

// FromPackageManifestDirWithOptions is FromPackageManifestDir with
// configurable exclude patterns and source extension.
func FromPackageManifestDirWithOptions(dir string, opts ScanOptions) (*Project, error) {
	m, err := loadManifest(dir)
	if err != nil {
		return nil, err
	}
	if m.Package == nil {
		return nil, archerr.ErrNotAPackage
	}
	return scan(dir, []string{sourceRootOf(dir)}, opts)
}

// FromWorkspaceManifestDir builds a Project from a workspace root,
// aggregating every member's source files. A member directory lacking its
// own valid manifest is skipped and logged rather than failing the whole
// scan, matching a multi-crate workspace where a member may be mid-edit.
func FromWorkspaceManifestDir(dir string) (*Project, error) {
	return FromWorkspaceManifestDirWithOptions(dir, ScanOptions{})
}

// FromWorkspaceManifestDirWithOptions is FromWorkspaceManifestDir with
// configurable exclude patterns and source extension.
func FromWorkspaceManifestDirWithOptions(dir string, opts ScanOptions) (*Project, error) {
	m, err := loadManifest(dir)
	if err != nil {
		return nil, err
	}
	if m.Workspace == nil {
		return nil, archerr.ErrNotAWorkspace
	}

	var sourceDirs []string
	for _, member := range m.Workspace.Members {
		memberDir := filepath.Join(dir, member)
		memberManifest, err := loadManifest(memberDir)
		if err != nil {
			slog.Debug("skipping workspace member with no valid manifest", "member", member, "error", err)
			continue
		}
		if memberManifest.Package == nil {
			slog.Debug("skipping workspace member with no [package] section", "member", member)
			continue
		}
		sourceDirs = append(sourceDirs, sourceRootOf(memberDir))
	}

	return scan(dir, sourceDirs, opts)
}

// FromCurrentPackage reads ARCHGUARD_MANIFEST_DIR and scans it as a single
// package, mirroring original_source's Project::new/CARGO_MANIFEST_DIR.
func FromCurrentPackage() (*Project, error) {
	dir, ok := os.LookupEnv(manifestDirEnv)
	if !ok {
		return nil, archerr.ErrManifestDirNotSet
	}
	return FromPackageManifestDir(dir)
}

// FromCurrentWorkspace reads ARCHGUARD_MANIFEST_DIR and scans it as a
// workspace root.
func FromCurrentWorkspace() (*Project, error) {
	dir, ok := os.LookupEnv(manifestDirEnv)
	if !ok {
		return nil, archerr.ErrManifestDirNotSet
	}
	return FromWorkspaceManifestDir(dir)
}

// FromRelativePath resolves relativePath against the directory containing
// currentFile, mirroring original_source's Project::from_relative_path —
// the idiom a test uses to point at a fixture project beside its own
// source file.
func FromRelativePath(currentFile, relativePath string) (*Project, error) {
	base := filepath.Dir(currentFile)
	root, err := filepath.Abs(filepath.Join(base, relativePath))
	if err != nil {
		return nil, fmt.Errorf("project: resolve relative path: %w", err)
	}
	m, err := loadManifest(root)
	if err != nil {
		return nil, err
	}
	if m.IsWorkspace() {
		return FromWorkspaceManifestDir(root)
	}
	return FromPackageManifestDir(root)
}

func loadManifest(dir string) (*manifest.Manifest, error) {
	path := filepath.Join(dir, manifest.Name)
	if _, err := os.Stat(path); err != nil {
		return nil, archerr.ErrNoManifest
	}
	m, err := manifest.Load(path)
	if err != nil {
		return nil, archerr.ErrInvalidManifest
	}
	return m, nil
}

// sourceRootOf returns the conventional src/ directory beneath a package
// root. original_source additionally supports a package.metadata.source
// override; this tool does not read Cargo metadata tables, so the
// convention is fixed.
func sourceRootOf(packageDir string) string {
	return filepath.Join(packageDir, "src")
}

// scan walks every source directory, resolves each .rs file's logical
// path, and parses it into a SourceFile.
func scan(root string, sourceDirs []string, opts ScanOptions) (*Project, error) {
	resolver := sourceloc.NewWithExtension(opts.Extension)
	extension := opts.Extension
	if extension == "" {
		extension = sourceloc.SourceExtension
	}
	var files []*sourcefile.SourceFile

	for _, dir := range sourceDirs {
		w := walker.New(dir).WithExclude(opts.Exclude)
		if err := w.Walk(); err != nil {
			return nil, fmt.Errorf("project: walk %s: %w", dir, err)
		}
		for _, info := range w.GetFiles() {
			if info.IsDir || filepath.Ext(info.AbsPath) != extension {
				continue
			}
			logicalPath, err := resolver.Resolve(info.AbsPath)
			if err != nil {
				slog.Debug("skipping file with unresolvable logical path", "path", info.AbsPath, "error", err)
				continue
			}
			sf, err := sourcefile.FromPath(info.AbsPath, logicalPath)
			if err != nil {
				return nil, err
			}
			files = append(files, sf)
		}
	}

	return &Project{Root: root, Files: files}, nil
}
