// Package sourceloc maps a filesystem path to the canonical logical path of
// the module it implements, walking ancestor directories to find the
// nearest package manifest. Grounded on original_source's project/manifest
// handling and internal/walker's ancestor-aware path helpers.
package sourceloc

import (
	"path/filepath"
	"strings"

	"github.com/archguard/archguard/internal/archerr"
	"github.com/archguard/archguard/internal/logicalpath"
	"github.com/archguard/archguard/internal/manifest"
)

// SourceExtension is the file extension this resolver accepts.
const SourceExtension = ".rs"

// entrySegment is the bare module name a package uses for its root file;
// a file resolving to just this segment collapses to the package name
// alone.
const entrySegment = "lib"

// groupSegment is the module-group file name; a trailing segment with this
// name is dropped rather than appended.
const groupSegment = "mod"

// srcSegment is the conventional source-root directory name. Everything up
// to and including it is dropped from the resolved suffix.
const srcSegment = "src"

// Resolver resolves filesystem paths to logical paths by locating the
// nearest ancestor manifest.
type Resolver struct {
	extension string
}

// New returns a Resolver accepting the conventional .rs extension.
func New() *Resolver {
	return &Resolver{extension: SourceExtension}
}

// NewWithExtension returns a Resolver accepting the given extension
// instead of the conventional .rs, for the rare project configured to
// keep its Rust sources under a non-standard suffix.
func NewWithExtension(extension string) *Resolver {
	if extension == "" {
		extension = SourceExtension
	}
	return &Resolver{extension: extension}
}

// Resolve walks up from path to the nearest manifest and derives the
// logical path relative to it.
func (r *Resolver) Resolve(path string) (logicalpath.Path, error) {
	info, err := statFile(path)
	if err != nil {
		return logicalpath.Empty, err
	}
	if info.isDir {
		return logicalpath.Empty, archerr.ErrNotAFile
	}
	if filepath.Ext(path) != r.extension {
		return logicalpath.Empty, archerr.ErrWrongExtension
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return logicalpath.Empty, err
	}

	manifestDir, manifestPath, found := findNearestManifest(filepath.Dir(absPath))
	if !found {
		return logicalpath.Empty, archerr.ErrNotInAPackage
	}

	m, err := manifest.Load(manifestPath)
	if err != nil {
		return logicalpath.Empty, archerr.ErrMissingPackageName
	}
	packageName, err := m.PackageName()
	if err != nil {
		return logicalpath.Empty, archerr.ErrMissingPackageName
	}

	rel, err := filepath.Rel(manifestDir, absPath)
	if err != nil {
		return logicalpath.Empty, err
	}

	segments := splitSegments(rel)
	segments = stripSrcPrefix(segments)
	if len(segments) == 0 {
		return logicalpath.Empty, archerr.ErrEmptyModulePath
	}

	last := len(segments) - 1
	segments[last] = strings.TrimSuffix(segments[last], r.extension)

	switch {
	case len(segments) == 1 && segments[0] == entrySegment:
		segments = nil
	case segments[last] == groupSegment:
		segments = segments[:last]
	}

	if len(segments) == 0 && packageName == "" {
		return logicalpath.Empty, archerr.ErrEmptyModulePath
	}

	return logicalpath.Join(append([]string{packageName}, segments...)...), nil
}

// splitSegments splits a relative path into its directory/file components,
// independent of the host OS separator.
func splitSegments(rel string) []string {
	rel = filepath.ToSlash(rel)
	if rel == "" || rel == "." {
		return nil
	}
	return strings.Split(rel, "/")
}

// stripSrcPrefix drops every segment up to and including the conventional
// src/ directory, if present. Paths with no src/ segment are returned
// unchanged.
func stripSrcPrefix(segments []string) []string {
	for i, seg := range segments {
		if seg == srcSegment {
			return segments[i+1:]
		}
	}
	return segments
}

type fileInfo struct {
	isDir bool
}
