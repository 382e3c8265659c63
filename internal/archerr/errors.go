// Package archerr collects the fatal setup errors shared across the
// resolver, project discovery, and source-file construction. These are
// raised immediately and have no recoverable semantics; they
// are never accumulated as violations.
package archerr

import "errors"

var (
	// ErrNotAFile is returned when a directory is given where a source
	// file was expected.
	ErrNotAFile = errors.New("archguard: path is not a file")

	// ErrWrongExtension is returned when a file's extension does not
	// match the configured source extension.
	ErrWrongExtension = errors.New("archguard: file does not have the expected source extension")

	// ErrNotInAPackage is returned when no ancestor directory contains a
	// package manifest.
	ErrNotInAPackage = errors.New("archguard: file is not inside a package (no manifest found)")

	// ErrMissingPackageName is returned when the manifest is missing or
	// has a malformed [package].name.
	ErrMissingPackageName = errors.New("archguard: manifest is missing package.name")

	// ErrEmptyModulePath is returned when resolution yields no segments
	// after the package name.
	ErrEmptyModulePath = errors.New("archguard: resolved an empty module path")

	// ErrNoManifest is returned when a package/workspace root has no
	// manifest file at all.
	ErrNoManifest = errors.New("archguard: no manifest found at the given root")

	// ErrInvalidManifest is returned when a manifest exists but cannot be
	// parsed. A missing [package] or [workspace] section is reported by
	// ErrNotAPackage or ErrNotAWorkspace instead.
	ErrInvalidManifest = errors.New("archguard: manifest could not be parsed")

	// ErrNotAPackage is returned when a directory is used as a
	// single-package root but its manifest has no [package] section.
	ErrNotAPackage = errors.New("archguard: root is not a package (no [package] section)")

	// ErrNotAWorkspace is returned when a directory is used as a
	// workspace root but its manifest has no [workspace] section.
	ErrNotAWorkspace = errors.New("archguard: root is not a workspace (no [workspace] section)")

	// ErrManifestDirNotSet is returned by the environment-based
	// constructors when the expected environment variable is unset.
	ErrManifestDirNotSet = errors.New("archguard: ARCHGUARD_MANIFEST_DIR is not set")
)

// ParseFailure reports that a source file's syntax tree could not be
// built; a malformed file cannot produce meaningful dependency data, so
// this is fatal rather than accumulated.
type ParseFailure struct {
	Path   string
	Reason string
}

func (e *ParseFailure) Error() string {
	return "archguard: failed to parse " + e.Path + ": " + e.Reason
}
