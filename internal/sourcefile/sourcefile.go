// Package sourcefile implements a parsed source file whose
// dependencies are extracted eagerly at construction. Grounded on
// internal/walker.FileInfo's filesystem-backed value-object style.
package sourcefile

import (
	"os"

	"github.com/archguard/archguard/internal/archerr"
	"github.com/archguard/archguard/internal/extractor"
	"github.com/archguard/archguard/internal/logicalpath"
	"github.com/archguard/archguard/internal/rustsyntax"
)

// SourceFile is a single parsed Rust source file: its logical path and its
// already-extracted, ordered dependency list.
type SourceFile struct {
	Path         string
	LogicalPath  logicalpath.Path
	Dependencies []logicalpath.Path
}

var parser = rustsyntax.New()

// FromPath reads and parses the file at path, which must already have been
// resolved to logicalPath by the sourceloc resolver.
func FromPath(path string, logicalPath logicalpath.Path) (*SourceFile, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &archerr.ParseFailure{Path: path, Reason: err.Error()}
	}
	return FromSource(path, logicalPath, content)
}

// FromSource builds a SourceFile from already-read content and an explicit
// logical path, bypassing the filesystem. Used by tests and by callers
// that already hold file content in memory.
func FromSource(path string, logicalPath logicalpath.Path, content []byte) (*SourceFile, error) {
	tree, err := parser.Parse(content)
	if err != nil {
		return nil, &archerr.ParseFailure{Path: path, Reason: err.Error()}
	}
	defer tree.Close()

	deps := extractor.Extract(tree, logicalPath)

	return &SourceFile{
		Path:         path,
		LogicalPath:  logicalPath,
		Dependencies: deps,
	}, nil
}
