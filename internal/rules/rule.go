// Package rules implements the module-scoped rule variants: MayDependOn,
// MustNotDependOn, MustNotDependOnAnything, plus the user-extensible
// interface. Grounded on
// original_source/src/rules/{may_depend_on,must_not_depend_on}.rs and
// src/builtin_rules/must_not_depend_on_anything.rs. The Violation/Rule
// scaffolding keeps the shape of a small interface plus a plain
// Violation value, retargeted from filesystem-tree linting to
// per-SourceFile dependency checking. Colored ansi_term Display
// formatting in the original is replaced by plain text; coloring
// belongs to internal/output, the presentation boundary, applied once
// rather than inside each rule.
package rules

import (
	"fmt"
	"strings"

	"github.com/archguard/archguard/internal/logicalpath"
	"github.com/archguard/archguard/internal/sourcefile"
)

// Rule is a module-scoped rule: applicable to a subset of source files,
// each application either succeeds or produces a violation message.
type Rule interface {
	fmt.Stringer
	Name() string
	IsApplicable(file *sourcefile.SourceFile) bool
	Apply(file *sourcefile.SourceFile) (message string, violated bool)
}

// Violation is a single rule failure, attributable to the rule and file
// that produced it. Field names match what internal/output's
// formatters render without translation.
type Violation struct {
	Rule    string
	Path    string
	Message string
}

func joinPaths(paths []logicalpath.Path) string {
	parts := make([]string, len(paths))
	for i, p := range paths {
		parts[i] = string(p)
	}
	return strings.Join(parts, ", ")
}

func forbiddenDependencies(deps []logicalpath.Path, isForbidden func(logicalpath.Path) bool) []logicalpath.Path {
	var forbidden []logicalpath.Path
	for _, dep := range deps {
		if isForbidden(dep) {
			forbidden = append(forbidden, dep)
		}
	}
	return forbidden
}
