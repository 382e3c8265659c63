package rules

import (
	"fmt"

	"github.com/archguard/archguard/internal/logicalpath"
	"github.com/archguard/archguard/internal/sourcefile"
)

// MustNotDependOnRule forbids Subject from depending on any descendant of
// Forbidden. Grounded on original_source/src/rules/must_not_depend_on.rs.
type MustNotDependOnRule struct {
	Subject   logicalpath.Path
	Forbidden []logicalpath.Path
}

func (r *MustNotDependOnRule) Name() string { return "must_not_depend_on" }

func (r *MustNotDependOnRule) String() string {
	if len(r.Forbidden) == 0 {
		return fmt.Sprintf("%s may depend on any module", r.Subject)
	}
	return fmt.Sprintf("%s must not depend on [%s]", r.Subject, joinPaths(r.Forbidden))
}

func (r *MustNotDependOnRule) IsApplicable(file *sourcefile.SourceFile) bool {
	return logicalpath.IsDescendantOf(file.LogicalPath, r.Subject)
}

func (r *MustNotDependOnRule) Apply(file *sourcefile.SourceFile) (string, bool) {
	forbidden := forbiddenDependencies(file.Dependencies, func(dep logicalpath.Path) bool {
		return logicalpath.IsDescendantOfAny(dep, r.Forbidden)
	})
	if len(forbidden) == 0 {
		return "", false
	}
	return fmt.Sprintf("Forbidden dependencies to [%s] in file://%s", joinPaths(forbidden), file.Path), true
}
