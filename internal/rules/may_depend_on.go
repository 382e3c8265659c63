package rules

import (
	"fmt"

	"github.com/archguard/archguard/internal/logicalpath"
	"github.com/archguard/archguard/internal/sourcefile"
)

// MayDependOnRule allows Subject to depend only on its own descendants and
// the descendants of Allowed. Grounded on
// original_source/src/rules/may_depend_on.rs.
type MayDependOnRule struct {
	Subject logicalpath.Path
	Allowed []logicalpath.Path
}

func (r *MayDependOnRule) Name() string { return "may_depend_on" }

func (r *MayDependOnRule) String() string {
	if len(r.Allowed) == 0 {
		return fmt.Sprintf("%s may not depend on any modules", r.Subject)
	}
	return fmt.Sprintf("%s may depend on [%s]", r.Subject, joinPaths(r.Allowed))
}

func (r *MayDependOnRule) IsApplicable(file *sourcefile.SourceFile) bool {
	return logicalpath.IsDescendantOf(file.LogicalPath, r.Subject)
}

func (r *MayDependOnRule) Apply(file *sourcefile.SourceFile) (string, bool) {
	forbidden := forbiddenDependencies(file.Dependencies, func(dep logicalpath.Path) bool {
		if logicalpath.IsDescendantOf(dep, r.Subject) {
			return false
		}
		return !logicalpath.IsDescendantOfAny(dep, r.Allowed)
	})
	if len(forbidden) == 0 {
		return "", false
	}
	return fmt.Sprintf("Forbidden dependencies to [%s] in file://%s", joinPaths(forbidden), file.Path), true
}
