package rules

import (
	"fmt"

	"github.com/archguard/archguard/internal/logicalpath"
	"github.com/archguard/archguard/internal/sourcefile"
)

// MustNotDependOnAnythingRule forbids Subject from depending on anything
// outside itself except the descendants of AllowedExternal. Grounded on
// original_source/src/builtin_rules/must_not_depend_on_anything.rs.
type MustNotDependOnAnythingRule struct {
	Subject         logicalpath.Path
	AllowedExternal []logicalpath.Path
}

func (r *MustNotDependOnAnythingRule) Name() string { return "must_not_depend_on_anything" }

func (r *MustNotDependOnAnythingRule) String() string {
	if len(r.AllowedExternal) == 0 {
		return fmt.Sprintf("%s may not depend on any modules", r.Subject)
	}
	return fmt.Sprintf("%s may depend on [%s]", r.Subject, joinPaths(r.AllowedExternal))
}

func (r *MustNotDependOnAnythingRule) IsApplicable(file *sourcefile.SourceFile) bool {
	return logicalpath.IsDescendantOf(file.LogicalPath, r.Subject)
}

func (r *MustNotDependOnAnythingRule) Apply(file *sourcefile.SourceFile) (string, bool) {
	forbidden := forbiddenDependencies(file.Dependencies, func(dep logicalpath.Path) bool {
		if logicalpath.IsDescendantOf(dep, r.Subject) {
			return false
		}
		return !logicalpath.IsDescendantOfAny(dep, r.AllowedExternal)
	})
	if len(forbidden) == 0 {
		return "", false
	}
	return fmt.Sprintf("Forbidden dependencies to [%s] in file://%s", joinPaths(forbidden), file.Path), true
}
