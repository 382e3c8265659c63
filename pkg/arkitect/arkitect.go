package arkitect

import (
	"github.com/archguard/archguard/internal/engine"
	"github.com/archguard/archguard/internal/project"
	"github.com/archguard/archguard/internal/rules"
)

// Arkitect runs a RuleSet against a Project and reports violations against
// a configurable baseline count of pre-existing violations. Grounded on
// original_source/src/dsl/arkitect.rs's Arkitect/ensure_that/complies_with.
type Arkitect struct {
	project  *project.Project
	baseline int
}

// EnsureThat starts a compliance check against p.
func EnsureThat(p *project.Project) *Arkitect {
	return &Arkitect{project: p}
}

// WithBaseline allows up to n pre-existing violations before CompliesWith
// reports failure, the usual way an existing codebase adopts a new rule
// set without fixing every violation up front.
func (a *Arkitect) WithBaseline(n int) *Arkitect {
	a.baseline = n
	return a
}

// CompliesWith runs rules against the project. It always returns the full
// violation list; ok is false when the count exceeds the configured
// baseline.
func (a *Arkitect) CompliesWith(rs RuleSet) (violations []rules.Violation, ok bool) {
	violations = engine.New(a.project, rs.ModuleRules, rs.ProjectRules).Run()
	return violations, len(violations) <= a.baseline
}
