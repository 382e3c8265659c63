// Package engine drives rule evaluation over a project: every module rule
// against every applicable file, then every project rule against the
// whole-project dependency graph, in the declared order so violation
// output is deterministic. Grounded on original_source/src/engine.rs.
package engine

import (
	"github.com/archguard/archguard/internal/project"
	"github.com/archguard/archguard/internal/rules"
)

// Engine holds immutable references to the project and the rule set it
// was constructed with; a run mutates no shared state.
type Engine struct {
	project      *project.Project
	moduleRules  []rules.Rule
	projectRules []rules.ProjectRule
}

// New builds an Engine for a single evaluation run.
func New(p *project.Project, moduleRules []rules.Rule, projectRules []rules.ProjectRule) *Engine {
	return &Engine{project: p, moduleRules: moduleRules, projectRules: projectRules}
}

// Run evaluates every module rule against every file it applies to, then
// every project rule against the whole project, and returns the
// accumulated violations in file-order × rule-declaration order.
func (e *Engine) Run() []rules.Violation {
	var violations []rules.Violation

	for _, file := range e.project.Files {
		for _, rule := range e.moduleRules {
			if !rule.IsApplicable(file) {
				continue
			}
			if message, violated := rule.Apply(file); violated {
				violations = append(violations, rules.Violation{
					Rule:    rule.String(),
					Path:    file.Path,
					Message: message,
				})
			}
		}
	}

	for _, rule := range e.projectRules {
		violations = append(violations, rule.Apply(e.project.Files)...)
	}

	return violations
}
