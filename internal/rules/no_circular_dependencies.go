package rules

import (
	"fmt"

	"github.com/archguard/archguard/internal/graph"
	"github.com/archguard/archguard/internal/graph/analysis"
	"github.com/archguard/archguard/internal/sourcefile"
)

// ProjectRule is applied once against the whole project's dependency graph,
// as opposed to Rule which is applied file by file. The only built-in
// variant is NoCircularDependencies. Grounded on
// original_source/src/rule.rs's ProjectRule trait.
type ProjectRule interface {
	fmt.Stringer
	Apply(files []*sourcefile.SourceFile) []Violation
}

// NoCircularDependencies detects cycles in the project's dependency graph
// after collapsing every logical path to its first MaxDepth segments.
// Grounded on
// original_source/src/rules/must_not_have_circular_dependencies.rs.
type NoCircularDependencies struct {
	MaxDepth int
}

func (r *NoCircularDependencies) String() string {
	return "Must not have circular dependencies"
}

// Apply returns one Violation per detected cycle, one violation per
// cycle rather than a single combined string. Path carries the cycle
// itself, since a cycle spans multiple files rather than belonging to
// a single one.
func (r *NoCircularDependencies) Apply(files []*sourcefile.SourceFile) []Violation {
	g := graph.Build(files).Truncate(r.MaxDepth)
	cycles := analysis.NewCycleDetector(g).FindCycles()

	violations := make([]Violation, 0, len(cycles))
	for _, c := range cycles {
		violations = append(violations, Violation{
			Rule:    r.String(),
			Path:    c.String(),
			Message: fmt.Sprintf("Circular dependency cycle detected: %s", c.String()),
		})
	}
	return violations
}
