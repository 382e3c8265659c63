package arkitect

import (
	"testing"

	"github.com/archguard/archguard/internal/logicalpath"
	"github.com/archguard/archguard/internal/project"
	"github.com/archguard/archguard/internal/sourcefile"
)

func TestCompliesWithNoBaseline(t *testing.T) {
	p := &project.Project{
		Files: []*sourcefile.SourceFile{
			{Path: "domain/policy.rs", LogicalPath: "app::domain::policy", Dependencies: []logicalpath.Path{"app::infrastructure::db"}},
		},
	}
	rs := Define().
		RulesForModule("app::domain").
		ItMustNotDependOnAnything().
		Build()

	violations, ok := EnsureThat(p).CompliesWith(rs)
	if ok {
		t.Fatal("expected failure, domain depends on infrastructure")
	}
	if len(violations) != 1 {
		t.Fatalf("expected 1 violation, got %v", violations)
	}
}

func TestCompliesWithBaselineAbsorbsViolation(t *testing.T) {
	p := &project.Project{
		Files: []*sourcefile.SourceFile{
			{Path: "domain/policy.rs", LogicalPath: "app::domain::policy", Dependencies: []logicalpath.Path{"app::infrastructure::db"}},
		},
	}
	rs := Define().
		RulesForModule("app::domain").
		ItMustNotDependOnAnything().
		Build()

	violations, ok := EnsureThat(p).WithBaseline(1).CompliesWith(rs)
	if !ok {
		t.Fatalf("expected baseline to absorb the violation, got %v", violations)
	}
}
