// Package arkitect is the public typestate-builder DSL: chain
// rules_for_project/rules_for_module calls to assemble a RuleSet, then
// hand it to Arkitect.EnsureThat(project).CompliesWith(ruleSet). Each DSL
// state is a distinct concrete type, so an incomplete chain (e.g. calling
// Build on a SubjectDefined with no rule committed yet) fails to compile
// rather than panicking at runtime. Grounded on
// original_source/src/dsl/architectural_rules.rs and
// src/dsl_v2/architectural_rules.rs, merged into the single state machine
// this implementation describes (it adds ProjectBegin/ProjectDefined, absent from
// both originals, for the circular-dependency project rule).
package arkitect

import (
	"github.com/archguard/archguard/internal/logicalpath"
	"github.com/archguard/archguard/internal/rules"
)

// RuleSet is the built, immutable output of the DSL: every module rule and
// project rule committed during the chain.
type RuleSet struct {
	ModuleRules  []rules.Rule
	ProjectRules []rules.ProjectRule
}

// Len reports the total number of committed rules, module and project
// combined.
func (rs RuleSet) Len() int {
	return len(rs.ModuleRules) + len(rs.ProjectRules)
}

type builder struct {
	moduleRules  []rules.Rule
	projectRules []rules.ProjectRule
}

// Begin is the DSL's entry state, reached from Define().
type Begin struct{ b builder }

// ProjectBegin is reached after rules_for_project, before the mandatory
// circular-dependencies rule has been committed.
type ProjectBegin struct{ b builder }

// ProjectDefined is reached once the project's circular-dependencies rule
// is committed; from here the chain can move on to module rules or build.
type ProjectDefined struct{ b builder }

// SubjectDefined holds an in-flight subject with no rule committed yet;
// Build is deliberately not defined on this type, so an incomplete chain
// fails to compile.
type SubjectDefined struct {
	b       builder
	subject logicalpath.Path
}

// RulesDefined is reached once the current subject has at least one
// committed rule; it still remembers that subject, so and_it_* calls need
// not repeat it.
type RulesDefined struct {
	b       builder
	subject logicalpath.Path
}

// Define starts a new rule chain.
func Define() Begin {
	return Begin{}
}

// RulesForProject moves to ProjectBegin, where the mandatory
// circular-dependencies rule must be committed next.
func (s Begin) RulesForProject() ProjectBegin {
	return ProjectBegin{b: s.b}
}

// ItMustNotHaveCircularDependencies commits the project's only built-in
// ProjectRule variant, truncating the dependency graph to maxDepth
// segments before running Tarjan's SCC algorithm.
func (s ProjectBegin) ItMustNotHaveCircularDependencies(maxDepth int) ProjectDefined {
	b := s.b
	b.projectRules = append(b.projectRules, &rules.NoCircularDependencies{MaxDepth: maxDepth})
	return ProjectDefined{b: b}
}

// RulesForModule opens a subject-scoped rule group for a module path.
func (s Begin) RulesForModule(subject logicalpath.Path) SubjectDefined {
	return SubjectDefined{b: s.b, subject: subject}
}

// RulesForPackage is an alias for RulesForModule: a package is just the
// root module of its own logical path tree.
func (s Begin) RulesForPackage(subject logicalpath.Path) SubjectDefined {
	return s.RulesForModule(subject)
}

func (s ProjectDefined) RulesForModule(subject logicalpath.Path) SubjectDefined {
	return SubjectDefined{b: s.b, subject: subject}
}

func (s ProjectDefined) RulesForPackage(subject logicalpath.Path) SubjectDefined {
	return s.RulesForModule(subject)
}

func (s RulesDefined) RulesForModule(subject logicalpath.Path) SubjectDefined {
	return SubjectDefined{b: s.b, subject: subject}
}

func (s RulesDefined) RulesForPackage(subject logicalpath.Path) SubjectDefined {
	return s.RulesForModule(subject)
}

// ItMayDependOn commits a MayDependOnRule for the current subject.
func (s SubjectDefined) ItMayDependOn(allowed ...logicalpath.Path) RulesDefined {
	b := s.b
	b.moduleRules = append(b.moduleRules, &rules.MayDependOnRule{Subject: s.subject, Allowed: allowed})
	return RulesDefined{b: b, subject: s.subject}
}

// ItMustNotDependOn commits a MustNotDependOnRule for the current subject.
func (s SubjectDefined) ItMustNotDependOn(forbidden ...logicalpath.Path) RulesDefined {
	b := s.b
	b.moduleRules = append(b.moduleRules, &rules.MustNotDependOnRule{Subject: s.subject, Forbidden: forbidden})
	return RulesDefined{b: b, subject: s.subject}
}

// ItMustNotDependOnAnything commits a MustNotDependOnAnythingRule for the
// current subject.
func (s SubjectDefined) ItMustNotDependOnAnything(allowedExternal ...logicalpath.Path) RulesDefined {
	b := s.b
	b.moduleRules = append(b.moduleRules, &rules.MustNotDependOnAnythingRule{Subject: s.subject, AllowedExternal: allowedExternal})
	return RulesDefined{b: b, subject: s.subject}
}

// It lifts a user-supplied predicate into the current subject, the DSL's
// extension point for custom rules.
func (s SubjectDefined) It(injectable rules.SubjectInjectable) RulesDefined {
	b := s.b
	b.moduleRules = append(b.moduleRules, injectable.ForSubject(s.subject))
	return RulesDefined{b: b, subject: s.subject}
}

// AndItMayDependOn adds another MayDependOnRule to the same subject.
func (s RulesDefined) AndItMayDependOn(allowed ...logicalpath.Path) RulesDefined {
	s.b.moduleRules = append(s.b.moduleRules, &rules.MayDependOnRule{Subject: s.subject, Allowed: allowed})
	return s
}

// AndItMustNotDependOn adds another MustNotDependOnRule to the same
// subject.
func (s RulesDefined) AndItMustNotDependOn(forbidden ...logicalpath.Path) RulesDefined {
	s.b.moduleRules = append(s.b.moduleRules, &rules.MustNotDependOnRule{Subject: s.subject, Forbidden: forbidden})
	return s
}

// AndItMustNotDependOnAnything adds another MustNotDependOnAnythingRule to
// the same subject.
func (s RulesDefined) AndItMustNotDependOnAnything(allowedExternal ...logicalpath.Path) RulesDefined {
	s.b.moduleRules = append(s.b.moduleRules, &rules.MustNotDependOnAnythingRule{Subject: s.subject, AllowedExternal: allowedExternal})
	return s
}

// AndIt lifts another custom predicate into the same subject.
func (s RulesDefined) AndIt(injectable rules.SubjectInjectable) RulesDefined {
	s.b.moduleRules = append(s.b.moduleRules, injectable.ForSubject(s.subject))
	return s
}

// Build finalizes the chain into an immutable RuleSet.
func (s ProjectDefined) Build() RuleSet {
	return RuleSet{ModuleRules: s.b.moduleRules, ProjectRules: s.b.projectRules}
}

// Build finalizes the chain into an immutable RuleSet.
func (s RulesDefined) Build() RuleSet {
	return RuleSet{ModuleRules: s.b.moduleRules, ProjectRules: s.b.projectRules}
}
