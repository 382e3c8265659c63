package rules

import "github.com/archguard/archguard/internal/logicalpath"

// SubjectInjectable is how the DSL lifts a user-supplied predicate into a
// subject-scoped rule: ForSubject is called once, when the chain commits a
// subject, and its result is appended to the rule set. Grounded on
// original_source/src/dsl/architectural_rules.rs's
// SubjectInjectableRuleBuilder trait and its for_subject method.
type SubjectInjectable interface {
	ForSubject(subject logicalpath.Path) Rule
}

// SubjectInjectableFunc adapts a plain function to SubjectInjectable, the
// common case where the custom rule needs no other configuration besides
// the subject it is bound to.
type SubjectInjectableFunc func(subject logicalpath.Path) Rule

func (f SubjectInjectableFunc) ForSubject(subject logicalpath.Path) Rule {
	return f(subject)
}
