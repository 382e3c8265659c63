package extractor

import (
	"testing"

	"github.com/archguard/archguard/internal/logicalpath"
	"github.com/archguard/archguard/internal/rustsyntax"
)

func extract(t *testing.T, module logicalpath.Path, source string) []logicalpath.Path {
	t.Helper()
	tree, err := rustsyntax.New().Parse([]byte(source))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	defer tree.Close()
	return Extract(tree, module)
}

func assertDeps(t *testing.T, got []logicalpath.Path, want ...string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i, w := range want {
		if string(got[i]) != w {
			t.Fatalf("index %d: got %q, want %q (full: %v)", i, got[i], w, got)
		}
	}
}

func TestExtractBasicCrateUse(t *testing.T) {
	source := `
		use crate::contracts::external_services::service_call_one;
		use crate::conversion::domain::{domain_function_1, domain_function_2};

		pub fn application_function() {
			domain_function_1();
			domain_function_2();
			service_call_one();
		}

		mod use_cases {
			use crate::conversion::domain::domain_function_2;

			fn application_use_case() {
				domain_function_2();
			}
		}
	`
	got := extract(t, "sample_project::conversion::application", source)
	assertDeps(t, got,
		"sample_project::contracts::external_services::service_call_one",
		"sample_project::conversion::domain::domain_function_1",
		"sample_project::conversion::domain::domain_function_2",
	)
}

func TestExtractSelfInGroup(t *testing.T) {
	source := `
		use crate::{
			application::{
				container::{self, AcmeContainer},
			},
		};
	`
	got := extract(t, "crate::domain", source)
	assertDeps(t, got,
		"crate::application::container::self",
		"crate::application::container::AcmeContainer",
	)
}

func TestExtractSuperDependencies(t *testing.T) {
	source := `
		use super::application::application_function;

		pub fn infrastructure_function() {
			application_function();
		}
	`
	got := extract(t, "sample_project::conversion::infrastructure", source)
	assertDeps(t, got, "sample_project::conversion::application::application_function")
}

func TestExtractGlob(t *testing.T) {
	source := `use crate::module::*;`
	got := extract(t, "crate::module", source)
	assertDeps(t, got, "crate::module::*")
}

func TestExtractRename(t *testing.T) {
	source := `use crate::module::original_name as alias_name;`
	got := extract(t, "crate::module", source)
	assertDeps(t, got, "crate::module::original_name")
}

func TestExtractInlineNestedModules(t *testing.T) {
	source := `
		mod submodule {
			mod nested {
				use crate::nested::dependency;
			}
		}
	`
	got := extract(t, "crate", source)
	assertDeps(t, got, "crate::nested::dependency")
}

func TestExtractInlineEmptyModule(t *testing.T) {
	source := `mod submodule {}`
	got := extract(t, "crate", source)
	if len(got) != 0 {
		t.Fatalf("got %v, want none", got)
	}
}

func TestExtractInlineSuperModules(t *testing.T) {
	source := `
		mod tests {
			use super::*;
		}
	`
	got := extract(t, "crate::application::use_case", source)
	assertDeps(t, got, "crate::application::use_case::*")
}

func TestExtractSuperModules(t *testing.T) {
	source := `
		use crate::some::dependency;
		use super::query;
	`
	got := extract(t, "crate::application::use_case", source)
	assertDeps(t, got, "crate::some::dependency", "crate::application::query")
}

func TestExtractReferencesInFileBody(t *testing.T) {
	source := `
		use crate::some::dependency;
		use crate::other_dependency;

		fn example() {
			crate::other::module::function();
			crate::some::dependency::function();
			other_dependency::function();
		}
	`
	got := extract(t, "crate::domain", source)
	assertDeps(t, got,
		"crate::some::dependency",
		"crate::other_dependency",
		"crate::other::module::function",
		"crate::some::dependency::function",
		"crate::other_dependency::function",
	)
}

func TestExtractUnaliasedExprSegmentIsDropped(t *testing.T) {
	source := `
		fn example() {
			let x = local_helper();
		}
	`
	got := extract(t, "crate::domain", source)
	if len(got) != 0 {
		t.Fatalf("got %v, want none (unaliased bare call is not a dependency)", got)
	}
}
