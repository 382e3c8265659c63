package manifest

import (
	"os"
	"path/filepath"
	"testing"
)

func writeManifest(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), Name)
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write manifest: %v", err)
	}
	return path
}

func TestLoadPackage(t *testing.T) {
	path := writeManifest(t, "[package]\nname = \"my_crate\"\n")

	m, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	name, err := m.PackageName()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if name != "my_crate" {
		t.Fatalf("got %q, want my_crate", name)
	}
	if m.IsWorkspace() {
		t.Fatal("expected IsWorkspace to be false")
	}
}

func TestLoadWorkspace(t *testing.T) {
	path := writeManifest(t, "[workspace]\nmembers = [\"crates/a\", \"crates/b\"]\n")

	m, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !m.IsWorkspace() {
		t.Fatal("expected IsWorkspace to be true")
	}
	if len(m.Workspace.Members) != 2 {
		t.Fatalf("got %d members, want 2", len(m.Workspace.Members))
	}
}

func TestPackageNameMissing(t *testing.T) {
	path := writeManifest(t, "[package]\n")

	m, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := m.PackageName(); err == nil {
		t.Fatal("expected error for missing package name")
	}
}
