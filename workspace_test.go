package tortuga

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path, contents string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestOpenWorkspaceWithoutManifest(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "main.ta"), "2 + 2")

	workspace, err := OpenWorkspace(root)
	if err != nil {
		t.Fatal(err)
	}

	if workspace.Manifest().Name != filepath.Base(root) {
		t.Fatalf("want the directory name, got %q", workspace.Manifest().Name)
	}
	if _, ok := workspace.Entry(); ok {
		t.Fatal("want no entry without a manifest")
	}
}

func TestOpenWorkspaceWithManifest(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, ManifestFile), "name: geometry\nentry: main.ta\ninclude:\n  - lib\n")
	writeFile(t, filepath.Join(root, "main.ta"), "hypotenuse(3, 4)")
	writeFile(t, filepath.Join(root, "lib", "geometry.ta"), "@hypotenuse(a, b) = (a^2 + b^2)^.5")

	workspace, err := OpenWorkspace(root)
	if err != nil {
		t.Fatal(err)
	}

	if workspace.Manifest().Name != "geometry" {
		t.Fatalf("want geometry, got %q", workspace.Manifest().Name)
	}

	entry, ok := workspace.Entry()
	if !ok || entry != filepath.Join(root, "main.ta") {
		t.Fatalf("want the entry resolved against the root, got %q", entry)
	}
}

func TestWorkspaceSources(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "b.ta"), "2")
	writeFile(t, filepath.Join(root, "a.ta"), "1")
	writeFile(t, filepath.Join(root, "nested", "c.ta"), "3")
	writeFile(t, filepath.Join(root, "notes.txt"), "not a source")
	writeFile(t, filepath.Join(root, ".hidden.ta"), "skipped")
	writeFile(t, filepath.Join(root, ".cache", "d.ta"), "skipped")

	workspace, err := OpenWorkspace(root)
	if err != nil {
		t.Fatal(err)
	}

	sources, err := workspace.Sources()
	if err != nil {
		t.Fatal(err)
	}

	want := []string{
		filepath.Join(root, "a.ta"),
		filepath.Join(root, "b.ta"),
		filepath.Join(root, "nested", "c.ta"),
	}
	if len(sources) != len(want) {
		t.Fatalf("want %d sources, got %v", len(want), sources)
	}
	for i := range want {
		if sources[i] != want[i] {
			t.Fatalf("source %d: want %q, got %q", i, want[i], sources[i])
		}
	}
}

func TestWorkspaceRejectsBadManifest(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, ManifestFile), "name: [unclosed")

	if _, err := OpenWorkspace(root); err == nil {
		t.Fatal("want a manifest error")
	}
}

func TestWorkspaceSourcesAreRunnable(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "main.ta"), "@f(x) = x * 2\nf(21)")

	workspace, err := OpenWorkspace(root)
	if err != nil {
		t.Fatal(err)
	}
	sources, err := workspace.Sources()
	if err != nil || len(sources) != 1 {
		t.Fatalf("want one source, got %v (%v)", sources, err)
	}

	src, err := os.ReadFile(sources[0])
	if err != nil {
		t.Fatal(err)
	}

	value, err := NewInterpreter().BuildThenRun(string(src))
	if err != nil {
		t.Fatal(err)
	}
	if number, ok := value.(Number); !ok || number.Float() != 42 {
		t.Fatalf("want 42, got %s", value)
	}
}
