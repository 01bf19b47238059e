package discovery_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ferox-dev/ferox/internal/discovery"
)

func writeFile(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("fn f() {}"), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestFindRecursiveExcludesDirs(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "src", "main.nr"))
	writeFile(t, filepath.Join(root, "temp", "mutation_0.nr"))

	got, err := discovery.Find(root, "nr", []string{"temp"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("want 1 file, got %d: %v", len(got), got)
	}
	if filepath.Base(got[0]) != "main.nr" {
		t.Errorf("want main.nr, got %s", got[0])
	}
}

func TestFindSingleFileRoot(t *testing.T) {
	root := t.TempDir()
	file := filepath.Join(root, "main.nr")
	writeFile(t, file)

	got, err := discovery.Find(file, "nr", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0] != file {
		t.Fatalf("want singleton %v, got %v", file, got)
	}
}

func TestFindNotFound(t *testing.T) {
	_, err := discovery.Find(filepath.Join(t.TempDir(), "missing"), "nr", nil)
	if _, ok := err.(discovery.ErrNotFound); !ok {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestFindNoFiles(t *testing.T) {
	root := t.TempDir()
	if _, err := discovery.Find(root, "nr", nil); err == nil {
		t.Fatal("expected an error")
	} else if _, ok := err.(discovery.ErrNoFiles); !ok {
		t.Fatalf("want ErrNoFiles, got %v", err)
	}
}
