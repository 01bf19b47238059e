package cmd

import (
	"os"
	"path/filepath"
	"testing"
)

func TestResolveProjectRootWalksUpToManifest(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "Nargo.toml"), []byte("[package]\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	sub := filepath.Join(root, "src")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatal(err)
	}

	got := resolveProjectRoot(sub, "Nargo.toml")
	if got != root {
		t.Errorf("want %q, got %q", root, got)
	}
}

func TestResolveProjectRootFallsBackWithoutManifest(t *testing.T) {
	dir := t.TempDir()

	got := resolveProjectRoot(dir, "Nargo.toml")
	if got != dir {
		t.Errorf("want the configured path unchanged (%q), got %q", dir, got)
	}
}
