package scanner_test

import (
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/ferox-dev/ferox/internal/language"
	"github.com/ferox-dev/ferox/internal/scanner"
)

func writeNoirFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	return path
}

func TestScanSingleFileSingleOperator(t *testing.T) {
	dir := t.TempDir()
	writeNoirFile(t, dir, "main.nr", "#[test]\nfn f() { assert(a == b); }\n")

	res, err := scanner.Scan(scanner.Options{Root: dir, Cap: language.Noir()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Mutants) != 1 {
		t.Fatalf("want 1 mutant, got %d", len(res.Mutants))
	}
	if res.TestCount != 1 {
		t.Errorf("want test count 1, got %d", res.TestCount)
	}
}

func TestScanDenseIDs(t *testing.T) {
	dir := t.TempDir()
	writeNoirFile(t, dir, "main.nr", "#[test]\nfn f() { assert(a == b); assert(c != d); }\n")

	res, err := scanner.Scan(scanner.Options{Root: dir, Cap: language.Noir()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, m := range res.Mutants {
		if int(m.ID) != i {
			t.Fatalf("want dense ids, mutant %d has id %d", i, m.ID)
		}
	}
}

func TestScanNoTokens(t *testing.T) {
	dir := t.TempDir()
	writeNoirFile(t, dir, "main.nr", "#[test]\nfn f() {}\n")

	_, err := scanner.Scan(scanner.Options{Root: dir, Cap: language.Noir()})
	if err != scanner.ErrNoTokens {
		t.Fatalf("want ErrNoTokens, got %v", err)
	}
}

func TestScanRandomModeUsesProvidedRand(t *testing.T) {
	dir := t.TempDir()
	writeNoirFile(t, dir, "main.nr", "#[test]\nfn f() { assert(a == b); }\n")

	res, err := scanner.Scan(scanner.Options{
		Root:   dir,
		Cap:    language.Noir(),
		Random: true,
		Rand:   rand.New(rand.NewSource(7)),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Mutants[0].Mutation == res.Mutants[0].Original {
		t.Fatal("mutation must differ from original even in random mode")
	}
}
