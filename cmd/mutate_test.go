package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/ferox-dev/ferox/internal/configuration"
	"github.com/ferox-dev/ferox/internal/log"
)

func TestRunMutateCmdProducesFinalReport(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("fake runner script requires a POSIX shell")
	}

	var out bytes.Buffer
	log.Init(&out, &out)
	defer log.Reset()

	dir := t.TempDir()
	src := filepath.Join(dir, "main.nr")
	if err := os.WriteFile(src, []byte("#[test]\nfn f() { assert(a == b); }"), 0o644); err != nil {
		t.Fatal(err)
	}

	configuration.Set(configuration.LanguageKey, "noir")
	configuration.Set(configuration.SourcePathKey, dir)
	defer configuration.Reset()

	runMutate := runMutateCmd(context.Background())
	if err := runMutate(nil, nil); err != nil {
		t.Fatalf("runMutateCmd failed: %v", err)
	}

	if !bytes.Contains(out.Bytes(), []byte("Mutation testing completed")) {
		t.Errorf("expected a final report, got %q", out.String())
	}
}
