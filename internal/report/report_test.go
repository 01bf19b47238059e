package report_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ferox-dev/ferox/internal/configuration"
	"github.com/ferox-dev/ferox/internal/log"
	"github.com/ferox-dev/ferox/internal/mutant"
	"github.com/ferox-dev/ferox/internal/report"
	"github.com/ferox-dev/ferox/internal/report/internal"
	"github.com/ferox-dev/ferox/internal/scanner"
	"github.com/ferox-dev/ferox/internal/token"
)

func TestScanSummary(t *testing.T) {
	var out bytes.Buffer
	log.Init(&out, &out)
	defer log.Reset()

	result := scanner.Result{
		AllPaths:       []string{"a.nr", "b.nr"},
		PathsWithTests: []string{"a.nr"},
		MetaTokens:     []mutant.MetaToken{{}, {}},
		TestCount:      3,
		Mutants:        []mutant.Mutant{{}, {}},
	}

	report.ScanSummary(result)

	got := out.String()
	if !bytes.Contains([]byte(got), []byte("Discovered 2 file(s), 1 with tests.")) {
		t.Errorf("missing file-count line, got %q", got)
	}
	if !bytes.Contains([]byte(got), []byte("Found 2 mutable token(s)")) {
		t.Errorf("missing token-count line, got %q", got)
	}
	if !bytes.Contains([]byte(got), []byte("Required test runs: 6")) {
		t.Errorf("missing required-runs line, got %q", got)
	}
}

func makeSurvivedMutant(t *testing.T, dir string) mutant.Mutant {
	t.Helper()
	path := filepath.Join(dir, "main.nr")
	if err := os.WriteFile(path, []byte("fn f() { assert(a > b); }"), 0o644); err != nil {
		t.Fatal(err)
	}
	start := bytes.IndexByte([]byte("fn f() { assert(a > b); }"), '>')
	m := mutant.New(mutant.MetaToken{ID: 0, Token: token.Gt, Span: mutant.Span{Start: start, End: start + 1}, Source: path}, token.Le)
	m.Status = mutant.Survived

	return m
}

func TestFinalReportComputesScoreAndSurvivorsTable(t *testing.T) {
	var out bytes.Buffer
	log.Init(&out, &out)
	defer log.Reset()

	dir := t.TempDir()
	survived := makeSurvivedMutant(t, dir)

	killed := mutant.New(mutant.MetaToken{ID: 1, Token: token.Eq, Span: mutant.Span{Start: 0, End: 2}, Source: survived.SourcePath}, token.Neq)
	killed.Status = mutant.Killed

	mutants := []mutant.Mutant{survived, killed}

	report.FinalReport("noir", mutants, 2*time.Second)

	got := out.String()
	if !bytes.Contains([]byte(got), []byte("Mutation score: 50.00%")) {
		t.Errorf("want a 50.00%% score line, got %q", got)
	}
	if !bytes.Contains([]byte(got), []byte("Surviving mutants:")) {
		t.Errorf("want a surviving-mutants table header, got %q", got)
	}
}

func TestFinalReportWritesJSONWhenOutputPathIsJSON(t *testing.T) {
	var out bytes.Buffer
	log.Init(&out, &out)
	defer log.Reset()

	dir := t.TempDir()
	survived := makeSurvivedMutant(t, dir)
	survived.Status = mutant.Killed

	outputPath := filepath.Join(dir, "result.json")
	configuration.Set(configuration.OutputPathKey, outputPath)
	defer configuration.Reset()

	report.FinalReport("noir", []mutant.Mutant{survived}, time.Second)

	data, err := os.ReadFile(outputPath)
	if err != nil {
		t.Fatalf("expected output file to be written: %v", err)
	}

	var result internal.OutputResult
	if err := json.Unmarshal(data, &result); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if result.MutantsTotal != 1 || result.Killed != 1 {
		t.Errorf("unexpected result: %+v", result)
	}
	if result.Language != "noir" {
		t.Errorf("want language noir, got %q", result.Language)
	}
}

func TestFinalReportSkipsJSONWhenOutputPathIsNotJSON(t *testing.T) {
	var out bytes.Buffer
	log.Init(&out, &out)
	defer log.Reset()

	dir := t.TempDir()
	survived := makeSurvivedMutant(t, dir)

	outputPath := filepath.Join(dir, "result.txt")
	configuration.Set(configuration.OutputPathKey, outputPath)
	defer configuration.Reset()

	report.FinalReport("noir", []mutant.Mutant{survived}, time.Second)

	data, err := os.ReadFile(outputPath)
	if err != nil {
		t.Fatalf("expected the surviving-mutants table to be appended to the output path: %v", err)
	}
	if !bytes.Contains(data, []byte("main.nr")) {
		t.Errorf("expected the survivors table in the output file, got %q", data)
	}

	var result internal.OutputResult
	if json.Unmarshal(data, &result) == nil {
		t.Error("expected a plain-text table, not a JSON report, for a non-.json output path")
	}
}

func TestFinalReportAppendsToExistingTextOutputPath(t *testing.T) {
	var out bytes.Buffer
	log.Init(&out, &out)
	defer log.Reset()

	dir := t.TempDir()
	survived := makeSurvivedMutant(t, dir)

	outputPath := filepath.Join(dir, "result.txt")
	if err := os.WriteFile(outputPath, []byte("previous run\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	configuration.Set(configuration.OutputPathKey, outputPath)
	defer configuration.Reset()

	report.FinalReport("noir", []mutant.Mutant{survived}, time.Second)

	data, err := os.ReadFile(outputPath)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(data, []byte("previous run")) {
		t.Error("expected the previous content to be preserved, not overwritten")
	}
	if !bytes.Contains(data, []byte("main.nr")) {
		t.Error("expected the new survivors table to be appended")
	}
}
