// Package report renders the scan summary and final status report: a
// console table plus an optional JSON file, per the scoring and
// surviving-mutant listing rules of the runner's classification.
package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/hako/durafmt"
	"github.com/olekukonko/tablewriter"

	"github.com/ferox-dev/ferox/internal/configuration"
	"github.com/ferox-dev/ferox/internal/log"
	"github.com/ferox-dev/ferox/internal/mutant"
	"github.com/ferox-dev/ferox/internal/report/internal"
	"github.com/ferox-dev/ferox/internal/scanner"
	"github.com/ferox-dev/ferox/internal/token"
)

// ScanSummary prints file counts, the mutable-token count, and the
// required-test-runs count (|mutants| × test_count), as produced right
// after the Scanner runs, before any mutant has been evaluated.
func ScanSummary(result scanner.Result) {
	log.Infof("Discovered %d file(s), %d with tests.\n", len(result.AllPaths), len(result.PathsWithTests))
	log.Infof("Found %d mutable token(s).\n", len(result.MetaTokens))
	log.Infof("Required test runs: %d.\n", len(result.Mutants)*result.TestCount)
}

// FinalReport prints the status table and score, and - if any mutant
// survived - the surviving-mutants table. It also writes a JSON file when
// configuration.OutputPathKey names a path ending in .json.
func FinalReport(lang string, mutants []mutant.Mutant, elapsed time.Duration) {
	counts := countByStatus(mutants)
	total := len(mutants)
	score := mutationScore(counts, total)

	log.Infoln("")
	log.Infof("Mutation testing completed in %s\n", durafmt.Parse(elapsed).LimitFirstN(2).String())

	printStatusTable(counts, total, score)

	survivors := survivingMutants(mutants)
	if len(survivors) > 0 {
		printSurvivorsTable(survivors)
	}

	writeJSONReport(lang, mutants, counts, total, score, elapsed)
}

type statusCounts struct {
	pending     int
	survived    int
	killed      int
	unbuildable int
}

func countByStatus(mutants []mutant.Mutant) statusCounts {
	var c statusCounts
	for _, m := range mutants {
		switch m.Status {
		case mutant.Pending:
			c.pending++
		case mutant.Survived:
			c.survived++
		case mutant.Killed:
			c.killed++
		case mutant.Unbuildable:
			c.unbuildable++
		}
	}

	return c
}

// mutationScore is (killed+unbuildable)/total × 100, two decimals.
func mutationScore(c statusCounts, total int) float64 {
	if total == 0 {
		return 0
	}
	score := float64(c.killed+c.unbuildable) / float64(total) * 100

	return roundTo2(score)
}

func roundTo2(f float64) float64 {
	return float64(int(f*100+0.5)) / 100
}

func printStatusTable(c statusCounts, total int, score float64) {
	pct := func(n int) string {
		if total == 0 {
			return "0.00%"
		}

		return fmt.Sprintf("%.2f%%", float64(n)/float64(total)*100)
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Status", "Count", "Percent"})
	table.Append([]string{"Total", fmt.Sprintf("%d", total), "100.00%"})
	table.Append([]string{"Pending", fmt.Sprintf("%d", c.pending), pct(c.pending)})
	table.Append([]string{log.StatusWord("Unbuildable", "Unbuildable"), fmt.Sprintf("%d", c.unbuildable), pct(c.unbuildable)})
	table.Append([]string{log.StatusWord("Killed", "Killed"), fmt.Sprintf("%d", c.killed), pct(c.killed)})
	table.Append([]string{log.StatusWord("Survived", "Survived"), fmt.Sprintf("%d", c.survived), pct(c.survived)})
	table.Render()

	log.Infof("Mutation score: %.2f%%\n", score)
}

type survivorRow struct {
	file        string
	line        int
	preview     string
	replacement string
}

func survivingMutants(mutants []mutant.Mutant) []survivorRow {
	cache := map[string][]byte{}
	var rows []survivorRow
	for _, m := range mutants {
		if m.Status != mutant.Survived {
			continue
		}
		content, ok := cache[m.SourcePath]
		if !ok {
			content, _ = os.ReadFile(m.SourcePath)
			cache[m.SourcePath] = content
		}
		rows = append(rows, survivorRow{
			file:        m.SourcePath,
			line:        lineNumber(content, m.Span.Start),
			preview:     linePreview(content, m.Span.Start),
			replacement: string(m.ReplacementBytes),
		})
	}

	return rows
}

func printSurvivorsTable(rows []survivorRow) {
	log.Infoln("")
	log.Infoln("Surviving mutants:")

	w, closeDst := survivorsDestination()
	defer closeDst()

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"File", "Line", "Source", "Replacement"})
	for _, r := range rows {
		table.Append([]string{r.file, fmt.Sprintf("%d", r.line), r.preview, r.replacement})
	}
	table.Render()
}

// survivorsDestination honors configuration.OutputPathKey for the plain-text
// surviving-mutants table, the same way it gates the JSON report: a path
// ending in .json gets the structured report instead (so the table still
// goes to stdout), any other non-empty path is appended to (created if
// missing), and an empty path means stdout.
func survivorsDestination() (io.Writer, func()) {
	output := configuration.Get[string](configuration.OutputPathKey)
	if output == "" || filepath.Ext(output) == ".json" {
		return os.Stdout, func() {}
	}

	f, err := os.OpenFile(output, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		log.Errorf("failed to open output path %q: %v\n", output, err)

		return os.Stdout, func() {}
	}

	return f, func() { _ = f.Close() }
}

// lineNumber returns the 1-indexed line containing byte offset pos.
func lineNumber(content []byte, pos int) int {
	if pos > len(content) {
		pos = len(content)
	}

	return bytes.Count(content[:pos], []byte{'\n'}) + 1
}

// linePreview returns the first 40 characters of the line containing pos.
func linePreview(content []byte, pos int) string {
	if pos > len(content) {
		pos = len(content)
	}
	start := bytes.LastIndexByte(content[:pos], '\n') + 1
	end := bytes.IndexByte(content[start:], '\n')
	var line []byte
	if end == -1 {
		line = content[start:]
	} else {
		line = content[start : start+end]
	}
	trimmed := strings.TrimSpace(string(line))
	if len(trimmed) > 40 {
		trimmed = trimmed[:40]
	}

	return trimmed
}

func writeJSONReport(lang string, mutants []mutant.Mutant, c statusCounts, total int, score float64, elapsed time.Duration) {
	output := configuration.Get[string](configuration.OutputPathKey)
	if output == "" || filepath.Ext(output) != ".json" {
		return
	}

	filesMap := map[string][]internal.Mutation{}
	for _, m := range mutants {
		enc, _ := token.ByteEncoding(m.Original)
		content, _ := os.ReadFile(m.SourcePath)
		filesMap[m.SourcePath] = append(filesMap[m.SourcePath], internal.Mutation{
			Line:        lineNumber(content, m.Span.Start),
			Status:      m.Status.String(),
			Original:    enc,
			Replacement: string(m.ReplacementBytes),
		})
	}

	names := make([]string, 0, len(filesMap))
	for name := range filesMap {
		names = append(names, name)
	}
	sort.Strings(names)

	files := make([]internal.OutputFile, 0, len(names))
	for _, name := range names {
		files = append(files, internal.OutputFile{Filename: name, Mutations: filesMap[name]})
	}

	result := internal.OutputResult{
		Language:      lang,
		Files:         files,
		MutationScore: score,
		MutantsTotal:  total,
		Killed:        c.killed,
		Survived:      c.survived,
		Unbuildable:   c.unbuildable,
		Pending:       c.pending,
		ElapsedTime:   elapsed.Seconds(),
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		log.Errorf("impossible to marshal report: %s\n", err)

		return
	}

	if err := os.WriteFile(output, data, 0o644); err != nil {
		log.Errorf("impossible to write file: %s\n", err)
	}
}
