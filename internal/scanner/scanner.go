// Package scanner orchestrates Discovery and the lexer to produce a
// ScanResult: the full set of mutants the runner will later evaluate.
package scanner

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/ferox-dev/ferox/internal/discovery"
	"github.com/ferox-dev/ferox/internal/language"
	"github.com/ferox-dev/ferox/internal/lexer"
	"github.com/ferox-dev/ferox/internal/mutant"
	"github.com/ferox-dev/ferox/internal/token"
)

// ErrNoTokens is returned when tokenisation of the discovered files yields
// no mutable operators.
var ErrNoTokens = fmt.Errorf("scanner: no mutable tokens found")

// Result is the aggregate produced once by the Scanner and consumed
// read-only by the Reporter's summary, and mutably (status updates only)
// by the Runner.
type Result struct {
	AllPaths       []string
	PathsWithTests []string
	MetaTokens     []mutant.MetaToken
	TestCount      int
	Mutants        []mutant.Mutant
}

// Options configures a single Scan invocation.
type Options struct {
	Root   string
	Cap    language.Capability
	Random bool
	Rand   *rand.Rand
}

// Scan runs Discovery, counts test functions per file, tokenises the
// relevant subset, and constructs a dense, stable-ordered set of mutants.
func Scan(opts Options) (Result, error) {
	allPaths, err := discovery.Find(opts.Root, opts.Cap.Extension, opts.Cap.ExcludedDirs)
	if err != nil {
		return Result{}, err
	}

	var pathsWithTests []string
	testCount := 0
	for _, p := range allPaths {
		content, rerr := os.ReadFile(p)
		if rerr != nil {
			continue // LexerError class: skip file, scan continues
		}
		masked := lexer.Mask(content, opts.Cap.CommentRegex, opts.Cap.LiteralRegex)
		n := lexer.CountTestMatches(masked, opts.Cap.TestRegex)
		if n > 0 {
			pathsWithTests = append(pathsWithTests, p)
			testCount += n
		}
	}

	pathsToScan := allPaths
	if opts.Cap.FilterTestsOnly {
		pathsToScan = pathsWithTests
	}

	var metaTokens []mutant.MetaToken
	var mutants []mutant.Mutant
	var id uint32

	for _, p := range pathsToScan {
		content, rerr := os.ReadFile(p)
		if rerr != nil {
			continue
		}
		masked := lexer.Mask(content, opts.Cap.CommentRegex, opts.Cap.LiteralRegex)
		for _, tok := range lexer.Lex(masked) {
			if tok.Operator == token.Void {
				continue
			}
			mt := mutant.MetaToken{
				ID:     id,
				Token:  tok.Operator,
				Span:   mutant.Span{Start: tok.Start, End: tok.End},
				Source: p,
			}
			metaTokens = append(metaTokens, mt)

			var mutation token.Operator
			if opts.Random {
				mutation = token.RandomTransform(mt.Token, opts.Rand)
			} else {
				mutation = token.Transform(mt.Token)
			}
			mutants = append(mutants, mutant.New(mt, mutation))
			id++
		}
	}

	if len(mutants) == 0 {
		return Result{}, ErrNoTokens
	}

	return Result{
		AllPaths:       allPaths,
		PathsWithTests: pathsWithTests,
		MetaTokens:     metaTokens,
		TestCount:      testCount,
		Mutants:        mutants,
	}, nil
}
