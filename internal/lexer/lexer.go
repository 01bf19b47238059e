// Package lexer tokenises raw source bytes into a stream of operator spans,
// masking comments and string literals first so neither yields spurious
// mutable tokens. This stands in for the external lexer the core spec
// treats as an opaque collaborator: a regex-driven implementation grounded
// on the target language's own comment/literal/operator conventions.
package lexer

import (
	"regexp"
	"sort"

	"github.com/ferox-dev/ferox/internal/token"
)

// Token pairs an operator with the byte span it occupies in the (masked)
// source buffer passed to Lex.
type Token struct {
	Operator token.Operator
	Start    int
	End      int
}

// pattern associates a compiled regex with the operator it recognises.
// Longer encodings are tried first so, e.g., "<=" is never split into "<"
// followed by a stray "=".
type pattern struct {
	re *regexp.Regexp
	op token.Operator
}

var patterns = buildPatterns()

func buildPatterns() []pattern {
	ps := make([]pattern, 0, len(token.All))
	for _, op := range token.All {
		enc, ok := token.ByteEncoding(op)
		if !ok {
			continue
		}
		ps = append(ps, pattern{re: regexp.MustCompile(regexp.QuoteMeta(enc)), op: op})
	}
	sort.SliceStable(ps, func(i, j int) bool {
		ei, _ := token.ByteEncoding(ps[i].op)
		ej, _ := token.ByteEncoding(ps[j].op)

		return len(ei) > len(ej)
	})

	return ps
}

// Mask returns a copy of content with every match of commentRe and
// literalRe overwritten with spaces (newlines inside a match are kept),
// preserving length and all other byte
// offsets so spans computed afterward still index correctly into the
// original file.
func Mask(content []byte, commentRe, literalRe *regexp.Regexp) []byte {
	masked := make([]byte, len(content))
	copy(masked, content)

	for _, re := range []*regexp.Regexp{commentRe, literalRe} {
		if re == nil {
			continue
		}
		for _, loc := range re.FindAllIndex(masked, -1) {
			blank(masked, loc[0], loc[1])
		}
	}

	return masked
}

func blank(buf []byte, start, end int) {
	for i := start; i < end; i++ {
		if buf[i] != '\n' {
			buf[i] = ' '
		}
	}
}

// Lex scans masked source bytes for operator occurrences. Matches are
// returned in ascending span order with no overlaps: once a byte range has
// been claimed by one operator match, no other pattern may claim any byte
// within it (longest-encoding-first patterns are checked first, so a
// two-byte operator always wins over a one-byte prefix of it).
func Lex(masked []byte) []Token {
	claimed := make([]bool, len(masked))
	var found []Token

	for _, p := range patterns {
		for _, loc := range p.re.FindAllIndex(masked, -1) {
			start, end := loc[0], loc[1]
			if rangeClaimed(claimed, start, end) {
				continue
			}
			claim(claimed, start, end)
			found = append(found, Token{Operator: p.op, Start: start, End: end})
		}
	}

	sort.Slice(found, func(i, j int) bool { return found[i].Start < found[j].Start })

	return found
}

func rangeClaimed(claimed []bool, start, end int) bool {
	for i := start; i < end; i++ {
		if claimed[i] {
			return true
		}
	}

	return false
}

func claim(claimed []bool, start, end int) {
	for i := start; i < end; i++ {
		claimed[i] = true
	}
}

// CountTestMatches counts how many times testRe matches masked source
// content. A nil testRe (languages that don't gate on filter_tests_only,
// e.g. Solidity) always reports zero.
func CountTestMatches(masked []byte, testRe *regexp.Regexp) int {
	if testRe == nil {
		return 0
	}

	return len(testRe.FindAllIndex(masked, -1))
}
