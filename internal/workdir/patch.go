package workdir

import (
	"os"

	"github.com/ferox-dev/ferox/internal/mutant"
)

// twoByteOperatorPrefixes are the canonical two-byte operator prefixes. The
// byte patch determines how many bytes of the original operator to replace
// by inspecting the bytes actually on disk at the span start, not by
// trusting the enum — this is what lets a one-byte operator be replaced by
// a two-byte one (and vice versa) without corrupting the buffer.
var twoByteOperatorPrefixes = map[string]struct{}{
	"<=": {}, ">=": {}, "==": {}, "!=": {}, "<<": {}, ">>": {},
	"&&": {}, "||": {}, "++": {}, "--": {},
	"+=": {}, "-=": {}, "*=": {}, "/=": {}, "%=": {}, "&=": {}, "|=": {}, "^=": {},
}

func originalLength(content []byte, start int) int {
	if start+3 <= len(content) {
		if s := string(content[start : start+3]); s == "<<=" || s == ">>=" {
			return 3
		}
	}
	if start+2 <= len(content) {
		if _, ok := twoByteOperatorPrefixes[string(content[start:start+2])]; ok {
			return 2
		}
	}

	return 1
}

// BytePatch applies m's replacement bytes to content at m.Span.Start,
// determining the length of the operator being replaced from the bytes
// currently on disk rather than from m.Original, and preserving every other
// byte of the buffer exactly, even when the replacement's length differs
// from the original operator's length.
func BytePatch(content []byte, m mutant.Mutant) []byte {
	start := m.Span.Start
	length := originalLength(content, start)

	patched := make([]byte, 0, len(content)-length+len(m.ReplacementBytes))
	patched = append(patched, content[:start]...)
	patched = append(patched, m.ReplacementBytes...)
	patched = append(patched, content[start+length:]...)

	return patched
}

// PatchFile reads path, applies m's byte patch, and writes the result back.
func PatchFile(path string, m mutant.Mutant) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	patched := BytePatch(content, m)

	return os.WriteFile(path, patched, 0o600)
}
