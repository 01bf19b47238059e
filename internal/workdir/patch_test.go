package workdir_test

import (
	"testing"

	"github.com/ferox-dev/ferox/internal/mutant"
	"github.com/ferox-dev/ferox/internal/token"
	"github.com/ferox-dev/ferox/internal/workdir"
)

func TestBytePatchSingleOperator(t *testing.T) {
	src := []byte(`fn f() { assert(a == b); }`)
	start := indexOf(src, "==")
	m := mutant.New(mutant.MetaToken{Token: token.Eq, Span: mutant.Span{Start: start, End: start + 2}}, token.Neq)

	got := workdir.BytePatch(src, m)
	want := []byte(`fn f() { assert(a != b); }`)
	if string(got) != string(want) {
		t.Errorf("want %q, got %q", want, got)
	}
}

func TestBytePatchLengthIncreasing(t *testing.T) {
	src := []byte(`x + y`)
	start := indexOf(src, "+")
	m := mutant.New(mutant.MetaToken{Token: token.Plus, Span: mutant.Span{Start: start, End: start + 1}}, token.Incr)

	got := workdir.BytePatch(src, m)
	want := []byte(`x ++ y`)
	if string(got) != string(want) {
		t.Errorf("want %q, got %q", want, got)
	}
}

func TestBytePatchPreservesRestOfBuffer(t *testing.T) {
	src := []byte("a <= b\nc >= d\n")
	start := indexOf(src, "<=")
	m := mutant.New(mutant.MetaToken{Token: token.Le, Span: mutant.Span{Start: start, End: start + 2}}, token.Gt)

	got := workdir.BytePatch(src, m)
	want := "a > b\nc >= d\n"
	if string(got) != want {
		t.Errorf("want %q, got %q", want, got)
	}
}

func TestBytePatchThreeByteCompound(t *testing.T) {
	src := []byte(`x <<= y`)
	start := indexOf(src, "<<=")
	m := mutant.New(mutant.MetaToken{Token: token.ShiftLEq, Span: mutant.Span{Start: start, End: start + 3}}, token.ShiftREq)

	got := workdir.BytePatch(src, m)
	want := []byte(`x >>= y`)
	if string(got) != string(want) {
		t.Errorf("want %q, got %q", want, got)
	}
}

func indexOf(src []byte, sub string) int {
	for i := 0; i+len(sub) <= len(src); i++ {
		if string(src[i:i+len(sub)]) == sub {
			return i
		}
	}

	return -1
}
