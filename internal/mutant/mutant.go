// Package mutant holds the data model produced by the scanner and consumed
// by the runner and reporter: MetaToken, Mutant, and the mutant lifecycle
// Status.
package mutant

import "github.com/ferox-dev/ferox/internal/token"

// Span is a half-open byte interval [Start, End) into a source file
// identifying a token.
type Span struct {
	Start int
	End   int
}

// MetaToken is a single mutable operator occurrence found by the scanner,
// before a mutation has been chosen for it.
type MetaToken struct {
	ID     uint32
	Token  token.Operator
	Span   Span
	Source string
}

// Status is the mutant lifecycle. Every mutant is born Pending and
// transitions exactly once, to exactly one of Survived, Killed, or
// Unbuildable. No further transitions occur after that.
type Status int

const (
	// Pending is the initial status of every mutant.
	Pending Status = iota
	// Survived means the test suite passed against the mutated program.
	Survived
	// Killed means the test suite failed against the mutated program.
	Killed
	// Unbuildable means the mutated program failed to build.
	Unbuildable
)

// String renders the Status for reporting.
func (s Status) String() string {
	switch s {
	case Pending:
		return "Pending"
	case Survived:
		return "Survived"
	case Killed:
		return "Killed"
	case Unbuildable:
		return "Unbuildable"
	}

	return "Unknown"
}

// Mutant is a single textual alteration of a source file, derived from one
// operator occurrence.
type Mutant struct {
	ID               uint32
	Original         token.Operator
	Mutation         token.Operator
	ReplacementBytes []byte
	Span             Span
	SourcePath       string
	Status           Status
}

// New builds a Mutant from a MetaToken and a chosen mutation operator. It
// panics if mutation equals original, since the data model's central
// invariant is that a mutant always differs from the program it mutates.
func New(mt MetaToken, mutation token.Operator) Mutant {
	if mutation == mt.Token {
		panic("mutant: mutation equals original")
	}
	enc, ok := token.ByteEncoding(mutation)
	if !ok {
		panic("mutant: mutation has no byte encoding")
	}

	return Mutant{
		ID:               mt.ID,
		Original:         mt.Token,
		Mutation:         mutation,
		ReplacementBytes: []byte(enc),
		Span:             mt.Span,
		SourcePath:       mt.Source,
		Status:           Pending,
	}
}
