// Package workdir implements the two workspace isolation flavours a
// language capability can select: in-tree (one shared workspace, per-mutant
// sharded files) and copy-tree (a fresh full copy per evaluation), plus the
// shared byte-patch routine both apply mutations with.
package workdir

import (
	"github.com/ferox-dev/ferox/internal/language"
	"github.com/ferox-dev/ferox/internal/mutant"
)

// Installed describes where a mutant's patched copy lives once a Dealer has
// installed it: Dir is the working directory the build/test child process
// should run in (passed as exec.Cmd.Dir, never via os.Chdir), FilePath is
// the patched file's path on disk.
type Installed struct {
	Dir      string
	FilePath string
}

// Dealer materialises an evaluation environment for one mutant, applies its
// byte patch, and releases the environment afterward. Both flavours
// guarantee cleanup on every control path via Release/Teardown, which
// callers must invoke from a defer so a panic or early return still runs
// them.
type Dealer interface {
	// Setup performs any one-time, run-wide workspace preparation.
	Setup() error
	// Install materialises and patches the workspace for one mutant.
	Install(m mutant.Mutant) (Installed, error)
	// Release frees the resources Install allocated for one mutant.
	Release(m mutant.Mutant, inst Installed) error
	// Teardown performs final, run-wide cleanup.
	Teardown() error
}

// New builds the Dealer appropriate for cap's isolation flavour, rooted at
// srcDir (the project being mutated).
func New(lang language.Capability, srcDir string) Dealer {
	switch lang.Flavour {
	case language.CopyTree:
		return NewCopyTreeDealer(lang, srcDir)
	default:
		return NewInTreeDealer(lang, srcDir)
	}
}
