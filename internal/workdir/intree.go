package workdir

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/ferox-dev/ferox/internal/language"
	"github.com/ferox-dev/ferox/internal/mutant"
)

// InTreeDealer implements the Noir-style in-tree isolation flavour: one
// shared workspace under srcDir/temp/, populated once at Setup, holding one
// sharded source file per mutant. Every worker reads and writes this same
// directory, so the shared library-root manifest append is serialised by a
// single mutex (the mutex field), matching the per-file lock cache pattern used
// for concurrent mutation of a shared AST elsewhere in this codebase's
// lineage.
type InTreeDealer struct {
	lang     language.Capability
	srcDir   string
	tempDir  string
	srcSub   string
	libRoot  string
	manifest string

	mutex sync.Mutex
}

// NewInTreeDealer builds an InTreeDealer rooted at srcDir.
func NewInTreeDealer(lang language.Capability, srcDir string) *InTreeDealer {
	tempDir := filepath.Join(srcDir, "temp")

	return &InTreeDealer{
		lang:    lang,
		srcDir:  srcDir,
		tempDir: tempDir,
		srcSub:  filepath.Join(tempDir, "src"),
		libRoot: filepath.Join(tempDir, "src", "lib."+lang.Extension),
	}
}

// Setup creates ./temp, ./temp/src, a minimal manifest, and an empty
// library root file.
func (d *InTreeDealer) Setup() error {
	if err := os.MkdirAll(d.srcSub, 0o755); err != nil {
		return err
	}

	const manifest = "[package]\nname = \"ferox_temp\"\ntype = \"lib\"\nauthors = [\"ferox\"]\ncompiler_version = \"0.22.0\"\n"
	if err := os.WriteFile(filepath.Join(d.tempDir, d.lang.ManifestName), []byte(manifest), 0o644); err != nil {
		return err
	}

	return os.WriteFile(d.libRoot, nil, 0o644)
}

// Install copies the mutant's source file into temp/src/mutation_{id}.ext,
// appends its module declaration to the shared library root (serialised),
// and applies the byte patch to the copy.
func (d *InTreeDealer) Install(m mutant.Mutant) (Installed, error) {
	content, err := os.ReadFile(m.SourcePath)
	if err != nil {
		return Installed{}, err
	}

	shardName := fmt.Sprintf("mutation_%d.%s", m.ID, d.lang.Extension)
	shardPath := filepath.Join(d.srcSub, shardName)
	if err := os.WriteFile(shardPath, content, 0o644); err != nil {
		return Installed{}, err
	}

	if err := d.appendModDecl(m.ID); err != nil {
		return Installed{}, err
	}

	if err := PatchFile(shardPath, m); err != nil {
		return Installed{}, err
	}

	return Installed{Dir: d.tempDir, FilePath: shardPath}, nil
}

func (d *InTreeDealer) appendModDecl(id uint32) error {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	f, err := os.OpenFile(d.libRoot, os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	_, err = fmt.Fprintf(f, "mod mutation_%d;\n", id)

	return err
}

// Release is a no-op for the in-tree flavour: each mutant's shard file is
// disjoint from the others and is only removed, along with everything
// else under temp/, by Teardown.
func (d *InTreeDealer) Release(_ mutant.Mutant, _ Installed) error {
	return nil
}

// Teardown removes ./temp in its entirety.
func (d *InTreeDealer) Teardown() error {
	return os.RemoveAll(d.tempDir)
}
