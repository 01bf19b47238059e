package workdir

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/ferox-dev/ferox/internal/language"
	"github.com/ferox-dev/ferox/internal/mutant"
)

// CopyTreeDealer implements the Solidity-style copy-tree isolation flavour:
// a fresh temporary directory per evaluation, holding a full copy of the
// project tree excluding cache/broadcast/documentation. Each mutant's patch
// is applied in place within its own copy, so no per-worker mutex is
// needed.
type CopyTreeDealer struct {
	lang   language.Capability
	srcDir string
}

// NewCopyTreeDealer builds a CopyTreeDealer rooted at srcDir.
func NewCopyTreeDealer(lang language.Capability, srcDir string) *CopyTreeDealer {
	return &CopyTreeDealer{lang: lang, srcDir: srcDir}
}

// Setup is a no-op: the copy-tree flavour has no run-wide shared state.
func (d *CopyTreeDealer) Setup() error {
	return nil
}

// Install creates a uniquely-named temp directory, copies the project tree
// into it excluding cache/broadcast/documentation paths, and applies the
// mutant's byte patch to its copy.
func (d *CopyTreeDealer) Install(m mutant.Mutant) (Installed, error) {
	tempDir, err := os.MkdirTemp("", "Hunter_temp_mutations_*")
	if err != nil {
		return Installed{}, err
	}

	if err := copyTree(d.srcDir, tempDir); err != nil {
		_ = os.RemoveAll(tempDir)

		return Installed{}, err
	}

	rel, err := filepath.Rel(d.srcDir, m.SourcePath)
	if err != nil {
		_ = os.RemoveAll(tempDir)

		return Installed{}, err
	}
	targetPath := filepath.Join(tempDir, rel)

	if err := PatchFile(targetPath, m); err != nil {
		_ = os.RemoveAll(tempDir)

		return Installed{}, err
	}

	return Installed{Dir: tempDir, FilePath: targetPath}, nil
}

// Release removes this mutant's temp directory.
func (d *CopyTreeDealer) Release(_ mutant.Mutant, inst Installed) error {
	return os.RemoveAll(inst.Dir)
}

// Teardown is a no-op: every evaluation already removed its own temp
// directory in Release.
func (d *CopyTreeDealer) Teardown() error {
	return nil
}

func isCopyExcluded(path string) bool {
	slash := filepath.ToSlash(path)

	return strings.Contains(slash, "/cache/") || strings.HasSuffix(slash, "/cache") ||
		strings.Contains(slash, "/broadcast/") || strings.HasSuffix(slash, "/broadcast") ||
		strings.HasPrefix(filepath.Base(path), "README")
}

func copyTree(src, dst string) error {
	return filepath.Walk(src, func(path string, info fs.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if isCopyExcluded(path) {
			if info.IsDir() {
				return filepath.SkipDir
			}

			return nil
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		if rel == "." {
			return nil
		}
		target := filepath.Join(dst, rel)

		if info.IsDir() {
			return os.MkdirAll(target, info.Mode())
		}

		return copyFile(path, target, info.Mode())
	})
}

func copyFile(srcPath, dstPath string, mode fs.FileMode) error {
	s, err := os.Open(srcPath)
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	d, err := os.OpenFile(dstPath, os.O_CREATE|os.O_RDWR|os.O_TRUNC, mode)
	if err != nil {
		return err
	}
	defer func() { _ = d.Close() }()

	_, err = io.Copy(d, s)

	return err
}
