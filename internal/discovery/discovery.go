// Package discovery walks a source tree looking for files with a target
// language's extension, honouring the language capability's excluded
// directory list.
package discovery

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ErrNotFound is returned when root does not exist.
type ErrNotFound struct {
	Root string
}

func (e ErrNotFound) Error() string {
	return fmt.Sprintf("discovery: root not found: %s", e.Root)
}

// ErrNoFiles is returned when root exists but no file with the wanted
// extension was found under it.
type ErrNoFiles struct {
	Root string
	Ext  string
}

func (e ErrNoFiles) Error() string {
	return fmt.Sprintf("discovery: no .%s files found under %s", e.Ext, e.Root)
}

// Find returns the ordered sequence of source file paths under root with
// the given extension, excluding any path with a component that matches an
// entry of excludedDirs (compared with and without a leading "./", so a
// capability can list either "temp" or "./temp"). Traversal is recursive
// and depth-first. If root is itself a single file with the right
// extension, the result is that singleton.
func Find(root, ext string, excludedDirs []string) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, ErrNotFound{Root: root}
	}

	excluded := normalizeExcluded(excludedDirs)

	if !info.IsDir() {
		if filepath.Ext(root) == "."+ext {
			return []string{root}, nil
		}

		return nil, ErrNoFiles{Root: root, Ext: ext}
	}

	var paths []string
	err = filepath.Walk(root, func(path string, fi os.FileInfo, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if fi.IsDir() {
			if path != root && isExcluded(path, excluded) {
				return filepath.SkipDir
			}

			return nil
		}
		if isExcluded(path, excluded) {
			return nil
		}
		if filepath.Ext(path) == "."+ext {
			paths = append(paths, path)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(paths)

	if len(paths) == 0 {
		return nil, ErrNoFiles{Root: root, Ext: ext}
	}

	return paths, nil
}

func normalizeExcluded(dirs []string) []string {
	out := make([]string, 0, len(dirs))
	for _, d := range dirs {
		out = append(out, strings.TrimPrefix(d, "./"))
	}

	return out
}

func isExcluded(path string, excluded []string) bool {
	for _, part := range strings.Split(filepath.ToSlash(path), "/") {
		for _, ex := range excluded {
			if part == ex {
				return true
			}
		}
	}

	return false
}
