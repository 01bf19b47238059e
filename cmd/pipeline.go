package cmd

import (
	"errors"
	"math/rand"
	"time"

	"github.com/ferox-dev/ferox/internal/configuration"
	"github.com/ferox-dev/ferox/internal/discovery"
	"github.com/ferox-dev/ferox/internal/execution"
	"github.com/ferox-dev/ferox/internal/language"
	"github.com/ferox-dev/ferox/internal/log"
	"github.com/ferox-dev/ferox/internal/project"
	"github.com/ferox-dev/ferox/internal/scanner"
)

// runScan resolves the configured language and source path, then runs the
// Scanner, translating its error classes into execution.ExitError so main
// can map them to a process exit code.
func runScan() (language.Capability, scanner.Result, error) {
	tag := configuration.Get[string](configuration.LanguageKey)
	lang, err := language.ByTag(tag)
	if err != nil {
		return language.Capability{}, scanner.Result{}, execution.NewExitErr(execution.ConfigError, err.Error())
	}

	root := resolveProjectRoot(configuration.Get[string](configuration.SourcePathKey), lang.ManifestName)
	randomMode := configuration.Get[bool](configuration.RandomKey)

	var rng *rand.Rand
	if randomMode {
		rng = seededRand()
	}

	result, err := scanner.Scan(scanner.Options{
		Root:   root,
		Cap:    lang,
		Random: randomMode,
		Rand:   rng,
	})
	if err != nil {
		var notFound discovery.ErrNotFound
		var noFiles discovery.ErrNoFiles
		switch {
		case errors.As(err, &notFound), errors.As(err, &noFiles):
			return lang, scanner.Result{}, execution.NewExitErr(execution.DiscoveryError, err.Error())
		default:
			return lang, scanner.Result{}, execution.NewExitErr(execution.NoTokensError, err.Error())
		}
	}

	return lang, result, nil
}

// resolveProjectRoot anchors the configured source path to the directory
// actually holding the language's manifest, walking up the tree the same
// way the Go toolchain finds a module root. This matters for the in-tree
// flavour, whose ./temp workspace is created as a sibling of the manifest:
// if --source-path points at a subdirectory of the project (e.g. its
// src/), anchoring keeps the installed workspace and the manifest on the
// same level instead of temp ending up nested inside an arbitrary
// subdirectory. When no manifest is found above path, the configured path
// is used unchanged — not every invocation is rooted under a manifest.
func resolveProjectRoot(path, manifestName string) string {
	p, err := project.Init(path, manifestName)
	if err != nil {
		return path
	}

	return p.Root
}

func seededRand() *rand.Rand {
	seed := configuration.Get[int64](configuration.SeedKey)
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Infof("using random seed %d\n", seed)

	return rand.New(rand.NewSource(seed))
}
