package language

import (
	"regexp"
	"strings"
)

// Solidity builds the capability for the Solidity/Foundry stack, a
// copy-tree isolation flavour: a fresh temp directory per evaluation.
func Solidity() Capability {
	return Capability{
		Tag:             "solidity",
		DisplayName:     "Solidity",
		Extension:       "sol",
		TestRunner:      "forge",
		BuildCommand:    "build",
		TestCommand:     "test",
		RunnerArgs:      []string{"--no-auto-detect"},
		ManifestName:    "foundry.toml",
		ExcludedDirs:    []string{"temp", "target", "test", "tests", "lib", "node_modules"},
		FilterTestsOnly: false,
		Flavour:         CopyTree,

		TestRegex:    nil,
		CommentRegex: regexp.MustCompile(`//.*|/\*(?s:.*?)\*/`),
		LiteralRegex: regexp.MustCompile(`"([^"\\]|\\.)*"`),

		IsTestFailed: func(stderr []byte) bool {
			return !strings.Contains(string(stderr), "compiler error")
		},
	}
}
