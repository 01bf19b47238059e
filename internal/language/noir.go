package language

import (
	"regexp"
	"strings"
)

// Noir builds the capability for the Noir circuit language, an in-tree
// (shared ./temp/ workspace) isolation flavour.
func Noir() Capability {
	return Capability{
		Tag:             "noir",
		DisplayName:     "Noir",
		Extension:       "nr",
		TestRunner:      "nargo",
		BuildCommand:    "build",
		TestCommand:     "test",
		ManifestName:    "Nargo.toml",
		ExcludedDirs:    []string{"temp", "target", "test", "tests", "lib", "script"},
		FilterTestsOnly: true,
		Flavour:         InTree,

		TestRegex:    regexp.MustCompile(`#\[test\]`),
		CommentRegex: regexp.MustCompile(`//.*|/\*(?s:.*?)\*/`),
		LiteralRegex: regexp.MustCompile(`"([^"\\]|\\.)*"`),

		IsTestFailed: func(stderr []byte) bool {
			s := string(stderr)
			return strings.Contains(s, "test failed") ||
				strings.Contains(s, "FAILED") ||
				strings.Contains(s, "Failed constraint")
		},
	}
}
