package scaffold

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/sfp-labs/sfp/internal/failure"
)

// Separator replaces every character that is not an ASCII letter or digit.
const Separator = '_'

var lower = cases.Lower(language.Und)

// Normalize maps each rune of s outside [a-zA-Z0-9] to Separator. Runs are
// not collapsed and no length limit applies.
func Normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		default:
			b.WriteRune(Separator)
		}
	}
	return b.String()
}

// ProjectName turns raw input into the project/package name: surrounding
// whitespace is trimmed, the rest normalized and lowercased. An empty result
// is failure.EmptyProjectName.
func ProjectName(raw string) (string, error) {
	name := lower.String(Normalize(strings.TrimSpace(raw)))
	if name == "" {
		return "", failure.New(failure.EmptyProjectName, nil)
	}
	return name, nil
}
