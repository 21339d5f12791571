package runtime

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// DefaultMinPython is the oldest interpreter the Kedro starters support.
const DefaultMinPython = "3.8"

// ParsePythonVersion extracts the version from a `python --version` banner
// such as "Python 3.11.4". Release-candidate suffixes ("3.13.0rc1") are
// accepted.
func ParsePythonVersion(banner string) (*semver.Version, error) {
	fields := strings.Fields(banner)
	if len(fields) == 0 {
		return nil, fmt.Errorf("empty version banner")
	}
	raw := fields[len(fields)-1]
	if len(fields) >= 2 && strings.EqualFold(fields[0], "python") {
		raw = fields[1]
	}
	raw = strings.TrimPrefix(raw, "v")

	// CPython spells pre-releases without a hyphen (3.13.0rc1).
	if i := strings.IndexAny(raw, "abcr"); i > 0 && raw[i-1] != '-' {
		raw = raw[:i] + "-" + raw[i:]
	}
	v, err := semver.NewVersion(raw)
	if err != nil {
		return nil, fmt.Errorf("parsing python version %q: %w", banner, err)
	}
	return v, nil
}

// MeetsMinimum reports whether v is at least min. Pre-releases of the
// minimum itself count as meeting it.
func MeetsMinimum(v *semver.Version, min string) (bool, error) {
	c, err := semver.NewConstraint(">= " + strings.TrimPrefix(min, "v") + "-0")
	if err != nil {
		return false, fmt.Errorf("parsing minimum version %q: %w", min, err)
	}
	return c.Check(v), nil
}
