package manifest

import (
	"fmt"
	"strings"

	"deps.dev/util/pypi"
)

// DefaultStarter is the Kedro starter used when no manifest names one.
const DefaultStarter = "standalone-datacatalog"

// DefaultPackages is the curated dependency list, in install order: array
// computing, dataframes, two plotting libraries plus an interactive one,
// spreadsheet I/O, the Jupyter kernel and the notebook front-ends.
var DefaultPackages = []string{
	"numpy",
	"pandas",
	"matplotlib",
	"seaborn",
	"plotly",
	"openpyxl",
	"ipykernel",
	"jupyter",
	"jupyterlab",
}

// Manifest is the on-disk bootstrap description (sfp.yaml).
type Manifest struct {
	Starter  string   `yaml:"starter,omitempty"`
	Packages []string `yaml:"packages,omitempty"`
}

// Dependency is one package requirement.
type Dependency struct {
	Name       string // distribution name passed to `pip show`
	Spec       string // requirement as written, passed to `pip install`
	Constraint string // version constraint, e.g. ">=2.0"; may be empty
}

// InstallSpec returns the argument for `pip install`.
func (d Dependency) InstallSpec() string {
	if d.Spec != "" {
		return d.Spec
	}
	return d.Name
}

func (d Dependency) String() string { return d.InstallSpec() }

// ParseDependency parses a PEP 508 requirement such as "pandas>=2.0".
func ParseDependency(spec string) (Dependency, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return Dependency{}, fmt.Errorf("empty requirement")
	}
	d, err := pypi.ParseDependency(spec)
	if err != nil {
		return Dependency{}, fmt.Errorf("parsing requirement %q: %w", spec, err)
	}
	return Dependency{
		Name:       d.Name,
		Spec:       spec,
		Constraint: d.Constraint,
	}, nil
}

// Default returns the built-in manifest.
func Default() *Manifest {
	return &Manifest{
		Starter:  DefaultStarter,
		Packages: append([]string(nil), DefaultPackages...),
	}
}

// Dependencies parses Packages in order. Duplicates are kept; the list is
// curated.
func (m *Manifest) Dependencies() ([]Dependency, error) {
	deps := make([]Dependency, 0, len(m.Packages))
	for _, spec := range m.Packages {
		d, err := ParseDependency(spec)
		if err != nil {
			return nil, err
		}
		deps = append(deps, d)
	}
	return deps, nil
}

// StarterOrDefault returns Starter, falling back to DefaultStarter.
func (m *Manifest) StarterOrDefault() string {
	if m.Starter == "" {
		return DefaultStarter
	}
	return m.Starter
}
