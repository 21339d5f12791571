package manifest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/sfp-labs/sfp/internal/failure"
)

const testdataDir = "testdata"

func testPath(name string) string {
	return filepath.Join(testdataDir, name)
}

func TestDefault(t *testing.T) {
	m := Default()
	if m.Starter != DefaultStarter {
		t.Errorf("Starter = %q, want %q", m.Starter, DefaultStarter)
	}
	want := []string{"numpy", "pandas", "matplotlib", "seaborn", "plotly", "openpyxl", "ipykernel", "jupyter", "jupyterlab"}
	if diff := cmp.Diff(want, m.Packages); diff != "" {
		t.Errorf("Packages mismatch (-want +got):\n%s", diff)
	}

	// Mutating the copy must not leak into the package-level list.
	m.Packages[0] = "changed"
	if DefaultPackages[0] != "numpy" {
		t.Error("Default() returned an aliased slice")
	}
}

func TestDefault_DependenciesKeepOrder(t *testing.T) {
	deps, err := Default().Dependencies()
	if err != nil {
		t.Fatalf("Dependencies() error: %v", err)
	}
	var names []string
	for _, d := range deps {
		names = append(names, d.InstallSpec())
	}
	if diff := cmp.Diff(DefaultPackages, names); diff != "" {
		t.Errorf("order mismatch (-want +got):\n%s", diff)
	}
}

func TestParseDependency(t *testing.T) {
	tests := []struct {
		spec     string
		name     string
		hasRange bool
	}{
		{"numpy", "numpy", false},
		{"pandas>=2.0", "pandas", true},
		{"  seaborn  ", "seaborn", false},
	}
	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			d, err := ParseDependency(tt.spec)
			if err != nil {
				t.Fatalf("ParseDependency(%q) error: %v", tt.spec, err)
			}
			if d.Name != tt.name {
				t.Errorf("Name = %q, want %q", d.Name, tt.name)
			}
			if (d.Constraint != "") != tt.hasRange {
				t.Errorf("Constraint = %q, want present=%v", d.Constraint, tt.hasRange)
			}
		})
	}
}

func TestParseDependency_Empty(t *testing.T) {
	if _, err := ParseDependency("   "); err == nil {
		t.Error("expected error for empty requirement")
	}
}

func TestLoad_Full(t *testing.T) {
	m, err := Load(testPath("valid-full.yaml"))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if m.Starter != "spaceflights-pandas" {
		t.Errorf("Starter = %q", m.Starter)
	}
	want := []string{"numpy", "pandas>=2.0", "kedro-datasets[pandas]"}
	if diff := cmp.Diff(want, m.Packages); diff != "" {
		t.Errorf("Packages mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_StarterOnlyKeepsDefaultPackages(t *testing.T) {
	m, err := Load(testPath("valid-starter-only.yaml"))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if diff := cmp.Diff(DefaultPackages, m.Packages); diff != "" {
		t.Errorf("Packages mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_Invalid(t *testing.T) {
	files := []string{
		"invalid-unknown-field.yaml",
		"invalid-empty-packages.yaml",
		"invalid-bad-starter.yaml",
		"invalid-yaml.yaml",
		"does-not-exist.yaml",
	}
	for _, file := range files {
		t.Run(file, func(t *testing.T) {
			_, err := Load(testPath(file))
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if got := failure.KindOf(err); got != failure.ManifestInvalid {
				t.Errorf("KindOf = %v, want ManifestInvalid", got)
			}
		})
	}
}

func TestValidate_ReportsIssues(t *testing.T) {
	data, err := os.ReadFile(testPath("invalid-unknown-field.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	result, err := Validate(data)
	if err != nil {
		t.Fatalf("Validate error: %v", err)
	}
	if result.Valid {
		t.Fatal("expected invalid result")
	}
	if len(result.Issues) == 0 {
		t.Fatal("expected at least one issue")
	}
	if result.Summary() == "" {
		t.Error("expected non-empty summary")
	}
}

func TestValidate_IssueLocations(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		path    string
		keyword string
	}{
		{"bad starter", "starter: \"Bad Starter!\"\n", "/starter", "pattern"},
		{"empty list", "packages: []\n", "/packages", "minItems"},
		{"empty item", "packages: [numpy, \"\"]\n", "/packages/1", "minLength"},
		{"unknown key", "folders: [notebooks]\n", "", "additionalProperties"},
		{"wrong type", "packages: numpy\n", "/packages", "type"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Validate([]byte(tt.yaml))
			if err != nil {
				t.Fatalf("Validate error: %v", err)
			}
			if result.Valid {
				t.Fatal("expected invalid result")
			}
			for _, issue := range result.Issues {
				if issue.Path == tt.path && issue.Keyword == tt.keyword {
					if issue.Message == "" {
						t.Error("issue has no message")
					}
					return
				}
			}
			t.Errorf("no %s issue at %q in %+v", tt.keyword, tt.path, result.Issues)
		})
	}
}

func TestValidate_EmptyDocumentIsValid(t *testing.T) {
	result, err := Validate([]byte(""))
	if err != nil {
		t.Fatalf("Validate error: %v", err)
	}
	if !result.Valid {
		t.Errorf("empty manifest rejected: %s", result.Summary())
	}
}

func TestLoadOrDefault_EmptyPath(t *testing.T) {
	m, err := LoadOrDefault("")
	if err != nil {
		t.Fatalf("LoadOrDefault error: %v", err)
	}
	if m.StarterOrDefault() != DefaultStarter {
		t.Errorf("StarterOrDefault() = %q", m.StarterOrDefault())
	}
}
