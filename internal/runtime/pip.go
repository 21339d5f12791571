package runtime

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"deps.dev/util/semver"

	"github.com/sfp-labs/sfp/internal/failure"
	"github.com/sfp-labs/sfp/internal/manifest"
)

// PackageManager is a pip-compatible executable.
type PackageManager struct {
	Command string
	Runner  Runner
	// OnInstall, when set, is called before a missing dependency is
	// installed.
	OnInstall func(dep manifest.Dependency)
}

// PackageInfo is the subset of `pip show` metadata the bootstrap reports.
type PackageInfo struct {
	Name    string
	Version string
}

// EnsureResult describes what Ensure did for one dependency.
type EnsureResult struct {
	Dependency manifest.Dependency
	// Installed is true when the package was absent and has been installed.
	Installed bool
	// Info holds the metadata of an already-present package.
	Info *PackageInfo
}

// Show queries the installed metadata of pkg. A nil *PackageInfo means the
// query produced no output and the package is treated as absent. Only a
// failure to run the package manager is an error; pip exits non-zero for
// unknown packages, which is expected here.
func (m *PackageManager) Show(ctx context.Context, pkg string) (*PackageInfo, error) {
	out, err := m.Runner.Capture(ctx, m.Command, "show", pkg)
	if err != nil {
		return nil, failure.Package(failure.PackageQueryFailed, pkg, err)
	}
	if strings.TrimSpace(out.Stdout) == "" {
		return nil, nil
	}
	return parseShow(pkg, out.Stdout), nil
}

// Install installs spec, streaming the package manager's output. A non-zero
// exit is failure.PackageInstallFailed; stderr is not extracted.
func (m *PackageManager) Install(ctx context.Context, pkg, spec string) error {
	out, err := m.Runner.Stream(ctx, m.Command, "install", spec)
	if err != nil {
		return failure.Package(failure.PackageInstallFailed, pkg, err)
	}
	if !out.Success() {
		return failure.Package(failure.PackageInstallFailed, pkg, nil)
	}
	return nil
}

// Ensure installs dep unless `show` reports it present. The check and the
// install are not atomic with respect to other package-manager users.
func (m *PackageManager) Ensure(ctx context.Context, dep manifest.Dependency) (*EnsureResult, error) {
	info, err := m.Show(ctx, dep.Name)
	if err != nil {
		return nil, err
	}
	res := &EnsureResult{Dependency: dep, Info: info}
	if info != nil {
		return res, nil
	}
	if m.OnInstall != nil {
		m.OnInstall(dep)
	}
	if err := m.Install(ctx, dep.Name, dep.InstallSpec()); err != nil {
		return nil, err
	}
	res.Installed = true
	return res, nil
}

// Satisfied reports whether an already-present package matches the
// dependency's version constraint. Packages without a constraint, freshly
// installed packages and packages whose version is unknown are satisfied.
func (r *EnsureResult) Satisfied() (bool, error) {
	if r.Installed || r.Info == nil || r.Info.Version == "" || r.Dependency.Constraint == "" {
		return true, nil
	}
	c, err := semver.PyPI.ParseConstraint(r.Dependency.Constraint)
	if err != nil {
		return false, fmt.Errorf("parsing constraint %q: %w", r.Dependency.Constraint, err)
	}
	v, err := semver.PyPI.Parse(r.Info.Version)
	if err != nil {
		return false, fmt.Errorf("parsing installed version %q: %w", r.Info.Version, err)
	}
	return c.MatchVersion(v), nil
}

// parseShow reads the RFC 822 style header block printed by `pip show`.
func parseShow(pkg, stdout string) *PackageInfo {
	info := &PackageInfo{Name: pkg}
	sc := bufio.NewScanner(strings.NewReader(stdout))
	for sc.Scan() {
		key, value, ok := strings.Cut(sc.Text(), ":")
		if !ok {
			continue
		}
		switch strings.TrimSpace(key) {
		case "Name":
			info.Name = strings.TrimSpace(value)
		case "Version":
			info.Version = strings.TrimSpace(value)
		}
	}
	return info
}
