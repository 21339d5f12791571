package bootstrap

import (
	"context"
	"io"
	"time"

	"github.com/sfp-labs/sfp/internal/console"
	"github.com/sfp-labs/sfp/internal/manifest"
	"github.com/sfp-labs/sfp/internal/platform"
	"github.com/sfp-labs/sfp/internal/runtime"
	"github.com/sfp-labs/sfp/internal/scaffold"
)

// State is the last stage a run reached.
type State int

const (
	StateStart State = iota
	StateInterpreterVerified
	StateNameCollected
	StatePackagesInstalled
	StateScaffoldCreated
	StateFoldersProvisioned
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateStart:
		return "Start"
	case StateInterpreterVerified:
		return "InterpreterVerified"
	case StateNameCollected:
		return "NameCollected"
	case StatePackagesInstalled:
		return "PackagesInstalled"
	case StateScaffoldCreated:
		return "ScaffoldCreated"
	case StateFoldersProvisioned:
		return "FoldersProvisioned"
	case StateFailed:
		return "Failed"
	default:
		return "Unknown"
	}
}

// Flow holds everything one bootstrap run needs.
type Flow struct {
	Family       platform.Family
	Interpreter  *runtime.Interpreter
	Packages     *runtime.PackageManager
	Scaffolder   *scaffold.Scaffolder
	Dependencies []manifest.Dependency

	// Input supplies the project name when Name is empty.
	Input io.Reader
	// Name skips the prompt; it is normalized like typed input.
	Name string

	Log *console.Logger
	// MinPython triggers a warning for older interpreters; empty disables
	// the check.
	MinPython string
	// Timeout bounds the whole run; zero means no limit.
	Timeout time.Duration
}

// Result reports how far a run got and what it produced.
type Result struct {
	State       State
	Interpreter *runtime.InterpreterInfo
	ProjectName string
	Packages    []*runtime.EnsureResult
	ProjectDir  string
	Folders     []string
}

// Run executes the pipeline. The returned Result is never nil; on error its
// State is StateFailed and the fields of completed steps are populated.
func (f *Flow) Run(ctx context.Context) (*Result, error) {
	if f.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.Timeout)
		defer cancel()
	}

	log := f.Log
	if log == nil {
		log = console.Discard()
	}
	res := &Result{State: StateStart}
	fail := func(err error) (*Result, error) {
		res.State = StateFailed
		return res, err
	}

	log.Info("Is Unix: %t", f.Family == platform.FamilyUnix)
	log.Info("Using '%s' as python command", f.Interpreter.Command)

	info, err := f.Interpreter.Check(ctx)
	if err != nil {
		return fail(err)
	}
	res.Interpreter = info
	log.Info("The environment is: %s", info.Prefix)
	f.checkVersion(log, info)
	res.State = StateInterpreterVerified

	name, err := f.projectName(log)
	if err != nil {
		return fail(err)
	}
	res.ProjectName = name
	res.State = StateNameCollected

	pm := *f.Packages
	pm.OnInstall = func(dep manifest.Dependency) {
		log.Info("The '%s' package is not installed.", dep.Name)
		log.Info("Installing '%s'", dep.InstallSpec())
	}
	for _, dep := range f.Dependencies {
		r, err := pm.Ensure(ctx, dep)
		if err != nil {
			return fail(err)
		}
		res.Packages = append(res.Packages, r)
		logPackage(log, r)
	}
	log.Success("All recommended packages are now installed!!")
	res.State = StatePackagesInstalled

	dir, err := f.Scaffolder.Create(ctx, name)
	if err != nil {
		return fail(err)
	}
	res.ProjectDir = dir
	log.Success("The project folder '%s' was created in the current path", name)
	res.State = StateScaffoldCreated

	log.Info("Creating additional resources")
	folders, err := scaffold.Provision(dir)
	res.Folders = folders
	if err != nil {
		return fail(err)
	}
	res.State = StateFoldersProvisioned
	return res, nil
}

func (f *Flow) projectName(log *console.Logger) (string, error) {
	raw := f.Name
	if raw == "" {
		log.Input("Please enter the project name (package):")
		line, err := readLine(f.Input)
		if err != nil {
			return "", err
		}
		raw = line
	}
	name, err := scaffold.ProjectName(raw)
	if err != nil {
		return "", err
	}
	log.Answer("The project will be: %s", name)
	return name, nil
}

// checkVersion warns about interpreters older than MinPython. An unparsable
// banner is only noted.
func (f *Flow) checkVersion(log *console.Logger, info *runtime.InterpreterInfo) {
	if f.MinPython == "" {
		return
	}
	v, err := runtime.ParsePythonVersion(info.Banner)
	if err != nil {
		log.Warn("Could not determine the python version from %q", info.Banner)
		return
	}
	ok, err := runtime.MeetsMinimum(v, f.MinPython)
	if err != nil {
		log.Warn("Ignoring minimum python version: %v", err)
		return
	}
	if !ok {
		log.Warn("Python %s is older than the supported minimum %s", v, f.MinPython)
	}
}

func logPackage(log *console.Logger, r *runtime.EnsureResult) {
	name := r.Dependency.Name
	if r.Installed {
		log.Success("The '%s' package has been successfully installed.", name)
		return
	}
	log.Info("The '%s' package is already installed.", name)
	ok, err := r.Satisfied()
	switch {
	case err != nil:
		log.Warn("Could not compare '%s' %s against %s: %v", name, r.Info.Version, r.Dependency.Constraint, err)
	case !ok:
		log.Warn("The installed '%s' %s does not satisfy %s", name, r.Info.Version, r.Dependency.Constraint)
	}
}
