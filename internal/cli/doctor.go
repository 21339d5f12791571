package cli

import (
	"context"
	"fmt"
	"io"
	"os/exec"

	"github.com/spf13/cobra"

	"github.com/sfp-labs/sfp/internal/config"
	"github.com/sfp-labs/sfp/internal/manifest"
	"github.com/sfp-labs/sfp/internal/runtime"
)

var doctorManifest string

func init() {
	doctorCmd.Flags().StringVar(&doctorManifest, "manifest", "", "Check the packages of this bootstrap manifest")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the tools a bootstrap needs",
	Long: `Report whether the Python interpreter, the package manager and the
scaffolder are available, and which of the recommended packages are already
installed. Nothing is installed or created.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		config.Load()
		settings, err := config.Resolve()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		path := settings.Manifest
		if doctorManifest != "" {
			path = doctorManifest
		}
		m, err := manifest.LoadOrDefault(path)
		if err != nil {
			return err
		}
		deps, err := m.Dependencies()
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		runner := &runtime.ExecRunner{Stdout: io.Discard, Stderr: io.Discard}
		ctx := cmd.Context()

		fmt.Fprintln(w, "Runtime check:")
		pythonOK := checkInterpreter(ctx, w, &runtime.Interpreter{Command: settings.Python, Runner: runner}, settings.MinPython)
		pipOK := checkBinary(w, settings.PackageManager)
		checkBinary(w, settings.Scaffolder)

		fmt.Fprintln(w, "Packages check:")
		if !pythonOK || !pipOK {
			fmt.Fprintf(w, "  [SKIP] %s is not available\n", settings.PackageManager)
			return nil
		}
		pm := &runtime.PackageManager{Command: settings.PackageManager, Runner: runner}
		for _, dep := range deps {
			checkPackage(ctx, w, pm, dep)
		}
		return nil
	},
}

func checkInterpreter(ctx context.Context, w io.Writer, interp *runtime.Interpreter, minPython string) bool {
	info, err := interp.Check(ctx)
	if err != nil {
		fmt.Fprintf(w, "  [MISS] %v\n", err)
		return false
	}
	fmt.Fprintf(w, "  [ OK ] %s: %s (%s)\n", info.Command, info.Banner, info.Prefix)

	if minPython == "" {
		return true
	}
	v, err := runtime.ParsePythonVersion(info.Banner)
	if err != nil {
		fmt.Fprintf(w, "  [WARN] %v\n", err)
		return true
	}
	if ok, err := runtime.MeetsMinimum(v, minPython); err == nil && !ok {
		fmt.Fprintf(w, "  [WARN] python %s is older than %s\n", v, minPython)
	}
	return true
}

func checkBinary(w io.Writer, name string) bool {
	path, err := exec.LookPath(name)
	if err != nil {
		fmt.Fprintf(w, "  [MISS] %s not found\n", name)
		return false
	}
	fmt.Fprintf(w, "  [ OK ] %s found at %s\n", name, path)
	return true
}

func checkPackage(ctx context.Context, w io.Writer, pm *runtime.PackageManager, dep manifest.Dependency) {
	info, err := pm.Show(ctx, dep.Name)
	if err != nil {
		fmt.Fprintf(w, "  [FAIL] %v\n", err)
		return
	}
	if info == nil {
		fmt.Fprintf(w, "  [MISS] %s\n", dep)
		return
	}

	res := &runtime.EnsureResult{Dependency: dep, Info: info}
	ok, err := res.Satisfied()
	switch {
	case err != nil:
		fmt.Fprintf(w, "  [WARN] %s %s: %v\n", info.Name, info.Version, err)
	case !ok:
		fmt.Fprintf(w, "  [WARN] %s %s does not satisfy %s\n", info.Name, info.Version, dep.Constraint)
	default:
		fmt.Fprintf(w, "  [ OK ] %s %s\n", info.Name, info.Version)
	}
}
