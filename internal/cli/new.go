package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/sfp-labs/sfp/internal/bootstrap"
	"github.com/sfp-labs/sfp/internal/config"
	"github.com/sfp-labs/sfp/internal/console"
	"github.com/sfp-labs/sfp/internal/manifest"
	"github.com/sfp-labs/sfp/internal/platform"
	"github.com/sfp-labs/sfp/internal/runtime"
	"github.com/sfp-labs/sfp/internal/scaffold"
)

var (
	newName     string
	newManifest string
)

var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Bootstrap a new project (default command)",
	Args:  cobra.NoArgs,
	RunE:  runNew,
}

func init() {
	addNewFlags(newCmd)
	rootCmd.AddCommand(newCmd)
}

func addNewFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&newName, "name", "", "Project name; skips the interactive prompt")
	cmd.Flags().StringVar(&newManifest, "manifest", "", "Bootstrap manifest (sfp.yaml) overriding packages and starter")
}

func runNew(cmd *cobra.Command, args []string) error {
	config.Load()
	settings, err := config.Resolve()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	m, err := loadManifest(settings)
	if err != nil {
		return err
	}
	deps, err := m.Dependencies()
	if err != nil {
		return err
	}

	runner := &runtime.ExecRunner{
		Stdout: cmd.OutOrStdout(),
		Stderr: cmd.ErrOrStderr(),
		Stdin:  cmd.InOrStdin(),
	}
	flow := &bootstrap.Flow{
		Family:       platform.Current(),
		Interpreter:  &runtime.Interpreter{Command: settings.Python, Runner: runner},
		Packages:     &runtime.PackageManager{Command: settings.PackageManager, Runner: runner},
		Scaffolder:   &scaffold.Scaffolder{Command: settings.Scaffolder, Starter: starterFor(settings, m), Runner: runner},
		Dependencies: deps,
		Input:        cmd.InOrStdin(),
		Name:         newName,
		Log:          newLogger(cmd.OutOrStdout()),
		MinPython:    settings.MinPython,
		Timeout:      settings.Timeout,
	}

	_, err = flow.Run(cmd.Context())
	return err
}

// loadManifest honours --manifest first, then the manifest config key.
func loadManifest(settings *config.Settings) (*manifest.Manifest, error) {
	path := settings.Manifest
	if newManifest != "" {
		path = newManifest
	}
	return manifest.LoadOrDefault(path)
}

// starterFor returns the manifest's starter when it names a non-default one,
// otherwise the configured starter.
func starterFor(settings *config.Settings, m *manifest.Manifest) string {
	if s := m.StarterOrDefault(); s != manifest.DefaultStarter {
		return s
	}
	if settings.Starter != "" {
		return settings.Starter
	}
	return manifest.DefaultStarter
}

// newLogger writes to w, honouring the no_color setting.
func newLogger(w io.Writer) *console.Logger {
	if noColor, _ := strconv.ParseBool(config.Get(config.KeyNoColor)); noColor {
		return console.New(w, console.WithColor(false))
	}
	return console.New(w)
}
