package cli

import (
	"github.com/spf13/cobra"

	"github.com/sfp-labs/sfp/internal/branding"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` prepares a local data-science project: it checks the Python
interpreter, installs the recommended packages, scaffolds a Kedro project
and adds its src and resources folders.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runNew,
}

func init() {
	addNewFlags(rootCmd)
}

// Execute runs the root command with build info injected via ldflags. A
// failure is logged once at error severity and returned.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	cmd, err := rootCmd.ExecuteC()
	if err != nil {
		newLogger(cmd.OutOrStdout()).Error("An error occurred: %v", err)
	}
	return err
}
