package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/seahorse-inn/seahorse-setup/internal/messages"
)

var getwd = os.Getwd

// newRootCmd builds the CLI. Running the root command with no subcommand
// performs the full installation, matching the one-shot setup script this
// tool replaces.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           messages.RootUse,
		Short:         messages.RootShort,
		Long:          messages.RootLong,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	flags := addInstallFlags(cmd)
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runInstall(cmd, flags)
	}

	cmd.AddCommand(newInstallCmd())
	cmd.AddCommand(newInitCmd())
	cmd.AddCommand(newWizardCmd())
	cmd.AddCommand(newDoctorCmd())
	return cmd
}

// resolveProjectRoot returns the directory the agent lives in. The tool is
// run from the project directory, like the setup script it replaces.
func resolveProjectRoot() (string, error) {
	return getwd()
}
