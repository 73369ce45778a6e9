package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/seahorse-inn/seahorse-setup/internal/config"
	"github.com/seahorse-inn/seahorse-setup/internal/messages"
	"github.com/seahorse-inn/seahorse-setup/internal/provision"
	"github.com/seahorse-inn/seahorse-setup/internal/python"
	"github.com/seahorse-inn/seahorse-setup/internal/terminal"
	"github.com/seahorse-inn/seahorse-setup/internal/updatewarn"
)

// Seams for tests.
var (
	provisionRun                    = provision.Run
	warnIfOutdated                  = updatewarn.WarnIfOutdated
	isTerminal                      = terminal.IsInteractive
	pythonSystem   python.System    = python.RealSystem{}
	installSystem  provision.System = provision.RealSystem{}
)

type installFlags struct {
	python       string
	skipBrowsers bool
	verbose      bool
	yes          bool
}

// addInstallFlags registers the install flag set on cmd. The root command
// shares these flags so a bare `seahorse-setup` behaves like `install`.
func addInstallFlags(cmd *cobra.Command) *installFlags {
	flags := &installFlags{}
	cmd.Flags().StringVar(&flags.python, "python", "", messages.InstallFlagPython)
	cmd.Flags().BoolVar(&flags.skipBrowsers, "skip-browsers", false, messages.InstallFlagSkipBrowsers)
	cmd.Flags().BoolVar(&flags.verbose, "verbose", false, messages.InstallFlagVerbose)
	cmd.Flags().BoolVarP(&flags.yes, "yes", "y", false, messages.InstallFlagYes)
	return flags
}

func newInstallCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   messages.InstallUse,
		Short: messages.InstallShort,
		Long:  messages.InstallLong,
		Args:  cobra.NoArgs,
	}
	flags := addInstallFlags(cmd)
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runInstall(cmd, flags)
	}
	return cmd
}

// runInstall performs the full provisioning sequence. Step failures are
// summarized but never fail the command; only unusable inputs (no
// interpreter, broken setup.toml) do.
func runInstall(cmd *cobra.Command, flags *installFlags) error {
	out := cmd.OutOrStdout()
	errOut := cmd.ErrOrStderr()
	ctx := cmd.Context()

	root, err := resolveProjectRoot()
	if err != nil {
		return err
	}
	cfg, err := config.Load(root)
	if err != nil {
		return err
	}

	preferred := flags.python
	if preferred == "" {
		preferred = cfg.Python.Interpreter
	}
	interpreter, err := python.Resolve(pythonSystem, preferred)
	if err != nil {
		return err
	}
	// An old interpreter degrades to a warning here: pip itself reports
	// per-package incompatibilities, and a failed step never gates the rest.
	if _, err := python.CheckMinimum(ctx, pythonSystem, interpreter, cfg.MinimumPython()); err != nil {
		_, _ = color.New(color.FgYellow).Fprintf(errOut, "Warning: %v\n", err)
	}

	warnIfOutdated(ctx, Version, errOut)

	report, err := provisionRun(ctx, provision.Options{
		Python:        interpreter,
		ExtraPackages: cfg.Packages.Extra,
		SkipBrowsers:  flags.skipBrowsers || cfg.Browsers.Skip,
		Verbose:       flags.verbose,
		Out:           out,
		ProgressOut:   errOut,
		System:        installSystem,
	})
	if err != nil {
		return err
	}
	provision.WriteSummary(out, report)

	if !flags.yes && isTerminal() {
		pause(cmd)
	}
	return nil
}

// pause blocks until the user presses Enter. The original setup script ran
// in a console window that closed on exit; this keeps its output readable
// when launched the same way.
func pause(cmd *cobra.Command) {
	_, _ = fmt.Fprint(cmd.OutOrStdout(), messages.PausePrompt)
	reader := bufio.NewReader(cmd.InOrStdin())
	line, _ := reader.ReadString('\n')
	_ = strings.TrimSpace(line)
}
