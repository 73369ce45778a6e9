package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/seahorse-inn/seahorse-setup/internal/config"
	"github.com/seahorse-inn/seahorse-setup/internal/messages"
	"github.com/seahorse-inn/seahorse-setup/internal/templates"
	"github.com/seahorse-inn/seahorse-setup/internal/wizard"
)

var runWizard = func(root string) error {
	return wizard.Run(root, wizard.NewHuhUI())
}

func newInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   messages.InitUse,
		Short: messages.InitShort,
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := resolveProjectRoot()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			envPath := filepath.Join(root, ".env")
			if err := seedFile(out, envPath, templates.Env, force); err != nil {
				return err
			}

			configPath := config.Path(root)
			if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
				return fmt.Errorf(messages.InitCreateDirErrFmt, filepath.Dir(configPath), err)
			}
			// setup.toml holds no credentials; silently keeping an existing
			// one is always safe.
			if _, err := os.Stat(configPath); errors.Is(err, fs.ErrNotExist) {
				if err := seedFile(out, configPath, templates.SetupToml, false); err != nil {
					return err
				}
			}

			if !isTerminal() {
				return nil
			}
			run, err := promptYesNo(cmd.InOrStdin(), out, messages.InitRunWizardPrompt, true)
			if err != nil {
				return err
			}
			if !run {
				return nil
			}
			return runWizard(root)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, messages.InitFlagForce)
	return cmd
}

// seedFile writes template content to path. An existing regular file is an
// error unless overwrite is set; anything that is not a regular file is
// always an error.
func seedFile(out io.Writer, path string, content string, overwrite bool) error {
	info, err := os.Lstat(path)
	switch {
	case err == nil && !info.Mode().IsRegular():
		return fmt.Errorf(messages.InitPathNotRegularFmt, path)
	case err == nil && !overwrite:
		return fmt.Errorf(messages.InitEnvExistsFmt, path)
	case err != nil && !errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf(messages.InitStatPathErrFmt, path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		return fmt.Errorf(messages.InitWriteFileErrFmt, path, err)
	}
	_, _ = fmt.Fprintf(out, messages.InitWroteFileFmt, path)
	return nil
}

// promptYesNo asks a yes/no question and returns the user's choice or an error.
// defaultYes controls the result when the user provides an empty response.
func promptYesNo(in io.Reader, out io.Writer, prompt string, defaultYes bool) (bool, error) {
	reader := bufio.NewReader(in)
	for {
		if defaultYes {
			if _, err := fmt.Fprintf(out, messages.PromptYesDefaultFmt, prompt); err != nil {
				return false, err
			}
		} else {
			if _, err := fmt.Fprintf(out, messages.PromptNoDefaultFmt, prompt); err != nil {
				return false, err
			}
		}
		line, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return false, err
		}
		response := strings.TrimSpace(line)
		if response == "" {
			if errors.Is(err, io.EOF) {
				return false, nil
			}
			if err == nil {
				return defaultYes, nil
			}
		}
		switch strings.ToLower(response) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		if errors.Is(err, io.EOF) {
			return false, fmt.Errorf(messages.PromptInvalidResponse, response)
		}
		if _, err := fmt.Fprintln(out, messages.PromptRetryYesNo); err != nil {
			return false, err
		}
	}
}
