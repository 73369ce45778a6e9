// Package wizard implements the interactive credentials wizard. It collects
// the Twilio and OpenAI settings the voice agent reads from .env and patches
// the file in place, preserving comments and formatting.
package wizard

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/aymanbagabas/go-udiff"
	"github.com/fatih/color"

	"github.com/seahorse-inn/seahorse-setup/internal/envfile"
	"github.com/seahorse-inn/seahorse-setup/internal/messages"
)

// field is one collected credential.
type field struct {
	Key    string
	Prompt string
	Secret bool
}

// fields are asked in the order the agent's own configuration lists them.
var fields = []field{
	{Key: "TWILIO_ACCOUNT_SID", Prompt: messages.WizardPromptTwilioSID},
	{Key: "TWILIO_AUTH_TOKEN", Prompt: messages.WizardPromptTwilioToken, Secret: true},
	{Key: "TWILIO_PHONE_NUMBER", Prompt: messages.WizardPromptTwilioPhone},
	{Key: "OPENAI_API_KEY", Prompt: messages.WizardPromptOpenAIKey, Secret: true},
	{Key: "OWNER_PHONE", Prompt: messages.WizardPromptOwnerPhone},
	{Key: "OWNER_EMAIL", Prompt: messages.WizardPromptOwnerEmail},
}

// Run starts the interactive wizard against root/.env.
func Run(root string, ui UI) error {
	return RunWithWriter(root, ui, os.Stdout)
}

// RunWithWriter starts the wizard and writes user-facing output to out.
// Cancelling any prompt exits without touching .env.
func RunWithWriter(root string, ui UI, out io.Writer) error {
	if out == nil {
		out = os.Stdout
	}
	envPath := filepath.Join(root, ".env")

	if err := ui.Note(messages.WizardIntroTitle, messages.WizardIntroBody); err != nil {
		return exitOnCancel(err, out)
	}

	values, err := collect(ui)
	if err != nil {
		return exitOnCancel(err, out)
	}
	if len(values) == 0 {
		_, _ = fmt.Fprintln(out, messages.WizardNoChanges)
		return nil
	}

	current, err := readEnv(envPath)
	if err != nil {
		return err
	}
	patched := envfile.Patch(current, values)
	if patched == current {
		_, _ = fmt.Fprintln(out, messages.WizardNoChanges)
		return nil
	}

	diff := strings.TrimSpace(udiff.Unified(".env", ".env (updated)", withTrailingNewline(current), withTrailingNewline(patched)))
	_, _ = fmt.Fprintln(out, messages.WizardDiffHeader)
	printDiff(out, diff)

	confirmed := true
	if err := ui.Confirm(messages.WizardConfirmWrite, &confirmed); err != nil {
		return exitOnCancel(err, out)
	}
	if !confirmed {
		_, _ = fmt.Fprintln(out, messages.WizardExitWithoutChanges)
		return nil
	}

	if err := os.WriteFile(envPath, []byte(withTrailingNewline(patched)), 0o600); err != nil {
		return fmt.Errorf(messages.WizardWriteEnvErrFmt, envPath, err)
	}
	_, _ = fmt.Fprintf(out, messages.WizardWroteEnvFmt, envPath)
	return nil
}

// collect prompts for every field and returns the non-empty answers.
func collect(ui UI) (map[string]string, error) {
	values := make(map[string]string)
	for _, f := range fields {
		var value string
		var err error
		if f.Secret {
			err = ui.SecretInput(f.Prompt, &value)
		} else {
			err = ui.Input(f.Prompt, &value)
		}
		if err != nil {
			return nil, err
		}
		if trimmed := strings.TrimSpace(value); trimmed != "" {
			values[f.Key] = trimmed
		}
	}
	return values, nil
}

// readEnv reads the current .env content; a missing file is empty content.
func readEnv(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf(messages.WizardReadEnvErrFmt, path, err)
	}
	return string(data), nil
}

// exitOnCancel turns a cancellation into a clean no-change exit.
func exitOnCancel(err error, out io.Writer) error {
	if errors.Is(err, ErrCancelled) {
		_, _ = fmt.Fprintln(out, messages.WizardExitWithoutChanges)
		return nil
	}
	return err
}

// printDiff colors added and removed lines like git does.
func printDiff(out io.Writer, diff string) {
	for _, line := range strings.Split(diff, "\n") {
		switch {
		case strings.HasPrefix(line, "+") && !strings.HasPrefix(line, "+++"):
			_, _ = fmt.Fprintln(out, color.GreenString("%s", line))
		case strings.HasPrefix(line, "-") && !strings.HasPrefix(line, "---"):
			_, _ = fmt.Fprintln(out, color.RedString("%s", line))
		default:
			_, _ = fmt.Fprintln(out, line)
		}
	}
	_, _ = fmt.Fprintln(out)
}

func withTrailingNewline(s string) string {
	if s == "" || strings.HasSuffix(s, "\n") {
		return s
	}
	return s + "\n"
}
