package wizard

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/seahorse-inn/seahorse-setup/internal/messages"
	"github.com/seahorse-inn/seahorse-setup/internal/terminal"
)

// UI defines the interaction methods the wizard needs.
type UI interface {
	Input(title string, value *string) error
	SecretInput(title string, value *string) error
	Confirm(title string, value *bool) error
	Note(title string, body string) error
}

// ErrCancelled reports that the user backed out of the wizard.
var ErrCancelled = errors.New("wizard cancelled")

// HuhUI implements UI using charmbracelet/huh.
type HuhUI struct {
	isTerminal func() bool
}

var runFormFunc = func(form *huh.Form) error { return form.Run() }

// NewHuhUI creates a HuhUI using the default terminal check.
func NewHuhUI() *HuhUI {
	return &HuhUI{isTerminal: terminal.IsInteractive}
}

// ensureInteractive returns an error when the UI is invoked without a terminal.
func (ui *HuhUI) ensureInteractive() error {
	checker := ui.isTerminal
	if checker == nil {
		checker = terminal.IsInteractive
	}
	if checker() {
		return nil
	}
	return fmt.Errorf(messages.WizardRequiresTerminal)
}

// wizardKeyMap maps both Esc and Ctrl+C to form abort; the wizard treats any
// abort as cancellation and leaves .env untouched.
func wizardKeyMap() *huh.KeyMap {
	km := huh.NewDefaultKeyMap()
	km.Quit = key.NewBinding(key.WithKeys("ctrl+c", "esc"), key.WithHelp("esc", "cancel"))
	return km
}

// runForm validates terminal availability and runs the provided form.
func (ui *HuhUI) runForm(form *huh.Form) error {
	if err := ui.ensureInteractive(); err != nil {
		return err
	}
	form.WithKeyMap(wizardKeyMap())
	form.WithProgramOptions(tea.WithOutput(os.Stderr))

	err := runFormFunc(form)
	if errors.Is(err, huh.ErrUserAborted) {
		return ErrCancelled
	}
	return err
}

// Input renders a single-line text prompt.
func (ui *HuhUI) Input(title string, value *string) error {
	return ui.runForm(huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(title).
				Value(value),
		),
	))
}

// SecretInput renders a masked text prompt for credentials.
func (ui *HuhUI) SecretInput(title string, value *string) error {
	return ui.runForm(huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(title).
				EchoMode(huh.EchoModePassword).
				Value(value),
		),
	))
}

// Confirm renders a yes/no prompt.
func (ui *HuhUI) Confirm(title string, value *bool) error {
	return ui.runForm(huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Value(value),
		),
	))
}

// Note renders informational text the user acknowledges.
func (ui *HuhUI) Note(title string, body string) error {
	return ui.runForm(huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title(title).
				Description(body),
		),
	))
}
