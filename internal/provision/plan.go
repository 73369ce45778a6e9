// Package provision runs the ordered installation steps that set up the
// voice agent's Python environment.
package provision

import (
	"fmt"

	"github.com/seahorse-inn/seahorse-setup/internal/messages"
)

// Packages is the ordered list of Python distributions the voice agent
// imports. Order and spelling match the agent's requirements exactly: audio
// capture (pyaudio), speech recognition (vosk), speech synthesis (pyttsx3,
// gTTS), .env loading (python-dotenv), Asterisk AMI (asterisk-ami), browser
// automation (playwright, selenium), HTTP (requests), the webhook server
// (flask), telephony (twilio), and validation (pydantic).
var Packages = []string{
	"pyaudio",
	"vosk",
	"pyttsx3",
	"python-dotenv",
	"asterisk-ami",
	"playwright",
	"selenium",
	"gTTS",
	"requests",
	"flask",
	"twilio",
	"pydantic",
}

// StepKind classifies a step for reporting.
type StepKind int

const (
	// StepPipUpgrade is the pip self-upgrade that precedes every install.
	StepPipUpgrade StepKind = iota
	// StepPackage installs one Python package.
	StepPackage
	// StepBrowsers downloads Playwright browser binaries.
	StepBrowsers
)

// Step is one interpreter invocation in the provisioning sequence.
type Step struct {
	Kind StepKind
	// Name is the human-readable label shown while the step runs.
	Name string
	// Args are passed to the Python interpreter.
	Args []string
}

// PlanOptions tunes the generated sequence.
type PlanOptions struct {
	// ExtraPackages are appended after the fixed package list.
	ExtraPackages []string
	// SkipBrowsers omits the Playwright browser download.
	SkipBrowsers bool
}

// Plan returns the ordered steps: pip self-upgrade first, then one install
// per package, then the browser download last. The sequence is deterministic;
// two calls with equal options produce identical plans.
func Plan(opts PlanOptions) []Step {
	steps := make([]Step, 0, len(Packages)+len(opts.ExtraPackages)+2)
	steps = append(steps, Step{
		Kind: StepPipUpgrade,
		Name: messages.ProvisionStepUpgradePip,
		Args: []string{"-m", "pip", "install", "--upgrade", "pip"},
	})
	for _, pkg := range Packages {
		steps = append(steps, packageStep(pkg))
	}
	for _, pkg := range opts.ExtraPackages {
		steps = append(steps, packageStep(pkg))
	}
	if !opts.SkipBrowsers {
		steps = append(steps, Step{
			Kind: StepBrowsers,
			Name: messages.ProvisionStepBrowsers,
			Args: []string{"-m", "playwright", "install"},
		})
	}
	return steps
}

func packageStep(pkg string) Step {
	return Step{
		Kind: StepPackage,
		Name: fmt.Sprintf(messages.ProvisionStepInstallFmt, pkg),
		Args: []string{"-m", "pip", "install", pkg},
	}
}
