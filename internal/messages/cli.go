package messages

// CLI messages for user-facing commands and prompts.
const (
	// RootUse is the CLI command name.
	RootUse = "seahorse-setup"
	// RootShort is the short description for the root command.
	RootShort = "Environment setup for the Seahorse Inn voice agent"
	RootLong  = "seahorse-setup provisions the Python environment the Seahorse Inn voice agent runs on:\nit upgrades pip, installs the agent's dependencies, and fetches Playwright browser binaries.\nRunning it without a subcommand performs the full installation."

	// VersionCommitFmt formats the commit hash for version display.
	VersionCommitFmt = "commit %s"
	VersionBuildFmt  = "built %s"
	VersionFullFmt   = "%s (%s)"
	VersionTemplate  = "{{.Version}}\n"

	// InstallUse is the install command name.
	InstallUse   = "install"
	InstallShort = "Install the voice agent's Python dependencies"
	InstallLong  = "Upgrade pip, install every Python package the voice agent imports, and download\nPlaywright browser binaries. Failed steps are reported but never stop the run."

	InstallFlagPython       = "Path to the Python interpreter to use"
	InstallFlagSkipBrowsers = "Skip downloading Playwright browser binaries"
	InstallFlagVerbose      = "Stream installer output instead of capturing it"
	InstallFlagYes          = "Do not pause for Enter after the run"

	// InitUse is the init command name.
	InitUse   = "init"
	InitShort = "Seed setup.toml and a .env template for the voice agent"

	InitFlagForce = "Overwrite an existing .env template"

	InitEnvExistsFmt      = "%s already exists; re-run with --force to overwrite it"
	InitWroteFileFmt      = "Wrote %s\n"
	InitRunWizardPrompt   = "Run the credentials wizard now? (recommended)"
	InitCreateDirErrFmt   = "create %s: %w"
	InitWriteFileErrFmt   = "write %s: %w"
	InitStatPathErrFmt    = "stat %s: %w"
	InitPathNotRegularFmt = "%s exists but is not a regular file"

	// WizardUse is the wizard command name.
	WizardUse              = "wizard"
	WizardShort            = "Interactive credentials wizard"
	WizardLong             = "Collect the Twilio and OpenAI credentials the voice agent reads from .env."
	WizardRequiresTerminal = "wizard requires an interactive terminal"

	// DoctorUse is the doctor command name.
	DoctorUse   = "doctor"
	DoctorShort = "Check this machine against the voice agent's requirements"

	// PromptYesDefaultFmt formats yes/no prompts with yes as default.
	PromptYesDefaultFmt   = "%s [Y/n]: "
	PromptNoDefaultFmt    = "%s [y/N]: "
	PromptInvalidResponse = "invalid response %q"
	PromptRetryYesNo      = "Please enter y or n."

	// PausePrompt is shown before the final blocking read on interactive runs.
	PausePrompt = "Press Enter to close..."
)
