package messages

// Wizard messages: prompts, diff preview, and update-warning output.
const (
	WizardIntroTitle = "Seahorse voice agent credentials"
	WizardIntroBody  = "The agent reads its credentials from .env next to main.py.\nValues you leave blank are not written."

	WizardPromptTwilioSID   = "Twilio account SID"
	WizardPromptTwilioToken = "Twilio auth token"
	WizardPromptTwilioPhone = "Twilio phone number (E.164, e.g. +12524415242)"
	WizardPromptOpenAIKey   = "OpenAI API key"
	WizardPromptOwnerPhone  = "Owner phone for escalations (optional)"
	WizardPromptOwnerEmail  = "Owner email for escalations (optional)"

	WizardNoChanges          = "No changes to write."
	WizardExitWithoutChanges = "Exited without changes."
	WizardDiffHeader         = "The following .env changes will be written:"
	WizardConfirmWrite       = "Write these changes to .env?"
	WizardWroteEnvFmt        = "Updated %s\n"
	WizardReadEnvErrFmt      = "read %s: %w"
	WizardWriteEnvErrFmt     = "write %s: %w"

	// UpdateWarn* are emitted before an install run when a newer release exists.
	UpdateWarnCheckFailedFmt = "Warning: failed to check for updates: %v\n"
	UpdateWarnDevBuildFmt    = "Warning: running dev build; latest release is %s\n"
	UpdateWarnAvailableFmt   = "Warning: update available: %s (current %s)\n"

	UpdateCreateRequestErrFmt         = "create release request: %w"
	UpdateFetchLatestReleaseErrFmt    = "fetch latest release: %w"
	UpdateFetchLatestReleaseStatusFmt = "fetch latest release: unexpected status %s"
	UpdateDecodeLatestReleaseErrFmt   = "decode latest release: %w"
	UpdateLatestReleaseMissingTag     = "latest release has no tag"
	UpdateInvalidLatestReleaseTagFmt  = "invalid latest release tag %q: %w"
	UpdateInvalidCurrentVersionFmt    = "invalid current version %q: %w"

	VersionRequired   = "version is required"
	VersionInvalidFmt = "version %q must be in the form vX.Y.Z or X.Y.Z"
)
