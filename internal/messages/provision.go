package messages

// Provisioner messages: step labels, status lines, and errors for the
// install run, interpreter resolution, and configuration loading.
const (
	ProvisionStepUpgradePip  = "upgrade pip"
	ProvisionStepInstallFmt  = "install %s"
	ProvisionStepBrowsers    = "install Playwright browsers"
	ProvisionProgressLabel   = "Provisioning"
	ProvisionRunningStepFmt  = "==> %s\n"
	ProvisionStepOKLabel     = "ok"
	ProvisionStepFailedLabel = "failed"
	ProvisionStepStatusFmt   = "    %s: %s\n"

	ProvisionPythonRequired = "a Python interpreter is required"
	ProvisionSystemRequired = "provision: System is required"

	ProvisionFailureSummaryHeader = "Some steps failed:"
	ProvisionFailureLineFmt       = "  - %s: %v\n"
	ProvisionFailureOutputFmt     = "    %s\n"

	// ProvisionComplete is printed unconditionally as the run's final output.
	ProvisionComplete = "Setup complete! Start the agent with: python main.py"

	PythonNotFound          = "no Python interpreter found on PATH (tried python3, python, py); install Python 3 or pass --python"
	PythonVersionProbeFmt   = "probe %s version: %w"
	PythonVersionParseFmt   = "unexpected output from %s --version: %q"
	PythonVersionInvalidFmt = "parse Python version %q: %w"
	PythonTooOldFmt         = "Python %s is older than the minimum supported %s"

	ConfigReadFailedFmt    = "read %s: %w"
	ConfigParseFailedFmt   = "parse %s: %w"
	ConfigBadMinVersionFmt = "setup.toml: invalid python.minimum_version %q: %w"

	EnvfileLineErrorFmt            = "line %d: %w"
	EnvfileReadFailedFmt           = "read env content: %w"
	EnvfileExpectedKeyValue        = "expected KEY=value"
	EnvfileUnterminatedQuotedValue = "unterminated quoted value"
	EnvfileInvalidQuotedSuffix     = "unexpected content after quoted value"
)
