package messages

// Doctor messages: check names, result lines, and recommendations.
const (
	DoctorHealthCheckFmt       = "Checking environment for the Seahorse voice agent in %s\n\n"
	DoctorResultLineFmt        = "[%s] %s: %s\n"
	DoctorStatusOKLabel        = "OK"
	DoctorStatusWarnLabel      = "WARN"
	DoctorStatusFailLabel      = "FAIL"
	DoctorRecommendationPrefix = "       -> "
	DoctorRecommendationIndent = "          "
	DoctorFailureSummary       = "\nEnvironment check failed. Fix the items above and re-run."
	DoctorFailureError         = "doctor found problems"
	DoctorSuccessSummary       = "\nEnvironment looks good."

	DoctorCheckNamePython   = "Python"
	DoctorCheckNamePip      = "pip"
	DoctorCheckNameConfig   = "Config"
	DoctorCheckNameEnv      = "Env"
	DoctorCheckNameModel    = "Speech model"
	DoctorCheckNameBrowsers = "Browsers"
	DoctorCheckNameUpdate   = "Update"

	DoctorPythonOKFmt         = "%s is Python %s"
	DoctorPythonMissing       = "no Python interpreter found on PATH"
	DoctorPythonRecommend     = "Install Python 3 from python.org or your package manager."
	DoctorPythonProbeFmt      = "could not determine Python version: %v"
	DoctorPythonTooOldFmt     = "Python %s is older than the minimum supported %s"
	DoctorPythonUpgradeRec    = "Upgrade Python, or point python.interpreter in setup.toml at a newer build."
	DoctorPipOKFmt            = "%s"
	DoctorPipFailedFmt        = "pip is not usable: %v"
	DoctorPipRecommend        = "Reinstall pip with: python -m ensurepip --upgrade"
	DoctorConfigLoaded        = "setup.toml loaded"
	DoctorConfigDefaults      = "no setup.toml; using defaults"
	DoctorConfigLoadFailedFmt = "failed to load setup.toml: %v"
	DoctorConfigRecommend     = "Fix the TOML syntax, or delete setup.toml to fall back to defaults."

	DoctorEnvMissing        = ".env not found"
	DoctorEnvMissingRec     = "Run 'seahorse-setup init' to seed a template, then 'seahorse-setup wizard' to fill it in."
	DoctorEnvUnreadableFmt  = ".env could not be parsed: %v"
	DoctorEnvKeySetFmt      = "%s is set"
	DoctorEnvKeyMissingFmt  = "%s is missing or empty"
	DoctorEnvRequiredRec    = "The agent refuses to start without this; set it in .env or run the wizard."
	DoctorEnvRecommendedRec = "Optional, but owner notifications are disabled without it."

	DoctorModelOKFmt     = "vosk model directory present at %s"
	DoctorModelMissing   = "vosk model directory not found"
	DoctorModelRecommend = "Download a model from alphacephei.com/vosk/models and unpack it as ./model"

	DoctorBrowsersOKFmt   = "Playwright browser cache present at %s"
	DoctorBrowsersMissing = "Playwright browser cache not found"
	DoctorBrowsersRec     = "Run 'seahorse-setup install' to download browser binaries."
	DoctorBrowsersHomeFmt = "could not resolve the browser cache location: %v"

	DoctorUpdateSkippedFmt          = "update check skipped (%s is set)"
	DoctorUpdateSkippedRecommendFmt = "Unset %s to re-enable update checks."
	DoctorUpdateRateLimited         = "update check rate-limited by GitHub; try again later"
	DoctorUpdateFailedFmt           = "update check failed: %v"
	DoctorUpdateFailedRecommend     = "Check network connectivity to api.github.com."
	DoctorUpdateDevBuildFmt         = "running a dev build; latest release is %s"
	DoctorUpdateDevBuildRecommend   = "Install a released build for update checks to apply."
	DoctorUpdateAvailableFmt        = "update available: %s (current %s)"
	DoctorUpdateAvailableRecommend  = "Download the latest release from github.com/seahorse-inn/seahorse-setup/releases."
	DoctorUpToDateFmt               = "up to date (%s)"
)
