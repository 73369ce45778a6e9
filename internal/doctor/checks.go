package doctor

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/mitchellh/go-homedir"

	"github.com/seahorse-inn/seahorse-setup/internal/config"
	"github.com/seahorse-inn/seahorse-setup/internal/envfile"
	"github.com/seahorse-inn/seahorse-setup/internal/messages"
	"github.com/seahorse-inn/seahorse-setup/internal/python"
)

// RequiredEnvKeys are the .env keys the agent refuses to start without.
var RequiredEnvKeys = []string{
	"TWILIO_ACCOUNT_SID",
	"TWILIO_AUTH_TOKEN",
	"TWILIO_PHONE_NUMBER",
	"OPENAI_API_KEY",
}

// RecommendedEnvKeys enable owner escalation; the agent runs without them.
var RecommendedEnvKeys = []string{
	"OWNER_PHONE",
	"OWNER_EMAIL",
}

// ModelDir is the project-relative vosk model directory the agent loads.
const ModelDir = "model"

// EnvBrowsersPath is Playwright's own cache override variable.
const EnvBrowsersPath = "PLAYWRIGHT_BROWSERS_PATH"

var homedirDirFunc = homedir.Dir

// CheckPython verifies an interpreter is resolvable and new enough.
// It returns the resolved interpreter path, or "" when unusable, so later
// checks can probe through the same binary.
func CheckPython(ctx context.Context, sys python.System, cfg config.Config) ([]Result, string) {
	interpreter, err := python.Resolve(sys, cfg.Python.Interpreter)
	if err != nil {
		return []Result{{
			Status:         StatusFail,
			CheckName:      messages.DoctorCheckNamePython,
			Message:        messages.DoctorPythonMissing,
			Recommendation: messages.DoctorPythonRecommend,
		}}, ""
	}

	v, err := python.CheckMinimum(ctx, sys, interpreter, cfg.MinimumPython())
	if err != nil {
		if v != nil {
			return []Result{{
				Status:         StatusFail,
				CheckName:      messages.DoctorCheckNamePython,
				Message:        fmt.Sprintf(messages.DoctorPythonTooOldFmt, v.String(), cfg.MinimumPython().String()),
				Recommendation: messages.DoctorPythonUpgradeRec,
			}}, interpreter
		}
		return []Result{{
			Status:         StatusFail,
			CheckName:      messages.DoctorCheckNamePython,
			Message:        fmt.Sprintf(messages.DoctorPythonProbeFmt, err),
			Recommendation: messages.DoctorPythonRecommend,
		}}, ""
	}

	return []Result{{
		Status:    StatusOK,
		CheckName: messages.DoctorCheckNamePython,
		Message:   fmt.Sprintf(messages.DoctorPythonOKFmt, interpreter, v.String()),
	}}, interpreter
}

// CheckPip verifies pip works through the resolved interpreter.
func CheckPip(ctx context.Context, sys python.System, interpreter string) []Result {
	out, err := sys.CombinedOutput(ctx, interpreter, "-m", "pip", "--version")
	if err != nil {
		return []Result{{
			Status:         StatusFail,
			CheckName:      messages.DoctorCheckNamePip,
			Message:        fmt.Sprintf(messages.DoctorPipFailedFmt, err),
			Recommendation: messages.DoctorPipRecommend,
		}}
	}
	return []Result{{
		Status:    StatusOK,
		CheckName: messages.DoctorCheckNamePip,
		Message:   fmt.Sprintf(messages.DoctorPipOKFmt, strings.TrimSpace(string(out))),
	}}
}

// CheckConfig reports whether setup.toml loads. Absence is OK; defaults apply.
func CheckConfig(root string) ([]Result, config.Config) {
	cfg, err := config.Load(root)
	if err != nil {
		return []Result{{
			Status:         StatusFail,
			CheckName:      messages.DoctorCheckNameConfig,
			Message:        fmt.Sprintf(messages.DoctorConfigLoadFailedFmt, err),
			Recommendation: messages.DoctorConfigRecommend,
		}}, config.Default()
	}

	message := messages.DoctorConfigLoaded
	if _, statErr := os.Stat(config.Path(root)); errors.Is(statErr, fs.ErrNotExist) {
		message = messages.DoctorConfigDefaults
	}
	return []Result{{
		Status:    StatusOK,
		CheckName: messages.DoctorCheckNameConfig,
		Message:   message,
	}}, cfg
}

// CheckEnv verifies .env exists and the agent's credentials are filled in.
func CheckEnv(root string) []Result {
	envPath := filepath.Join(root, ".env")
	data, err := os.ReadFile(envPath)
	if err != nil {
		return []Result{{
			Status:         StatusFail,
			CheckName:      messages.DoctorCheckNameEnv,
			Message:        messages.DoctorEnvMissing,
			Recommendation: messages.DoctorEnvMissingRec,
		}}
	}
	env, err := envfile.Parse(string(data))
	if err != nil {
		return []Result{{
			Status:         StatusFail,
			CheckName:      messages.DoctorCheckNameEnv,
			Message:        fmt.Sprintf(messages.DoctorEnvUnreadableFmt, err),
			Recommendation: messages.DoctorEnvMissingRec,
		}}
	}

	var results []Result
	for _, key := range RequiredEnvKeys {
		results = append(results, envKeyResult(env, key, StatusFail, messages.DoctorEnvRequiredRec))
	}
	for _, key := range RecommendedEnvKeys {
		results = append(results, envKeyResult(env, key, StatusWarn, messages.DoctorEnvRecommendedRec))
	}
	return results
}

func envKeyResult(env map[string]string, key string, missingStatus Status, recommendation string) Result {
	if strings.TrimSpace(env[key]) == "" {
		return Result{
			Status:         missingStatus,
			CheckName:      messages.DoctorCheckNameEnv,
			Message:        fmt.Sprintf(messages.DoctorEnvKeyMissingFmt, key),
			Recommendation: recommendation,
		}
	}
	return Result{
		Status:    StatusOK,
		CheckName: messages.DoctorCheckNameEnv,
		Message:   fmt.Sprintf(messages.DoctorEnvKeySetFmt, key),
	}
}

// CheckSpeechModel reports whether the vosk model directory exists. The model
// is downloaded separately; pip never provides it.
func CheckSpeechModel(root string) []Result {
	path := filepath.Join(root, ModelDir)
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return []Result{{
			Status:         StatusWarn,
			CheckName:      messages.DoctorCheckNameModel,
			Message:        messages.DoctorModelMissing,
			Recommendation: messages.DoctorModelRecommend,
		}}
	}
	return []Result{{
		Status:    StatusOK,
		CheckName: messages.DoctorCheckNameModel,
		Message:   fmt.Sprintf(messages.DoctorModelOKFmt, path),
	}}
}

// CheckBrowserCache reports whether Playwright's browser cache exists for
// this OS, honoring PLAYWRIGHT_BROWSERS_PATH.
func CheckBrowserCache() []Result {
	path, err := browserCachePath()
	if err != nil {
		return []Result{{
			Status:         StatusWarn,
			CheckName:      messages.DoctorCheckNameBrowsers,
			Message:        fmt.Sprintf(messages.DoctorBrowsersHomeFmt, err),
			Recommendation: messages.DoctorBrowsersRec,
		}}
	}
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return []Result{{
			Status:         StatusWarn,
			CheckName:      messages.DoctorCheckNameBrowsers,
			Message:        messages.DoctorBrowsersMissing,
			Recommendation: messages.DoctorBrowsersRec,
		}}
	}
	return []Result{{
		Status:    StatusOK,
		CheckName: messages.DoctorCheckNameBrowsers,
		Message:   fmt.Sprintf(messages.DoctorBrowsersOKFmt, path),
	}}
}

// browserCachePath returns Playwright's per-OS default browser cache
// location, or the PLAYWRIGHT_BROWSERS_PATH override when set.
func browserCachePath() (string, error) {
	if override := strings.TrimSpace(os.Getenv(EnvBrowsersPath)); override != "" {
		return override, nil
	}
	home, err := homedirDirFunc()
	if err != nil {
		return "", err
	}
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Caches", "ms-playwright"), nil
	case "windows":
		return filepath.Join(home, "AppData", "Local", "ms-playwright"), nil
	default:
		return filepath.Join(home, ".cache", "ms-playwright"), nil
	}
}
