package doctor

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/seahorse-inn/seahorse-setup/internal/config"
)

type fakePythonSystem struct {
	paths  map[string]string
	output map[string]string
	outErr error
}

func (f *fakePythonSystem) LookPath(name string) (string, error) {
	if path, ok := f.paths[name]; ok {
		return path, nil
	}
	return "", fmt.Errorf("%s: not found", name)
}

func (f *fakePythonSystem) CombinedOutput(_ context.Context, name string, args ...string) ([]byte, error) {
	if f.outErr != nil {
		return nil, f.outErr
	}
	key := strings.Join(append([]string{name}, args...), " ")
	if out, ok := f.output[key]; ok {
		return []byte(out), nil
	}
	return nil, fmt.Errorf("unexpected command %s", key)
}

func TestCheckPythonOK(t *testing.T) {
	sys := &fakePythonSystem{
		paths:  map[string]string{"python3": "/usr/bin/python3"},
		output: map[string]string{"/usr/bin/python3 --version": "Python 3.11.4\n"},
	}

	results, interpreter := CheckPython(context.Background(), sys, config.Default())
	if len(results) != 1 || results[0].Status != StatusOK {
		t.Fatalf("unexpected results: %+v", results)
	}
	if interpreter != "/usr/bin/python3" {
		t.Fatalf("unexpected interpreter %q", interpreter)
	}
	if !strings.Contains(results[0].Message, "3.11.4") {
		t.Fatalf("expected version in message, got %q", results[0].Message)
	}
}

func TestCheckPythonMissing(t *testing.T) {
	results, interpreter := CheckPython(context.Background(), &fakePythonSystem{}, config.Default())
	if len(results) != 1 || results[0].Status != StatusFail {
		t.Fatalf("unexpected results: %+v", results)
	}
	if interpreter != "" {
		t.Fatalf("expected empty interpreter, got %q", interpreter)
	}
	if results[0].Recommendation == "" {
		t.Fatal("expected a recommendation")
	}
}

func TestCheckPythonTooOld(t *testing.T) {
	sys := &fakePythonSystem{
		paths:  map[string]string{"python3": "/usr/bin/python3"},
		output: map[string]string{"/usr/bin/python3 --version": "Python 3.8.10\n"},
	}

	results, interpreter := CheckPython(context.Background(), sys, config.Default())
	if len(results) != 1 || results[0].Status != StatusFail {
		t.Fatalf("unexpected results: %+v", results)
	}
	if interpreter != "/usr/bin/python3" {
		t.Fatalf("interpreter should still be reported, got %q", interpreter)
	}
	if !strings.Contains(results[0].Message, "3.8.10") {
		t.Fatalf("expected found version in message, got %q", results[0].Message)
	}
}

func TestCheckPip(t *testing.T) {
	sys := &fakePythonSystem{
		output: map[string]string{"/usr/bin/python3 -m pip --version": "pip 24.0 from ...\n"},
	}
	results := CheckPip(context.Background(), sys, "/usr/bin/python3")
	if len(results) != 1 || results[0].Status != StatusOK {
		t.Fatalf("unexpected results: %+v", results)
	}

	sys = &fakePythonSystem{outErr: errors.New("No module named pip")}
	results = CheckPip(context.Background(), sys, "/usr/bin/python3")
	if results[0].Status != StatusFail {
		t.Fatalf("expected FAIL, got %+v", results[0])
	}
}

func TestCheckConfig(t *testing.T) {
	root := t.TempDir()
	results, cfg := CheckConfig(root)
	if results[0].Status != StatusOK {
		t.Fatalf("missing setup.toml must be OK, got %+v", results[0])
	}
	if cfg.Python.MinimumVersion != config.DefaultMinimumPython {
		t.Fatalf("expected defaults, got %+v", cfg)
	}

	dir := filepath.Join(root, config.ConfigDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, config.ConfigFile), []byte("[python\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	results, _ = CheckConfig(root)
	if results[0].Status != StatusFail {
		t.Fatalf("bad TOML must FAIL, got %+v", results[0])
	}
}

func TestCheckEnvMissingFile(t *testing.T) {
	results := CheckEnv(t.TempDir())
	if len(results) != 1 || results[0].Status != StatusFail {
		t.Fatalf("unexpected results: %+v", results)
	}
}

func TestCheckEnvKeys(t *testing.T) {
	root := t.TempDir()
	content := "TWILIO_ACCOUNT_SID=AC123\nTWILIO_AUTH_TOKEN=tok\nTWILIO_PHONE_NUMBER=+12524415242\nOPENAI_API_KEY=\nOWNER_PHONE=+1\n"
	if err := os.WriteFile(filepath.Join(root, ".env"), []byte(content), 0o600); err != nil {
		t.Fatalf("write .env: %v", err)
	}

	results := CheckEnv(root)
	if len(results) != len(RequiredEnvKeys)+len(RecommendedEnvKeys) {
		t.Fatalf("expected one result per key, got %d", len(results))
	}

	byMessage := func(substr string) *Result {
		for i := range results {
			if strings.Contains(results[i].Message, substr) {
				return &results[i]
			}
		}
		return nil
	}

	if r := byMessage("TWILIO_ACCOUNT_SID"); r == nil || r.Status != StatusOK {
		t.Fatalf("TWILIO_ACCOUNT_SID: %+v", r)
	}
	if r := byMessage("OPENAI_API_KEY"); r == nil || r.Status != StatusFail {
		t.Fatalf("empty OPENAI_API_KEY must FAIL: %+v", r)
	}
	if r := byMessage("OWNER_EMAIL"); r == nil || r.Status != StatusWarn {
		t.Fatalf("missing OWNER_EMAIL must WARN: %+v", r)
	}
	if r := byMessage("OWNER_PHONE"); r == nil || r.Status != StatusOK {
		t.Fatalf("OWNER_PHONE: %+v", r)
	}
}

func TestCheckSpeechModel(t *testing.T) {
	root := t.TempDir()
	results := CheckSpeechModel(root)
	if results[0].Status != StatusWarn {
		t.Fatalf("missing model dir must WARN, got %+v", results[0])
	}

	if err := os.MkdirAll(filepath.Join(root, ModelDir), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	results = CheckSpeechModel(root)
	if results[0].Status != StatusOK {
		t.Fatalf("expected OK, got %+v", results[0])
	}
}

func TestCheckBrowserCacheOverride(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(EnvBrowsersPath, dir)

	results := CheckBrowserCache()
	if results[0].Status != StatusOK {
		t.Fatalf("expected OK for existing override dir, got %+v", results[0])
	}

	t.Setenv(EnvBrowsersPath, filepath.Join(dir, "missing"))
	results = CheckBrowserCache()
	if results[0].Status != StatusWarn {
		t.Fatalf("expected WARN for missing cache, got %+v", results[0])
	}
}

func TestCheckBrowserCacheHomeFailure(t *testing.T) {
	t.Setenv(EnvBrowsersPath, "")
	orig := homedirDirFunc
	homedirDirFunc = func() (string, error) { return "", errors.New("no home") }
	t.Cleanup(func() { homedirDirFunc = orig })

	results := CheckBrowserCache()
	if results[0].Status != StatusWarn {
		t.Fatalf("expected WARN when home unresolvable, got %+v", results[0])
	}
}
