package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func withInitSeams(t *testing.T, root string, terminal bool) *[]string {
	t.Helper()

	origGetwd := getwd
	origTerm := isTerminal
	origWizard := runWizard

	var wizardRoots []string
	getwd = func() (string, error) { return root, nil }
	isTerminal = func() bool { return terminal }
	runWizard = func(root string) error {
		wizardRoots = append(wizardRoots, root)
		return nil
	}

	t.Cleanup(func() {
		getwd = origGetwd
		isTerminal = origTerm
		runWizard = origWizard
	})
	return &wizardRoots
}

func runInitWithInput(t *testing.T, input string, args ...string) (string, error) {
	t.Helper()
	var stdout bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(append([]string{"init"}, args...))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stdout)
	cmd.SetIn(strings.NewReader(input))
	err := cmd.Execute()
	return stdout.String(), err
}

func TestInitSeedsFiles(t *testing.T) {
	root := t.TempDir()
	withInitSeams(t, root, false)

	stdout, err := runInitWithInput(t, "")
	if err != nil {
		t.Fatalf("init: %v", err)
	}

	env, err := os.ReadFile(filepath.Join(root, ".env"))
	if err != nil {
		t.Fatalf("read .env: %v", err)
	}
	if !strings.Contains(string(env), "TWILIO_ACCOUNT_SID=") {
		t.Fatalf(".env template missing credential keys:\n%s", env)
	}

	toml, err := os.ReadFile(filepath.Join(root, ".seahorse", "setup.toml"))
	if err != nil {
		t.Fatalf("read setup.toml: %v", err)
	}
	if !strings.Contains(string(toml), "[python]") {
		t.Fatalf("setup.toml template missing python section:\n%s", toml)
	}
	if !strings.Contains(stdout, "Wrote") {
		t.Fatalf("expected write confirmations, got %q", stdout)
	}
}

func TestInitExistingEnvErrors(t *testing.T) {
	root := t.TempDir()
	withInitSeams(t, root, false)
	writeFile(t, root, ".env", "OPENAI_API_KEY=keep-me\n")

	_, err := runInitWithInput(t, "")
	if err == nil {
		t.Fatal("init must refuse to overwrite .env")
	}
	data, _ := os.ReadFile(filepath.Join(root, ".env"))
	if !strings.Contains(string(data), "keep-me") {
		t.Fatal(".env was clobbered")
	}
}

func TestInitForceOverwritesEnv(t *testing.T) {
	root := t.TempDir()
	withInitSeams(t, root, false)
	writeFile(t, root, ".env", "OPENAI_API_KEY=old\n")

	_, err := runInitWithInput(t, "", "--force")
	if err != nil {
		t.Fatalf("init --force: %v", err)
	}
	data, _ := os.ReadFile(filepath.Join(root, ".env"))
	if strings.Contains(string(data), "old") {
		t.Fatal("--force did not replace .env")
	}
}

func TestInitKeepsExistingSetupToml(t *testing.T) {
	root := t.TempDir()
	withInitSeams(t, root, false)
	writeFile(t, root, ".seahorse/setup.toml", "[packages]\nextra = [\"openai\"]\n")

	_, err := runInitWithInput(t, "", "--force")
	if err != nil {
		t.Fatalf("init: %v", err)
	}
	data, _ := os.ReadFile(filepath.Join(root, ".seahorse", "setup.toml"))
	if !strings.Contains(string(data), "openai") {
		t.Fatal("existing setup.toml was replaced")
	}
}

func TestInitOffersWizardOnTerminal(t *testing.T) {
	root := t.TempDir()
	wizardRoots := withInitSeams(t, root, true)

	_, err := runInitWithInput(t, "y\n")
	if err != nil {
		t.Fatalf("init: %v", err)
	}
	if len(*wizardRoots) != 1 || (*wizardRoots)[0] != root {
		t.Fatalf("wizard not launched for %q: %v", root, *wizardRoots)
	}
}

func TestInitWizardDeclined(t *testing.T) {
	root := t.TempDir()
	wizardRoots := withInitSeams(t, root, true)

	_, err := runInitWithInput(t, "n\n")
	if err != nil {
		t.Fatalf("init: %v", err)
	}
	if len(*wizardRoots) != 0 {
		t.Fatal("wizard must not run after a decline")
	}
}

func TestInitNonInteractiveSkipsWizardPrompt(t *testing.T) {
	root := t.TempDir()
	wizardRoots := withInitSeams(t, root, false)

	_, err := runInitWithInput(t, "")
	if err != nil {
		t.Fatalf("init: %v", err)
	}
	if len(*wizardRoots) != 0 {
		t.Fatal("wizard must not run without a terminal")
	}
}

func TestPromptYesNo(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		defaultYes bool
		want       bool
		wantErr    bool
	}{
		{name: "yes", input: "y\n", defaultYes: false, want: true},
		{name: "yes word", input: "yes\n", defaultYes: false, want: true},
		{name: "no", input: "n\n", defaultYes: true, want: false},
		{name: "empty takes default yes", input: "\n", defaultYes: true, want: true},
		{name: "empty takes default no", input: "\n", defaultYes: false, want: false},
		{name: "retry then answer", input: "maybe\ny\n", defaultYes: false, want: true},
		{name: "invalid at EOF", input: "maybe", defaultYes: false, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			got, err := promptYesNo(strings.NewReader(tt.input), &out, "Continue?", tt.defaultYes)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("promptYesNo: %v", err)
			}
			if got != tt.want {
				t.Fatalf("promptYesNo = %v, want %v", got, tt.want)
			}
		})
	}
}
