package python

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/Masterminds/semver/v3"
)

type fakeSystem struct {
	paths  map[string]string
	output string
	outErr error
	probed []string
}

func (f *fakeSystem) LookPath(name string) (string, error) {
	if path, ok := f.paths[name]; ok {
		return path, nil
	}
	return "", fmt.Errorf("%s: not found", name)
}

func (f *fakeSystem) CombinedOutput(_ context.Context, name string, args ...string) ([]byte, error) {
	f.probed = append(f.probed, name)
	return []byte(f.output), f.outErr
}

func TestResolvePreferredWins(t *testing.T) {
	sys := &fakeSystem{paths: map[string]string{
		"python3":         "/usr/bin/python3",
		"/opt/py/python3": "/opt/py/python3",
	}}

	got, err := Resolve(sys, "/opt/py/python3")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got != "/opt/py/python3" {
		t.Fatalf("expected preferred interpreter, got %s", got)
	}
}

func TestResolvePreferredMissingFails(t *testing.T) {
	sys := &fakeSystem{paths: map[string]string{"python3": "/usr/bin/python3"}}

	if _, err := Resolve(sys, "/nonexistent/python"); err == nil {
		t.Fatal("expected error for missing preferred interpreter")
	}
}

func TestResolveCandidateOrder(t *testing.T) {
	sys := &fakeSystem{paths: map[string]string{
		"python": "/usr/bin/python",
		"py":     "/usr/bin/py",
	}}

	got, err := Resolve(sys, "")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got != "/usr/bin/python" {
		t.Fatalf("expected python before py, got %s", got)
	}
}

func TestResolveNothingFound(t *testing.T) {
	sys := &fakeSystem{}

	if _, err := Resolve(sys, ""); err == nil {
		t.Fatal("expected error when no interpreter is on PATH")
	}
}

func TestVersionParsesOutput(t *testing.T) {
	cases := []struct {
		output string
		want   string
	}{
		{output: "Python 3.11.4\n", want: "3.11.4"},
		{output: "Python 3.9\n", want: "3.9.0"},
		{output: "Python 3.13.0rc1\n", want: "3.13.0"},
	}
	for _, tc := range cases {
		sys := &fakeSystem{output: tc.output}
		v, err := Version(context.Background(), sys, "python3")
		if err != nil {
			t.Fatalf("Version(%q): %v", tc.output, err)
		}
		if v.String() != tc.want {
			t.Fatalf("Version(%q) = %s, want %s", tc.output, v.String(), tc.want)
		}
	}
}

func TestVersionRejectsGarbage(t *testing.T) {
	sys := &fakeSystem{output: "not python\n"}
	if _, err := Version(context.Background(), sys, "python3"); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestVersionProbeFailure(t *testing.T) {
	sys := &fakeSystem{outErr: errors.New("exec format error")}
	if _, err := Version(context.Background(), sys, "python3"); err == nil {
		t.Fatal("expected probe error")
	}
}

func TestCheckMinimum(t *testing.T) {
	minimum := semver.MustParse("3.9")

	sys := &fakeSystem{output: "Python 3.11.4"}
	v, err := CheckMinimum(context.Background(), sys, "python3", minimum)
	if err != nil {
		t.Fatalf("CheckMinimum: %v", err)
	}
	if v.String() != "3.11.4" {
		t.Fatalf("unexpected version %s", v)
	}

	sys = &fakeSystem{output: "Python 3.8.10"}
	v, err = CheckMinimum(context.Background(), sys, "python3", minimum)
	if err == nil {
		t.Fatal("expected error for too-old interpreter")
	}
	if v == nil || v.String() != "3.8.10" {
		t.Fatalf("expected parsed version alongside error, got %v", v)
	}
}
