// Package python locates a host Python interpreter and gates its version.
package python

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/Masterminds/semver/v3"

	"github.com/seahorse-inn/seahorse-setup/internal/messages"
)

// Candidates are the interpreter names tried on PATH, in order. "py" covers
// the Windows launcher.
var Candidates = []string{"python3", "python", "py"}

// System abstracts the process operations needed for interpreter discovery.
// This interface is package-local so tests can stub PATH lookup and version
// probing without shared global state.
type System interface {
	LookPath(name string) (string, error)
	CombinedOutput(ctx context.Context, name string, args ...string) ([]byte, error)
}

// RealSystem implements System using os/exec.
type RealSystem struct{}

// LookPath searches for an executable on PATH.
func (RealSystem) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}

// CombinedOutput runs the command and returns its combined stdout and stderr.
func (RealSystem) CombinedOutput(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).CombinedOutput()
}

// Resolve returns the interpreter to use. preferred (from --python or
// setup.toml) wins when set; otherwise the first candidate on PATH is used.
func Resolve(sys System, preferred string) (string, error) {
	if trimmed := strings.TrimSpace(preferred); trimmed != "" {
		path, err := sys.LookPath(trimmed)
		if err != nil {
			return "", fmt.Errorf("%s: %w", trimmed, err)
		}
		return path, nil
	}
	for _, candidate := range Candidates {
		if path, err := sys.LookPath(candidate); err == nil {
			return path, nil
		}
	}
	return "", fmt.Errorf(messages.PythonNotFound)
}

// Version probes `interpreter --version` and parses the reported version.
// Both stdout and stderr are consulted; Python 2 printed to stderr.
func Version(ctx context.Context, sys System, interpreter string) (*semver.Version, error) {
	out, err := sys.CombinedOutput(ctx, interpreter, "--version")
	if err != nil {
		return nil, fmt.Errorf(messages.PythonVersionProbeFmt, interpreter, err)
	}
	raw := strings.TrimSpace(string(out))
	fields := strings.Fields(raw)
	if len(fields) < 2 || !strings.EqualFold(fields[0], "Python") {
		return nil, fmt.Errorf(messages.PythonVersionParseFmt, interpreter, raw)
	}
	v, err := semver.NewVersion(normalizeVersion(fields[1]))
	if err != nil {
		return nil, fmt.Errorf(messages.PythonVersionInvalidFmt, fields[1], err)
	}
	return v, nil
}

// CheckMinimum verifies the interpreter meets the configured floor.
func CheckMinimum(ctx context.Context, sys System, interpreter string, minimum *semver.Version) (*semver.Version, error) {
	v, err := Version(ctx, sys, interpreter)
	if err != nil {
		return nil, err
	}
	if v.LessThan(minimum) {
		return v, fmt.Errorf(messages.PythonTooOldFmt, v.String(), minimum.String())
	}
	return v, nil
}

// normalizeVersion strips CPython release-level suffixes (rc1, a2, b3) that
// semver cannot parse, e.g. "3.13.0rc1" -> "3.13.0".
func normalizeVersion(raw string) string {
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		if (c >= '0' && c <= '9') || c == '.' {
			continue
		}
		return raw[:i]
	}
	return raw
}
