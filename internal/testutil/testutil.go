// Package testutil provides shared helpers for tests that stub external
// executables on PATH.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

// WriteStub writes an executable shell stub that exits successfully.
// t is the active test; dir is the output directory; name is the executable file name.
func WriteStub(t *testing.T, dir string, name string) {
	t.Helper()
	WriteStubWithExit(t, dir, name, 0)
}

// WriteStubWithExit writes an executable shell stub that exits with the provided code.
func WriteStubWithExit(t *testing.T, dir string, name string, exitCode int) {
	t.Helper()
	path := filepath.Join(dir, name)
	content := []byte(fmt.Sprintf("#!/bin/sh\nexit %d\n", exitCode))
	if err := os.WriteFile(path, content, 0o755); err != nil {
		t.Fatalf("write stub: %v", err)
	}
}

// WriteStubWithOutput writes an executable shell stub that prints output and exits 0.
func WriteStubWithOutput(t *testing.T, dir string, name string, output string) {
	t.Helper()
	path := filepath.Join(dir, name)
	content := []byte(fmt.Sprintf("#!/bin/sh\nprintf '%%s\\n' %q\nexit 0\n", output))
	if err := os.WriteFile(path, content, 0o755); err != nil {
		t.Fatalf("write stub: %v", err)
	}
}

// WriteStubRecordArgs writes an executable shell stub that appends its
// arguments, one invocation per line, to logPath and exits 0. Tests use the
// log to assert invocation order.
func WriteStubRecordArgs(t *testing.T, dir string, name string, logPath string) {
	t.Helper()
	path := filepath.Join(dir, name)
	content := []byte(fmt.Sprintf("#!/bin/sh\necho \"$@\" >> %q\nexit 0\n", logPath))
	if err := os.WriteFile(path, content, 0o755); err != nil {
		t.Fatalf("write stub: %v", err)
	}
}

// WriteStubFailFor writes an executable shell stub that records its arguments
// to logPath and exits 1 when failArg appears among them, 0 otherwise.
func WriteStubFailFor(t *testing.T, dir string, name string, logPath string, failArg string) {
	t.Helper()
	path := filepath.Join(dir, name)
	content := []byte(fmt.Sprintf(
		"#!/bin/sh\necho \"$@\" >> %q\nfor arg in \"$@\"; do\n  if [ \"$arg\" = %q ]; then exit 1; fi\ndone\nexit 0\n",
		logPath, failArg))
	if err := os.WriteFile(path, content, 0o755); err != nil {
		t.Fatalf("write stub: %v", err)
	}
}

// WithPath runs fn with dir prepended to PATH.
func WithPath(t *testing.T, dir string, fn func()) {
	t.Helper()
	t.Setenv("PATH", dir+string(os.PathListSeparator)+os.Getenv("PATH"))
	fn()
}

// BoolPtr returns a pointer to v.
func BoolPtr(v bool) *bool {
	return &v
}
