package provision

import (
	"context"
	"io"
	"os/exec"
)

// System abstracts process execution for the runner. This interface is
// package-local so tests can stub installs without touching the host; other
// packages (python, doctor) define their own System interfaces with the
// operations they need.
type System interface {
	Run(ctx context.Context, stdout io.Writer, stderr io.Writer, name string, args ...string) error
}

// RealSystem implements System using os/exec.
type RealSystem struct{}

// Run executes the command with the given writers attached.
func (RealSystem) Run(ctx context.Context, stdout io.Writer, stderr io.Writer, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	return cmd.Run()
}
