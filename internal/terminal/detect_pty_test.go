//go:build !windows

package terminal

import (
	"testing"

	"github.com/creack/pty"
)

func TestIsTerminalFile_Pty(t *testing.T) {
	ptm, pts, err := pty.Open()
	if err != nil {
		t.Skipf("pty unavailable: %v", err)
	}
	defer func() {
		_ = ptm.Close()
		_ = pts.Close()
	}()

	if !IsTerminalFile(pts) {
		t.Fatal("expected pty replica to be detected as a terminal")
	}
}
