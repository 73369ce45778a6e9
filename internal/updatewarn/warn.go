// Package updatewarn emits a best-effort warning before install runs when a
// newer release of this tool is available.
package updatewarn

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/seahorse-inn/seahorse-setup/internal/messages"
	"github.com/seahorse-inn/seahorse-setup/internal/update"
)

// EnvNoNetwork disables release checks entirely when set. Useful for air-gapped
// machines where the check would only ever add a timeout.
const EnvNoNetwork = "SEAHORSE_SETUP_NO_NETWORK"

// CheckForUpdate is a seam for tests.
var CheckForUpdate = update.Check

// WarnIfOutdated emits update warnings to stderr when a newer release is
// available. It is best-effort and never returns an error.
func WarnIfOutdated(ctx context.Context, currentVersion string, stderr io.Writer) {
	if strings.TrimSpace(os.Getenv(EnvNoNetwork)) != "" {
		return
	}
	if stderr == nil {
		stderr = io.Discard
	}

	warnColor := color.New(color.FgYellow)
	result, err := CheckForUpdate(ctx, currentVersion)
	if err != nil {
		if update.IsRateLimitError(err) {
			return
		}
		_, _ = warnColor.Fprintf(stderr, messages.UpdateWarnCheckFailedFmt, err)
		return
	}
	if result.CurrentIsDev {
		_, _ = warnColor.Fprintf(stderr, messages.UpdateWarnDevBuildFmt, result.Latest)
		return
	}
	if result.Outdated {
		_, _ = warnColor.Fprintf(stderr, messages.UpdateWarnAvailableFmt, result.Latest, result.Current)
	}
}
