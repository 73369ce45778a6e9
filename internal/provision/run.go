package provision

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"

	"github.com/seahorse-inn/seahorse-setup/internal/messages"
)

// outputTailLines bounds how much captured installer output is echoed for a
// failed step.
const outputTailLines = 20

// Options controls a provisioning run.
type Options struct {
	// Python is the interpreter every step is invoked through. Required.
	Python string
	// ExtraPackages are appended after the fixed package list.
	ExtraPackages []string
	// SkipBrowsers omits the Playwright browser download.
	SkipBrowsers bool
	// Verbose streams installer output instead of capturing it.
	Verbose bool
	// Out receives step status lines. Defaults to os.Stdout.
	Out io.Writer
	// ProgressOut receives the progress bar. Defaults to Out.
	ProgressOut io.Writer
	// System executes the steps. Required.
	System System
}

// StepResult records one executed step.
type StepResult struct {
	Step Step
	Err  error
	// Output holds the tail of captured installer output for failed steps.
	Output string
}

// Report is the outcome of a full run.
type Report struct {
	Results []StepResult
}

// Failed returns the results of steps that failed.
func (r Report) Failed() []StepResult {
	var failed []StepResult
	for _, res := range r.Results {
		if res.Err != nil {
			failed = append(failed, res)
		}
	}
	return failed
}

// Run executes the provisioning sequence. A failed step never stops the run:
// every step is attempted and the report records each outcome. Run returns an
// error only when its inputs are unusable, never for step failures.
func Run(ctx context.Context, opts Options) (Report, error) {
	if strings.TrimSpace(opts.Python) == "" {
		return Report{}, fmt.Errorf(messages.ProvisionPythonRequired)
	}
	if opts.System == nil {
		return Report{}, fmt.Errorf(messages.ProvisionSystemRequired)
	}
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	progressOut := opts.ProgressOut
	if progressOut == nil {
		progressOut = out
	}

	steps := Plan(PlanOptions{ExtraPackages: opts.ExtraPackages, SkipBrowsers: opts.SkipBrowsers})
	bar := newStepBar(progressOut, len(steps), opts.Verbose)

	report := Report{Results: make([]StepResult, 0, len(steps))}
	for _, step := range steps {
		report.Results = append(report.Results, runStep(ctx, opts, out, bar, step))
	}
	if bar != nil {
		_ = bar.Finish()
		_, _ = fmt.Fprintln(progressOut)
	}
	return report, nil
}

// runStep executes one step and renders its status.
func runStep(ctx context.Context, opts Options, out io.Writer, bar *progressbar.ProgressBar, step Step) StepResult {
	result := StepResult{Step: step}

	var stdout, stderr io.Writer
	var captured bytes.Buffer
	if opts.Verbose {
		_, _ = fmt.Fprintf(out, messages.ProvisionRunningStepFmt, step.Name)
		stdout, stderr = out, out
	} else {
		stdout, stderr = &captured, &captured
	}
	if bar != nil {
		bar.Describe(step.Name)
	}

	err := opts.System.Run(ctx, stdout, stderr, opts.Python, step.Args...)
	if err != nil {
		result.Err = err
		result.Output = tail(captured.String(), outputTailLines)
	}
	if bar != nil {
		_ = bar.Add(1)
	}
	if opts.Verbose {
		label := color.GreenString(messages.ProvisionStepOKLabel)
		if err != nil {
			label = color.RedString(messages.ProvisionStepFailedLabel)
		}
		_, _ = fmt.Fprintf(out, messages.ProvisionStepStatusFmt, step.Name, label)
	}
	return result
}

// WriteSummary prints the failure summary followed by the unconditional
// completion message. The completion line is always the final output, even
// when every step failed.
func WriteSummary(out io.Writer, report Report) {
	failed := report.Failed()
	if len(failed) > 0 {
		_, _ = fmt.Fprintln(out, color.YellowString(messages.ProvisionFailureSummaryHeader))
		for _, res := range failed {
			_, _ = fmt.Fprintf(out, messages.ProvisionFailureLineFmt, res.Step.Name, res.Err)
			for _, line := range strings.Split(res.Output, "\n") {
				if line == "" {
					continue
				}
				_, _ = fmt.Fprintf(out, messages.ProvisionFailureOutputFmt, line)
			}
		}
		_, _ = fmt.Fprintln(out)
	}
	_, _ = fmt.Fprintln(out, messages.ProvisionComplete)
}

// newStepBar builds the step progress bar, or nil in verbose mode where
// installer output would interleave with it.
func newStepBar(w io.Writer, total int, verbose bool) *progressbar.ProgressBar {
	if verbose {
		return nil
	}
	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription(messages.ProvisionProgressLabel),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
}

// tail returns the last n non-empty-trimmed lines of s.
func tail(s string, n int) string {
	trimmed := strings.TrimRight(s, "\n")
	if trimmed == "" {
		return ""
	}
	lines := strings.Split(trimmed, "\n")
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return strings.Join(lines, "\n")
}
