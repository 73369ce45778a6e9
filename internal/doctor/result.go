// Package doctor checks the host machine against the voice agent's
// runtime requirements.
package doctor

// Status is the outcome of a single check.
type Status int

const (
	// StatusOK means the check passed.
	StatusOK Status = iota
	// StatusWarn means the agent will run degraded but will start.
	StatusWarn
	// StatusFail means the agent cannot run until this is fixed.
	StatusFail
)

// Result is one rendered check outcome.
type Result struct {
	Status         Status
	CheckName      string
	Message        string
	Recommendation string
}
