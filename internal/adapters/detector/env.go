// Package detector provides environment detection for output mode selection.
package detector

import (
	"os"
	"strings"

	"golang.org/x/term"
)

// OutputMode represents the rendering mode for the application.
type OutputMode int

const (
	// ModeAuto automatically detects the appropriate mode.
	ModeAuto OutputMode = iota
	// ModeTUI forces the interactive TUI renderer.
	ModeTUI
	// ModeLinear forces the linear CI renderer.
	ModeLinear
)

// String returns the flag spelling of the mode.
func (m OutputMode) String() string {
	switch m {
	case ModeTUI:
		return "tui"
	case ModeLinear:
		return "linear"
	default:
		return "auto"
	}
}

// ciVariables are set by common CI providers.
var ciVariables = []string{"CI", "GITHUB_ACTIONS", "GITLAB_CI", "BUILDKITE", "TF_BUILD"}

// IsCI reports whether a CI provider environment variable is set to a truthy value.
func IsCI() bool {
	for _, name := range ciVariables {
		switch strings.ToLower(os.Getenv(name)) {
		case "true", "1":
			return true
		}
	}
	return false
}

// DetectEnvironment returns the recommended output mode based on the environment.
// It checks if stderr is a TTY, where progress is drawn, and if CI environment variables are set.
func DetectEnvironment() OutputMode {
	isTTY := term.IsTerminal(int(os.Stderr.Fd()))

	if !isTTY || IsCI() {
		return ModeLinear
	}
	return ModeTUI
}

// ResolveMode applies user override flag to auto-detection.
// userFlag should be one of: "auto", "tui", "linear", "ci", or empty.
func ResolveMode(autoDetected OutputMode, userFlag string) OutputMode {
	switch userFlag {
	case "tui":
		return ModeTUI
	case "linear", "ci":
		return ModeLinear
	default:
		return autoDetected
	}
}
