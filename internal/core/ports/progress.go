package ports

import (
	"context"
	"time"
)

// ProgressSink receives progress notifications from a running analysis.
// Calls may arrive from several goroutines.
//
//go:generate mockgen -source=progress.go -destination=mocks/mock_progress.go -package=mocks
type ProgressSink interface {
	// OnProgress reports that completed of total files have been processed.
	OnProgress(completed, total int)

	// OnStatus reports a human-readable status line.
	OnStatus(text string)
}

// Renderer is the abstraction for progress presentation.
// It decouples the analysis from the terminal, allowing the same event stream to
// drive either a rich TUI or linear CI logs.
type Renderer interface {
	ProgressSink

	// Start initializes the renderer and begins its lifecycle.
	Start(ctx context.Context) error

	// Stop signals the renderer to flush and prepare for shutdown.
	Stop() error

	// Wait blocks until the renderer has fully terminated.
	Wait() error

	// OnPhaseStart is called when an analysis phase begins.
	OnPhaseStart(spanID, name string, startTime time.Time)

	// OnPhaseComplete is called when an analysis phase ends.
	// err is nil if the phase succeeded.
	OnPhaseComplete(spanID string, endTime time.Time, err error)
}
