package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/resweep/internal/core/domain"
)

// Renderer wraps the TUI Bubble Tea model as a ports.Renderer.
type Renderer struct {
	program *tea.Program
	model   *Model
	errCh   chan error
}

// NewRenderer creates a new TUI renderer.
func NewRenderer(model *Model, opts ...tea.ProgramOption) *Renderer {
	program := tea.NewProgram(model, opts...)
	return &Renderer{
		program: program,
		model:   model,
		errCh:   make(chan error, 1),
	}
}

// Start launches the TUI in a background goroutine.
func (r *Renderer) Start(_ context.Context) error {
	go func() {
		final, err := r.program.Run()
		if err == nil {
			if m, ok := final.(*Model); ok && m.Interrupted {
				err = domain.ErrCancelled
			}
		}
		r.errCh <- err
	}()
	return nil
}

// Stop signals the TUI to quit.
func (r *Renderer) Stop() error {
	r.program.Quit()
	return nil
}

// Wait blocks until the TUI has terminated.
// It returns domain.ErrCancelled when the user quit before the analysis finished.
func (r *Renderer) Wait() error {
	return <-r.errCh
}

// OnPhaseStart forwards phase start events to the TUI.
func (r *Renderer) OnPhaseStart(spanID, name string, startTime time.Time) {
	r.program.Send(MsgPhaseStart{SpanID: spanID, Name: name, StartTime: startTime})
}

// OnPhaseComplete forwards phase completion events to the TUI.
func (r *Renderer) OnPhaseComplete(spanID string, endTime time.Time, err error) {
	r.program.Send(MsgPhaseComplete{SpanID: spanID, EndTime: endTime, Err: err})
}

// OnProgress forwards scan progress to the TUI.
func (r *Renderer) OnProgress(completed, total int) {
	r.program.Send(MsgProgress{Completed: completed, Total: total})
}

// OnStatus forwards status lines to the TUI.
func (r *Renderer) OnStatus(text string) {
	r.program.Send(MsgStatus{Text: text})
}

// Program returns the underlying tea.Program for testing.
func (r *Renderer) Program() *tea.Program {
	return r.program
}
