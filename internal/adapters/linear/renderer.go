// Package linear provides a synchronous, line-buffered renderer for CI environments.
package linear

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/muesli/termenv"
	"go.trai.ch/resweep/internal/ui/output"
	"go.trai.ch/resweep/internal/ui/style"
)

// progressStep is the percentage granularity of progress lines.
const progressStep = 10

// Renderer implements ports.Renderer for CI/non-interactive environments.
// It writes chronological lines prefixed with the running phase.
type Renderer struct {
	w      io.Writer
	output *termenv.Output

	mu      sync.Mutex
	phases  map[string]*phaseState // spanID -> phase
	current string
	lastPct int
}

type phaseState struct {
	name      string
	startTime time.Time
}

// NewRenderer creates a new Renderer writing to w. A nil writer means stderr.
func NewRenderer(w io.Writer) *Renderer {
	if w == nil {
		w = os.Stderr
	}

	return &Renderer{
		w:       w,
		output:  output.NewWithProfile(w, output.ColorProfileANSI),
		phases:  make(map[string]*phaseState),
		lastPct: -1,
	}
}

// Start is a no-op for linear renderer (synchronous).
func (r *Renderer) Start(_ context.Context) error {
	return nil
}

// Stop is a no-op, every line is written as it arrives.
func (r *Renderer) Stop() error {
	return nil
}

// Wait is a no-op for linear renderer (synchronous).
func (r *Renderer) Wait() error {
	return nil
}

// OnPhaseStart prints a phase start message.
func (r *Renderer) OnPhaseStart(spanID, name string, startTime time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.phases[spanID] = &phaseState{name: name, startTime: startTime}
	r.current = name
	r.lastPct = -1

	_, _ = fmt.Fprintf(r.w, "%s Starting...\n", r.prefixLocked(name))
}

// OnPhaseComplete prints the phase outcome and its duration.
func (r *Renderer) OnPhaseComplete(spanID string, endTime time.Time, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	phase, ok := r.phases[spanID]
	if !ok {
		return
	}
	delete(r.phases, spanID)

	duration := endTime.Sub(phase.startTime).Round(time.Millisecond)
	prefix := r.prefixLocked(phase.name)

	if err != nil {
		symbol := r.output.String(style.Cross).Foreground(termenv.ANSIRed).String()
		_, _ = fmt.Fprintf(r.w, "%s %s Failed after %v: %v\n", prefix, symbol, duration, err)
		return
	}
	symbol := r.output.String(style.Check).Foreground(termenv.ANSIGreen).String()
	_, _ = fmt.Fprintf(r.w, "%s %s Completed in %v\n", prefix, symbol, duration)
}

// OnProgress prints a line each time progress crosses a step, plus the final count.
func (r *Renderer) OnProgress(completed, total int) {
	if total <= 0 {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	pct := completed * 100 / total
	bucket := pct - pct%progressStep
	if completed == total {
		bucket = 100
	}
	if bucket <= r.lastPct {
		return
	}
	r.lastPct = bucket

	_, _ = fmt.Fprintf(r.w, "%s %d/%d files (%d%%)\n", r.prefixLocked(r.current), completed, total, pct)
}

// OnStatus prints a status line.
func (r *Renderer) OnStatus(text string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	arrow := r.output.String(style.Arrow).Faint().String()
	_, _ = fmt.Fprintf(r.w, "%s %s\n", arrow, text)
}

// prefixLocked renders the phase prefix. Must be called with r.mu held.
func (r *Renderer) prefixLocked(name string) string {
	if name == "" {
		name = "resweep"
	}
	return r.output.String(fmt.Sprintf("[%s]", name)).Faint().String()
}
