// Package tui provides an interactive terminal progress display for an analysis run.
package tui

import (
	"io"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/resweep/internal/ui/output"
	"go.trai.ch/resweep/internal/ui/style"
)

const (
	maxBarWidth = 60
	barPadding  = 4
)

// PhaseStatus represents the current state of a phase.
type PhaseStatus string

const (
	// StatusRunning indicates the phase is in progress.
	StatusRunning PhaseStatus = "Running"
	// StatusDone indicates the phase completed successfully.
	StatusDone PhaseStatus = "Done"
	// StatusError indicates the phase failed.
	StatusError PhaseStatus = "Error"
)

// PhaseNode is a single phase in the UI list.
type PhaseNode struct {
	Name     string
	Status   PhaseStatus
	Start    time.Time
	Duration time.Duration
}

// Model represents the TUI state.
type Model struct {
	Phases      []*PhaseNode
	SpanMap     map[string]*PhaseNode
	Completed   int
	Total       int
	Status      string
	Width       int
	DisableTick bool
	Interrupted bool

	spinner  spinner.Model
	progress progress.Model
}

// NewModel creates a new TUI model rendering for w.
func NewModel(w io.Writer) Model {
	if w == nil {
		w = os.Stderr
	}

	out := output.New(w)
	lipgloss.SetColorProfile(out.Profile)

	return Model{
		SpanMap: make(map[string]*PhaseNode),
		spinner: spinner.New(
			spinner.WithSpinner(spinner.Dot),
			spinner.WithStyle(phaseRunningStyle),
		),
		progress: progress.New(
			progress.WithSolidFill(string(style.Iris)),
			progress.WithoutPercentage(),
			progress.WithWidth(maxBarWidth),
			progress.WithColorProfile(out.Profile),
		),
	}
}

// WithDisableTick returns a copy of the model without spinner animation.
func (m Model) WithDisableTick() Model {
	m.DisableTick = true
	return m
}

// Init starts the spinner.
func (m *Model) Init() tea.Cmd {
	if m.DisableTick {
		return nil
	}
	return m.spinner.Tick
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" || msg.String() == "q" {
			m.Interrupted = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.progress.Width = min(max(msg.Width-barPadding, 0), maxBarWidth)

	case spinner.TickMsg:
		if !m.DisableTick {
			m.spinner, cmd = m.spinner.Update(msg)
		}

	case MsgPhaseStart:
		node := &PhaseNode{Name: msg.Name, Status: StatusRunning, Start: msg.StartTime}
		m.Phases = append(m.Phases, node)
		m.SpanMap[msg.SpanID] = node

	case MsgPhaseComplete:
		if node, ok := m.SpanMap[msg.SpanID]; ok {
			node.Duration = msg.EndTime.Sub(node.Start)
			if msg.Err != nil {
				node.Status = StatusError
			} else {
				node.Status = StatusDone
			}
		}

	case MsgProgress:
		m.Completed = msg.Completed
		m.Total = msg.Total

	case MsgStatus:
		m.Status = msg.Text
	}

	return m, cmd
}

// Percent returns the scan progress in [0, 1].
func (m *Model) Percent() float64 {
	if m.Total <= 0 {
		return 0
	}
	return float64(m.Completed) / float64(m.Total)
}
