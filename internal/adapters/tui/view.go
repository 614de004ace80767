package tui

import (
	"fmt"
	"strings"
	"time"

	"go.trai.ch/resweep/internal/ui/style"
)

// View renders the UI.
func (m *Model) View() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render("RESWEEP") + "\n\n")

	for _, phase := range m.Phases {
		s.WriteString(m.renderPhase(phase) + "\n")
	}

	if m.Total > 0 {
		fmt.Fprintf(&s, "\n%s %d/%d files\n", m.progress.ViewAs(m.Percent()), m.Completed, m.Total)
	}

	if m.Status != "" {
		s.WriteString("\n" + statusStyle.Render(m.Status) + "\n")
	}

	return s.String()
}

func (m *Model) renderPhase(phase *PhaseNode) string {
	switch phase.Status {
	case StatusDone:
		return phaseDoneStyle.Render(style.Check+" "+phase.Name) + " " +
			statusStyle.Render(fmt.Sprintf("(%v)", phase.Duration.Round(time.Millisecond)))
	case StatusError:
		return phaseErrorStyle.Render(style.Cross + " " + phase.Name)
	default:
		icon := style.Dot
		if !m.DisableTick {
			icon = m.spinner.View()
		}
		return icon + " " + phaseRunningStyle.Render(phase.Name)
	}
}
