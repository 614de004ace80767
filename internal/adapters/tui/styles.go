package tui

import (
	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/resweep/internal/ui/style"
)

var (
	phaseRunningStyle = lipgloss.NewStyle().
				Foreground(style.Iris).
				Bold(true)

	phaseDoneStyle = lipgloss.NewStyle().
			Foreground(style.Green)

	phaseErrorStyle = lipgloss.NewStyle().
			Foreground(style.Red)

	statusStyle = lipgloss.NewStyle().
			Foreground(style.Slate)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1).
			Background(style.Iris).
			Foreground(style.White)
)
