package tui

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Section  lipgloss.Style
	Label    lipgloss.Style
	Muted    lipgloss.Style
	Error    lipgloss.Style
	Banner   lipgloss.Style
	Help     lipgloss.Style
	Card     lipgloss.Style
}

func DefaultTheme() Theme {
	teal := lipgloss.Color("30")
	return Theme{
		Title:    lipgloss.NewStyle().Bold(true),
		Subtitle: lipgloss.NewStyle().Faint(true),
		Section:  lipgloss.NewStyle().Bold(true).Foreground(teal).MarginTop(1),
		Label:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Muted:    lipgloss.NewStyle().Faint(true),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("160")).Bold(true),
		Banner:   lipgloss.NewStyle().Foreground(lipgloss.Color("178")),
		Help:     lipgloss.NewStyle().Faint(true),
		Card: lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(teal),
	}
}
