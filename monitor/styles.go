package monitor

import "github.com/charmbracelet/lipgloss"

type styles struct {
	result  lipgloss.Style
	status  lipgloss.Style
	help    lipgloss.Style
	err     lipgloss.Style
	monitor lipgloss.Style
	prompt  lipgloss.Style
}

// ANSI Color reference
// 0	Black
// 1	Red
// 2	Green
// 3	Yellow
// 4	Blue
// 5	Magenta
// 6	Cyan
// 7	White

func newStyles() styles {
	return styles{
		result:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(3)),
		status:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(4)),
		help:    lipgloss.NewStyle().Foreground(lipgloss.ANSIColor(6)),
		err:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(7)).Background(lipgloss.ANSIColor(1)),
		monitor: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(7)).Background(lipgloss.ANSIColor(2)),
		prompt:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(5)),
	}
}
