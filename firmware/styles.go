package firmware

import "github.com/charmbracelet/lipgloss"

type styles struct {
	prompt lipgloss.Style
	wrong  lipgloss.Style
	score  lipgloss.Style
	win    lipgloss.Style
	err    lipgloss.Style
}

func newStyles() styles {
	return styles{
		prompt: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(3)),
		wrong:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(7)).Background(lipgloss.ANSIColor(1)),
		score:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(4)),
		win:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(7)).Background(lipgloss.ANSIColor(2)),
		err:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(7)).Background(lipgloss.ANSIColor(1)),
	}
}
