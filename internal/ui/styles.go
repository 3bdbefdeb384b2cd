package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/olivier-w/polytone/internal/chrome"
)

// styles are rebuilt from the chrome palette whenever it changes.
type styles struct {
	page   lipgloss.Style
	header lipgloss.Style
	accent lipgloss.Style
	status lipgloss.Style
	help   lipgloss.Style
	prompt lipgloss.Style
}

func newStyles(p chrome.Palette) styles {
	base := lipgloss.NewStyle().Background(p.Background)
	return styles{
		page: base.Foreground(p.Text),
		header: base.
			Bold(true).
			Foreground(p.Accent),
		accent: base.Foreground(p.Accent),
		status: base.Foreground(p.Text),
		help:   base.Foreground(p.Muted),
		prompt: base.Foreground(p.Muted).Italic(true),
	}
}
