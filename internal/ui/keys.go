package ui

import tea "github.com/charmbracelet/bubbletea"

func isQuit(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "esc", "ctrl+c":
		return true
	}
	return false
}

func helpText() string {
	return "tab mode  ctrl+t scale  ctrl+o mute  ctrl+s save  esc quit"
}
