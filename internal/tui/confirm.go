package tui

import tea "github.com/charmbracelet/bubbletea"

// confirmModel is the yes/no overlay shown before deleting a record or
// logging out.
type confirmModel struct {
	message string
	// onYes builds the command run when the user confirms.
	onYes func(m *mainLoopModel) tea.Cmd
}

func (m confirmModel) View() string {
	content := m.message + "\n\n"
	content += "y/s sim    n/esc não"
	return overlayBoxStyle.Render(content)
}
