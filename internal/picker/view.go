// pattern: Imperative Shell

package picker

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// View renders the multi-select session.
func (m model) View() string {
	if m.width == 0 {
		return "loading..."
	}

	title := m.styles.TitleStyle().Render("Select files to bundle")
	count := m.styles.SubtleStyle().Render(
		fmt.Sprintf("%d of %d selected", len(m.order), len(m.candidates)))

	content := m.list.View()
	if m.previewReady {
		previewBox := m.styles.BoxStyle().Render(m.preview.View())
		content = lipgloss.JoinHorizontal(lipgloss.Top, m.list.View(), previewBox)
	}

	help := m.styles.HelpStyle().Render(
		"space toggle • a all • A none • / filter • enter confirm • esc cancel")

	return lipgloss.JoinVertical(lipgloss.Left, title, count, content, help)
}
