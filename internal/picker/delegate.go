// pattern: Imperative Shell

package picker

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"pickpack/internal/style"
)

// fileDelegate renders candidate paths as single-line checkbox rows.
type fileDelegate struct {
	styles *style.Styles
}

func newFileDelegate(st *style.Styles) fileDelegate {
	return fileDelegate{styles: st}
}

// Height returns the height of a single item.
func (d fileDelegate) Height() int { return 1 }

// Spacing returns the spacing between items.
func (d fileDelegate) Spacing() int { return 0 }

// Update handles item-specific updates.
func (d fileDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }

// Render renders a single candidate row.
func (d fileDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	fi, ok := item.(fileItem)
	if !ok {
		return
	}

	cursor := "  "
	nameStyle := d.styles.InfoStyle()
	if index == m.Index() {
		cursor = d.styles.SelectedStyle().Render("▸ ")
		nameStyle = d.styles.SelectedStyle()
	}

	check := "[ ] "
	if fi.picked {
		check = d.styles.CheckedStyle().Render("[x] ")
	}

	_, _ = fmt.Fprintf(w, "%s%s%s", cursor, check, nameStyle.Render(fi.path))
}
