// pattern: Imperative Shell

package picker

import (
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// Layout chrome: title row, count row, help row plus margins.
const (
	chromeHeight     = 6
	minContentHeight = 4
	minListWidth     = 20
	listWidthRatio   = 0.45
)

// Update handles messages and updates the model.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.resize(msg), nil

	case tea.KeyMsg:
		// While the user is typing a filter every key belongs to the list.
		if m.list.FilterState() == list.Filtering {
			return m.delegateToList(msg)
		}

		switch msg.String() {
		case "ctrl+c", "q":
			m.canceled = true
			m.log.Debugw("session canceled", "key", msg.String())
			return m, tea.Quit

		case "esc":
			// Esc first clears an applied filter; a second esc cancels.
			if m.list.FilterState() != list.Unfiltered {
				return m.delegateToList(msg)
			}
			m.canceled = true
			return m, tea.Quit

		case "enter":
			m.confirmed = true
			m.log.Debugw("selection confirmed", "count", len(m.order))
			return m, tea.Quit

		case " ":
			m.toggleCurrent()
			return m, nil

		case "a":
			m.selectAll()
			return m, nil

		case "A":
			m.deselectAll()
			return m, nil
		}
		return m.delegateToList(msg)
	}

	return m.delegateToList(msg)
}

// delegateToList forwards the message to the embedded list (cursor movement,
// filtering, pagination) and refreshes the preview for the new highlight.
func (m model) delegateToList(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	m.refreshPreview()
	return m, cmd
}

func (m model) resize(msg tea.WindowSizeMsg) model {
	m.width = msg.Width
	m.height = msg.Height

	contentHeight := m.height - chromeHeight
	if contentHeight < minContentHeight {
		contentHeight = minContentHeight
	}

	listWidth := int(float64(m.width) * listWidthRatio)
	if listWidth < minListWidth {
		listWidth = minListWidth
	}
	// Border and padding around the preview box.
	previewWidth := m.width - listWidth - 4
	if previewWidth < 1 {
		previewWidth = 1
	}
	previewHeight := contentHeight - 2
	if previewHeight < 1 {
		previewHeight = 1
	}

	m.list.SetSize(listWidth, contentHeight)

	if !m.previewReady {
		m.preview = viewport.New(previewWidth, previewHeight)
		m.previewReady = true
	} else {
		m.preview.Width = previewWidth
		m.preview.Height = previewHeight
	}

	m.previewPath = ""
	m.refreshPreview()
	return m
}
