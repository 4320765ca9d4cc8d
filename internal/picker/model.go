package picker

import (
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"pickpack/internal/render"
	"pickpack/internal/style"
)

// previewByteLimit bounds how much of a file the preview pane loads.
const previewByteLimit = 32 * 1024

// fileItem is one candidate path in the multi-select list.
type fileItem struct {
	path   string
	picked bool
}

func (i fileItem) FilterValue() string { return i.path }

// model holds the state of one multi-select session.
type model struct {
	candidates []string
	list       list.Model
	preview    viewport.Model
	styles     *style.Styles
	log        *zap.SugaredLogger

	width        int
	height       int
	previewReady bool
	previewPath  string

	order     []string // picked paths, in toggle order
	confirmed bool
	canceled  bool
}

func newModel(candidates []string, st *style.Styles, log *zap.SugaredLogger) model {
	items := make([]list.Item, len(candidates))
	for i, p := range candidates {
		items[i] = fileItem{path: p}
	}

	l := list.New(items, newFileDelegate(st), 0, 0)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(true)

	return model{
		candidates: candidates,
		list:       l,
		styles:     st,
		log:        log,
	}
}

// Init returns the initial command to run.
func (m model) Init() tea.Cmd {
	return nil
}

// result reports the session outcome once the program has finished.
func (m model) result() Result {
	if m.canceled || !m.confirmed {
		return Result{Canceled: true}
	}
	return Result{Paths: m.order}
}

// toggleCurrent flips the picked state of the highlighted item and keeps the
// toggle-order slice in sync.
func (m *model) toggleCurrent() {
	item, ok := m.list.SelectedItem().(fileItem)
	if !ok {
		return
	}
	item.picked = !item.picked

	// The list index is relative to the filtered view; locate the item in the
	// full set before replacing it.
	for i, it := range m.list.Items() {
		if fi, ok := it.(fileItem); ok && fi.path == item.path {
			_ = m.list.SetItem(i, item)
			break
		}
	}

	if item.picked {
		m.order = append(m.order, item.path)
	} else {
		m.order = removePath(m.order, item.path)
	}
}

// selectAll picks every candidate; the reported order becomes list order.
func (m *model) selectAll() {
	for i, it := range m.list.Items() {
		if fi, ok := it.(fileItem); ok && !fi.picked {
			fi.picked = true
			_ = m.list.SetItem(i, fi)
		}
	}
	m.order = append([]string(nil), m.candidates...)
}

func (m *model) deselectAll() {
	for i, it := range m.list.Items() {
		if fi, ok := it.(fileItem); ok && fi.picked {
			fi.picked = false
			_ = m.list.SetItem(i, fi)
		}
	}
	m.order = nil
}

// refreshPreview loads the highlighted file into the preview pane. Reloads
// only when the highlighted path changes.
func (m *model) refreshPreview() {
	if !m.previewReady {
		return
	}
	item, ok := m.list.SelectedItem().(fileItem)
	if !ok {
		m.preview.SetContent("")
		m.previewPath = ""
		return
	}
	if item.path == m.previewPath {
		return
	}
	m.previewPath = item.path
	m.preview.SetContent(render.Preview(item.path, previewByteLimit))
	m.preview.GotoTop()
}

func removePath(paths []string, path string) []string {
	kept := paths[:0]
	for _, p := range paths {
		if p != path {
			kept = append(kept, p)
		}
	}
	return kept
}
