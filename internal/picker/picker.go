// pattern: Imperative Shell

package picker

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"pickpack/internal/style"
)

// Result is what an interactive session produced. Paths are reported in the
// order the user toggled them, not list order.
type Result struct {
	Paths    []string
	Canceled bool
}

// Picker runs an interactive multi-select session over a candidate set.
type Picker interface {
	Pick(candidates []string) (Result, error)
}

// TTY runs a full-screen bubbletea session on the controlling terminal.
type TTY struct {
	Styles *style.Styles
	Log    *zap.SugaredLogger
}

// Pick blocks until the session ends. The alt-screen program restores the
// terminal on every exit path (confirm, cancel, interrupt). Rendering goes to
// stderr so stdout stays clean for the bundle.
func (p *TTY) Pick(candidates []string) (Result, error) {
	m := newModel(candidates, p.Styles, p.Log)
	prog := tea.NewProgram(m, tea.WithAltScreen(), tea.WithOutput(os.Stderr))

	final, err := prog.Run()
	if err != nil {
		return Result{}, fmt.Errorf("interactive session: %w", err)
	}

	fm, ok := final.(model)
	if !ok {
		return Result{Canceled: true}, nil
	}
	res := fm.result()
	p.Log.Debugw("session ended", "picked", len(res.Paths), "canceled", res.Canceled)
	return res, nil
}
