// pattern: Imperative Shell

package sink

import (
	"fmt"
	"io"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/x/ansi"
	"go.uber.org/zap"
)

// Clipboard places text on the system clipboard.
type Clipboard interface {
	Write(text string) error
}

// SystemClipboard is the real clipboard, resolved per platform at startup.
type SystemClipboard struct{}

func (SystemClipboard) Write(text string) error {
	return clipboard.WriteAll(text)
}

// Supported reports whether a clipboard utility is usable on this platform.
// Absence is a startup-time condition, not a runtime one.
func Supported() bool {
	return !clipboard.Unsupported
}

// Sink routes an assembled bundle to stdout and/or the clipboard.
type Sink struct {
	Stdout    io.Writer
	Stderr    io.Writer
	Clipboard Clipboard
	Log       *zap.SugaredLogger
}

// Emit delivers the bundle. Stdout gets it unless quiet, or always under
// forcePrint. The clipboard gets it iff not quiet, stripped of ANSI sequences
// so the pasted text is plain. Clipboard failures are reported on the
// diagnostic stream but never change the exit status; the bundle was already
// delivered via stdout when applicable.
func (s *Sink) Emit(bndl string, quiet, forcePrint bool) {
	// An empty bundle is a valid terminal state (empty non-interactive
	// selection); don't clobber the user's clipboard with it.
	if bndl == "" {
		return
	}

	if !quiet || forcePrint {
		_, _ = io.WriteString(s.Stdout, terminated(bndl))
	}

	if quiet {
		s.Log.Debugw("clipboard write skipped", "reason", "quiet")
		return
	}

	if err := s.Clipboard.Write(ansi.Strip(bndl)); err != nil {
		fmt.Fprintf(s.Stderr, "pickpack: clipboard write failed: %v\n", err)
		s.Log.Warnw("clipboard write failed", "error", err)
		return
	}
	s.Log.Debugw("bundle copied to clipboard", "bytes", len(bndl))
}

func terminated(text string) string {
	if text == "" || strings.HasSuffix(text, "\n") {
		return text
	}
	return text + "\n"
}
