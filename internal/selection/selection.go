// pattern: Functional Core

package selection

import (
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"

	"pickpack/internal/picker"
)

var (
	// ErrNoCandidates means interactive discovery found nothing to pick from.
	ErrNoCandidates = errors.New("no files found")

	// ErrTargetNotFound means the positional target is neither a file nor a
	// directory.
	ErrTargetNotFound = errors.New("target not found")

	// ErrEmptySelection means the interactive session ended with nothing
	// chosen. Informational; the run still succeeds.
	ErrEmptySelection = errors.New("no files selected")
)

// DiscoverFunc enumerates candidate files under a root. The ignore pattern is
// bound in by the caller so direct file targets bypass it.
type DiscoverFunc func(root string) []string

// Controller resolves the final set of files to aggregate, either through an
// interactive session or from a direct target path.
type Controller struct {
	Discover DiscoverFunc
	Picker   picker.Picker
	Log      *zap.SugaredLogger
}

// Resolve returns the selection for the run. With no target the current
// directory is discovered and handed to the interactive picker; otherwise the
// target is resolved directly. A direct file target is returned as-is, ignore
// pattern notwithstanding.
func (c *Controller) Resolve(target string) ([]string, error) {
	if target == "" {
		return c.interactive()
	}

	info, err := os.Stat(target)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrTargetNotFound, target)
	}
	if info.IsDir() {
		sel := c.Discover(target)
		c.Log.Debugw("directory target resolved", "target", target, "files", len(sel))
		return sel, nil
	}
	return []string{target}, nil
}

func (c *Controller) interactive() ([]string, error) {
	candidates := c.Discover(".")
	if len(candidates) == 0 {
		return nil, ErrNoCandidates
	}

	res, err := c.Picker.Pick(candidates)
	if err != nil {
		return nil, err
	}
	if res.Canceled || len(res.Paths) == 0 {
		return nil, ErrEmptySelection
	}
	c.Log.Debugw("interactive selection resolved", "files", len(res.Paths))
	return res.Paths, nil
}
