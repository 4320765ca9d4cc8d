// pattern: Imperative Shell

package discover

import (
	"io/fs"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"

	"go.uber.org/zap"
)

// Engine enumerates candidate files under a root directory.
type Engine struct {
	listGit func(root string) ([]string, error)
	log     *zap.SugaredLogger
}

// NewEngine creates a discovery engine backed by git, with a filesystem walk
// as the fallback for roots outside any repository.
func NewEngine(log *zap.SugaredLogger) *Engine {
	return &Engine{listGit: gitListFiles, log: log}
}

// Discover returns every candidate file under root, in source order, after
// applying the ignore pattern. Inside a git working tree the repository
// listing is used (tracked plus untracked-but-not-ignored); otherwise the
// tree is walked. An empty result is not an error; callers decide whether
// that is terminal.
func (e *Engine) Discover(root string, ignore *regexp.Regexp) []string {
	paths, err := e.listGit(root)
	if err != nil {
		e.log.Debugw("git listing unavailable, walking", "root", root, "error", err)
		paths = walkFiles(root)
	}

	filtered := Filter(paths, ignore)
	e.log.Debugw("candidates discovered", "root", root, "total", len(paths), "kept", len(filtered))
	return filtered
}

// Filter drops every path whose string form matches the ignore pattern.
// Matching is unanchored and case-sensitive. A nil pattern keeps everything.
// Filtering is idempotent: applying the same pattern twice yields the same
// result as applying it once.
func Filter(paths []string, ignore *regexp.Regexp) []string {
	if ignore == nil {
		return paths
	}

	kept := make([]string, 0, len(paths))
	for _, p := range paths {
		if ignore.MatchString(p) {
			continue
		}
		kept = append(kept, p)
	}
	return kept
}

// gitListFiles lists tracked plus untracked-but-not-ignored files scoped to
// root, relative to the caller's working directory. Fails if root is not
// inside a git working tree.
func gitListFiles(root string) ([]string, error) {
	cmd := exec.Command("git", "ls-files", "--cached", "--others", "--exclude-standard")
	cmd.Dir = root
	output, err := cmd.Output()
	if err != nil {
		return nil, err
	}

	var paths []string
	for _, line := range strings.Split(string(output), "\n") {
		if line == "" {
			continue
		}
		paths = append(paths, filepath.Join(root, line))
	}
	return paths, nil
}

// walkFiles collects every regular file under root. Subtree read errors are
// swallowed and the affected entries omitted. Symlinked directories are not
// descended into and special files (devices, sockets) are excluded, both by
// way of the regular-file check.
func walkFiles(root string) []string {
	var files []string
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		files = append(files, path)
		return nil
	})
	return files
}
