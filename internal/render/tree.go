// pattern: Functional Core

package render

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss/tree"

	"pickpack/internal/style"
)

// Trees renders one labeled section per distinct parent directory of the
// selection. Directories are deduplicated and sorted lexically, so the output
// does not depend on the order files were selected in.
func Trees(selection []string, st *style.Styles) string {
	dirs := DirectoryGroups(selection)

	sections := make([]string, 0, len(dirs))
	for _, dir := range dirs {
		sections = append(sections, treeSection(dir, st))
	}
	return strings.Join(sections, "\n")
}

// DirectoryGroups returns the distinct parent directories of the selection,
// deduplicated and sorted lexically.
func DirectoryGroups(selection []string) []string {
	seen := make(map[string]bool)
	var dirs []string
	for _, p := range selection {
		dir := filepath.Dir(p)
		if seen[dir] {
			continue
		}
		seen[dir] = true
		dirs = append(dirs, dir)
	}
	sort.Strings(dirs)
	return dirs
}

// treeSection renders the labeled header and recursive tree for one
// directory. A directory that cannot be read (removed between selection and
// render) still contributes its header, just with no tree under it.
func treeSection(dir string, st *style.Styles) string {
	header := st.SectionStyle().Render(dir + string(filepath.Separator))

	root := tree.Root(st.DirStyle().Render(filepath.Base(dir))).
		EnumeratorStyle(st.BranchStyle())
	if err := addChildren(root, dir, st); err != nil {
		return header + "\n"
	}
	return header + "\n" + root.String() + "\n"
}

// addChildren attaches dir's entries to t, directories first, each group in
// name order. Errors reading subdirectories are swallowed; the subdirectory
// still appears, just without children.
func addChildren(t *tree.Tree, dir string, st *style.Styles) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		sub := tree.Root(st.DirStyle().Render(entry.Name())).
			EnumeratorStyle(st.BranchStyle())
		_ = addChildren(sub, filepath.Join(dir, entry.Name()), st)
		t.Child(sub)
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		t.Child(st.FileStyle().Render(entry.Name()))
	}
	return nil
}
