// pattern: Functional Core

package bundle

// Assemble combines the rendered tree and content sections per the output
// mode. Tree-only mode drops the content sections entirely; otherwise the two
// blocks are joined with a blank line. Assemble performs no I/O.
func Assemble(trees, contents string, treeOnly bool) string {
	if treeOnly || contents == "" {
		return trees
	}
	if trees == "" {
		return contents
	}
	return trees + "\n" + contents
}
