// pattern: Functional Core

package render

import (
	"bytes"
	"os"
	"strings"

	"github.com/alecthomas/chroma/v2/lexers"
)

// Placeholder is substituted for any file whose content cannot be displayed.
const Placeholder = "Unable to display content."

const headerRuleWidth = 48

// binarySniffLen bounds how much of a file is inspected for NUL bytes.
const binarySniffLen = 8000

// Contents renders each selected file in selection order: a header naming the
// file, a separator rule, then the file's content. Content order follows the
// selection, unlike trees, because it mirrors the files as chosen. A single
// unreadable or binary file yields the placeholder and never aborts the rest.
func Contents(selection []string) string {
	sections := make([]string, 0, len(selection))
	for _, path := range selection {
		sections = append(sections, contentSection(path))
	}
	return strings.Join(sections, "\n")
}

func contentSection(path string) string {
	header := path
	if lang := DetectLanguage(path); lang != "" {
		header += " (" + lang + ")"
	}
	rule := strings.Repeat("─", headerRuleWidth)

	return header + "\n" + rule + "\n" + fileBody(path) + "\n"
}

func fileBody(path string) string {
	data, err := os.ReadFile(path)
	if err != nil || isBinary(data) {
		return Placeholder
	}
	return strings.TrimRight(string(data), "\n")
}

// DetectLanguage returns the name of the chroma lexer matching the file
// name, or "" when no lexer claims it.
func DetectLanguage(path string) string {
	lexer := lexers.Match(path)
	if lexer == nil {
		return ""
	}
	return lexer.Config().Name
}

// Preview returns up to limit bytes of the file for display in the picker's
// preview pane, with the placeholder for binary or unreadable files.
func Preview(path string, limit int) string {
	data, err := os.ReadFile(path)
	if err != nil || isBinary(data) {
		return Placeholder
	}
	if len(data) > limit {
		data = data[:limit]
	}
	return string(data)
}

func isBinary(data []byte) bool {
	if len(data) > binarySniffLen {
		data = data[:binarySniffLen]
	}
	return bytes.IndexByte(data, 0) >= 0
}
