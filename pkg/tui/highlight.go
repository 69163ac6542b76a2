package tui

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/stalwar-deckers/catalog/pkg/render"
)

// highlightCode renders an example or response body. Valid JSON is indented
// and syntax-highlighted through glamour with key order kept; anything else
// is shown as a literal block with escape sequences removed.
func (m Model) highlightCode(code string) string {
	literal := strings.TrimRight(render.Literal(code), "\n")

	// 1. Indent, which also validates
	var pretty bytes.Buffer
	if m.renderer == nil || json.Indent(&pretty, []byte(literal), "", "  ") != nil {
		return CodeStyle.Render(literal)
	}

	// 2. Render the fenced block with glamour
	out, err := m.renderer.Render(render.Fence(pretty.String(), "json"))
	if err != nil {
		return CodeStyle.Render(literal)
	}
	return strings.Trim(out, "\n")
}

// renderMarkdown renders a markdown section with glamour, falling back to
// the terminal-safe source text.
func (m Model) renderMarkdown(md string) string {
	if m.renderer != nil {
		if out, err := m.renderer.Render(md); err == nil {
			return strings.TrimSpace(out)
		}
	}
	return render.Literal(md)
}
