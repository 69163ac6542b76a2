package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stalwar-deckers/catalog/pkg/catalog"
	"github.com/stalwar-deckers/catalog/pkg/detail"
	"github.com/stalwar-deckers/catalog/pkg/render"
	"github.com/stalwar-deckers/catalog/pkg/search"
)

// View renders the entire TUI to a string.
func (m Model) View() string {
	if !m.ready {
		return "Loading catalog..."
	}
	if m.ctrl.Overlay().IsOpen() {
		return m.renderOverlay()
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(SearchStyle.Width(m.width - 2).Render(m.search.View()))
	b.WriteString("\n")
	b.WriteString(m.renderFilters())
	b.WriteString("\n")
	b.WriteString(m.list.View())
	b.WriteString("\n")
	b.WriteString(m.renderFooter(m.keys.browseHelp()))
	return b.String()
}

// renderHeader renders the title and the visible counter.
func (m Model) renderHeader() string {
	grid := m.ctrl.Grid()
	style := CounterStyle
	if m.bumpPos > 0.05 {
		style = CounterBumpStyle
	}
	counter := style.Render(fmt.Sprintf("%d", grid.Count())) +
		CardMetaStyle.Render(fmt.Sprintf(" of %d APIs", grid.Total()))

	title := TitleStyle.Render("API Catalog")
	gap := m.width - lipgloss.Width(title) - lipgloss.Width(counter)
	if gap < 2 {
		gap = 2
	}
	return title + strings.Repeat(" ", gap) + counter
}

// renderFilters renders the filter tags with the active one highlighted.
func (m Model) renderFilters() string {
	active := m.ctrl.State().Filter
	var tags []string
	for _, f := range m.ctrl.Filters() {
		if f == active {
			tags = append(tags, FilterActiveStyle.Render(f))
		} else {
			tags = append(tags, FilterStyle.Render(f))
		}
	}
	return ansi.Truncate(strings.Join(tags, " "), m.width, "…")
}

// renderFooter renders the status line and the key help.
func (m Model) renderFooter(bindings []key.Binding) string {
	status := ""
	if m.status != "" {
		if m.statusErr {
			status = ErrorStyle.Render(m.status)
		} else {
			status = StatusStyle.Render(m.status)
		}
	}
	return status + "\n" + m.help.ShortHelpView(bindings)
}

// refreshList rebuilds the card list and keeps the cursor in view.
func (m *Model) refreshList() {
	content, cursorLine := m.renderCards()
	m.list.SetContent(content)
	offset := m.list.YOffset
	scrollTo(&offset, m.list.Height, cursorLine, 3)
	m.list.SetYOffset(offset)
}

// renderCards renders the visible sections and returns the line the
// cursor card starts on.
func (m Model) renderCards() (string, int) {
	if ph, ok := m.ctrl.Grid().Placeholder(); ok {
		return "\n" + PlaceholderTitleStyle.Render(ph.Title) + "\n" + PlaceholderHintStyle.Render(ph.Hint), 0
	}

	var lines []string
	cursorLine := 0
	idx := 0
	for _, s := range m.ctrl.Grid().Sections() {
		if s.Hidden {
			continue
		}
		shown := 0
		for _, c := range s.Cards {
			if !c.Hidden {
				shown++
			}
		}
		lines = append(lines, "", SectionStyle.Render(fmt.Sprintf("%s (%d)", strings.ToUpper(single(s.Category)), shown)))
		for _, c := range s.Cards {
			if c.Hidden {
				continue
			}
			if idx == m.cursor {
				cursorLine = len(lines)
			}
			lines = append(lines, m.renderCard(c, idx == m.cursor)...)
			idx++
		}
	}
	return strings.Join(lines, "\n"), cursorLine
}

func (m Model) renderCard(c search.Card, selected bool) []string {
	prefix, name := NoCursorPrefix, CardTitleStyle.Render(single(c.Name))
	if selected {
		prefix, name = CursorPrefix, CardSelectedStyle.Render(single(c.Name))
	}

	title := prefix + name + " " + CardMetaStyle.Render(single(c.Version))
	for _, badge := range []string{c.Environment, c.Status} {
		if badge == "" {
			continue
		}
		style := BadgeStyle
		if badge == "deprecated" {
			style = BadgeDeprecatedStyle
		}
		title += " " + style.Render("["+single(badge)+"]")
	}

	width := m.width - 4
	if width < 20 {
		width = 20
	}
	lines := []string{title, "    " + ansi.Truncate(single(c.Description), width, "…")}
	if c.Owner != "" {
		lines = append(lines, "    "+CardMetaStyle.Render(single(c.Owner)+" · "+single(c.Category)))
	}
	return lines
}

// overlayLayout returns the outer box size and the content width and body
// height inside it.
func (m Model) overlayLayout() (boxW, boxH, innerW, bodyH int) {
	boxW = m.width - 4
	if boxW > 104 {
		boxW = 104
	}
	if boxW < 30 {
		boxW = 30
	}
	boxH = m.height - 2
	if boxH < 10 {
		boxH = 10
	}
	innerW = boxW - 4 // border and padding
	// border, title, tab bar, help
	bodyH = boxH - 2 - 3
	return boxW, boxH, innerW, bodyH
}

// insideOverlay reports whether the screen cell (x, y) is within the box.
func (m Model) insideOverlay(x, y int) bool {
	boxW, boxH, _, _ := m.overlayLayout()
	x0 := (m.width - boxW) / 2
	y0 := (m.height - boxH) / 2
	return x >= x0 && x < x0+boxW && y >= y0 && y < y0+boxH
}

// renderOverlay draws the detail box centered over a dimmed backdrop.
func (m Model) renderOverlay() string {
	v, _ := m.ctrl.Overlay().View()
	boxW, boxH, innerW, _ := m.overlayLayout()

	title := CardTitleStyle.Render(single(v.Name)) + " " + CardMetaStyle.Render(single(v.Version)+" · "+single(v.Category))
	var tabs []string
	for _, t := range detail.Tabs() {
		label := fmt.Sprintf("%d %s", int(t)+1, t.Title())
		if t == m.ctrl.Overlay().Tab() {
			tabs = append(tabs, TabActiveStyle.Render(label))
		} else {
			tabs = append(tabs, TabStyle.Render(label))
		}
	}

	footer := m.help.ShortHelpView(m.keys.overlayHelp(m.ctrl.Overlay().Tab()))
	if m.status != "" {
		style := StatusStyle
		if m.statusErr {
			style = ErrorStyle
		}
		footer = style.Render(m.status)
	}

	content := strings.Join([]string{
		ansi.Truncate(title, innerW, "…"),
		ansi.Truncate(strings.Join(tabs, " "), innerW, "…"),
		m.body.View(),
		ansi.Truncate(footer, innerW, "…"),
	}, "\n")

	box := OverlayStyle.Width(boxW - 2).Height(boxH - 2).Render(content)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box,
		lipgloss.WithWhitespaceChars("·"),
		lipgloss.WithWhitespaceForeground(SurfaceColor),
	)
}

// refreshOverlay rebuilds the body for the active tab.
func (m *Model) refreshOverlay() {
	v, ok := m.ctrl.Overlay().View()
	if !ok {
		m.body.SetContent("")
		return
	}

	var content string
	cursorLine := -1
	switch m.ctrl.Overlay().Tab() {
	case detail.TabOverview:
		content = m.renderMarkdown(render.Section(v, detail.TabOverview))
	case detail.TabEndpoints:
		content, cursorLine = m.renderEndpoints(v)
	case detail.TabExamples:
		content, cursorLine = m.renderExamples(v)
	case detail.TabErrors:
		content = m.renderMarkdown(render.Section(v, detail.TabErrors))
	}
	m.body.SetContent(content)
	if cursorLine >= 0 {
		offset := m.body.YOffset
		scrollTo(&offset, m.body.Height, cursorLine, 1)
		m.body.SetYOffset(offset)
	}
}

func (m Model) renderEndpoints(v detail.View) (string, int) {
	if len(v.Endpoints) == 0 {
		return PlaceholderHintStyle.Render("No endpoints documented."), -1
	}
	var lines []string
	cursorLine := 0
	for i, ep := range v.Endpoints {
		prefix := NoCursorPrefix
		if i == m.epCursor {
			prefix = CursorPrefix
			cursorLine = len(lines)
		}
		mark := CollapsedMark
		expanded := m.ctrl.Overlay().Expanded(i)
		if expanded {
			mark = ExpandedMark
		}
		lines = append(lines, prefix+mark+" "+VerbStyle.Render(single(ep.Verb))+" "+single(ep.Path))
		if !expanded {
			continue
		}
		if ep.Description != "" {
			lines = append(lines, "    "+single(ep.Description))
		}
		for _, p := range ep.Parameters {
			req := "optional"
			if p.Required {
				req = "required"
			}
			line := fmt.Sprintf("    %s (%s, %s)", single(p.Name), single(p.Type), req)
			if p.Description != "" {
				line += " " + CardMetaStyle.Render(single(p.Description))
			}
			lines = append(lines, line)
		}
		if ep.Response != "" {
			lines = append(lines, indent(m.highlightCode(ep.Response), "    "))
		}
	}
	return strings.Join(lines, "\n"), cursorLine
}

func (m Model) renderExamples(v detail.View) (string, int) {
	if len(v.Examples) == 0 {
		return PlaceholderHintStyle.Render("No examples documented."), -1
	}
	var lines []string
	cursorLine := 0
	for i, ex := range v.Examples {
		prefix, title := NoCursorPrefix, CardTitleStyle.Render(single(ex.Title))
		if i == m.exCursor {
			prefix, title = CursorPrefix, CardSelectedStyle.Render(single(ex.Title))
			cursorLine = len(lines)
		}
		kind := BadgeStyle
		if ex.Kind == catalog.KindResponse {
			kind = CardMetaStyle
		}
		lines = append(lines, prefix+title+" "+kind.Render("["+string(ex.Kind)+"]"))
		lines = append(lines, indent(m.highlightCode(ex.Code), "    "), "")
	}
	return strings.Join(lines, "\n"), cursorLine
}

// scrollTo adjusts offset so line is visible in a window of height rows,
// keeping margin rows of context where possible.
func scrollTo(offset *int, height, line, margin int) {
	if height <= 0 {
		return
	}
	if line-margin < *offset {
		*offset = line - margin
	}
	if line+margin >= *offset+height {
		*offset = line + margin - height + 1
	}
	if *offset < 0 {
		*offset = 0
	}
}

// single flattens catalog text to one terminal-safe line.
func single(s string) string {
	return strings.Join(strings.Fields(render.Literal(s)), " ")
}

func indent(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = prefix + l
	}
	return strings.Join(lines, "\n")
}
