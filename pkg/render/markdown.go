package render

import (
	"fmt"
	"strings"

	"github.com/stalwar-deckers/catalog/pkg/detail"
)

// Markdown renders the given tabs of v as a markdown document. With no tabs
// every section is rendered in tab order.
func Markdown(v detail.View, tabs ...detail.Tab) string {
	if len(tabs) == 0 {
		tabs = detail.Tabs()
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", inline(v.Name))
	fmt.Fprintf(&b, "%s · %s · %s", CodeSpan(inline(v.ID)), inline(v.Version), inline(v.Category))
	if v.Owner != "" {
		fmt.Fprintf(&b, " · %s", inline(v.Owner))
	}
	for _, badge := range []string{v.Environment, v.Status} {
		if badge != "" {
			fmt.Fprintf(&b, " · **%s**", inline(badge))
		}
	}
	b.WriteString("\n\n")

	for _, tab := range tabs {
		fmt.Fprintf(&b, "## %s\n\n", tab.Title())
		writeSection(&b, v, tab)
	}
	return b.String()
}

// Section renders the body of one tab without a heading.
func Section(v detail.View, tab detail.Tab) string {
	var b strings.Builder
	writeSection(&b, v, tab)
	return b.String()
}

func writeSection(b *strings.Builder, v detail.View, tab detail.Tab) {
	switch tab {
	case detail.TabOverview:
		writeOverview(b, v.Overview)
	case detail.TabEndpoints:
		writeEndpoints(b, v)
	case detail.TabExamples:
		writeExamples(b, v)
	case detail.TabErrors:
		writeErrors(b, v)
	}
}

func writeOverview(b *strings.Builder, o detail.Overview) {
	fmt.Fprintf(b, "%s\n\n", inline(o.Description))
	if o.BaseURL != "" {
		fmt.Fprintf(b, "- **Base URL:** %s\n", CodeSpan(inline(o.BaseURL)))
	}
	if o.AuthScheme != "" {
		fmt.Fprintf(b, "- **Authentication:** %s", inline(o.AuthScheme))
		if o.AuthNote != "" {
			fmt.Fprintf(b, " (%s)", inline(o.AuthNote))
		}
		b.WriteString("\n")
	}
	if o.RateLimit != "" {
		fmt.Fprintf(b, "- **Rate limit:** %s\n", inline(o.RateLimit))
	}
	b.WriteString("\n")

	if len(o.Methods) > 0 {
		b.WriteString("### Methods\n\n")
		for _, m := range o.Methods {
			fmt.Fprintf(b, "- **%s** %s\n", inline(m.Verb), inline(m.Description))
		}
		b.WriteString("\n")
	}
	if len(o.Notes) > 0 {
		b.WriteString("### Notes\n\n")
		for _, n := range o.Notes {
			fmt.Fprintf(b, "- %s\n", inline(n))
		}
		b.WriteString("\n")
	}
}

func writeEndpoints(b *strings.Builder, v detail.View) {
	if len(v.Endpoints) == 0 {
		b.WriteString("_No endpoints documented._\n\n")
		return
	}
	for _, ep := range v.Endpoints {
		fmt.Fprintf(b, "### %s\n\n", CodeSpan(inline(ep.Verb)+" "+inline(ep.Path)))
		if ep.Description != "" {
			fmt.Fprintf(b, "%s\n\n", inline(ep.Description))
		}
		if len(ep.Parameters) > 0 {
			b.WriteString("| Parameter | Type | Required | Description |\n|---|---|---|---|\n")
			for _, p := range ep.Parameters {
				req := "no"
				if p.Required {
					req = "yes"
				}
				fmt.Fprintf(b, "| %s | %s | %s | %s |\n", CodeSpan(cell(p.Name)), cell(p.Type), req, cell(p.Description))
			}
			b.WriteString("\n")
		}
		if ep.Response != "" {
			b.WriteString(Fence(Literal(ep.Response), FenceInfo(ep.Response)))
			b.WriteString("\n")
		}
	}
}

func writeExamples(b *strings.Builder, v detail.View) {
	if len(v.Examples) == 0 {
		b.WriteString("_No examples documented._\n\n")
		return
	}
	for _, ex := range v.Examples {
		fmt.Fprintf(b, "### %s _(%s)_\n\n", inline(ex.Title), ex.Kind)
		b.WriteString(Fence(Literal(ex.Code), FenceInfo(ex.Code)))
		b.WriteString("\n")
	}
}

func writeErrors(b *strings.Builder, v detail.View) {
	b.WriteString("| Code | Status | Description |\n|---|---|---|\n")
	for _, e := range v.Errors {
		fmt.Fprintf(b, "| %d | %s | %s |\n", e.Code, cell(e.Status), cell(e.Description))
	}
	b.WriteString("\n")
}

// inline flattens catalog text onto one line for headings and list items.
func inline(s string) string {
	return strings.Join(strings.Fields(Literal(s)), " ")
}

func cell(s string) string {
	return strings.ReplaceAll(inline(s), "|", `\|`)
}
