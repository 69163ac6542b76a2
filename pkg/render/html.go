package render

import (
	"fmt"
	"html/template"
	"io"

	"github.com/stalwar-deckers/catalog/pkg/catalog"
	"github.com/stalwar-deckers/catalog/pkg/detail"
	"github.com/stalwar-deckers/catalog/pkg/search"
)

// Page is the data behind the exported index.html.
type Page struct {
	Title       string
	Term        string
	Filter      string
	Count       int
	Total       int
	Sections    []search.Section
	Placeholder *search.Placeholder
	Details     []Detail
	Tabs        []detail.Tab
}

// Detail is one record's detail section with its endpoint and tab anchors.
type Detail struct {
	detail.View
	Anchor string
}

// NewPage builds export data from a grid that has already been synced to
// state. Only visible cards get detail sections.
func NewPage(title string, state search.FilterState, grid *search.Grid, views *detail.Presenter) Page {
	p := Page{
		Title:  title,
		Term:   state.Term,
		Filter: state.Filter,
		Count:  grid.Count(),
		Total:  grid.Total(),
		Tabs:   detail.Tabs(),
	}
	for _, s := range grid.Sections() {
		if s.Hidden {
			continue
		}
		visible := s
		visible.Cards = nil
		for _, c := range s.Cards {
			if !c.Hidden {
				visible.Cards = append(visible.Cards, c)
			}
		}
		p.Sections = append(p.Sections, visible)
	}
	if ph, ok := grid.Placeholder(); ok {
		p.Placeholder = &ph
	}
	for _, c := range grid.VisibleCards() {
		if v, ok := views.Present(c.ID); ok {
			p.Details = append(p.Details, Detail{View: v, Anchor: "api-" + c.ID})
		}
	}
	return p
}

var pageTmpl = template.Must(template.New("page").Funcs(template.FuncMap{
	"kind": func(k catalog.ExampleKind) string { return string(k) },
}).Parse(pageTemplate))

// HTML writes p as a standalone page. Catalog text, including example code,
// is escaped by html/template. Opening or closing a detail resets it to the
// first tab with every endpoint collapsed.
func HTML(w io.Writer, p Page) error {
	if err := pageTmpl.Execute(w, p); err != nil {
		return fmt.Errorf("rendering page: %w", err)
	}
	return nil
}

const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Title}}</title>
  <style>
    body { font-family: system-ui, sans-serif; margin: 0; background: #f6f7f9; color: #1f2328; }
    header { padding: 1.5rem 2rem; background: #24292f; color: #fff; }
    header p { margin: .25rem 0 0; color: #c9d1d9; }
    main { padding: 1rem 2rem; }
    h2.category { text-transform: capitalize; margin-top: 2rem; }
    .grid { display: grid; grid-template-columns: repeat(auto-fill, minmax(280px, 1fr)); gap: 1rem; }
    .card { display: block; background: #fff; border: 1px solid #d0d7de; border-radius: 8px; padding: 1rem; color: inherit; text-decoration: none; }
    .card:hover { border-color: #0969da; }
    .badge { display: inline-block; font-size: .75rem; padding: .1rem .5rem; border-radius: 1rem; background: #ddf4ff; margin-right: .25rem; }
    .badge.deprecated { background: #ffebe9; }
    .empty { text-align: center; padding: 3rem; color: #57606a; }
    .detail { display: none; position: fixed; inset: 0; background: rgba(0,0,0,.5); overflow: auto; }
    .detail:target { display: block; }
    .box { background: #fff; max-width: 900px; margin: 3rem auto; border-radius: 8px; padding: 1.5rem; position: relative; }
    .close { position: absolute; top: 1rem; right: 1.5rem; text-decoration: none; font-size: 1.5rem; color: #57606a; }
    .tabs > input { display: none; }
    .tabs > label { display: inline-block; padding: .5rem 1rem; cursor: pointer; border-bottom: 2px solid transparent; }
    .panel { display: none; padding-top: 1rem; }
    .tabs > input:nth-of-type(1):checked ~ label:nth-of-type(1),
    .tabs > input:nth-of-type(2):checked ~ label:nth-of-type(2),
    .tabs > input:nth-of-type(3):checked ~ label:nth-of-type(3),
    .tabs > input:nth-of-type(4):checked ~ label:nth-of-type(4) { border-color: #0969da; font-weight: 600; }
    .tabs > input:nth-of-type(1):checked ~ .panels > .panel:nth-of-type(1),
    .tabs > input:nth-of-type(2):checked ~ .panels > .panel:nth-of-type(2),
    .tabs > input:nth-of-type(3):checked ~ .panels > .panel:nth-of-type(3),
    .tabs > input:nth-of-type(4):checked ~ .panels > .panel:nth-of-type(4) { display: block; }
    pre { background: #f6f8fa; padding: .75rem; border-radius: 6px; overflow-x: auto; }
    table { border-collapse: collapse; }
    td, th { border: 1px solid #d0d7de; padding: .25rem .5rem; text-align: left; }
  </style>
</head>
<body>
  <header>
    <h1>{{.Title}}</h1>
    <p><span class="count">{{.Count}}</span> of {{.Total}} APIs{{if .Term}} matching &ldquo;{{.Term}}&rdquo;{{end}} &middot; filter: {{.Filter}}</p>
  </header>
  <main>
{{- if .Placeholder}}
    <div class="empty">
      <h2>{{.Placeholder.Title}}</h2>
      <p>{{.Placeholder.Hint}}</p>
    </div>
{{- end}}
{{- range .Sections}}
    <section>
      <h2 class="category">{{.Category}}</h2>
      <div class="grid">
{{- range .Cards}}
        <a class="card" href="#api-{{.ID}}">
          <h3>{{.Name}}</h3>
          <p>{{.Description}}</p>
          <span class="badge">{{.Version}}</span>
          {{- if .Environment}}<span class="badge">{{.Environment}}</span>{{end}}
          {{- if .Status}}<span class="badge {{.Status}}">{{.Status}}</span>{{end}}
          {{- if .Owner}}<p><small>{{.Owner}}</small></p>{{end}}
        </a>
{{- end}}
      </div>
    </section>
{{- end}}
  </main>
{{- $tabs := .Tabs}}
{{- range .Details}}
  {{- $d := .}}
  <div class="detail" id="{{.Anchor}}">
    <div class="box">
      <a class="close" href="#" aria-label="Close">&times;</a>
      <h2>{{.Name}} <small>{{.Version}}</small></h2>
      <form class="tabs" autocomplete="off">
        {{- range $i, $t := $tabs}}
        <input type="radio" name="{{$d.Anchor}}-tab" id="{{$d.Anchor}}-{{$t}}"{{if eq $i 0}} checked{{end}}>
        {{- end}}
        {{- range $tabs}}
        <label for="{{$d.Anchor}}-{{.}}">{{.Title}}</label>
        {{- end}}
        <div class="panels">
          <div class="panel">
            <p>{{.Overview.Description}}</p>
            <ul>
              {{- if .Overview.BaseURL}}<li>Base URL: <code>{{.Overview.BaseURL}}</code></li>{{end}}
              {{- if .Overview.AuthScheme}}<li>Authentication: {{.Overview.AuthScheme}}{{if .Overview.AuthNote}} ({{.Overview.AuthNote}}){{end}}</li>{{end}}
              {{- if .Overview.RateLimit}}<li>Rate limit: {{.Overview.RateLimit}}</li>{{end}}
            </ul>
            {{- if .Overview.Methods}}
            <h3>Methods</h3>
            <ul>{{range .Overview.Methods}}<li><strong>{{.Verb}}</strong> {{.Description}}</li>{{end}}</ul>
            {{- end}}
            {{- if .Overview.Notes}}
            <h3>Notes</h3>
            <ul>{{range .Overview.Notes}}<li>{{.}}</li>{{end}}</ul>
            {{- end}}
          </div>
          <div class="panel">
            {{- range .Endpoints}}
            <details>
              <summary><code>{{.Verb}} {{.Path}}</code></summary>
              <p>{{.Description}}</p>
              {{- if .Parameters}}
              <table>
                <tr><th>Parameter</th><th>Type</th><th>Required</th><th>Description</th></tr>
                {{- range .Parameters}}
                <tr><td><code>{{.Name}}</code></td><td>{{.Type}}</td><td>{{if .Required}}yes{{else}}no{{end}}</td><td>{{.Description}}</td></tr>
                {{- end}}
              </table>
              {{- end}}
              {{- if .Response}}<pre><code>{{.Response}}</code></pre>{{end}}
            </details>
            {{- else}}
            <p>No endpoints documented.</p>
            {{- end}}
          </div>
          <div class="panel">
            {{- range .Examples}}
            <h3>{{.Title}} <span class="badge">{{kind .Kind}}</span></h3>
            <pre><code>{{.Code}}</code></pre>
            {{- else}}
            <p>No examples documented.</p>
            {{- end}}
          </div>
          <div class="panel">
            <table>
              <tr><th>Code</th><th>Status</th><th>Description</th></tr>
              {{- range .Errors}}
              <tr><td>{{.Code}}</td><td>{{.Status}}</td><td>{{.Description}}</td></tr>
              {{- end}}
            </table>
          </div>
        </div>
      </form>
    </div>
  </div>
{{- end}}
  <script>
    function resetDetails() {
      document.querySelectorAll(".detail").forEach(function (d) {
        d.querySelector("form.tabs").reset();
        d.querySelectorAll("details[open]").forEach(function (e) { e.open = false; });
      });
    }
    window.addEventListener("hashchange", resetDetails);
    window.addEventListener("pageshow", resetDetails);
  </script>
</body>
</html>
`
