package core

import (
	"bytes"
	"fmt"
	"html"
	"html/template"
	"os"
	"time"

	"github.com/julien-sobczak/zenpad/pkg/clock"
	"github.com/julien-sobczak/zenpad/pkg/markdown"
)

// Palette lists the colors of an HTML page.
type Palette struct {
	Text           string
	Background     string
	CodeBackground string
	Border         string
	Link           string
	Quote          string
}

var (
	LightPalette = Palette{
		Text:           "#1a1a1a",
		Background:     "#ffffff",
		CodeBackground: "#f5f5f5",
		Border:         "#e0e0e0",
		Link:           "#0066cc",
		Quote:          "#666666",
	}
	DarkPalette = Palette{
		Text:           "#e0e0e0",
		Background:     "#1e1e1e",
		CodeBackground: "#2d2d2d",
		Border:         "#404040",
		Link:           "#6db3f2",
		Quote:          "#a0a0a0",
	}
)

// PaletteFor returns the dark or light palette.
func PaletteFor(dark bool) Palette {
	if dark {
		return DarkPalette
	}
	return LightPalette
}

// PageOptions controls RenderPage.
type PageOptions struct {
	// Dark selects the dark palette. Exported pages follow the reader's
	// preferred color scheme instead.
	Dark bool
	// Export adds the title, the dates and a footer, and limits the width.
	Export bool
	Engine markdown.Engine
}

const dateLayout = "Jan 2, 2006 at 15:04"

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>{{.Title}}</title>
<style>
* { box-sizing: border-box; }
body {
  font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', system-ui, sans-serif;
  font-size: 15px;
  line-height: 1.7;
  color: {{.Palette.Text}};
  background-color: {{.Palette.Background}};
{{- if .Export}}
  max-width: 800px;
  margin: 0 auto;
  padding: 40px 20px;
{{- else}}
  margin: 0;
  padding: 30px 40px;
{{- end}}
}
h1, h2, h3, h4, h5, h6 { font-weight: 600; margin-top: 1.5em; margin-bottom: 0.5em; line-height: 1.3; }
h1 { font-size: 2em; border-bottom: 1px solid {{.Palette.Border}}; padding-bottom: 0.3em; }
h2 { font-size: 1.5em; border-bottom: 1px solid {{.Palette.Border}}; padding-bottom: 0.3em; }
h3 { font-size: 1.25em; }
h4 { font-size: 1em; }
p { margin: 1em 0; }
a { color: {{.Palette.Link}}; text-decoration: none; }
a:hover { text-decoration: underline; }
code { font-family: 'SF Mono', Menlo, Monaco, monospace; font-size: 0.9em; background-color: {{.Palette.CodeBackground}}; padding: 0.2em 0.4em; border-radius: 4px; }
pre { background-color: {{.Palette.CodeBackground}}; padding: 16px; border-radius: 8px; overflow-x: auto; margin: 1em 0; }
pre code { background: none; padding: 0; }
blockquote { border-left: 4px solid {{.Palette.Border}}; margin: 1em 0; padding-left: 16px; color: {{.Palette.Quote}}; }
ul, ol { padding-left: 2em; margin: 1em 0; }
li { margin: 0.25em 0; }
li.task-list-item { list-style: none; }
hr { border: none; border-top: 1px solid {{.Palette.Border}}; margin: 2em 0; }
img { max-width: 100%; height: auto; border-radius: 8px; }
{{- if .Export}}
.meta { color: {{.Palette.Quote}}; font-size: 0.9em; margin-bottom: 2em; }
footer { margin-top: 3em; padding-top: 1em; border-top: 1px solid {{.Palette.Border}}; color: {{.Palette.Quote}}; font-size: 0.85em; }
@media (prefers-color-scheme: dark) {
  body { color: {{.DarkPalette.Text}}; background-color: {{.DarkPalette.Background}}; }
  pre, code { background-color: {{.DarkPalette.CodeBackground}}; }
  h1, h2, hr, footer { border-color: {{.DarkPalette.Border}}; }
  blockquote { border-left-color: {{.DarkPalette.Border}}; color: {{.DarkPalette.Quote}}; }
  a { color: {{.DarkPalette.Link}}; }
}
{{- end}}
</style>
</head>
<body>
{{- if .Export}}
<h1>{{.Title}}</h1>
<div class="meta">Created: {{.CreatedAt}} • Modified: {{.ModifiedAt}}</div>
{{- end}}
{{.Body}}
{{- if .Export}}
<footer>Exported from ZenPad</footer>
{{- end}}
</body>
</html>
`))

type pageData struct {
	Title       string
	Palette     Palette
	DarkPalette Palette
	Export      bool
	CreatedAt   string
	ModifiedAt  string
	Body        template.HTML
}

// BodyHTML converts the document content to an HTML fragment.
// Markdown goes through the engine. Plain text is escaped inside <pre>.
func BodyHTML(doc *Document, engine markdown.Engine) string {
	if doc.IsMarkdown() {
		CurrentLogger().Tracef("Rendering %q with engine %s", doc.Title, engine)
		return engine.Render(doc.Content)
	}
	return "<pre>" + html.EscapeString(doc.Content) + "</pre>"
}

// RenderPage renders a complete HTML page for the document.
func RenderPage(doc *Document, opts PageOptions) (string, error) {
	palette := PaletteFor(opts.Dark)
	if opts.Export {
		palette = LightPalette
	}
	data := pageData{
		Title:       doc.Title,
		Palette:     palette,
		DarkPalette: DarkPalette,
		Export:      opts.Export,
		CreatedAt:   formatDate(doc.CreatedAt),
		ModifiedAt:  formatDate(doc.ModifiedAt),
		// Both engines escape the user content, attribute values included
		Body: template.HTML(BodyHTML(doc, opts.Engine)),
	}

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render %q: %w", doc.Title, err)
	}
	return buf.String(), nil
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		t = clock.Now()
	}
	return t.Local().Format(dateLayout)
}

// ExportHTML writes the export page of the document to the given path.
func ExportHTML(doc *Document, path string, opts PageOptions) error {
	opts.Export = true
	page, err := RenderPage(doc, opts)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(page), 0644); err != nil {
		return fmt.Errorf("failed to export %s: %w", path, err)
	}
	CurrentLogger().Infof("Exported %q to %s", doc.Title, path)
	return nil
}

// PreviewFile writes the preview page to a temporary file and returns its path.
func PreviewFile(doc *Document, opts PageOptions) (string, error) {
	page, err := RenderPage(doc, opts)
	if err != nil {
		return "", err
	}
	f, err := os.CreateTemp("", "zenpad-preview-*.html")
	if err != nil {
		return "", fmt.Errorf("failed to create preview file: %w", err)
	}
	defer f.Close()
	if _, err := f.WriteString(page); err != nil {
		return "", fmt.Errorf("failed to write preview file: %w", err)
	}
	CurrentLogger().Debugf("Preview written to %s", f.Name())
	return f.Name(), nil
}
