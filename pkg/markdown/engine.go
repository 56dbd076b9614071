package markdown

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gomarkdown/markdown"
	mdhtml "github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
)

var ErrUnknownEngine = errors.New("unknown markdown engine")

// Engine selects the Markdown to HTML converter.
type Engine string

const (
	// EngineBuiltin is the pass-based converter of ToHTML.
	EngineBuiltin Engine = "builtin"
	// EngineCommonMark delegates to gomarkdown (tables, footnotes, heading ids).
	EngineCommonMark Engine = "commonmark"
)

// Engines lists the supported engines.
func Engines() []Engine {
	return []Engine{EngineBuiltin, EngineCommonMark}
}

// ParseEngine resolves an engine name. An empty name selects the builtin engine.
func ParseEngine(name string) (Engine, error) {
	switch Engine(strings.ToLower(strings.TrimSpace(name))) {
	case "", EngineBuiltin:
		return EngineBuiltin, nil
	case EngineCommonMark:
		return EngineCommonMark, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownEngine, name)
}

// Render converts Markdown to an HTML fragment with the given engine.
// Unknown engines fall back to the builtin one.
func (e Engine) Render(md string) string {
	if e == EngineCommonMark {
		return ToCommonMarkHTML(md)
	}
	return ToHTML(md)
}

// ToCommonMarkHTML converts Markdown using gomarkdown. Raw HTML present in the
// document is dropped so the result is as safe to preview as ToHTML.
func ToCommonMarkHTML(md string) string {
	// A parser cannot be reused between documents
	p := parser.NewWithExtensions(parser.CommonExtensions | parser.AutoHeadingIDs)
	renderer := mdhtml.NewRenderer(mdhtml.RendererOptions{
		Flags: mdhtml.CommonFlags | mdhtml.SkipHTML,
	})
	html := markdown.ToHTML([]byte(md), p, renderer)
	return strings.TrimSpace(string(html))
}
