package highlight

import "log"

// Highlighter applies a pattern table to texts. A Highlighter holds no state
// between calls and is safe for concurrent use.
type Highlighter struct {
	table            *PatternTable
	font             Font
	onInvalidPattern func(err *InvalidPatternError)
}

// NewHighlighter returns a highlighter using the built-in patterns by default.
func NewHighlighter(options ...func(*Highlighter)) *Highlighter {
	result := &Highlighter{
		table: defaultTable,
		font:  DefaultFont,
		onInvalidPattern: func(err *InvalidPatternError) {
			log.Println(err)
		},
	}
	for _, option := range options {
		option(result)
	}
	return result
}

// WithPatternTable replaces the built-in patterns.
func WithPatternTable(table *PatternTable) func(*Highlighter) {
	return func(h *Highlighter) {
		h.table = table
	}
}

// WithFont overrides the base font.
func WithFont(font Font) func(*Highlighter) {
	return func(h *Highlighter) {
		h.font = font
	}
}

// OnInvalidPattern registers the callback invoked when a pattern is skipped
// because it does not compile.
func OnInvalidPattern(fn func(err *InvalidPatternError)) func(*Highlighter) {
	return func(h *Highlighter) {
		h.onInvalidPattern = fn
	}
}

// Highlight colors text. The base layer covers the whole text with the theme
// foreground, then every pattern of the language overwrites the color of its
// matches, in table order.
//
// Every pattern scans the whole text, so a call costs O(patterns × len(text)).
func (h *Highlighter) Highlight(text string, language Language, theme Theme) *StyledOutput {
	output := &StyledOutput{
		Text:     text,
		Language: language,
		Base: Style{
			Foreground: theme.Foreground,
			Background: theme.Background,
			Font:       h.font,
		},
	}

	offsets := utf16Offsets(text)
	kinds := make([]TokenKind, len(text))

	for _, p := range h.table.patterns[language] {
		if p.err != nil {
			if h.onInvalidPattern != nil {
				h.onInvalidPattern(&InvalidPatternError{Language: language, Pattern: p.LanguagePattern, Err: p.err})
			}
			continue
		}
		for _, loc := range p.re.FindAllStringIndex(text, -1) {
			start, end := loc[0], loc[1]
			if start == end {
				continue
			}
			for i := start; i < end; i++ {
				kinds[i] = p.Kind
			}
			output.Overlays = append(output.Overlays, StyledSpan{
				Start:     offsets[start],
				Length:    offsets[end] - offsets[start],
				ByteStart: start,
				ByteEnd:   end,
				Kind:      p.Kind,
				Color:     theme.Color(p.Kind),
			})
		}
	}

	// Flatten
	for start := 0; start < len(text); {
		end := start + 1
		for end < len(text) && kinds[end] == kinds[start] {
			end++
		}
		output.Spans = append(output.Spans, StyledSpan{
			Start:     offsets[start],
			Length:    offsets[end] - offsets[start],
			ByteStart: start,
			ByteEnd:   end,
			Kind:      kinds[start],
			Color:     theme.Color(kinds[start]),
		})
		start = end
	}

	return output
}

var defaultHighlighter = NewHighlighter()

// Highlight colors text using the built-in patterns.
func Highlight(text string, language Language, theme Theme) *StyledOutput {
	return defaultHighlighter.Highlight(text, language, theme)
}
