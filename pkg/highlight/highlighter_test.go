package highlight_test

import (
	"sync"
	"testing"
	"unicode/utf16"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/julien-sobczak/zenpad/pkg/highlight"
)

func TestHighlightPlainText(t *testing.T) {
	theme := highlight.Light()
	output := highlight.Highlight("hello world\nsecond line", highlight.PlainText, theme)

	require.Len(t, output.Spans, 1)
	span := output.Spans[0]
	assert.Equal(t, 0, span.Start)
	assert.Equal(t, 23, span.Length)
	assert.Equal(t, highlight.TokenNone, span.Kind)
	assert.Equal(t, theme.Foreground, span.Color)
	assert.Empty(t, output.Overlays)
	assert.Equal(t, theme.Foreground, output.Base.Foreground)
	assert.Equal(t, theme.Background, output.Base.Background)
	assert.Equal(t, highlight.DefaultFont, output.Base.Font)
}

func TestHighlightEmptyText(t *testing.T) {
	output := highlight.Highlight("", highlight.JSON, highlight.Dark())
	assert.Empty(t, output.Spans)
	assert.Empty(t, output.Overlays)
}

func TestHighlightLastPatternWins(t *testing.T) {
	theme := highlight.Light()
	keyword := theme.Color(highlight.TokenKeyword)
	str := theme.Color(highlight.TokenString)

	t.Run("Overlapping later pattern splits the earlier range", func(t *testing.T) {
		table := highlight.NewPatternTable(map[highlight.Language][]highlight.LanguagePattern{
			highlight.JSON: {
				highlight.Pattern(`abc`, highlight.TokenKeyword),
				highlight.Pattern(`b`, highlight.TokenString),
			},
		})
		h := highlight.NewHighlighter(highlight.WithPatternTable(table))

		output := h.Highlight("abc", highlight.JSON, theme)

		require.Len(t, output.Spans, 3, spew.Sdump(output.Spans))
		assert.Equal(t, keyword, output.Spans[0].Color)
		assert.Equal(t, str, output.Spans[1].Color)
		assert.Equal(t, 1, output.Spans[1].Start)
		assert.Equal(t, 1, output.Spans[1].Length)
		assert.Equal(t, keyword, output.Spans[2].Color)
		require.Len(t, output.Overlays, 2)
		assert.Equal(t, highlight.TokenKeyword, output.Overlays[0].Kind)
		assert.Equal(t, highlight.TokenString, output.Overlays[1].Kind)
	})

	t.Run("Reversed order lets the wider pattern win", func(t *testing.T) {
		table := highlight.NewPatternTable(map[highlight.Language][]highlight.LanguagePattern{
			highlight.JSON: {
				highlight.Pattern(`b`, highlight.TokenString),
				highlight.Pattern(`abc`, highlight.TokenKeyword),
			},
		})
		h := highlight.NewHighlighter(highlight.WithPatternTable(table))

		output := h.Highlight("abc", highlight.JSON, theme)

		require.Len(t, output.Spans, 1, spew.Sdump(output.Spans))
		assert.Equal(t, keyword, output.Spans[0].Color)
		assert.Equal(t, 3, output.Spans[0].Length)
	})
}

func TestHighlightSkipsInvalidPattern(t *testing.T) {
	table := highlight.NewPatternTable(map[highlight.Language][]highlight.LanguagePattern{
		highlight.Shell: {
			highlight.Pattern(`(unclosed`, highlight.TokenKeyword),
			highlight.Pattern(`x`, highlight.TokenString),
		},
	})
	var reported []*highlight.InvalidPatternError
	h := highlight.NewHighlighter(
		highlight.WithPatternTable(table),
		highlight.OnInvalidPattern(func(err *highlight.InvalidPatternError) {
			reported = append(reported, err)
		}))

	theme := highlight.Dark()
	output := h.Highlight("x", highlight.Shell, theme)

	require.Len(t, reported, 1)
	assert.Equal(t, highlight.Shell, reported[0].Language)
	assert.Equal(t, `(unclosed`, reported[0].Pattern.Regex)
	require.Len(t, output.Spans, 1)
	assert.Equal(t, theme.Color(highlight.TokenString), output.Spans[0].Color)
	assert.Error(t, table.Validate())
}

func TestHighlightUTF16Offsets(t *testing.T) {
	text := "é😀 true"
	output := highlight.Highlight(text, highlight.JSON, highlight.Light())

	require.Len(t, output.Overlays, 1)
	overlay := output.Overlays[0]
	assert.Equal(t, highlight.TokenKeyword, overlay.Kind)
	assert.Equal(t, 4, overlay.Start) // é (1) + 😀 (2) + space (1)
	assert.Equal(t, 4, overlay.Length)
	assert.Equal(t, 7, overlay.ByteStart)
	assert.Equal(t, "true", text[overlay.ByteStart:overlay.ByteEnd])

	total := 0
	for _, span := range output.Spans {
		assert.Equal(t, total, span.Start)
		total += span.Length
	}
	assert.Equal(t, len(utf16.Encode([]rune(text))), total)
}

func TestHighlightLanguages(t *testing.T) {
	theme := highlight.Light()

	var tests = []struct {
		name     string
		language highlight.Language
		text     string
		offset   int
		expected highlight.TokenKind
	}{
		{"JSON number", highlight.JSON, `{"name": "zen", "n": 42}`, 21, highlight.TokenNumber},
		{"JSON brace", highlight.JSON, `{"name": "zen", "n": 42}`, 0, highlight.TokenPunctuation},
		// The string pattern comes after the property pattern and recolors the key.
		{"JSON key recolored as string", highlight.JSON, `{"name": "zen", "n": 42}`, 2, highlight.TokenString},
		{"JSON colon", highlight.JSON, `{"name": "zen", "n": 42}`, 7, highlight.TokenPunctuation},
		{"JSON space", highlight.JSON, `{"name": "zen", "n": 42}`, 8, highlight.TokenNone},
		{"Python comment", highlight.Python, "# a comment", 4, highlight.TokenComment},
		// Keywords are matched after comments and win inside them.
		{"Python keyword inside comment", highlight.Python, "# if x", 2, highlight.TokenKeyword},
		// The function pattern covers the whole "def name" match, keyword included.
		{"Python def", highlight.Python, "def run():", 0, highlight.TokenFunction},
		{"Python function name", highlight.Python, "def run():", 4, highlight.TokenFunction},
		{"JavaScript template string", highlight.JavaScript, "x = `a`", 5, highlight.TokenString},
		{"JavaScript type", highlight.JavaScript, "new Date()", 4, highlight.TokenType},
		{"HTML tag", highlight.HTML, `<div class="a">`, 1, highlight.TokenTag},
		{"HTML attribute", highlight.HTML, `<div class="a">`, 5, highlight.TokenAttribute},
		{"CSS property", highlight.CSS, "p { color: #fff; }", 4, highlight.TokenProperty},
		{"CSS hex color", highlight.CSS, "p { color: #fff; }", 12, highlight.TokenNumber},
		{"Swift attribute", highlight.SwiftLike, "@State var x = 1", 1, highlight.TokenAttribute},
		{"YAML key", highlight.YAML, "name: zen", 0, highlight.TokenProperty},
		{"YAML boolean", highlight.YAML, "enabled: yes", 10, highlight.TokenKeyword},
		{"Shell variable", highlight.Shell, "echo $HOME", 6, highlight.TokenVariable},
		{"Markdown heading", highlight.Markdown, "# Title\ntext", 3, highlight.TokenHeading},
		{"Markdown text", highlight.Markdown, "# Title\ntext", 9, highlight.TokenNone},
		{"Markdown link", highlight.Markdown, "see [a](b)", 5, highlight.TokenLink},
		{"Markdown fenced code", highlight.Markdown, "```\nx\n```", 4, highlight.TokenCodeBlock},
		{"Markdown list marker", highlight.Markdown, "- item", 0, highlight.TokenPunctuation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output := highlight.Highlight(tt.text, tt.language, theme)
			assert.Equal(t, theme.Color(tt.expected), output.ColorAt(tt.offset), spew.Sdump(output.Spans))
		})
	}
}

func TestHighlightIsIdempotent(t *testing.T) {
	text := "const x = \"a\"; // done\nfunction f() { return 1.5 }"
	first := highlight.Highlight(text, highlight.JavaScript, highlight.Dark())
	second := highlight.Highlight(text, highlight.JavaScript, highlight.Dark())
	assert.Equal(t, first, second)
}

func TestHighlightConcurrentCalls(t *testing.T) {
	h := highlight.NewHighlighter()
	texts := []string{"def f(): pass", "x: 1", "echo $A", "# Title"}
	langs := []highlight.Language{highlight.Python, highlight.YAML, highlight.Shell, highlight.Markdown}

	expected := make([]*highlight.StyledOutput, len(texts))
	for i := range texts {
		expected[i] = h.Highlight(texts[i], langs[i], highlight.Light())
	}

	var wg sync.WaitGroup
	for n := 0; n < 8; n++ {
		for i := range texts {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				assert.Equal(t, expected[i], h.Highlight(texts[i], langs[i], highlight.Light()))
			}(i)
		}
	}
	wg.Wait()
}

func TestSegments(t *testing.T) {
	output := highlight.Highlight("a: 1", highlight.YAML, highlight.Light())
	var text string
	for _, segment := range output.Segments() {
		text += segment.Text
	}
	assert.Equal(t, "a: 1", text)
	assert.Equal(t, highlight.TokenProperty, output.Segments()[0].Kind)
}
