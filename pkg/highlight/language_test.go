package highlight_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/julien-sobczak/zenpad/pkg/highlight"
)

func TestDetect(t *testing.T) {
	var tests = []struct {
		extension string
		expected  highlight.Language
	}{
		{"md", highlight.Markdown},
		{"markdown", highlight.Markdown},
		{"JSON", highlight.JSON},
		{".Py", highlight.Python},
		{"pyw", highlight.Python},
		{"tsx", highlight.JavaScript},
		{"htm", highlight.HTML},
		{"scss", highlight.CSS},
		{"swift", highlight.SwiftLike},
		{"yml", highlight.YAML},
		{"zsh", highlight.Shell},
		{"txt", highlight.PlainText},
		{"exe", highlight.PlainText},
		{"", highlight.PlainText},
	}
	for _, tt := range tests {
		t.Run(tt.extension, func(t *testing.T) {
			assert.Equal(t, tt.expected, highlight.Detect(tt.extension))
		})
	}
}

func TestDetectFromPath(t *testing.T) {
	assert.Equal(t, highlight.Markdown, highlight.DetectFromPath("notes/file.md"))
	assert.Equal(t, highlight.JSON, highlight.DetectFromPath("/tmp/FILE.JSON"))
	assert.Equal(t, highlight.PlainText, highlight.DetectFromPath("Makefile"))
}

func TestParseLanguage(t *testing.T) {
	var tests = []struct {
		name     string
		expected highlight.Language
	}{
		{"Plain Text", highlight.PlainText},
		{"text", highlight.PlainText},
		{"swift", highlight.SwiftLike},
		{"JavaScript", highlight.JavaScript},
		{"js", highlight.JavaScript},
		{" YAML ", highlight.YAML},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actual, err := highlight.ParseLanguage(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, actual)
		})
	}

	_, err := highlight.ParseLanguage("cobol")
	assert.True(t, errors.Is(err, highlight.ErrUnknownLanguage))
}

func TestLanguageNames(t *testing.T) {
	assert.Len(t, highlight.Languages(), 10)
	assert.Equal(t, "Swift", highlight.SwiftLike.String())
	assert.Equal(t, "swift", highlight.SwiftLike.ShortName())
	assert.Equal(t, []string{"js", "jsx", "ts", "tsx"}, highlight.JavaScript.Extensions())

	text, err := highlight.Markdown.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "markdown", string(text))

	var l highlight.Language
	require.NoError(t, l.UnmarshalText([]byte("Shell")))
	assert.Equal(t, highlight.Shell, l)
}

func TestRegistryOverrides(t *testing.T) {
	registry := highlight.NewRegistry().
		WithExtension(".MDX", highlight.Markdown).
		WithExtension("txt", highlight.YAML)

	assert.Equal(t, highlight.Markdown, registry.Detect("mdx"))
	assert.Equal(t, highlight.YAML, registry.Detect("TXT"))
	assert.Equal(t, highlight.Markdown, registry.DetectFromPath("page.mdx"))
	assert.Equal(t, []string{"markdown", "md", "mdx"}, registry.Extensions(highlight.Markdown))

	// The built-in registry is untouched
	assert.Equal(t, highlight.PlainText, highlight.Detect("mdx"))
	assert.Equal(t, highlight.PlainText, highlight.Detect("txt"))
}
