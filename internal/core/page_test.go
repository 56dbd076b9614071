package core

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/julien-sobczak/zenpad/pkg/markdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBodyHTML(t *testing.T) {
	md := NewDocument("Notes", "# Hi\n\n<b>bold</b>", FileMarkdown)
	assert.Equal(t, "<h1>Hi</h1>\n<p>&lt;b&gt;bold&lt;/b&gt;</p>", BodyHTML(md, markdown.EngineBuiltin))

	txt := NewDocument("Notes", "# Hi\n<b>bold</b> & co", FilePlainText)
	assert.Equal(t, "<pre># Hi\n&lt;b&gt;bold&lt;/b&gt; &amp; co</pre>", BodyHTML(txt, markdown.EngineBuiltin))
}

func TestRenderPageEscapesAttributes(t *testing.T) {
	doc := NewDocument("Notes", `![a](x" onerror="location='//evil.example')`, FileMarkdown)
	for _, engine := range []markdown.Engine{markdown.EngineBuiltin, markdown.EngineCommonMark} {
		page, err := RenderPage(doc, PageOptions{Engine: engine})
		require.NoError(t, err)
		assert.NotContains(t, page, `onerror="`, engine)
	}
}

func TestRenderPage(t *testing.T) {
	FreezeAt(t, time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC))
	doc := NewDocument("<Notes>", "# Hi\n\nSome *text*", FileMarkdown)

	t.Run("Preview", func(t *testing.T) {
		page, err := RenderPage(doc, PageOptions{Dark: true, Engine: markdown.EngineBuiltin})
		require.NoError(t, err)
		assert.Contains(t, page, "<title>&lt;Notes&gt;</title>")
		assert.Contains(t, page, "<h1>Hi</h1>\n<p>Some <em>text</em></p>")
		assert.Contains(t, page, DarkPalette.Background)
		assert.NotContains(t, page, LightPalette.Background)
		assert.NotContains(t, page, "Exported from ZenPad")
		assert.NotContains(t, page, "max-width: 800px")
	})

	t.Run("Light preview", func(t *testing.T) {
		page, err := RenderPage(doc, PageOptions{Engine: markdown.EngineBuiltin})
		require.NoError(t, err)
		assert.Contains(t, page, LightPalette.Link)
		assert.NotContains(t, page, DarkPalette.Link)
	})

	t.Run("Export", func(t *testing.T) {
		page, err := RenderPage(doc, PageOptions{Export: true, Engine: markdown.EngineCommonMark})
		require.NoError(t, err)
		assert.Contains(t, page, "<h1>&lt;Notes&gt;</h1>")
		assert.Contains(t, page, `<div class="meta">Created: `)
		assert.Contains(t, page, "Exported from ZenPad")
		assert.Contains(t, page, "max-width: 800px")
		assert.Contains(t, page, "prefers-color-scheme: dark")
		assert.Contains(t, page, "<em>text</em>")
	})
}

func TestExportHTML(t *testing.T) {
	doc := NewDocument("Notes", "plain text", FilePlainText)
	path := filepath.Join(t.TempDir(), "notes.html")

	err := ExportHTML(doc, path, PageOptions{})
	require.NoError(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "<pre>plain text</pre>")
	assert.Contains(t, string(content), "Exported from ZenPad")
}

func TestPreviewFile(t *testing.T) {
	doc := NewDocument("Notes", "# Preview", FileMarkdown)

	path, err := PreviewFile(doc, PageOptions{Engine: markdown.EngineBuiltin})
	require.NoError(t, err)
	t.Cleanup(func() { os.Remove(path) })

	assert.Equal(t, ".html", filepath.Ext(path))
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "<h1>Preview</h1>")
}
