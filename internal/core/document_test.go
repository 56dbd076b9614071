package core

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/julien-sobczak/zenpad/internal/testutil"
	"github.com/julien-sobczak/zenpad/pkg/highlight"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDocument(t *testing.T) {
	now := FreezeAt(t, time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC))

	doc := NewDocument("", "", "")
	assert.NotEqual(t, uuid.Nil, doc.ID)
	assert.Equal(t, "Untitled", doc.Title)
	assert.Equal(t, "", doc.Content)
	assert.Equal(t, "", doc.Path)
	assert.Equal(t, FilePlainText, doc.FileType)
	assert.Equal(t, now, doc.CreatedAt)
	assert.Equal(t, now, doc.ModifiedAt)
	assert.False(t, doc.Modified)

	other := NewDocument("Other", "", FileMarkdown)
	assert.NotEqual(t, doc.ID, other.ID)
}

func TestDetectFileType(t *testing.T) {
	assert.Equal(t, FilePlainText, DetectFileType("/test/file.txt"))
	assert.Equal(t, FileMarkdown, DetectFileType("/test/file.md"))
	assert.Equal(t, FileMarkdown, DetectFileType("README.MARKDOWN"))
	assert.Equal(t, FilePlainText, DetectFileType("main.go"))
	assert.Equal(t, FilePlainText, DetectFileType("Makefile"))
}

func TestDisplayTitle(t *testing.T) {
	FreezeNow(t)
	doc := NewDocument("Test", "", FilePlainText)
	assert.Equal(t, "Test", doc.DisplayTitle())

	doc.SetContent("changed")
	assert.True(t, doc.Modified)
	assert.Equal(t, "• Test", doc.DisplayTitle())
}

func TestDocumentLanguage(t *testing.T) {
	registry := highlight.NewRegistry().WithExtension("conf", highlight.Shell)

	assert.Equal(t, highlight.PlainText, NewDocument("New", "", FilePlainText).Language(registry))
	assert.Equal(t, highlight.Markdown, NewDocument("New", "", FileMarkdown).Language(registry))

	doc := NewDocument("server", "", FilePlainText)
	doc.Path = "/etc/server.conf"
	assert.Equal(t, highlight.Shell, doc.Language(registry))
	doc.Path = "/tmp/data.json"
	assert.Equal(t, highlight.JSON, doc.Language(registry))
}

func TestLoadDocument(t *testing.T) {
	path := testutil.SetUpFromFileContent(t, "Weekly Notes.md", "# Week 12\n\nSome text.\n\n## Done\n")

	doc, err := LoadDocument(path)
	require.NoError(t, err)
	assert.Equal(t, "Weekly Notes", doc.Title)
	assert.Equal(t, FileMarkdown, doc.FileType)
	assert.True(t, doc.IsMarkdown())
	assert.False(t, doc.Modified)
	assert.False(t, doc.ModifiedAt.IsZero())

	outline := doc.Outline()
	require.Len(t, outline, 2)
	assert.Equal(t, "Week 12", outline[0].Title)
	assert.Equal(t, "Done", outline[1].Title)
	assert.Equal(t, 5, outline[1].Line)

	stats := doc.Statistics()
	assert.Equal(t, 7, stats.Words)
	assert.Equal(t, 3, stats.Paragraphs)

	_, err = LoadDocument(filepath.Join(t.TempDir(), "missing.md"))
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = LoadDocument(t.TempDir())
	assert.Error(t, err)
}

func TestOutlineOfPlainText(t *testing.T) {
	doc := NewDocument("Notes", "# Not a heading in plain text", FilePlainText)
	assert.Nil(t, doc.Outline())
}

func TestSaveDocument(t *testing.T) {
	FreezeNow(t)
	doc := NewDocument("Draft", "", FilePlainText)
	assert.Error(t, doc.Save())

	doc.SetContent("# Hello")
	path := filepath.Join(t.TempDir(), "hello.md")
	require.NoError(t, doc.SaveAs(path))
	assert.Equal(t, "hello", doc.Title)
	assert.Equal(t, FileMarkdown, doc.FileType)
	assert.False(t, doc.Modified)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "# Hello", string(content))

	doc.SetContent("# Hello World")
	require.NoError(t, doc.Save())
	content, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "# Hello World", string(content))
}
