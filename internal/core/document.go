package core

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/julien-sobczak/zenpad/pkg/clock"
	"github.com/julien-sobczak/zenpad/pkg/highlight"
	"github.com/julien-sobczak/zenpad/pkg/markdown"
	"github.com/julien-sobczak/zenpad/pkg/text"
)

// DefaultTitle is used for documents without a name.
const DefaultTitle = "Untitled"

type FileType string

const (
	FilePlainText FileType = "txt"
	FileMarkdown  FileType = "md"
)

// Extension returns the default file extension (without the leading dot).
func (f FileType) Extension() string {
	return string(f)
}

// DetectFileType determines the file type from a path. Only .md and .markdown are Markdown.
func DetectFileType(path string) FileType {
	switch strings.ToLower(strings.TrimPrefix(filepath.Ext(path), ".")) {
	case "md", "markdown":
		return FileMarkdown
	}
	return FilePlainText
}

// Document is a note open in the editor.
type Document struct {
	ID         uuid.UUID `json:"id" yaml:"id"`
	Title      string    `json:"title" yaml:"title"`
	Path       string    `json:"path,omitempty" yaml:"path,omitempty"` // empty until saved
	Content    string    `json:"-" yaml:"-"`
	FileType   FileType  `json:"fileType" yaml:"fileType"`
	CreatedAt  time.Time `json:"createdAt" yaml:"createdAt"`
	ModifiedAt time.Time `json:"modifiedAt" yaml:"modifiedAt"`

	// Unsaved changes
	Modified bool `json:"-" yaml:"-"`
}

// NewDocument creates an unsaved document.
func NewDocument(title string, content string, fileType FileType) *Document {
	if strings.TrimSpace(title) == "" {
		title = DefaultTitle
	}
	if fileType == "" {
		fileType = FilePlainText
	}
	now := clock.Now()
	return &Document{
		ID:         uuid.New(),
		Title:      title,
		Content:    content,
		FileType:   fileType,
		CreatedAt:  now,
		ModifiedAt: now,
	}
}

// LoadDocument reads a document from disk. The title is the file name without extension.
func LoadDocument(path string) (*Document, error) {
	stat, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("document %s: %w", path, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if stat.IsDir() {
		return nil, fmt.Errorf("document %s is a directory", path)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	CurrentLogger().Debugf("Loaded document %q (%d bytes)", path, len(content))

	return &Document{
		ID:       uuid.New(),
		Title:    text.TrimExtension(filepath.Base(path)),
		Path:     path,
		Content:  string(content),
		FileType: DetectFileType(path),
		// The creation date is not portable across file systems
		CreatedAt:  stat.ModTime(),
		ModifiedAt: stat.ModTime(),
	}, nil
}

// SetContent replaces the content and marks the document as modified.
func (d *Document) SetContent(content string) {
	if content == d.Content {
		return
	}
	d.Content = content
	d.Modified = true
	d.ModifiedAt = clock.Now()
}

// SaveAs writes the document to the given path, which becomes its new location.
func (d *Document) SaveAs(path string) error {
	if err := os.WriteFile(path, []byte(d.Content), 0644); err != nil {
		return fmt.Errorf("failed to save %s: %w", path, err)
	}
	d.Path = path
	d.Title = text.TrimExtension(filepath.Base(path))
	d.FileType = DetectFileType(path)
	d.Modified = false
	d.ModifiedAt = clock.Now()
	return nil
}

// Save writes the document to its current location.
func (d *Document) Save() error {
	if d.Path == "" {
		return fmt.Errorf("document %q has never been saved", d.Title)
	}
	return d.SaveAs(d.Path)
}

// IsMarkdown returns if the document is rendered as Markdown in previews.
func (d *Document) IsMarkdown() bool {
	return d.FileType == FileMarkdown
}

// Language returns the highlighting language of the document.
func (d *Document) Language(registry *highlight.Registry) highlight.Language {
	if d.IsMarkdown() {
		return highlight.Markdown
	}
	if d.Path == "" {
		return highlight.PlainText
	}
	return registry.DetectFromPath(d.Path)
}

// DisplayTitle returns the title shown in the window, with a bullet for unsaved changes.
func (d *Document) DisplayTitle() string {
	if d.Modified {
		return "• " + d.Title
	}
	return d.Title
}

// Statistics computes the text statistics of the raw content.
func (d *Document) Statistics() text.Statistics {
	return text.Analyze(d.Content)
}

// Outline returns the headings of Markdown documents.
func (d *Document) Outline() []markdown.Heading {
	if !d.IsMarkdown() {
		return nil
	}
	return markdown.Outline(d.Content)
}
