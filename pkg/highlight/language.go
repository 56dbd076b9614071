package highlight

import (
	"fmt"
	"path/filepath"
	"strings"

	"golang.org/x/exp/slices"
)

// Language identifies the pattern list used to highlight a document.
type Language int

const (
	PlainText Language = iota
	Markdown
	JSON
	JavaScript
	Python
	HTML
	CSS
	SwiftLike
	YAML
	Shell

	languageCount
)

type languageInfo struct {
	name       string
	short      string
	extensions []string
}

var languages = [languageCount]languageInfo{
	PlainText:  {"Plain Text", "text", []string{"txt"}},
	Markdown:   {"Markdown", "markdown", []string{"md", "markdown"}},
	JSON:       {"JSON", "json", []string{"json"}},
	JavaScript: {"JavaScript", "javascript", []string{"js", "jsx", "ts", "tsx"}},
	Python:     {"Python", "python", []string{"py", "pyw"}},
	HTML:       {"HTML", "html", []string{"html", "htm"}},
	CSS:        {"CSS", "css", []string{"css", "scss", "sass"}},
	SwiftLike:  {"Swift", "swift", []string{"swift"}},
	YAML:       {"YAML", "yaml", []string{"yaml", "yml"}},
	Shell:      {"Shell", "shell", []string{"sh", "bash", "zsh"}},
}

// Languages returns all languages in declaration order.
func Languages() []Language {
	result := make([]Language, 0, languageCount)
	for l := PlainText; l < languageCount; l++ {
		result = append(result, l)
	}
	return result
}

func (l Language) valid() bool {
	return l >= PlainText && l < languageCount
}

// String returns the display name.
func (l Language) String() string {
	if !l.valid() {
		return fmt.Sprintf("Language(%d)", int(l))
	}
	return languages[l].name
}

// ShortName returns the lower-case identifier used in configuration files and flags.
func (l Language) ShortName() string {
	if !l.valid() {
		return ""
	}
	return languages[l].short
}

// Extensions returns the built-in file extensions, without leading dot.
func (l Language) Extensions() []string {
	if !l.valid() {
		return nil
	}
	return slices.Clone(languages[l].extensions)
}

// ParseLanguage resolves a language from its display name, short name or one of its extensions.
func ParseLanguage(name string) (Language, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	for l := PlainText; l < languageCount; l++ {
		info := languages[l]
		if normalized == strings.ToLower(info.name) || normalized == info.short {
			return l, nil
		}
	}
	if l, ok := builtinExtensions()[strings.TrimPrefix(normalized, ".")]; ok {
		return l, nil
	}
	return PlainText, fmt.Errorf("%w: %q", ErrUnknownLanguage, name)
}

func (l Language) MarshalText() ([]byte, error) {
	return []byte(l.ShortName()), nil
}

func (l *Language) UnmarshalText(b []byte) error {
	parsed, err := ParseLanguage(string(b))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

func builtinExtensions() map[string]Language {
	result := make(map[string]Language)
	for l := PlainText; l < languageCount; l++ {
		for _, ext := range languages[l].extensions {
			result[ext] = l
		}
	}
	return result
}

// Registry maps file extensions to languages.
type Registry struct {
	extensions map[string]Language
}

// NewRegistry returns a registry containing the built-in extensions.
func NewRegistry() *Registry {
	return &Registry{
		extensions: builtinExtensions(),
	}
}

// WithExtension registers (or overrides) an extension.
func (r *Registry) WithExtension(extension string, language Language) *Registry {
	r.extensions[normalizeExtension(extension)] = language
	return r
}

// Detect returns the language of a file extension. Unknown extensions are plain text.
func (r *Registry) Detect(extension string) Language {
	if l, ok := r.extensions[normalizeExtension(extension)]; ok {
		return l
	}
	return PlainText
}

// DetectFromPath returns the language of a file path based on its extension.
func (r *Registry) DetectFromPath(path string) Language {
	return r.Detect(filepath.Ext(path))
}

// Extensions returns the registered extensions for a language, sorted.
func (r *Registry) Extensions(language Language) []string {
	var result []string
	for ext, l := range r.extensions {
		if l == language {
			result = append(result, ext)
		}
	}
	slices.Sort(result)
	return result
}

func normalizeExtension(extension string) string {
	return strings.TrimPrefix(strings.ToLower(strings.TrimSpace(extension)), ".")
}

var defaultRegistry = NewRegistry()

// Detect returns the language of a file extension using the built-in table.
func Detect(extension string) Language {
	return defaultRegistry.Detect(extension)
}

// DetectFromPath returns the language of a file path using the built-in table.
func DetectFromPath(path string) Language {
	return defaultRegistry.DetectFromPath(path)
}
