package core

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/julien-sobczak/zenpad/pkg/highlight"
	"gopkg.in/yaml.v3"
)

// ThemeFile is the YAML representation of a custom theme.
//
// Example:
//
//	name: Solarized
//	base: dark
//	background: "#002b36"
//	colors:
//	  keyword: "#859900"
//	  string: "#2aa198"
type ThemeFile struct {
	Name       string            `yaml:"name,omitempty"`
	Base       string            `yaml:"base"`
	Foreground string            `yaml:"foreground,omitempty"`
	Background string            `yaml:"background,omitempty"`
	Colors     map[string]string `yaml:"colors,omitempty"`
}

// LoadThemeFile reads a YAML theme file.
func LoadThemeFile(path string) (highlight.Theme, error) {
	content, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return highlight.Theme{}, fmt.Errorf("theme file %s: %w", path, ErrNotFound)
	}
	if err != nil {
		return highlight.Theme{}, fmt.Errorf("failed to read theme file %s: %w", path, err)
	}
	theme, err := ParseThemeFile(content)
	if err != nil {
		return highlight.Theme{}, fmt.Errorf("invalid theme file %s: %w", path, err)
	}
	return theme, nil
}

// ParseThemeFile converts a YAML document to a theme.
// Colors not present in the document are inherited from the base preset.
func ParseThemeFile(content []byte) (highlight.Theme, error) {
	var file ThemeFile
	d := yaml.NewDecoder(bytes.NewReader(content))
	d.KnownFields(true)
	if err := d.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return highlight.Theme{}, err
	}
	return file.Theme()
}

// Theme resolves the theme described by the file.
func (f ThemeFile) Theme() (highlight.Theme, error) {
	base := f.Base
	if base == "" {
		base = "light"
	}
	theme, err := highlight.ThemeByName(base)
	if err != nil {
		return highlight.Theme{}, err
	}
	if f.Name != "" {
		theme = theme.WithName(f.Name)
	}
	if f.Foreground != "" {
		c, err := highlight.ParseColor(f.Foreground)
		if err != nil {
			return highlight.Theme{}, fmt.Errorf("foreground: %w", err)
		}
		theme = theme.WithForeground(c)
	}
	if f.Background != "" {
		c, err := highlight.ParseColor(f.Background)
		if err != nil {
			return highlight.Theme{}, fmt.Errorf("background: %w", err)
		}
		theme = theme.WithBackground(c)
	}
	for name, value := range f.Colors {
		kind, err := highlight.ParseTokenKind(name)
		if err != nil {
			return highlight.Theme{}, err
		}
		c, err := highlight.ParseColor(value)
		if err != nil {
			return highlight.Theme{}, fmt.Errorf("%s: %w", name, err)
		}
		theme = theme.WithColor(kind, c)
	}
	return theme, nil
}

// NewThemeFile describes a theme as a file, listing every token color.
func NewThemeFile(theme highlight.Theme, base string) ThemeFile {
	file := ThemeFile{
		Name:       theme.Name,
		Base:       base,
		Foreground: theme.Foreground.Hex(),
		Background: theme.Background.Hex(),
		Colors:     make(map[string]string),
	}
	for _, kind := range highlight.TokenKinds() {
		file.Colors[kind.String()] = theme.Color(kind).Hex()
	}
	return file
}

// DumpThemeFile serializes a theme to YAML, ready to be customized.
func DumpThemeFile(theme highlight.Theme, base string) (string, error) {
	var buf bytes.Buffer
	e := yaml.NewEncoder(&buf)
	e.SetIndent(2)
	if err := e.Encode(NewThemeFile(theme, base)); err != nil {
		return "", err
	}
	if err := e.Close(); err != nil {
		return "", err
	}
	return strings.TrimSpace(buf.String()), nil
}
