package core

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/julien-sobczak/zenpad/pkg/highlight"
	"github.com/julien-sobczak/zenpad/pkg/markdown"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/exp/slices"
)

// Default config.toml content
const DefaultConfig = `
[editor]
appearance = "system" # system, light or dark
font_family = "SF Mono"
font_size = 14
line_height = 1.5
# theme_file = "themes/solarized.yaml"

[preview]
engine = "builtin" # builtin or commonmark
title = "Untitled"

[languages.extensions]
# mdx = "markdown"
`

const (
	AppearanceSystem = "system"
	AppearanceLight  = "light"
	AppearanceDark   = "dark"
)

// Appearances lists the supported appearance modes.
var Appearances = []string{AppearanceSystem, AppearanceLight, AppearanceDark}

var (
	// Lazy-load configuration and ensure a single read
	configOnce      sync.Once
	configSingleton *Config
)

// Note: Fields must be public for toml package to unmarshall
type ConfigFile struct {
	Editor    ConfigEditor    `toml:"editor"`
	Preview   ConfigPreview   `toml:"preview"`
	Languages ConfigLanguages `toml:"languages"`
}
type ConfigEditor struct {
	Appearance string  `toml:"appearance"`
	FontFamily string  `toml:"font_family"`
	FontSize   int     `toml:"font_size"`
	LineHeight float64 `toml:"line_height"`
	ThemeFile  string  `toml:"theme_file"`
}
type ConfigPreview struct {
	Engine string `toml:"engine"`
	Title  string `toml:"title"`
}
type ConfigLanguages struct {
	Extensions map[string]string `toml:"extensions"` // extension => language name
}

// Config is the resolved configuration.
type Config struct {
	// Path of the config file. Empty when the defaults are used.
	Path       string
	ConfigFile ConfigFile

	// Resolved lazily
	dark *bool
}

// CurrentConfig returns the configuration of the current user.
func CurrentConfig() *Config {
	configOnce.Do(func() {
		var err error
		configSingleton, err = ReadConfig(ConfigPath())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Unable to read current configuration: %v\n", err)
			os.Exit(1)
		}
	})
	return configSingleton
}

// ConfigPath returns the location of the config file.
//
// In order: $ZENPAD_CONFIG, $ZENPAD_HOME/config.toml, <user config dir>/zenpad/config.toml.
func ConfigPath() string {
	if path, ok := os.LookupEnv("ZENPAD_CONFIG"); ok && path != "" {
		return path
	}
	if home, ok := os.LookupEnv("ZENPAD_HOME"); ok && home != "" {
		return filepath.Join(home, "config.toml")
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		// No $HOME. Use the working directory.
		return "config.toml"
	}
	return filepath.Join(dir, "zenpad", "config.toml")
}

// ReadConfig loads the config file at the given path.
// A missing file is not an error: the defaults are used instead.
func ReadConfig(path string) (*Config, error) {
	configFile, err := parseConfigFile(DefaultConfig, nil)
	if err != nil {
		return nil, fmt.Errorf("default configuration is broken: %w", err)
	}

	content, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		CurrentLogger().Debugf("No config file found at %q, using defaults", path)
		return &Config{ConfigFile: *configFile}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	configFile, err = parseConfigFile(string(content), configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	config := &Config{
		Path:       path,
		ConfigFile: *configFile,
	}
	if err := config.Check(); err != nil {
		return nil, fmt.Errorf("invalid configuration %s: %w", path, err)
	}
	CurrentLogger().Debugf("Loaded config file %q", path)
	return config, nil
}

// InitConfig writes the default config file unless one already exists.
func InitConfig(path string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return false, fmt.Errorf("failed to check for %s: %w", path, err)
	}

	if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		return false, fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(strings.TrimLeft(DefaultConfig, "\n")), 0644); err != nil {
		return false, fmt.Errorf("failed to write %s: %w", path, err)
	}
	return true, nil
}

// parseConfigFile decodes the content on top of the given defaults (if any).
func parseConfigFile(content string, defaults *ConfigFile) (*ConfigFile, error) {
	var result ConfigFile
	if defaults != nil {
		result = *defaults
		result.Languages.Extensions = make(map[string]string)
		for extension, language := range defaults.Languages.Extensions {
			result.Languages.Extensions[extension] = language
		}
	}
	r := strings.NewReader(content)
	d := toml.NewDecoder(r)
	d.DisallowUnknownFields()
	err := d.Decode(&result)
	return &result, err
}

// Check validates the configuration values.
func (c *Config) Check() error {
	var errs []error
	editor := c.ConfigFile.Editor
	if !slices.Contains(Appearances, editor.Appearance) {
		errs = append(errs, fmt.Errorf("unknown appearance %q (expected one of %s)", editor.Appearance, strings.Join(Appearances, ", ")))
	}
	if editor.FontSize <= 0 {
		errs = append(errs, fmt.Errorf("font_size must be positive, got %d", editor.FontSize))
	}
	if editor.LineHeight <= 0 {
		errs = append(errs, fmt.Errorf("line_height must be positive, got %v", editor.LineHeight))
	}
	if _, err := markdown.ParseEngine(c.ConfigFile.Preview.Engine); err != nil {
		errs = append(errs, err)
	}
	for extension, name := range c.ConfigFile.Languages.Extensions {
		if _, err := highlight.ParseLanguage(name); err != nil {
			errs = append(errs, fmt.Errorf("extension %q: %w", extension, err))
		}
	}
	return errors.Join(errs...)
}

// Registry returns the language registry including the custom extensions.
func (c *Config) Registry() *highlight.Registry {
	registry := highlight.NewRegistry()
	for extension, name := range c.ConfigFile.Languages.Extensions {
		language, err := highlight.ParseLanguage(name)
		if err != nil {
			CurrentLogger().Warnf("Ignoring extension %q: %v", extension, err)
			continue
		}
		registry.WithExtension(extension, language)
	}
	return registry
}

// Engine returns the Markdown engine used for previews.
func (c *Config) Engine() markdown.Engine {
	engine, err := markdown.ParseEngine(c.ConfigFile.Preview.Engine)
	if err != nil {
		return markdown.EngineBuiltin
	}
	return engine
}

// Font returns the editor font.
func (c *Config) Font() highlight.Font {
	font := highlight.DefaultFont
	if c.ConfigFile.Editor.FontFamily != "" {
		font.Family = c.ConfigFile.Editor.FontFamily
	}
	if c.ConfigFile.Editor.FontSize > 0 {
		font.Size = float64(c.ConfigFile.Editor.FontSize)
	}
	return font
}

// OverrideAppearance replaces the configured appearance, for example from a command flag.
func (c *Config) OverrideAppearance(appearance string) error {
	if !slices.Contains(Appearances, appearance) {
		return fmt.Errorf("unknown appearance %q (expected one of %s)", appearance, strings.Join(Appearances, ", "))
	}
	c.ConfigFile.Editor.Appearance = appearance
	c.dark = nil
	return nil
}

// Dark returns if the dark appearance is active.
// The system appearance is the background color of the terminal.
func (c *Config) Dark() bool {
	if c.dark == nil {
		var dark bool
		switch c.ConfigFile.Editor.Appearance {
		case AppearanceDark:
			dark = true
		case AppearanceLight:
			dark = false
		default:
			dark = lipgloss.HasDarkBackground()
			CurrentLogger().Debugf("Detected dark background: %v", dark)
		}
		c.dark = &dark
	}
	return *c.dark
}

// Theme returns the editor theme, loading the custom theme file if configured.
func (c *Config) Theme() (highlight.Theme, error) {
	themeFile := c.ConfigFile.Editor.ThemeFile
	if themeFile == "" {
		return highlight.ThemeFor(c.Dark()), nil
	}
	if !filepath.IsAbs(themeFile) && c.Path != "" {
		themeFile = filepath.Join(filepath.Dir(c.Path), themeFile)
	}
	CurrentLogger().Debugf("Loading theme file %q", themeFile)
	return LoadThemeFile(themeFile)
}
