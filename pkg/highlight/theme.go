package highlight

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is an opaque RGB color.
type Color struct {
	R, G, B uint8
}

// RGB returns the color with the given components.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// ParseColor parses "#rrggbb" or "#rgb".
func ParseColor(s string) (Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	return RGB(uint8(v>>16), uint8(v>>8), uint8(v)), nil
}

// Hex returns the "#rrggbb" notation.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func (c Color) String() string {
	return c.Hex()
}

func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.Hex()), nil
}

func (c *Color) UnmarshalText(b []byte) error {
	parsed, err := ParseColor(string(b))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Theme maps token kinds to colors. Themes are values: the With* methods
// return modified copies and never alter the receiver.
type Theme struct {
	Name       string
	Foreground Color
	Background Color

	colors [tokenKindCount]Color
}

// NewTheme returns a theme where every token kind uses the foreground color.
func NewTheme(name string, foreground, background Color) Theme {
	t := Theme{
		Name:       name,
		Foreground: foreground,
		Background: background,
	}
	for k := range t.colors {
		t.colors[k] = foreground
	}
	return t
}

// Color returns the color of a token kind. TokenNone and unknown kinds use the foreground.
func (t Theme) Color(kind TokenKind) Color {
	if kind == TokenNone || !kind.valid() {
		return t.Foreground
	}
	return t.colors[kind]
}

// WithColor returns a copy of the theme using the given color for a token kind.
func (t Theme) WithColor(kind TokenKind, c Color) Theme {
	if kind.valid() && kind != TokenNone {
		t.colors[kind] = c
	}
	return t
}

// WithForeground returns a copy of the theme with another base foreground.
func (t Theme) WithForeground(c Color) Theme {
	t.Foreground = c
	return t
}

// WithBackground returns a copy of the theme with another background.
func (t Theme) WithBackground(c Color) Theme {
	t.Background = c
	return t
}

// WithName returns a renamed copy of the theme.
func (t Theme) WithName(name string) Theme {
	t.Name = name
	return t
}

// Light returns the light preset.
func Light() Theme {
	purple := RGB(156, 31, 178)
	red := RGB(196, 26, 23)
	blue := RGB(28, 110, 176)
	teal := RGB(38, 135, 143)
	dark := RGB(51, 51, 51)

	t := NewTheme("light", dark, RGB(255, 255, 255))
	t.colors[TokenKeyword] = purple
	t.colors[TokenString] = red
	t.colors[TokenNumber] = blue
	t.colors[TokenComment] = RGB(107, 120, 130)
	t.colors[TokenFunction] = teal
	t.colors[TokenVariable] = dark
	t.colors[TokenType] = blue
	t.colors[TokenProperty] = teal
	t.colors[TokenTag] = RGB(33, 133, 64)
	t.colors[TokenAttribute] = purple
	t.colors[TokenPunctuation] = RGB(76, 76, 76)
	t.colors[TokenOperator] = purple
	t.colors[TokenHeading] = blue
	t.colors[TokenLink] = blue
	t.colors[TokenEmphasis] = dark
	t.colors[TokenCodeBlock] = red
	return t
}

// Dark returns the dark preset.
func Dark() Theme {
	purple := RGB(199, 143, 237)
	orange := RGB(230, 161, 120)
	green := RGB(181, 214, 168)
	blue := RGB(130, 199, 224)
	light := RGB(224, 224, 224)

	t := NewTheme("dark", light, RGB(31, 31, 36))
	t.colors[TokenKeyword] = purple
	t.colors[TokenString] = orange
	t.colors[TokenNumber] = green
	t.colors[TokenComment] = RGB(128, 140, 153)
	t.colors[TokenFunction] = blue
	t.colors[TokenVariable] = light
	t.colors[TokenType] = blue
	t.colors[TokenProperty] = blue
	t.colors[TokenTag] = RGB(240, 173, 158)
	t.colors[TokenAttribute] = purple
	t.colors[TokenPunctuation] = RGB(178, 178, 178)
	t.colors[TokenOperator] = orange
	t.colors[TokenHeading] = blue
	t.colors[TokenLink] = blue
	t.colors[TokenEmphasis] = light
	t.colors[TokenCodeBlock] = green
	return t
}

// ThemeFor returns the dark or light preset.
func ThemeFor(dark bool) Theme {
	if dark {
		return Dark()
	}
	return Light()
}

// ThemeByName returns a preset by name ("light" or "dark").
func ThemeByName(name string) (Theme, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "light":
		return Light(), nil
	case "dark":
		return Dark(), nil
	}
	return Theme{}, fmt.Errorf("%w: %q", ErrUnknownTheme, name)
}
