package highlight

import "unicode/utf8"

// Font describes the monospace font of the base layer.
type Font struct {
	Family string  `json:"family"`
	Size   float64 `json:"size"`
}

// DefaultFont is the editor font used when none is configured.
var DefaultFont = Font{Family: "Menlo", Size: 14}

// Style is the base layer applied to the whole text.
type Style struct {
	Foreground Color `json:"foreground"`
	Background Color `json:"background"`
	Font       Font  `json:"font"`
}

// StyledSpan colors a range of the text.
//
// Start and Length are expressed in UTF-16 code units. ByteStart and ByteEnd
// index the same range in the Go string.
type StyledSpan struct {
	Start     int       `json:"start"`
	Length    int       `json:"length"`
	ByteStart int       `json:"-"`
	ByteEnd   int       `json:"-"`
	Kind      TokenKind `json:"kind"`
	Color     Color     `json:"color"`
}

// StyledOutput is the result of highlighting a text.
type StyledOutput struct {
	Text     string   `json:"-"`
	Language Language `json:"language"`
	Base     Style    `json:"base"`

	// Overlays lists every match in application order. Later overlays win.
	Overlays []StyledSpan `json:"-"`

	// Spans is the flattened result: consecutive non-overlapping ranges covering
	// the whole text, base ranges included.
	Spans []StyledSpan `json:"spans"`
}

// Segment is a piece of text with its resolved color.
type Segment struct {
	Text  string
	Kind  TokenKind
	Color Color
}

// Segments returns the text cut along the flattened spans.
func (o *StyledOutput) Segments() []Segment {
	segments := make([]Segment, 0, len(o.Spans))
	for _, span := range o.Spans {
		segments = append(segments, Segment{
			Text:  o.Text[span.ByteStart:span.ByteEnd],
			Kind:  span.Kind,
			Color: span.Color,
		})
	}
	return segments
}

// ColorAt returns the color at a UTF-16 offset. Offsets out of range use the base foreground.
func (o *StyledOutput) ColorAt(offset int) Color {
	for _, span := range o.Spans {
		if offset >= span.Start && offset < span.Start+span.Length {
			return span.Color
		}
	}
	return o.Base.Foreground
}

// utf16Offsets maps every byte offset of text (and len(text)) to a UTF-16 offset.
func utf16Offsets(text string) []int {
	offsets := make([]int, len(text)+1)
	u := 0
	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		for j := 0; j < size; j++ {
			offsets[i+j] = u
		}
		if r >= 0x10000 {
			u += 2 // surrogate pair
		} else {
			u++
		}
		i += size
	}
	offsets[len(text)] = u
	return offsets
}
