package markdown

import (
	"fmt"
	"strings"

	"github.com/gosimple/slug"
)

// Heading is an entry of a document outline.
type Heading struct {
	Level  int    `json:"level"`
	Title  string `json:"title"`
	Line   int    `json:"line"` // 1-based
	Anchor string `json:"anchor"`
}

// Outline lists the headings of a document in order.
// Headings inside fenced code blocks are ignored. Anchors are unique inside
// the outline: duplicates receive a numeric suffix.
func Outline(md string) []Heading {
	var result []Heading
	seen := make(map[string]int)
	insideCode := false

	for i, line := range strings.Split(md, "\n") {
		if IsFence(line) {
			insideCode = !insideCode
			continue
		}
		if insideCode {
			continue
		}
		ok, title, level := IsHeading(strings.TrimSpace(line))
		if !ok {
			continue
		}
		title = strings.TrimSpace(title)
		if title == "" {
			continue
		}

		anchor := slug.Make(title)
		if n, found := seen[anchor]; found {
			seen[anchor] = n + 1
			anchor = fmt.Sprintf("%s-%d", anchor, n+1)
		} else {
			seen[anchor] = 0
		}

		result = append(result, Heading{
			Level:  level,
			Title:  title,
			Line:   i + 1,
			Anchor: anchor,
		})
	}
	return result
}

// Indented returns the title indented by level, for plain text listings.
func (h Heading) Indented() string {
	return strings.Repeat("  ", h.Level-1) + h.Title
}
