package highlight

import (
	"io"
	"strings"

	"github.com/fatih/color"
)

// RenderANSI writes the highlighted text with 24-bit terminal colors.
// Escape sequences never span a newline. Colors are omitted when
// color.NoColor is set (non-terminal output, NO_COLOR).
func RenderANSI(w io.Writer, output *StyledOutput) error {
	for _, segment := range output.Segments() {
		c := color.New(38, 2, color.Attribute(segment.Color.R), color.Attribute(segment.Color.G), color.Attribute(segment.Color.B))
		for i, line := range strings.Split(segment.Text, "\n") {
			if i > 0 {
				if _, err := io.WriteString(w, "\n"); err != nil {
					return err
				}
			}
			if line == "" {
				continue
			}
			if _, err := c.Fprint(w, line); err != nil {
				return err
			}
		}
	}
	return nil
}
