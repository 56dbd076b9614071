package highlight

import (
	"fmt"
	"html"
	"io"
)

// RenderHTML writes the highlighted text as a <pre> block with inline colors.
// Runs using the base foreground are not wrapped in a <span>.
func RenderHTML(w io.Writer, output *StyledOutput) error {
	base := output.Base
	if _, err := fmt.Fprintf(w, `<pre style="color: %s; background-color: %s; font-family: '%s', monospace; font-size: %gpx">`,
		base.Foreground.Hex(), base.Background.Hex(), html.EscapeString(base.Font.Family), base.Font.Size); err != nil {
		return err
	}
	for _, segment := range output.Segments() {
		text := html.EscapeString(segment.Text)
		var err error
		if segment.Color == base.Foreground {
			_, err = io.WriteString(w, text)
		} else {
			_, err = fmt.Fprintf(w, `<span class="%s" style="color: %s">%s</span>`, segment.Kind, segment.Color.Hex(), text)
		}
		if err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "</pre>")
	return err
}
