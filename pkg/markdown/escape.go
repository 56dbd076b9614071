package markdown

import (
	"regexp"
	"strconv"
	"strings"
)

// Private-use runes delimit stashed fragments. They are removed from the
// input before any pass runs.
const (
	blockMarker  = '\uE000'
	inlineMarker = '\uE002'
	endMarker    = '\uE001'
)

var (
	htmlEscaper   = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;")
	lineEndings   = strings.NewReplacer("\r\n", "\n", "\r", "\n")
	markerRemover = strings.NewReplacer(string(blockMarker), "\uFFFD", string(inlineMarker), "\uFFFD", string(endMarker), "\uFFFD")
	reStashed     = regexp.MustCompile(`[\x{E000}\x{E002}](\d+)\x{E001}`)
)

// escapeHTML escapes the HTML metacharacters, double quotes included: link and
// image captures end up inside attribute values. Line endings are normalized to \n.
func escapeHTML(md string) string {
	md = lineEndings.Replace(md)
	md = markerRemover.Replace(md)
	return htmlEscaper.Replace(md)
}

// stash keeps rendered code out of reach of the later passes.
type stash struct {
	fragments []string
}

func (s *stash) put(marker rune, html string) string {
	s.fragments = append(s.fragments, html)
	return string(marker) + strconv.Itoa(len(s.fragments)-1) + string(endMarker)
}

func (s *stash) block(html string) string {
	return s.put(blockMarker, html)
}

func (s *stash) inline(html string) string {
	return s.put(inlineMarker, html)
}

func (s *stash) restore(html string) string {
	if len(s.fragments) == 0 {
		return html
	}
	return reStashed.ReplaceAllStringFunc(html, func(match string) string {
		i, err := strconv.Atoi(reStashed.FindStringSubmatch(match)[1])
		if err != nil || i >= len(s.fragments) {
			return match
		}
		return s.fragments[i]
	})
}

var blockPrefixes = []string{"<h", "<ul", "<ol", "<pre", "<blockquote", "<hr", string(blockMarker)}

func isBlock(html string) bool {
	for _, prefix := range blockPrefixes {
		if strings.HasPrefix(html, prefix) {
			return true
		}
	}
	return false
}

// paragraphs wraps every text block separated by a blank line in <p>, except
// blocks already starting with a block-level element. Inside paragraphs,
// newlines become <br>.
func paragraphs(html string) string {
	var blocks []string
	for _, block := range strings.Split(html, "\n\n") {
		block = strings.TrimSpace(block)
		if block == "" {
			continue
		}
		if isBlock(block) {
			blocks = append(blocks, block)
			continue
		}
		block = strings.ReplaceAll(block, "\n", "<br>")
		block = strings.ReplaceAll(block, "<br><br>", "</p><p>")
		blocks = append(blocks, "<p>"+block+"</p>")
	}
	return strings.Join(blocks, "\n")
}
