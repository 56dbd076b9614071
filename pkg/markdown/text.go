package markdown

import (
	"regexp"
	"strings"
)

var (
	reTextStrong    = regexp.MustCompile(`(\*\*|__)(.+?)(\*\*|__)`)
	reTextEm        = regexp.MustCompile(`(\*|_)(.+?)(\*|_)`)
	reTextStrike    = regexp.MustCompile(`~~(.+?)~~`)
	reTextCode      = regexp.MustCompile("`([^`]+)`")
	reTextImage     = regexp.MustCompile(`!\[([^\]]*?)\]\([^)]+\)`)
	reTextLink      = regexp.MustCompile(`\[([^\]]+)\]\([^)]+\)`)
	reTextTask      = regexp.MustCompile(`^- \[[ x]\] `)
	reTextListItem  = regexp.MustCompile(`^(?:[-*]|\d+\.) `)
	reTextRule      = regexp.MustCompile(`^(?:---+|\*\*\*+)$`)
	reTextQuoteMark = regexp.MustCompile(`^> ?`)
)

// ToText strips the Markdown syntax understood by ToHTML and keeps the text
// a reader sees. Code blocks are kept verbatim without their fences.
func ToText(md string) string {
	md = lineEndings.Replace(md)

	var lines []string
	insideCode := false
	for _, line := range strings.Split(md, "\n") {
		if IsFence(line) {
			insideCode = !insideCode
			continue
		}
		if insideCode {
			lines = append(lines, line)
			continue
		}
		if reTextRule.MatchString(line) {
			lines = append(lines, "")
			continue
		}
		if ok, title, _ := IsHeading(line); ok {
			line = title
		}
		line = reTextQuoteMark.ReplaceAllString(line, "")
		if reTextTask.MatchString(line) {
			line = reTextTask.ReplaceAllString(line, "")
		} else {
			line = reTextListItem.ReplaceAllString(line, "")
		}
		line = reTextCode.ReplaceAllString(line, "${1}")
		line = reTextImage.ReplaceAllString(line, "${1}")
		line = reTextLink.ReplaceAllString(line, "${1}")
		line = reTextStrong.ReplaceAllString(line, "${2}")
		line = reTextEm.ReplaceAllString(line, "${2}")
		line = reTextStrike.ReplaceAllString(line, "${1}")
		lines = append(lines, line)
	}

	return strings.TrimSpace(strings.Join(lines, "\n"))
}
