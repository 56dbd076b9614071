// Package markdown renders Markdown documents to HTML and extracts their structure.
package markdown

import (
	"strings"
)

// IsHeading returns if a given line is a Markdown heading, its title and its level.
func IsHeading(line string) (bool, string, int) {
	if !strings.HasPrefix(line, "#") {
		return false, "", 0
	}
	level := 0
	for level < len(line) && line[level] == '#' {
		level++
	}
	if level > 6 || level == len(line) || line[level] != ' ' {
		return false, "", 0
	}
	return true, line[level+1:], level
}

// IsFence returns if a line opens or closes a fenced code block.
func IsFence(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), "```")
}
