package text

import (
	"bufio"
	"bytes"
	"path/filepath"
	"strings"
)

var lineEndings = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// SplitLines splits a text on \n, \r\n and \r.
func SplitLines(text string) []string {
	return strings.Split(lineEndings.Replace(text), "\n")
}

// JoinLines is the reverse of SplitLines, using \n.
func JoinLines(lines []string) string {
	return strings.Join(lines, "\n")
}

// SquashBlankLines replaces successive blank lines by a single empty one.
func SquashBlankLines(text string) string {
	var result bytes.Buffer
	scanner := bufio.NewScanner(strings.NewReader(text))

	previousLineEmpty := false
	for scanner.Scan() {
		line := scanner.Text()
		if IsBlank(line) {
			if previousLineEmpty {
				continue
			}
			previousLineEmpty = true
			line = ""
		} else {
			previousLineEmpty = false
		}
		result.WriteString(line)
		result.WriteRune('\n')
	}

	return result.String()
}

// Paragraphs returns the non-blank blocks separated by an empty line.
func Paragraphs(text string) []string {
	var result []string
	for _, block := range strings.Split(lineEndings.Replace(text), "\n\n") {
		if IsBlank(block) {
			continue
		}
		result = append(result, block)
	}
	return result
}

// IsBlank returns if a text is blank.
func IsBlank(text string) bool {
	return len(strings.TrimSpace(text)) == 0
}

// TrimExtension removes the extension from a file name or file path.
func TrimExtension(path string) string {
	path = strings.TrimSuffix(path, string(filepath.Separator))
	return strings.TrimSuffix(path, filepath.Ext(path))
}
