package text

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"golang.org/x/exp/slices"
)

// SortLines sorts lines in ascending byte order.
func SortLines(text string) string {
	lines := SplitLines(text)
	slices.Sort(lines)
	return JoinLines(lines)
}

// RemoveDuplicateLines keeps the first occurrence of every line.
func RemoveDuplicateLines(text string) string {
	seen := make(map[string]bool)
	var unique []string
	for _, line := range SplitLines(text) {
		if seen[line] {
			continue
		}
		seen[line] = true
		unique = append(unique, line)
	}
	return JoinLines(unique)
}

// TrimLines removes leading and trailing spaces and tabs on every line.
func TrimLines(text string) string {
	lines := SplitLines(text)
	for i, line := range lines {
		lines[i] = strings.Trim(line, " \t")
	}
	return JoinLines(lines)
}

// FormatJSON pretty-prints a JSON document with sorted object keys.
func FormatJSON(text string) (string, error) {
	decoder := json.NewDecoder(strings.NewReader(text))
	decoder.UseNumber()

	var value any
	if err := decoder.Decode(&value); err != nil {
		return "", fmt.Errorf("invalid JSON: %w", err)
	}
	if decoder.More() {
		return "", fmt.Errorf("invalid JSON: unexpected data after the top-level value")
	}

	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(value); err != nil {
		return "", err
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}
