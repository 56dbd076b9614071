package text_test

import (
	"strings"
	"testing"

	"github.com/julien-sobczak/zenpad/pkg/text"
	"github.com/stretchr/testify/assert"
)

func TestAnalyze(t *testing.T) {
	var tests = []struct {
		name     string
		input    string
		expected text.Statistics
	}{
		{
			name:     "empty",
			input:    "",
			expected: text.Statistics{},
		},
		{
			name:     "single word",
			input:    "Hello",
			expected: text.Statistics{Words: 1, Characters: 5, CharactersWithoutSpaces: 5, Lines: 1, Paragraphs: 1},
		},
		{
			name:     "sentence",
			input:    "Hello, world!",
			expected: text.Statistics{Words: 2, Characters: 13, CharactersWithoutSpaces: 12, Lines: 1, Paragraphs: 1},
		},
		{
			name:     "multiple lines",
			input:    "Line 1\nLine 2\nLine 3",
			expected: text.Statistics{Words: 6, Characters: 20, CharactersWithoutSpaces: 15, Lines: 3, Paragraphs: 1},
		},
		{
			name:     "paragraphs",
			input:    "One.\n\nTwo.\n\nThree.",
			expected: text.Statistics{Words: 3, Characters: 18, CharactersWithoutSpaces: 14, Lines: 5, Paragraphs: 3},
		},
		{
			name:  "graphemes",
			input: "e\u0301t\u00e9 \U0001F44D\U0001F3FD",
			// combining accent and skin tone modifier stay in their cluster
			expected: text.Statistics{Words: 2, Characters: 5, CharactersWithoutSpaces: 4, Lines: 1, Paragraphs: 1},
		},
		{
			name:     "windows line endings",
			input:    "a\r\nb",
			expected: text.Statistics{Words: 2, Characters: 3, CharactersWithoutSpaces: 2, Lines: 2, Paragraphs: 1},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, text.Analyze(tt.input))
		})
	}
}

func TestReadingTime(t *testing.T) {
	words := strings.Repeat("word ", 200)
	stats := text.Analyze(words)
	assert.Equal(t, 200, stats.Words)
	assert.Equal(t, "1m", stats.ReadingTime())
	assert.Equal(t, "1m", stats.SpeakingTime())

	short := text.Analyze("Just a few words here now")
	assert.Equal(t, "1s", short.ReadingTime())
	assert.Equal(t, "2s", short.SpeakingTime())
}

func TestFormatMinutes(t *testing.T) {
	var tests = []struct {
		minutes  float64
		expected string
	}{
		{0, "0s"},
		{0.5, "30s"},
		{1, "1m"},
		{12.7, "12m"},
		{59.99, "59m"},
		{60, "1h 0m"},
		{135, "2h 15m"},
	}
	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, text.FormatMinutes(tt.minutes))
		})
	}
}
