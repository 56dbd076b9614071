package text

import (
	"fmt"
	"math"
	"strings"
	"unicode"

	"github.com/rivo/uniseg"
)

const (
	ReadingWordsPerMinute  = 200
	SpeakingWordsPerMinute = 150
)

// Statistics summarizes a text for the status bar.
type Statistics struct {
	Words                   int `json:"words" yaml:"words"`
	Characters              int `json:"characters" yaml:"characters"`
	CharactersWithoutSpaces int `json:"charactersWithoutSpaces" yaml:"charactersWithoutSpaces"`
	Lines                   int `json:"lines" yaml:"lines"`
	Paragraphs              int `json:"paragraphs" yaml:"paragraphs"`
}

// Analyze computes the statistics of a text.
// Characters are user-perceived characters (grapheme clusters), not bytes or runes.
func Analyze(text string) Statistics {
	var stats Statistics
	if text == "" {
		return stats
	}

	stats.Words = len(strings.Fields(text))
	stats.Lines = len(SplitLines(text))
	stats.Paragraphs = len(Paragraphs(text))

	graphemes := uniseg.NewGraphemes(text)
	for graphemes.Next() {
		stats.Characters++
		if !isWhitespaceCluster(graphemes.Runes()) {
			stats.CharactersWithoutSpaces++
		}
	}

	return stats
}

func isWhitespaceCluster(runes []rune) bool {
	for _, r := range runes {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return len(runes) > 0
}

// ReadingTime returns the estimated silent reading time.
func (s Statistics) ReadingTime() string {
	return FormatMinutes(float64(s.Words) / ReadingWordsPerMinute)
}

// SpeakingTime returns the estimated time to read the text aloud.
func (s Statistics) SpeakingTime() string {
	return FormatMinutes(float64(s.Words) / SpeakingWordsPerMinute)
}

// FormatMinutes formats a fractional duration in minutes.
// Examples: 0.5 => "30s", 12.7 => "12m", 135 => "2h 15m"
func FormatMinutes(minutes float64) string {
	if minutes < 1 {
		return fmt.Sprintf("%ds", int(minutes*60))
	}
	if minutes < 60 {
		return fmt.Sprintf("%dm", int(minutes))
	}
	hours := int(minutes / 60)
	remaining := int(math.Mod(minutes, 60))
	return fmt.Sprintf("%dh %dm", hours, remaining)
}
