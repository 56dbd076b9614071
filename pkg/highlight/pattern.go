package highlight

import (
	"errors"
	"fmt"
	"regexp"
)

// MatchOptions are the regex flags of a pattern.
type MatchOptions struct {
	// Multiline makes ^ and $ match at line boundaries.
	Multiline bool
	// CaseInsensitive ignores letter case.
	CaseInsensitive bool
}

// LanguagePattern associates a regular expression (RE2 syntax) with a token kind.
type LanguagePattern struct {
	Regex   string
	Kind    TokenKind
	Options MatchOptions
}

// Pattern is a shorthand to declare a pattern without options.
func Pattern(regex string, kind TokenKind) LanguagePattern {
	return LanguagePattern{Regex: regex, Kind: kind}
}

// LinePattern declares a pattern whose anchors match at every line.
func LinePattern(regex string, kind TokenKind) LanguagePattern {
	return LanguagePattern{Regex: regex, Kind: kind, Options: MatchOptions{Multiline: true}}
}

// Expr returns the regular expression with its options as inline flags.
func (p LanguagePattern) Expr() string {
	flags := ""
	if p.Options.Multiline {
		flags += "m"
	}
	if p.Options.CaseInsensitive {
		flags += "i"
	}
	if flags == "" {
		return p.Regex
	}
	return "(?" + flags + ")" + p.Regex
}

// Compile compiles the pattern with its options.
func (p LanguagePattern) Compile() (*regexp.Regexp, error) {
	return regexp.Compile(p.Expr())
}

// InvalidPatternError reports a pattern that does not compile.
type InvalidPatternError struct {
	Language Language
	Pattern  LanguagePattern
	Err      error
}

func (e *InvalidPatternError) Error() string {
	return fmt.Sprintf("invalid %s pattern %q for %s: %v", e.Pattern.Kind, e.Pattern.Regex, e.Language, e.Err)
}

func (e *InvalidPatternError) Unwrap() error {
	return e.Err
}

type compiledPattern struct {
	LanguagePattern
	re  *regexp.Regexp
	err error
}

// PatternTable is an immutable mapping from language to its ordered patterns.
// Patterns are compiled once when the table is built. Patterns that fail to
// compile are kept so the highlighter can report and skip them.
type PatternTable struct {
	patterns map[Language][]compiledPattern
}

// NewPatternTable builds a table. The given lists are copied.
func NewPatternTable(patterns map[Language][]LanguagePattern) *PatternTable {
	table := &PatternTable{
		patterns: make(map[Language][]compiledPattern, len(patterns)),
	}
	for language, list := range patterns {
		compiled := make([]compiledPattern, 0, len(list))
		for _, p := range list {
			re, err := p.Compile()
			compiled = append(compiled, compiledPattern{
				LanguagePattern: p,
				re:              re,
				err:             err,
			})
		}
		table.patterns[language] = compiled
	}
	return table
}

// PatternsFor returns the ordered patterns of a language. Unknown languages have none.
func (t *PatternTable) PatternsFor(language Language) []LanguagePattern {
	compiled := t.patterns[language]
	result := make([]LanguagePattern, 0, len(compiled))
	for _, p := range compiled {
		result = append(result, p.LanguagePattern)
	}
	return result
}

// Validate returns an error listing every pattern that does not compile.
func (t *PatternTable) Validate() error {
	var errs []error
	for _, language := range Languages() {
		for _, p := range t.patterns[language] {
			if p.err != nil {
				errs = append(errs, &InvalidPatternError{Language: language, Pattern: p.LanguagePattern, Err: p.err})
			}
		}
	}
	return errors.Join(errs...)
}

var defaultTable = NewPatternTable(defaultPatterns)

// DefaultPatternTable returns the built-in table.
func DefaultPatternTable() *PatternTable {
	return defaultTable
}

// PatternsFor returns the built-in patterns of a language.
func PatternsFor(language Language) []LanguagePattern {
	return defaultTable.PatternsFor(language)
}
