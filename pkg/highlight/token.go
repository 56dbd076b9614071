// Package highlight colors source text using ordered per-language regex patterns.
package highlight

import (
	"fmt"
	"strings"
)

// TokenKind classifies a highlighted range.
type TokenKind int

const (
	// TokenNone marks text covered only by the base style.
	TokenNone TokenKind = iota

	TokenKeyword
	TokenString
	TokenNumber
	TokenComment
	TokenFunction
	TokenVariable
	TokenType
	TokenProperty
	TokenTag
	TokenAttribute
	TokenPunctuation
	TokenOperator
	TokenHeading
	TokenLink
	TokenEmphasis
	TokenCodeBlock

	tokenKindCount
)

var tokenKindNames = [tokenKindCount]string{
	TokenNone:        "none",
	TokenKeyword:     "keyword",
	TokenString:      "string",
	TokenNumber:      "number",
	TokenComment:     "comment",
	TokenFunction:    "function",
	TokenVariable:    "variable",
	TokenType:        "type",
	TokenProperty:    "property",
	TokenTag:         "tag",
	TokenAttribute:   "attribute",
	TokenPunctuation: "punctuation",
	TokenOperator:    "operator",
	TokenHeading:     "heading",
	TokenLink:        "link",
	TokenEmphasis:    "emphasis",
	TokenCodeBlock:   "codeBlock",
}

// TokenKinds returns every classification kind (TokenNone excluded).
func TokenKinds() []TokenKind {
	kinds := make([]TokenKind, 0, tokenKindCount-1)
	for k := TokenKeyword; k < tokenKindCount; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

func (k TokenKind) valid() bool {
	return k >= TokenNone && k < tokenKindCount
}

func (k TokenKind) String() string {
	if !k.valid() {
		return fmt.Sprintf("TokenKind(%d)", int(k))
	}
	return tokenKindNames[k]
}

// ParseTokenKind resolves a kind from its name (case-insensitive, "code_block" accepted).
func ParseTokenKind(name string) (TokenKind, error) {
	normalized := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "_", "")
	for k := TokenKeyword; k < tokenKindCount; k++ {
		if strings.ToLower(tokenKindNames[k]) == normalized {
			return k, nil
		}
	}
	return TokenNone, fmt.Errorf("%w: %q", ErrUnknownTokenKind, name)
}

func (k TokenKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *TokenKind) UnmarshalText(b []byte) error {
	if string(b) == tokenKindNames[TokenNone] {
		*k = TokenNone
		return nil
	}
	parsed, err := ParseTokenKind(string(b))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
