package highlight

import "errors"

var (
	ErrUnknownLanguage  = errors.New("unknown language")
	ErrUnknownTheme     = errors.New("unknown theme")
	ErrUnknownTokenKind = errors.New("unknown token kind")
	ErrInvalidColor     = errors.New("invalid color")
)
