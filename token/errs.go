package token

import (
	"errors"
	"fmt"
)

var (
	ErrLex          = errors.New("lexical error")
	ErrChar         = fmt.Errorf("%w: unrecognized character", ErrLex)
	ErrUnterminated = fmt.Errorf("%w: unterminated string", ErrLex)
	ErrNumber       = fmt.Errorf("%w: malformed number", ErrLex)
)

// LexError is the structured failure of [Tokenize]: the offending
// character together with its position. Callers branch with errors.Is
// against [ErrLex] or one of its refinements.
type LexError struct {
	Err  error
	Char rune
	Pos  Pos
}

func NewLexError(e error, ch rune, p *Pos) *LexError {
	return &LexError{Err: e, Char: ch, Pos: *p}
}

func (e *LexError) Unwrap() error {
	return e.Err
}

func (e *LexError) Error() string {
	return fmt.Sprintf("%s %q at %s", e.Err.Error(), e.Char, e.Pos.String())
}
