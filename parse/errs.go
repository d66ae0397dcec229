package parse

import (
	"errors"
	"fmt"

	"github.com/phonolab/go-textgrid/token"
)

var (
	ErrParse       = errors.New("parse error")
	ErrSyntax      = fmt.Errorf("%w: syntax", ErrParse)
	ErrConsistency = errors.New("consistency error")
)

// SyntaxError reports a token stream that matches no production at the
// current position. Token is nil when the input ended where more was
// expected.
type SyntaxError struct {
	Token    *token.Token
	Expected string
}

func (e *SyntaxError) Unwrap() error {
	return ErrSyntax
}

func (e *SyntaxError) Error() string {
	if e.Token == nil {
		if e.Expected != "" {
			return fmt.Sprintf("syntax error: unexpected end of input, expected %s", e.Expected)
		}
		return "syntax error: unexpected end of input"
	}
	if e.Expected != "" {
		return fmt.Sprintf("syntax error: unexpected %s %q %s, expected %s",
			e.Token.Type, string(e.Token.Bytes), e.Token.Pos, e.Expected)
	}
	return fmt.Sprintf("syntax error: unexpected %s %q %s",
		e.Token.Type, string(e.Token.Bytes), e.Token.Pos)
}

func unexpected(tok *token.Token, expected string) *SyntaxError {
	return &SyntaxError{Token: tok, Expected: expected}
}

// ConsistencyError reports a structurally valid parse whose declared
// metadata disagrees with the content actually built. Tier is empty for
// document-level violations; Declared and Actual hold the conflicting
// values (counts or time bounds).
type ConsistencyError struct {
	Tier     string
	Field    string
	Declared any
	Actual   any
	Msg      string
}

func (e *ConsistencyError) Unwrap() error {
	return ErrConsistency
}

func (e *ConsistencyError) Error() string {
	return e.Msg
}

func tierCountErr(declared, actual int) *ConsistencyError {
	return &ConsistencyError{
		Field:    "size",
		Declared: declared,
		Actual:   actual,
		Msg: fmt.Sprintf("Inconsistent number of tiers: %d declared in header, found %d in file.",
			declared, actual),
	}
}

func itemCountErr(name string, declared, actual int) *ConsistencyError {
	return &ConsistencyError{
		Tier:     name,
		Field:    "size",
		Declared: declared,
		Actual:   actual,
		Msg: fmt.Sprintf("Inconsistent number of items in tier %q: %d declared in tier header, found %d in file.",
			name, declared, actual),
	}
}

func boundErr(name, field, scope string, declared, actual float64) *ConsistencyError {
	rel := "precedes"
	if field == "xmax" {
		rel = "exceeds"
	}
	return &ConsistencyError{
		Tier:     name,
		Field:    field,
		Declared: declared,
		Actual:   actual,
		Msg: fmt.Sprintf("Inconsistent bounds in tier %q: derived %s %v %s %s %s %v.",
			name, field, actual, rel, scope, field, declared),
	}
}
