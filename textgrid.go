// Package textgrid parses Praat TextGrid annotation files: time
// aligned label tracks used in linguistic and acoustic research. Both
// textual encodings are supported, the verbose keyed "full" dialect
// and the positional "minimal" dialect.
//
//	tiers, err := textgrid.File("utterance.TextGrid")
//	tiers, err := textgrid.String(doc, parse.ParseMinimal())
//
// Parsing is one-shot and read-only; consistency checking of declared
// counts and bounds is on by default and controlled with
// [parse.CheckConsistency].
package textgrid

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/phonolab/go-textgrid/parse"
	"github.com/phonolab/go-textgrid/tier"
)

var ErrUnsupportedInput = errors.New("unsupported input")

// UnsupportedInputError is returned by [Any] before any tokenization
// when the dynamic type of the input is not one it accepts.
type UnsupportedInputError struct {
	Type string
}

func (e *UnsupportedInputError) Unwrap() error {
	return ErrUnsupportedInput
}

func (e *UnsupportedInputError) Error() string {
	return fmt.Sprintf("unsupported input type %s: want []byte, string or io.Reader", e.Type)
}

// Bytes parses a complete document held in memory.
func Bytes(d []byte, opts ...parse.ParseOption) ([]*tier.Tier, error) {
	return parse.Parse(d, opts...)
}

// String parses a complete document held in a string.
func String(s string, opts ...parse.ParseOption) ([]*tier.Tier, error) {
	return parse.Parse([]byte(s), opts...)
}

// Reader reads r to its end and parses the content.
func Reader(r io.Reader, opts ...parse.ParseOption) ([]*tier.Tier, error) {
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return parse.Parse(d, opts...)
}

// File parses the TextGrid at path.
func File(path string, opts ...parse.ParseOption) ([]*tier.Tier, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return parse.Parse(d, opts...)
}

// Any dispatches on the dynamic type of src: []byte, string and
// io.Reader hold the document itself. Anything else fails with
// *UnsupportedInputError.
func Any(src any, opts ...parse.ParseOption) ([]*tier.Tier, error) {
	switch x := src.(type) {
	case []byte:
		return Bytes(x, opts...)
	case string:
		return String(x, opts...)
	case io.Reader:
		return Reader(x, opts...)
	default:
		return nil, &UnsupportedInputError{Type: fmt.Sprintf("%T", src)}
	}
}
