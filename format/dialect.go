package format

import (
	"errors"
	"fmt"
)

type Dialect int

const (
	FullDialect Dialect = iota
	MinimalDialect
)

var ErrBadDialect = errors.New("bad dialect")

func ParseDialect(v string) (Dialect, error) {
	d, ok := map[string]Dialect{
		"f":       FullDialect,
		"full":    FullDialect,
		"m":       MinimalDialect,
		"minimal": MinimalDialect,
	}[v]
	if ok {
		return d, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadDialect, v)
}

func (d Dialect) String() string {
	b, err := d.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(b)
}

func (d Dialect) MarshalText() ([]byte, error) {
	switch d {
	case FullDialect:
		return []byte("full"), nil
	case MinimalDialect:
		return []byte("minimal"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a dialect>", d)
	}
}

func (d *Dialect) UnmarshalText(b []byte) error {
	pd, err := ParseDialect(string(b))
	if err != nil {
		return err
	}
	*d = pd
	return nil
}

func (d Dialect) IsFull() bool    { return d == FullDialect }
func (d Dialect) IsMinimal() bool { return d == MinimalDialect }

// Suffix returns the conventional file extension (including the dot).
// Both dialects share it.
func (d Dialect) Suffix() string {
	return ".TextGrid"
}

// AllDialects returns the supported dialects in preference order.
func AllDialects() []Dialect {
	return []Dialect{FullDialect, MinimalDialect}
}
