package parse

import (
	"fmt"
	"strconv"

	"github.com/phonolab/go-textgrid/token"
)

// docHeader and tierHeader are transient: captured while parsing,
// consumed by the consistency checker, then discarded. When checking
// is off they are never looked at and need not be internally
// consistent.
type docHeader struct {
	Size       int
	XMin, XMax float64
	HasTiers   bool
}

type tierHeader struct {
	Name       string
	XMin, XMax float64
	Size       int
}

// hasTiersFlag is the angle-bracketed identifier marking tier
// presence. Anything else reads as absent; an absent flag with tiers
// following is left unchecked.
const hasTiersFlag = "exists"

// numProp reads a required numeric property from a collected group,
// widening integer literals to float64. A missing key fails where the
// group ended; a quoted value fails at the value.
func numProp(c *cursor, props map[string]*token.Token, key string) (float64, error) {
	t, ok := props[key]
	if !ok {
		return 0, unexpected(c.peek(), fmt.Sprintf("'%s' property", key))
	}
	if t.Type != token.TInt && t.Type != token.TFloat {
		return 0, unexpected(t, fmt.Sprintf("numeric %s", key))
	}
	f, err := strconv.ParseFloat(string(t.Bytes), 64)
	if err != nil {
		return 0, unexpected(t, fmt.Sprintf("numeric %s", key))
	}
	return f, nil
}

// strProp reads a required string property from a collected group.
func strProp(c *cursor, props map[string]*token.Token, key string) (string, error) {
	t, ok := props[key]
	if !ok {
		return "", unexpected(c.peek(), fmt.Sprintf("'%s' property", key))
	}
	if t.Type != token.TString {
		return "", unexpected(t, fmt.Sprintf("quoted %s", key))
	}
	return t.String(), nil
}
