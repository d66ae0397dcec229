package token

import (
	"fmt"
)

type TokenType int

const (
	TInt TokenType = iota
	TFloat
	TString
	TIdent
	TEquals
	TColon
	TLSquare
	TRSquare
	TLAngle
	TRAngle

	// keyword kinds, full dialect only
	TItem
	TClass
	TSize
	TIntervals
	TPoints
	TTiers

	// tier tag kinds, minimal dialect only
	TIntervalTier
	TTextTier
)

func (t TokenType) String() string {
	return map[TokenType]string{
		TInt:          "TInt",
		TFloat:        "TFloat",
		TString:       "TString",
		TIdent:        "TIdent",
		TEquals:       "TEquals",
		TColon:        "TColon",
		TLSquare:      "TLSquare",
		TRSquare:      "TRSquare",
		TLAngle:       "TLAngle",
		TRAngle:       "TRAngle",
		TItem:         "TItem",
		TClass:        "TClass",
		TSize:         "TSize",
		TIntervals:    "TIntervals",
		TPoints:       "TPoints",
		TTiers:        "TTiers",
		TIntervalTier: "TIntervalTier",
		TTextTier:     "TTextTier",
	}[t]
}

type Token struct {
	Type  TokenType
	Pos   *Pos
	Bytes []byte
}

func (t *Token) Info() string {
	return fmt.Sprintf("%s %s", t.Type, t.Pos.String())
}

// String returns the token content. Quoted kinds are returned without
// the surrounding quotes; no escape processing is applied, the format
// has none.
func (t *Token) String() string {
	switch t.Type {
	case TString, TIntervalTier, TTextTier:
		return string(t.Bytes[1 : len(t.Bytes)-1])
	default:
		return string(t.Bytes)
	}
}
