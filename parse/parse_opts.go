package parse

import (
	"github.com/phonolab/go-textgrid/format"
	"github.com/phonolab/go-textgrid/token"
)

type parseOpts struct {
	dialect format.Dialect
	check   bool
}

func defaultParseOpts() *parseOpts {
	return &parseOpts{
		dialect: format.FullDialect,
		check:   true,
	}
}

func (o *parseOpts) TokenizeOpts() []token.TokenOpt {
	switch o.dialect {
	case format.MinimalDialect:
		return []token.TokenOpt{token.TokenMinimal()}
	default:
		return []token.TokenOpt{token.TokenFull()}
	}
}

type ParseOption func(*parseOpts)

func ParseFull() ParseOption {
	return ParseDialect(format.FullDialect)
}
func ParseMinimal() ParseOption {
	return ParseDialect(format.MinimalDialect)
}
func ParseDialect(d format.Dialect) ParseOption {
	return func(o *parseOpts) { o.dialect = d }
}

// CheckConsistency toggles validation of declared metadata against
// parsed content. On by default.
func CheckConsistency(v bool) ParseOption {
	return func(o *parseOpts) { o.check = v }
}
