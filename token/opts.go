package token

import (
	"github.com/phonolab/go-textgrid/format"
)

type tokenOpts struct {
	dialect format.Dialect
}

type TokenOpt func(*tokenOpts)

func TokenDialect(d format.Dialect) TokenOpt {
	return func(o *tokenOpts) { o.dialect = d }
}

func TokenFull() TokenOpt {
	return TokenDialect(format.FullDialect)
}

func TokenMinimal() TokenOpt {
	return TokenDialect(format.MinimalDialect)
}
