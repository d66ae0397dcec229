package parse

import (
	"github.com/phonolab/go-textgrid/debug"
	"github.com/phonolab/go-textgrid/format"
	"github.com/phonolab/go-textgrid/tier"
	"github.com/phonolab/go-textgrid/token"
)

// Parse tokenizes and parses a complete TextGrid document, returning
// its tiers in file declaration order. The dialect defaults to full and
// consistency checking to on; both are set with options. Any failure
// aborts the call, no partial document is returned.
func Parse(d []byte, opts ...ParseOption) ([]*tier.Tier, error) {
	pOpts := defaultParseOpts()
	for _, f := range opts {
		f(pOpts)
	}
	toks, err := token.Tokenize(nil, d, pOpts.TokenizeOpts()...)
	if err != nil {
		return nil, err
	}
	if debug.Lex() {
		debug.Logf("tokenized %d %s-dialect tokens\n", len(toks), pOpts.dialect)
	}
	var (
		doc   *docHeader
		heads []*tierHeader
		tiers []*tier.Tier
	)
	switch pOpts.dialect {
	case format.MinimalDialect:
		doc, heads, tiers, err = parseMinimal(toks)
	default:
		doc, heads, tiers, err = parseFull(toks)
	}
	if err != nil {
		return nil, err
	}
	if debug.Parse() {
		debug.Logf("parsed %d tiers (declared %d, xmin=%v xmax=%v has-tiers=%v)\n",
			len(tiers), doc.Size, doc.XMin, doc.XMax, doc.HasTiers)
	}
	if pOpts.check {
		if err := checkConsistency(doc, heads, tiers); err != nil {
			return nil, err
		}
	}
	return tiers, nil
}
