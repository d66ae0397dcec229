package parse

import (
	"github.com/phonolab/go-textgrid/tier"
	"github.com/phonolab/go-textgrid/token"
)

// parseMinimal is the grammar of the compact encoding. Past the header
// every field is positional; a field of the wrong kind is a syntax
// error at that exact position, with no recovery.
func parseMinimal(toks []token.Token) (*docHeader, []*tierHeader, []*tier.Tier, error) {
	c := &cursor{toks: toks}
	doc, err := parseMinimalHeader(c)
	if err != nil {
		return nil, nil, nil, err
	}
	var (
		heads []*tierHeader
		tiers []*tier.Tier
	)
	for {
		t := c.peek()
		if t == nil {
			break
		}
		var (
			th *tierHeader
			tr *tier.Tier
		)
		switch t.Type {
		case token.TIntervalTier:
			c.next()
			th, tr, err = parseMinimalIntervalTier(c)
		case token.TTextTier:
			c.next()
			th, tr, err = parseMinimalTextTier(c)
		default:
			return nil, nil, nil, unexpected(t, `"IntervalTier" or "TextTier"`)
		}
		if err != nil {
			return nil, nil, nil, err
		}
		heads = append(heads, th)
		tiers = append(tiers, tr)
	}
	return doc, heads, tiers, nil
}

// parseMinimalHeader reads zero or more free-form 'key = "value"'
// lines, none of which carries anything the parse keeps, then the
// positional xmin, xmax, has-tiers flag and declared tier count.
func parseMinimalHeader(c *cursor) (*docHeader, error) {
	for {
		t := c.peek()
		if t == nil || t.Type != token.TIdent {
			break
		}
		c.next()
		if _, err := c.expect(token.TEquals, "'=' after property name"); err != nil {
			return nil, err
		}
		if _, err := c.expect(token.TString, "property value"); err != nil {
			return nil, err
		}
	}
	doc := &docHeader{}
	var err error
	if doc.XMin, err = c.number("document xmin"); err != nil {
		return nil, err
	}
	if doc.XMax, err = c.number("document xmax"); err != nil {
		return nil, err
	}
	if _, err := c.expect(token.TLAngle, "'<'"); err != nil {
		return nil, err
	}
	id, err := c.expect(token.TIdent, "has-tiers flag")
	if err != nil {
		return nil, err
	}
	if _, err := c.expect(token.TRAngle, "'>'"); err != nil {
		return nil, err
	}
	doc.HasTiers = id.String() == hasTiersFlag
	if doc.Size, err = c.count("declared tier count"); err != nil {
		return nil, err
	}
	return doc, nil
}

func parseMinimalIntervalTier(c *cursor) (*tierHeader, *tier.Tier, error) {
	th, err := parseMinimalTierHeader(c)
	if err != nil {
		return nil, nil, err
	}
	tr := &tier.Tier{Type: tier.IntervalType, Name: th.Name}
	for {
		t := c.peek()
		if t == nil || (t.Type != token.TInt && t.Type != token.TFloat) {
			return th, tr, nil
		}
		start, err := c.number("interval xmin")
		if err != nil {
			return nil, nil, err
		}
		end, err := c.number("interval xmax")
		if err != nil {
			return nil, nil, err
		}
		text, err := c.expect(token.TString, "interval text")
		if err != nil {
			return nil, nil, err
		}
		tr.Intervals = append(tr.Intervals, tier.Interval{
			Start: start,
			End:   end,
			Text:  text.String(),
		})
	}
}

func parseMinimalTextTier(c *cursor) (*tierHeader, *tier.Tier, error) {
	th, err := parseMinimalTierHeader(c)
	if err != nil {
		return nil, nil, err
	}
	tr := &tier.Tier{Type: tier.TextType, Name: th.Name}
	for {
		t := c.peek()
		if t == nil || (t.Type != token.TInt && t.Type != token.TFloat) {
			return th, tr, nil
		}
		number, err := c.number("point number")
		if err != nil {
			return nil, nil, err
		}
		mark, err := c.expect(token.TString, "point mark")
		if err != nil {
			return nil, nil, err
		}
		tr.Points = append(tr.Points, tier.Point{
			Number: number,
			Mark:   mark.String(),
		})
	}
}

func parseMinimalTierHeader(c *cursor) (*tierHeader, error) {
	name, err := c.expect(token.TString, "tier name")
	if err != nil {
		return nil, err
	}
	th := &tierHeader{Name: name.String()}
	if th.XMin, err = c.number("tier xmin"); err != nil {
		return nil, err
	}
	if th.XMax, err = c.number("tier xmax"); err != nil {
		return nil, err
	}
	if th.Size, err = c.count("declared item count"); err != nil {
		return nil, err
	}
	return th, nil
}
