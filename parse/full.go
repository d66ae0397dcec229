package parse

import (
	"github.com/phonolab/go-textgrid/tier"
	"github.com/phonolab/go-textgrid/token"
)

// parseFull is the grammar of the verbose, keyed encoding. One function
// per nonterminal over a shared cursor; every nonterminal is
// identifiable from its leading token, so there is no backtracking.
func parseFull(toks []token.Token) (*docHeader, []*tierHeader, []*tier.Tier, error) {
	c := &cursor{toks: toks}
	doc, err := parseFullHeader(c)
	if err != nil {
		return nil, nil, nil, err
	}
	// 'item []:' opens the tiers block
	if _, err := c.expect(token.TItem, "'item []:'"); err != nil {
		return nil, nil, nil, err
	}
	if err := bracketIndex(c); err != nil {
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
		if t.Type != token.TItem {
			return nil, nil, nil, unexpected(t, "'item [n]:' opening a tier")
		}
		th, tr, err := parseFullTier(c)
		if err != nil {
			return nil, nil, nil, err
		}
		heads = append(heads, th)
		tiers = append(tiers, tr)
	}
	return doc, heads, tiers, nil
}

// parseFullHeader consumes document properties until the tiers block.
// Free-form 'name = value' lines are admitted; only xmin and xmax are
// kept, together with the declared size and the has-tiers flag.
func parseFullHeader(c *cursor) (*docHeader, error) {
	doc := &docHeader{}
	for {
		t := c.peek()
		if t == nil || t.Type == token.TItem {
			return doc, nil
		}
		switch t.Type {
		case token.TSize:
			c.next()
			if _, err := c.expect(token.TEquals, "'=' after size"); err != nil {
				return nil, err
			}
			n, err := c.count("declared tier count")
			if err != nil {
				return nil, err
			}
			doc.Size = n
		case token.TTiers:
			c.next()
			if _, err := c.expect(token.TLAngle, "'<' after tiers?"); err != nil {
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
		case token.TIdent:
			name := t.String()
			c.next()
			if _, err := c.expect(token.TEquals, "'=' after property name"); err != nil {
				return nil, err
			}
			vt := c.peek()
			if vt == nil {
				return nil, unexpected(nil, "property value")
			}
			switch vt.Type {
			case token.TString:
				if name == "xmin" || name == "xmax" {
					return nil, unexpected(vt, "numeric "+name)
				}
				c.next()
			case token.TInt, token.TFloat:
				f, err := c.number("property value")
				if err != nil {
					return nil, err
				}
				switch name {
				case "xmin":
					doc.XMin = f
				case "xmax":
					doc.XMax = f
				}
			default:
				return nil, unexpected(vt, "property value")
			}
		default:
			return nil, unexpected(t, "document property or 'item []:'")
		}
	}
}

func parseFullTier(c *cursor) (*tierHeader, *tier.Tier, error) {
	if _, err := c.expect(token.TItem, "'item [n]:'"); err != nil {
		return nil, nil, err
	}
	if err := bracketIndex(c); err != nil {
		return nil, nil, err
	}
	if _, err := c.expect(token.TClass, "'class'"); err != nil {
		return nil, nil, err
	}
	if _, err := c.expect(token.TEquals, "'=' after class"); err != nil {
		return nil, nil, err
	}
	classTok, err := c.expect(token.TString, "tier class")
	if err != nil {
		return nil, nil, err
	}
	typ, err := tier.ParseType(classTok.String())
	if err != nil {
		return nil, nil, unexpected(classTok, `"IntervalTier" or "TextTier"`)
	}
	th, err := parseTierHeader(c)
	if err != nil {
		return nil, nil, err
	}
	tr := &tier.Tier{Type: typ, Name: th.Name}
	for {
		nt := c.peek()
		if nt == nil || nt.Type == token.TItem {
			return th, tr, nil
		}
		if nt.Type != token.TIntervals && nt.Type != token.TPoints {
			return nil, nil, unexpected(nt, "'intervals [n]:', 'points [n]:' or the next tier")
		}
		c.next()
		if err := bracketIndex(c); err != nil {
			return nil, nil, err
		}
		props, err := parseProps(c)
		if err != nil {
			return nil, nil, err
		}
		switch typ {
		case tier.IntervalType:
			start, err := numProp(c, props, "xmin")
			if err != nil {
				return nil, nil, err
			}
			end, err := numProp(c, props, "xmax")
			if err != nil {
				return nil, nil, err
			}
			text, err := strProp(c, props, "text")
			if err != nil {
				return nil, nil, err
			}
			tr.Intervals = append(tr.Intervals, tier.Interval{
				Start: start,
				End:   end,
				Text:  text,
			})
		case tier.TextType:
			number, err := numProp(c, props, "number")
			if err != nil {
				return nil, nil, err
			}
			mark, err := strProp(c, props, "mark")
			if err != nil {
				return nil, nil, err
			}
			tr.Points = append(tr.Points, tier.Point{
				Number: number,
				Mark:   mark,
			})
		}
	}
}

// parseTierHeader collects the name/xmin/xmax/size group. The
// properties are keyed, so their order within the group does not
// matter, but all four are required; the item count accepts both the
// bare 'size = n' spelling and Praat's 'intervals: size = n' /
// 'points: size = n'.
func parseTierHeader(c *cursor) (*tierHeader, error) {
	th := &tierHeader{}
	var sawName, sawXMin, sawXMax, sawSize bool
loop:
	for {
		t := c.peek()
		if t == nil || t.Type == token.TItem {
			break
		}
		switch t.Type {
		case token.TIntervals, token.TPoints:
			if nt := c.at(1); nt != nil && nt.Type == token.TLSquare {
				// 'intervals [n]:' starts the items
				break loop
			}
			c.next()
			if _, err := c.expect(token.TColon, "':' after intervals/points"); err != nil {
				return nil, err
			}
			if _, err := c.expect(token.TSize, "'size'"); err != nil {
				return nil, err
			}
			if _, err := c.expect(token.TEquals, "'=' after size"); err != nil {
				return nil, err
			}
			n, err := c.count("declared item count")
			if err != nil {
				return nil, err
			}
			th.Size = n
			sawSize = true
		case token.TSize:
			c.next()
			if _, err := c.expect(token.TEquals, "'=' after size"); err != nil {
				return nil, err
			}
			n, err := c.count("declared item count")
			if err != nil {
				return nil, err
			}
			th.Size = n
			sawSize = true
		case token.TIdent:
			name := t.String()
			c.next()
			if _, err := c.expect(token.TEquals, "'=' after property name"); err != nil {
				return nil, err
			}
			vt := c.peek()
			if vt == nil {
				return nil, unexpected(nil, "property value")
			}
			switch vt.Type {
			case token.TString:
				switch name {
				case "xmin", "xmax":
					return nil, unexpected(vt, "numeric "+name)
				case "name":
					th.Name = vt.String()
					sawName = true
				}
				c.next()
			case token.TInt, token.TFloat:
				if name == "name" {
					return nil, unexpected(vt, "quoted tier name")
				}
				f, err := c.number("property value")
				if err != nil {
					return nil, err
				}
				switch name {
				case "xmin":
					th.XMin = f
					sawXMin = true
				case "xmax":
					th.XMax = f
					sawXMax = true
				}
			default:
				return nil, unexpected(vt, "property value")
			}
		default:
			return nil, unexpected(t, "tier header property")
		}
	}
	for _, req := range []struct {
		saw  bool
		what string
	}{
		{sawName, "'name' property"},
		{sawXMin, "'xmin' property"},
		{sawXMax, "'xmax' property"},
		{sawSize, "'size' property"},
	} {
		if !req.saw {
			return nil, unexpected(c.peek(), req.what)
		}
	}
	return th, nil
}

// parseProps collects one interval or point property group
// ('xmin'/'xmax'/'text' or 'number'/'mark') keyed; the enclosing tier's
// variant decides which keys are required, and their absence fails
// where the group ended.
func parseProps(c *cursor) (map[string]*token.Token, error) {
	props := map[string]*token.Token{}
	for {
		t := c.peek()
		if t == nil || t.Type != token.TIdent {
			return props, nil
		}
		c.next()
		if _, err := c.expect(token.TEquals, "'=' after property name"); err != nil {
			return nil, err
		}
		vt := c.peek()
		if vt == nil {
			return nil, unexpected(nil, "property value")
		}
		switch vt.Type {
		case token.TString, token.TInt, token.TFloat:
			c.next()
			props[t.String()] = vt
		default:
			return nil, unexpected(vt, "property value")
		}
	}
}

// bracketIndex consumes '[' INT ']' ':' (or '[' ']' ':' for the tiers
// block). The index is parsed and ignored: it is never checked against
// the element's actual position.
func bracketIndex(c *cursor) error {
	if _, err := c.expect(token.TLSquare, "'['"); err != nil {
		return err
	}
	if t := c.peek(); t != nil && t.Type == token.TInt {
		c.next()
	}
	if _, err := c.expect(token.TRSquare, "']'"); err != nil {
		return err
	}
	_, err := c.expect(token.TColon, "':'")
	return err
}
