package parse

import (
	"strconv"

	"github.com/phonolab/go-textgrid/token"
)

// cursor is the parsing state shared by the grammar functions: the
// token slice and the current index. One cursor per call; nothing else
// is carried between invocations.
type cursor struct {
	toks []token.Token
	i    int
}

// at returns the token k positions ahead, or nil past the end.
func (c *cursor) at(k int) *token.Token {
	if c.i+k >= len(c.toks) {
		return nil
	}
	return &c.toks[c.i+k]
}

func (c *cursor) peek() *token.Token {
	return c.at(0)
}

func (c *cursor) next() *token.Token {
	t := c.at(0)
	if t != nil {
		c.i++
	}
	return t
}

// expect consumes the next token, requiring kind tt.
func (c *cursor) expect(tt token.TokenType, what string) (*token.Token, error) {
	t := c.peek()
	if t == nil || t.Type != tt {
		return nil, unexpected(t, what)
	}
	c.i++
	return t, nil
}

// number consumes an integer or decimal token, widening to float64.
func (c *cursor) number(what string) (float64, error) {
	t := c.peek()
	if t == nil || (t.Type != token.TInt && t.Type != token.TFloat) {
		return 0, unexpected(t, what)
	}
	c.i++
	f, err := strconv.ParseFloat(string(t.Bytes), 64)
	if err != nil {
		// the lexer admits only digits and digits '.' digits
		return 0, unexpected(t, what)
	}
	return f, nil
}

// count consumes an integer token as an item or tier count.
func (c *cursor) count(what string) (int, error) {
	t, err := c.expect(token.TInt, what)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(string(t.Bytes))
	if err != nil {
		return 0, unexpected(t, what)
	}
	return n, nil
}
