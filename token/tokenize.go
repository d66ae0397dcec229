package token

import (
	"bytes"
	"unicode/utf8"

	"github.com/phonolab/go-textgrid/format"
)

// Tokenize appends the tokens of src to dst and returns the extended
// slice. Whitespace separates tokens and is otherwise dropped; newline
// offsets are indexed so token positions can report lines. A byte
// matching no rule yields a *LexError.
func Tokenize(dst []Token, src []byte, opts ...TokenOpt) ([]Token, error) {
	opt := &tokenOpts{dialect: format.FullDialect}
	for _, o := range opts {
		o(opt)
	}
	posDoc := NewPosDoc(src)
	d := posDoc.d
	n := len(d)
	i := 0
	for i < n {
		c := d[i]
		switch c {
		case ' ', '\t', '\r', '\n', '\v', '\f':
			i++
		case '=':
			dst = append(dst, Token{
				Type:  TEquals,
				Pos:   posDoc.Pos(i),
				Bytes: d[i : i+1],
			})
			i++
		case ':':
			dst = append(dst, Token{
				Type:  TColon,
				Pos:   posDoc.Pos(i),
				Bytes: d[i : i+1],
			})
			i++
		case '[':
			dst = append(dst, Token{
				Type:  TLSquare,
				Pos:   posDoc.Pos(i),
				Bytes: d[i : i+1],
			})
			i++
		case ']':
			dst = append(dst, Token{
				Type:  TRSquare,
				Pos:   posDoc.Pos(i),
				Bytes: d[i : i+1],
			})
			i++
		case '<':
			dst = append(dst, Token{
				Type:  TLAngle,
				Pos:   posDoc.Pos(i),
				Bytes: d[i : i+1],
			})
			i++
		case '>':
			dst = append(dst, Token{
				Type:  TRAngle,
				Pos:   posDoc.Pos(i),
				Bytes: d[i : i+1],
			})
			i++
		case '"':
			j := i + 1
			for j < n && d[j] != '"' {
				j++
			}
			if j == n {
				return nil, NewLexError(ErrUnterminated, '"', posDoc.Pos(i))
			}
			tok := Token{
				Type:  TString,
				Pos:   posDoc.Pos(i),
				Bytes: d[i : j+1],
			}
			if opt.dialect.IsMinimal() {
				if tt, ok := tierTags[string(d[i+1:j])]; ok {
					tok.Type = tt
				}
			}
			dst = append(dst, tok)
			i = j + 1
		case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
			sz, isFloat, err := number(d[i:])
			if err != nil {
				return nil, NewLexError(err, rune(c), posDoc.Pos(i))
			}
			tok := Token{
				Type:  TInt,
				Pos:   posDoc.Pos(i),
				Bytes: d[i : i+sz],
			}
			if isFloat {
				tok.Type = TFloat
			}
			dst = append(dst, tok)
			i += sz
		default:
			if !asciiLetter(c) {
				r, _ := utf8.DecodeRune(d[i:])
				return nil, NewLexError(ErrChar, r, posDoc.Pos(i))
			}
			j := i
			for j < n && (asciiLetter(d[j]) || d[j] == ' ') {
				j++
			}
			// 'tiers?' is the one spelling with a trailing '?'
			if j < n && d[j] == '?' {
				j++
			}
			word := bytes.TrimRight(d[i:j], " ")
			tok := Token{
				Type:  TIdent,
				Pos:   posDoc.Pos(i),
				Bytes: word,
			}
			if opt.dialect.IsFull() {
				if kw, ok := keywords[string(word)]; ok {
					tok.Type = kw
				}
			}
			dst = append(dst, tok)
			i = j
		}
	}
	return dst, nil
}
