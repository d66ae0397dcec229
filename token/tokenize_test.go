package token

import (
	"errors"
	"testing"
)

func TestTokenizeFull(t *testing.T) {
	s := `File type = "ooTextFile"
xmin = 0
xmax = 2.3
tiers? <exists>
size = 1
item []:
    item [1]:
        class = "IntervalTier"
`
	toks, err := Tokenize(nil, []byte(s), TokenFull())
	if err != nil {
		t.Fatal(err)
	}
	want := []TokenType{
		TIdent, TEquals, TString,
		TIdent, TEquals, TInt,
		TIdent, TEquals, TFloat,
		TTiers, TLAngle, TIdent, TRAngle,
		TSize, TEquals, TInt,
		TItem, TLSquare, TRSquare, TColon,
		TItem, TLSquare, TInt, TRSquare, TColon,
		TClass, TEquals, TString,
	}
	if len(toks) != len(want) {
		for _, tok := range toks {
			t.Logf("%s %q", tok.Type, tok.String())
		}
		t.Fatalf("got %d tokens, want %d", len(toks), len(want))
	}
	for i, w := range want {
		if toks[i].Type != w {
			t.Errorf("token %d: got %s %q, want %s", i, toks[i].Type, toks[i].String(), w)
		}
	}
	if got := toks[0].String(); got != "File type" {
		t.Errorf("multi-word identifier: got %q, want %q", got, "File type")
	}
	if got := toks[2].String(); got != "ooTextFile" {
		t.Errorf("string content: got %q, want %q", got, "ooTextFile")
	}
	if got := toks[9].String(); got != "tiers?" {
		t.Errorf("tiers keyword: got %q, want %q", got, "tiers?")
	}
}

func TestTokenizeKeywordsAreDialectSpecific(t *testing.T) {
	s := `"IntervalTier"`
	full, err := Tokenize(nil, []byte(s), TokenFull())
	if err != nil {
		t.Fatal(err)
	}
	if full[0].Type != TString {
		t.Errorf("full dialect: got %s, want TString", full[0].Type)
	}
	minimal, err := Tokenize(nil, []byte(s), TokenMinimal())
	if err != nil {
		t.Fatal(err)
	}
	if minimal[0].Type != TIntervalTier {
		t.Errorf("minimal dialect: got %s, want TIntervalTier", minimal[0].Type)
	}

	// structural spellings stay plain identifiers in the minimal dialect
	toks, err := Tokenize(nil, []byte(`size`), TokenMinimal())
	if err != nil {
		t.Fatal(err)
	}
	if toks[0].Type != TIdent {
		t.Errorf("minimal dialect: got %s, want TIdent", toks[0].Type)
	}
}

func TestTokenizeMinimal(t *testing.T) {
	s := `File type = "ooTextFile"
0
2.3
<exists>
1
"TextTier"
"bell"
0.5
"ding"
`
	toks, err := Tokenize(nil, []byte(s), TokenMinimal())
	if err != nil {
		t.Fatal(err)
	}
	want := []TokenType{
		TIdent, TEquals, TString,
		TInt, TFloat,
		TLAngle, TIdent, TRAngle,
		TInt,
		TTextTier, TString,
		TFloat, TString,
	}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d", len(toks), len(want))
	}
	for i, w := range want {
		if toks[i].Type != w {
			t.Errorf("token %d: got %s %q, want %s", i, toks[i].Type, toks[i].String(), w)
		}
	}
}

func TestTokenizeNumbers(t *testing.T) {
	tests := []struct {
		in      string
		tt      TokenType
		wantErr bool
	}{
		{in: "0", tt: TInt},
		{in: "42", tt: TInt},
		{in: "2.3", tt: TFloat},
		{in: "0.001", tt: TFloat},
	}
	for _, tst := range tests {
		toks, err := Tokenize(nil, []byte(tst.in))
		if tst.wantErr {
			if err == nil {
				t.Errorf("%q: expected error", tst.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("%q: %v", tst.in, err)
			continue
		}
		if len(toks) != 1 || toks[0].Type != tst.tt {
			t.Errorf("%q: got %s, want %s", tst.in, toks[0].Type, tst.tt)
		}
	}
}

func TestTokenizeErrs(t *testing.T) {
	_, err := Tokenize(nil, []byte("xmin = %"))
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, ErrChar) {
		t.Errorf("got %v, want ErrChar", err)
	}
	if !errors.Is(err, ErrLex) {
		t.Errorf("got %v, want ErrLex in chain", err)
	}
	le := &LexError{}
	if !errors.As(err, &le) {
		t.Fatalf("got %T, want *LexError", err)
	}
	if le.Char != '%' {
		t.Errorf("got char %q, want '%%'", le.Char)
	}
	if le.Pos.I != 7 {
		t.Errorf("got offset %d, want 7", le.Pos.I)
	}

	_, err = Tokenize(nil, []byte("name = \"unterminated"))
	if !errors.Is(err, ErrUnterminated) {
		t.Errorf("got %v, want ErrUnterminated", err)
	}
}

func TestTokenizePositions(t *testing.T) {
	s := "xmin = 0\nxmax = 2.3\n"
	toks, err := Tokenize(nil, []byte(s))
	if err != nil {
		t.Fatal(err)
	}
	// second line starts with 'xmax'
	tok := toks[3]
	if tok.String() != "xmax" {
		t.Fatalf("got %q, want xmax", tok.String())
	}
	if line := tok.Pos.Line(); line != 1 {
		t.Errorf("got line %d, want 1", line)
	}
	if col := tok.Pos.Col(); col != 0 {
		t.Errorf("got col %d, want 0", col)
	}
	if tok.Pos.I != 9 {
		t.Errorf("got offset %d, want 9", tok.Pos.I)
	}
}

func TestTokenizeStringKeepsNewlines(t *testing.T) {
	toks, err := Tokenize(nil, []byte("text = \"two\nlines\""))
	if err != nil {
		t.Fatal(err)
	}
	if got := toks[2].String(); got != "two\nlines" {
		t.Errorf("got %q, want %q", got, "two\nlines")
	}
}
