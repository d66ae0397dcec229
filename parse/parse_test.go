package parse

import (
	"errors"
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/phonolab/go-textgrid/tier"
)

func TestParseFull(t *testing.T) {
	d, err := os.ReadFile("testdata/full.TextGrid")
	if err != nil {
		t.Fatal(err)
	}
	tiers, err := Parse(d)
	if err != nil {
		t.Fatal(err)
	}
	want := []*tier.Tier{
		{
			Type: tier.IntervalType,
			Name: "sentence",
			Intervals: []tier.Interval{
				{Start: 0, End: 2.3, Text: "hello world"},
			},
		},
		{
			Type: tier.IntervalType,
			Name: "phonemes",
			Intervals: []tier.Interval{
				{Start: 0, End: 0.7, Text: "hh"},
				{Start: 0.7, End: 1.4, Text: "eh"},
				{Start: 1.4, End: 2.3, Text: "low"},
			},
		},
		{
			Type: tier.TextType,
			Name: "bell",
			Points: []tier.Point{
				{Number: 0.5, Mark: "ding"},
				{Number: 1.5, Mark: "dong"},
			},
		},
	}
	if diff := cmp.Diff(want, tiers); diff != "" {
		t.Errorf("tiers mismatch (-want +got):\n%s", diff)
	}
}

func TestParseFullSimple(t *testing.T) {
	d, err := os.ReadFile("testdata/full_simple.TextGrid")
	if err != nil {
		t.Fatal(err)
	}
	tiers, err := Parse(d)
	if err != nil {
		t.Fatal(err)
	}
	if len(tiers) != 3 {
		t.Fatalf("got %d tiers, want 3", len(tiers))
	}
	names := []string{"Mary", "John", "bell"}
	counts := []int{1, 1, 0}
	for i, tr := range tiers {
		if tr.Name != names[i] {
			t.Errorf("tier %d: got name %q, want %q", i, tr.Name, names[i])
		}
		if tr.Len() != counts[i] {
			t.Errorf("tier %d: got %d items, want %d", i, tr.Len(), counts[i])
		}
	}
	if tiers[2].Type != tier.TextType {
		t.Errorf("tier 2: got %s, want TextTier", tiers[2].Type)
	}
	// the empty point tier has undefined bounds
	if _, _, ok := tiers[2].Bounds(); ok {
		t.Error("empty tier: bounds should be undefined")
	}
}

// The single-tier scenario: one declared interval tier containing one
// interval, metadata agreeing with content.
func TestParseFullScenario(t *testing.T) {
	in := `xmin = 0
xmax = 2.3
tiers? <exists>
size = 1
item []:
    item [1]:
        class = "IntervalTier"
        name = "sentence"
        xmin = 0
        xmax = 2.3
        intervals: size = 1
        intervals [1]:
            xmin = 0
            xmax = 2.3
            text = "hello"
`
	tiers, err := Parse([]byte(in))
	if err != nil {
		t.Fatal(err)
	}
	want := []*tier.Tier{
		{
			Type: tier.IntervalType,
			Name: "sentence",
			Intervals: []tier.Interval{
				{Start: 0, End: 2.3, Text: "hello"},
			},
		},
	}
	if diff := cmp.Diff(want, tiers); diff != "" {
		t.Errorf("tiers mismatch (-want +got):\n%s", diff)
	}
}

// Integer literals in numeric positions widen to float64: xmin = 0 and
// xmax = 2 parse identically to 0.0 and 2.0.
func TestParseFullWidensIntegers(t *testing.T) {
	in := `xmin = 0
xmax = 2
tiers? <exists>
size = 1
item []:
    item [1]:
        class = "IntervalTier"
        name = "a"
        xmin = 0
        xmax = 2
        size = 1
        intervals [1]:
            xmin = 1
            xmax = 2
            text = "x"
`
	tiers, err := Parse([]byte(in))
	if err != nil {
		t.Fatal(err)
	}
	iv := tiers[0].Intervals[0]
	if iv.Start != 1.0 || iv.End != 2.0 {
		t.Errorf("got (%v, %v), want (1, 2)", iv.Start, iv.End)
	}
}

// Properties within a tier header group are keyed, so their order is
// insignificant.
func TestParseFullHeaderPropOrder(t *testing.T) {
	in := `xmin = 0
xmax = 1
tiers? <exists>
size = 1
item []:
    item [1]:
        class = "IntervalTier"
        xmax = 1
        name = "swapped"
        intervals: size = 1
        xmin = 0
        intervals [1]:
            text = "x"
            xmax = 1
            xmin = 0
`
	tiers, err := Parse([]byte(in))
	if err != nil {
		t.Fatal(err)
	}
	if tiers[0].Name != "swapped" {
		t.Errorf("got name %q, want %q", tiers[0].Name, "swapped")
	}
	want := tier.Interval{Start: 0, End: 1, Text: "x"}
	if tiers[0].Intervals[0] != want {
		t.Errorf("got %+v, want %+v", tiers[0].Intervals[0], want)
	}
}

type syntaxTest struct {
	name string
	in   string
	eof  bool
}

func TestParseFullSyntaxErrs(t *testing.T) {
	tests := []syntaxTest{
		{
			name: "missing equals",
			in:   "xmin 0\n",
		},
		{
			name: "truncated header",
			in:   "xmin =",
			eof:  true,
		},
		{
			name: "no tiers block",
			in:   "xmin = 0\nxmax = 1\n",
			eof:  true,
		},
		{
			name: "bad class",
			in: `size = 1
item []:
    item [1]:
        class = "PitchTier"
`,
		},
		{
			name: "class not quoted",
			in: `size = 1
item []:
    item [1]:
        class = IntervalTier
`,
		},
		{
			name: "stray token after tiers block",
			in: `size = 0
item []:
]
`,
		},
		{
			// a group with keys absent must not fabricate zero values
			name: "interval group missing text",
			in: `size = 1
item []:
    item [1]:
        class = "IntervalTier"
        name = "a"
        xmin = 0
        xmax = 2
        intervals: size = 2
        intervals [1]:
            xmin = 0
            xmax = 2
        intervals [2]:
            xmin = 0
            xmax = 2
            text = "x"
`,
		},
		{
			name: "empty interval group",
			in: `size = 1
item []:
    item [1]:
        class = "IntervalTier"
        name = "a"
        xmin = 0
        xmax = 2
        intervals: size = 1
        intervals [1]:
`,
			eof: true,
		},
		{
			name: "point group missing number",
			in: `size = 1
item []:
    item [1]:
        class = "TextTier"
        name = "b"
        xmin = 0
        xmax = 2
        points: size = 1
        points [1]:
            mark = "ding"
`,
			eof: true,
		},
		{
			name: "tier header missing name",
			in: `size = 1
item []:
    item [1]:
        class = "IntervalTier"
        xmin = 0
        xmax = 1
        intervals: size = 0
`,
			eof: true,
		},
		{
			name: "document xmin quoted",
			in:   "xmin = \"0\"\n",
		},
		{
			name: "tier name not quoted",
			in: `size = 1
item []:
    item [1]:
        class = "IntervalTier"
        name = 3
`,
		},
		{
			name: "quoted interval bound",
			in: `size = 1
item []:
    item [1]:
        class = "IntervalTier"
        name = "a"
        xmin = 0
        xmax = 1
        intervals: size = 1
        intervals [1]:
            xmin = "0"
            xmax = 1
            text = "x"
`,
		},
	}
	for _, tst := range tests {
		t.Run(tst.name, func(t *testing.T) {
			_, err := Parse([]byte(tst.in), CheckConsistency(false))
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, ErrSyntax) {
				t.Fatalf("got %v, want ErrSyntax", err)
			}
			se := &SyntaxError{}
			if !errors.As(err, &se) {
				t.Fatalf("got %T, want *SyntaxError", err)
			}
			if tst.eof && se.Token != nil {
				t.Errorf("got token %s, want end of input", se.Token.Info())
			}
			if !tst.eof && se.Token == nil {
				t.Error("got end of input, want offending token")
			}
		})
	}
}

// A lexical failure surfaces as such, not as a syntax error.
func TestParseLexErr(t *testing.T) {
	_, err := Parse([]byte("xmin = $1\n"))
	if err == nil {
		t.Fatal("expected error")
	}
	if errors.Is(err, ErrParse) {
		t.Errorf("got %v, want a lex error", err)
	}
}
