package parse

import (
	"errors"
	"strings"
	"testing"
)

const tierCountMismatch = `xmin = 0
xmax = 2.3
tiers? <exists>
size = 3
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
    item [2]:
        class = "IntervalTier"
        name = "extra"
        xmin = 0
        xmax = 2.3
        intervals: size = 0
`

// The checker is gated: the same mismatched input fails with checking
// on and parses cleanly with checking off.
func TestCheckGating(t *testing.T) {
	_, err := Parse([]byte(tierCountMismatch))
	if err == nil {
		t.Fatal("expected ConsistencyError")
	}
	if !errors.Is(err, ErrConsistency) {
		t.Fatalf("got %v, want ErrConsistency", err)
	}
	tiers, err := Parse([]byte(tierCountMismatch), CheckConsistency(false))
	if err != nil {
		t.Fatalf("checking off: %v", err)
	}
	if len(tiers) != 2 {
		t.Errorf("got %d tiers, want 2", len(tiers))
	}
}

func TestCheckTierCount(t *testing.T) {
	_, err := Parse([]byte(tierCountMismatch))
	if err == nil {
		t.Fatal("expected error")
	}
	ce := &ConsistencyError{}
	if !errors.As(err, &ce) {
		t.Fatalf("got %T, want *ConsistencyError", err)
	}
	if !strings.Contains(ce.Msg, "Inconsistent number of tiers") {
		t.Errorf("got %q, want mention of inconsistent number of tiers", ce.Msg)
	}
	if ce.Declared != 3 || ce.Actual != 2 {
		t.Errorf("got declared=%v actual=%v, want 3 and 2", ce.Declared, ce.Actual)
	}
}

func TestCheckItemCount(t *testing.T) {
	in := `xmin = 0
xmax = 2.3
tiers? <exists>
size = 1
item []:
    item [1]:
        class = "IntervalTier"
        name = "phonemes"
        xmin = 0
        xmax = 2.3
        intervals: size = 3
        intervals [1]:
            xmin = 0
            xmax = 1
            text = "a"
        intervals [2]:
            xmin = 1
            xmax = 2.3
            text = "b"
`
	_, err := Parse([]byte(in))
	if err == nil {
		t.Fatal("expected error")
	}
	ce := &ConsistencyError{}
	if !errors.As(err, &ce) {
		t.Fatalf("got %T, want *ConsistencyError", err)
	}
	want := `Inconsistent number of items in tier "phonemes": 3 declared in tier header, found 2 in file.`
	if ce.Msg != want {
		t.Errorf("got %q,\nwant %q", ce.Msg, want)
	}
	if ce.Tier != "phonemes" {
		t.Errorf("got tier %q, want %q", ce.Tier, "phonemes")
	}
}

func TestCheckDocumentBounds(t *testing.T) {
	in := `xmin = 1
xmax = 2
tiers? <exists>
size = 1
item []:
    item [1]:
        class = "TextTier"
        name = "bell"
        xmin = 1
        xmax = 2
        points: size = 1
        points [1]:
            number = 0.5
            mark = "early"
`
	_, err := Parse([]byte(in))
	if err == nil {
		t.Fatal("expected error")
	}
	ce := &ConsistencyError{}
	if !errors.As(err, &ce) {
		t.Fatalf("got %T, want *ConsistencyError", err)
	}
	if ce.Tier != "bell" || ce.Field != "xmin" {
		t.Errorf("got tier=%q field=%q, want bell/xmin", ce.Tier, ce.Field)
	}
}

func TestCheckTierBounds(t *testing.T) {
	// document bounds admit the item; the tier's own declared bounds
	// do not
	in := `xmin = 0
xmax = 10
tiers? <exists>
size = 1
item []:
    item [1]:
        class = "IntervalTier"
        name = "narrow"
        xmin = 0
        xmax = 1
        intervals: size = 1
        intervals [1]:
            xmin = 0
            xmax = 5
            text = "wide"
`
	_, err := Parse([]byte(in))
	if err == nil {
		t.Fatal("expected error")
	}
	ce := &ConsistencyError{}
	if !errors.As(err, &ce) {
		t.Fatalf("got %T, want *ConsistencyError", err)
	}
	if ce.Tier != "narrow" || ce.Field != "xmax" {
		t.Errorf("got tier=%q field=%q, want narrow/xmax", ce.Tier, ce.Field)
	}
	if ce.Declared != 1.0 || ce.Actual != 5.0 {
		t.Errorf("got declared=%v actual=%v, want 1 and 5", ce.Declared, ce.Actual)
	}
}

// An empty tier has undefined bounds: the bound checks are skipped and
// only the counts are validated.
func TestCheckEmptyTierSkipsBounds(t *testing.T) {
	in := `xmin = 5
xmax = 6
tiers? <exists>
size = 1
item []:
    item [1]:
        class = "IntervalTier"
        name = "empty"
        xmin = 0
        xmax = 0
        intervals: size = 0
`
	if _, err := Parse([]byte(in)); err != nil {
		t.Fatalf("empty tier should pass: %v", err)
	}
}

// Checks run in order: a tier count mismatch wins over a later bound
// violation.
func TestCheckOrder(t *testing.T) {
	in := `xmin = 1
xmax = 2
tiers? <exists>
size = 2
item []:
    item [1]:
        class = "TextTier"
        name = "bell"
        xmin = 1
        xmax = 2
        points: size = 1
        points [1]:
            number = 0.5
            mark = "early"
`
	_, err := Parse([]byte(in))
	if err == nil {
		t.Fatal("expected error")
	}
	ce := &ConsistencyError{}
	if !errors.As(err, &ce) {
		t.Fatalf("got %T, want *ConsistencyError", err)
	}
	if !strings.Contains(ce.Msg, "Inconsistent number of tiers") {
		t.Errorf("got %q, want the tier count violation first", ce.Msg)
	}
}
