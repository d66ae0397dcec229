package tier

import (
	"errors"
	"fmt"
)

type Type int

const (
	IntervalType Type = iota
	TextType
)

var ErrBadType = errors.New("bad tier type")

// ParseType resolves the class spelling used in TextGrid files.
func ParseType(v string) (Type, error) {
	t, ok := map[string]Type{
		"IntervalTier": IntervalType,
		"TextTier":     TextType,
	}[v]
	if ok {
		return t, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadType, v)
}

func (t Type) String() string {
	switch t {
	case IntervalType:
		return "IntervalTier"
	case TextType:
		return "TextTier"
	default:
		return fmt.Sprintf("<err: %d is not a tier type>", int(t))
	}
}

func Types() []Type {
	return []Type{IntervalType, TextType}
}

// Interval is a labeled time span. Start and End are float64 even when
// the source literal was integral.
type Interval struct {
	Start float64 `json:"start" yaml:"start"`
	End   float64 `json:"end" yaml:"end"`
	Text  string  `json:"text" yaml:"text"`
}

// Point is a labeled instant.
type Point struct {
	Number float64 `json:"number" yaml:"number"`
	Mark   string  `json:"mark" yaml:"mark"`
}

// Tier is one annotation track. Type discriminates which of Intervals
// and Points is populated; the other stays nil. Item order is file
// declaration order, which the format does not require to be time
// order. Tiers are not mutated after parsing.
type Tier struct {
	Type Type   `json:"-" yaml:"-"`
	Name string `json:"name" yaml:"name"`

	Intervals []Interval `json:"intervals,omitempty" yaml:"intervals,omitempty"`
	Points    []Point    `json:"points,omitempty" yaml:"points,omitempty"`
}

// Len returns the item count of either variant.
func (t *Tier) Len() int {
	if t.Type == IntervalType {
		return len(t.Intervals)
	}
	return len(t.Points)
}

// Bounds returns the derived time bounds of the tier: min start and max
// end over intervals, or min and max timestamp over points. ok is false
// for an empty tier, whose bounds are undefined.
func (t *Tier) Bounds() (xmin, xmax float64, ok bool) {
	switch t.Type {
	case IntervalType:
		if len(t.Intervals) == 0 {
			return 0, 0, false
		}
		xmin, xmax = t.Intervals[0].Start, t.Intervals[0].End
		for _, iv := range t.Intervals[1:] {
			xmin = min(xmin, iv.Start)
			xmax = max(xmax, iv.End)
		}
		return xmin, xmax, true
	case TextType:
		if len(t.Points) == 0 {
			return 0, 0, false
		}
		xmin, xmax = t.Points[0].Number, t.Points[0].Number
		for _, p := range t.Points[1:] {
			xmin = min(xmin, p.Number)
			xmax = max(xmax, p.Number)
		}
		return xmin, xmax, true
	default:
		return 0, 0, false
	}
}
