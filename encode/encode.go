package encode

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/goccy/go-yaml"

	"github.com/phonolab/go-textgrid/tier"
)

// tierView flattens the tagged union for dump encodings, where the
// class must appear as data.
type tierView struct {
	Class     string          `json:"class" yaml:"class"`
	Name      string          `json:"name" yaml:"name"`
	Intervals []tier.Interval `json:"intervals,omitempty" yaml:"intervals,omitempty"`
	Points    []tier.Point    `json:"points,omitempty" yaml:"points,omitempty"`
}

func views(tiers []*tier.Tier) []tierView {
	res := make([]tierView, len(tiers))
	for i, t := range tiers {
		res[i] = tierView{
			Class:     t.Type.String(),
			Name:      t.Name,
			Intervals: t.Intervals,
			Points:    t.Points,
		}
	}
	return res
}

func JSON(w io.Writer, tiers []*tier.Tier) error {
	d, err := json.MarshalIndent(views(tiers), "", "  ")
	if err != nil {
		return err
	}
	d = append(d, '\n')
	_, err = w.Write(d)
	return err
}

func YAML(w io.Writer, tiers []*tier.Tier) error {
	d, err := yaml.Marshal(views(tiers))
	if err != nil {
		return err
	}
	_, err = w.Write(d)
	return err
}

// Table writes a human readable listing, one tier block per tier with
// its items indented below.
func Table(w io.Writer, tiers []*tier.Tier, opts ...EncodeOption) error {
	o := &encOpts{}
	for _, f := range opts {
		f(o)
	}
	colors := o.colors
	if colors == nil {
		colors = noColors()
	}
	for i, t := range tiers {
		var span string
		if xmin, xmax, ok := t.Bounds(); ok {
			span = colors.Num("%v .. %v", xmin, xmax)
		} else {
			span = "empty"
		}
		_, err := fmt.Fprintf(w, "%d %s %s (%s, %d items)\n",
			i+1,
			colors.Class("%s", t.Type),
			colors.Name("%q", t.Name),
			span,
			t.Len())
		if err != nil {
			return err
		}
		switch t.Type {
		case tier.IntervalType:
			for _, iv := range t.Intervals {
				_, err := fmt.Fprintf(w, "    %s %s %s\n",
					colors.Num("%-10v", iv.Start),
					colors.Num("%-10v", iv.End),
					colors.Label("%q", iv.Text))
				if err != nil {
					return err
				}
			}
		case tier.TextType:
			for _, p := range t.Points {
				_, err := fmt.Fprintf(w, "    %s %s\n",
					colors.Num("%-10v", p.Number),
					colors.Label("%q", p.Mark))
				if err != nil {
					return err
				}
			}
		}
	}
	return nil
}
