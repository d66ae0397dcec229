package parse

import (
	"github.com/phonolab/go-textgrid/debug"
	"github.com/phonolab/go-textgrid/tier"
)

// checkConsistency validates declared metadata against the tiers
// actually built. Checks run in a fixed order and fail fast on the
// first violation; nothing is aggregated and no partial result leaks
// out. Empty tiers have undefined bounds and skip the bound checks.
func checkConsistency(doc *docHeader, heads []*tierHeader, tiers []*tier.Tier) error {
	if doc.Size != len(tiers) {
		return tierCountErr(doc.Size, len(tiers))
	}
	for _, t := range tiers {
		xmin, xmax, ok := t.Bounds()
		if !ok {
			continue
		}
		if xmin < doc.XMin {
			return boundErr(t.Name, "xmin", "document", doc.XMin, xmin)
		}
		if xmax > doc.XMax {
			return boundErr(t.Name, "xmax", "document", doc.XMax, xmax)
		}
	}
	for i, t := range tiers {
		if heads[i].Size != t.Len() {
			return itemCountErr(t.Name, heads[i].Size, t.Len())
		}
	}
	for i, t := range tiers {
		xmin, xmax, ok := t.Bounds()
		if !ok {
			continue
		}
		if xmin < heads[i].XMin {
			return boundErr(t.Name, "xmin", "tier header", heads[i].XMin, xmin)
		}
		if xmax > heads[i].XMax {
			return boundErr(t.Name, "xmax", "tier header", heads[i].XMax, xmax)
		}
	}
	if debug.Check() {
		debug.Logf("consistency ok: %d tiers within [%v, %v]\n", len(tiers), doc.XMin, doc.XMax)
	}
	return nil
}
