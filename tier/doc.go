// Package tier holds the parsed representation of a TextGrid document:
// an ordered list of tiers, each an interval tier or a point (text)
// tier.
//
// # Usage
//
//	tiers, err := parse.Parse(data)
//	for _, t := range tiers {
//	    xmin, xmax, ok := t.Bounds()
//	    ...
//	}
//
// # Related Packages
//
//   - github.com/phonolab/go-textgrid/parse - Parse text to tiers
//   - github.com/phonolab/go-textgrid/encode - Render tiers as JSON/YAML/table
package tier
