// Package encode renders parsed tiers as JSON, YAML or a human
// readable table. It is an output path for callers and the CLI only;
// there is no TextGrid writer.
//
// # Usage
//
//	tiers, _ := parse.Parse(data)
//	err := encode.JSON(os.Stdout, tiers)
//
// # Related Packages
//
//   - github.com/phonolab/go-textgrid/tier - Parsed representation
//   - github.com/phonolab/go-textgrid/parse - Parse text to tiers
package encode
