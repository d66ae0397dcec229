// Package format names the two textual encodings of a TextGrid document.
//
// # Usage
//
//	d, err := format.ParseDialect("full")
//	if err != nil {
//	    return err
//	}
//
// # Related Packages
//
//   - github.com/phonolab/go-textgrid/parse - Parse text to tiers
//   - github.com/phonolab/go-textgrid/token - Tokenization
package format
