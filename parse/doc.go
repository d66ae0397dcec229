// Package parse parses TextGrid text into tiers.
//
// # Usage
//
//	// Parse full-dialect text
//	tiers, err := parse.Parse(data)
//	if err != nil {
//	    return err
//	}
//
//	// Parse the minimal dialect, without consistency checking
//	tiers, err := parse.Parse(data, parse.ParseMinimal(), parse.CheckConsistency(false))
//
// The dialect must be selected by the caller; the two encodings are
// not auto-detected.
//
// # Related Packages
//
//   - github.com/phonolab/go-textgrid/tier - Parsed representation
//   - github.com/phonolab/go-textgrid/token - Tokenization
package parse
