package encode

import (
	"bytes"
	"fmt"

	"github.com/phonolab/go-textgrid/tier"
)

// MustString renders the plain table form of tiers, for error messages
// and diffing.
func MustString(tiers []*tier.Tier) string {
	buf := bytes.NewBuffer(nil)
	if err := Table(buf, tiers); err != nil {
		return fmt.Sprintf("[raw tiers] %v", tiers)
	}
	return buf.String()
}
