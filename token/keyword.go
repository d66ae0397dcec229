package token

// keywords maps identifier spellings with structural meaning in the
// full dialect to their token kinds. Everything else stays a TIdent and
// is interpreted by grammar position.
var keywords = map[string]TokenType{
	"size":      TSize,
	"intervals": TIntervals,
	"points":    TPoints,
	"class":     TClass,
	"item":      TItem,
	"tiers?":    TTiers,
}

// tierTags maps quoted tier class spellings to the tag token kinds the
// minimal dialect dispatches on. The full dialect sees them as plain
// strings.
var tierTags = map[string]TokenType{
	"IntervalTier": TIntervalTier,
	"TextTier":     TTextTier,
}

func asciiLetter(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}
