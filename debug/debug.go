package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Lex   bool
	Parse bool
	Check bool
}

var d *debug

func init() {
	d = &debug{}
	d.Lex = boolEnv("TG_DEBUG_LEX")
	d.Parse = boolEnv("TG_DEBUG_PARSE")
	d.Check = boolEnv("TG_DEBUG_CHECK")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Lex() bool {
	return d.Lex
}
func Parse() bool {
	return d.Parse
}
func Check() bool {
	return d.Check
}
