package charset

import (
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
)

// charsetAliases maps detector spellings that the WHATWG encoding index
// does not list to labels it does.
var charsetAliases = map[string]string{
	"gb-18030": "gb18030",
}

// Lookup returns the encoding named by label and whether the runtime
// supports it. Matching is case-insensitive and ignores surrounding
// whitespace; the label itself is not canonicalised.
func Lookup(label string) (encoding.Encoding, bool) {
	name := strings.ToLower(strings.TrimSpace(label))
	if alias, ok := charsetAliases[name]; ok {
		name = alias
	}
	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, false
	}
	return enc, true
}

// IsSupported reports whether label names an encoding the runtime can
// decode.
func IsSupported(label string) bool {
	_, ok := Lookup(label)
	return ok
}
