package html

import "github.com/docsift/docsift/internal/core/ports/driven"

// safeElements maps upper-case input element names one-to-one to the
// canonical lower-case output vocabulary. Based on the structural and
// semantic subset of XHTML 1.0 Strict. MENU is a legacy tag that
// normalises to an unordered list.
var safeElements = map[string]string{
	"H1": "h1",
	"H2": "h2",
	"H3": "h3",
	"H4": "h4",
	"H5": "h5",
	"H6": "h6",

	"P":          "p",
	"PRE":        "pre",
	"BLOCKQUOTE": "blockquote",

	"UL":   "ul",
	"OL":   "ol",
	"MENU": "ul",
	"LI":   "li",
	"DL":   "dl",
	"DT":   "dt",
	"DD":   "dd",

	"TABLE": "table",
	"THEAD": "thead",
	"TBODY": "tbody",
	"TR":    "tr",
	"TH":    "th",
	"TD":    "td",

	"ADDRESS": "address",
}

// discardElements flags elements whose entire subtree is omitted from
// output, not merely the tag.
var discardElements = map[string]bool{
	"STYLE":  true,
	"SCRIPT": true,
}

// Ensure Mapper implements the interface.
var _ driven.ElementMapper = (*Mapper)(nil)

// Mapper is the default safe-element policy. It is pure and stateless;
// one instance may be shared across concurrent ingestions. Callers
// needing a different policy supply their own driven.ElementMapper via
// NewWithMapper.
type Mapper struct{}

// NewMapper creates the default element mapper.
func NewMapper() *Mapper {
	return &Mapper{}
}

// MapSafeElement returns the canonical output name for the given
// upper-case element name, or "" if the element is not in the
// allow-list.
func (Mapper) MapSafeElement(name string) string {
	return safeElements[name]
}

// IsDiscardElement reports whether the named element's entire subtree
// must be omitted from output.
func (Mapper) IsDiscardElement(name string) bool {
	return discardElements[name]
}
