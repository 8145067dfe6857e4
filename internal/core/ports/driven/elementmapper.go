package driven

// ElementMapper classifies HTML element names for safe output.
// Both methods are called for every element, independently: an element
// may be unmapped yet still discarded, and vice versa.
//
// Implementations must be pure and stateless; a single mapper may be
// shared across concurrent ingestions.
type ElementMapper interface {
	// MapSafeElement returns the canonical lower-case output name for
	// the given upper-case HTML element name, or "" if the element is
	// unknown or unsafe. An unmapped element is dropped from output but
	// its children are still processed.
	MapSafeElement(name string) string

	// IsDiscardElement reports whether the named element and its entire
	// subtree (all descendant elements and text) must be omitted from
	// output.
	IsDiscardElement(name string) bool
}
