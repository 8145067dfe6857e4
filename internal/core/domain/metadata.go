package domain

import "sort"

// Well-known metadata property names recorded during ingestion.
const (
	// MetaContentType is the declared content type of the input,
	// possibly carrying a charset parameter.
	MetaContentType = "content-type"

	// MetaContentEncoding is the resolved character encoding name.
	MetaContentEncoding = "content-encoding"

	// MetaContentLanguage is the natural language implied by a
	// language-specific encoding (KOI8-R, Shift_JIS, etc).
	MetaContentLanguage = "content-language"

	// MetaLanguage is the natural language of the document content.
	MetaLanguage = "language"
)

// Metadata is the caller-visible sink for per-document properties.
// Values are single-valued: setting an existing name replaces it,
// never appends. The zero value is not usable; use NewMetadata.
type Metadata struct {
	props map[string]string
}

// NewMetadata creates an empty metadata sink.
func NewMetadata() *Metadata {
	return &Metadata{props: make(map[string]string)}
}

// Get returns the value recorded under name, or "" if absent.
func (m *Metadata) Get(name string) string {
	return m.props[name]
}

// Set records value under name, replacing any previous value.
func (m *Metadata) Set(name, value string) {
	m.props[name] = value
}

// Names returns all recorded property names in sorted order.
func (m *Metadata) Names() []string {
	names := make([]string, 0, len(m.props))
	for name := range m.props {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Map returns a copy of all recorded properties.
func (m *Metadata) Map() map[string]string {
	out := make(map[string]string, len(m.props))
	for name, value := range m.props {
		out[name] = value
	}
	return out
}
