package domain

// RawDocument represents opaque bytes before normalisation.
// It is the ingestion pipeline's input.
type RawDocument struct {
	// SourceID links to the source that produced this document.
	SourceID string

	// URI is the original location (file path, URL, etc).
	URI string

	// MIMEType is the declared content type. It may carry a charset
	// parameter (e.g., "text/html; charset=ISO-8859-1") which is used
	// as a hint during encoding resolution.
	MIMEType string

	// Content is the raw bytes.
	Content []byte

	// Metadata contains source-specific key-value pairs. A string value
	// under MetaContentEncoding is treated as a previously recorded
	// encoding hint.
	Metadata map[string]any
}
