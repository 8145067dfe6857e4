package driven

import (
	"context"

	"github.com/docsift/docsift/internal/core/domain"
)

// Normaliser transforms raw documents into ingested form.
// Each normaliser handles specific MIME types (e.g., HTML).
type Normaliser interface {
	// SupportedMIMETypes returns the MIME types this normaliser handles.
	SupportedMIMETypes() []string

	// Priority returns the selection priority (higher = preferred).
	// Generic MIME normalisers should return 50-89.
	// Fallback normalisers should return 1-9.
	Priority() int

	// Normalise transforms a raw document into a document.
	Normalise(ctx context.Context, raw *domain.RawDocument) (*NormaliseResult, error)
}

// NormaliseResult contains the output of normalisation.
type NormaliseResult struct {
	// Document is the normalised document with Content populated.
	Document domain.Document

	// XHTML is the filtered markup rendition of the document body,
	// restricted to the safe output vocabulary.
	XHTML string
}
