// Package plaintext provides a fallback Normaliser for plain text
// documents: the raw bytes are taken as content unchanged.
package plaintext

import (
	"context"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/docsift/docsift/internal/core/domain"
	"github.com/docsift/docsift/internal/core/ports/driven"
)

// Ensure Normaliser implements the interface.
var _ driven.Normaliser = (*Normaliser)(nil)

// Normaliser handles plain text documents.
type Normaliser struct{}

// New creates a new plain text normaliser.
func New() *Normaliser {
	return &Normaliser{}
}

// SupportedMIMETypes returns the MIME types this normaliser handles.
func (n *Normaliser) SupportedMIMETypes() []string {
	return []string{
		"text/plain",
		"text/csv",
		"text/markdown",
		"text/html",
	}
}

// Priority returns the selection priority.
func (n *Normaliser) Priority() int {
	return 5 // Fallback normaliser
}

// Normalise converts a raw document to a normalised document.
// The Content field contains the raw bytes as text.
func (n *Normaliser) Normalise(_ context.Context, raw *domain.RawDocument) (*driven.NormaliseResult, error) {
	if raw == nil {
		return nil, domain.ErrInvalidInput
	}

	doc := domain.Document{
		ID:        uuid.New().String(),
		SourceID:  raw.SourceID,
		URI:       raw.URI,
		Title:     extractTitle(raw.URI),
		Content:   string(raw.Content),
		Metadata:  copyMetadata(raw.Metadata),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if doc.Metadata == nil {
		doc.Metadata = make(map[string]any)
	}
	doc.Metadata["mime_type"] = raw.MIMEType

	return &driven.NormaliseResult{
		Document: doc,
	}, nil
}

// extractTitle extracts a human-readable title from a URI.
func extractTitle(uri string) string {
	filename := filepath.Base(uri)
	if ext := filepath.Ext(filename); ext != "" {
		filename = strings.TrimSuffix(filename, ext)
	}
	filename = strings.ReplaceAll(filename, "_", " ")
	filename = strings.ReplaceAll(filename, "-", " ")
	return filename
}

// copyMetadata creates a shallow copy of metadata.
func copyMetadata(src map[string]any) map[string]any {
	if src == nil {
		return nil
	}
	dst := make(map[string]any, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}
