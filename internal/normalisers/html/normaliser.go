package html

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	xcharset "golang.org/x/net/html/charset"

	"github.com/docsift/docsift/internal/adapters/driven/detection/chardet"
	"github.com/docsift/docsift/internal/charset"
	"github.com/docsift/docsift/internal/core/domain"
	"github.com/docsift/docsift/internal/core/ports/driven"
	"github.com/docsift/docsift/internal/logger"
)

// Ensure Normaliser implements the interface.
var _ driven.Normaliser = (*Normaliser)(nil)

// Normaliser handles HTML documents. It sequences encoding resolution,
// tokenisation, and safe-element filtering.
type Normaliser struct {
	resolver *charset.Resolver
	mapper   driven.ElementMapper
}

// New creates an HTML normaliser with the default safe-element policy.
func New() *Normaliser {
	return NewWithMapper(NewMapper())
}

// NewWithMapper creates an HTML normaliser using a caller-supplied
// element classification policy in place of the default table.
func NewWithMapper(mapper driven.ElementMapper) *Normaliser {
	return &Normaliser{
		resolver: charset.NewResolver(chardet.New()),
		mapper:   mapper,
	}
}

// Resolver returns the normaliser's encoding resolver, allowing the
// caller to adjust the fallback encoding before ingestion.
func (n *Normaliser) Resolver() *charset.Resolver {
	return n.resolver
}

// SupportedMIMETypes returns the MIME types this normaliser handles.
func (n *Normaliser) SupportedMIMETypes() []string {
	return []string{"text/html", "application/xhtml+xml"}
}

// Priority returns the selection priority.
func (n *Normaliser) Priority() int {
	return 50 // Generic MIME normaliser
}

// Normalise converts an HTML document to a normalised document.
// The Content field contains the filtered plain text; the result's
// XHTML field carries the safe-vocabulary markup rendition. Encoding
// decisions are recorded in the document metadata.
func (n *Normaliser) Normalise(_ context.Context, raw *domain.RawDocument) (*driven.NormaliseResult, error) {
	if raw == nil {
		return nil, domain.ErrInvalidInput
	}

	meta := domain.NewMetadata()
	if raw.MIMEType != "" {
		meta.Set(domain.MetaContentType, raw.MIMEType)
	}
	if hint, ok := raw.Metadata[domain.MetaContentEncoding].(string); ok && hint != "" {
		meta.Set(domain.MetaContentEncoding, hint)
	}

	// Resolution peeks; subsequent reads start from the same position.
	br := bufio.NewReaderSize(bytes.NewReader(raw.Content), charset.DetectBufferSize)
	enc, err := n.resolver.Resolve(br, meta)
	if err != nil {
		return nil, fmt.Errorf("resolving encoding: %w", err)
	}

	reader, err := xcharset.NewReaderLabel(enc.Name, br)
	if err != nil {
		// The resolved name passed the support check, so this is not
		// expected; ingest the raw bytes rather than fail.
		logger.Warn("no decoder for resolved encoding %q: %v", enc.Name, err)
		reader = br
	}

	rw := newRewriter(n.mapper)
	if err := rw.run(reader); err != nil {
		return nil, fmt.Errorf("tokenising document: %w", err)
	}

	doc := domain.Document{
		ID:        uuid.New().String(),
		SourceID:  raw.SourceID,
		URI:       raw.URI,
		Title:     documentTitle(rw.title.String(), raw.URI),
		Content:   cleanupText(rw.text.String()),
		Metadata:  copyMetadata(raw.Metadata),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if doc.Metadata == nil {
		doc.Metadata = make(map[string]any)
	}
	doc.Metadata["mime_type"] = raw.MIMEType
	doc.Metadata["format"] = "html"
	for name, value := range meta.Map() {
		doc.Metadata[name] = value
	}

	return &driven.NormaliseResult{
		Document: doc,
		XHTML:    rw.markup.String(),
	}, nil
}

// documentTitle prefers the TITLE element text and falls back to a
// name derived from the document location.
func documentTitle(title, uri string) string {
	title = strings.TrimSpace(title)
	if title != "" {
		return title
	}

	filename := filepath.Base(uri)
	if ext := filepath.Ext(filename); ext != "" {
		filename = strings.TrimSuffix(filename, ext)
	}
	filename = strings.ReplaceAll(filename, "_", " ")
	filename = strings.ReplaceAll(filename, "-", " ")
	return filename
}

// cleanupText trims each line and drops empty ones, collapsing the
// newlines inserted around block elements.
func cleanupText(content string) string {
	lines := strings.Split(content, "\n")
	var result []string
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			result = append(result, line)
		}
	}
	return strings.Join(result, "\n")
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
