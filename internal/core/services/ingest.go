package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/docsift/docsift/internal/core/domain"
	"github.com/docsift/docsift/internal/core/ports/driven"
	"github.com/docsift/docsift/internal/logger"
)

// IngestService turns raw documents into normalised documents and
// optionally persists them. Normalisers are selected by MIME type;
// when several match, the highest priority wins.
type IngestService struct {
	normalisers []driven.Normaliser
	store       driven.DocumentStore
}

// NewIngestService creates an ingest service. store may be nil, in
// which case ingested documents are not persisted.
func NewIngestService(normalisers []driven.Normaliser, store driven.DocumentStore) *IngestService {
	sorted := make([]driven.Normaliser, len(normalisers))
	copy(sorted, normalisers)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Priority() > sorted[j].Priority()
	})
	return &IngestService{
		normalisers: sorted,
		store:       store,
	}
}

// Ingest normalises raw and, when a store is configured, saves the
// resulting document.
func (s *IngestService) Ingest(ctx context.Context, raw *domain.RawDocument) (*driven.NormaliseResult, error) {
	if raw == nil {
		return nil, domain.ErrInvalidInput
	}

	normaliser := s.selectNormaliser(raw.MIMEType)
	if normaliser == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedType, raw.MIMEType)
	}

	result, err := normaliser.Normalise(ctx, raw)
	if err != nil {
		return nil, fmt.Errorf("normalising %s: %w", raw.URI, err)
	}

	if s.store != nil {
		if err := s.store.SaveDocument(ctx, &result.Document); err != nil {
			return nil, fmt.Errorf("saving %s: %w", raw.URI, err)
		}
		logger.Debug("stored document %s (%s)", result.Document.ID, raw.URI)
	}

	return result, nil
}

// selectNormaliser returns the highest-priority normaliser supporting
// the media type, ignoring any content-type parameters.
func (s *IngestService) selectNormaliser(mimeType string) driven.Normaliser {
	mediaType := strings.ToLower(strings.TrimSpace(mimeType))
	if i := strings.IndexByte(mediaType, ';'); i >= 0 {
		mediaType = strings.TrimSpace(mediaType[:i])
	}

	for _, n := range s.normalisers {
		for _, supported := range n.SupportedMIMETypes() {
			if supported == mediaType {
				return n
			}
		}
	}
	return nil
}
