// Package memory provides in-memory store implementations, primarily
// for tests and for ingestion runs that do not persist anything.
package memory

import (
	"context"
	"sync"

	"github.com/docsift/docsift/internal/core/domain"
	"github.com/docsift/docsift/internal/core/ports/driven"
)

// Ensure DocumentStore implements the interface.
var _ driven.DocumentStore = (*DocumentStore)(nil)

// DocumentStore is an in-memory implementation of driven.DocumentStore.
type DocumentStore struct {
	mu        sync.RWMutex
	documents map[string]domain.Document
}

// NewDocumentStore creates a new in-memory document store.
func NewDocumentStore() *DocumentStore {
	return &DocumentStore{
		documents: make(map[string]domain.Document),
	}
}

// SaveDocument stores or updates a document.
func (s *DocumentStore) SaveDocument(_ context.Context, doc *domain.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.documents[doc.ID] = *doc
	return nil
}

// GetDocument retrieves a document by ID.
func (s *DocumentStore) GetDocument(_ context.Context, id string) (*domain.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.documents[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &doc, nil
}

// ListDocuments returns documents for a source.
func (s *DocumentStore) ListDocuments(_ context.Context, sourceID string) ([]domain.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var docs []domain.Document
	for _, doc := range s.documents {
		if doc.SourceID == sourceID {
			docs = append(docs, doc)
		}
	}
	return docs, nil
}

// DeleteDocument removes a document.
func (s *DocumentStore) DeleteDocument(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.documents, id)
	return nil
}
