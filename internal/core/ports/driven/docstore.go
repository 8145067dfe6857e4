package driven

import (
	"context"

	"github.com/docsift/docsift/internal/core/domain"
)

// DocumentStore persists ingested documents.
type DocumentStore interface {
	// SaveDocument stores or updates a document.
	SaveDocument(ctx context.Context, doc *domain.Document) error

	// GetDocument retrieves a document by ID.
	GetDocument(ctx context.Context, id string) (*domain.Document, error)

	// ListDocuments returns documents for a source.
	ListDocuments(ctx context.Context, sourceID string) ([]domain.Document, error)

	// DeleteDocument removes a document.
	DeleteDocument(ctx context.Context, id string) error
}
