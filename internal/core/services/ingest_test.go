package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docsift/docsift/internal/core/domain"
	"github.com/docsift/docsift/internal/core/ports/driven"
)

type stubNormaliser struct {
	types    []string
	priority int
	result   *driven.NormaliseResult
	err      error
	calls    int
}

func (n *stubNormaliser) SupportedMIMETypes() []string { return n.types }
func (n *stubNormaliser) Priority() int                { return n.priority }

func (n *stubNormaliser) Normalise(_ context.Context, raw *domain.RawDocument) (*driven.NormaliseResult, error) {
	n.calls++
	if n.err != nil {
		return nil, n.err
	}
	if n.result != nil {
		return n.result, nil
	}
	return &driven.NormaliseResult{
		Document: domain.Document{ID: "doc-1", URI: raw.URI},
	}, nil
}

type stubStore struct {
	saved []*domain.Document
	err   error
}

func (s *stubStore) SaveDocument(_ context.Context, doc *domain.Document) error {
	if s.err != nil {
		return s.err
	}
	s.saved = append(s.saved, doc)
	return nil
}

func (s *stubStore) GetDocument(context.Context, string) (*domain.Document, error) {
	return nil, domain.ErrNotFound
}

func (s *stubStore) ListDocuments(context.Context, string) ([]domain.Document, error) {
	return nil, nil
}

func (s *stubStore) DeleteDocument(context.Context, string) error { return nil }

func TestIngest(t *testing.T) {
	normaliser := &stubNormaliser{types: []string{"text/html"}, priority: 50}
	store := &stubStore{}
	service := NewIngestService([]driven.Normaliser{normaliser}, store)

	result, err := service.Ingest(context.Background(), &domain.RawDocument{
		URI:      "/docs/a.html",
		MIMEType: "text/html",
	})
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.Equal(t, 1, normaliser.calls)
	require.Len(t, store.saved, 1)
	assert.Equal(t, "doc-1", store.saved[0].ID)
}

func TestIngest_NilDocument(t *testing.T) {
	service := NewIngestService(nil, nil)

	_, err := service.Ingest(context.Background(), nil)
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestIngest_UnsupportedType(t *testing.T) {
	normaliser := &stubNormaliser{types: []string{"text/html"}, priority: 50}
	service := NewIngestService([]driven.Normaliser{normaliser}, nil)

	_, err := service.Ingest(context.Background(), &domain.RawDocument{
		URI:      "/docs/a.bin",
		MIMEType: "application/octet-stream",
	})
	require.ErrorIs(t, err, domain.ErrUnsupportedType)
	assert.Equal(t, 0, normaliser.calls)
}

func TestIngest_NoStoreConfigured(t *testing.T) {
	normaliser := &stubNormaliser{types: []string{"text/html"}, priority: 50}
	service := NewIngestService([]driven.Normaliser{normaliser}, nil)

	result, err := service.Ingest(context.Background(), &domain.RawDocument{
		URI:      "/docs/a.html",
		MIMEType: "text/html",
	})
	require.NoError(t, err)
	assert.Equal(t, "doc-1", result.Document.ID)
}

func TestIngest_HighestPriorityWins(t *testing.T) {
	fallback := &stubNormaliser{types: []string{"text/html", "text/plain"}, priority: 5}
	specific := &stubNormaliser{types: []string{"text/html"}, priority: 50}
	service := NewIngestService([]driven.Normaliser{fallback, specific}, nil)

	_, err := service.Ingest(context.Background(), &domain.RawDocument{
		URI:      "/docs/a.html",
		MIMEType: "text/html",
	})
	require.NoError(t, err)

	assert.Equal(t, 1, specific.calls)
	assert.Equal(t, 0, fallback.calls)
}

func TestIngest_ContentTypeParametersIgnored(t *testing.T) {
	normaliser := &stubNormaliser{types: []string{"text/html"}, priority: 50}
	service := NewIngestService([]driven.Normaliser{normaliser}, nil)

	_, err := service.Ingest(context.Background(), &domain.RawDocument{
		URI:      "/docs/a.html",
		MIMEType: "Text/HTML; charset=ISO-8859-1",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, normaliser.calls)
}

func TestIngest_NormaliserErrorWrapped(t *testing.T) {
	boom := errors.New("boom")
	normaliser := &stubNormaliser{types: []string{"text/html"}, priority: 50, err: boom}
	service := NewIngestService([]driven.Normaliser{normaliser}, &stubStore{})

	_, err := service.Ingest(context.Background(), &domain.RawDocument{
		URI:      "/docs/a.html",
		MIMEType: "text/html",
	})
	require.ErrorIs(t, err, boom)
}

func TestIngest_StoreErrorWrapped(t *testing.T) {
	boom := errors.New("disk full")
	normaliser := &stubNormaliser{types: []string{"text/html"}, priority: 50}
	service := NewIngestService([]driven.Normaliser{normaliser}, &stubStore{err: boom})

	_, err := service.Ingest(context.Background(), &domain.RawDocument{
		URI:      "/docs/a.html",
		MIMEType: "text/html",
	})
	require.ErrorIs(t, err, boom)
}
