package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docsift/docsift/internal/core/domain"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func testDocument(id string) *domain.Document {
	return &domain.Document{
		ID:       id,
		SourceID: "local",
		URI:      "/docs/" + id + ".html",
		Title:    "Document " + id,
		Content:  "some content",
		Metadata: map[string]any{
			"content-encoding": "UTF-8",
			"format":           "html",
		},
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}
}

func TestNewStore(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStore(dir)
	require.NoError(t, err)
	defer store.Close()

	assert.Equal(t, filepath.Join(dir, "documents.db"), store.Path())
}

func TestNewStore_Reopen(t *testing.T) {
	dir := t.TempDir()

	store, err := NewStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.SaveDocument(context.Background(), testDocument("doc-1")))
	require.NoError(t, store.Close())

	// Reopening runs migrations again; already-applied versions are
	// skipped and data survives.
	store, err = NewStore(dir)
	require.NoError(t, err)
	defer store.Close()

	got, err := store.GetDocument(context.Background(), "doc-1")
	require.NoError(t, err)
	assert.Equal(t, "Document doc-1", got.Title)
}

func TestSaveAndGetDocument(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	doc := testDocument("doc-1")
	require.NoError(t, store.SaveDocument(ctx, doc))

	got, err := store.GetDocument(ctx, "doc-1")
	require.NoError(t, err)
	assert.Equal(t, doc.SourceID, got.SourceID)
	assert.Equal(t, doc.URI, got.URI)
	assert.Equal(t, doc.Title, got.Title)
	assert.Equal(t, doc.Content, got.Content)
	assert.Equal(t, "UTF-8", got.Metadata["content-encoding"])
	assert.Equal(t, "html", got.Metadata["format"])
}

func TestSaveDocument_Upsert(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	doc := testDocument("doc-1")
	require.NoError(t, store.SaveDocument(ctx, doc))

	doc.Title = "Renamed"
	doc.Metadata["content-encoding"] = "ISO-8859-1"
	require.NoError(t, store.SaveDocument(ctx, doc))

	got, err := store.GetDocument(ctx, "doc-1")
	require.NoError(t, err)
	assert.Equal(t, "Renamed", got.Title)
	assert.Equal(t, "ISO-8859-1", got.Metadata["content-encoding"])

	docs, err := store.ListDocuments(ctx, "local")
	require.NoError(t, err)
	assert.Len(t, docs, 1)
}

func TestSaveDocument_NilMetadata(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	doc := testDocument("doc-1")
	doc.Metadata = nil
	require.NoError(t, store.SaveDocument(ctx, doc))

	got, err := store.GetDocument(ctx, "doc-1")
	require.NoError(t, err)
	assert.Nil(t, got.Metadata)
}

func TestGetDocument_NotFound(t *testing.T) {
	store := newTestStore(t)

	_, err := store.GetDocument(context.Background(), "missing")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListDocuments(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	b := testDocument("doc-b")
	a := testDocument("doc-a")
	other := testDocument("doc-c")
	other.SourceID = "crawler"

	require.NoError(t, store.SaveDocument(ctx, b))
	require.NoError(t, store.SaveDocument(ctx, a))
	require.NoError(t, store.SaveDocument(ctx, other))

	docs, err := store.ListDocuments(ctx, "local")
	require.NoError(t, err)
	require.Len(t, docs, 2)

	// Ordered by URI.
	assert.Equal(t, "doc-a", docs[0].ID)
	assert.Equal(t, "doc-b", docs[1].ID)
}

func TestListDocuments_Empty(t *testing.T) {
	store := newTestStore(t)

	docs, err := store.ListDocuments(context.Background(), "local")
	require.NoError(t, err)
	assert.Empty(t, docs)
}

func TestDeleteDocument(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SaveDocument(ctx, testDocument("doc-1")))
	require.NoError(t, store.DeleteDocument(ctx, "doc-1"))

	_, err := store.GetDocument(ctx, "doc-1")
	require.ErrorIs(t, err, domain.ErrNotFound)

	require.NoError(t, store.DeleteDocument(ctx, "doc-1"))
}
