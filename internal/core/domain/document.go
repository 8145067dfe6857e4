package domain

import "time"

// Document represents an ingested document with metadata.
// It is the canonical representation after normalisation.
type Document struct {
	// ID is the unique identifier for the document.
	ID string

	// SourceID links to the source that produced this document.
	SourceID string

	// URI is the original location (file path, URL, etc).
	URI string

	// Title is the human-readable title.
	Title string

	// Content is the full text content after normalisation.
	Content string

	// Metadata contains arbitrary key-value pairs, including the
	// encoding decisions recorded during ingestion.
	Metadata map[string]any

	// CreatedAt is when the document was first ingested.
	CreatedAt time.Time

	// UpdatedAt is when the document was last updated.
	UpdatedAt time.Time
}
