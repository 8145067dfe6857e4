// Package sqlite provides SQLite-backed persistence for ingested
// documents.
package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/docsift/docsift/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/docsift/docsift/internal/core/domain"
	"github.com/docsift/docsift/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.DocumentStore = (*Store)(nil)

// Store is a SQLite-based document store.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a new SQLite store at the specified data directory.
// If dataDir is empty, defaults to ~/.docsift/data/documents.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".docsift", "data")
	}

	// Ensure directory exists
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "documents.db")

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

	// Run migrations
	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// SaveDocument stores or updates a document.
func (s *Store) SaveDocument(ctx context.Context, doc *domain.Document) error {
	metadataJSON, err := json.Marshal(doc.Metadata)
	if err != nil {
		return fmt.Errorf("marshalling metadata: %w", err)
	}

	now := time.Now().UTC()
	createdAt := doc.CreatedAt
	if createdAt.IsZero() {
		createdAt = now
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO documents (id, source_id, uri, title, content, metadata, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			source_id = excluded.source_id,
			uri = excluded.uri,
			title = excluded.title,
			content = excluded.content,
			metadata = excluded.metadata,
			updated_at = excluded.updated_at
	`, doc.ID, doc.SourceID, doc.URI, doc.Title, doc.Content,
		string(metadataJSON), createdAt, now)

	if err != nil {
		return fmt.Errorf("saving document: %w", err)
	}
	return nil
}

// GetDocument retrieves a document by ID.
func (s *Store) GetDocument(ctx context.Context, id string) (*domain.Document, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, source_id, uri, title, content, metadata, created_at, updated_at
		FROM documents WHERE id = ?
	`, id)

	doc, err := scanDocument(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("getting document: %w", err)
	}
	return doc, nil
}

// ListDocuments returns documents for a source.
func (s *Store) ListDocuments(ctx context.Context, sourceID string) ([]domain.Document, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, source_id, uri, title, content, metadata, created_at, updated_at
		FROM documents WHERE source_id = ? ORDER BY uri
	`, sourceID)
	if err != nil {
		return nil, fmt.Errorf("listing documents: %w", err)
	}
	defer rows.Close()

	var docs []domain.Document
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning document: %w", err)
		}
		docs = append(docs, *doc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating documents: %w", err)
	}
	return docs, nil
}

// DeleteDocument removes a document.
func (s *Store) DeleteDocument(ctx context.Context, id string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM documents WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting document: %w", err)
	}
	return nil
}

// scanner abstracts over sql.Row and sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanDocument(row scanner) (*domain.Document, error) {
	var doc domain.Document
	var metadataJSON string
	if err := row.Scan(&doc.ID, &doc.SourceID, &doc.URI, &doc.Title,
		&doc.Content, &metadataJSON, &doc.CreatedAt, &doc.UpdatedAt); err != nil {
		return nil, err
	}
	if metadataJSON != "" && metadataJSON != "null" {
		if err := json.Unmarshal([]byte(metadataJSON), &doc.Metadata); err != nil {
			return nil, fmt.Errorf("unmarshalling metadata: %w", err)
		}
	}
	return &doc, nil
}

// migrate runs all pending migrations.
func (s *Store) migrate(fsys embed.FS) error {
	// Ensure schema_migrations table exists
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	// Get current version
	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	// Find all up migrations
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// Extract version number (e.g., "001_initial.up.sql" -> 1)
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue // Skip files that don't match pattern
		}

		if version <= currentVersion {
			continue // Already applied
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}

		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}

		if _, err := s.db.Exec(
			"INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
	}

	return nil
}
