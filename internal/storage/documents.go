// ABOUTME: Document store keyed by content hash with upsert and insert-only writes
// ABOUTME: Each Save is one transaction so no partial row is ever committed
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	json "github.com/goccy/go-json"

	"github.com/harper/blogbench/internal/models"
)

// WriteMode selects how Save treats an existing content hash
type WriteMode int

const (
	// WriteUpsert overwrites the stored row on hash collision
	WriteUpsert WriteMode = iota
	// WriteInsertOnly rejects a hash collision with ErrDuplicate
	WriteInsertOnly
)

func (m WriteMode) String() string {
	if m == WriteInsertOnly {
		return "insert-only"
	}
	return "upsert"
}

// SaveResult reports what a successful Save did
type SaveResult int

const (
	SaveInserted SaveResult = iota + 1
	SaveUpdated
)

func (r SaveResult) String() string {
	switch r {
	case SaveInserted:
		return "inserted"
	case SaveUpdated:
		return "updated"
	default:
		return "unknown"
	}
}

// DocumentStore persists human-authored documents
type DocumentStore struct {
	db *DB
}

// NewDocumentStore creates a document store on db
func NewDocumentStore(db *DB) *DocumentStore {
	return &DocumentStore{db: db}
}

// EnsureSchema creates the documents table if needed
func (s *DocumentStore) EnsureSchema(ctx context.Context) error {
	return s.db.EnsureSchema(ctx, TableDocuments)
}

// Save writes doc according to mode
func (s *DocumentStore) Save(ctx context.Context, doc *models.Document, mode WriteMode) (SaveResult, error) {
	if doc.ContentHash == "" || doc.FileName == "" {
		return 0, errors.New("document content hash and file name are required")
	}

	meta, err := json.Marshal(doc.Metadata)
	if err != nil {
		return 0, fmt.Errorf("encoding metadata for %s: %w", doc.FileName, err)
	}

	var result SaveResult
	err = s.db.WithTx(ctx, func(ctx context.Context, tx *sql.Tx) error {
		var storedHash string
		err := s.db.txQueryRow(ctx, tx,
			`SELECT content_hash FROM documents WHERE file_name = ?`,
			[]any{doc.FileName}, &storedHash)
		switch {
		case errors.Is(err, sql.ErrNoRows):
		case err != nil:
			return fmt.Errorf("checking file name %s: %w", doc.FileName, err)
		case storedHash != doc.ContentHash:
			return fmt.Errorf("%s stored as %s: %w", doc.FileName, storedHash, ErrFileNameConflict)
		}

		var exists int
		err = s.db.txQueryRow(ctx, tx,
			`SELECT COUNT(*) FROM documents WHERE content_hash = ?`,
			[]any{doc.ContentHash}, &exists)
		if err != nil {
			return fmt.Errorf("checking content hash %s: %w", doc.ContentHash, err)
		}
		if exists > 0 && mode == WriteInsertOnly {
			return fmt.Errorf("content hash %s: %w", doc.ContentHash, ErrDuplicate)
		}

		query := `INSERT INTO documents (content_hash, file_name, metadata, content_markdown, content_plain, word_count)
		VALUES (?, ?, ?, ?, ?, ?)`
		if mode == WriteUpsert {
			query += " " + s.db.dialect.upsertClause("content_hash",
				"file_name", "metadata", "content_markdown", "content_plain", "word_count")
		}

		_, err = s.db.txExec(ctx, tx, query,
			doc.ContentHash, doc.FileName, string(meta), doc.Markdown, doc.PlainText, doc.WordCount)
		if err != nil {
			return fmt.Errorf("writing document %s: %w", doc.FileName, err)
		}

		result = SaveInserted
		if exists > 0 {
			result = SaveUpdated
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return result, nil
}

// Get retrieves a document by content hash
func (s *DocumentStore) Get(ctx context.Context, contentHash string) (*models.Document, error) {
	var (
		doc  models.Document
		meta sql.NullString
	)
	err := s.db.queryRow(ctx,
		`SELECT content_hash, file_name, metadata, content_markdown, content_plain, word_count
		FROM documents WHERE content_hash = ?`,
		[]any{contentHash},
		&doc.ContentHash, &doc.FileName, &meta, &doc.Markdown, &doc.PlainText, &doc.WordCount)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("document %s: %w", contentHash, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get document: %w", err)
	}

	if meta.Valid && meta.String != "" {
		if err := json.Unmarshal([]byte(meta.String), &doc.Metadata); err != nil {
			return nil, fmt.Errorf("document %s: %w", contentHash, err)
		}
	}
	return &doc, nil
}

// ListHashes returns content hashes ordered by file name. A limit of zero or less returns all.
func (s *DocumentStore) ListHashes(ctx context.Context, limit int) ([]string, error) {
	clause, args := limitClause(limit)
	var hashes []string
	err := s.db.query(ctx, `SELECT content_hash FROM documents ORDER BY file_name`+clause, args,
		func(rows *sql.Rows) error {
			var h string
			if err := rows.Scan(&h); err != nil {
				return err
			}
			hashes = append(hashes, h)
			return nil
		})
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	return hashes, nil
}

// Delete removes a document and, through the foreign keys, its prompts and generated documents
func (s *DocumentStore) Delete(ctx context.Context, contentHash string) error {
	res, err := s.db.exec(ctx, `DELETE FROM documents WHERE content_hash = ?`, contentHash)
	if err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("document %s: %w", contentHash, ErrNotFound)
	}
	return nil
}

// Count returns the number of stored documents
func (s *DocumentStore) Count(ctx context.Context) (int, error) {
	return s.db.count(ctx, TableDocuments)
}
