// ABOUTME: Store for machine-written documents produced from prompts
// ABOUTME: Can resolve a prompt back to the file name of its human source
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/harper/blogbench/internal/models"
)

// GeneratedStore persists generated documents
type GeneratedStore struct {
	db *DB
}

// NewGeneratedStore creates a generated-document store on db
func NewGeneratedStore(db *DB) *GeneratedStore {
	return &GeneratedStore{db: db}
}

// EnsureSchema creates the generated_documents table and its parents
func (s *GeneratedStore) EnsureSchema(ctx context.Context) error {
	return s.db.EnsureSchema(ctx, TableGeneratedDocuments)
}

func (s *GeneratedStore) Insert(ctx context.Context, g *models.GeneratedDocument) error {
	_, err := s.db.exec(ctx,
		`INSERT INTO generated_documents (id, prompt_id, content_markdown, content_plain, model_name, content_hash, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		g.ID, g.PromptID, g.Markdown, g.PlainText, g.ModelName, g.ContentHash, g.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert generated document for prompt %s: %w", g.PromptID, err)
	}
	return nil
}

func (s *GeneratedStore) ListIDs(ctx context.Context, limit int) ([]string, error) {
	clause, args := limitClause(limit)
	var ids []string
	err := s.db.query(ctx, `SELECT id FROM generated_documents ORDER BY created_at, id`+clause, args,
		func(rows *sql.Rows) error {
			var id string
			if err := rows.Scan(&id); err != nil {
				return err
			}
			ids = append(ids, id)
			return nil
		})
	if err != nil {
		return nil, fmt.Errorf("failed to list generated documents: %w", err)
	}
	return ids, nil
}

func (s *GeneratedStore) Get(ctx context.Context, id string) (*models.GeneratedDocument, error) {
	var g models.GeneratedDocument
	err := s.db.queryRow(ctx,
		`SELECT id, prompt_id, content_markdown, content_plain, model_name, content_hash, created_at
		FROM generated_documents WHERE id = ?`,
		[]any{id},
		&g.ID, &g.PromptID, &g.Markdown, &g.PlainText, &g.ModelName, &g.ContentHash, &g.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("generated document %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get generated document: %w", err)
	}
	return &g, nil
}

func (s *GeneratedStore) Count(ctx context.Context) (int, error) {
	return s.db.count(ctx, TableGeneratedDocuments)
}

// SourceFileName returns the file name of the document a prompt was derived from
func (s *GeneratedStore) SourceFileName(ctx context.Context, promptID string) (string, error) {
	var name string
	err := s.db.queryRow(ctx,
		`SELECT d.file_name FROM prompts p
		JOIN documents d ON d.content_hash = p.content_hash
		WHERE p.id = ?`,
		[]any{promptID}, &name)
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("prompt %s: %w", promptID, ErrNotFound)
	}
	if err != nil {
		return "", fmt.Errorf("failed to resolve source file: %w", err)
	}
	return name, nil
}
