// ABOUTME: Prompt store linking reverse-engineered prompts to source documents
// ABOUTME: Rows cascade away when their source document is deleted
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/harper/blogbench/internal/models"
)

// PromptStore persists generated prompts
type PromptStore struct {
	db *DB
}

// NewPromptStore creates a prompt store on db
func NewPromptStore(db *DB) *PromptStore {
	return &PromptStore{db: db}
}

// EnsureSchema creates the prompts table and the documents table it references
func (s *PromptStore) EnsureSchema(ctx context.Context) error {
	return s.db.EnsureSchema(ctx, TablePrompts)
}

// Insert stores a new prompt
func (s *PromptStore) Insert(ctx context.Context, p *models.Prompt) error {
	_, err := s.db.exec(ctx,
		`INSERT INTO prompts (id, content_hash, generated_prompt, model_name, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		p.ID, p.ContentHash, p.Text, p.ModelName, p.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert prompt for %s: %w", p.ContentHash, err)
	}
	return nil
}

// ListIDs returns prompt IDs oldest first. A limit of zero or less returns all.
func (s *PromptStore) ListIDs(ctx context.Context, limit int) ([]string, error) {
	clause, args := limitClause(limit)
	var ids []string
	err := s.db.query(ctx, `SELECT id FROM prompts ORDER BY created_at, id`+clause, args,
		func(rows *sql.Rows) error {
			var id string
			if err := rows.Scan(&id); err != nil {
				return err
			}
			ids = append(ids, id)
			return nil
		})
	if err != nil {
		return nil, fmt.Errorf("failed to list prompts: %w", err)
	}
	return ids, nil
}

// Get retrieves a prompt by ID
func (s *PromptStore) Get(ctx context.Context, id string) (*models.Prompt, error) {
	var p models.Prompt
	err := s.db.queryRow(ctx,
		`SELECT id, content_hash, generated_prompt, model_name, created_at FROM prompts WHERE id = ?`,
		[]any{id},
		&p.ID, &p.ContentHash, &p.Text, &p.ModelName, &p.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("prompt %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get prompt: %w", err)
	}
	return &p, nil
}

// Delete removes a prompt and its generated documents
func (s *PromptStore) Delete(ctx context.Context, id string) error {
	res, err := s.db.exec(ctx, `DELETE FROM prompts WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete prompt: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete prompt: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("prompt %s: %w", id, ErrNotFound)
	}
	return nil
}

// Count returns the number of stored prompts
func (s *PromptStore) Count(ctx context.Context) (int, error) {
	return s.db.count(ctx, TablePrompts)
}
