// ABOUTME: Store contracts the pipeline stages depend on
// ABOUTME: Satisfied by the storage package; tests may substitute their own
package core

import (
	"context"

	"github.com/harper/blogbench/internal/models"
	"github.com/harper/blogbench/internal/storage"
)

// DocumentStore is the document persistence used by ingestion and prompt synthesis
type DocumentStore interface {
	EnsureSchema(ctx context.Context) error
	Save(ctx context.Context, doc *models.Document, mode storage.WriteMode) (storage.SaveResult, error)
	Get(ctx context.Context, contentHash string) (*models.Document, error)
	ListHashes(ctx context.Context, limit int) ([]string, error)
}

// PromptStore is the prompt persistence used by both synthesis stages
type PromptStore interface {
	EnsureSchema(ctx context.Context) error
	Insert(ctx context.Context, p *models.Prompt) error
	Get(ctx context.Context, id string) (*models.Prompt, error)
	ListIDs(ctx context.Context, limit int) ([]string, error)
}

// GeneratedStore is the generated-document persistence used by content synthesis
type GeneratedStore interface {
	EnsureSchema(ctx context.Context) error
	Insert(ctx context.Context, g *models.GeneratedDocument) error
	SourceFileName(ctx context.Context, promptID string) (string, error)
}

var (
	_ DocumentStore  = (*storage.DocumentStore)(nil)
	_ PromptStore    = (*storage.PromptStore)(nil)
	_ GeneratedStore = (*storage.GeneratedStore)(nil)
)
