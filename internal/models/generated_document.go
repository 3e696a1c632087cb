// ABOUTME: GeneratedDocument is machine-written markdown produced from a Prompt
// ABOUTME: Normalized the same way as human documents for comparison
package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// GeneratedDocument represents model output linked to its source prompt
type GeneratedDocument struct {
	ID          string    `json:"id"`
	PromptID    string    `json:"prompt_id"`
	Markdown    string    `json:"content_markdown"`
	PlainText   string    `json:"content_plain"`
	ModelName   string    `json:"model_name"`
	ContentHash string    `json:"content_hash"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewGeneratedDocument creates a new GeneratedDocument with validation.
// plainText may be empty (markdown made only of images or HTML renders to nothing).
func NewGeneratedDocument(promptID, markdown, plainText, modelName, contentHash string) (*GeneratedDocument, error) {
	if strings.TrimSpace(promptID) == "" {
		return nil, errors.New("generated document prompt id cannot be empty")
	}
	if strings.TrimSpace(markdown) == "" {
		return nil, errors.New("generated document content cannot be empty")
	}
	if strings.TrimSpace(modelName) == "" {
		return nil, errors.New("generated document model name cannot be empty")
	}
	if contentHash == "" {
		return nil, errors.New("generated document content hash cannot be empty")
	}
	return &GeneratedDocument{
		ID:          uuid.New().String(),
		PromptID:    promptID,
		Markdown:    markdown,
		PlainText:   plainText,
		ModelName:   modelName,
		ContentHash: contentHash,
		CreatedAt:   time.Now().UTC(),
	}, nil
}
