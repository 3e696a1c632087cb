// ABOUTME: Prompt is a reverse-engineered generation prompt derived from a Document
// ABOUTME: One row per (document, model invocation); never updated
package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Prompt represents a synthesized prompt linked to its source document
type Prompt struct {
	ID          string    `json:"id"`
	ContentHash string    `json:"content_hash"`
	Text        string    `json:"generated_prompt"`
	ModelName   string    `json:"model_name"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewPrompt creates a new Prompt with validation
func NewPrompt(contentHash, text, modelName string) (*Prompt, error) {
	if strings.TrimSpace(contentHash) == "" {
		return nil, errors.New("prompt content hash cannot be empty")
	}
	if strings.TrimSpace(text) == "" {
		return nil, errors.New("prompt text cannot be empty")
	}
	if strings.TrimSpace(modelName) == "" {
		return nil, errors.New("prompt model name cannot be empty")
	}
	return &Prompt{
		ID:          uuid.New().String(),
		ContentHash: contentHash,
		Text:        text,
		ModelName:   modelName,
		CreatedAt:   time.Now().UTC(),
	}, nil
}
