// ABOUTME: Tests for Prompt and GeneratedDocument constructors
// ABOUTME: Verifies required fields are validated before anything is persisted
package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPrompt(t *testing.T) {
	p, err := NewPrompt("abc123", "Write a post about Go", "gpt-4")
	require.NoError(t, err)

	assert.NotEmpty(t, p.ID)
	assert.Equal(t, "abc123", p.ContentHash)
	assert.Equal(t, "Write a post about Go", p.Text)
	assert.Equal(t, "gpt-4", p.ModelName)
	assert.False(t, p.CreatedAt.IsZero())
}

func TestNewPrompt_UniqueIDs(t *testing.T) {
	a, err := NewPrompt("h", "t", "m")
	require.NoError(t, err)
	b, err := NewPrompt("h", "t", "m")
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestNewPrompt_Validation(t *testing.T) {
	tests := []struct {
		name, hash, text, model string
	}{
		{"missing hash", "", "text", "model"},
		{"missing text", "hash", "  ", "model"},
		{"missing model", "hash", "text", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewPrompt(tt.hash, tt.text, tt.model)
			assert.Error(t, err)
			assert.Nil(t, p)
		})
	}
}

func TestNewGeneratedDocument(t *testing.T) {
	g, err := NewGeneratedDocument("prompt-1", "# Title", "Title", "gpt-4", "d41d8cd98f00b204e9800998ecf8427e")
	require.NoError(t, err)

	assert.NotEmpty(t, g.ID)
	assert.Equal(t, "prompt-1", g.PromptID)
	assert.Equal(t, "Title", g.PlainText)
	assert.False(t, g.CreatedAt.IsZero())
}

func TestNewGeneratedDocument_Validation(t *testing.T) {
	_, err := NewGeneratedDocument("", "# x", "x", "m", "h")
	assert.Error(t, err)
	_, err = NewGeneratedDocument("p", "", "", "m", "h")
	assert.Error(t, err)
	_, err = NewGeneratedDocument("p", "# x", "x", "", "h")
	assert.Error(t, err)
	_, err = NewGeneratedDocument("p", "# x", "x", "m", "")
	assert.Error(t, err)

	g, err := NewGeneratedDocument("p", "![img](a.png)", "", "m", "h")
	require.NoError(t, err)
	assert.Empty(t, g.PlainText)
}
