// ABOUTME: PromptSynthesizer reverse-engineers a writing prompt from each stored document
// ABOUTME: Prompts are persisted linked to their source document's content hash
package core

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/harper/blogbench/internal/llm"
	"github.com/harper/blogbench/internal/models"
	"github.com/harper/blogbench/internal/storage"
)

// PromptOptions configures a prompt synthesis run
type PromptOptions struct {
	Model       string
	Limit       int
	Temperature float32
	// ContinueOnError records store and model failures per document instead of aborting
	ContinueOnError bool
}

// PromptSynthesizer asks a model to infer the prompt behind each document
type PromptSynthesizer struct {
	client  llm.Client
	docs    DocumentStore
	prompts PromptStore
	logger  *log.Logger
}

// NewPromptSynthesizer creates a PromptSynthesizer with the given client and stores
func NewPromptSynthesizer(client llm.Client, docs DocumentStore, prompts PromptStore, logger *log.Logger) *PromptSynthesizer {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &PromptSynthesizer{
		client:  client,
		docs:    docs,
		prompts: prompts,
		logger:  logger,
	}
}

// Run generates one prompt per stored document, in store order, up to opts.Limit.
// A store or model failure aborts the run unless opts.ContinueOnError is set.
func (ps *PromptSynthesizer) Run(ctx context.Context, opts PromptOptions) (*Report, error) {
	if strings.TrimSpace(opts.Model) == "" {
		return nil, errors.New("model is required")
	}
	if err := ps.prompts.EnsureSchema(ctx); err != nil {
		return nil, fmt.Errorf("failed to ensure prompts schema: %w", err)
	}

	hashes, err := ps.docs.ListHashes(ctx, opts.Limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}

	report := newReport("generate-prompt")
	for _, hash := range hashes {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		if err := ps.synthesize(ctx, hash, opts, report); err != nil && !opts.ContinueOnError {
			return report, err
		}
	}

	ps.logger.Info(report.Summary(), "model", opts.Model)
	return report, nil
}

// synthesize handles one document. It returns an error only for collaborator failures.
func (ps *PromptSynthesizer) synthesize(ctx context.Context, hash string, opts PromptOptions, report *Report) error {
	doc, err := ps.docs.Get(ctx, hash)
	if errors.Is(err, storage.ErrNotFound) {
		ps.logger.Warn("skipping missing document", "hash", hash)
		report.skip(hash, "document not found")
		return nil
	}
	if err != nil {
		ps.logger.Error("failed to fetch document", "hash", hash, "err", err)
		report.fail(hash, "fetch", err)
		return fmt.Errorf("fetching document %s: %w", hash, err)
	}

	ps.logger.Debug("generating prompt", "file", doc.FileName, "hash", hash, "model", opts.Model)
	text, err := ps.client.Complete(ctx, llm.Request{
		Model: opts.Model,
		Messages: []llm.Message{
			{Role: llm.RoleSystem, Content: promptSystemMessage},
			{Role: llm.RoleUser, Content: reversePrompt(doc.FileName, doc.PlainText)},
		},
		Temperature: opts.Temperature,
	})
	if err != nil {
		ps.logger.Error("model call failed", "file", doc.FileName, "hash", hash, "model", opts.Model, "err", err)
		report.fail(hash, "model", err)
		return fmt.Errorf("generating prompt for %s with %s: %w", doc.FileName, opts.Model, err)
	}

	prompt, err := models.NewPrompt(hash, strings.TrimSpace(text), opts.Model)
	if err != nil {
		ps.logger.Error("invalid model response", "file", doc.FileName, "hash", hash, "model", opts.Model, "err", err)
		report.fail(hash, "validate", err)
		return nil
	}

	if err := ps.prompts.Insert(ctx, prompt); err != nil {
		ps.logger.Error("failed to store prompt", "file", doc.FileName, "hash", hash, "err", err)
		report.fail(hash, "store", err)
		return fmt.Errorf("storing prompt for %s: %w", doc.FileName, err)
	}

	ps.logger.Info("generated prompt", "file", doc.FileName, "hash", hash, "prompt_id", prompt.ID, "model", opts.Model)
	report.succeed(hash)
	return nil
}
