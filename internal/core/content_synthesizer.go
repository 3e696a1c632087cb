// ABOUTME: ContentSynthesizer turns stored prompts into machine-written blog posts
// ABOUTME: Supports single-shot and streamed generation, plus optional markdown files on disk
package core

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/harper/blogbench/internal/content"
	"github.com/harper/blogbench/internal/llm"
	"github.com/harper/blogbench/internal/models"
	"github.com/harper/blogbench/internal/storage"
)

// ContentOptions configures a content synthesis run
type ContentOptions struct {
	Model       string
	Limit       int
	Temperature float32
	// Stream requests incremental fragments, each written to Output on arrival
	Stream bool
	Output io.Writer
	// OutputDir, when set, receives one <source>_<prompt>_ai.md file per generated post
	OutputDir       string
	ContinueOnError bool
}

// ContentSynthesizer generates a post for every stored prompt
type ContentSynthesizer struct {
	client    llm.Client
	prompts   PromptStore
	generated GeneratedStore
	logger    *log.Logger
}

// NewContentSynthesizer creates a ContentSynthesizer with the given client and stores
func NewContentSynthesizer(client llm.Client, prompts PromptStore, generated GeneratedStore, logger *log.Logger) *ContentSynthesizer {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &ContentSynthesizer{
		client:    client,
		prompts:   prompts,
		generated: generated,
		logger:    logger,
	}
}

// Run generates one document per stored prompt, oldest prompt first.
// A store or model failure aborts the run unless opts.ContinueOnError is set.
func (cs *ContentSynthesizer) Run(ctx context.Context, opts ContentOptions) (*Report, error) {
	if strings.TrimSpace(opts.Model) == "" {
		return nil, errors.New("model is required")
	}
	if err := cs.generated.EnsureSchema(ctx); err != nil {
		return nil, fmt.Errorf("failed to ensure generated documents schema: %w", err)
	}
	if opts.OutputDir != "" {
		if err := os.MkdirAll(opts.OutputDir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	ids, err := cs.prompts.ListIDs(ctx, opts.Limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list prompts: %w", err)
	}

	report := newReport("generate-blog")
	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		if err := cs.synthesize(ctx, id, opts, report); err != nil && !opts.ContinueOnError {
			return report, err
		}
	}

	cs.logger.Info(report.Summary(), "model", opts.Model)
	return report, nil
}

func (cs *ContentSynthesizer) synthesize(ctx context.Context, id string, opts ContentOptions, report *Report) error {
	prompt, err := cs.prompts.Get(ctx, id)
	if errors.Is(err, storage.ErrNotFound) {
		cs.logger.Warn("skipping missing prompt", "prompt_id", id)
		report.skip(id, "prompt not found")
		return nil
	}
	if err != nil {
		cs.logger.Error("failed to fetch prompt", "prompt_id", id, "err", err)
		report.fail(id, "fetch", err)
		return fmt.Errorf("fetching prompt %s: %w", id, err)
	}

	cs.logger.Debug("generating post", "prompt_id", id, "model", opts.Model, "stream", opts.Stream)
	req := llm.Request{
		Model: opts.Model,
		Messages: []llm.Message{
			{Role: llm.RoleSystem, Content: blogSystemMessage},
			{Role: llm.RoleUser, Content: prompt.Text},
		},
		Temperature: opts.Temperature,
	}
	md, err := llm.Generate(ctx, cs.client, req, opts.Stream, opts.Output)
	if opts.Stream && opts.Output != nil {
		_, _ = io.WriteString(opts.Output, "\n")
	}
	if err != nil {
		cs.logger.Error("model call failed", "prompt_id", id, "model", opts.Model, "err", err)
		report.fail(id, "model", err)
		return fmt.Errorf("generating post for prompt %s with %s: %w", id, opts.Model, err)
	}

	norm := content.Normalize(md)
	doc, err := models.NewGeneratedDocument(id, md, norm.PlainText, opts.Model, norm.ContentHash)
	if err != nil {
		cs.logger.Error("invalid model response", "prompt_id", id, "model", opts.Model, "err", err)
		report.fail(id, "validate", err)
		return nil
	}

	if err := cs.generated.Insert(ctx, doc); err != nil {
		cs.logger.Error("failed to store generated document", "prompt_id", id, "err", err)
		report.fail(id, "store", err)
		return fmt.Errorf("storing post for prompt %s: %w", id, err)
	}

	if opts.OutputDir != "" {
		path, err := cs.writeFile(ctx, opts.OutputDir, id, md)
		if err != nil {
			cs.logger.Error("failed to write output file", "prompt_id", id, "err", err)
			report.fail(id, "write", err)
			return fmt.Errorf("writing post for prompt %s: %w", id, err)
		}
		cs.logger.Debug("wrote output file", "prompt_id", id, "path", path)
	}

	cs.logger.Info("generated post", "prompt_id", id, "hash", doc.ContentHash,
		"words", norm.WordCount, "model", opts.Model)
	report.succeed(id)
	return nil
}

// writeFile saves md as <source-base>_<prompt-id-prefix>_ai.md under dir
func (cs *ContentSynthesizer) writeFile(ctx context.Context, dir, promptID, md string) (string, error) {
	base := promptID
	source, err := cs.generated.SourceFileName(ctx, promptID)
	switch {
	case err == nil:
		base = strings.TrimSuffix(filepath.Base(source), filepath.Ext(source))
	case !errors.Is(err, storage.ErrNotFound):
		return "", err
	}

	path := filepath.Join(dir, OutputFileName(base, promptID))
	if err := os.WriteFile(path, []byte(md), 0644); err != nil {
		return "", err
	}
	return path, nil
}

// OutputFileName names the markdown file written for a generated post
func OutputFileName(sourceBase, promptID string) string {
	prefix := promptID
	if len(prefix) > 8 {
		prefix = prefix[:8]
	}
	return fmt.Sprintf("%s_%s_ai.md", sourceBase, prefix)
}
