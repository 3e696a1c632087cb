// ABOUTME: Ingestor loads a directory of markdown files into the document store
// ABOUTME: One bad file is recorded as a failure and never aborts the batch
package core

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/harper/blogbench/internal/content"
	"github.com/harper/blogbench/internal/frontmatter"
	"github.com/harper/blogbench/internal/models"
	"github.com/harper/blogbench/internal/storage"
)

// IngestOptions configures an ingestion run
type IngestOptions struct {
	// Include selects files by name; nil includes every regular file
	Include func(name string) bool
	// DocType is stored in each document's metadata
	DocType string
	// Mode is WriteUpsert (lenient) or WriteInsertOnly (strict)
	Mode storage.WriteMode
}

// ExtensionFilter matches file names ending in ext. An empty ext matches everything.
func ExtensionFilter(ext string) func(string) bool {
	return func(name string) bool {
		return strings.HasSuffix(name, ext)
	}
}

// Ingestor normalizes files and persists them as documents
type Ingestor struct {
	docs   DocumentStore
	logger *log.Logger
}

// NewIngestor creates an Ingestor writing to docs
func NewIngestor(docs DocumentStore, logger *log.Logger) *Ingestor {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Ingestor{docs: docs, logger: logger}
}

// Run ingests the top-level regular files of fsys in lexicographic order.
// The returned error is non-nil only when the run could not start or ctx was cancelled.
func (in *Ingestor) Run(ctx context.Context, fsys fs.FS, opts IngestOptions) (*Report, error) {
	if strings.TrimSpace(opts.DocType) == "" {
		return nil, errors.New("document type is required")
	}
	if err := in.docs.EnsureSchema(ctx); err != nil {
		return nil, fmt.Errorf("failed to ensure documents schema: %w", err)
	}

	// fs.ReadDir returns entries sorted by file name
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("failed to read directory: %w", err)
	}

	report := newReport("ingest")
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		name := entry.Name()
		if opts.Include != nil && !opts.Include(name) {
			continue
		}
		if err := ctx.Err(); err != nil {
			return report, err
		}
		in.ingestFile(ctx, fsys, name, opts, report)
	}

	in.logger.Info(report.Summary())
	return report, nil
}

func (in *Ingestor) ingestFile(ctx context.Context, fsys fs.FS, name string, opts IngestOptions, report *Report) {
	raw, err := fs.ReadFile(fsys, name)
	if err != nil {
		in.logger.Error("failed to read file", "file", name, "err", err)
		report.fail(name, "read", err)
		return
	}

	md, err := content.Decode(raw)
	if err != nil {
		if opts.Mode == storage.WriteInsertOnly {
			in.logger.Error("failed to decode file", "file", name, "err", err)
			report.fail(name, "decode", err)
		} else {
			in.logger.Warn("skipping undecodable file", "file", name, "err", err)
			report.skip(name, "invalid UTF-8")
		}
		return
	}

	norm := content.Normalize(md)
	meta := models.Metadata{
		FileName:  name,
		SizeBytes: int64(len(raw)),
		DocType:   opts.DocType,
	}
	if fm := frontmatter.Extract(md); fm.HasTags {
		meta.Tags = fm.Tags
	}

	if meta.DocType == models.DocTypeBlogPost && meta.HasTag(models.TagGenerated) {
		in.logger.Warn("skipping generated blog post", "file", name, "hash", norm.ContentHash)
		report.skip(name, "tagged "+models.TagGenerated)
		return
	}

	doc := &models.Document{
		ContentHash: norm.ContentHash,
		FileName:    name,
		Metadata:    meta,
		Markdown:    md,
		PlainText:   norm.PlainText,
		WordCount:   norm.WordCount,
	}

	res, err := in.docs.Save(ctx, doc, opts.Mode)
	switch {
	case errors.Is(err, storage.ErrDuplicate):
		in.logger.Warn("skipping duplicate document", "file", name, "hash", doc.ContentHash)
		report.skip(name, "duplicate content hash")
	case err != nil:
		in.logger.Error("failed to store document", "file", name, "hash", doc.ContentHash, "err", err)
		report.fail(name, "store", err)
	default:
		in.logger.Info("ingested document", "file", name, "hash", doc.ContentHash,
			"words", doc.WordCount, "result", res)
		report.succeed(name)
	}
}
