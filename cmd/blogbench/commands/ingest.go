// ABOUTME: CLI command to ingest a directory of markdown files
// ABOUTME: Files are normalized and stored by content hash
package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/harper/blogbench/internal/core"
	"github.com/harper/blogbench/internal/storage"
)

var (
	ingestDir        string
	ingestDocType    string
	ingestExt        string
	ingestInsertOnly bool
)

// NewIngestCmd creates ingest command
func NewIngestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ingest",
		Short: "Ingest a directory of markdown documents",
		Long: `Ingest every matching file in a directory into the documents table.

Files are processed in file-name order. Each is stored under the MD5 hash of
its content, so re-ingesting unchanged files is a no-op. Blog posts tagged
"generated" in their front matter are skipped.

By default existing rows are updated and undecodable files are skipped.
With --insert-only, a repeated content hash is reported as a duplicate and
undecodable files count as failures.

Examples:
  blogbench ingest --dir ./posts --doc-type blog_post
  blogbench ingest --dir ./notes --doc-type note --ext .markdown --insert-only`,
		Args: cobra.NoArgs,
		RunE: runIngest,
	}

	cmd.Flags().StringVar(&ingestDir, "dir", "", "Directory containing the documents")
	cmd.Flags().StringVar(&ingestDocType, "doc-type", "", "Document type stored in metadata (e.g. blog_post)")
	cmd.Flags().StringVar(&ingestExt, "ext", ".md", "Only ingest files with this extension")
	cmd.Flags().BoolVar(&ingestInsertOnly, "insert-only", false, "Reject duplicate content instead of updating")
	_ = cmd.MarkFlagRequired("dir")
	_ = cmd.MarkFlagRequired("doc-type")

	return cmd
}

func runIngest(cmd *cobra.Command, args []string) error {
	info, err := os.Stat(ingestDir)
	if err != nil {
		return fmt.Errorf("reading --dir: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("--dir %s is not a directory", ingestDir)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	db, err := openDB(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	mode := storage.WriteUpsert
	if ingestInsertOnly {
		mode = storage.WriteInsertOnly
	}

	ingestor := core.NewIngestor(storage.NewDocumentStore(db), newLogger(cmd.ErrOrStderr()))
	report, err := ingestor.Run(cmd.Context(), os.DirFS(ingestDir), core.IngestOptions{
		Include: core.ExtensionFilter(ingestExt),
		DocType: ingestDocType,
		Mode:    mode,
	})
	printSummary(cmd, report)
	return err
}
