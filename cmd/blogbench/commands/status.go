// ABOUTME: CLI command to show row counts for the benchmark tables
// ABOUTME: Renders a table by default or JSON with --format json
package commands

import (
	"context"
	"fmt"

	json "github.com/goccy/go-json"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/harper/blogbench/internal/storage"
)

// TableCount is the number of rows in one table
type TableCount struct {
	Table string `json:"table"`
	Rows  int    `json:"rows"`
}

// NewStatusCmd creates status command
func NewStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show how many documents, prompts, and generated posts are stored",
		Long: `Show row counts for the documents, prompts, and generated_documents tables.
Missing tables are created first.

Examples:
  blogbench status
  blogbench status --format json`,
		Args: cobra.NoArgs,
		RunE: runStatus,
	}

	return cmd
}

func runStatus(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	db, err := openDB(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	counts, err := tableCounts(cmd.Context(), db)
	if err != nil {
		return err
	}
	return renderCounts(cmd, counts)
}

// tableCounts ensures the schema and counts rows in every table
func tableCounts(ctx context.Context, db *storage.DB) ([]TableCount, error) {
	docs := storage.NewDocumentStore(db)
	prompts := storage.NewPromptStore(db)
	generated := storage.NewGeneratedStore(db)

	if err := generated.EnsureSchema(ctx); err != nil {
		return nil, fmt.Errorf("ensuring schema: %w", err)
	}

	counters := []struct {
		table string
		count func(context.Context) (int, error)
	}{
		{storage.TableDocuments, docs.Count},
		{storage.TablePrompts, prompts.Count},
		{storage.TableGeneratedDocuments, generated.Count},
	}

	counts := make([]TableCount, 0, len(counters))
	for _, c := range counters {
		n, err := c.count(ctx)
		if err != nil {
			return nil, err
		}
		counts = append(counts, TableCount{Table: c.table, Rows: n})
	}
	return counts, nil
}

func renderCounts(cmd *cobra.Command, counts []TableCount) error {
	switch outputFormat {
	case "json":
		data, err := json.MarshalIndent(counts, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n", data)
	case "auto", "table", "":
		t := table.NewWriter()
		t.SetOutputMirror(cmd.OutOrStdout())
		t.AppendHeader(table.Row{"Table", "Rows"})
		for _, c := range counts {
			t.AppendRow(table.Row{c.Table, c.Rows})
		}
		t.SetStyle(table.StyleRounded)
		t.Render()
	default:
		return fmt.Errorf("unknown format %q (want auto, table, or json)", outputFormat)
	}
	return nil
}
