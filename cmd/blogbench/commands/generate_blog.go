// ABOUTME: CLI command to generate blog posts from stored prompts
// ABOUTME: Streams model output to stdout as it arrives by default
package commands

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/harper/blogbench/internal/core"
	"github.com/harper/blogbench/internal/storage"
)

var (
	blogModel           string
	blogLimit           int
	blogStream          bool
	blogOutDir          string
	blogContinueOnError bool
)

// NewGenerateBlogCmd creates generate-blog command
func NewGenerateBlogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate-blog",
		Short: "Generate a blog post for each stored prompt",
		Long: `Send every stored prompt to a model and store the markdown it writes in
the generated_documents table.

Output is streamed to stdout while it is generated. Use --stream=false for
single-shot requests, and --out-dir to also write each post to a file named
<source>_<prompt-id>_ai.md.

Examples:
  blogbench generate-blog --model gpt-4o
  blogbench generate-blog --model gpt-4o --out-dir ./generated --stream=false`,
		Args: cobra.NoArgs,
		RunE: runGenerateBlog,
	}

	cmd.Flags().StringVar(&blogModel, "model", "", "Model used to write posts")
	cmd.Flags().IntVar(&blogLimit, "limit", 0, "Maximum number of prompts to process (0 for all)")
	cmd.Flags().BoolVar(&blogStream, "stream", true, "Stream model output to stdout")
	cmd.Flags().StringVar(&blogOutDir, "out-dir", "", "Also write each generated post to this directory")
	cmd.Flags().BoolVar(&blogContinueOnError, "continue-on-error", false, "Record failures and keep going")
	_ = cmd.MarkFlagRequired("model")

	return cmd
}

func runGenerateBlog(cmd *cobra.Command, args []string) error {
	if err := validateNonNegativeInt(blogLimit, "--limit"); err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	client, err := newClient(cfg)
	if err != nil {
		return err
	}

	db, err := openDB(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	var out io.Writer
	if !quiet {
		out = cmd.OutOrStdout()
	}

	synth := core.NewContentSynthesizer(client,
		storage.NewPromptStore(db), storage.NewGeneratedStore(db),
		newLogger(cmd.ErrOrStderr()))
	report, err := synth.Run(cmd.Context(), core.ContentOptions{
		Model:           blogModel,
		Limit:           blogLimit,
		Temperature:     float32(cfg.Temperature),
		Stream:          blogStream,
		Output:          out,
		OutputDir:       blogOutDir,
		ContinueOnError: blogContinueOnError,
	})
	printSummary(cmd, report)
	return err
}
