// ABOUTME: CLI command to reverse engineer prompts from stored documents
// ABOUTME: One model call per document, strictly sequential
package commands

import (
	"github.com/spf13/cobra"

	"github.com/harper/blogbench/internal/core"
	"github.com/harper/blogbench/internal/storage"
)

var (
	promptModel           string
	promptLimit           int
	promptContinueOnError bool
)

// NewGeneratePromptCmd creates generate-prompt command
func NewGeneratePromptCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate-prompt",
		Short: "Generate a writing prompt for each stored document",
		Long: `Ask a model to infer the prompt that could have produced each stored
document, and store the result in the prompts table.

A model or database failure stops the run unless --continue-on-error is set.

Examples:
  blogbench generate-prompt --model gpt-4o
  blogbench generate-prompt --model llama3 --limit 10`,
		Args: cobra.NoArgs,
		RunE: runGeneratePrompt,
	}

	cmd.Flags().StringVar(&promptModel, "model", "", "Model used to generate prompts")
	cmd.Flags().IntVar(&promptLimit, "limit", 0, "Maximum number of documents to process (0 for all)")
	cmd.Flags().BoolVar(&promptContinueOnError, "continue-on-error", false, "Record failures and keep going")
	_ = cmd.MarkFlagRequired("model")

	return cmd
}

func runGeneratePrompt(cmd *cobra.Command, args []string) error {
	if err := validateNonNegativeInt(promptLimit, "--limit"); err != nil {
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

	synth := core.NewPromptSynthesizer(client,
		storage.NewDocumentStore(db), storage.NewPromptStore(db),
		newLogger(cmd.ErrOrStderr()))
	report, err := synth.Run(cmd.Context(), core.PromptOptions{
		Model:           promptModel,
		Limit:           promptLimit,
		Temperature:     float32(cfg.Temperature),
		ContinueOnError: promptContinueOnError,
	})
	printSummary(cmd, report)
	return err
}
