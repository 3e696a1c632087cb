// ABOUTME: Shared setup for CLI commands: configuration, database, and model client
// ABOUTME: Also holds the summary printer used by every stage command
package commands

import (
	"context"
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/harper/blogbench/internal/config"
	"github.com/harper/blogbench/internal/core"
	"github.com/harper/blogbench/internal/llm"
	"github.com/harper/blogbench/internal/storage"
)

// loadConfig loads .env and the environment configuration
func loadConfig() (*config.Config, error) {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading configuration: %w", err)
	}
	return cfg, nil
}

// openDB connects to the configured database
func openDB(ctx context.Context, cfg *config.Config) (*storage.DB, error) {
	dsn, err := cfg.DSN()
	if err != nil {
		return nil, err
	}

	var db *storage.DB
	if cfg.Dialect() == storage.SQLite {
		db, err = storage.OpenSQLite(ctx, dsn)
	} else {
		db, err = storage.Open(ctx, cfg.Dialect(), dsn)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing storage: %w", err)
	}
	db.SetTimeout(cfg.DBTimeout)
	return db, nil
}

// newClient constructs the model client once per invocation
func newClient(cfg *config.Config) (*llm.OpenAIClient, error) {
	client, err := llm.NewOpenAIClientWithConfig(&llm.ClientConfig{
		APIKey:  cfg.OpenAIKey,
		BaseURL: cfg.OpenAIBaseURL,
		Timeout: cfg.Timeout,
	})
	if err != nil {
		return nil, fmt.Errorf("initializing model client: %w", err)
	}
	return client, nil
}

// printSummary writes the final tally of a stage run unless --quiet is set
func printSummary(cmd *cobra.Command, report *core.Report) {
	if report == nil || quiet {
		return
	}
	fmt.Fprintln(cmd.OutOrStdout(), report.Summary())
}

// validateNonNegativeInt returns error if n is negative
func validateNonNegativeInt(n int, name string) error {
	if n < 0 {
		return fmt.Errorf("%s must not be negative, got %d", name, n)
	}
	return nil
}
