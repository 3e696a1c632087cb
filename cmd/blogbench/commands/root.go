// ABOUTME: Root command, global flags, and logger setup for the blogbench CLI
// ABOUTME: Subcommands are registered here and share the verbose/quiet settings
package commands

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	verbose      bool
	quiet        bool
	outputFormat string
)

const banner = `
█▀▄ █   █▀█ █▀▀ █▀▄ █▀▀ █▄ █ █▀▀ █ █
█▀▄ █   █ █ █ █ █▀▄ █▀▀ █ ▀█ █   █▀█
▀▀  ▀▀▀ ▀▀▀ ▀▀▀ ▀▀  ▀▀▀ ▀  ▀ ▀▀▀ ▀ ▀`

// NewRootCmd creates the root command with all subcommands attached
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "blogbench",
		Short: "Benchmark corpus builder for human and AI-written blog posts",
		Long: banner + `

blogbench ingests a directory of human-written markdown posts, asks a model
to reverse engineer the prompt behind each one, and then generates a
machine-written post from every prompt. All three sets are stored side by
side so they can be compared.

Configuration is read from the environment (and a .env file):
  BLOGBENCH_DB_DRIVER   sqlite (default), postgres, or mysql
  BLOGBENCH_DB_DSN      connection string, or SQLite file path
  DB_HOST, DB_PORT, DB_USER, DB_PASSWORD, DB_NAME
  OPENAI_API_KEY, OPENAI_BASE_URL, OPENAI_TIMEOUT
  BLOGBENCH_TEMPERATURE, BLOGBENCH_DB_TIMEOUT`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show debug output")
	cmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Only show errors")
	cmd.PersistentFlags().StringVar(&outputFormat, "format", "auto", "Output format for status (auto, table, json)")
	cmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	cmd.AddCommand(
		NewIngestCmd(),
		NewGeneratePromptCmd(),
		NewGenerateBlogCmd(),
		NewStatusCmd(),
		NewVersionCmd(),
	)

	return cmd
}

// Execute runs the root command, cancelling on SIGINT or SIGTERM
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return NewRootCmd().ExecuteContext(ctx)
}

// newLogger builds the stage logger from the global verbosity flags
func newLogger(w io.Writer) *log.Logger {
	level := log.InfoLevel
	switch {
	case verbose:
		level = log.DebugLevel
	case quiet:
		level = log.ErrorLevel
	}
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: true,
	})
}
