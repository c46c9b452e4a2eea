package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/papersmith/internal/logging"
	"github.com/abhisek/papersmith/internal/store"
	"github.com/abhisek/papersmith/internal/ui/theme"
)

var rootCmd = &cobra.Command{
	Use:           "papersmith",
	Short:         "Compose test papers and export them as PDF",
	Long:          "papersmith formats exam and test papers with an LLM and exports them as paginated A4 PDFs.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// reportedError marks a failure the user has already been notified about.
type reportedError struct{ err error }

func (e *reportedError) Error() string { return e.err.Error() }
func (e *reportedError) Unwrap() error { return e.err }

// Execute runs the root command and prints any error not already reported.
func Execute() error {
	err := rootCmd.Execute()
	var reported *reportedError
	if err != nil && !errors.As(err, &reported) {
		fmt.Fprintln(os.Stderr, theme.BadgeError.Render("error:"), err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides PAPERSMITH_DB env var)")
	rootCmd.PersistentFlags().String("log-mode", "", "Log mode: quiet, prod or dev (overrides PAPERSMITH_LOG_MODE env var)")

	rootCmd.AddCommand(composeCmd)
	rootCmd.AddCommand(guessCmd)
	rootCmd.AddCommand(testsCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then PAPERSMITH_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return s, nil
}

// newLogger builds the logger for --log-mode, falling back to
// PAPERSMITH_LOG_MODE and then "quiet".
func newLogger(cmd *cobra.Command) (*logging.Logger, error) {
	mode, _ := cmd.Flags().GetString("log-mode")
	if mode == "" {
		mode = os.Getenv("PAPERSMITH_LOG_MODE")
	}
	if mode == "" {
		mode = "quiet"
	}
	log, err := logging.New(mode)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	return log, nil
}

// resolveOutDir returns -o, then PAPERSMITH_OUT_DIR, then the working
// directory.
func resolveOutDir(cmd *cobra.Command) string {
	if d, _ := cmd.Flags().GetString("out"); d != "" {
		return d
	}
	if d := os.Getenv("PAPERSMITH_OUT_DIR"); d != "" {
		return d
	}
	return "."
}
