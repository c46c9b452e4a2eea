package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/abhisek/papersmith/internal/llm"
	"github.com/abhisek/papersmith/internal/paper"
	"github.com/abhisek/papersmith/internal/shaper"
	"github.com/abhisek/papersmith/internal/ui/theme"
)

var guessCmd = &cobra.Command{
	Use:   "guess",
	Short: "Generate a practice paper with answers for a subject",
	Example: `  papersmith guess --subject physics --difficulty medium
  papersmith guess --subject "organic chemistry" --difficulty hard --pdf --answers`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		subject, _ := cmd.Flags().GetString("subject")
		difficulty, _ := cmd.Flags().GetString("difficulty")

		log, err := newLogger(cmd)
		if err != nil {
			return err
		}
		defer log.Sync()

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := cmd.Context()
		provider, _, err := llm.NewProviderFromEnv(ctx, st.EventRepo(), log)
		if err != nil {
			var missing *llm.ErrMissingAPIKey
			if errors.As(err, &missing) {
				return fmt.Errorf("guess papers need an LLM provider: set %s", missing.EnvVar())
			}
			return fmt.Errorf("configure LLM provider: %w", err)
		}

		gp, err := shaper.New(provider, shaper.DefaultConfig(), log).GuessPaper(ctx, subject, difficulty)
		if err != nil {
			return err
		}

		if path, _ := cmd.Flags().GetString("save-request"); path != "" {
			if err := saveRequest(path, gp.ToRequest()); err != nil {
				return err
			}
		}

		if asPDF, _ := cmd.Flags().GetBool("pdf"); asPDF {
			result := gp.Result()
			sh := shaper.Func(func(context.Context, paper.Request) (paper.Result, error) {
				return result, nil
			})
			return submit(cmd, st, log, sh, gp.ToRequest())
		}

		printGuessPaper(cmd.OutOrStdout(), gp)
		return nil
	},
}

func init() {
	f := guessCmd.Flags()
	f.String("subject", "", "Subject of the paper, e.g. physics")
	f.String("difficulty", string(shaper.DifficultyMedium), "Difficulty: easy, medium or hard")
	f.Bool("pdf", false, "Export the paper as PDF instead of printing it")
	f.String("save-request", "", "Also write the paper as a request file usable with compose -f")
	addExportFlags(guessCmd)

	_ = guessCmd.MarkFlagRequired("subject")
}

func printGuessPaper(w io.Writer, gp *shaper.GuessPaper) {
	fmt.Fprintln(w, theme.Title.Render(gp.Title))
	if gp.Introduction != "" {
		fmt.Fprintln(w, theme.Hint.Render(gp.Introduction))
	}
	for _, s := range gp.Sections {
		fmt.Fprintln(w)
		fmt.Fprintln(w, theme.TableHeader.Render(s.Title))
		for i, q := range s.Numbered() {
			fmt.Fprintf(w, "  %s\n", q)
			if i < len(s.Answers) {
				fmt.Fprintf(w, "     %s %s\n", theme.Hint.Render("Answer:"), s.Answers[i])
			}
		}
	}
}

func saveRequest(path string, req paper.Request) error {
	var b strings.Builder
	enc := yaml.NewEncoder(&b)
	enc.SetIndent(2)
	if err := enc.Encode(req); err != nil {
		return fmt.Errorf("encode request: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("encode request: %w", err)
	}
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("write request file: %w", err)
	}
	return nil
}
