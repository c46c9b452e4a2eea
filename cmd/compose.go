package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/papersmith/internal/llm"
	"github.com/abhisek/papersmith/internal/logging"
	"github.com/abhisek/papersmith/internal/notify"
	"github.com/abhisek/papersmith/internal/paper"
	"github.com/abhisek/papersmith/internal/pipeline"
	"github.com/abhisek/papersmith/internal/render"
	"github.com/abhisek/papersmith/internal/screens/composeform"
	"github.com/abhisek/papersmith/internal/shaper"
	"github.com/abhisek/papersmith/internal/store"
	"github.com/abhisek/papersmith/internal/ui/theme"
)

const chromiumTimeout = 60 * time.Second

var composeCmd = &cobra.Command{
	Use:   "compose",
	Short: "Format a test paper and export it as PDF",
	Long: `Compose a test paper from a request file (-f) or from flags, format it
with the configured LLM provider and export it as an A4 PDF.

Without -f the paper has three sections: multiple choice, short and long
questions, filled from --mcq, --short and --long (each may be repeated).
With -i the same form is filled in interactively; flags prefill it.`,
	Example: `  papersmith compose -f algebra.yaml -o out/
  papersmith compose --title "Algebra Quiz" --mcq "2+2=?" --short "Define a variable."
  papersmith compose -i --font-size 14`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		req, err := composeRequest(cmd)
		if err != nil {
			return err
		}
		if interactive, _ := cmd.Flags().GetBool("interactive"); interactive {
			var ok bool
			req, ok, err = composeform.Run(req)
			if err != nil {
				return err
			}
			if !ok {
				fmt.Fprintln(cmd.ErrOrStderr(), "Canceled.")
				return nil
			}
		}

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
		var sh pipeline.Shaper
		if noLLM, _ := cmd.Flags().GetBool("no-llm"); !noLLM {
			flag, _ := cmd.Flags().GetString("shape-mode")
			mode, _ := shaper.ParseMode(flag) // checked by composeRequest
			sh, err = newShaper(ctx, st, log, mode)
			if err != nil {
				return err
			}
		}

		return submit(cmd, st, log, sh, req)
	},
}

func init() {
	addComposeFlags(composeCmd)
	composeCmd.MarkFlagsMutuallyExclusive("file", "title")
	composeCmd.MarkFlagsMutuallyExclusive("file", "interactive")
}

func addComposeFlags(c *cobra.Command) {
	f := c.Flags()
	f.StringP("file", "f", "", "Request file (YAML or JSON)")
	f.BoolP("interactive", "i", false, "Fill in the paper form in the terminal")
	f.String("title", "", "Test title")
	f.String("instructions", "", "Instructions printed under the title")
	f.StringArray("mcq", nil, "Multiple choice question (repeatable)")
	f.StringArray("short", nil, "Short question (repeatable)")
	f.StringArray("long", nil, "Long question (repeatable)")
	f.Int("font-size", paper.DefaultFont, "Body font size in px (1-72)")
	f.String("shape-mode", string(shaper.ModeStructured), "LLM response contract: structured or layout")
	f.Bool("no-llm", false, "Skip the LLM formatting call")
	addExportFlags(c)
}

// addExportFlags registers the flags shared by every command that exports.
func addExportFlags(c *cobra.Command) {
	f := c.Flags()
	f.StringP("out", "o", "", "Output directory (overrides PAPERSMITH_OUT_DIR env var)")
	f.String("engine", "raster", "Export engine: raster or chromium")
	f.String("chrome-path", "", "Chromium executable for --engine chromium")
	f.Bool("html", false, "Also write an HTML preview next to the PDF")
	f.Bool("answers", false, "Append an answer key when answers are available")
}

func composeRequest(cmd *cobra.Command) (paper.Request, error) {
	mode, _ := cmd.Flags().GetString("shape-mode")
	if _, err := shaper.ParseMode(mode); err != nil {
		return paper.Request{}, fmt.Errorf("invalid --shape-mode: %w", err)
	}

	if path, _ := cmd.Flags().GetString("file"); path != "" {
		req, err := paper.LoadRequest(path)
		if err != nil {
			return paper.Request{}, err
		}
		if cmd.Flags().Changed("font-size") {
			req.FontSize, _ = cmd.Flags().GetInt("font-size")
		}
		return req, nil
	}

	title, _ := cmd.Flags().GetString("title")
	instructions, _ := cmd.Flags().GetString("instructions")
	mcqs, _ := cmd.Flags().GetStringArray("mcq")
	short, _ := cmd.Flags().GetStringArray("short")
	long, _ := cmd.Flags().GetStringArray("long")

	req := paper.NewStandardRequest(title, instructions, mcqs, short, long)
	req.FontSize, _ = cmd.Flags().GetInt("font-size")

	req.DropEmptySections()
	return req, nil
}

// newShaper builds a Shaper from the environment. A missing provider is not
// an error: the paper is exported as entered.
func newShaper(ctx context.Context, st *store.Store, log *logging.Logger, mode shaper.Mode) (pipeline.Shaper, error) {
	provider, _, err := llm.NewProviderFromEnv(ctx, st.EventRepo(), log)
	if err != nil {
		var missing *llm.ErrMissingAPIKey
		if errors.As(err, &missing) {
			log.Debug("llm provider not configured", "provider", missing.Provider, "env", missing.EnvVar())
			return nil, nil
		}
		return nil, fmt.Errorf("configure LLM provider: %w", err)
	}

	cfg := shaper.DefaultConfig()
	if mode != "" {
		cfg.Mode = mode
	}
	return shaper.New(provider, cfg, log), nil
}

func newEngine(cmd *cobra.Command, log *logging.Logger) (render.Engine, io.Closer, error) {
	name, _ := cmd.Flags().GetString("engine")
	switch name {
	case "raster", "":
		return render.NewExporter(log), nil, nil
	case "chromium":
		path, _ := cmd.Flags().GetString("chrome-path")
		e := &render.ChromiumEngine{BrowserPath: path, Timeout: chromiumTimeout, Log: log}
		return e, e, nil
	default:
		return nil, nil, fmt.Errorf("invalid --engine %q: want raster or chromium", name)
	}
}

// submit runs req through the pipeline and prints where the file went.
func submit(cmd *cobra.Command, st *store.Store, log *logging.Logger, sh pipeline.Shaper, req paper.Request) error {
	engine, closer, err := newEngine(cmd, log)
	if err != nil {
		return err
	}
	if closer != nil {
		defer closer.Close()
	}

	p := &pipeline.Pipeline{
		Shaper:   sh,
		Engine:   engine,
		Notifier: notify.NewConsole(cmd.ErrOrStderr()),
		Tests:    st.SavedTestRepo(),
		OutDir:   resolveOutDir(cmd),
		Log:      log,
	}
	p.IncludeAnswers, _ = cmd.Flags().GetBool("answers")
	if html, _ := cmd.Flags().GetBool("html"); html {
		p.Preview = &render.HTMLRenderer{}
	}

	out, err := p.Submit(cmd.Context(), req)
	if err != nil {
		var verr *paper.ValidationError
		var eerr *render.ExportError
		if errors.As(err, &verr) || errors.As(err, &eerr) {
			return &reportedError{err: err}
		}
		return err
	}

	w := cmd.OutOrStdout()
	fmt.Fprintln(w, out.Path)
	if out.PreviewPath != "" {
		fmt.Fprintln(w, out.PreviewPath)
	}
	if out.LayoutText != "" {
		if out.LayoutPath != "" {
			fmt.Fprintln(w, out.LayoutPath)
		}
		fmt.Fprintln(w)
		fmt.Fprintln(w, theme.Title.Render("Optimized Test Layout"))
		fmt.Fprintln(w, out.LayoutText)
	}
	return nil
}
