// Package shaper sends test content to a language model and returns it in
// the shape the normalizer understands.
package shaper

import (
	"context"
	"errors"
	"strings"

	"github.com/abhisek/papersmith/internal/llm"
	"github.com/abhisek/papersmith/internal/logging"
	"github.com/abhisek/papersmith/internal/paper"
)

// Func adapts a plain function to the Shape half of a Shaper.
type Func func(ctx context.Context, req paper.Request) (paper.Result, error)

func (f Func) Shape(ctx context.Context, req paper.Request) (paper.Result, error) {
	return f(ctx, req)
}

// Shaper runs the paper-shape and guess-paper calls against an llm.Provider.
type Shaper struct {
	provider llm.Provider
	config   Config
	log      *logging.Logger
}

// New creates a Shaper. A nil logger discards output.
func New(provider llm.Provider, cfg Config, log *logging.Logger) *Shaper {
	return &Shaper{provider: provider, config: cfg, log: logging.OrNop(log)}
}

// Shape asks the model to restructure req. A reply that does not match the
// response schema yields paper.Missing() and a nil error; the caller renders
// the request as submitted. Transport and provider failures are returned as
// *CallError.
func (s *Shaper) Shape(ctx context.Context, req paper.Request) (paper.Result, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposePaperShape)

	schema, system := PaperSchema, shapeSystemPrompt
	if s.config.Mode == ModeLayout {
		schema, system = LayoutSchema, layoutSystemPrompt
	}

	resp, err := s.provider.Generate(ctx, llm.Request{
		System:      system,
		Messages:    llm.UserMessage(buildShapeMessage(req)),
		Schema:      schema,
		MaxTokens:   s.config.MaxTokens,
		Temperature: s.config.Temperature,
	})
	if err != nil {
		var invalid *llm.ErrInvalidResponse
		if errors.As(err, &invalid) {
			s.log.Warn("shape response did not match schema", "schema", schema.Name, "error", err)
			return paper.Missing(), nil
		}
		return paper.Missing(), &CallError{Op: llm.PurposePaperShape, Err: err}
	}

	if s.config.Mode == ModeLayout {
		var out layoutOutput
		if err := resp.Decode(&out); err != nil {
			s.log.Warn("shape response could not be decoded", "error", err)
			return paper.Missing(), nil
		}
		if strings.TrimSpace(out.OptimizedLayout) == "" {
			return paper.Missing(), nil
		}
		return paper.FreeText(out.OptimizedLayout), nil
	}

	var out paperOutput
	if err := resp.Decode(&out); err != nil {
		s.log.Warn("shape response could not be decoded", "error", err)
		return paper.Missing(), nil
	}

	s.log.Debug("paper shaped", "model", resp.Model, "sections", len(out.Sections))
	return paper.Structured(out.TestTitle, toSections(out.Sections)), nil
}

// GuessPaper asks the model for a practice paper on subject at the given
// difficulty.
func (s *Shaper) GuessPaper(ctx context.Context, subject, difficulty string) (*GuessPaper, error) {
	subject = strings.TrimSpace(subject)
	if subject == "" {
		return nil, ErrNoSubject
	}
	d, err := ParseDifficulty(difficulty)
	if err != nil {
		return nil, err
	}

	ctx = llm.WithPurpose(ctx, llm.PurposeGuessPaper)

	resp, err := s.provider.Generate(ctx, llm.Request{
		System:      guessSystemPrompt,
		Messages:    llm.UserMessage(buildGuessMessage(subject, d)),
		Schema:      GuessPaperSchema,
		MaxTokens:   s.config.GuessMaxTokens,
		Temperature: s.config.GuessTemperature,
	})
	if err != nil {
		return nil, &CallError{Op: llm.PurposeGuessPaper, Err: err}
	}

	var out guessOutput
	if err := resp.Decode(&out); err != nil {
		return nil, &CallError{Op: llm.PurposeGuessPaper, Err: err}
	}

	gp := &GuessPaper{
		Subject:      subject,
		Difficulty:   d,
		Title:        strings.TrimSpace(out.Title),
		Introduction: strings.TrimSpace(out.Introduction),
		Sections:     toSections(out.Sections),
	}
	if gp.Title == "" {
		gp.Title = defaultGuessTitle(subject)
	}

	s.log.Debug("guess paper generated", "subject", subject, "difficulty", d, "sections", len(gp.Sections))
	return gp, nil
}

func toSections(in []sectionOutput) []paper.Section {
	if len(in) == 0 {
		return nil
	}
	out := make([]paper.Section, len(in))
	for i, s := range in {
		out[i] = paper.Section{Title: s.Title, Questions: s.Questions}
		if len(s.Answers) > 0 {
			out[i].Answers = s.Answers
		}
	}
	return out
}
