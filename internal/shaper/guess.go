package shaper

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/abhisek/papersmith/internal/paper"
)

// Difficulty is the target level of a guess paper.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// ParseDifficulty accepts easy, medium or hard in any case.
func ParseDifficulty(s string) (Difficulty, error) {
	switch d := Difficulty(strings.ToLower(strings.TrimSpace(s))); d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return d, nil
	default:
		return "", &ErrInvalidDifficulty{Value: s}
	}
}

func (d Difficulty) String() string { return string(d) }

// GuessPaper is a generated practice paper. Every section carries one
// answer per question when the model followed instructions.
type GuessPaper struct {
	Subject      string
	Difficulty   Difficulty
	Title        string
	Introduction string
	Sections     []paper.Section
}

// ToRequest converts the paper into a submittable request. The introduction
// becomes the instructions; answers are dropped because requests carry
// questions only.
func (g *GuessPaper) ToRequest() paper.Request {
	r := paper.Request{
		Title:        g.Title,
		Instructions: g.Introduction,
		Sections:     make([]paper.Section, 0, len(g.Sections)),
	}
	for _, s := range g.Sections {
		r.Sections = append(r.Sections, paper.Section{
			Title:     s.Title,
			Questions: append([]string(nil), s.Questions...),
		})
	}
	r.ApplyDefaults()
	return r
}

// Result returns the paper as a structured shaping result, answers
// included, so it can be normalized against ToRequest without a second call.
func (g *GuessPaper) Result() paper.Result {
	return paper.Structured(g.Title, g.Sections)
}

func defaultGuessTitle(subject string) string {
	return cases.Title(language.English).String(subject) + " Guess Paper"
}
