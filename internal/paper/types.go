package paper

import "fmt"

// Section is a named, ordered group of questions.
type Section struct {
	Title     string   `json:"title" yaml:"title"`
	Questions []string `json:"questions" yaml:"questions"`

	// Answers is populated only by structured LLM results that carry an
	// answer per question. Nil for user-authored sections.
	Answers []string `json:"answers,omitempty" yaml:"answers,omitempty"`
}

// Numbered returns the section's questions prefixed with their 1-based
// ordinal, e.g. "1. What is 2+2?".
func (s Section) Numbered() []string {
	out := make([]string, len(s.Questions))
	for i, q := range s.Questions {
		out[i] = fmt.Sprintf("%d. %s", i+1, q)
	}
	return out
}

// Request is the user-authored content of a test paper as submitted.
type Request struct {
	Title        string    `json:"title" yaml:"title"`
	Instructions string    `json:"instructions" yaml:"instructions"`
	Sections     []Section `json:"sections" yaml:"sections"`

	// FontSize is the body text size in CSS pixels (1-72).
	FontSize int `json:"fontSize" yaml:"fontSize"`

	PageWidthPx  int `json:"pageWidthPx" yaml:"pageWidthPx"`
	PageHeightPx int `json:"pageHeightPx" yaml:"pageHeightPx"`

	// Physical page size. Optional.
	PageWidthCm  *float64 `json:"pageWidthCm,omitempty" yaml:"pageWidthCm,omitempty"`
	PageHeightCm *float64 `json:"pageHeightCm,omitempty" yaml:"pageHeightCm,omitempty"`
}

// Document is the reconciled, always-renderable model of a test paper.
type Document struct {
	Title        string
	Instructions string
	Sections     []Section
}

// HasAnswers reports whether any section carries at least one answer.
func (d Document) HasAnswers() bool {
	for _, s := range d.Sections {
		if len(s.Answers) > 0 {
			return true
		}
	}
	return false
}

// QuestionCount returns the total number of questions across sections.
func (d Document) QuestionCount() int {
	n := 0
	for _, s := range d.Sections {
		n += len(s.Questions)
	}
	return n
}

// CloneSections deep-copies a section list so callers never alias the input.
func CloneSections(in []Section) []Section {
	if in == nil {
		return nil
	}
	out := make([]Section, len(in))
	for i, s := range in {
		out[i] = Section{
			Title:     s.Title,
			Questions: append([]string(nil), s.Questions...),
		}
		if s.Answers != nil {
			out[i].Answers = append([]string(nil), s.Answers...)
		}
	}
	return out
}
