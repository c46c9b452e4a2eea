package shaper

import "github.com/abhisek/papersmith/internal/llm"

// sectionDefinition is shared by the paper and guess-paper schemas. Every
// property is required so strict structured-output modes accept it;
// answers may be an empty array.
var sectionDefinition = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"title": map[string]any{
			"type":        "string",
			"description": "Section heading, e.g. \"Multiple Choice Questions\"",
		},
		"questions": map[string]any{
			"type":        "array",
			"items":       map[string]any{"type": "string"},
			"description": "Question texts in display order, without numbering",
		},
		"answers": map[string]any{
			"type":        "array",
			"items":       map[string]any{"type": "string"},
			"description": "One answer per question, in the same order, or an empty array",
		},
	},
	"required":             []any{"title", "questions", "answers"},
	"additionalProperties": false,
}

// PaperSchema is the structured shape of a formatted test paper.
var PaperSchema = &llm.Schema{
	Name:        "paper-shape",
	Description: "A test paper title and its ordered sections of questions",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"testTitle": map[string]any{
				"type":        "string",
				"description": "The paper title",
			},
			"sections": map[string]any{
				"type":  "array",
				"items": sectionDefinition,
			},
		},
		"required":             []any{"testTitle", "sections"},
		"additionalProperties": false,
	},
}

// LayoutSchema asks for a single free-text layout instead of structure.
var LayoutSchema = &llm.Schema{
	Name:        "paper-layout",
	Description: "A free-text layout of a test paper sized to the target page",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"optimizedLayout": map[string]any{
				"type":        "string",
				"description": "The full paper laid out as plain text",
			},
		},
		"required":             []any{"optimizedLayout"},
		"additionalProperties": false,
	},
}

// GuessPaperSchema is the shape of a generated practice paper.
var GuessPaperSchema = &llm.Schema{
	Name:        "guess-paper",
	Description: "A practice paper with sections of questions and their answers",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title":        map[string]any{"type": "string"},
			"introduction": map[string]any{"type": "string"},
			"sections": map[string]any{
				"type":  "array",
				"items": sectionDefinition,
			},
		},
		"required":             []any{"title", "introduction", "sections"},
		"additionalProperties": false,
	},
}

type sectionOutput struct {
	Title     string   `json:"title"`
	Questions []string `json:"questions"`
	Answers   []string `json:"answers"`
}

type paperOutput struct {
	TestTitle string          `json:"testTitle"`
	Sections  []sectionOutput `json:"sections"`
}

type layoutOutput struct {
	OptimizedLayout string `json:"optimizedLayout"`
}

type guessOutput struct {
	Title        string          `json:"title"`
	Introduction string          `json:"introduction"`
	Sections     []sectionOutput `json:"sections"`
}
