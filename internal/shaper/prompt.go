package shaper

import (
	"fmt"
	"strings"

	"github.com/abhisek/papersmith/internal/paper"
)

const shapeSystemPrompt = `You are an expert layout designer preparing printed test papers.

Rules:
- Keep every question the teacher wrote. Do not invent, drop, or reorder questions.
- Fix obvious typos and spacing, but keep the wording and the meaning.
- Keep sections in the given order and keep their titles unless a title is empty.
- Do not number questions; numbering is added when the paper is printed.
- Aim for a paper that fits within one or two pages at the given font size and page size.
- Leave answers empty unless the teacher supplied them.`

const layoutSystemPrompt = `You are an expert layout designer preparing printed test papers.

Lay out the given test as plain text that fits within one or two pages at the
given font size and page size. Keep every question and the section order.`

const guessSystemPrompt = `You are an expert educator writing practice papers for students.

Rules:
- Write a practice paper for the given subject and difficulty.
- Use multiple sections, each with a title, a list of questions, and the corresponding answers.
- Give exactly one answer per question, in the same order as the questions.
- Start with a short introduction telling the student how to approach the paper.
- Use plain text only. No Markdown, no LaTeX.`

// buildShapeMessage lists every request field the model needs to lay out the
// paper.
func buildShapeMessage(req paper.Request) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Test title: %s\n", req.Title)
	if strings.TrimSpace(req.Instructions) != "" {
		fmt.Fprintf(&b, "Instructions: %s\n", req.Instructions)
	}
	fmt.Fprintf(&b, "Font size: %dpx\n", req.FontSize)
	fmt.Fprintf(&b, "Page size: %dx%d px", req.PageWidthPx, req.PageHeightPx)
	if req.PageWidthCm != nil && req.PageHeightCm != nil {
		fmt.Fprintf(&b, " (%.1fx%.1f cm)", *req.PageWidthCm, *req.PageHeightCm)
	}
	b.WriteString("\n")

	if len(req.Sections) == 0 {
		b.WriteString("\nSections: none\n")
		return b.String()
	}

	for _, s := range req.Sections {
		fmt.Fprintf(&b, "\nSection: %s\n", s.Title)
		for _, q := range s.Numbered() {
			fmt.Fprintf(&b, "  %s\n", q)
		}
	}
	return b.String()
}

func buildGuessMessage(subject string, difficulty Difficulty) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Subject: %s\n", subject)
	fmt.Fprintf(&b, "Difficulty: %s\n", difficulty)
	return b.String()
}
