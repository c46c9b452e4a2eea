package paper

import (
	"fmt"
	"strings"
)

const (
	MinFontSize   = 1
	MaxFontSize   = 72
	MinPagePx     = 100
	MinPageCm     = 1.0
	DefaultFont   = 12
	DefaultWidth  = 2480 // A4 at 300 dpi
	DefaultHeight = 3508
)

// ValidationError describes the first rule a Request violates.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid request: %s: %s", e.Field, e.Message)
}

// Validate checks the request invariants. It returns nil when the request
// can be submitted, or a *ValidationError for the first failing field.
func (r Request) Validate() *ValidationError {
	if strings.TrimSpace(r.Title) == "" {
		return &ValidationError{Field: "title", Message: "test title is required"}
	}
	if r.FontSize < MinFontSize || r.FontSize > MaxFontSize {
		return &ValidationError{
			Field:   "fontSize",
			Message: fmt.Sprintf("must be between %d and %d, got %d", MinFontSize, MaxFontSize, r.FontSize),
		}
	}
	if r.PageWidthPx < MinPagePx {
		return &ValidationError{Field: "pageWidthPx", Message: fmt.Sprintf("must be at least %d", MinPagePx)}
	}
	if r.PageHeightPx < MinPagePx {
		return &ValidationError{Field: "pageHeightPx", Message: fmt.Sprintf("must be at least %d", MinPagePx)}
	}
	if r.PageWidthCm != nil && *r.PageWidthCm < MinPageCm {
		return &ValidationError{Field: "pageWidthCm", Message: "must be at least 1"}
	}
	if r.PageHeightCm != nil && *r.PageHeightCm < MinPageCm {
		return &ValidationError{Field: "pageHeightCm", Message: "must be at least 1"}
	}
	for i, s := range r.Sections {
		if len(s.Questions) == 0 {
			return &ValidationError{
				Field:   fmt.Sprintf("sections[%d]", i),
				Message: fmt.Sprintf("section %q has no questions", s.Title),
			}
		}
		for j, q := range s.Questions {
			if strings.TrimSpace(q) == "" {
				return &ValidationError{
					Field:   fmt.Sprintf("sections[%d].questions[%d]", i, j),
					Message: "question cannot be empty",
				}
			}
		}
	}
	return nil
}
