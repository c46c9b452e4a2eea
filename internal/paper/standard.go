package paper

// Section titles used by the three-part paper form.
const (
	SectionMCQ   = "Multiple Choice Questions"
	SectionShort = "Short Questions"
	SectionLong  = "Long Questions"
)

// NewStandardRequest builds a request in the shape of the paper form:
// one section each for multiple choice, short, and long questions, in that
// order, with A4 layout defaults.
func NewStandardRequest(title, instructions string, mcqs, short, long []string) Request {
	r := Request{
		Title:        title,
		Instructions: instructions,
		Sections: []Section{
			{Title: SectionMCQ, Questions: append([]string(nil), mcqs...)},
			{Title: SectionShort, Questions: append([]string(nil), short...)},
			{Title: SectionLong, Questions: append([]string(nil), long...)},
		},
	}
	r.ApplyDefaults()
	return r
}

// DropEmptySections removes sections without questions. A blank part of the
// paper form is left out rather than rejected.
func (r *Request) DropEmptySections() {
	kept := r.Sections[:0]
	for _, s := range r.Sections {
		if len(s.Questions) > 0 {
			kept = append(kept, s)
		}
	}
	r.Sections = kept
}

// ApplyDefaults fills unset layout fields with A4 defaults.
func (r *Request) ApplyDefaults() {
	if r.FontSize == 0 {
		r.FontSize = DefaultFont
	}
	if r.PageWidthPx == 0 {
		r.PageWidthPx = DefaultWidth
	}
	if r.PageHeightPx == 0 {
		r.PageHeightPx = DefaultHeight
	}
	if r.PageWidthCm == nil {
		w := 21.0
		r.PageWidthCm = &w
	}
	if r.PageHeightCm == nil {
		h := 29.7
		r.PageHeightCm = &h
	}
}
