package paper

import "testing"

func validRequest() Request {
	return NewStandardRequest("Algebra Quiz", "Answer all questions.",
		[]string{"2+2=?"}, []string{"Define a variable."}, []string{"Prove that 1+1=2."})
}

func TestValidate_ValidRequest(t *testing.T) {
	if err := validRequest().Validate(); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
}

func TestValidate_Rules(t *testing.T) {
	small := 0.5
	tests := []struct {
		name  string
		edit  func(r *Request)
		field string
	}{
		{"empty title", func(r *Request) { r.Title = "  " }, "title"},
		{"font too small", func(r *Request) { r.FontSize = 0 }, "fontSize"},
		{"font too large", func(r *Request) { r.FontSize = 73 }, "fontSize"},
		{"narrow page", func(r *Request) { r.PageWidthPx = 99 }, "pageWidthPx"},
		{"short page", func(r *Request) { r.PageHeightPx = 10 }, "pageHeightPx"},
		{"tiny cm width", func(r *Request) { r.PageWidthCm = &small }, "pageWidthCm"},
		{"tiny cm height", func(r *Request) { r.PageHeightCm = &small }, "pageHeightCm"},
		{"section without questions", func(r *Request) { r.Sections[1].Questions = nil }, "sections[1]"},
		{"blank question", func(r *Request) { r.Sections[2].Questions = []string{"ok", " "} }, "sections[2].questions[1]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := validRequest()
			tt.edit(&r)
			err := r.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if err.Field != tt.field {
				t.Errorf("field = %q, want %q", err.Field, tt.field)
			}
		})
	}
}

func TestValidate_OptionalCmMayBeNil(t *testing.T) {
	r := validRequest()
	r.PageWidthCm = nil
	r.PageHeightCm = nil
	if err := r.Validate(); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
}

func TestNewStandardRequest_SectionOrderAndDefaults(t *testing.T) {
	r := validRequest()
	want := []string{SectionMCQ, SectionShort, SectionLong}
	if len(r.Sections) != len(want) {
		t.Fatalf("expected %d sections, got %d", len(want), len(r.Sections))
	}
	for i, title := range want {
		if r.Sections[i].Title != title {
			t.Errorf("section %d = %q, want %q", i, r.Sections[i].Title, title)
		}
	}
	if r.FontSize != DefaultFont || r.PageWidthPx != DefaultWidth || r.PageHeightPx != DefaultHeight {
		t.Errorf("unexpected layout defaults: %+v", r)
	}
	if r.PageWidthCm == nil || *r.PageWidthCm != 21 {
		t.Errorf("expected 21cm default width")
	}
}

func TestSection_NumberedResetsPerSection(t *testing.T) {
	a := Section{Title: "A", Questions: []string{"x", "y"}}
	b := Section{Title: "B", Questions: []string{"z"}}

	if got := a.Numbered(); got[0] != "1. x" || got[1] != "2. y" {
		t.Errorf("unexpected numbering: %v", got)
	}
	if got := b.Numbered(); got[0] != "1. z" {
		t.Errorf("ordinal should reset per section, got %v", got)
	}
}

func TestDropEmptySections(t *testing.T) {
	r := NewStandardRequest("Quiz", "", nil, []string{"Define a set."}, nil)
	r.DropEmptySections()
	if len(r.Sections) != 1 || r.Sections[0].Title != SectionShort {
		t.Fatalf("sections = %+v, want only %q", r.Sections, SectionShort)
	}
	if err := r.Validate(); err != nil {
		t.Fatalf("expected valid request, got %v", err)
	}
}
