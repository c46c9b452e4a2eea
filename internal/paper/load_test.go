package paper

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseRequest_YAML(t *testing.T) {
	src := []byte(`
title: Algebra Quiz
instructions: Answer all questions.
fontSize: 14
sections:
  - title: MCQs
    questions:
      - "2+2=?"
`)
	r, err := ParseRequest(src)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if r.Title != "Algebra Quiz" || r.FontSize != 14 {
		t.Errorf("unexpected request: %+v", r)
	}
	if len(r.Sections) != 1 || r.Sections[0].Questions[0] != "2+2=?" {
		t.Errorf("unexpected sections: %+v", r.Sections)
	}
	if r.PageWidthPx != DefaultWidth || r.PageHeightCm == nil {
		t.Errorf("defaults not applied: %+v", r)
	}
}

func TestParseRequest_JSON(t *testing.T) {
	src := []byte(`{"title":"Physics","sections":[{"title":"Short","questions":["What is force?"]}],"pageWidthPx":800,"pageHeightPx":1100}`)
	r, err := ParseRequest(src)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if r.PageWidthPx != 800 || r.PageHeightPx != 1100 {
		t.Errorf("page size not kept: %+v", r)
	}
	if r.FontSize != DefaultFont {
		t.Errorf("font default not applied: %d", r.FontSize)
	}
}

func TestParseRequest_UnknownField(t *testing.T) {
	if _, err := ParseRequest([]byte("title: x\nbogus: 1\n")); err == nil {
		t.Fatal("expected error for unknown field")
	}
}

func TestLoadRequest_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "req.yaml")
	if err := os.WriteFile(path, []byte("title: From File\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	r, err := LoadRequest(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if r.Title != "From File" {
		t.Errorf("title = %q", r.Title)
	}

	if _, err := LoadRequest(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
