package shaper

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/abhisek/papersmith/internal/llm"
	"github.com/abhisek/papersmith/internal/paper"
)

func guessContent(title string) map[string]any {
	return map[string]any{
		"title":        title,
		"introduction": "Attempt every question.",
		"sections": []map[string]any{
			{
				"title":     "Kinematics",
				"questions": []string{"Define velocity.", "State Newton's first law."},
				"answers":   []string{"Rate of change of displacement.", "A body stays at rest or in uniform motion unless acted on."},
			},
		},
	}
}

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		in      string
		want    Difficulty
		wantErr bool
	}{
		{"easy", DifficultyEasy, false},
		{" Medium ", DifficultyMedium, false},
		{"HARD", DifficultyHard, false},
		{"extreme", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		got, err := ParseDifficulty(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseDifficulty(%q) err = %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseDifficulty(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestGuessPaper(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockJSON(guessContent("Physics Practice")))

	gp, err := New(mock, DefaultConfig(), nil).GuessPaper(context.Background(), " physics ", "medium")
	if err != nil {
		t.Fatalf("GuessPaper: %v", err)
	}
	if gp.Subject != "physics" || gp.Difficulty != DifficultyMedium {
		t.Errorf("unexpected subject/difficulty: %q %q", gp.Subject, gp.Difficulty)
	}
	if gp.Title != "Physics Practice" || len(gp.Sections) != 1 {
		t.Fatalf("unexpected paper: %+v", gp)
	}

	req, _ := mock.LastRequest()
	if req.Schema != GuessPaperSchema {
		t.Errorf("schema = %s", req.Schema.Name)
	}
	if msg := req.Messages[0].Content; !strings.Contains(msg, "Subject: physics") || !strings.Contains(msg, "Difficulty: medium") {
		t.Errorf("unexpected message: %q", msg)
	}
}

func TestGuessPaper_DefaultTitle(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockJSON(guessContent("")))

	gp, err := New(mock, DefaultConfig(), nil).GuessPaper(context.Background(), "organic chemistry", "easy")
	if err != nil {
		t.Fatalf("GuessPaper: %v", err)
	}
	if gp.Title != "Organic Chemistry Guess Paper" {
		t.Errorf("title = %q", gp.Title)
	}
}

func TestGuessPaper_InputErrors(t *testing.T) {
	mock := llm.NewMockProvider()
	s := New(mock, DefaultConfig(), nil)

	if _, err := s.GuessPaper(context.Background(), "  ", "easy"); !errors.Is(err, ErrNoSubject) {
		t.Errorf("blank subject err = %v", err)
	}
	var diffErr *ErrInvalidDifficulty
	if _, err := s.GuessPaper(context.Background(), "math", "impossible"); !errors.As(err, &diffErr) {
		t.Errorf("bad difficulty err = %v", err)
	}
	if mock.CallCount() != 0 {
		t.Errorf("provider called %d times for invalid input", mock.CallCount())
	}
}

func TestGuessPaper_ProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockJSON(map[string]any{"title": "only"}))

	_, err := New(mock, DefaultConfig(), nil).GuessPaper(context.Background(), "math", "hard")
	var callErr *CallError
	if !errors.As(err, &callErr) || callErr.Op != llm.PurposeGuessPaper {
		t.Fatalf("expected guess-paper CallError, got %v", err)
	}
}

func TestGuessPaper_Conversions(t *testing.T) {
	gp := &GuessPaper{
		Title:        "Physics Practice",
		Introduction: "Attempt every question.",
		Sections: []paper.Section{{
			Title:     "Kinematics",
			Questions: []string{"Define velocity."},
			Answers:   []string{"Rate of change of displacement."},
		}},
	}

	req := gp.ToRequest()
	if req.Instructions != "Attempt every question." {
		t.Errorf("instructions = %q", req.Instructions)
	}
	if req.Sections[0].Answers != nil {
		t.Error("request sections must not carry answers")
	}
	if err := req.Validate(); err != nil {
		t.Errorf("converted request invalid: %v", err)
	}

	res := gp.Result()
	if res.Kind() != paper.KindStructured || res.Sections()[0].Answers[0] != "Rate of change of displacement." {
		t.Errorf("unexpected result: %+v", res.Sections())
	}
}
