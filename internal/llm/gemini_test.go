package llm

import "testing"

func TestGeminiModelMapping(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"gemini-flash", "gemini-2.5-flash"},
		{"gemini-pro", "gemini-2.5-pro"},
		{"gemini-2.0-flash", "gemini-2.0-flash"},
	}
	for _, tt := range tests {
		if got := resolveModel(tt.input, geminiModels); got != tt.expected {
			t.Errorf("resolveModel(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestBuildGeminiSchema(t *testing.T) {
	def := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"testTitle": map[string]any{"type": "string"},
			"difficulty": map[string]any{
				"type": "string",
				"enum": []string{"easy", "medium", "hard"},
			},
			"sections": map[string]any{
				"type":     "array",
				"minItems": 1,
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"questions": map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
					},
					"required": []any{"questions"},
				},
			},
		},
		"required": []string{"testTitle", "sections"},
	}

	schema := buildGeminiSchema(def)

	if schema.Type != "OBJECT" {
		t.Fatalf("expected OBJECT type, got %s", schema.Type)
	}
	if len(schema.Properties) != 3 {
		t.Fatalf("expected 3 properties, got %d", len(schema.Properties))
	}
	if schema.Properties["testTitle"].Type != "STRING" {
		t.Fatalf("expected STRING for testTitle, got %s", schema.Properties["testTitle"].Type)
	}
	if len(schema.Properties["difficulty"].Enum) != 3 {
		t.Fatalf("expected 3 enum values, got %d", len(schema.Properties["difficulty"].Enum))
	}

	sections := schema.Properties["sections"]
	if sections.Type != "ARRAY" {
		t.Fatalf("expected ARRAY for sections, got %s", sections.Type)
	}
	if sections.MinItems == nil || *sections.MinItems != 1 {
		t.Fatalf("expected minItems 1, got %v", sections.MinItems)
	}
	if sections.Items.Properties["questions"].Items.Type != "STRING" {
		t.Fatal("expected nested question items to be STRING")
	}
	if len(sections.Items.Required) != 1 {
		t.Fatalf("expected []any required list to convert, got %v", sections.Items.Required)
	}
	if len(schema.Required) != 2 {
		t.Fatalf("expected []string required list to convert, got %v", schema.Required)
	}
}
