package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
)

func TestMockProvider_ReplaysInOrder(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{"testTitle":"A"}`), Usage: Usage{InputTokens: 10, OutputTokens: 5, TotalTokens: 15}},
		MockResponse{Content: json.RawMessage(`{"testTitle":"B"}`)},
	)

	resp1, err := mock.Generate(context.Background(), Request{Messages: UserMessage("first")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp1.Content) != `{"testTitle":"A"}` {
		t.Fatalf("unexpected first content: %s", resp1.Content)
	}
	if resp1.Usage.InputTokens != 10 {
		t.Fatalf("expected 10 input tokens, got %d", resp1.Usage.InputTokens)
	}
	if resp1.StopReason != "end" {
		t.Fatalf("expected stop reason 'end', got %q", resp1.StopReason)
	}

	resp2, err := mock.Generate(context.Background(), Request{Messages: UserMessage("second")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp2.Content) != `{"testTitle":"B"}` {
		t.Fatalf("unexpected second content: %s", resp2.Content)
	}
}

func TestMockProvider_EmptyQueueReturnsError(t *testing.T) {
	mock := NewMockProvider()
	_, err := mock.Generate(context.Background(), Request{})
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrProviderUnavailable, got: %T", err)
	}
}

func TestMockProvider_RecordsCalls(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(`{}`)})

	_, _ = mock.Generate(context.Background(), Request{System: "sys", Messages: UserMessage("hello")})

	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.CallCount())
	}
	last, ok := mock.LastRequest()
	if !ok || last.System != "sys" {
		t.Fatalf("expected last request with system 'sys', got %+v", last)
	}
}

func TestMockProvider_ValidatesAgainstSchema(t *testing.T) {
	schema := &Schema{
		Name: "mock-validation",
		Definition: map[string]any{
			"type":     "object",
			"required": []string{"title"},
			"properties": map[string]any{
				"title": map[string]any{"type": "string"},
			},
		},
	}
	mock := NewMockProvider(MockJSON(map[string]any{"heading": "x"}))

	_, err := mock.Generate(context.Background(), Request{Schema: schema})
	var inv *ErrInvalidResponse
	if !errors.As(err, &inv) {
		t.Fatalf("expected ErrInvalidResponse, got: %v", err)
	}
}

func TestMockProvider_ReturnsConfiguredError(t *testing.T) {
	mock := NewMockProvider(MockResponse{Err: &ErrRateLimit{}})

	_, err := mock.Generate(context.Background(), Request{})
	var rl *ErrRateLimit
	if !errors.As(err, &rl) {
		t.Fatalf("expected ErrRateLimit, got: %T", err)
	}
}

func TestResponse_Decode(t *testing.T) {
	resp := &Response{Content: json.RawMessage(`{"testTitle":"Algebra"}`)}
	var out struct {
		TestTitle string `json:"testTitle"`
	}
	if err := resp.Decode(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.TestTitle != "Algebra" {
		t.Fatalf("expected Algebra, got %q", out.TestTitle)
	}

	bad := &Response{Content: json.RawMessage(`not json`)}
	var inv *ErrInvalidResponse
	if err := bad.Decode(&out); !errors.As(err, &inv) {
		t.Fatalf("expected ErrInvalidResponse, got %v", err)
	}
}

func TestPurposeContext(t *testing.T) {
	ctx := context.Background()
	if p := PurposeFrom(ctx); p != "unknown" {
		t.Fatalf("expected 'unknown', got %q", p)
	}

	ctx = WithPurpose(ctx, PurposePaperShape)
	if p := PurposeFrom(ctx); p != "paper-shape" {
		t.Fatalf("expected 'paper-shape', got %q", p)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
		envVar  string
	}{
		{"anthropic without key", Config{Provider: ProviderAnthropic}, true, "PAPERSMITH_ANTHROPIC_API_KEY"},
		{"anthropic with key", Config{Provider: ProviderAnthropic, Anthropic: AnthropicConfig{APIKey: "sk-test"}}, false, ""},
		{"openai without key", Config{Provider: ProviderOpenAI}, true, "PAPERSMITH_OPENAI_API_KEY"},
		{"gemini with key", Config{Provider: ProviderGemini, Gemini: GeminiConfig{APIKey: "g"}}, false, ""},
		{"openrouter without key", Config{Provider: ProviderOpenRouter}, true, "PAPERSMITH_OPENROUTER_API_KEY"},
		{"mock needs no key", Config{Provider: ProviderMock}, false, ""},
		{"unknown provider", Config{Provider: "unknown"}, true, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.envVar == "" {
				return
			}
			var missing *ErrMissingAPIKey
			if !errors.As(err, &missing) {
				t.Fatalf("expected ErrMissingAPIKey, got %T", err)
			}
			if missing.EnvVar() != tt.envVar {
				t.Fatalf("EnvVar() = %q, want %q", missing.EnvVar(), tt.envVar)
			}
		})
	}
}

func clearLLMEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"PAPERSMITH_LLM_PROVIDER", "PAPERSMITH_LLM_TIMEOUT",
		"PAPERSMITH_ANTHROPIC_API_KEY", "PAPERSMITH_ANTHROPIC_MODEL",
		"PAPERSMITH_OPENAI_API_KEY", "PAPERSMITH_OPENAI_MODEL", "PAPERSMITH_OPENAI_BASE_URL",
		"PAPERSMITH_GEMINI_API_KEY", "PAPERSMITH_GEMINI_MODEL",
		"PAPERSMITH_OPENROUTER_API_KEY", "PAPERSMITH_OPENROUTER_MODEL", "PAPERSMITH_OPENROUTER_BASE_URL",
		"GEMINI_API_KEY", "OPENAI_API_KEY", "ANTHROPIC_API_KEY", "OPENROUTER_API_KEY",
	} {
		t.Setenv(k, "")
	}
}

func TestConfigFromEnv(t *testing.T) {
	clearLLMEnv(t)
	t.Setenv("PAPERSMITH_LLM_PROVIDER", "openai")
	t.Setenv("PAPERSMITH_OPENAI_API_KEY", "sk-env")
	t.Setenv("PAPERSMITH_OPENAI_BASE_URL", "http://localhost:8080/v1")
	t.Setenv("PAPERSMITH_LLM_TIMEOUT", "5s")

	cfg := ConfigFromEnv()
	if cfg.Provider != ProviderOpenAI {
		t.Fatalf("provider = %q", cfg.Provider)
	}
	if cfg.OpenAI.APIKey != "sk-env" || cfg.OpenAI.BaseURL != "http://localhost:8080/v1" {
		t.Fatalf("unexpected openai config: %+v", cfg.OpenAI)
	}
	if cfg.OpenAI.Model != "gpt-4o-mini" {
		t.Fatalf("expected default model, got %q", cfg.OpenAI.Model)
	}
	if cfg.Timeout.String() != "5s" {
		t.Fatalf("timeout = %s", cfg.Timeout)
	}
}

func TestDiscoverConfig(t *testing.T) {
	clearLLMEnv(t)
	if _, ok := DiscoverConfig(); ok {
		t.Fatal("expected no provider without keys")
	}

	t.Setenv("ANTHROPIC_API_KEY", "sk-ant")
	t.Setenv("OPENAI_API_KEY", "sk-oai")

	cfg, ok := DiscoverConfig()
	if !ok {
		t.Fatal("expected a provider")
	}
	if cfg.Provider != ProviderOpenAI {
		t.Fatalf("OpenAI outranks Anthropic, got %q", cfg.Provider)
	}
}
