package llm

import (
	"context"
	"errors"
	"math"
	"testing"
)

func TestNewProvider_Mock(t *testing.T) {
	p, err := NewProvider(context.Background(), Config{Provider: ProviderMock}, nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ModelID() != "mock" {
		t.Fatalf("expected mock provider, got %q", p.ModelID())
	}
}

func TestNewProvider_WrapsBase(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = ProviderOpenAI
	cfg.OpenAI.APIKey = "sk-test"

	p, err := NewProvider(context.Background(), cfg, nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := p.(*timeoutProvider); !ok {
		t.Fatalf("expected outermost timeout decorator, got %T", p)
	}
	if p.ModelID() != "gpt-4o-mini" {
		t.Fatalf("model = %q", p.ModelID())
	}
}

func TestNewProvider_MissingKey(t *testing.T) {
	_, err := NewProvider(context.Background(), Config{Provider: ProviderGemini}, nil, nil)
	var missing *ErrMissingAPIKey
	if !errors.As(err, &missing) {
		t.Fatalf("expected ErrMissingAPIKey, got %v", err)
	}
}

func TestNewProviderFromEnv(t *testing.T) {
	t.Run("nothing configured", func(t *testing.T) {
		clearLLMEnv(t)
		_, _, err := NewProviderFromEnv(context.Background(), nil, nil)
		var missing *ErrMissingAPIKey
		if !errors.As(err, &missing) {
			t.Fatalf("expected ErrMissingAPIKey, got %v", err)
		}
	})

	t.Run("discovers vendor key", func(t *testing.T) {
		clearLLMEnv(t)
		t.Setenv("OPENROUTER_API_KEY", "sk-or")
		_, cfg, err := NewProviderFromEnv(context.Background(), nil, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Provider != ProviderOpenRouter {
			t.Fatalf("provider = %q", cfg.Provider)
		}
	})

	t.Run("explicit provider is not overridden", func(t *testing.T) {
		clearLLMEnv(t)
		t.Setenv("PAPERSMITH_LLM_PROVIDER", "anthropic")
		t.Setenv("OPENAI_API_KEY", "sk-oai")
		_, _, err := NewProviderFromEnv(context.Background(), nil, nil)
		if err == nil {
			t.Fatal("expected missing anthropic key error")
		}
	})

	t.Run("mock", func(t *testing.T) {
		clearLLMEnv(t)
		t.Setenv("PAPERSMITH_LLM_PROVIDER", "mock")
		p, _, err := NewProviderFromEnv(context.Background(), nil, nil)
		if err != nil || p.ModelID() != "mock" {
			t.Fatalf("expected mock provider, got %v / %v", p, err)
		}
	})
}

func TestLookupCost(t *testing.T) {
	c := LookupCost("gpt-4o-mini")
	if c == nil {
		t.Fatal("expected gpt-4o-mini pricing")
	}
	if got := c.Cost(1_000_000, 1_000_000); math.Abs(got-0.75) > 1e-9 {
		t.Fatalf("cost = %v, want 0.75", got)
	}
	if LookupCost("openai/gpt-4o-mini") == nil {
		t.Fatal("expected vendor-prefixed id to resolve")
	}
	if LookupCost("unknown-model") != nil {
		t.Fatal("expected nil for unknown model")
	}
}
