package llm

import (
	"context"
	"fmt"
	"os"

	"github.com/abhisek/papersmith/internal/logging"
)

// NewProvider creates a Provider from configuration, wrapped as
// timeout → retry → logging → base. rec may be nil.
func NewProvider(ctx context.Context, cfg Config, rec EventRecorder, log *logging.Logger) (Provider, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var base Provider
	var err error

	switch cfg.Provider {
	case ProviderAnthropic:
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case ProviderOpenAI:
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case ProviderGemini:
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case ProviderOpenRouter:
		base, err = NewOpenRouterProvider(cfg.OpenRouter)
	case ProviderMock:
		return NewMockProvider(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	logged := WithLogging(base, cfg.Provider, rec, log)
	retried := WithRetry(logged, cfg.Retry, log)
	return WithTimeout(retried, cfg.Timeout), nil
}

// NewProviderFromEnv builds a provider from PAPERSMITH_* variables. When no
// provider is selected explicitly and no PAPERSMITH_ key is set, the
// vendors' own API key variables are checked. The returned error is
// *ErrMissingAPIKey when nothing usable is configured.
func NewProviderFromEnv(ctx context.Context, rec EventRecorder, log *logging.Logger) (Provider, Config, error) {
	cfg := ConfigFromEnv()
	if err := cfg.Validate(); err != nil {
		if os.Getenv(envPrefix+"LLM_PROVIDER") != "" {
			return nil, cfg, err
		}
		discovered, ok := DiscoverConfig()
		if !ok {
			return nil, cfg, err
		}
		discovered.Timeout = cfg.Timeout
		cfg = discovered
	}

	p, err := NewProvider(ctx, cfg, rec, log)
	if err != nil {
		return nil, cfg, err
	}
	return p, cfg, nil
}
