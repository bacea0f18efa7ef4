package llm

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

const mockName = "mock"

// backend ties a provider name to its key and constructor. The order of
// backends is the discovery order.
type backend struct {
	name        string
	discoverEnv string
	key         func(*Config) *string
	build       func(context.Context, Config) (Provider, error)
}

// keyEnv is the stratiz-specific variable that sets the backend's key.
func (b backend) keyEnv() string {
	return "STRATIZ_" + strings.ToUpper(b.name) + "_API_KEY"
}

var backends = []backend{
	{
		name:        "gemini",
		discoverEnv: "GEMINI_API_KEY",
		key:         func(c *Config) *string { return &c.Gemini.APIKey },
		build: func(ctx context.Context, c Config) (Provider, error) {
			return NewGeminiProvider(ctx, c.Gemini)
		},
	},
	{
		name:        "openai",
		discoverEnv: "OPENAI_API_KEY",
		key:         func(c *Config) *string { return &c.OpenAI.APIKey },
		build: func(_ context.Context, c Config) (Provider, error) {
			return NewOpenAIProvider(c.OpenAI)
		},
	},
	{
		name:        "anthropic",
		discoverEnv: "ANTHROPIC_API_KEY",
		key:         func(c *Config) *string { return &c.Anthropic.APIKey },
		build: func(_ context.Context, c Config) (Provider, error) {
			return NewAnthropicProvider(c.Anthropic)
		},
	},
	{
		name:        "openrouter",
		discoverEnv: "OPENROUTER_API_KEY",
		key:         func(c *Config) *string { return &c.OpenRouter.APIKey },
		build: func(_ context.Context, c Config) (Provider, error) {
			return NewOpenRouterProvider(c.OpenRouter)
		},
	},
}

func lookupBackend(name string) (backend, bool) {
	for _, b := range backends {
		if b.name == name {
			return b, true
		}
	}
	return backend{}, false
}

// NewProvider builds the configured provider and wraps it so each call is
// retried and then recorded: caller → retry → logging → backend. The mock
// provider is returned bare. recorder may be nil.
func NewProvider(ctx context.Context, cfg Config, recorder EventRecorder, log *zap.Logger) (Provider, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Provider == mockName {
		return NewMockProvider(), nil
	}

	b, _ := lookupBackend(cfg.Provider)
	base, err := b.build(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", b.name, err)
	}
	return WithRetry(WithLogging(base, b.name, recorder, log), cfg.Retry, log), nil
}
