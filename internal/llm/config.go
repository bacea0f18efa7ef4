package llm

import (
	"fmt"
	"os"
	"time"
)

// Config selects and configures the provider behind the coach. It is
// loaded by viper under the "llm" key.
type Config struct {
	// Provider is one of anthropic, openai, gemini, openrouter or mock.
	// Empty turns the coach off.
	Provider string `mapstructure:"provider"`

	Anthropic  AnthropicConfig  `mapstructure:"anthropic"`
	OpenAI     OpenAIConfig     `mapstructure:"openai"`
	Gemini     GeminiConfig     `mapstructure:"gemini"`
	OpenRouter OpenRouterConfig `mapstructure:"openrouter"`
	Retry      RetryConfig      `mapstructure:"retry"`

	// Timeout bounds one coach review including retries.
	Timeout time.Duration `mapstructure:"timeout"`
}

type AnthropicConfig struct {
	APIKey string `mapstructure:"api_key"`
	Model  string `mapstructure:"model"`
}

type OpenAIConfig struct {
	APIKey string `mapstructure:"api_key"`
	Model  string `mapstructure:"model"`
	// BaseURL points the client at an OpenAI-compatible server.
	BaseURL string `mapstructure:"base_url"`
}

type GeminiConfig struct {
	APIKey string `mapstructure:"api_key"`
	Model  string `mapstructure:"model"`
}

type OpenRouterConfig struct {
	APIKey  string `mapstructure:"api_key"`
	Model   string `mapstructure:"model"`
	BaseURL string `mapstructure:"base_url"`
}

// RetryConfig is the backoff policy for transient provider failures.
type RetryConfig struct {
	MaxAttempts int           `mapstructure:"max_attempts"`
	InitialWait time.Duration `mapstructure:"initial_wait"`
	MaxWait     time.Duration `mapstructure:"max_wait"`
	Multiplier  float64       `mapstructure:"multiplier"`
}

// DefaultConfig has every model and the retry policy filled in but no
// provider chosen.
func DefaultConfig() Config {
	return Config{
		Anthropic:  AnthropicConfig{Model: "claude-haiku"},
		OpenAI:     OpenAIConfig{Model: "gpt-4o-mini"},
		Gemini:     GeminiConfig{Model: "gemini-flash"},
		OpenRouter: OpenRouterConfig{Model: "google/gemini-2.0-flash-exp"},
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2,
		},
		Timeout: 30 * time.Second,
	}
}

func (c Config) Enabled() bool {
	return c.Provider != ""
}

// DiscoverConfig picks the first backend whose conventional API key
// variable is set, trying gemini, openai, anthropic and then openrouter.
// base is returned unchanged with false when no key is found.
func DiscoverConfig(base Config) (Config, bool) {
	for _, b := range backends {
		k := os.Getenv(b.discoverEnv)
		if k == "" {
			continue
		}
		cfg := base
		cfg.Provider = b.name
		*b.key(&cfg) = k
		return cfg, true
	}
	return base, false
}

// Validate checks that the chosen provider is known and has its key.
func (c Config) Validate() error {
	if c.Provider == "" {
		return ErrNoProvider
	}
	if c.Provider == mockName {
		return nil
	}
	b, ok := lookupBackend(c.Provider)
	if !ok {
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	if *b.key(&c) == "" {
		return fmt.Errorf("%s is required for the %s provider", b.keyEnv(), b.name)
	}
	return nil
}
