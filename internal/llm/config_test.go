package llm

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"no provider", func(c *Config) {}, true},
		{"mock", func(c *Config) { c.Provider = "mock" }, false},
		{"anthropic without key", func(c *Config) { c.Provider = "anthropic" }, true},
		{"anthropic with key", func(c *Config) { c.Provider = "anthropic"; c.Anthropic.APIKey = "k" }, false},
		{"openrouter with key", func(c *Config) { c.Provider = "openrouter"; c.OpenRouter.APIKey = "k" }, false},
		{"unknown", func(c *Config) { c.Provider = "llama" }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}

	if err := DefaultConfig().Validate(); !errors.Is(err, ErrNoProvider) {
		t.Errorf("empty provider error = %v, want ErrNoProvider", err)
	}
}

func TestDiscoverConfig(t *testing.T) {
	for _, k := range []string{"GEMINI_API_KEY", "OPENAI_API_KEY", "ANTHROPIC_API_KEY", "OPENROUTER_API_KEY"} {
		t.Setenv(k, "")
	}

	base := DefaultConfig()
	base.Anthropic.Model = "claude-sonnet"

	if _, ok := DiscoverConfig(base); ok {
		t.Fatal("discovered a provider with no keys set")
	}

	t.Setenv("ANTHROPIC_API_KEY", "sk-ant")
	cfg, ok := DiscoverConfig(base)
	if !ok || cfg.Provider != "anthropic" || cfg.Anthropic.APIKey != "sk-ant" {
		t.Fatalf("DiscoverConfig = %+v, %v", cfg, ok)
	}
	if cfg.Anthropic.Model != "claude-sonnet" {
		t.Errorf("discovered config dropped base model: %q", cfg.Anthropic.Model)
	}

	t.Setenv("OPENAI_API_KEY", "sk-oai")
	if cfg, _ := DiscoverConfig(base); cfg.Provider != "openai" {
		t.Errorf("provider = %q, want openai to win over anthropic", cfg.Provider)
	}
}

func TestNewProvider(t *testing.T) {
	cfg := DefaultConfig()
	if _, err := NewProvider(context.Background(), cfg, nil, nil); !errors.Is(err, ErrNoProvider) {
		t.Errorf("NewProvider without provider error = %v", err)
	}

	cfg.Provider = "mock"
	p, err := NewProvider(context.Background(), cfg, nil, nil)
	if err != nil {
		t.Fatalf("NewProvider(mock): %v", err)
	}
	if p.ModelID() != "mock" {
		t.Errorf("ModelID = %q", p.ModelID())
	}

	cfg.Provider = "openai"
	cfg.OpenAI.APIKey = "sk-test"
	p, err = NewProvider(context.Background(), cfg, nil, nil)
	if err != nil {
		t.Fatalf("NewProvider(openai): %v", err)
	}
	if p.ModelID() != "gpt-4o-mini" {
		t.Errorf("ModelID = %q, want gpt-4o-mini", p.ModelID())
	}
}

func TestValidateNamesKeyVariable(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "gemini"
	err := cfg.Validate()
	if err == nil || !strings.Contains(err.Error(), "STRATIZ_GEMINI_API_KEY") {
		t.Errorf("Validate() = %v", err)
	}
}

func TestDiscoveryOrderMatchesBackends(t *testing.T) {
	for _, b := range backends {
		t.Setenv(b.discoverEnv, "")
	}
	for i := len(backends) - 1; i >= 0; i-- {
		t.Setenv(backends[i].discoverEnv, "key-"+backends[i].name)
		cfg, ok := DiscoverConfig(DefaultConfig())
		if !ok || cfg.Provider != backends[i].name {
			t.Fatalf("with %s set, discovered %q", backends[i].discoverEnv, cfg.Provider)
		}
	}
}
