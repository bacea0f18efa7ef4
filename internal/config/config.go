// Package config loads stratiz settings from an optional YAML file and
// STRATIZ_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/abhisek/stratiz/internal/llm"
)

// EnvPrefix is prepended to every environment override.
const EnvPrefix = "STRATIZ"

// Config holds application configuration.
type Config struct {
	LogLevel string     `mapstructure:"log_level"` // debug, info, warn, error
	LogFile  string     `mapstructure:"log_file"`  // TUI log destination; empty uses the state dir
	DB       string     `mapstructure:"db"`        // SQLite path; empty uses the data dir
	LLM      llm.Config `mapstructure:"llm"`

	// Discovered is set when the LLM provider came from a vendor API key
	// rather than explicit configuration.
	Discovered bool `mapstructure:"-"`
}

// Load reads configuration. When path is empty, stratiz.yaml is looked up
// in the user config dir and the working directory, and a missing file is
// not an error. An explicit path must exist.
func Load(path string) (*Config, error) {
	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("stratiz")
		v.SetConfigType("yaml")
		if dir, err := configDir(); err == nil {
			v.AddConfigPath(dir)
		}
		v.AddConfigPath(".")
	}

	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Provider keys read better without the llm segment.
	_ = v.BindEnv("llm.anthropic.api_key", "STRATIZ_ANTHROPIC_API_KEY")
	_ = v.BindEnv("llm.openai.api_key", "STRATIZ_OPENAI_API_KEY")
	_ = v.BindEnv("llm.gemini.api_key", "STRATIZ_GEMINI_API_KEY")
	_ = v.BindEnv("llm.openrouter.api_key", "STRATIZ_OPENROUTER_API_KEY")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("load config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if !cfg.LLM.Enabled() {
		cfg.LLM, cfg.Discovered = llm.DiscoverConfig(cfg.LLM)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	d := llm.DefaultConfig()

	v.SetDefault("log_level", "info")
	v.SetDefault("log_file", "")
	v.SetDefault("db", "")

	v.SetDefault("llm.provider", "")
	v.SetDefault("llm.timeout", d.Timeout)
	v.SetDefault("llm.anthropic.api_key", "")
	v.SetDefault("llm.anthropic.model", d.Anthropic.Model)
	v.SetDefault("llm.openai.api_key", "")
	v.SetDefault("llm.openai.model", d.OpenAI.Model)
	v.SetDefault("llm.openai.base_url", "")
	v.SetDefault("llm.gemini.api_key", "")
	v.SetDefault("llm.gemini.model", d.Gemini.Model)
	v.SetDefault("llm.openrouter.api_key", "")
	v.SetDefault("llm.openrouter.model", d.OpenRouter.Model)
	v.SetDefault("llm.openrouter.base_url", "")
	v.SetDefault("llm.retry.max_attempts", d.Retry.MaxAttempts)
	v.SetDefault("llm.retry.initial_wait", d.Retry.InitialWait)
	v.SetDefault("llm.retry.max_wait", d.Retry.MaxWait)
	v.SetDefault("llm.retry.multiplier", d.Retry.Multiplier)
}

// configDir returns $XDG_CONFIG_HOME/stratiz, falling back to
// ~/.config/stratiz.
func configDir() (string, error) {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "stratiz"), nil
}
