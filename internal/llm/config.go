package llm

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Provider names accepted by Config.Provider.
const (
	ProviderAnthropic  = "anthropic"
	ProviderOpenAI     = "openai"
	ProviderGemini     = "gemini"
	ProviderOpenRouter = "openrouter"
	ProviderMock       = "mock"
)

// EnvPrefix prefixes every kanjiz LLM environment variable.
const EnvPrefix = "KANJIZ_"

// Config selects and configures the LLM provider.
type Config struct {
	Provider string

	Anthropic  AnthropicConfig
	OpenAI     OpenAIConfig
	Gemini     GeminiConfig
	OpenRouter OpenRouterConfig
	Retry      RetryConfig

	// Timeout bounds one Generate call including retries.
	Timeout time.Duration
}

type AnthropicConfig struct {
	APIKey string
	Model  string
}

type OpenAIConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

type GeminiConfig struct {
	APIKey string
	Model  string
}

type OpenRouterConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

// RetryConfig tunes the exponential backoff in WithRetry.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// DefaultConfig uses the small, cheap model of each provider. Mnemonics are
// short and the quiz never waits on them.
func DefaultConfig() Config {
	return Config{
		Provider:   ProviderAnthropic,
		Anthropic:  AnthropicConfig{Model: "claude-haiku"},
		OpenAI:     OpenAIConfig{Model: "gpt-4o-mini"},
		Gemini:     GeminiConfig{Model: "gemini-flash"},
		OpenRouter: OpenRouterConfig{Model: "google/gemini-2.0-flash-001"},
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2,
		},
		Timeout: 30 * time.Second,
	}
}

// ConfigFromEnv overlays KANJIZ_* environment variables on DefaultConfig.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	for name, dst := range map[string]*string{
		"LLM_PROVIDER":        &cfg.Provider,
		"ANTHROPIC_API_KEY":   &cfg.Anthropic.APIKey,
		"ANTHROPIC_MODEL":     &cfg.Anthropic.Model,
		"OPENAI_API_KEY":      &cfg.OpenAI.APIKey,
		"OPENAI_MODEL":        &cfg.OpenAI.Model,
		"OPENAI_BASE_URL":     &cfg.OpenAI.BaseURL,
		"GEMINI_API_KEY":      &cfg.Gemini.APIKey,
		"GEMINI_MODEL":        &cfg.Gemini.Model,
		"OPENROUTER_API_KEY":  &cfg.OpenRouter.APIKey,
		"OPENROUTER_MODEL":    &cfg.OpenRouter.Model,
		"OPENROUTER_BASE_URL": &cfg.OpenRouter.BaseURL,
	} {
		if v := os.Getenv(EnvPrefix + name); v != "" {
			*dst = v
		}
	}

	if v := os.Getenv(EnvPrefix + "LLM_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			cfg.Timeout = d
		}
	}

	return cfg
}

// DiscoverConfig looks for the standard vendor API key variables, in the
// order Gemini, OpenAI, Anthropic, OpenRouter, and configures the first one
// found. ok is false when none is set.
func DiscoverConfig() (cfg Config, ok bool) {
	cfg = DefaultConfig()

	switch {
	case os.Getenv("GEMINI_API_KEY") != "":
		cfg.Provider = ProviderGemini
		cfg.Gemini.APIKey = os.Getenv("GEMINI_API_KEY")
	case os.Getenv("OPENAI_API_KEY") != "":
		cfg.Provider = ProviderOpenAI
		cfg.OpenAI.APIKey = os.Getenv("OPENAI_API_KEY")
	case os.Getenv("ANTHROPIC_API_KEY") != "":
		cfg.Provider = ProviderAnthropic
		cfg.Anthropic.APIKey = os.Getenv("ANTHROPIC_API_KEY")
	case os.Getenv("OPENROUTER_API_KEY") != "":
		cfg.Provider = ProviderOpenRouter
		cfg.OpenRouter.APIKey = os.Getenv("OPENROUTER_API_KEY")
	default:
		return Config{}, false
	}
	return cfg, true
}

// Resolve returns the KANJIZ_* configuration when it is usable, otherwise
// whatever DiscoverConfig finds. ok is false when no provider is available.
func Resolve() (cfg Config, ok bool) {
	cfg = ConfigFromEnv()
	if cfg.Validate() == nil {
		return cfg, true
	}
	return DiscoverConfig()
}

// Validate checks the selected provider has an API key.
func (c Config) Validate() error {
	var key string
	switch c.Provider {
	case ProviderMock:
		return nil
	case ProviderAnthropic:
		key = c.Anthropic.APIKey
	case ProviderOpenAI:
		key = c.OpenAI.APIKey
	case ProviderGemini:
		key = c.Gemini.APIKey
	case ProviderOpenRouter:
		key = c.OpenRouter.APIKey
	default:
		return fmt.Errorf("unknown llm provider %q", c.Provider)
	}
	if key == "" {
		return fmt.Errorf("%s%s_API_KEY is required for the %s provider",
			EnvPrefix, strings.ToUpper(c.Provider), c.Provider)
	}
	return nil
}
