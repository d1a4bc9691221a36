package generator

import (
	"fmt"
	"os"
	"time"
)

// Config holds settings shared by the generation adapters.
type Config struct {
	// Provider selects the adapter: "claude", "openai", or "none".
	Provider string

	// APIKey authenticates against the selected provider.
	APIKey string

	// Model is the provider model identifier.
	Model string

	// MaxTokens is the default response token budget.
	MaxTokens int

	// Timeout is the maximum duration for a single generation call.
	Timeout time.Duration
}

// LoadConfig loads generation configuration from environment variables.
//
// Environment variables:
//   - GENAI_PROVIDER: "claude" (default), "openai", or "none"
//   - ANTHROPIC_API_KEY / OPENAI_API_KEY: provider credential
//   - GENAI_MODEL: override the provider default model
func LoadConfig() (Config, error) {
	provider := os.Getenv("GENAI_PROVIDER")
	if provider == "" {
		provider = "claude"
	}

	cfg := Config{
		Provider:  provider,
		Model:     os.Getenv("GENAI_MODEL"),
		MaxTokens: 4096,
		Timeout:   60 * time.Second,
	}

	switch provider {
	case "claude":
		cfg.APIKey = os.Getenv("ANTHROPIC_API_KEY")
		if cfg.APIKey == "" {
			return Config{}, fmt.Errorf("ANTHROPIC_API_KEY not set")
		}
	case "openai":
		cfg.APIKey = os.Getenv("OPENAI_API_KEY")
		if cfg.APIKey == "" {
			return Config{}, fmt.Errorf("OPENAI_API_KEY not set")
		}
	case "none":
	default:
		return Config{}, fmt.Errorf("unknown GENAI_PROVIDER %q", provider)
	}

	return cfg, nil
}

// New constructs the generator selected by the configuration.
func New(cfg Config) (Generator, error) {
	switch cfg.Provider {
	case "claude":
		return NewClaude(cfg), nil
	case "openai":
		return NewOpenAI(cfg), nil
	case "none":
		return Noop{}, nil
	default:
		return nil, fmt.Errorf("unknown provider %q", cfg.Provider)
	}
}
