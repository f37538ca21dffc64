package llm

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/WojtekZaniewski/reel-scenario-agent/internal/config"
)

type Config struct {
	Provider string
	Model    string
	APIKey   string
	APIURL   string
	Timeout  time.Duration
}

func LoadConfig() Config {
	return Config{
		Provider: config.GetEnv("LLM_PROVIDER", "gemini"),
		Model:    config.GetEnv("LLM_MODEL", "gemini-2.5-flash"),
		APIKey:   config.GetEnv("LLM_API_KEY", ""),
		APIURL:   config.GetEnv("LLM_API_URL", ""),
		Timeout:  config.GetEnvDuration("LLM_COMPLETE_TIMEOUT", 90*time.Second),
	}
}

func NewProvider(ctx context.Context, cfg Config) (Provider, error) {
	switch strings.ToLower(cfg.Provider) {
	case "gemini":
		return NewGeminiProvider(ctx, cfg)
	case "openai":
		return NewOpenAIProvider(cfg), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider %q", cfg.Provider)
	}
}
