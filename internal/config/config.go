package config

import "time"

// Config stores environment configuration for the agent service.
type Config struct {
	Port string

	LLMProvider string
	LLMModel    string
	LLMAPIKey   string
	LLMAPIURL   string

	RapidAPIKey  string
	RapidAPIHost string

	ReelsCacheTTL      time.Duration
	ScrapeTimeout      time.Duration
	ScrapeRatePerMin   int
	ScrapeMaxRetries   int
	LLMCompleteTimeout time.Duration

	FirstBatchAccounts int
	MaxAccounts        int
	TopReels           int
	MinReelsThreshold  int
}

// LoadConfig loads the agent configuration from environment variables.
func LoadConfig() Config {
	return Config{
		Port: GetEnv("PORT", "18030"),

		LLMProvider: GetEnv("LLM_PROVIDER", "gemini"),
		LLMModel:    GetEnv("LLM_MODEL", "gemini-2.5-flash"),
		LLMAPIKey:   GetEnv("LLM_API_KEY", ""),
		LLMAPIURL:   GetEnv("LLM_API_URL", ""),

		RapidAPIKey:  GetEnv("RAPIDAPI_KEY", ""),
		RapidAPIHost: GetEnv("RAPIDAPI_HOST", "instagram120.p.rapidapi.com"),

		ReelsCacheTTL:      GetEnvDuration("REELS_CACHE_TTL", 15*time.Minute),
		ScrapeTimeout:      GetEnvDuration("SCRAPE_TIMEOUT", 20*time.Second),
		ScrapeRatePerMin:   GetEnvInt("SCRAPE_RATE_PER_MINUTE", 30),
		ScrapeMaxRetries:   GetEnvInt("SCRAPE_MAX_RETRIES", 2),
		LLMCompleteTimeout: GetEnvDuration("LLM_COMPLETE_TIMEOUT", 90*time.Second),

		FirstBatchAccounts: GetEnvInt("PIPELINE_FIRST_BATCH_ACCOUNTS", 8),
		MaxAccounts:        GetEnvInt("PIPELINE_MAX_ACCOUNTS", 10),
		TopReels:           GetEnvInt("PIPELINE_TOP_REELS", 5),
		MinReelsThreshold:  GetEnvInt("PIPELINE_MIN_REELS", 3),
	}
}
