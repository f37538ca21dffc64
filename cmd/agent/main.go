package main

import (
	"context"
	"net/http"

	"github.com/WojtekZaniewski/reel-scenario-agent/internal/cache"
	"github.com/WojtekZaniewski/reel-scenario-agent/internal/clients"
	"github.com/WojtekZaniewski/reel-scenario-agent/internal/clients/instagram"
	agentconfig "github.com/WojtekZaniewski/reel-scenario-agent/internal/config"
	"github.com/WojtekZaniewski/reel-scenario-agent/internal/llm"
	"github.com/WojtekZaniewski/reel-scenario-agent/internal/logging"
	"github.com/WojtekZaniewski/reel-scenario-agent/internal/monitoring"
	"github.com/WojtekZaniewski/reel-scenario-agent/internal/plan"
	"github.com/WojtekZaniewski/reel-scenario-agent/internal/server"
	"github.com/WojtekZaniewski/reel-scenario-agent/internal/version"
)

func main() {
	// Setup logger
	logger := logging.NewLoggerWithService("reel-agent")

	// Load environment variables
	agentconfig.LoadEnv(logger)

	logger.Info("Starting Reel Agent (content plan generation API)")

	cfg := agentconfig.LoadConfig()

	// Setup monitoring
	healthChecker := monitoring.NewHealthChecker("reel-agent", version.Version)
	metricsCollector := monitoring.NewMetricsCollector("reel-agent", version.Version, version.GitCommit)

	healthChecker.AddCheck("config", monitoring.ConfigurationHealthCheck(map[string]string{
		"LLM_API_KEY":  cfg.LLMAPIKey,
		"RAPIDAPI_KEY": cfg.RapidAPIKey,
	}))

	// The pipeline endpoints need an LLM provider. Do not hard-fail startup
	// when LLM config is unset; keep the base service (health/metrics) running.
	llmProvider, err := llm.NewProvider(context.Background(), llm.Config{
		Provider: cfg.LLMProvider,
		Model:    cfg.LLMModel,
		APIKey:   cfg.LLMAPIKey,
		APIURL:   cfg.LLMAPIURL,
		Timeout:  cfg.LLMCompleteTimeout,
	})
	if err != nil {
		logger.WithError(err).Warn("Failed to initialize LLM provider")
		llmProvider = nil
	}

	reelsCache := cache.New(cache.Options{TTL: cfg.ReelsCacheTTL})

	retryConfig := clients.DefaultHTTPExecutorConfig()
	retryConfig.MaxRetries = cfg.ScrapeMaxRetries
	scraper := instagram.NewClient(cfg.RapidAPIHost, cfg.RapidAPIKey,
		instagram.WithHTTPClient(&http.Client{
			Timeout:   cfg.ScrapeTimeout,
			Transport: clients.DefaultTransport(),
		}),
		instagram.WithHTTPExecutorConfig(retryConfig),
		instagram.WithRateLimit(cfg.ScrapeRatePerMin),
		instagram.WithReelsCache(reelsCache),
	)

	orchestrator := plan.NewOrchestrator(llmProvider, scraper, logger, plan.Config{
		MaxAccounts:         cfg.MaxAccounts,
		FirstBatchAccounts:  cfg.FirstBatchAccounts,
		MinReelsThreshold:   cfg.MinReelsThreshold,
		TopReels:            cfg.TopReels,
		AccountsTemperature: plan.DefaultConfig().AccountsTemperature,
		ScenarioTemperature: plan.DefaultConfig().ScenarioTemperature,
	})
	growthPlanner := plan.NewGrowthPlanner(llmProvider, logger)
	handler := plan.NewHandler(orchestrator, growthPlanner, logger)

	// Setup router with unified monitoring (health/metrics only)
	router := server.SetupServiceRouter(logger, "reel-agent", healthChecker, metricsCollector)
	apiGroup := router.Group("/api/agent")
	plan.RegisterRoutes(apiGroup, handler)

	logger.WithFields(logging.Fields{
		"port":      cfg.Port,
		"provider":  cfg.LLMProvider,
		"model":     cfg.LLMModel,
		"cache_ttl": cfg.ReelsCacheTTL.String(),
	}).Info("Reel Agent configured")

	serverConfig := server.DefaultConfig("reel-agent", cfg.Port)
	if err := server.Start(serverConfig, router, logger); err != nil {
		logger.WithError(err).Fatal("Failed to start server")
	}
}
