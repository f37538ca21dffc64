package plan

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	pipelineRunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "reel_agent",
			Name:      "pipeline_runs_total",
			Help:      "Total pipeline runs",
		},
		[]string{"outcome"}, // "ok", "error"
	)

	pipelineRunDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "reel_agent",
			Name:      "pipeline_run_duration_seconds",
			Help:      "End-to-end duration of pipeline runs in seconds",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 10), // 1s to ~17m
		},
	)

	stageDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "reel_agent",
			Name:      "pipeline_stage_duration_seconds",
			Help:      "Duration of individual pipeline stages in seconds",
			Buckets:   prometheus.ExponentialBuckets(0.1, 2, 10), // 100ms to ~50s
		},
		[]string{"stage"},
	)

	accountsScrapedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "reel_agent",
			Name:      "accounts_scraped_total",
			Help:      "Per-account scraping attempts",
		},
		[]string{"status"}, // "ok", "error"
	)

	reelsCollectedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "reel_agent",
			Name:      "reels_collected_total",
			Help:      "Total deduplicated reels collected across runs",
		},
	)

	scenarioFallbacksTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "reel_agent",
			Name:      "scenario_fallbacks_total",
			Help:      "Scenario responses that failed parsing and fell back to raw text",
		},
	)

	growthPlansTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "reel_agent",
			Name:      "growth_plans_total",
			Help:      "Total growth plan generations",
		},
		[]string{"outcome"}, // "ok", "error"
	)
)
