package plan

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/WojtekZaniewski/reel-scenario-agent/internal/llm"
	"github.com/WojtekZaniewski/reel-scenario-agent/internal/logging"
	"github.com/WojtekZaniewski/reel-scenario-agent/internal/models"
)

// Scraper is the slice of the social API client the pipeline needs.
type Scraper interface {
	FetchUserReels(ctx context.Context, username string) ([]models.Reel, error)
	FetchCaption(ctx context.Context, shortcode string) (string, error)
}

// Config bounds one pipeline run.
type Config struct {
	// MaxAccounts caps the suggested account list.
	MaxAccounts int
	// FirstBatchAccounts caps the first scraping batch; accounts beyond it
	// are only visited by the extension pass.
	FirstBatchAccounts int
	// MinReelsThreshold triggers the extension pass when the first batch
	// collected fewer reels than this.
	MinReelsThreshold int
	// TopReels caps the enrichment set.
	TopReels int

	AccountsTemperature float64
	ScenarioTemperature float64
}

func DefaultConfig() Config {
	return Config{
		MaxAccounts:         10,
		FirstBatchAccounts:  8,
		MinReelsThreshold:   3,
		TopReels:            5,
		AccountsTemperature: 0.7,
		ScenarioTemperature: 0.8,
	}
}

// RunRequest is the validated input of one pipeline run.
type RunRequest struct {
	Brief         models.Brief          `json:"brief"`
	Profile       *models.Profile       `json:"profile,omitempty"`
	GrowthContext *models.GrowthContext `json:"growthContext,omitempty"`
}

// AccountSuggestion is the JSON shape the accounts stage expects back.
type AccountSuggestion struct {
	Accounts  []string `json:"accounts"`
	Reasoning string   `json:"reasoning"`
}

// Orchestrator runs the four-stage generation pipeline: accounts, reels,
// enrich, scenario. One Orchestrator serves all runs; per-run state lives on
// the stack of Run.
type Orchestrator struct {
	provider llm.Provider
	scraper  Scraper
	logger   logging.Logger
	cfg      Config
}

func NewOrchestrator(provider llm.Provider, scraper Scraper, logger logging.Logger, cfg Config) *Orchestrator {
	if cfg.MaxAccounts <= 0 {
		cfg = DefaultConfig()
	}
	return &Orchestrator{
		provider: provider,
		scraper:  scraper,
		logger:   logger,
		cfg:      cfg,
	}
}

// Ready reports whether the orchestrator has an LLM provider to run with.
// Startup wires a nil provider when LLM config is absent so health and
// metrics stay up; handlers refuse pipeline work in that state.
func (o *Orchestrator) Ready() bool {
	return o.provider != nil
}

// Run executes one pipeline run, pushing every progress event into sink in
// emission order. A sink error means the client is gone and aborts the run.
func (o *Orchestrator) Run(ctx context.Context, req RunRequest, sink EventSink) (err error) {
	started := time.Now()
	defer func() {
		if r := recover(); r != nil {
			o.logger.WithField("panic", r).Error("Pipeline run panicked")
			_ = sink.Send(Event{Step: StepError, Status: StatusError, Message: "An unexpected error occurred"})
			err = fmt.Errorf("pipeline panic: %v", r)
		}
		outcome := "ok"
		if err != nil {
			outcome = "error"
		}
		pipelineRunsTotal.WithLabelValues(outcome).Inc()
		pipelineRunDuration.Observe(time.Since(started).Seconds())
	}()

	accounts, err := o.runAccountsStage(ctx, req, sink)
	if err != nil {
		return err
	}

	topReels, err := o.runReelsStage(ctx, accounts, sink)
	if err != nil {
		return err
	}

	enriched, err := o.runEnrichStage(ctx, topReels, sink)
	if err != nil {
		return err
	}

	return o.runScenarioStage(ctx, req, accounts, enriched, sink)
}

func (o *Orchestrator) runAccountsStage(ctx context.Context, req RunRequest, sink EventSink) ([]string, error) {
	if err := sink.Send(Event{Step: StepAccounts, Status: StatusRunning}); err != nil {
		return nil, err
	}
	stageStarted := time.Now()

	prompt := BuildAccountSuggestionPrompt(req.Brief, req.Profile)
	text, err := o.provider.Complete(ctx, prompt, o.cfg.AccountsTemperature)
	if err != nil {
		o.logger.WithError(err).Error("Account suggestion call failed")
		_ = sink.Send(Event{Step: StepAccounts, Status: StatusError, Message: "Account suggestion failed"})
		return nil, fmt.Errorf("account suggestion: %w", err)
	}

	var suggestion AccountSuggestion
	if err := ExtractJSON(text, &suggestion); err != nil {
		// Without an account list there is nothing to scrape, so this is
		// the one extraction failure that kills the run.
		o.logger.WithError(err).Error("Account suggestion response was not parseable")
		_ = sink.Send(Event{Step: StepAccounts, Status: StatusError, Message: "Could not parse the AI response"})
		return nil, fmt.Errorf("account suggestion parse: %w", err)
	}

	accounts := suggestion.Accounts
	if len(accounts) > o.cfg.MaxAccounts {
		accounts = accounts[:o.cfg.MaxAccounts]
	}

	stageDuration.WithLabelValues(StepAccounts).Observe(time.Since(stageStarted).Seconds())
	return accounts, sink.Send(Event{
		Step:   StepAccounts,
		Status: StatusDone,
		Data: map[string]any{
			"accounts":  accounts,
			"reasoning": suggestion.Reasoning,
		},
	})
}

// reelsResult accumulates the reels stage counters for its done event.
type reelsResult struct {
	AccountsScraped int
	AccountsFailed  int
	TotalFound      int
}

func (o *Orchestrator) runReelsStage(ctx context.Context, accounts []string, sink EventSink) ([]models.Reel, error) {
	var result reelsResult
	if err := sink.Send(Event{
		Step:    StepReels,
		Status:  StatusRunning,
		Message: fmt.Sprintf("Fetching reels from %d accounts...", len(accounts)),
	}); err != nil {
		return nil, err
	}
	stageStarted := time.Now()

	firstBatch := accounts
	if len(firstBatch) > o.cfg.FirstBatchAccounts {
		firstBatch = firstBatch[:o.cfg.FirstBatchAccounts]
	}

	var collected []models.Reel
	scrape := func(batch []string) error {
		for i, account := range batch {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := sink.Send(Event{
				Step:    StepReels,
				Status:  StatusRunning,
				Message: fmt.Sprintf("Scraping @%s (%d/%d)...", account, i+1, len(batch)),
			}); err != nil {
				return err
			}
			reels, err := o.scraper.FetchUserReels(ctx, account)
			if err != nil {
				// A canceled run is not a per-account failure; abort
				// instead of burning through the rest of the batch.
				if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
					return err
				}
				result.AccountsFailed++
				accountsScrapedTotal.WithLabelValues("error").Inc()
				o.logger.WithError(err).WithField("account", account).Warn("Scraping account failed, skipping")
				continue
			}
			result.AccountsScraped++
			accountsScrapedTotal.WithLabelValues("ok").Inc()
			collected = append(collected, reels...)
		}
		return nil
	}

	if err := scrape(firstBatch); err != nil {
		return nil, err
	}

	// One extension pass over the remaining accounts when the first batch
	// came up short. It drains all of them without re-checking the
	// threshold along the way.
	if len(collected) < o.cfg.MinReelsThreshold && len(accounts) > o.cfg.FirstBatchAccounts {
		if err := scrape(accounts[o.cfg.FirstBatchAccounts:]); err != nil {
			return nil, err
		}
	}

	deduped := dedupeByID(collected)
	sortByViralScore(deduped)
	result.TotalFound = len(deduped)
	reelsCollectedTotal.Add(float64(len(deduped)))

	topReels := deduped
	if len(topReels) > o.cfg.TopReels {
		topReels = topReels[:o.cfg.TopReels]
	}

	data := map[string]any{
		"accountsScraped": result.AccountsScraped,
		"accountsFailed":  result.AccountsFailed,
		"totalFound":      result.TotalFound,
		"topReels":        summarizeTopReels(topReels),
	}
	if len(deduped) == 0 {
		data["warning"] = "No reels were found for the suggested accounts"
	}

	stageDuration.WithLabelValues(StepReels).Observe(time.Since(stageStarted).Seconds())
	return topReels, sink.Send(Event{Step: StepReels, Status: StatusDone, Data: data})
}

func (o *Orchestrator) runEnrichStage(ctx context.Context, topReels []models.Reel, sink EventSink) ([]models.Reel, error) {
	if len(topReels) == 0 {
		return nil, sink.Send(Event{
			Step:   StepEnrich,
			Status: StatusDone,
			Data:   map[string]any{"skipped": true},
		})
	}

	if err := sink.Send(Event{Step: StepEnrich, Status: StatusRunning}); err != nil {
		return nil, err
	}
	stageStarted := time.Now()

	// Concurrent fan-out; each slot writes only its own index so the top-5
	// ranking order is preserved regardless of completion order.
	enriched := make([]models.Reel, len(topReels))
	var wg sync.WaitGroup
	for i, reel := range topReels {
		enriched[i] = reel
		wg.Add(1)
		go func(i int, reel models.Reel) {
			defer wg.Done()
			caption, err := o.scraper.FetchCaption(ctx, reel.Shortcode)
			if err != nil {
				o.logger.WithError(err).WithField("shortcode", reel.Shortcode).Warn("Caption enrichment failed, keeping original")
				return
			}
			if caption != "" {
				enriched[i].Caption = caption
			}
		}(i, reel)
	}
	wg.Wait()

	stageDuration.WithLabelValues(StepEnrich).Observe(time.Since(stageStarted).Seconds())
	return enriched, sink.Send(Event{Step: StepEnrich, Status: StatusDone})
}

func (o *Orchestrator) runScenarioStage(ctx context.Context, req RunRequest, accounts []string, reels []models.Reel, sink EventSink) error {
	if err := sink.Send(Event{Step: StepScenario, Status: StatusRunning}); err != nil {
		return err
	}
	stageStarted := time.Now()

	prompt := BuildScenarioPrompt(req.Brief, reels, req.Profile, req.GrowthContext)
	stream, err := o.provider.Stream(ctx, prompt, o.cfg.ScenarioTemperature)
	if err != nil {
		o.logger.WithError(err).Error("Scenario stream open failed")
		_ = sink.Send(Event{Step: StepScenario, Status: StatusError, Message: "Scenario generation failed"})
		return fmt.Errorf("scenario stream: %w", err)
	}
	defer func() { _ = stream.Close() }()

	var full strings.Builder
	for {
		chunk, recvErr := stream.Recv()
		if errors.Is(recvErr, io.EOF) {
			break
		}
		if recvErr != nil {
			o.logger.WithError(recvErr).Error("Scenario stream failed mid-run")
			_ = sink.Send(Event{Step: StepScenario, Status: StatusError, Message: "Scenario generation failed"})
			return fmt.Errorf("scenario stream recv: %w", recvErr)
		}
		full.WriteString(chunk.Content)
		if err := sink.Send(Event{Step: StepScenario, Status: StatusStreaming, Chunk: chunk.Content}); err != nil {
			return err
		}
	}

	scenario := o.parseScenario(req.Brief.ContentType, full.String())
	stageDuration.WithLabelValues(StepScenario).Observe(time.Since(stageStarted).Seconds())
	return sink.Send(Event{
		Step:   StepScenario,
		Status: StatusDone,
		Data: map[string]any{
			"scenario":  scenario,
			"accounts":  accounts,
			"reelsUsed": len(reels),
		},
	})
}

// parseScenario extracts the structured scenario from the accumulated stream
// text, substituting a fallback carrying the raw text when that fails.
func (o *Orchestrator) parseScenario(ct models.ContentType, text string) models.Scenario {
	var payload models.ScenarioPayload
	if err := ExtractJSON(text, &payload); err != nil {
		o.logger.WithError(err).Warn("Scenario response was not parseable, substituting fallback")
		scenarioFallbacksTotal.Inc()
		return models.FallbackScenario(ct, text)
	}
	return payload.ToScenario(ct)
}

// dedupeByID keeps one reel per distinct id, last occurrence winning, with
// first-seen order otherwise preserved.
func dedupeByID(reels []models.Reel) []models.Reel {
	index := make(map[string]int, len(reels))
	deduped := make([]models.Reel, 0, len(reels))
	for _, reel := range reels {
		if at, seen := index[reel.ID]; seen {
			deduped[at] = reel
			continue
		}
		index[reel.ID] = len(deduped)
		deduped = append(deduped, reel)
	}
	return deduped
}

func sortByViralScore(reels []models.Reel) {
	sort.SliceStable(reels, func(i, j int) bool {
		return reels[i].ViralScore > reels[j].ViralScore
	})
}

// summarizeTopReels projects the enrichment set into the compact shape the
// reels done event carries.
func summarizeTopReels(reels []models.Reel) []map[string]any {
	summaries := make([]map[string]any, 0, len(reels))
	for _, reel := range reels {
		summaries = append(summaries, map[string]any{
			"id":            reel.ID,
			"shortcode":     reel.Shortcode,
			"ownerUsername": reel.OwnerUsername,
			"viralScore":    reel.ViralScore,
			"views":         reel.Metrics.Views,
			"likes":         reel.Metrics.Likes,
		})
	}
	return summaries
}
