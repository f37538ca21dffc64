package plan

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/WojtekZaniewski/reel-scenario-agent/internal/llm"
	"github.com/WojtekZaniewski/reel-scenario-agent/internal/logging"
	"github.com/WojtekZaniewski/reel-scenario-agent/internal/models"

	"github.com/gin-gonic/gin"
)

const growthPlanTemperature = 0.7

// GrowthPlanRequest is the input of one growth-plan generation.
type GrowthPlanRequest struct {
	Goal             string          `json:"goal"`
	Industry         string          `json:"industry"`
	Notes            string          `json:"notes,omitempty"`
	Profile          *models.Profile `json:"profile,omitempty"`
	CurrentFollowers int             `json:"currentFollowers,omitempty"`
}

// GrowthPlanner generates account growth plans with a single blocking LLM
// call; there is no streaming surface on this path.
type GrowthPlanner struct {
	provider llm.Provider
	logger   logging.Logger
}

func NewGrowthPlanner(provider llm.Provider, logger logging.Logger) *GrowthPlanner {
	return &GrowthPlanner{provider: provider, logger: logger}
}

// Ready reports whether the planner has an LLM provider to generate with.
func (g *GrowthPlanner) Ready() bool {
	return g.provider != nil
}

func (g *GrowthPlanner) Generate(ctx context.Context, req GrowthPlanRequest) (models.GrowthPlan, error) {
	prompt := BuildGrowthPlanPrompt(req.Goal, req.Industry, req.Notes, req.Profile, req.CurrentFollowers)
	text, err := g.provider.Complete(ctx, prompt, growthPlanTemperature)
	if err != nil {
		growthPlansTotal.WithLabelValues("error").Inc()
		return models.GrowthPlan{}, fmt.Errorf("growth plan generation: %w", err)
	}

	var plan models.GrowthPlan
	if err := ExtractJSON(text, &plan); err != nil {
		growthPlansTotal.WithLabelValues("error").Inc()
		return models.GrowthPlan{}, fmt.Errorf("growth plan parse: %w", err)
	}

	growthPlansTotal.WithLabelValues("ok").Inc()
	return plan, nil
}

// HandleGrowthPlan returns one generated growth plan as plain JSON.
func (h *Handler) HandleGrowthPlan(c *gin.Context) {
	if h.Growth == nil || !h.Growth.Ready() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "LLM provider not configured"})
		return
	}

	var req GrowthPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload"})
		return
	}
	if strings.TrimSpace(req.Goal) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "goal is required"})
		return
	}

	plan, err := h.Growth.Generate(c.Request.Context(), req)
	if err != nil {
		h.Logger.WithError(err).Error("Growth plan generation failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "growth plan generation failed"})
		return
	}

	c.JSON(http.StatusOK, plan)
}
