package plan

import (
	"net/http"
	"strings"

	"github.com/WojtekZaniewski/reel-scenario-agent/internal/logging"

	"github.com/gin-gonic/gin"
)

// Handler exposes the pipeline over HTTP.
type Handler struct {
	Orchestrator *Orchestrator
	Growth       *GrowthPlanner
	Logger       logging.Logger
}

func NewHandler(orchestrator *Orchestrator, growth *GrowthPlanner, logger logging.Logger) *Handler {
	return &Handler{
		Orchestrator: orchestrator,
		Growth:       growth,
		Logger:       logger,
	}
}

func RegisterRoutes(router gin.IRoutes, handler *Handler) {
	router.POST("/generate", handler.HandleGenerate)
	router.POST("/growth-plan", handler.HandleGrowthPlan)
}

// HandleGenerate runs the four-stage pipeline, streaming progress events over
// a server-sent event stream that stays open until the run terminates.
func (h *Handler) HandleGenerate(c *gin.Context) {
	if h.Orchestrator == nil || !h.Orchestrator.Ready() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "LLM provider not configured"})
		return
	}

	var req RunRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload"})
		return
	}
	if strings.TrimSpace(req.Brief.Treatment) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "brief.treatment is required"})
		return
	}
	if req.Brief.ContentType != "" && !req.Brief.ContentType.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown content type"})
		return
	}

	sink, err := NewSSEEmitter(c.Writer)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "streaming unavailable"})
		return
	}
	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")
	c.Status(http.StatusOK)

	if err := h.Orchestrator.Run(c.Request.Context(), req, sink); err != nil {
		h.Logger.WithError(err).Warn("Pipeline run ended with error")
	}
}
