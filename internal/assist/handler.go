package assist

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"resume-builder/internal/resumes"
	"resume-builder/internal/shared/metrics"
	"resume-builder/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches text-assist routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/ai/generate-summary", h.generateSummary)
	rg.POST("/ai/improve-text", h.improveText)
}

type generateSummaryRequest struct {
	JobTitle   string               `json:"jobTitle"`
	Experience []resumes.Experience `json:"experience"`
	Skills     []resumes.Skill      `json:"skills"`
}

func (h *Handler) generateSummary(c *gin.Context) {
	var req generateSummaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	start := time.Now()
	metrics.IncAssistCalls()

	result, err := h.Svc.GenerateSummary(c.Request.Context(), req.JobTitle, req.Experience, req.Skills)
	metrics.ObserveAssistDurationMs(float64(time.Since(start).Microseconds()) / 1000.0)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "Job title is required", nil)
		default:
			metrics.IncAssistFailed()
			respond.Error(c, http.StatusInternalServerError, "Failed to generate summary", err)
		}
		return
	}

	respond.OK(c, gin.H{"result": result})
}

type improveTextRequest struct {
	Text string `json:"text"`
	Type string `json:"type"`
}

func (h *Handler) improveText(c *gin.Context) {
	var req improveTextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	start := time.Now()
	metrics.IncAssistCalls()

	result, err := h.Svc.ImproveText(c.Request.Context(), req.Text, req.Type)
	metrics.ObserveAssistDurationMs(float64(time.Since(start).Microseconds()) / 1000.0)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "Text is required", nil)
		default:
			metrics.IncAssistFailed()
			respond.Error(c, http.StatusInternalServerError, "Failed to improve text", err)
		}
		return
	}

	respond.OK(c, gin.H{"result": result})
}
