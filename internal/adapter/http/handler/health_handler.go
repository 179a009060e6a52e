package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ressKim-io/news-category-service/internal/usecase"
)

// Health status values
const (
	StatusOK    = "AI Service OK"
	StatusError = "AI Service ERROR"
)

// ArtifactReporter reports whether the prediction artifacts are available
type ArtifactReporter interface {
	Ready() bool
	Status() *usecase.ArtifactStatus
}

// HealthHandler handles health check endpoints
type HealthHandler struct {
	artifacts ArtifactReporter
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(artifacts ArtifactReporter) *HealthHandler {
	return &HealthHandler{artifacts: artifacts}
}

// HealthStatus represents the health check response
type HealthStatus struct {
	Status           string `json:"status"`
	ModelLoaded      bool   `json:"model_loaded"`
	VectorizerLoaded bool   `json:"vectorizer_loaded"`
}

// Health handles GET /health
func (h *HealthHandler) Health(c *gin.Context) {
	status := h.artifacts.Status()

	if !h.artifacts.Ready() {
		c.JSON(http.StatusInternalServerError, HealthStatus{
			Status:           StatusError,
			ModelLoaded:      status.ModelLoaded,
			VectorizerLoaded: status.VectorizerLoaded,
		})
		return
	}

	c.JSON(http.StatusOK, HealthStatus{
		Status:           StatusOK,
		ModelLoaded:      status.ModelLoaded,
		VectorizerLoaded: status.VectorizerLoaded,
	})
}

// Ready handles GET /ready
func (h *HealthHandler) Ready(c *gin.Context) {
	if !h.artifacts.Ready() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not ready", "reason": "artifacts not loaded"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}
