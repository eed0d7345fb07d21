package rest

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const serviceName = "signalgraph"

// HealthHandler provides HTTP health check endpoints for the signalgraph service.
type HealthHandler struct {
	logger    *slog.Logger
	startTime time.Time
	checks    map[string]string
}

// NewHealthHandler creates a new health check handler. checks names the
// adapters reported by the readiness probe, e.g. "events": "kafka".
func NewHealthHandler(logger *slog.Logger, checks map[string]string) *HealthHandler {
	if checks == nil {
		checks = map[string]string{}
	}
	return &HealthHandler{
		logger:    logger,
		startTime: time.Now(),
		checks:    checks,
	}
}

// HealthResponse is the JSON response for health checks.
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Uptime  string `json:"uptime"`
}

// ReadinessResponse is the JSON response for readiness checks.
type ReadinessResponse struct {
	Status  string            `json:"status"`
	Service string            `json:"service"`
	Checks  map[string]string `json:"checks"`
}

// RegisterRoutes registers health endpoints on the router.
func (h *HealthHandler) RegisterRoutes(router gin.IRouter) {
	router.GET("/healthz", h.Healthz)
	router.GET("/readyz", h.Readyz)
}

// Healthz handles liveness probe requests.
func (h *HealthHandler) Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:  "healthy",
		Service: serviceName,
		Uptime:  time.Since(h.startTime).Round(time.Second).String(),
	})
}

// Readyz handles readiness probe requests.
func (h *HealthHandler) Readyz(c *gin.Context) {
	c.JSON(http.StatusOK, ReadinessResponse{
		Status:  "ready",
		Service: serviceName,
		Checks:  h.checks,
	})
}
