package rest

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/bibbank/signalgraph/internal/application/dto"
	"github.com/bibbank/signalgraph/internal/application/usecase"
	"github.com/bibbank/signalgraph/internal/domain/model"
	"github.com/bibbank/signalgraph/internal/domain/port"
	"github.com/bibbank/signalgraph/internal/domain/service"
)

// SignalGraphHandler exposes the use cases as JSON endpoints.
type SignalGraphHandler struct {
	useCases *usecase.Set
	logger   *slog.Logger
}

// NewSignalGraphHandler creates a new REST handler.
func NewSignalGraphHandler(useCases *usecase.Set, logger *slog.Logger) *SignalGraphHandler {
	return &SignalGraphHandler{useCases: useCases, logger: logger}
}

// RegisterRoutes mounts the API under /api/v1.
func (h *SignalGraphHandler) RegisterRoutes(router gin.IRouter) {
	v1 := router.Group("/api/v1")
	{
		v1.GET("/signals", h.ListSignals)
		v1.POST("/evaluate", h.EvaluateSelection)
		v1.GET("/profiles", h.ListProfiles)
		v1.GET("/profiles/scores", h.CompareProfiles)

		sessions := v1.Group("/sessions")
		{
			sessions.POST("", h.CreateSession)
			sessions.GET("/:id", h.GetSession)
			sessions.DELETE("/:id", h.DeleteSession)
			sessions.PUT("/:id/candidate", h.SetCandidate)
			sessions.POST("/:id/toggle", h.ToggleSignal)
			sessions.POST("/:id/profile", h.LoadProfile)
			sessions.POST("/:id/clear", h.ClearSelection)
			sessions.GET("/:id/export", h.ExportSelection)
		}
	}
}

type candidateBody struct {
	CandidateID string `json:"candidate_id"`
}

type toggleBody struct {
	SignalID string `json:"signal_id"`
}

type profileBody struct {
	Index *int `json:"index"`
}

func (h *SignalGraphHandler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrInvalidRequest), errors.Is(err, model.ErrEmptyCandidateID):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, port.ErrSessionNotFound), errors.Is(err, service.ErrProfileNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		h.logger.ErrorContext(c.Request.Context(), "request failed",
			slog.String("path", c.FullPath()),
			slog.String("error", err.Error()),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

func sessionID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid session id"})
		return uuid.Nil, false
	}
	return id, true
}

func bindBody(c *gin.Context, v any) bool {
	if err := c.ShouldBindJSON(v); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return false
	}
	return true
}

// ListSignals handles GET /api/v1/signals.
func (h *SignalGraphHandler) ListSignals(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"signals": h.useCases.ListSignals.Execute(c.Request.Context())})
}

// EvaluateSelection handles POST /api/v1/evaluate.
func (h *SignalGraphHandler) EvaluateSelection(c *gin.Context) {
	var req dto.EvaluateSelectionRequest
	if !bindBody(c, &req) {
		return
	}
	result, err := h.useCases.EvaluateSelection.Execute(c.Request.Context(), req)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// ListProfiles handles GET /api/v1/profiles.
func (h *SignalGraphHandler) ListProfiles(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"profiles": h.useCases.ListProfiles.Execute(c.Request.Context())})
}

// CompareProfiles handles GET /api/v1/profiles/scores.
func (h *SignalGraphHandler) CompareProfiles(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"scores": h.useCases.CompareProfiles.Execute(c.Request.Context())})
}

// CreateSession handles POST /api/v1/sessions. An empty body is allowed.
func (h *SignalGraphHandler) CreateSession(c *gin.Context) {
	var req dto.CreateSessionRequest
	if c.Request.ContentLength != 0 && !bindBody(c, &req) {
		return
	}
	result, err := h.useCases.CreateSession.Execute(c.Request.Context(), req)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.Header("Location", "/api/v1/sessions/"+result.ID.String())
	c.JSON(http.StatusCreated, result)
}

// GetSession handles GET /api/v1/sessions/:id.
func (h *SignalGraphHandler) GetSession(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}
	result, err := h.useCases.GetSession.Execute(c.Request.Context(), dto.GetSessionRequest{SessionID: id})
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// DeleteSession handles DELETE /api/v1/sessions/:id.
func (h *SignalGraphHandler) DeleteSession(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}
	if err := h.useCases.DeleteSession.Execute(c.Request.Context(), dto.GetSessionRequest{SessionID: id}); err != nil {
		h.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// SetCandidate handles PUT /api/v1/sessions/:id/candidate.
func (h *SignalGraphHandler) SetCandidate(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}
	var body candidateBody
	if !bindBody(c, &body) {
		return
	}
	result, err := h.useCases.SetCandidate.Execute(c.Request.Context(), dto.SetCandidateRequest{
		SessionID:   id,
		CandidateID: body.CandidateID,
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// ToggleSignal handles POST /api/v1/sessions/:id/toggle.
func (h *SignalGraphHandler) ToggleSignal(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}
	var body toggleBody
	if !bindBody(c, &body) {
		return
	}
	result, err := h.useCases.ToggleSignal.Execute(c.Request.Context(), dto.ToggleSignalRequest{
		SessionID: id,
		SignalID:  body.SignalID,
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// LoadProfile handles POST /api/v1/sessions/:id/profile.
func (h *SignalGraphHandler) LoadProfile(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}
	var body profileBody
	if !bindBody(c, &body) {
		return
	}
	result, err := h.useCases.LoadProfile.Execute(c.Request.Context(), dto.LoadProfileRequest{
		SessionID: id,
		Index:     body.Index,
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// ClearSelection handles POST /api/v1/sessions/:id/clear.
func (h *SignalGraphHandler) ClearSelection(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}
	result, err := h.useCases.ClearSelection.Execute(c.Request.Context(), dto.GetSessionRequest{SessionID: id})
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// ExportSelection handles GET /api/v1/sessions/:id/export?format=csv|svg|dot
// and serves the rendering as a download.
func (h *SignalGraphHandler) ExportSelection(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}
	result, err := h.useCases.ExportSelection.Execute(c.Request.Context(), dto.ExportSelectionRequest{
		SessionID: id,
		Format:    strings.TrimSpace(c.DefaultQuery("format", "csv")),
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+result.FileName+`"`)
	c.Data(http.StatusOK, result.ContentType, result.Content)
}
