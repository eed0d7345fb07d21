package grpc

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/bibbank/signalgraph/internal/application/dto"
	"github.com/bibbank/signalgraph/internal/application/usecase"
	"github.com/bibbank/signalgraph/internal/domain/model"
	"github.com/bibbank/signalgraph/internal/domain/port"
	"github.com/bibbank/signalgraph/internal/domain/service"
)

const timeLayout = time.RFC3339Nano

// Compile-time assertion that SignalGraphHandler implements SignalGraphServiceServer.
var _ SignalGraphServiceServer = (*SignalGraphHandler)(nil)

// SignalGraphHandler implements the gRPC SignalGraphServiceServer interface.
type SignalGraphHandler struct {
	UnimplementedSignalGraphServiceServer
	useCases *usecase.Set
	logger   *slog.Logger
}

// NewSignalGraphHandler creates a new gRPC handler.
func NewSignalGraphHandler(useCases *usecase.Set, logger *slog.Logger) *SignalGraphHandler {
	return &SignalGraphHandler{useCases: useCases, logger: logger}
}

// toStatus maps use case errors onto gRPC status codes.
func (h *SignalGraphHandler) toStatus(ctx context.Context, method string, err error) error {
	switch {
	case errors.Is(err, usecase.ErrInvalidRequest), errors.Is(err, model.ErrEmptyCandidateID):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, port.ErrSessionNotFound), errors.Is(err, service.ErrProfileNotFound):
		return status.Error(codes.NotFound, err.Error())
	default:
		h.logger.ErrorContext(ctx, "request failed",
			slog.String("method", method),
			slog.String("error", err.Error()),
		)
		return status.Error(codes.Internal, "internal error")
	}
}

func parseSessionID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, status.Errorf(codes.InvalidArgument, "invalid session_id: %v", err)
	}
	return id, nil
}

// ListSignals returns the signal catalog.
func (h *SignalGraphHandler) ListSignals(ctx context.Context, _ *ListSignalsRequest) (*ListSignalsResponse, error) {
	signals := h.useCases.ListSignals.Execute(ctx)

	resp := &ListSignalsResponse{Signals: make([]*SignalMsg, 0, len(signals))}
	for _, s := range signals {
		resp.Signals = append(resp.Signals, &SignalMsg{
			ID:         s.ID,
			Label:      s.Label,
			Weight:     int32(s.Weight),
			Mitigating: s.Mitigating,
		})
	}
	return resp, nil
}

// EvaluateSelection scores an ad-hoc selection.
func (h *SignalGraphHandler) EvaluateSelection(ctx context.Context, req *EvaluateSelectionRequest) (*EvaluateSelectionResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	result, err := h.useCases.EvaluateSelection.Execute(ctx, dto.EvaluateSelectionRequest{
		CandidateID: req.CandidateID,
		SignalIDs:   req.SignalIDs,
	})
	if err != nil {
		return nil, h.toStatus(ctx, "EvaluateSelection", err)
	}
	return &EvaluateSelectionResponse{Evaluation: toEvaluationMsg(result)}, nil
}

// CreateSession opens a session.
func (h *SignalGraphHandler) CreateSession(ctx context.Context, req *CreateSessionRequest) (*SessionResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	result, err := h.useCases.CreateSession.Execute(ctx, dto.CreateSessionRequest{CandidateID: req.CandidateID})
	if err != nil {
		return nil, h.toStatus(ctx, "CreateSession", err)
	}

	h.logger.InfoContext(ctx, "session created",
		slog.String("session_id", result.ID.String()),
		slog.String("candidate_id", result.Evaluation.CandidateID),
	)
	return toSessionResponse(result), nil
}

// GetSession returns a session with its current evaluation.
func (h *SignalGraphHandler) GetSession(ctx context.Context, req *GetSessionRequest) (*SessionResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	id, err := parseSessionID(req.SessionID)
	if err != nil {
		return nil, err
	}

	result, err := h.useCases.GetSession.Execute(ctx, dto.GetSessionRequest{SessionID: id})
	if err != nil {
		return nil, h.toStatus(ctx, "GetSession", err)
	}
	return toSessionResponse(result), nil
}

// DeleteSession discards a session.
func (h *SignalGraphHandler) DeleteSession(ctx context.Context, req *DeleteSessionRequest) (*DeleteSessionResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	id, err := parseSessionID(req.SessionID)
	if err != nil {
		return nil, err
	}

	if err := h.useCases.DeleteSession.Execute(ctx, dto.GetSessionRequest{SessionID: id}); err != nil {
		return nil, h.toStatus(ctx, "DeleteSession", err)
	}
	return &DeleteSessionResponse{}, nil
}

// SetCandidate rebinds a session to another candidate.
func (h *SignalGraphHandler) SetCandidate(ctx context.Context, req *SetCandidateRequest) (*SessionResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	id, err := parseSessionID(req.SessionID)
	if err != nil {
		return nil, err
	}

	result, err := h.useCases.SetCandidate.Execute(ctx, dto.SetCandidateRequest{SessionID: id, CandidateID: req.CandidateID})
	if err != nil {
		return nil, h.toStatus(ctx, "SetCandidate", err)
	}
	return toSessionResponse(result), nil
}

// ToggleSignal flips one signal in a session.
func (h *SignalGraphHandler) ToggleSignal(ctx context.Context, req *ToggleSignalRequest) (*SessionResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	id, err := parseSessionID(req.SessionID)
	if err != nil {
		return nil, err
	}

	result, err := h.useCases.ToggleSignal.Execute(ctx, dto.ToggleSignalRequest{SessionID: id, SignalID: req.SignalID})
	if err != nil {
		return nil, h.toStatus(ctx, "ToggleSignal", err)
	}
	return toSessionResponse(result), nil
}

// LoadProfile replaces a session's state with a synthetic profile.
func (h *SignalGraphHandler) LoadProfile(ctx context.Context, req *LoadProfileRequest) (*SessionResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	id, err := parseSessionID(req.SessionID)
	if err != nil {
		return nil, err
	}

	index := int(req.Index)
	result, err := h.useCases.LoadProfile.Execute(ctx, dto.LoadProfileRequest{SessionID: id, Index: &index})
	if err != nil {
		return nil, h.toStatus(ctx, "LoadProfile", err)
	}
	return toSessionResponse(result), nil
}

// ClearSelection deselects every signal in a session.
func (h *SignalGraphHandler) ClearSelection(ctx context.Context, req *ClearSelectionRequest) (*SessionResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	id, err := parseSessionID(req.SessionID)
	if err != nil {
		return nil, err
	}

	result, err := h.useCases.ClearSelection.Execute(ctx, dto.GetSessionRequest{SessionID: id})
	if err != nil {
		return nil, h.toStatus(ctx, "ClearSelection", err)
	}
	return toSessionResponse(result), nil
}

// ListProfiles returns the synthetic profiles.
func (h *SignalGraphHandler) ListProfiles(ctx context.Context, _ *ListProfilesRequest) (*ListProfilesResponse, error) {
	profiles := h.useCases.ListProfiles.Execute(ctx)

	resp := &ListProfilesResponse{Profiles: make([]*ProfileMsg, 0, len(profiles))}
	for _, p := range profiles {
		resp.Profiles = append(resp.Profiles, &ProfileMsg{
			Index:       int32(p.Index),
			CandidateID: p.CandidateID,
			SignalIDs:   p.SignalIDs,
		})
	}
	return resp, nil
}

// CompareProfiles returns the comparison chart series.
func (h *SignalGraphHandler) CompareProfiles(ctx context.Context, _ *CompareProfilesRequest) (*CompareProfilesResponse, error) {
	scores := h.useCases.CompareProfiles.Execute(ctx)

	resp := &CompareProfilesResponse{Scores: make([]*ProfileScoreMsg, 0, len(scores))}
	for _, s := range scores {
		resp.Scores = append(resp.Scores, &ProfileScoreMsg{Name: s.Name, Score: int32(s.Score)})
	}
	return resp, nil
}

// ExportSelection renders a session as CSV, SVG or DOT.
func (h *SignalGraphHandler) ExportSelection(ctx context.Context, req *ExportSelectionRequest) (*ExportSelectionResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	id, err := parseSessionID(req.SessionID)
	if err != nil {
		return nil, err
	}

	result, err := h.useCases.ExportSelection.Execute(ctx, dto.ExportSelectionRequest{SessionID: id, Format: req.Format})
	if err != nil {
		return nil, h.toStatus(ctx, "ExportSelection", err)
	}
	return &ExportSelectionResponse{
		FileName:    result.FileName,
		ContentType: result.ContentType,
		Content:     result.Content,
	}, nil
}
