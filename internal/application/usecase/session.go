package usecase

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"

	"github.com/bibbank/signalgraph/internal/application/dto"
	"github.com/bibbank/signalgraph/internal/domain/model"
	"github.com/bibbank/signalgraph/internal/domain/port"
	"github.com/bibbank/signalgraph/internal/domain/service"
)

// CreateSession opens a new evaluation session.
type CreateSession struct {
	repo      port.SessionRepository
	publisher port.EventPublisher
	recorder  port.EvaluationRecorder
	evaluator service.Evaluator
}

// NewCreateSession creates a new CreateSession use case.
func NewCreateSession(
	repo port.SessionRepository,
	publisher port.EventPublisher,
	recorder port.EvaluationRecorder,
	evaluator service.Evaluator,
) *CreateSession {
	return &CreateSession{repo: repo, publisher: publisher, recorder: recorder, evaluator: evaluator}
}

// Execute creates, evaluates and stores the session.
func (uc *CreateSession) Execute(ctx context.Context, req dto.CreateSessionRequest) (dto.SessionResponse, error) {
	ctx, span := startSpan(ctx, "CreateSession")
	defer span.End()

	if err := dto.Validate(req); err != nil {
		return dto.SessionResponse{}, failSpan(span, invalidRequest(err))
	}

	session := model.NewSession(req.CandidateID)
	span.SetAttributes(attribute.String("signalgraph.session_id", session.ID().String()))

	evaluation, err := commitSession(ctx, uc.repo, uc.publisher, uc.recorder, uc.evaluator, session)
	if err != nil {
		return dto.SessionResponse{}, failSpan(span, err)
	}
	return dto.FromSession(session, evaluation), nil
}

// GetSession returns a session with a fresh evaluation.
type GetSession struct {
	repo      port.SessionRepository
	evaluator service.Evaluator
}

// NewGetSession creates a new GetSession use case.
func NewGetSession(repo port.SessionRepository, evaluator service.Evaluator) *GetSession {
	return &GetSession{repo: repo, evaluator: evaluator}
}

// Execute loads and evaluates the session.
func (uc *GetSession) Execute(ctx context.Context, req dto.GetSessionRequest) (dto.SessionResponse, error) {
	ctx, span := startSpan(ctx, "GetSession", attribute.String("signalgraph.session_id", req.SessionID.String()))
	defer span.End()

	if err := dto.Validate(req); err != nil {
		return dto.SessionResponse{}, failSpan(span, invalidRequest(err))
	}

	session, err := uc.repo.FindByID(ctx, req.SessionID)
	if err != nil {
		return dto.SessionResponse{}, failSpan(span, fmt.Errorf("failed to find session: %w", err))
	}
	return dto.FromSession(session, uc.evaluator.Evaluate(session.Selection())), nil
}

// DeleteSession discards a session.
type DeleteSession struct {
	repo port.SessionRepository
}

// NewDeleteSession creates a new DeleteSession use case.
func NewDeleteSession(repo port.SessionRepository) *DeleteSession {
	return &DeleteSession{repo: repo}
}

// Execute removes the session.
func (uc *DeleteSession) Execute(ctx context.Context, req dto.GetSessionRequest) error {
	ctx, span := startSpan(ctx, "DeleteSession", attribute.String("signalgraph.session_id", req.SessionID.String()))
	defer span.End()

	if err := dto.Validate(req); err != nil {
		return failSpan(span, invalidRequest(err))
	}
	if err := uc.repo.Delete(ctx, req.SessionID); err != nil {
		return failSpan(span, fmt.Errorf("failed to delete session: %w", err))
	}
	return nil
}
