package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/bibbank/signalgraph/internal/application/dto"
	"github.com/bibbank/signalgraph/internal/domain/model"
	"github.com/bibbank/signalgraph/internal/domain/port"
	"github.com/bibbank/signalgraph/internal/domain/service"
)

// sessionEditor loads a session, applies one change, and commits it.
type sessionEditor struct {
	repo      port.SessionRepository
	publisher port.EventPublisher
	recorder  port.EvaluationRecorder
	evaluator service.Evaluator
}

func (e sessionEditor) edit(
	ctx context.Context,
	name string,
	id uuid.UUID,
	req any,
	apply func(*model.Session) error,
) (dto.SessionResponse, error) {
	ctx, span := startSpan(ctx, name, attribute.String("signalgraph.session_id", id.String()))
	defer span.End()

	if err := dto.Validate(req); err != nil {
		return dto.SessionResponse{}, failSpan(span, invalidRequest(err))
	}

	session, err := e.repo.FindByID(ctx, id)
	if err != nil {
		return dto.SessionResponse{}, failSpan(span, fmt.Errorf("failed to find session: %w", err))
	}

	if err := apply(session); err != nil {
		return dto.SessionResponse{}, failSpan(span, err)
	}

	evaluation, err := commitSession(ctx, e.repo, e.publisher, e.recorder, e.evaluator, session)
	if err != nil {
		return dto.SessionResponse{}, failSpan(span, err)
	}
	return dto.FromSession(session, evaluation), nil
}

// SetCandidate rebinds a session to another candidate, keeping its selection.
type SetCandidate struct {
	editor sessionEditor
}

// NewSetCandidate creates a new SetCandidate use case.
func NewSetCandidate(
	repo port.SessionRepository,
	publisher port.EventPublisher,
	recorder port.EvaluationRecorder,
	evaluator service.Evaluator,
) *SetCandidate {
	return &SetCandidate{editor: sessionEditor{repo: repo, publisher: publisher, recorder: recorder, evaluator: evaluator}}
}

func (uc *SetCandidate) Execute(ctx context.Context, req dto.SetCandidateRequest) (dto.SessionResponse, error) {
	return uc.editor.edit(ctx, "SetCandidate", req.SessionID, req, func(s *model.Session) error {
		if err := s.SetCandidate(req.CandidateID); err != nil {
			return fmt.Errorf("failed to set candidate: %w", err)
		}
		return nil
	})
}

// ToggleSignal selects or deselects one signal.
type ToggleSignal struct {
	editor sessionEditor
}

// NewToggleSignal creates a new ToggleSignal use case.
func NewToggleSignal(
	repo port.SessionRepository,
	publisher port.EventPublisher,
	recorder port.EvaluationRecorder,
	evaluator service.Evaluator,
) *ToggleSignal {
	return &ToggleSignal{editor: sessionEditor{repo: repo, publisher: publisher, recorder: recorder, evaluator: evaluator}}
}

// Execute flips the signal. Unknown signal IDs are accepted and weigh 0.
func (uc *ToggleSignal) Execute(ctx context.Context, req dto.ToggleSignalRequest) (dto.SessionResponse, error) {
	return uc.editor.edit(ctx, "ToggleSignal", req.SessionID, req, func(s *model.Session) error {
		s.ToggleSignal(req.SignalID)
		return nil
	})
}

// LoadProfile replaces a session's candidate and selection with a synthetic profile.
type LoadProfile struct {
	catalog *service.ProfileCatalog
	editor  sessionEditor
}

// NewLoadProfile creates a new LoadProfile use case.
func NewLoadProfile(
	repo port.SessionRepository,
	publisher port.EventPublisher,
	recorder port.EvaluationRecorder,
	evaluator service.Evaluator,
	catalog *service.ProfileCatalog,
) *LoadProfile {
	return &LoadProfile{
		catalog: catalog,
		editor:  sessionEditor{repo: repo, publisher: publisher, recorder: recorder, evaluator: evaluator},
	}
}

func (uc *LoadProfile) Execute(ctx context.Context, req dto.LoadProfileRequest) (dto.SessionResponse, error) {
	return uc.editor.edit(ctx, "LoadProfile", req.SessionID, req, func(s *model.Session) error {
		selection, err := uc.catalog.Load(*req.Index)
		if err != nil {
			return fmt.Errorf("failed to load profile: %w", err)
		}
		s.Replace(selection)
		return nil
	})
}

// ClearSelection deselects every signal in a session.
type ClearSelection struct {
	editor sessionEditor
}

// NewClearSelection creates a new ClearSelection use case.
func NewClearSelection(
	repo port.SessionRepository,
	publisher port.EventPublisher,
	recorder port.EvaluationRecorder,
	evaluator service.Evaluator,
) *ClearSelection {
	return &ClearSelection{editor: sessionEditor{repo: repo, publisher: publisher, recorder: recorder, evaluator: evaluator}}
}

func (uc *ClearSelection) Execute(ctx context.Context, req dto.GetSessionRequest) (dto.SessionResponse, error) {
	return uc.editor.edit(ctx, "ClearSelection", req.SessionID, req, func(s *model.Session) error {
		s.Clear()
		return nil
	})
}
