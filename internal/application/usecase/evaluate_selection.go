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

// EvaluateSelection scores an ad-hoc selection. Nothing is stored and no
// events are raised.
type EvaluateSelection struct {
	evaluator service.Evaluator
	recorder  port.EvaluationRecorder
}

// NewEvaluateSelection creates a new EvaluateSelection use case.
func NewEvaluateSelection(evaluator service.Evaluator, recorder port.EvaluationRecorder) *EvaluateSelection {
	return &EvaluateSelection{evaluator: evaluator, recorder: recorder}
}

// Execute validates the request and returns the evaluation.
func (uc *EvaluateSelection) Execute(ctx context.Context, req dto.EvaluateSelectionRequest) (dto.EvaluationResponse, error) {
	ctx, span := startSpan(ctx, "EvaluateSelection",
		attribute.String("signalgraph.candidate_id", req.CandidateID),
		attribute.Int("signalgraph.selection_size", len(req.SignalIDs)),
	)
	defer span.End()

	if err := dto.Validate(req); err != nil {
		return dto.EvaluationResponse{}, failSpan(span, invalidRequest(err))
	}

	selection, err := model.NewSelectionSet(req.CandidateID, req.SignalIDs...)
	if err != nil {
		return dto.EvaluationResponse{}, failSpan(span, fmt.Errorf("failed to build selection: %w", err))
	}

	evaluation := uc.evaluator.Evaluate(selection)
	if uc.recorder != nil {
		uc.recorder.RecordEvaluation(ctx, evaluation)
	}

	span.SetAttributes(
		attribute.Int("signalgraph.score", evaluation.Score),
		attribute.String("signalgraph.tier", evaluation.Tier.String()),
	)
	return dto.FromEvaluation(evaluation), nil
}
