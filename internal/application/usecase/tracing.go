package usecase

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/bibbank/signalgraph/internal/domain/model"
	"github.com/bibbank/signalgraph/internal/domain/port"
	"github.com/bibbank/signalgraph/internal/domain/service"
)

var tracer = otel.Tracer("github.com/bibbank/signalgraph/internal/application/usecase")

func startSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return tracer.Start(ctx, name, trace.WithAttributes(attrs...))
}

func failSpan(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return err
}

// commitSession evaluates a changed session, stores it, and publishes the
// resulting events. Every mutating use case ends here.
func commitSession(
	ctx context.Context,
	repo port.SessionRepository,
	publisher port.EventPublisher,
	recorder port.EvaluationRecorder,
	evaluator service.Evaluator,
	session *model.Session,
) (model.Evaluation, error) {
	evaluation := evaluator.Evaluate(session.Selection())
	session.RecordEvaluation(evaluation)

	if err := repo.Save(ctx, session); err != nil {
		return model.Evaluation{}, fmt.Errorf("failed to save session: %w", err)
	}

	if recorder != nil {
		recorder.RecordEvaluation(ctx, evaluation)
	}

	events := session.DomainEvents()
	if len(events) > 0 {
		if err := publisher.Publish(ctx, events...); err != nil {
			return model.Evaluation{}, fmt.Errorf("failed to publish events: %w", err)
		}
	}

	trace.SpanFromContext(ctx).SetAttributes(
		attribute.Int("signalgraph.score", evaluation.Score),
		attribute.String("signalgraph.tier", evaluation.Tier.String()),
	)
	return evaluation, nil
}
