package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/bibbank/signalgraph/internal/domain/model"
)

// EvaluationRecorder implements port.EvaluationRecorder with OpenTelemetry
// instruments: a counter per tier, a score histogram and a selection-size
// histogram.
type EvaluationRecorder struct {
	evaluations   metric.Int64Counter
	scores        metric.Int64Histogram
	selectionSize metric.Int64Histogram
}

// NewEvaluationRecorder creates the instruments on meter.
func NewEvaluationRecorder(meter metric.Meter) (*EvaluationRecorder, error) {
	evaluations, err := meter.Int64Counter("signalgraph_evaluations_total",
		metric.WithDescription("Evaluations performed, by risk tier."))
	if err != nil {
		return nil, fmt.Errorf("failed to create evaluations counter: %w", err)
	}

	scores, err := meter.Int64Histogram("signalgraph_risk_score",
		metric.WithDescription("Distribution of aggregate risk scores."),
		metric.WithExplicitBucketBoundaries(-5, 0, 1, 5, 9, 10, 15, 20, 30, 45))
	if err != nil {
		return nil, fmt.Errorf("failed to create score histogram: %w", err)
	}

	selectionSize, err := meter.Int64Histogram("signalgraph_selection_size",
		metric.WithDescription("Number of signals selected per evaluation."),
		metric.WithExplicitBucketBoundaries(0, 1, 2, 3, 5, 8, 11))
	if err != nil {
		return nil, fmt.Errorf("failed to create selection size histogram: %w", err)
	}

	return &EvaluationRecorder{
		evaluations:   evaluations,
		scores:        scores,
		selectionSize: selectionSize,
	}, nil
}

// RecordEvaluation records one evaluation outcome.
func (r *EvaluationRecorder) RecordEvaluation(ctx context.Context, e model.Evaluation) {
	tier := metric.WithAttributes(attribute.String("tier", e.Tier.String()))

	r.evaluations.Add(ctx, 1, tier)
	r.scores.Record(ctx, int64(e.Score), tier)
	r.selectionSize.Record(ctx, int64(len(e.SignalIDs)))
}
