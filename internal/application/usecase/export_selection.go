package usecase

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"

	"github.com/bibbank/signalgraph/internal/application/dto"
	"github.com/bibbank/signalgraph/internal/domain/port"
	"github.com/bibbank/signalgraph/internal/domain/service"
	"github.com/bibbank/signalgraph/internal/domain/valueobject"
)

// ExportSelection renders a session's current evaluation as a downloadable file.
type ExportSelection struct {
	repo      port.SessionRepository
	evaluator service.Evaluator
	exporter  *service.Exporter
}

// NewExportSelection creates a new ExportSelection use case.
func NewExportSelection(repo port.SessionRepository, evaluator service.Evaluator, exporter *service.Exporter) *ExportSelection {
	return &ExportSelection{repo: repo, evaluator: evaluator, exporter: exporter}
}

// Execute loads the session and renders it. The session is not modified.
func (uc *ExportSelection) Execute(ctx context.Context, req dto.ExportSelectionRequest) (dto.ExportResponse, error) {
	ctx, span := startSpan(ctx, "ExportSelection",
		attribute.String("signalgraph.session_id", req.SessionID.String()),
		attribute.String("signalgraph.format", req.Format),
	)
	defer span.End()

	if err := dto.Validate(req); err != nil {
		return dto.ExportResponse{}, failSpan(span, invalidRequest(err))
	}

	format, err := valueobject.NewExportFormat(req.Format)
	if err != nil {
		return dto.ExportResponse{}, failSpan(span, invalidRequest(err))
	}

	session, err := uc.repo.FindByID(ctx, req.SessionID)
	if err != nil {
		return dto.ExportResponse{}, failSpan(span, fmt.Errorf("failed to find session: %w", err))
	}

	evaluation := uc.evaluator.Evaluate(session.Selection())
	content, err := uc.exporter.Export(evaluation, format)
	if err != nil {
		return dto.ExportResponse{}, failSpan(span, fmt.Errorf("failed to export session: %w", err))
	}

	return dto.ExportResponse{
		FileName:    format.FileName(evaluation.CandidateID),
		ContentType: format.ContentType(),
		Content:     content,
	}, nil
}
