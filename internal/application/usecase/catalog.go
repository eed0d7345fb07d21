package usecase

import (
	"context"

	"github.com/bibbank/signalgraph/internal/application/dto"
	"github.com/bibbank/signalgraph/internal/domain/service"
)

// ListSignals returns the signal catalog in display order.
type ListSignals struct {
	registry *service.SignalRegistry
}

// NewListSignals creates a new ListSignals use case.
func NewListSignals(registry *service.SignalRegistry) *ListSignals {
	return &ListSignals{registry: registry}
}

func (uc *ListSignals) Execute(ctx context.Context) []dto.SignalResponse {
	_, span := startSpan(ctx, "ListSignals")
	defer span.End()

	signals := uc.registry.All()
	out := make([]dto.SignalResponse, 0, len(signals))
	for _, s := range signals {
		out = append(out, dto.FromSignal(s))
	}
	return out
}

// ListProfiles returns the synthetic profiles in catalog order.
type ListProfiles struct {
	catalog *service.ProfileCatalog
}

// NewListProfiles creates a new ListProfiles use case.
func NewListProfiles(catalog *service.ProfileCatalog) *ListProfiles {
	return &ListProfiles{catalog: catalog}
}

func (uc *ListProfiles) Execute(ctx context.Context) []dto.ProfileResponse {
	_, span := startSpan(ctx, "ListProfiles")
	defer span.End()

	profiles := uc.catalog.All()
	out := make([]dto.ProfileResponse, 0, len(profiles))
	for i, p := range profiles {
		out = append(out, dto.FromProfile(i, p))
	}
	return out
}

// CompareProfiles produces the bar-chart series: one score per profile.
type CompareProfiles struct {
	catalog   *service.ProfileCatalog
	evaluator service.Evaluator
}

// NewCompareProfiles creates a new CompareProfiles use case.
func NewCompareProfiles(catalog *service.ProfileCatalog, evaluator service.Evaluator) *CompareProfiles {
	return &CompareProfiles{catalog: catalog, evaluator: evaluator}
}

func (uc *CompareProfiles) Execute(ctx context.Context) []dto.ProfileScoreResponse {
	_, span := startSpan(ctx, "CompareProfiles")
	defer span.End()

	scores := uc.catalog.Compare(uc.evaluator)
	out := make([]dto.ProfileScoreResponse, 0, len(scores))
	for _, s := range scores {
		out = append(out, dto.FromProfileScore(s))
	}
	return out
}
