package usecase

import (
	"github.com/bibbank/signalgraph/internal/domain/port"
	"github.com/bibbank/signalgraph/internal/domain/service"
)

// Dependencies are the ports and domain services the use cases share.
type Dependencies struct {
	Sessions  port.SessionRepository
	Publisher port.EventPublisher
	Recorder  port.EvaluationRecorder
	Registry  *service.SignalRegistry
	Catalog   *service.ProfileCatalog
	Exporter  *service.Exporter
}

// Set bundles every use case for the transports.
type Set struct {
	ListSignals       *ListSignals
	EvaluateSelection *EvaluateSelection
	CreateSession     *CreateSession
	GetSession        *GetSession
	DeleteSession     *DeleteSession
	SetCandidate      *SetCandidate
	ToggleSignal      *ToggleSignal
	LoadProfile       *LoadProfile
	ClearSelection    *ClearSelection
	ListProfiles      *ListProfiles
	CompareProfiles   *CompareProfiles
	ExportSelection   *ExportSelection
}

// NewSet wires the use cases. Nil registry, catalog or exporter fall back
// to the built-in defaults.
func NewSet(deps Dependencies) *Set {
	if deps.Registry == nil {
		deps.Registry = service.DefaultSignalRegistry()
	}
	if deps.Catalog == nil {
		deps.Catalog = service.DefaultProfileCatalog()
	}
	if deps.Exporter == nil {
		deps.Exporter = service.NewExporter(nil)
	}

	evaluator := service.NewRiskEvaluator(deps.Registry)

	return &Set{
		ListSignals:       NewListSignals(deps.Registry),
		EvaluateSelection: NewEvaluateSelection(evaluator, deps.Recorder),
		CreateSession:     NewCreateSession(deps.Sessions, deps.Publisher, deps.Recorder, evaluator),
		GetSession:        NewGetSession(deps.Sessions, evaluator),
		DeleteSession:     NewDeleteSession(deps.Sessions),
		SetCandidate:      NewSetCandidate(deps.Sessions, deps.Publisher, deps.Recorder, evaluator),
		ToggleSignal:      NewToggleSignal(deps.Sessions, deps.Publisher, deps.Recorder, evaluator),
		LoadProfile:       NewLoadProfile(deps.Sessions, deps.Publisher, deps.Recorder, evaluator, deps.Catalog),
		ClearSelection:    NewClearSelection(deps.Sessions, deps.Publisher, deps.Recorder, evaluator),
		ListProfiles:      NewListProfiles(deps.Catalog),
		CompareProfiles:   NewCompareProfiles(deps.Catalog, evaluator),
		ExportSelection:   NewExportSelection(deps.Sessions, evaluator, deps.Exporter),
	}
}
