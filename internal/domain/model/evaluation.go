package model

import "github.com/bibbank/signalgraph/internal/domain/valueobject"

// Evaluation is the derived result of scoring a selection. It is recomputed
// on every change and never stored.
type Evaluation struct {
	CandidateID string
	// SignalIDs lists the selection in registry order.
	SignalIDs []string
	Tier      valueobject.RiskTier
	Graph     Graph
	Score     int
}
