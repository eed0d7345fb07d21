package event

import (
	"time"

	"github.com/google/uuid"

	"github.com/bibbank/signalgraph/pkg/events"
)

const (
	// EventTypeEvaluationCompleted is emitted each time a session selection is scored.
	EventTypeEvaluationCompleted = "signalgraph.evaluation.completed"

	// EventTypeHighRiskDetected is emitted when an evaluation lands in the HIGH tier.
	EventTypeHighRiskDetected = "signalgraph.high_risk.detected"

	aggregateTypeSession = "Session"
)

// EvaluationCompleted is published after a session's selection has been scored.
type EvaluationCompleted struct {
	events.BaseEvent `json:"-"`
	EvaluatedAt      time.Time `json:"evaluated_at"`
	CandidateID      string    `json:"candidate_id"`
	Tier             string    `json:"tier"`
	Signals          []string  `json:"signals"`
	Score            int       `json:"score"`
	SessionID        uuid.UUID `json:"session_id"`
}

// NewEvaluationCompleted creates an EvaluationCompleted event.
func NewEvaluationCompleted(sessionID uuid.UUID, candidateID string, score int, tier string, signals []string, at time.Time) EvaluationCompleted {
	return EvaluationCompleted{
		BaseEvent:   events.NewBaseEvent(EventTypeEvaluationCompleted, sessionID, aggregateTypeSession, at),
		SessionID:   sessionID,
		CandidateID: candidateID,
		Score:       score,
		Tier:        tier,
		Signals:     signals,
		EvaluatedAt: at.UTC(),
	}
}

// HighRiskDetected is published when an evaluation is classified HIGH.
type HighRiskDetected struct {
	events.BaseEvent `json:"-"`
	DetectedAt       time.Time `json:"detected_at"`
	CandidateID      string    `json:"candidate_id"`
	Signals          []string  `json:"signals"`
	Score            int       `json:"score"`
	SessionID        uuid.UUID `json:"session_id"`
}

// NewHighRiskDetected creates a HighRiskDetected event.
func NewHighRiskDetected(sessionID uuid.UUID, candidateID string, score int, signals []string, at time.Time) HighRiskDetected {
	return HighRiskDetected{
		BaseEvent:   events.NewBaseEvent(EventTypeHighRiskDetected, sessionID, aggregateTypeSession, at),
		SessionID:   sessionID,
		CandidateID: candidateID,
		Score:       score,
		Signals:     signals,
		DetectedAt:  at.UTC(),
	}
}
