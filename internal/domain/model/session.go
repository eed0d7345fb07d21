package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/bibbank/signalgraph/internal/domain/event"
	"github.com/bibbank/signalgraph/internal/domain/valueobject"
	"github.com/bibbank/signalgraph/pkg/events"
)

// DefaultCandidateID is the candidate a fresh session starts with.
const DefaultCandidateID = "Candidate_001"

// Session is the aggregate root for one operator's editing state: a single
// active candidate and its selection.
type Session struct {
	events.EventCollector
	createdAt time.Time
	updatedAt time.Time
	selection *SelectionSet
	version   int
	id        uuid.UUID
}

// NewSession creates a session for candidateID with an empty selection.
// A blank candidateID falls back to DefaultCandidateID.
func NewSession(candidateID string) *Session {
	if candidateID == "" {
		candidateID = DefaultCandidateID
	}
	sel, err := NewSelectionSet(candidateID)
	if err != nil {
		sel, _ = NewSelectionSet(DefaultCandidateID)
	}

	now := time.Now().UTC()
	return &Session{
		id:        uuid.New(),
		selection: sel,
		version:   1,
		createdAt: now,
		updatedAt: now,
	}
}

// ReconstructSession rebuilds a Session from stored state (no events).
func ReconstructSession(id uuid.UUID, selection *SelectionSet, version int, createdAt, updatedAt time.Time) *Session {
	return &Session{
		id:        id,
		selection: selection.Clone(),
		version:   version,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// SetCandidate rebinds the session to another candidate, keeping the selection.
func (s *Session) SetCandidate(candidateID string) error {
	if err := s.selection.SetCandidateID(candidateID); err != nil {
		return err
	}
	s.touch()
	return nil
}

// ToggleSignal flips a signal and returns whether it is now selected.
func (s *Session) ToggleSignal(signalID string) bool {
	selected := s.selection.Toggle(signalID)
	s.touch()
	return selected
}

// Replace swaps in a whole selection, as when a synthetic profile is loaded.
func (s *Session) Replace(selection *SelectionSet) {
	s.selection = selection.Clone()
	s.touch()
}

// Clear deselects every signal.
func (s *Session) Clear() {
	s.selection.Clear()
	s.touch()
}

// RecordEvaluation raises the events for a fresh evaluation of this session.
func (s *Session) RecordEvaluation(e Evaluation) {
	at := time.Now().UTC()

	s.Record(event.NewEvaluationCompleted(s.id, e.CandidateID, e.Score, e.Tier.String(), e.SignalIDs, at))

	if e.Tier.Equal(valueobject.RiskTierHigh) {
		s.Record(event.NewHighRiskDetected(s.id, e.CandidateID, e.Score, e.SignalIDs, at))
	}
}

func (s *Session) touch() {
	s.version++
	s.updatedAt = time.Now().UTC()
}

// --- Accessors ---

func (s *Session) ID() uuid.UUID        { return s.id }
func (s *Session) CandidateID() string  { return s.selection.CandidateID() }
func (s *Session) Version() int         { return s.version }
func (s *Session) CreatedAt() time.Time { return s.createdAt }
func (s *Session) UpdatedAt() time.Time { return s.updatedAt }

// Selection returns a copy of the current selection.
func (s *Session) Selection() *SelectionSet { return s.selection.Clone() }

// DomainEvents returns all accumulated domain events and clears them.
func (s *Session) DomainEvents() []events.DomainEvent {
	return s.ClearEvents()
}
