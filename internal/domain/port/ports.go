package port

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/bibbank/signalgraph/internal/domain/model"
	"github.com/bibbank/signalgraph/pkg/events"
)

// ErrSessionNotFound is returned by a SessionRepository for an unknown ID.
var ErrSessionNotFound = errors.New("session not found")

// SessionRepository defines the storage port for evaluation sessions.
type SessionRepository interface {
	// Save stores a new or updated session.
	Save(ctx context.Context, session *model.Session) error

	// FindByID retrieves a session, or ErrSessionNotFound.
	FindByID(ctx context.Context, id uuid.UUID) (*model.Session, error)

	// Delete removes a session, or returns ErrSessionNotFound.
	Delete(ctx context.Context, id uuid.UUID) error
}

// EventPublisher defines the port for publishing domain events.
type EventPublisher interface {
	// Publish sends one or more domain events to the messaging infrastructure.
	Publish(ctx context.Context, events ...events.DomainEvent) error
}

// EvaluationRecorder records evaluation outcomes for monitoring.
type EvaluationRecorder interface {
	RecordEvaluation(ctx context.Context, evaluation model.Evaluation)
}
