package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/bibbank/signalgraph/internal/domain/model"
	"github.com/bibbank/signalgraph/internal/domain/port"
)

// sessionRecord is the stored form of a session: state only, no events.
type sessionRecord struct {
	createdAt time.Time
	updatedAt time.Time
	selection *model.SelectionSet
	version   int
}

// SessionRepository implements port.SessionRepository in process memory.
// Callers always receive their own copy of a session.
type SessionRepository struct {
	records map[uuid.UUID]sessionRecord
	mu      sync.RWMutex
}

// NewSessionRepository creates an empty SessionRepository.
func NewSessionRepository() *SessionRepository {
	return &SessionRepository{records: make(map[uuid.UUID]sessionRecord)}
}

// Save stores a snapshot of session. Last write wins.
func (r *SessionRepository) Save(_ context.Context, session *model.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.records[session.ID()] = sessionRecord{
		selection: session.Selection(),
		version:   session.Version(),
		createdAt: session.CreatedAt(),
		updatedAt: session.UpdatedAt(),
	}
	return nil
}

// FindByID returns a copy of the stored session.
func (r *SessionRepository) FindByID(_ context.Context, id uuid.UUID) (*model.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.records[id]
	if !ok {
		return nil, port.ErrSessionNotFound
	}
	return model.ReconstructSession(id, rec.selection, rec.version, rec.createdAt, rec.updatedAt), nil
}

// Delete removes a session.
func (r *SessionRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.records[id]; !ok {
		return port.ErrSessionNotFound
	}
	delete(r.records, id)
	return nil
}

// Len returns the number of stored sessions.
func (r *SessionRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.records)
}
