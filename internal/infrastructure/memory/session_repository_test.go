package memory_test

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bibbank/signalgraph/internal/domain/model"
	"github.com/bibbank/signalgraph/internal/domain/port"
	"github.com/bibbank/signalgraph/internal/infrastructure/memory"
)

func TestSessionRepository_SaveAndFind(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewSessionRepository()

	session := model.NewSession("Candidate_9")
	session.ToggleSignal("alias_mismatch")
	require.NoError(t, repo.Save(ctx, session))

	found, err := repo.FindByID(ctx, session.ID())
	require.NoError(t, err)

	assert.Equal(t, session.ID(), found.ID())
	assert.Equal(t, "Candidate_9", found.CandidateID())
	assert.Equal(t, session.Version(), found.Version())
	assert.Equal(t, session.CreatedAt(), found.CreatedAt())
	assert.Equal(t, []string{"alias_mismatch"}, found.Selection().IDs())
	assert.Empty(t, found.DomainEvents(), "reconstructed sessions carry no events")
}

func TestSessionRepository_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewSessionRepository()

	session := model.NewSession("")
	require.NoError(t, repo.Save(ctx, session))

	session.ToggleSignal("ssn_mismatch")

	found, err := repo.FindByID(ctx, session.ID())
	require.NoError(t, err)
	assert.Equal(t, 0, found.Selection().Len(), "unsaved changes are not visible")

	found.ToggleSignal("employment_gap")
	again, err := repo.FindByID(ctx, session.ID())
	require.NoError(t, err)
	assert.Equal(t, 0, again.Selection().Len())
}

func TestSessionRepository_NotFound(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewSessionRepository()

	_, err := repo.FindByID(ctx, uuid.New())
	require.ErrorIs(t, err, port.ErrSessionNotFound)

	require.ErrorIs(t, repo.Delete(ctx, uuid.New()), port.ErrSessionNotFound)
}

func TestSessionRepository_Delete(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewSessionRepository()

	session := model.NewSession("c")
	require.NoError(t, repo.Save(ctx, session))
	assert.Equal(t, 1, repo.Len())

	require.NoError(t, repo.Delete(ctx, session.ID()))
	assert.Equal(t, 0, repo.Len())
}

func TestSessionRepository_Concurrent(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewSessionRepository()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s := model.NewSession("c")
			_ = repo.Save(ctx, s)
			_, _ = repo.FindByID(ctx, s.ID())
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, repo.Len())
}
