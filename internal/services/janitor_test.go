package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"alfredoptarigan/interview-fever/internal/models"
	"alfredoptarigan/interview-fever/internal/repositories"
)

func TestSessionJanitor_SweepEvictsIdleSessions(t *testing.T) {
	repo := repositories.NewSessionRepository()
	now := time.Now()

	stale := models.NewSession(now.Add(-3 * time.Hour))
	fresh := models.NewSession(now.Add(-10 * time.Minute))
	require.NoError(t, repo.Create(stale))
	require.NoError(t, repo.Create(fresh))

	janitor := NewSessionJanitor(repo, 2*time.Hour, time.Minute, zap.NewNop())

	assert.Equal(t, 1, janitor.Sweep())
	assert.Equal(t, 1, repo.Count())

	_, err := repo.FindByID(stale.ID)
	assert.ErrorIs(t, err, repositories.ErrSessionNotFound)
	_, err = repo.FindByID(fresh.ID)
	assert.NoError(t, err)
}

func TestSessionJanitor_TouchKeepsSessionAlive(t *testing.T) {
	repo := repositories.NewSessionRepository()
	sess := models.NewSession(time.Now().Add(-3 * time.Hour))
	require.NoError(t, repo.Create(sess))

	sess.Touch(time.Now())

	janitor := NewSessionJanitor(repo, 2*time.Hour, time.Minute, zap.NewNop())
	assert.Zero(t, janitor.Sweep())
	assert.Equal(t, 1, repo.Count())
}

func TestSessionJanitor_RunsUntilStopped(t *testing.T) {
	repo := repositories.NewSessionRepository()
	require.NoError(t, repo.Create(models.NewSession(time.Now().Add(-time.Hour))))

	janitor := NewSessionJanitor(repo, time.Minute, 10*time.Millisecond, zap.NewNop())
	janitor.Start(context.Background())
	defer janitor.Stop()

	assert.Eventually(t, func() bool { return repo.Count() == 0 }, time.Second, 10*time.Millisecond)
}

func TestSessionJanitor_StopIsIdempotent(t *testing.T) {
	janitor := NewSessionJanitor(repositories.NewSessionRepository(), time.Minute, time.Hour, zap.NewNop())
	ctx, cancel := context.WithCancel(context.Background())
	janitor.Start(ctx)
	cancel()

	janitor.Stop()
	janitor.Stop()
}

func TestSessionJanitor_NonPositiveDurationsUseDefaults(t *testing.T) {
	for _, d := range []time.Duration{0, -time.Second} {
		janitor := NewSessionJanitor(repositories.NewSessionRepository(), d, d, zap.NewNop()).(*sessionJanitor)
		assert.Equal(t, DefaultSweepInterval, janitor.interval)
		assert.Equal(t, DefaultSessionIdleTTL, janitor.idleTTL)

		assert.NotPanics(t, func() {
			janitor.Start(context.Background())
			janitor.Stop()
		})
	}
}
