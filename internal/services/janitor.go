package services

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"alfredoptarigan/interview-fever/internal/repositories"
)

const (
	janitorBatchSize      = 100
	DefaultSessionIdleTTL = 2 * time.Hour
	DefaultSweepInterval  = 5 * time.Minute
)

// SessionJanitor evicts sessions that have been idle longer than a TTL.
type SessionJanitor interface {
	Start(ctx context.Context)
	Stop()
	Sweep() int
}

type sessionJanitor struct {
	repo     repositories.SessionRepository
	idleTTL  time.Duration
	interval time.Duration
	logger   *zap.Logger
	now      func() time.Time

	wg       sync.WaitGroup
	stopOnce sync.Once
	stopChan chan struct{}
}

func NewSessionJanitor(
	repo repositories.SessionRepository,
	idleTTL time.Duration,
	interval time.Duration,
	logger *zap.Logger,
) SessionJanitor {
	// time.NewTicker panics on a non-positive interval.
	if interval <= 0 {
		interval = DefaultSweepInterval
	}
	if idleTTL <= 0 {
		idleTTL = DefaultSessionIdleTTL
	}
	return &sessionJanitor{
		repo:     repo,
		idleTTL:  idleTTL,
		interval: interval,
		logger:   logger,
		now:      time.Now,
		stopChan: make(chan struct{}),
	}
}

// Start implements SessionJanitor.
func (j *sessionJanitor) Start(ctx context.Context) {
	j.wg.Add(1)
	go j.run(ctx)
	j.logger.Info("session janitor started",
		zap.Duration("idle_ttl", j.idleTTL),
		zap.Duration("interval", j.interval),
	)
}

// Stop implements SessionJanitor.
func (j *sessionJanitor) Stop() {
	j.stopOnce.Do(func() { close(j.stopChan) })
	j.wg.Wait()
	j.logger.Info("session janitor stopped")
}

// Sweep implements SessionJanitor. It returns the number of evicted sessions.
func (j *sessionJanitor) Sweep() int {
	idle, err := j.repo.FindIdle(j.now().Add(-j.idleTTL), janitorBatchSize)
	if err != nil {
		j.logger.Warn("failed to find idle sessions", zap.Error(err))
		return 0
	}

	evicted := 0
	for _, sess := range idle {
		if err := j.repo.Delete(sess.ID); err != nil {
			continue
		}
		evicted++
	}

	if evicted > 0 {
		j.logger.Info("evicted idle sessions", zap.Int("count", evicted))
	}
	return evicted
}

func (j *sessionJanitor) run(ctx context.Context) {
	defer j.wg.Done()
	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-j.stopChan:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			j.Sweep()
		}
	}
}
