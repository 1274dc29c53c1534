package repositories

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"alfredoptarigan/interview-fever/internal/models"
)

var ErrSessionNotFound = errors.New("session not found")

// SessionRepository holds live sessions for the lifetime of the process.
type SessionRepository interface {
	Create(sess *models.Session) error
	FindByID(id uuid.UUID) (*models.Session, error)
	Delete(id uuid.UUID) error
	FindIdle(before time.Time, limit int) ([]*models.Session, error)
	Count() int
}

type sessionRepository struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*models.Session
}

func NewSessionRepository() SessionRepository {
	return &sessionRepository{sessions: make(map[uuid.UUID]*models.Session)}
}

func (r *sessionRepository) Create(sess *models.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.sessions[sess.ID]; exists {
		return fmt.Errorf("failed to create session: id %s already exists", sess.ID)
	}
	r.sessions[sess.ID] = sess
	return nil
}

func (r *sessionRepository) FindByID(id uuid.UUID) (*models.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sess, ok := r.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return sess, nil
}

func (r *sessionRepository) Delete(id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[id]; !ok {
		return ErrSessionNotFound
	}
	delete(r.sessions, id)
	return nil
}

// FindIdle returns up to limit sessions last active before the given time,
// oldest first. A limit <= 0 means no limit.
func (r *sessionRepository) FindIdle(before time.Time, limit int) ([]*models.Session, error) {
	r.mu.RLock()
	var idle []*models.Session
	for _, sess := range r.sessions {
		if sess.LastActive().Before(before) {
			idle = append(idle, sess)
		}
	}
	r.mu.RUnlock()

	sort.Slice(idle, func(i, j int) bool {
		return idle[i].LastActive().Before(idle[j].LastActive())
	})

	if limit > 0 && len(idle) > limit {
		idle = idle[:limit]
	}
	return idle, nil
}

func (r *sessionRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
