package models

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

type Stage string

const (
	StagePreStart  Stage = "pre_start"
	StageInterview Stage = "interview"
	StageCompleted Stage = "completed"
)

type Outcome string

const (
	OutcomeNone     Outcome = ""
	OutcomeAccepted Outcome = "accepted"
	OutcomeRejected Outcome = "rejected"
)

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

type ConversationTurn struct {
	Role       Role      `json:"role"`
	Content    string    `json:"content"`
	Unanswered bool      `json:"unanswered,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// Session is the state of one candidate's interview. Callers serialize access
// with Lock/Unlock; LastActive is safe to read without holding the lock.
type Session struct {
	ID        uuid.UUID
	Stage     Stage
	Outcome   Outcome
	TurnCount int
	Profile   CandidateProfile
	Resume    *ResumeDocument
	History   []ConversationTurn
	CreatedAt time.Time

	mu         sync.Mutex
	lastActive atomic.Int64
}

func NewSession(now time.Time) *Session {
	s := &Session{
		ID:        uuid.New(),
		Stage:     StagePreStart,
		CreatedAt: now,
	}
	s.Touch(now)
	return s
}

func (s *Session) Lock()   { s.mu.Lock() }
func (s *Session) Unlock() { s.mu.Unlock() }

func (s *Session) Touch(now time.Time) {
	s.lastActive.Store(now.UnixNano())
}

func (s *Session) LastActive() time.Time {
	return time.Unix(0, s.lastActive.Load())
}

// Progress is min(TurnCount*20, 100).
func (s *Session) Progress() int {
	p := s.TurnCount * 20
	if p > 100 {
		return 100
	}
	return p
}

func (s *Session) Complete() bool {
	return s.Stage == StageCompleted
}

// Begin moves a pre_start session into the interview with a fresh history.
func (s *Session) Begin(profile CandidateProfile, resume *ResumeDocument, now time.Time) {
	s.Profile = profile
	s.Resume = resume
	s.Stage = StageInterview
	s.Outcome = OutcomeNone
	s.TurnCount = 0
	s.History = nil
	s.Touch(now)
}

// Finish moves the session into its terminal stage.
func (s *Session) Finish(outcome Outcome, now time.Time) {
	s.Stage = StageCompleted
	s.Outcome = outcome
	s.Touch(now)
}

func (s *Session) AppendTurn(role Role, content string, now time.Time) ConversationTurn {
	turn := ConversationTurn{Role: role, Content: content, CreatedAt: now}
	s.History = append(s.History, turn)
	s.Touch(now)
	return turn
}

// PendingTurn returns the trailing user turn whose reply failed, if any.
func (s *Session) PendingTurn() *ConversationTurn {
	if len(s.History) == 0 {
		return nil
	}
	last := &s.History[len(s.History)-1]
	if last.Role != RoleUser || !last.Unanswered {
		return nil
	}
	return last
}

// Transcript returns a copy of the history safe to hand to renderers.
func (s *Session) Transcript() []ConversationTurn {
	out := make([]ConversationTurn, len(s.History))
	copy(out, s.History)
	return out
}
