package models

import "time"

type StartResponse struct {
	SessionID string `json:"session_id"`
	Stage     string `json:"stage"`
	Extractor string `json:"extractor"`
	PageCount int    `json:"page_count"`
	TextChars int    `json:"text_chars"`
}

type AnswerRequest struct {
	Answer string `json:"answer"`
}

type AnswerResponse struct {
	Reply   *ConversationTurn `json:"reply,omitempty"`
	Session SessionResponse   `json:"session"`
}

type SessionResponse struct {
	ID         string             `json:"id"`
	Stage      string             `json:"stage"`
	Outcome    string             `json:"outcome,omitempty"`
	Complete   bool               `json:"complete"`
	TurnCount  int                `json:"turn_count"`
	Progress   int                `json:"progress"`
	Email      string             `json:"email,omitempty"`
	Company    string             `json:"company,omitempty"`
	Transcript []ConversationTurn `json:"transcript"`
	CreatedAt  time.Time          `json:"created_at"`
	UpdatedAt  time.Time          `json:"updated_at"`
}

type CompaniesResponse struct {
	Placeholder string   `json:"placeholder"`
	Companies   []string `json:"companies"`
}

// NewSessionResponse snapshots s. The caller must hold the session lock.
func NewSessionResponse(s *Session) SessionResponse {
	return SessionResponse{
		ID:         s.ID.String(),
		Stage:      string(s.Stage),
		Outcome:    string(s.Outcome),
		Complete:   s.Complete(),
		TurnCount:  s.TurnCount,
		Progress:   s.Progress(),
		Email:      s.Profile.Email,
		Company:    s.Profile.Company,
		Transcript: s.Transcript(),
		CreatedAt:  s.CreatedAt,
		UpdatedAt:  s.LastActive(),
	}
}
