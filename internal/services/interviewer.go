package services

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"

	"alfredoptarigan/interview-fever/internal/models"
)

const defaultContextTokens = 8192

// InterviewService drives one session through pre_start -> interview -> completed.
// None of its methods lock the session; callers hold the session lock.
type InterviewService interface {
	Start(sess *models.Session, email, company string, resume []byte, declaredSize int64) (*models.ResumeDocument, error)
	Submit(ctx context.Context, sess *models.Session, answer string) (*models.ConversationTurn, error)
	Retry(ctx context.Context, sess *models.Session) (*models.ConversationTurn, error)
}

type interviewService struct {
	ingestion     IngestionService
	model         ChatModel
	detector      *CompletionDetector
	promptBuilder *PromptBuilder
	tokens        *TokenCounter
	contextTokens int
	metrics       *Metrics
	logger        *zap.Logger
	now           func() time.Time
}

func NewInterviewService(
	ingestion IngestionService,
	model ChatModel,
	detector *CompletionDetector,
	contextTokens int,
	metrics *Metrics,
	logger *zap.Logger,
) InterviewService {
	if contextTokens <= 0 {
		contextTokens = defaultContextTokens
	}
	return &interviewService{
		ingestion:     ingestion,
		model:         model,
		detector:      detector,
		promptBuilder: NewPromptBuilder(),
		tokens:        NewTokenCounter(),
		contextTokens: contextTokens,
		metrics:       metrics,
		logger:        logger,
		now:           time.Now,
	}
}

// Start validates the profile, ingests the resume and opens the interview.
// On any failure the session is left untouched.
func (s *interviewService) Start(sess *models.Session, email, company string, resume []byte, declaredSize int64) (*models.ResumeDocument, error) {
	if sess.Stage != models.StagePreStart {
		return nil, newError(KindSessionStarted,
			"The interview has already started. Start a new session to use a different resume.", nil)
	}

	profile, err := ValidateProfile(email, company)
	if err != nil {
		return nil, err
	}

	doc, err := s.ingestion.Ingest(resume, declaredSize)
	if err != nil {
		return nil, err
	}

	sess.Begin(profile, doc, s.now())
	s.logger.Info("interview started",
		zap.String("session_id", sess.ID.String()),
		zap.String("company", profile.Company),
	)

	return doc, nil
}

// Submit records the candidate's answer and asks the model for the next turn.
func (s *interviewService) Submit(ctx context.Context, sess *models.Session, answer string) (*models.ConversationTurn, error) {
	switch sess.Stage {
	case models.StagePreStart:
		return nil, newError(KindNotStarted,
			"Please upload all the credentials to start the interview.", nil)
	case models.StageCompleted:
		return nil, newError(KindInterviewComplete, "The interview is already complete.", nil)
	}

	answer = strings.TrimSpace(answer)
	if answer == "" {
		return nil, newError(KindBlankAnswer, "Please type an answer before submitting.", nil)
	}

	if sess.PendingTurn() != nil {
		return nil, newError(KindReplyPending,
			"The previous answer has not been answered yet. Retry it before sending a new one.", nil)
	}

	sess.AppendTurn(models.RoleUser, answer, s.now())
	sess.TurnCount++

	return s.reply(ctx, sess)
}

// Retry re-sends the conversation when the last answer never got a reply. It
// does not add a turn or advance progress.
func (s *interviewService) Retry(ctx context.Context, sess *models.Session) (*models.ConversationTurn, error) {
	if sess.Stage != models.StageInterview || sess.PendingTurn() == nil {
		return nil, newError(KindNothingToRetry, "There is no unanswered turn to retry.", nil)
	}
	return s.reply(ctx, sess)
}

func (s *interviewService) reply(ctx context.Context, sess *models.Session) (*models.ConversationTurn, error) {
	last := &sess.History[len(sess.History)-1]
	prompt := s.promptBuilder.BuildInterviewPrompt(sess.Profile.Company, sess.Resume.NormalizedText)

	promptTokens := s.tokens.CountTokens(prompt)
	for _, turn := range sess.History {
		promptTokens += s.tokens.CountTokens(turn.Content)
	}
	fields := []zap.Field{
		zap.String("session_id", sess.ID.String()),
		zap.String("model", s.model.Model()),
		zap.Int("turn", sess.TurnCount),
		zap.Int("prompt_tokens", promptTokens),
	}
	if promptTokens > s.contextTokens {
		s.logger.Warn("conversation exceeds model context window",
			append(fields, zap.Int("context_tokens", s.contextTokens))...)
	} else {
		s.logger.Debug("chat model request", fields...)
	}

	start := time.Now()
	raw, err := s.model.Complete(ctx, prompt, sess.Transcript())
	s.metrics.ObserveModelCall(s.model.Model(), err == nil, time.Since(start))
	if err != nil {
		last.Unanswered = true
		s.logger.Error("chat model call failed", append(fields, zap.Error(err))...)
		return nil, newError(KindRemoteCallFailed, "Error generating response", err)
	}
	last.Unanswered = false

	s.logger.Debug("chat model response",
		zap.String("session_id", sess.ID.String()),
		zap.Int("response_length", utf8.RuneCountInString(raw)),
		zap.String("response_preview", TruncateForLog(raw, 200)),
	)

	outcome, display := s.detector.Detect(raw)
	turn := sess.AppendTurn(models.RoleAssistant, display, s.now())

	if outcome != models.OutcomeNone {
		sess.Finish(outcome, s.now())
		s.metrics.ObserveCompletion(string(outcome))
		s.logger.Info("interview completed",
			zap.String("session_id", sess.ID.String()),
			zap.String("outcome", string(outcome)),
			zap.Int("turns", sess.TurnCount),
		)
	}

	return &turn, nil
}

// TruncateForLog shortens s to limit runes, appending an ellipsis when truncated.
func TruncateForLog(s string, limit int) string {
	s = strings.TrimSpace(s)
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}
