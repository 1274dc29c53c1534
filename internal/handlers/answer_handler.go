package handlers

import (
	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/interview-fever/internal/models"
	"alfredoptarigan/interview-fever/internal/repositories"
	"alfredoptarigan/interview-fever/internal/services"
)

type AnswerHandler struct {
	sessions  repositories.SessionRepository
	interview services.InterviewService
}

func NewAnswerHandler(
	sessions repositories.SessionRepository,
	interview services.InterviewService,
) *AnswerHandler {
	return &AnswerHandler{
		sessions:  sessions,
		interview: interview,
	}
}

// HandleAnswer handles POST /sessions/:id/answers
func (h *AnswerHandler) HandleAnswer(c *fiber.Ctx) error {
	var req models.AnswerRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	sess, err := findSession(c, h.sessions)
	if err != nil {
		return err
	}

	sess.Lock()
	defer sess.Unlock()

	reply, err := h.interview.Submit(c.UserContext(), sess, req.Answer)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(models.AnswerResponse{
		Reply:   reply,
		Session: models.NewSessionResponse(sess),
	})
}

// HandleRetry handles POST /sessions/:id/retry
func (h *AnswerHandler) HandleRetry(c *fiber.Ctx) error {
	sess, err := findSession(c, h.sessions)
	if err != nil {
		return err
	}

	sess.Lock()
	defer sess.Unlock()

	reply, err := h.interview.Retry(c.UserContext(), sess)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(models.AnswerResponse{
		Reply:   reply,
		Session: models.NewSessionResponse(sess),
	})
}
