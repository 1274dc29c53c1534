package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/interview-fever/internal/models"
	"alfredoptarigan/interview-fever/internal/repositories"
)

type SessionHandler struct {
	sessions repositories.SessionRepository
}

func NewSessionHandler(sessions repositories.SessionRepository) *SessionHandler {
	return &SessionHandler{
		sessions: sessions,
	}
}

// HandleCreate handles POST /sessions
func (h *SessionHandler) HandleCreate(c *fiber.Ctx) error {
	sess := models.NewSession(time.Now())
	resp := models.NewSessionResponse(sess)
	if err := h.sessions.Create(sess); err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(resp)
}

// HandleGet handles GET /sessions/:id
func (h *SessionHandler) HandleGet(c *fiber.Ctx) error {
	sess, err := findSession(c, h.sessions)
	if err != nil {
		return err
	}

	sess.Lock()
	defer sess.Unlock()

	return c.JSON(models.NewSessionResponse(sess))
}

// HandleDelete handles DELETE /sessions/:id
func (h *SessionHandler) HandleDelete(c *fiber.Ctx) error {
	sess, err := findSession(c, h.sessions)
	if err != nil {
		return err
	}

	if err := h.sessions.Delete(sess.ID); err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Session not found")
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// HandleCompanies handles GET /companies
func (h *SessionHandler) HandleCompanies(c *fiber.Ctx) error {
	return c.JSON(models.CompaniesResponse{
		Placeholder: models.CompanyPlaceholder,
		Companies:   models.Companies,
	})
}
