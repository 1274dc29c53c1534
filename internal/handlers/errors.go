package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"alfredoptarigan/interview-fever/internal/models"
	"alfredoptarigan/interview-fever/internal/repositories"
	"alfredoptarigan/interview-fever/internal/services"
)

var statusByKind = map[services.ErrorKind]int{
	services.KindTooLarge:          fiber.StatusRequestEntityTooLarge,
	services.KindExtractionFailed:  fiber.StatusUnprocessableEntity,
	services.KindLikelyScanned:     fiber.StatusUnprocessableEntity,
	services.KindMissingSections:   fiber.StatusUnprocessableEntity,
	services.KindInvalidEmail:      fiber.StatusUnprocessableEntity,
	services.KindNoCompanySelected: fiber.StatusUnprocessableEntity,
	services.KindBlankAnswer:       fiber.StatusUnprocessableEntity,
	services.KindNotStarted:        fiber.StatusConflict,
	services.KindSessionStarted:    fiber.StatusConflict,
	services.KindInterviewComplete: fiber.StatusConflict,
	services.KindReplyPending:      fiber.StatusConflict,
	services.KindNothingToRetry:    fiber.StatusConflict,
	services.KindRemoteCallFailed:  fiber.StatusBadGateway,
}

// respondError renders a service error with its user-facing message. Anything
// else is passed on to the app's error handler.
func respondError(c *fiber.Ctx, err error) error {
	var svcErr *services.Error
	if !errors.As(err, &svcErr) {
		return err
	}

	status, ok := statusByKind[svcErr.Kind]
	if !ok {
		status = fiber.StatusInternalServerError
	}

	return c.Status(status).JSON(fiber.Map{
		"error": svcErr.Message,
		"kind":  svcErr.Kind,
		"code":  status,
	})
}

func findSession(c *fiber.Ctx, sessions repositories.SessionRepository) (*models.Session, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid session ID format")
	}

	sess, err := sessions.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrSessionNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Session not found")
		}
		return nil, err
	}
	return sess, nil
}
