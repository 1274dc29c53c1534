package handlers

import (
	"unicode/utf8"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/interview-fever/internal/models"
	"alfredoptarigan/interview-fever/internal/repositories"
	"alfredoptarigan/interview-fever/internal/services"
)

type UploadHandler struct {
	sessions      repositories.SessionRepository
	uploadService services.UploadService
	interview     services.InterviewService
}

func NewUploadHandler(
	sessions repositories.SessionRepository,
	uploadService services.UploadService,
	interview services.InterviewService,
) *UploadHandler {
	return &UploadHandler{
		sessions:      sessions,
		uploadService: uploadService,
		interview:     interview,
	}
}

// HandleUpload handles POST /sessions/:id/resume
func (h *UploadHandler) HandleUpload(c *fiber.Ctx) error {
	sess, err := findSession(c, h.sessions)
	if err != nil {
		return err
	}

	resumeFile, err := c.FormFile("resume")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Please upload your resume as a PDF in the 'resume' field",
		})
	}

	data, err := h.uploadService.ReadPDF(resumeFile)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	sess.Lock()
	defer sess.Unlock()

	doc, err := h.interview.Start(sess, c.FormValue("email"), c.FormValue("company"), data, resumeFile.Size)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(models.StartResponse{
		SessionID: sess.ID.String(),
		Stage:     string(sess.Stage),
		Extractor: doc.Extractor,
		PageCount: doc.PageCount,
		TextChars: utf8.RuneCountInString(doc.NormalizedText),
	})
}
