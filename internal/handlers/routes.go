package handlers

import (
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
)

type Routes struct {
	Sessions *SessionHandler
	Upload   *UploadHandler
	Answers  *AnswerHandler
	Metrics  http.Handler
}

func Register(app *fiber.App, r Routes) {
	api := app.Group("/api/v1")

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	api.Get("/companies", r.Sessions.HandleCompanies)
	api.Post("/sessions", r.Sessions.HandleCreate)
	api.Get("/sessions/:id", r.Sessions.HandleGet)
	api.Delete("/sessions/:id", r.Sessions.HandleDelete)
	api.Post("/sessions/:id/resume", r.Upload.HandleUpload)
	api.Post("/sessions/:id/answers", r.Answers.HandleAnswer)
	api.Post("/sessions/:id/retry", r.Answers.HandleRetry)

	if r.Metrics != nil {
		app.Get("/metrics", adaptor.HTTPHandler(r.Metrics))
	}

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Interview Fever API",
			"version": "1.0.0",
			"endpoints": []string{
				"GET /api/v1/companies",
				"POST /api/v1/sessions",
				"GET /api/v1/sessions/:id",
				"DELETE /api/v1/sessions/:id",
				"POST /api/v1/sessions/:id/resume",
				"POST /api/v1/sessions/:id/answers",
				"POST /api/v1/sessions/:id/retry",
			},
		})
	})
}

func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}
