package handler

import (
	"reading-quiz/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes mounts the API under /api.
func RegisterRoutes(app *fiber.App, quiz *QuizHandler, samples *SampleHandler, health *HealthHandler) {
	vm := middleware.NewValidationMiddleware()

	api := app.Group("/api")
	api.Get("/health", health.Health)
	api.Get("/samples", samples.ListSamples)
	api.Post("/grade", quiz.GradeAnswer)
	api.Post("/highlight", quiz.Highlight)

	quizzes := api.Group("/quizzes")
	quizzes.Post("/", quiz.GenerateQuiz)
	quizzes.Get("/:id", vm.ValidateIDParam("quiz_id"), quiz.GetQuiz)
	quizzes.Get("/:id/export", vm.ValidateIDParam("quiz_id"), quiz.ExportQuiz)
	quizzes.Post("/:id/submissions", vm.ValidateIDParam("quiz_id"), quiz.SubmitAnswers)
	quizzes.Get("/:id/attempts", vm.ValidateIDParam("quiz_id"), quiz.ListAttempts)

	attempts := api.Group("/attempts")
	attempts.Get("/:id", vm.ValidateIDParam("attempt_id"), quiz.GetAttempt)
	attempts.Get("/:id/report", vm.ValidateIDParam("attempt_id"), quiz.GetAttemptReport)
}
