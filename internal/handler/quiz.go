package handler

import (
	"reading-quiz/internal/dto"
	"reading-quiz/internal/logger"
	"reading-quiz/internal/middleware"
	"reading-quiz/internal/service"
	"reading-quiz/internal/validation"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// QuizHandler handles quiz-related HTTP requests
type QuizHandler struct {
	service   service.QuizService
	validator *validation.Validator
}

// NewQuizHandler creates a new QuizHandler instance
func NewQuizHandler(service service.QuizService) *QuizHandler {
	return &QuizHandler{
		service:   service,
		validator: validation.NewValidator(),
	}
}

func validatedID(c *fiber.Ctx) string {
	if id, ok := c.Locals(middleware.ValidatedIDKey).(string); ok {
		return id
	}
	return c.Params("id")
}

// GenerateQuiz godoc
// @Summary Generate a quiz from a passage
// @Description Generates cloze and WH multiple-choice questions from the passage and stores them as a quiz
// @Tags quiz
// @Accept json
// @Produce json
// @Param request body dto.GenerateQuizRequest true "Passage and question count"
// @Success 201 {object} dto.QuizResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /quizzes [post]
func (h *QuizHandler) GenerateQuiz(c *fiber.Ctx) error {
	var req dto.GenerateQuizRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Get().Warn("Failed to parse generate request", zap.Error(err))
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if errs := h.validator.ValidateGenerateRequest(&req); len(errs) > 0 {
		return errs
	}

	quiz, err := h.service.GenerateQuiz(c.UserContext(), req.Title, req.Passage, req.Count)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(toQuizResponse(quiz, true))
}

// GetQuiz godoc
// @Summary Get a quiz
// @Description Returns a stored quiz. Answers and evidence are omitted unless include_answers=true.
// @Tags quiz
// @Produce json
// @Param id path string true "Quiz ID (ULID)"
// @Param include_answers query bool false "Include correct answers and evidence"
// @Success 200 {object} dto.QuizResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /quizzes/{id} [get]
func (h *QuizHandler) GetQuiz(c *fiber.Ctx) error {
	quiz, err := h.service.GetQuiz(c.UserContext(), validatedID(c))
	if err != nil {
		return err
	}
	return c.JSON(toQuizResponse(quiz, c.QueryBool("include_answers", false)))
}

// ExportQuiz godoc
// @Summary Export a quiz
// @Description Renders a printable quiz sheet without answers, or the answer key
// @Tags quiz
// @Produce plain
// @Param id path string true "Quiz ID (ULID)"
// @Param kind query string false "quiz or answer_key" default(quiz)
// @Success 200 {string} string
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /quizzes/{id}/export [get]
func (h *QuizHandler) ExportQuiz(c *fiber.Ctx) error {
	doc, err := h.service.RenderQuizExport(c.UserContext(), validatedID(c), c.Query("kind"))
	if err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, doc.ContentType)
	return c.SendString(doc.Body)
}

// SubmitAnswers godoc
// @Summary Submit answers to a quiz
// @Description Grades every question of the quiz and stores the attempt. Unanswered questions score zero.
// @Tags attempts
// @Accept json
// @Produce json
// @Param id path string true "Quiz ID (ULID)"
// @Param request body dto.SubmitAnswersRequest true "Answers keyed by question id"
// @Success 201 {object} dto.AttemptResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /quizzes/{id}/submissions [post]
func (h *QuizHandler) SubmitAnswers(c *fiber.Ctx) error {
	var req dto.SubmitAnswersRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Get().Warn("Failed to parse submission", zap.Error(err))
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	quizID := validatedID(c)
	if errs := h.validator.ValidateSubmitRequest(quizID, &req); len(errs) > 0 {
		return errs
	}

	sub, err := h.service.SubmitAnswers(c.UserContext(), quizID, req.StudentName, req.Answers)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(toAttemptResponse(sub.Attempt, sub.Highlights))
}

// ListAttempts godoc
// @Summary List attempts for a quiz
// @Tags attempts
// @Produce json
// @Param id path string true "Quiz ID (ULID)"
// @Success 200 {object} dto.AttemptListResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /quizzes/{id}/attempts [get]
func (h *QuizHandler) ListAttempts(c *fiber.Ctx) error {
	quizID := validatedID(c)
	attempts, err := h.service.ListAttempts(c.UserContext(), quizID)
	if err != nil {
		return err
	}
	resp := dto.AttemptListResponse{
		QuizID:   quizID,
		Attempts: make([]dto.AttemptResponse, 0, len(attempts)),
	}
	for _, a := range attempts {
		resp.Attempts = append(resp.Attempts, toAttemptResponse(a, nil))
	}
	return c.JSON(resp)
}

// GetAttempt godoc
// @Summary Get a graded attempt
// @Tags attempts
// @Produce json
// @Param id path string true "Attempt ID (ULID)"
// @Success 200 {object} dto.AttemptResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /attempts/{id} [get]
func (h *QuizHandler) GetAttempt(c *fiber.Ctx) error {
	attempt, err := h.service.GetAttempt(c.UserContext(), validatedID(c))
	if err != nil {
		return err
	}
	return c.JSON(toAttemptResponse(attempt, nil))
}

// GetAttemptReport godoc
// @Summary Render an attempt report
// @Description Renders the graded attempt as plain text or as an HTML page with highlighted evidence
// @Tags attempts
// @Produce plain,html
// @Param id path string true "Attempt ID (ULID)"
// @Param format query string false "text or html" default(text)
// @Success 200 {string} string
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /attempts/{id}/report [get]
func (h *QuizHandler) GetAttemptReport(c *fiber.Ctx) error {
	doc, err := h.service.RenderAttemptReport(c.UserContext(), validatedID(c), c.Query("format"))
	if err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, doc.ContentType)
	return c.SendString(doc.Body)
}

// GradeAnswer godoc
// @Summary Grade a single answer
// @Description Grades an answer against a reference: exact match for wh_mcq, lemma and fuzzy match for cloze
// @Tags grading
// @Accept json
// @Produce json
// @Param request body dto.GradeRequest true "Answer to grade"
// @Success 200 {object} dto.GradeResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Router /grade [post]
func (h *QuizHandler) GradeAnswer(c *fiber.Ctx) error {
	var req dto.GradeRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if errs := h.validator.ValidateGradeRequest(&req); len(errs) > 0 {
		return errs
	}

	result, err := h.service.GradeAnswer(req.QType, req.UserAnswer, req.CorrectAnswer)
	if err != nil {
		return err
	}
	return c.JSON(toGradeResponse(result))
}

// Highlight godoc
// @Summary Highlight a span in a sentence
// @Tags grading
// @Accept json
// @Produce json
// @Param request body dto.HighlightRequest true "Sentence and span"
// @Success 200 {object} dto.HighlightResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Router /highlight [post]
func (h *QuizHandler) Highlight(c *fiber.Ctx) error {
	var req dto.HighlightRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if errs := h.validator.ValidateHighlightRequest(&req); len(errs) > 0 {
		return errs
	}
	return c.JSON(dto.HighlightResponse{HTML: h.service.Highlight(req.Sentence, req.Span)})
}
