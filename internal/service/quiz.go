package service

import (
	"context"
	"strings"

	"reading-quiz/internal/config"
	"reading-quiz/internal/domain"
	"reading-quiz/internal/logger"
	"reading-quiz/internal/qg"
	"reading-quiz/internal/report"
	"reading-quiz/internal/util"

	"go.uber.org/zap"
)

// Content types of rendered documents.
const (
	ContentTypeText = "text/plain; charset=utf-8"
	ContentTypeHTML = "text/html; charset=utf-8"
)

// Document is a rendered report or export.
type Document struct {
	ContentType string
	Body        string
}

// Submission is a persisted attempt together with the evidence sentence of
// every question, the correct answer highlighted.
type Submission struct {
	Attempt    *domain.Attempt
	Highlights map[string]string
}

// QuizService defines the interface for quiz-related operations
type QuizService interface {
	GenerateQuiz(ctx context.Context, title, passage string, count int) (*domain.Quiz, error)
	GetQuiz(ctx context.Context, quizID string) (*domain.Quiz, error)
	SubmitAnswers(ctx context.Context, quizID, studentName string, answers map[string]string) (*Submission, error)
	GetAttempt(ctx context.Context, attemptID string) (*domain.Attempt, error)
	ListAttempts(ctx context.Context, quizID string) ([]*domain.Attempt, error)
	GradeAnswer(qtype, userAnswer, correctAnswer string) (domain.GradeResult, error)
	Highlight(sentence, span string) string
	RenderAttemptReport(ctx context.Context, attemptID, format string) (*Document, error)
	RenderQuizExport(ctx context.Context, quizID, kind string) (*Document, error)
}

// quizService implements QuizService
type quizService struct {
	repo      domain.QuizRepository
	generator domain.QuestionGenerator
	grader    domain.AnswerGrader
	cache     QuizCacheService
	cfg       *config.Config
}

// NewQuizService creates a new instance of quizService
func NewQuizService(
	repo domain.QuizRepository,
	generator domain.QuestionGenerator,
	grader domain.AnswerGrader,
	cache QuizCacheService,
	cfg *config.Config,
) QuizService {
	return &quizService{
		repo:      repo,
		generator: generator,
		grader:    grader,
		cache:     cache,
		cfg:       cfg,
	}
}

// GenerateQuiz implements QuizService. A count of zero selects the
// configured default.
func (s *quizService) GenerateQuiz(ctx context.Context, title, passage string, count int) (*domain.Quiz, error) {
	gen := s.cfg.Generation
	if count == 0 {
		count = gen.DefaultCount
	}

	var verrs domain.ValidationErrors
	if strings.TrimSpace(passage) == "" {
		verrs = append(verrs, domain.NewMissingFieldError("passage"))
	}
	if count < gen.MinCount || count > gen.MaxCount {
		verrs = append(verrs, domain.NewOutOfRangeError("count", count, gen.MinCount, gen.MaxCount))
	}
	if len(verrs) > 0 {
		return nil, verrs
	}

	questions := s.generator.GenerateQuestions(passage, count)
	if len(questions) < count {
		logger.Get().Info("Passage produced fewer questions than requested",
			zap.Int("requested", count),
			zap.Int("generated", len(questions)))
	}

	quiz := domain.NewQuiz(util.NewULID(), strings.TrimSpace(title), passage, questions)
	if err := s.repo.SaveQuiz(ctx, quiz); err != nil {
		return nil, domain.NewInternalError("Failed to save quiz", err)
	}
	s.cache.PutQuiz(ctx, quiz)

	logger.Get().Info("Quiz generated",
		zap.String("quizID", quiz.ID),
		zap.Int("questions", len(quiz.Questions)))
	return quiz, nil
}

// GetQuiz implements QuizService
func (s *quizService) GetQuiz(ctx context.Context, quizID string) (*domain.Quiz, error) {
	if quiz := s.cache.GetQuiz(ctx, quizID); quiz != nil {
		return quiz, nil
	}

	quiz, err := s.repo.GetQuizByID(ctx, quizID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to get quiz", err)
	}
	if quiz == nil {
		return nil, domain.NewQuizNotFoundError(quizID)
	}
	s.cache.PutQuiz(ctx, quiz)
	return quiz, nil
}

// SubmitAnswers implements QuizService. Unanswered questions are graded as
// empty answers; answers to unknown question ids are ignored.
func (s *quizService) SubmitAnswers(ctx context.Context, quizID, studentName string, answers map[string]string) (*Submission, error) {
	quiz, err := s.GetQuiz(ctx, quizID)
	if err != nil {
		return nil, err
	}

	results := make([]domain.QuestionResult, 0, len(quiz.Questions))
	highlights := make(map[string]string, len(quiz.Questions))
	for _, q := range quiz.Questions {
		userAnswer := answers[q.ID]
		grade, err := s.grader.Grade(q.QType, userAnswer, q.CorrectAnswer)
		if err != nil {
			return nil, domain.NewInternalError("Failed to grade answer", err).
				WithContext("questionID", q.ID)
		}
		results = append(results, domain.QuestionResult{
			QuestionID:    q.ID,
			QType:         q.QType,
			UserAnswer:    userAnswer,
			CorrectAnswer: q.CorrectAnswer,
			Grade:         grade,
		})
		highlights[q.ID] = qg.HighlightSpan(q.Evidence, q.CorrectAnswer)
	}

	for id := range answers {
		if _, ok := quiz.Question(id); !ok {
			logger.Get().Warn("Ignoring answer to unknown question",
				zap.String("quizID", quizID),
				zap.String("questionID", id))
		}
	}

	attempt := domain.NewAttempt(util.NewULID(), quiz.ID, strings.TrimSpace(studentName), results)
	if err := s.repo.SaveAttempt(ctx, attempt); err != nil {
		return nil, domain.NewInternalError("Failed to save attempt", err)
	}
	s.cache.PutAttempt(ctx, attempt)

	logger.Get().Info("Attempt graded",
		zap.String("quizID", quiz.ID),
		zap.String("attemptID", attempt.ID),
		zap.Float64("score", attempt.TotalScore),
		zap.Float64("maxScore", attempt.MaxScore))
	return &Submission{Attempt: attempt, Highlights: highlights}, nil
}

// GetAttempt implements QuizService
func (s *quizService) GetAttempt(ctx context.Context, attemptID string) (*domain.Attempt, error) {
	if attempt := s.cache.GetAttempt(ctx, attemptID); attempt != nil {
		return attempt, nil
	}

	attempt, err := s.repo.GetAttemptByID(ctx, attemptID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to get attempt", err)
	}
	if attempt == nil {
		return nil, domain.NewAttemptNotFoundError(attemptID)
	}
	s.cache.PutAttempt(ctx, attempt)
	return attempt, nil
}

// ListAttempts implements QuizService
func (s *quizService) ListAttempts(ctx context.Context, quizID string) ([]*domain.Attempt, error) {
	if _, err := s.GetQuiz(ctx, quizID); err != nil {
		return nil, err
	}
	attempts, err := s.repo.ListAttemptsByQuiz(ctx, quizID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to list attempts", err)
	}
	return attempts, nil
}

// GradeAnswer implements QuizService
func (s *quizService) GradeAnswer(qtype, userAnswer, correctAnswer string) (domain.GradeResult, error) {
	parsed, err := domain.ParseQType(qtype)
	if err != nil {
		return domain.GradeResult{}, err
	}
	return s.grader.Grade(parsed, userAnswer, correctAnswer)
}

// Highlight implements QuizService
func (s *quizService) Highlight(sentence, span string) string {
	return qg.HighlightSpan(sentence, span)
}

// RenderAttemptReport implements QuizService
func (s *quizService) RenderAttemptReport(ctx context.Context, attemptID, format string) (*Document, error) {
	f, err := report.ParseFormat(format)
	if err != nil {
		return nil, err
	}
	attempt, err := s.GetAttempt(ctx, attemptID)
	if err != nil {
		return nil, err
	}
	quiz, err := s.GetQuiz(ctx, attempt.QuizID)
	if err != nil {
		return nil, err
	}

	if f == report.FormatHTML {
		body, err := report.AttemptHTML(quiz, attempt)
		if err != nil {
			return nil, domain.NewInternalError("Failed to render report", err)
		}
		return &Document{ContentType: ContentTypeHTML, Body: body}, nil
	}
	return &Document{ContentType: ContentTypeText, Body: report.AttemptText(quiz, attempt)}, nil
}

// RenderQuizExport implements QuizService
func (s *quizService) RenderQuizExport(ctx context.Context, quizID, kind string) (*Document, error) {
	k, err := report.ParseExportKind(kind)
	if err != nil {
		return nil, err
	}
	if body, ok := s.cache.GetExport(ctx, quizID, string(k)); ok {
		return &Document{ContentType: ContentTypeText, Body: body}, nil
	}

	quiz, err := s.GetQuiz(ctx, quizID)
	if err != nil {
		return nil, err
	}
	body := report.Export(quiz, k)
	s.cache.PutExport(ctx, quizID, string(k), body)
	return &Document{ContentType: ContentTypeText, Body: body}, nil
}
