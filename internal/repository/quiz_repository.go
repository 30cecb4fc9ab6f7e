package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"reading-quiz/internal/domain"
	"reading-quiz/internal/repository/models"
	"reading-quiz/internal/util"

	"github.com/jmoiron/sqlx"
)

// Column aliases are quoted so Oracle returns lowercase names for sqlx.
const (
	selectQuiz = `SELECT id "id", title "title", passage "passage", created_at "created_at"
	FROM quizzes WHERE id = ?`

	selectQuestions = `SELECT quiz_id "quiz_id", seq "seq", question_id "question_id", qtype "qtype",
		prompt "prompt", options_json "options_json", correct_answer "correct_answer", evidence "evidence"
	FROM quiz_questions WHERE quiz_id = ? ORDER BY seq`

	insertQuiz = `INSERT INTO quizzes (id, title, passage, created_at) VALUES (?, ?, ?, ?)`

	insertQuestion = `INSERT INTO quiz_questions
		(quiz_id, seq, question_id, qtype, prompt, options_json, correct_answer, evidence)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	attemptColumns = `id "id", quiz_id "quiz_id", student_name "student_name", results_json "results_json",
		total_score "total_score", max_score "max_score", created_at "created_at"`

	insertAttempt = `INSERT INTO quiz_attempts
		(id, quiz_id, student_name, results_json, total_score, max_score, created_at)
	VALUES (?, ?, ?, ?, ?, ?, ?)`
)

// QuizDatabaseAdapter implements domain.QuizRepository using sqlx.
type QuizDatabaseAdapter struct {
	db *sqlx.DB
	tx *TransactionManager
}

// NewQuizDatabaseAdapter creates a new instance of QuizDatabaseAdapter
func NewQuizDatabaseAdapter(db *sqlx.DB) domain.QuizRepository {
	return &QuizDatabaseAdapter{db: db, tx: NewTransactionManager(db)}
}

// SaveQuiz inserts the quiz row and one row per question in a single
// transaction.
func (a *QuizDatabaseAdapter) SaveQuiz(ctx context.Context, quiz *domain.Quiz) error {
	if quiz == nil {
		return fmt.Errorf("cannot save nil quiz")
	}
	if quiz.CreatedAt.IsZero() {
		quiz.CreatedAt = time.Now()
	}
	modelQuiz, modelQuestions := toModelQuiz(quiz)

	return a.tx.WithTransaction(ctx, func(ctx context.Context) error {
		exec := GetExecutor(ctx, a.db)
		if _, err := exec.ExecContext(ctx, exec.Rebind(insertQuiz),
			modelQuiz.ID, modelQuiz.Title, modelQuiz.Passage, modelQuiz.CreatedAt,
		); err != nil {
			return fmt.Errorf("failed to save quiz %s: %w", quiz.ID, err)
		}
		for _, q := range modelQuestions {
			if _, err := exec.ExecContext(ctx, exec.Rebind(insertQuestion),
				q.QuizID, q.Seq, q.QuestionID, q.QType, q.Prompt, q.Options, q.CorrectAnswer, q.Evidence,
			); err != nil {
				return fmt.Errorf("failed to save question %s of quiz %s: %w", q.QuestionID, quiz.ID, err)
			}
		}
		return nil
	})
}

// GetQuizByID implements domain.QuizRepository
func (a *QuizDatabaseAdapter) GetQuizByID(ctx context.Context, id string) (*domain.Quiz, error) {
	var modelQuiz models.Quiz
	if err := a.db.GetContext(ctx, &modelQuiz, a.db.Rebind(selectQuiz), id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get quiz by ID %s: %w", id, err)
	}

	var modelQuestions []models.QuizQuestion
	if err := a.db.SelectContext(ctx, &modelQuestions, a.db.Rebind(selectQuestions), id); err != nil {
		return nil, fmt.Errorf("failed to get questions for quiz %s: %w", id, err)
	}
	return toDomainQuiz(&modelQuiz, modelQuestions), nil
}

// SaveAttempt implements domain.QuizRepository
func (a *QuizDatabaseAdapter) SaveAttempt(ctx context.Context, attempt *domain.Attempt) error {
	if attempt == nil {
		return fmt.Errorf("cannot save nil attempt")
	}
	if attempt.CreatedAt.IsZero() {
		attempt.CreatedAt = time.Now()
	}
	m := fromDomainAttempt(attempt)

	exec := GetExecutor(ctx, a.db)
	_, err := exec.ExecContext(ctx, exec.Rebind(insertAttempt),
		m.ID, m.QuizID, m.StudentName, m.Results, m.TotalScore, m.MaxScore, m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save attempt %s: %w", attempt.ID, err)
	}
	return nil
}

// GetAttemptByID implements domain.QuizRepository
func (a *QuizDatabaseAdapter) GetAttemptByID(ctx context.Context, id string) (*domain.Attempt, error) {
	var m models.QuizAttempt
	query := a.db.Rebind(`SELECT ` + attemptColumns + ` FROM quiz_attempts WHERE id = ?`)
	if err := a.db.GetContext(ctx, &m, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get attempt by ID %s: %w", id, err)
	}
	return toDomainAttempt(&m), nil
}

// ListAttemptsByQuiz implements domain.QuizRepository
func (a *QuizDatabaseAdapter) ListAttemptsByQuiz(ctx context.Context, quizID string) ([]*domain.Attempt, error) {
	var rows []models.QuizAttempt
	query := a.db.Rebind(`SELECT ` + attemptColumns + ` FROM quiz_attempts WHERE quiz_id = ? ORDER BY created_at, id`)
	if err := a.db.SelectContext(ctx, &rows, query, quizID); err != nil {
		return nil, fmt.Errorf("failed to list attempts for quiz %s: %w", quizID, err)
	}

	attempts := make([]*domain.Attempt, 0, len(rows))
	for i := range rows {
		attempts = append(attempts, toDomainAttempt(&rows[i]))
	}
	return attempts, nil
}

func toModelQuiz(quiz *domain.Quiz) (*models.Quiz, []models.QuizQuestion) {
	m := &models.Quiz{
		ID:        quiz.ID,
		Title:     util.StringToNullString(quiz.Title),
		Passage:   quiz.Passage,
		CreatedAt: quiz.CreatedAt,
	}
	questions := make([]models.QuizQuestion, 0, len(quiz.Questions))
	for i, q := range quiz.Questions {
		questions = append(questions, models.QuizQuestion{
			QuizID:        quiz.ID,
			Seq:           i + 1,
			QuestionID:    q.ID,
			QType:         string(q.QType),
			Prompt:        q.Prompt,
			Options:       models.StringSlice(q.Options),
			CorrectAnswer: q.CorrectAnswer,
			Evidence:      q.Evidence,
		})
	}
	return m, questions
}

func toDomainQuiz(m *models.Quiz, rows []models.QuizQuestion) *domain.Quiz {
	questions := make([]domain.Question, 0, len(rows))
	for _, r := range rows {
		options := []string(r.Options)
		if options == nil {
			options = []string{}
		}
		questions = append(questions, domain.Question{
			ID:            r.QuestionID,
			QType:         domain.QType(r.QType),
			Prompt:        r.Prompt,
			Options:       options,
			CorrectAnswer: r.CorrectAnswer,
			Evidence:      r.Evidence,
		})
	}
	return &domain.Quiz{
		ID:        m.ID,
		Title:     util.NullStringToString(m.Title),
		Passage:   m.Passage,
		Questions: questions,
		CreatedAt: m.CreatedAt,
	}
}

func fromDomainAttempt(a *domain.Attempt) *models.QuizAttempt {
	return &models.QuizAttempt{
		ID:          a.ID,
		QuizID:      a.QuizID,
		StudentName: util.StringToNullString(a.StudentName),
		Results:     models.ResultList(a.Results),
		TotalScore:  a.TotalScore,
		MaxScore:    a.MaxScore,
		CreatedAt:   a.CreatedAt,
	}
}

func toDomainAttempt(m *models.QuizAttempt) *domain.Attempt {
	results := []domain.QuestionResult(m.Results)
	if results == nil {
		results = []domain.QuestionResult{}
	}
	return &domain.Attempt{
		ID:          m.ID,
		QuizID:      m.QuizID,
		StudentName: util.NullStringToString(m.StudentName),
		Results:     results,
		TotalScore:  m.TotalScore,
		MaxScore:    m.MaxScore,
		CreatedAt:   m.CreatedAt,
	}
}
