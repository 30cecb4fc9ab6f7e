package domain

import (
	"fmt"
	"strings"
	"time"
)

// Quiz is a stored set of questions generated from one passage.
type Quiz struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Passage   string     `json:"passage"`
	Questions []Question `json:"questions"`
	CreatedAt time.Time  `json:"created_at"`
}

// NewQuiz creates a new Quiz instance
func NewQuiz(id, title, passage string, questions []Question) *Quiz {
	return &Quiz{
		ID:        id,
		Title:     title,
		Passage:   passage,
		Questions: questions,
		CreatedAt: time.Now(),
	}
}

// Validate validates the quiz
func (q *Quiz) Validate() error {
	if q.ID == "" {
		return fmt.Errorf("quiz ID is required")
	}
	if strings.TrimSpace(q.Passage) == "" {
		return fmt.Errorf("passage is required")
	}
	for i := range q.Questions {
		if err := q.Questions[i].Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Question returns the question with the given id.
func (q *Quiz) Question(id string) (Question, bool) {
	for _, question := range q.Questions {
		if question.ID == id {
			return question, true
		}
	}
	return Question{}, false
}

// QuestionResult is the graded answer to a single question.
type QuestionResult struct {
	QuestionID    string      `json:"question_id"`
	QType         QType       `json:"qtype"`
	UserAnswer    string      `json:"user_answer"`
	CorrectAnswer string      `json:"correct_answer"`
	Grade         GradeResult `json:"grade"`
}

// Attempt is one graded submission of answers for a quiz.
type Attempt struct {
	ID          string           `json:"id"`
	QuizID      string           `json:"quiz_id"`
	StudentName string           `json:"student_name"`
	Results     []QuestionResult `json:"results"`
	TotalScore  float64          `json:"total_score"`
	MaxScore    float64          `json:"max_score"`
	CreatedAt   time.Time        `json:"created_at"`
}

// NewAttempt creates an attempt and totals its scores.
func NewAttempt(id, quizID, studentName string, results []QuestionResult) *Attempt {
	a := &Attempt{
		ID:          id,
		QuizID:      quizID,
		StudentName: studentName,
		Results:     results,
		MaxScore:    float64(len(results)),
		CreatedAt:   time.Now(),
	}
	for _, r := range results {
		a.TotalScore += r.Grade.Score
	}
	return a
}

// CorrectCount returns how many answers were fully correct.
func (a *Attempt) CorrectCount() int {
	n := 0
	for _, r := range a.Results {
		if r.Grade.IsCorrect {
			n++
		}
	}
	return n
}
