// Package report renders graded attempts and printable quiz exports.
package report

import (
	"fmt"
	"strings"

	"reading-quiz/internal/domain"
	"reading-quiz/internal/util"
)

const (
	reportTitle = "Reading Comprehension - Quiz Report"
	rule        = "========================================"
	noAnswer    = "(no answer)"
	blankLine   = "____________________"
)

// Format selects how an attempt report is rendered.
type Format string

const (
	FormatText Format = "text"
	FormatHTML Format = "html"
)

// ParseFormat accepts "text" (the default for "") and "html".
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case "", FormatText:
		return FormatText, nil
	case FormatHTML:
		return FormatHTML, nil
	}
	return "", domain.NewInvalidInputError(fmt.Sprintf("unsupported report format: %s", s)).
		WithContext("format", s)
}

// ExportKind selects which printable view of a quiz is produced.
type ExportKind string

const (
	KindQuiz      ExportKind = "quiz"
	KindAnswerKey ExportKind = "answer_key"
)

// ParseExportKind accepts "quiz" (the default for "") and "answer_key".
func ParseExportKind(s string) (ExportKind, error) {
	switch ExportKind(strings.ToLower(strings.TrimSpace(s))) {
	case "", KindQuiz:
		return KindQuiz, nil
	case KindAnswerKey:
		return KindAnswerKey, nil
	}
	return "", domain.NewInvalidInputError(fmt.Sprintf("unsupported export kind: %s", s)).
		WithContext("kind", s)
}

// row pairs a question with its graded result, if any.
type row struct {
	Index    int
	Question domain.Question
	Result   *domain.QuestionResult
}

func rows(quiz *domain.Quiz, attempt *domain.Attempt) []row {
	byID := make(map[string]*domain.QuestionResult, len(attempt.Results))
	for i := range attempt.Results {
		byID[attempt.Results[i].QuestionID] = &attempt.Results[i]
	}
	out := make([]row, 0, len(quiz.Questions))
	for i, q := range quiz.Questions {
		out = append(out, row{Index: i + 1, Question: q, Result: byID[q.ID]})
	}
	return out
}

func (r row) studentAnswer() string {
	if r.Result == nil || strings.TrimSpace(r.Result.UserAnswer) == "" {
		return noAnswer
	}
	return r.Result.UserAnswer
}

func (r row) verdict() string {
	if r.Result == nil {
		return "Incorrect"
	}
	g := r.Result.Grade
	var v string
	switch {
	case g.IsCorrect:
		v = "Correct"
	case g.Score > 0:
		v = fmt.Sprintf("Partial (%.1f)", g.Score)
	default:
		v = "Incorrect"
	}
	if g.Similarity != nil {
		v += fmt.Sprintf(", similarity %d", *g.Similarity)
	}
	return v
}

func summary(attempt *domain.Attempt) string {
	return fmt.Sprintf("Summary: %d correct, score %.1f/%.0f (%.1f%%)",
		attempt.CorrectCount(), attempt.TotalScore, attempt.MaxScore,
		util.Percentage(attempt.TotalScore, attempt.MaxScore))
}

// AttemptText renders a plain-text report of a graded attempt in quiz
// question order.
func AttemptText(quiz *domain.Quiz, attempt *domain.Attempt) string {
	var b strings.Builder
	b.WriteString(reportTitle + "\n")
	b.WriteString(rule + "\n")
	if quiz.Title != "" {
		fmt.Fprintf(&b, "Quiz: %s\n", quiz.Title)
	}
	if attempt.StudentName != "" {
		fmt.Fprintf(&b, "Student: %s\n", attempt.StudentName)
	}
	b.WriteString("\nPassage:\n")
	b.WriteString(strings.TrimSpace(quiz.Passage) + "\n")
	b.WriteString("\nQuestions & Answers:\n")

	for _, r := range rows(quiz, attempt) {
		fmt.Fprintf(&b, "%d. (%s) %s\n", r.Index, r.Question.QType, r.Question.Prompt)
		fmt.Fprintf(&b, "   - Student: %s\n", r.studentAnswer())
		fmt.Fprintf(&b, "   - Correct: %s\n", r.Question.CorrectAnswer)
		fmt.Fprintf(&b, "   - Result: %s\n", r.verdict())
		fmt.Fprintf(&b, "   - Evidence: %s\n\n", r.Question.Evidence)
	}
	b.WriteString(summary(attempt))
	return b.String()
}

// QuizSheet renders the printable quiz without answers.
func QuizSheet(quiz *domain.Quiz) string {
	var b strings.Builder
	b.WriteString(heading(quiz) + "\n")
	b.WriteString(rule + "\n")
	fmt.Fprintf(&b, "Name: %s\n\nPassage:\n%s\n\nQuestions:\n", blankLine, strings.TrimSpace(quiz.Passage))

	for i, q := range quiz.Questions {
		fmt.Fprintf(&b, "%d. %s\n", i+1, q.Prompt)
		if q.QType == domain.QTypeWHMCQ {
			for j, opt := range q.Options {
				fmt.Fprintf(&b, "   %c) %s\n", 'A'+j, opt)
			}
		} else {
			fmt.Fprintf(&b, "   Answer: %s\n", blankLine)
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// AnswerKey renders the correct answer and evidence for every question.
func AnswerKey(quiz *domain.Quiz) string {
	var b strings.Builder
	b.WriteString(heading(quiz) + " - Answer Key\n")
	b.WriteString(rule + "\n")
	for i, q := range quiz.Questions {
		fmt.Fprintf(&b, "%d. %s\n", i+1, q.CorrectAnswer)
		fmt.Fprintf(&b, "   Evidence: %s\n", q.Evidence)
	}
	return strings.TrimRight(b.String(), "\n")
}

// Export renders the requested printable view of quiz.
func Export(quiz *domain.Quiz, kind ExportKind) string {
	if kind == KindAnswerKey {
		return AnswerKey(quiz)
	}
	return QuizSheet(quiz)
}

func heading(quiz *domain.Quiz) string {
	if quiz.Title != "" {
		return quiz.Title
	}
	return "Reading Comprehension Quiz"
}
