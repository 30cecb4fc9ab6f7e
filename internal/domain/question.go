package domain

import (
	"fmt"
	"strings"
)

// QType identifies how a question is presented and graded.
type QType string

const (
	QTypeCloze QType = "cloze"
	QTypeWHMCQ QType = "wh_mcq"
)

// ParseQType validates a question type coming from outside the core.
func ParseQType(s string) (QType, error) {
	switch QType(strings.ToLower(strings.TrimSpace(s))) {
	case QTypeCloze:
		return QTypeCloze, nil
	case QTypeWHMCQ:
		return QTypeWHMCQ, nil
	}
	return "", NewInvalidQTypeError(s)
}

// BlankMarker replaces the answer span in a question prompt.
const BlankMarker = "____"

// Question is a generated question. ID is assigned by the orchestrator only
// after final selection.
type Question struct {
	ID            string   `json:"id"`
	QType         QType    `json:"qtype"`
	Prompt        string   `json:"prompt"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correct_answer"`
	Evidence      string   `json:"evidence"`
}

// Validate checks the structural invariants every generated question holds.
func (q *Question) Validate() error {
	if q.Prompt == "" {
		return fmt.Errorf("question %s: prompt is empty", q.ID)
	}
	if q.CorrectAnswer == "" {
		return fmt.Errorf("question %s: correct answer is empty", q.ID)
	}
	if !strings.Contains(q.Evidence, q.CorrectAnswer) {
		return fmt.Errorf("question %s: correct answer %q not found in evidence", q.ID, q.CorrectAnswer)
	}

	switch q.QType {
	case QTypeCloze:
		if len(q.Options) != 0 {
			return fmt.Errorf("question %s: cloze question has %d options", q.ID, len(q.Options))
		}
	case QTypeWHMCQ:
		if len(q.Options) < 1 || len(q.Options) > 4 {
			return fmt.Errorf("question %s: expected 1-4 options, got %d", q.ID, len(q.Options))
		}
		seen := make(map[string]struct{}, len(q.Options))
		found := false
		for _, opt := range q.Options {
			if _, dup := seen[opt]; dup {
				return fmt.Errorf("question %s: duplicate option %q", q.ID, opt)
			}
			seen[opt] = struct{}{}
			if opt == q.CorrectAnswer {
				found = true
			}
		}
		if !found {
			return fmt.Errorf("question %s: correct answer missing from options", q.ID)
		}
	default:
		return fmt.Errorf("question %s: unknown qtype %q", q.ID, q.QType)
	}
	return nil
}

// GradeResult is the outcome of grading one answer. Similarity is only set
// by free-text grading.
type GradeResult struct {
	IsCorrect  bool    `json:"is_correct"`
	Score      float64 `json:"score"`
	Similarity *int    `json:"similarity,omitempty"`
}
