package models

import (
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"reading-quiz/internal/domain"
)

// StringSlice stores a list of strings as a JSON array column.
type StringSlice []string

// Value implements the driver.Valuer interface
func (s StringSlice) Value() (driver.Value, error) {
	if s == nil {
		return "[]", nil
	}
	return jsonValue(s)
}

// Scan implements the sql.Scanner interface
func (s *StringSlice) Scan(value interface{}) error {
	*s = StringSlice{}
	return scanJSON(value, s, "StringSlice")
}

// ResultList stores graded answers as a JSON array column.
type ResultList []domain.QuestionResult

// Value implements the driver.Valuer interface
func (r ResultList) Value() (driver.Value, error) {
	if r == nil {
		return "[]", nil
	}
	return jsonValue(r)
}

// Scan implements the sql.Scanner interface
func (r *ResultList) Scan(value interface{}) error {
	*r = ResultList{}
	return scanJSON(value, r, "ResultList")
}

func jsonValue(v interface{}) (driver.Value, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	// Strings bind to CLOB on Oracle where []byte would bind to BLOB.
	return string(b), nil
}

func scanJSON(value interface{}, dst interface{}, typeName string) error {
	var raw []byte
	switch v := value.(type) {
	case nil:
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return errors.New(typeName + " Scan: unsupported type " + fmt.Sprintf("%T", value))
	}
	// Empty and "null" are legacy encodings of an empty list.
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}
	return json.Unmarshal(raw, dst)
}

// Quiz is a row of the quizzes table.
type Quiz struct {
	ID        string         `db:"id"`
	Title     sql.NullString `db:"title"`
	Passage   string         `db:"passage"`
	CreatedAt time.Time      `db:"created_at"`
}

// QuizQuestion is a row of the quiz_questions table. Seq keeps the
// generation order.
type QuizQuestion struct {
	QuizID        string      `db:"quiz_id"`
	Seq           int         `db:"seq"`
	QuestionID    string      `db:"question_id"`
	QType         string      `db:"qtype"`
	Prompt        string      `db:"prompt"`
	Options       StringSlice `db:"options_json"`
	CorrectAnswer string      `db:"correct_answer"`
	Evidence      string      `db:"evidence"`
}

// QuizAttempt is a row of the quiz_attempts table.
type QuizAttempt struct {
	ID          string         `db:"id"`
	QuizID      string         `db:"quiz_id"`
	StudentName sql.NullString `db:"student_name"`
	Results     ResultList     `db:"results_json"`
	TotalScore  float64        `db:"total_score"`
	MaxScore    float64        `db:"max_score"`
	CreatedAt   time.Time      `db:"created_at"`
}
