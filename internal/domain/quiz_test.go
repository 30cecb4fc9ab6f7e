package domain

import (
	"errors"
	"strings"
	"testing"
)

func validCloze() Question {
	return Question{
		ID:            "q1",
		QType:         QTypeCloze,
		Prompt:        "Fill in the blank: Sam visited a ____ in Paris.",
		Options:       []string{},
		CorrectAnswer: "museum",
		Evidence:      "Sam visited a museum in Paris.",
	}
}

func validWH() Question {
	return Question{
		ID:            "q2",
		QType:         QTypeWHMCQ,
		Prompt:        "Who is missing in the sentence: ____ visited a museum in Paris.",
		Options:       []string{"N/A", "Sam", "Unknown"},
		CorrectAnswer: "Sam",
		Evidence:      "Sam visited a museum in Paris.",
	}
}

func TestQuestion_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(q *Question)
		base    func() Question
		wantErr string
	}{
		{"valid cloze", func(q *Question) {}, validCloze, ""},
		{"valid wh", func(q *Question) {}, validWH, ""},
		{"cloze with nil options", func(q *Question) { q.Options = nil }, validCloze, ""},
		{"empty prompt", func(q *Question) { q.Prompt = "" }, validCloze, "prompt is empty"},
		{"empty answer", func(q *Question) { q.CorrectAnswer = "" }, validCloze, "correct answer is empty"},
		{"answer not in evidence", func(q *Question) { q.CorrectAnswer = "zoo" }, validCloze, "not found in evidence"},
		{"cloze with options", func(q *Question) { q.Options = []string{"museum"} }, validCloze, "cloze question has 1 options"},
		{"wh without options", func(q *Question) { q.Options = nil }, validWH, "expected 1-4 options"},
		{"wh with five options", func(q *Question) { q.Options = []string{"Sam", "a", "b", "c", "d"} }, validWH, "expected 1-4 options"},
		{"wh duplicate option", func(q *Question) { q.Options = []string{"Sam", "Sam"} }, validWH, "duplicate option"},
		{"wh answer missing", func(q *Question) { q.Options = []string{"Ann", "Bob"} }, validWH, "correct answer missing from options"},
		{"unknown qtype", func(q *Question) { q.QType = "essay" }, validCloze, "unknown qtype"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := tt.base()
			tt.mutate(&q)
			err := q.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Validate() unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Validate() expected error containing %q, got nil", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %q, want it to contain %q", err.Error(), tt.wantErr)
			}
		})
	}
}

func TestParseQType(t *testing.T) {
	for input, want := range map[string]QType{"cloze": QTypeCloze, " WH_MCQ ": QTypeWHMCQ} {
		got, err := ParseQType(input)
		if err != nil || got != want {
			t.Errorf("ParseQType(%q) = %q, %v; want %q", input, got, err, want)
		}
	}

	_, err := ParseQType("essay")
	var domainErr *DomainError
	if !errors.As(err, &domainErr) || domainErr.Code != CodeInvalidQType {
		t.Errorf("ParseQType(essay) error = %v, want code %s", err, CodeInvalidQType)
	}
}

func TestQuiz_ValidateAndLookup(t *testing.T) {
	quiz := NewQuiz("01HZX", "Museum", "Sam visited a museum in Paris.", []Question{validCloze(), validWH()})
	if err := quiz.Validate(); err != nil {
		t.Fatalf("Validate() unexpected error: %v", err)
	}
	if quiz.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}

	q, ok := quiz.Question("q2")
	if !ok || q.CorrectAnswer != "Sam" {
		t.Errorf("Question(q2) = %+v, %v", q, ok)
	}
	if _, ok := quiz.Question("q9"); ok {
		t.Error("Question(q9) should not be found")
	}

	if err := NewQuiz("", "", "text", nil).Validate(); err == nil {
		t.Error("expected error for missing ID")
	}
	if err := NewQuiz("id", "", "  ", nil).Validate(); err == nil {
		t.Error("expected error for blank passage")
	}

	bad := validWH()
	bad.Options = nil
	if err := NewQuiz("id", "", "text", []Question{bad}).Validate(); err == nil {
		t.Error("expected error for invalid question")
	}
}

func TestNewAttempt(t *testing.T) {
	results := []QuestionResult{
		{QuestionID: "q1", Grade: GradeResult{IsCorrect: true, Score: 1}},
		{QuestionID: "q2", Grade: GradeResult{Score: 0.5}},
		{QuestionID: "q3", Grade: GradeResult{}},
	}
	a := NewAttempt("a1", "quiz1", "Lee", results)

	if a.TotalScore != 1.5 {
		t.Errorf("TotalScore = %v, want 1.5", a.TotalScore)
	}
	if a.MaxScore != 3 {
		t.Errorf("MaxScore = %v, want 3", a.MaxScore)
	}
	if a.CorrectCount() != 1 {
		t.Errorf("CorrectCount() = %d, want 1", a.CorrectCount())
	}

	empty := NewAttempt("a2", "quiz1", "", nil)
	if empty.TotalScore != 0 || empty.MaxScore != 0 {
		t.Errorf("empty attempt scores = %v/%v", empty.TotalScore, empty.MaxScore)
	}
}

func TestDomainError(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewInternalError("failed to save quiz", cause)
	if err.Error() != "failed to save quiz: connection refused" {
		t.Errorf("Error() = %q", err.Error())
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is should see the cause")
	}

	nf := NewQuizNotFoundError("abc")
	if nf.Code != CodeQuizNotFound || nf.Context["quiz_id"] != "abc" {
		t.Errorf("NewQuizNotFoundError = %+v", nf)
	}

	b, jerr := nf.MarshalJSON()
	if jerr != nil {
		t.Fatalf("MarshalJSON: %v", jerr)
	}
	if string(b) != `{"code":"QUIZ_NOT_FOUND","message":"Quiz not found with ID: abc"}` {
		t.Errorf("MarshalJSON = %s", b)
	}
}

func TestValidationErrors(t *testing.T) {
	errs := ValidationErrors{
		NewMissingFieldError("passage"),
		NewOutOfRangeError("num_questions", 40, 1, 12),
	}
	msg := errs.Error()
	if !strings.HasPrefix(msg, "validation failed: ") {
		t.Errorf("Error() = %q", msg)
	}
	if !strings.Contains(msg, "num_questions must be between 1 and 12") {
		t.Errorf("Error() = %q", msg)
	}
}
