package validation

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"reading-quiz/internal/domain"
	"reading-quiz/internal/dto"
	"reading-quiz/internal/util"
)

// Request size limits, in characters.
const (
	MaxTitleLength   = 200
	MaxPassageLength = 20000
	MaxStudentLength = 100
	MaxAnswerLength  = 2000
	MaxAnswers       = 100
)

var questionIDPattern = regexp.MustCompile(`^q[1-9][0-9]*$`)

// Validator provides request validation functionality
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateID checks a path identifier such as a quiz or attempt id.
func (v *Validator) ValidateID(field, id string) domain.ValidationErrors {
	var errors domain.ValidationErrors
	if strings.TrimSpace(id) == "" {
		errors = append(errors, domain.NewMissingFieldError(field))
	} else if !util.IsULID(id) {
		errors = append(errors, domain.NewInvalidFormatError(field, id))
	}
	return errors
}

// ValidateGenerateRequest validates the generate quiz request. The count
// range itself is enforced by the quiz service against configuration.
func (v *Validator) ValidateGenerateRequest(req *dto.GenerateQuizRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if n := utf8.RuneCountInString(req.Title); n > MaxTitleLength {
		errors = append(errors, domain.NewOutOfRangeError("title", n, 0, MaxTitleLength))
	}

	if strings.TrimSpace(req.Passage) == "" {
		errors = append(errors, domain.NewMissingFieldError("passage"))
	} else if n := utf8.RuneCountInString(req.Passage); n > MaxPassageLength {
		errors = append(errors, domain.NewOutOfRangeError("passage", n, 1, MaxPassageLength))
	}

	if req.Count < 0 {
		errors = append(errors, domain.NewInvalidFormatError("count", req.Count))
	}

	return errors
}

// ValidateSubmitRequest validates a submission of answers to quizID.
func (v *Validator) ValidateSubmitRequest(quizID string, req *dto.SubmitAnswersRequest) domain.ValidationErrors {
	errors := v.ValidateID("quiz_id", quizID)

	if n := utf8.RuneCountInString(req.StudentName); n > MaxStudentLength {
		errors = append(errors, domain.NewOutOfRangeError("student_name", n, 0, MaxStudentLength))
	}

	if len(req.Answers) > MaxAnswers {
		errors = append(errors, domain.NewOutOfRangeError("answers", len(req.Answers), 0, MaxAnswers))
		return errors
	}
	for id, answer := range req.Answers {
		if !questionIDPattern.MatchString(id) {
			errors = append(errors, domain.NewInvalidFormatError("answers."+id, id))
			continue
		}
		if n := utf8.RuneCountInString(answer); n > MaxAnswerLength {
			errors = append(errors, domain.NewOutOfRangeError("answers."+id, n, 0, MaxAnswerLength))
		}
	}

	return errors
}

// ValidateGradeRequest validates a standalone grading request.
func (v *Validator) ValidateGradeRequest(req *dto.GradeRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(req.QType) == "" {
		errors = append(errors, domain.NewMissingFieldError("qtype"))
	} else if _, err := domain.ParseQType(req.QType); err != nil {
		errors = append(errors, domain.NewInvalidFormatError("qtype", req.QType))
	}

	if strings.TrimSpace(req.CorrectAnswer) == "" {
		errors = append(errors, domain.NewMissingFieldError("correct_answer"))
	}

	if n := utf8.RuneCountInString(req.UserAnswer); n > MaxAnswerLength {
		errors = append(errors, domain.NewOutOfRangeError("user_answer", n, 0, MaxAnswerLength))
	}

	return errors
}

// ValidateHighlightRequest validates a highlight request.
func (v *Validator) ValidateHighlightRequest(req *dto.HighlightRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if req.Sentence == "" {
		errors = append(errors, domain.NewMissingFieldError("sentence"))
	} else if n := utf8.RuneCountInString(req.Sentence); n > MaxPassageLength {
		errors = append(errors, domain.NewOutOfRangeError("sentence", n, 1, MaxPassageLength))
	}

	return errors
}
