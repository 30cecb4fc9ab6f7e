package dto

import "time"

// GenerateQuizRequest represents a request to generate a quiz from a passage
// @Description Request body for generating a quiz
type GenerateQuizRequest struct {
	Title   string `json:"title"`
	Passage string `json:"passage"`
	Count   int    `json:"count"` // 0 selects the configured default
}

// QuestionResponse represents a generated question in the API response
type QuestionResponse struct {
	ID            string   `json:"id"`
	QType         string   `json:"qtype"`
	Prompt        string   `json:"prompt"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correct_answer,omitempty"`
	Evidence      string   `json:"evidence,omitempty"`
}

// QuizResponse represents a quiz in the API response
// @Description Quiz information
type QuizResponse struct {
	ID        string             `json:"id"`
	Title     string             `json:"title"`
	Passage   string             `json:"passage"`
	Questions []QuestionResponse `json:"questions"`
	CreatedAt time.Time          `json:"created_at"`
}

// SubmitAnswersRequest carries a student's answers keyed by question id
// @Description Request body for submitting answers to a quiz
type SubmitAnswersRequest struct {
	StudentName string            `json:"student_name"`
	Answers     map[string]string `json:"answers"`
}

// GradeResponse is the outcome of grading one answer
type GradeResponse struct {
	IsCorrect  bool    `json:"is_correct"`
	Score      float64 `json:"score"`
	Similarity *int    `json:"similarity,omitempty"`
}

// QuestionResultResponse is one graded answer within an attempt
type QuestionResultResponse struct {
	QuestionID    string        `json:"question_id"`
	QType         string        `json:"qtype"`
	UserAnswer    string        `json:"user_answer"`
	CorrectAnswer string        `json:"correct_answer"`
	Grade         GradeResponse `json:"grade"`
	Evidence      string        `json:"evidence,omitempty"` // correct answer highlighted
}

// AttemptResponse represents a graded attempt in the API response
// @Description Graded attempt
type AttemptResponse struct {
	ID           string                   `json:"id"`
	QuizID       string                   `json:"quiz_id"`
	StudentName  string                   `json:"student_name,omitempty"`
	Results      []QuestionResultResponse `json:"results"`
	TotalScore   float64                  `json:"total_score"`
	MaxScore     float64                  `json:"max_score"`
	CorrectCount int                      `json:"correct_count"`
	Percentage   float64                  `json:"percentage"`
	CreatedAt    time.Time                `json:"created_at"`
}

// AttemptListResponse lists the attempts made on one quiz
type AttemptListResponse struct {
	QuizID   string            `json:"quiz_id"`
	Attempts []AttemptResponse `json:"attempts"`
}

// GradeRequest grades a single answer without a stored quiz
// @Description Request body for grading one answer
type GradeRequest struct {
	QType         string `json:"qtype"`
	UserAnswer    string `json:"user_answer"`
	CorrectAnswer string `json:"correct_answer"`
}

// HighlightRequest asks for span to be highlighted inside sentence
type HighlightRequest struct {
	Sentence string `json:"sentence"`
	Span     string `json:"span"`
}

// HighlightResponse carries the highlighted sentence
type HighlightResponse struct {
	HTML string `json:"html"`
}

// SampleResponse is one bundled sample passage
type SampleResponse struct {
	Title string `json:"title"`
	Text  string `json:"text"`
}

// HealthResponse reports the status of the service dependencies
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Cache    string `json:"cache"`
}
