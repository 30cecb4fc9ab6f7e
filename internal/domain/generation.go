package domain

// QuestionGenerator turns a passage into at most n questions.
type QuestionGenerator interface {
	GenerateQuestions(passage string, n int) []Question
}

// AnswerGrader grades one answer against its reference.
type AnswerGrader interface {
	Grade(qtype QType, userAnswer, correctAnswer string) (GradeResult, error)
}
