package handler

import (
	"reading-quiz/internal/domain"
	"reading-quiz/internal/dto"
	"reading-quiz/internal/util"
)

// toQuizResponse converts a quiz for the API. Answers and evidence are only
// included when withAnswers is set, so the same quiz can be handed to
// students.
func toQuizResponse(quiz *domain.Quiz, withAnswers bool) dto.QuizResponse {
	resp := dto.QuizResponse{
		ID:        quiz.ID,
		Title:     quiz.Title,
		Passage:   quiz.Passage,
		Questions: make([]dto.QuestionResponse, 0, len(quiz.Questions)),
		CreatedAt: quiz.CreatedAt,
	}
	for _, q := range quiz.Questions {
		options := q.Options
		if options == nil {
			options = []string{}
		}
		qr := dto.QuestionResponse{
			ID:      q.ID,
			QType:   string(q.QType),
			Prompt:  q.Prompt,
			Options: options,
		}
		if withAnswers {
			qr.CorrectAnswer = q.CorrectAnswer
			qr.Evidence = q.Evidence
		}
		resp.Questions = append(resp.Questions, qr)
	}
	return resp
}

func toGradeResponse(g domain.GradeResult) dto.GradeResponse {
	return dto.GradeResponse{
		IsCorrect:  g.IsCorrect,
		Score:      g.Score,
		Similarity: g.Similarity,
	}
}

// toAttemptResponse converts an attempt; highlights may be nil.
func toAttemptResponse(attempt *domain.Attempt, highlights map[string]string) dto.AttemptResponse {
	resp := dto.AttemptResponse{
		ID:           attempt.ID,
		QuizID:       attempt.QuizID,
		StudentName:  attempt.StudentName,
		Results:      make([]dto.QuestionResultResponse, 0, len(attempt.Results)),
		TotalScore:   attempt.TotalScore,
		MaxScore:     attempt.MaxScore,
		CorrectCount: attempt.CorrectCount(),
		Percentage:   util.Percentage(attempt.TotalScore, attempt.MaxScore),
		CreatedAt:    attempt.CreatedAt,
	}
	for _, r := range attempt.Results {
		resp.Results = append(resp.Results, dto.QuestionResultResponse{
			QuestionID:    r.QuestionID,
			QType:         string(r.QType),
			UserAnswer:    r.UserAnswer,
			CorrectAnswer: r.CorrectAnswer,
			Grade:         toGradeResponse(r.Grade),
			Evidence:      highlights[r.QuestionID],
		})
	}
	return resp
}
