// Package grading scores submitted answers against reference answers.
package grading

import (
	"strings"

	"reading-quiz/internal/domain"
	"reading-quiz/internal/logger"

	"go.uber.org/zap"
)

const (
	// CorrectThreshold is the lowest similarity accepted as a correct
	// free-text answer.
	CorrectThreshold = 85
	// PartialThreshold is the lowest similarity that earns partial credit.
	PartialThreshold = 70

	fullScore    = 1.0
	partialScore = 0.5
)

// Grader grades multiple-choice and free-text answers. Free-text answers
// are compared by lemma, so it needs the shared linguistic pipeline.
type Grader struct {
	nlp domain.Pipeline
}

// NewGrader creates a Grader over the given pipeline.
func NewGrader(nlp domain.Pipeline) *Grader {
	return &Grader{nlp: nlp}
}

// Grade dispatches on question type: cloze answers are graded as free text,
// WH answers as an option pick.
func (g *Grader) Grade(qtype domain.QType, userAnswer, correctAnswer string) (domain.GradeResult, error) {
	switch qtype {
	case domain.QTypeCloze:
		return g.GradeShortAnswer(userAnswer, correctAnswer), nil
	case domain.QTypeWHMCQ:
		return GradeMCQ(userAnswer, correctAnswer), nil
	}
	return domain.GradeResult{}, domain.NewInvalidQTypeError(string(qtype))
}

// GradeMCQ is a case-insensitive, whitespace-collapsed exact match.
func GradeMCQ(userAnswer, correctAnswer string) domain.GradeResult {
	if normalize(userAnswer) == normalize(correctAnswer) {
		return domain.GradeResult{IsCorrect: true, Score: fullScore}
	}
	return domain.GradeResult{}
}

// GradeShortAnswer compares the content-word lemmas of both answers with
// TokenSetRatio. An answer with no content words scores zero without a
// similarity.
func (g *Grader) GradeShortAnswer(userAnswer, correctAnswer string) domain.GradeResult {
	user := g.lemmas(userAnswer)
	if user == "" {
		return domain.GradeResult{}
	}
	gold := g.lemmas(correctAnswer)

	sim := TokenSetRatio(user, gold)
	res := domain.GradeResult{Similarity: &sim}
	switch {
	case sim >= CorrectThreshold:
		res.IsCorrect = true
		res.Score = fullScore
	case sim >= PartialThreshold:
		res.Score = partialScore
	}

	logger.Get().Debug("grading: short answer",
		zap.String("user_lemmas", user),
		zap.String("gold_lemmas", gold),
		zap.Int("similarity", sim),
		zap.Float64("score", res.Score))
	return res
}

// lemmas returns the lowercased lemmas of alphabetic non-stopword tokens
// joined by single spaces.
func (g *Grader) lemmas(text string) string {
	var out []string
	for _, s := range g.nlp.Segment(text) {
		for _, t := range s.Tokens {
			if t.IsAlpha && !t.IsStop {
				out = append(out, strings.ToLower(t.Lemma))
			}
		}
	}
	return strings.Join(out, " ")
}

func normalize(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}
