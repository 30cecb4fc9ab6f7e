// Package qg generates cloze and WH multiple-choice questions from a
// passage using an injected linguistic pipeline.
package qg

import (
	"fmt"

	"reading-quiz/internal/domain"
	"reading-quiz/internal/logger"

	"go.uber.org/zap"
)

const minPoolSize = 8

// Generator turns passages into questions. It is safe for concurrent use
// when its Pipeline and Rand are.
type Generator struct {
	nlp domain.Pipeline
	rng domain.Rand
}

// NewGenerator creates a Generator. A nil rng selects domain.DefaultRand.
func NewGenerator(nlp domain.Pipeline, rng domain.Rand) *Generator {
	if rng == nil {
		rng = domain.DefaultRand()
	}
	return &Generator{nlp: nlp, rng: rng}
}

// GenerateQuestions returns at most n questions for passage, roughly half
// cloze and half WH, with ids q1..qk in acceptance order. Fewer than n
// questions is a normal outcome for short or entity-poor passages.
func (g *Generator) GenerateQuestions(passage string, n int) []domain.Question {
	if n < 1 {
		return nil
	}

	all := g.nlp.Segment(passage)
	pool := rankSentences(all, max(2*n, minPoolSize))
	g.rng.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })

	clozeNeeded := max(1, n/2)
	whNeeded := n - clozeNeeded
	questions := make([]domain.Question, 0, n)

	for _, s := range pool {
		if clozeNeeded > 0 {
			if q, ok := g.MakeCloze(s); ok {
				questions = append(questions, q)
				clozeNeeded--
				if len(questions) >= n {
					break
				}
				continue
			}
		}
		if whNeeded > 0 {
			if q, ok := g.MakeWH(s, all); ok {
				questions = append(questions, q)
				whNeeded--
				if len(questions) >= n {
					break
				}
			}
		}
	}

	seen := make(map[string]struct{}, len(questions))
	for _, q := range questions {
		seen[q.Prompt] = struct{}{}
	}
	for _, s := range pool {
		if len(questions) >= n {
			break
		}
		q, ok := g.MakeCloze(s)
		if !ok {
			q, ok = g.MakeWH(s, all)
		}
		if !ok {
			continue
		}
		if _, dup := seen[q.Prompt]; dup {
			continue
		}
		seen[q.Prompt] = struct{}{}
		questions = append(questions, q)
	}

	for i := range questions {
		questions[i].ID = fmt.Sprintf("q%d", i+1)
	}

	logger.Get().Debug("qg: generated questions",
		zap.Int("requested", n),
		zap.Int("generated", len(questions)),
		zap.Int("sentences", len(all)),
		zap.Int("pool", len(pool)))
	return questions
}
