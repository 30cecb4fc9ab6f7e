package qg

import (
	"sort"
	"strings"

	"reading-quiz/internal/domain"
)

const entityWeight = 3

// scoreSentence prefers content-dense, entity-rich sentences.
func scoreSentence(s domain.Sentence) int {
	score := 0
	for _, t := range s.Tokens {
		if t.IsAlpha && !t.IsStop {
			score++
		}
	}
	for _, e := range s.Entities {
		if e.Label.Supported() {
			score += entityWeight
		}
	}
	return score
}

// rankSentences orders sentences by score, highest first, keeping passage
// order among ties, drops repeated texts and returns at most k.
func rankSentences(sentences []domain.Sentence, k int) []domain.Sentence {
	type scored struct {
		score int
		sent  domain.Sentence
	}
	ranked := make([]scored, 0, len(sentences))
	for _, s := range sentences {
		s.Text = strings.TrimSpace(s.Text)
		if s.Text == "" {
			continue
		}
		ranked = append(ranked, scored{score: scoreSentence(s), sent: s})
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].score > ranked[j].score })

	out := make([]domain.Sentence, 0, min(k, len(ranked)))
	seen := make(map[string]struct{}, len(ranked))
	for _, r := range ranked {
		if len(out) >= k {
			break
		}
		if _, dup := seen[r.sent.Text]; dup {
			continue
		}
		seen[r.sent.Text] = struct{}{}
		out = append(out, r.sent)
	}
	return out
}

// PickKeySentences returns the texts of the k most informative sentences of
// text, highest score first.
func (g *Generator) PickKeySentences(text string, k int) []string {
	if k < 1 {
		return nil
	}
	ranked := rankSentences(g.nlp.Segment(text), k)
	out := make([]string, len(ranked))
	for i, s := range ranked {
		out[i] = s.Text
	}
	return out
}
