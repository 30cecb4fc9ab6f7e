package qg

import (
	"strings"

	"reading-quiz/internal/domain"
)

const clozePrefix = "Fill in the blank: "

var (
	clozePOS       = map[string]bool{domain.POSNoun: true, domain.POSPropN: true, domain.POSVerb: true}
	clozeBlacklist = map[string]bool{"be": true, "have": true, "do": true}
)

// MakeCloze blanks one content word of the sentence. It reports false when
// the sentence has no noun, proper noun or verb worth asking about.
// Stopwords are never blanked: a stopword answer carries no lemma to grade,
// so even the exact answer would score zero.
func (g *Generator) MakeCloze(s domain.Sentence) (domain.Question, bool) {
	var candidates []domain.Token
	for _, t := range s.Tokens {
		if !t.IsAlpha || t.IsStop || !clozePOS[t.POS] || clozeBlacklist[strings.ToLower(t.Lemma)] {
			continue
		}
		if !strings.Contains(s.Text, t.Text) {
			continue
		}
		candidates = append(candidates, t)
	}
	if len(candidates) == 0 {
		return domain.Question{}, false
	}

	tok := candidates[g.rng.IntN(len(candidates))]
	return domain.Question{
		QType:         domain.QTypeCloze,
		Prompt:        clozePrefix + strings.Replace(s.Text, tok.Text, domain.BlankMarker, 1),
		Options:       []string{},
		CorrectAnswer: tok.Text,
		Evidence:      s.Text,
	}, true
}
