package qg

import (
	"fmt"
	"strings"

	"reading-quiz/internal/domain"
)

const maxDistractors = 3

var whPhrases = map[domain.EntityLabel]string{
	domain.LabelPerson: "Who",
	domain.LabelOrg:    "What organization",
	domain.LabelGPE:    "Where",
	domain.LabelLoc:    "Where",
	domain.LabelDate:   "When",
}

var fillers = []string{"N/A", "Unknown", "Not stated"}

// WHPhrase returns the interrogative used for an entity label.
func WHPhrase(label domain.EntityLabel) (string, bool) {
	wh, ok := whPhrases[label]
	return wh, ok
}

// MakeWH blanks one named entity of the sentence and offers same-type
// entities from the whole passage as distractors. It reports false when
// the sentence has no supported entity.
func (g *Generator) MakeWH(s domain.Sentence, passage []domain.Sentence) (domain.Question, bool) {
	var candidates []domain.Entity
	for _, e := range s.Entities {
		if _, ok := whPhrases[e.Label]; ok && e.Text != "" && strings.Contains(s.Text, e.Text) {
			candidates = append(candidates, e)
		}
	}
	if len(candidates) == 0 {
		return domain.Question{}, false
	}

	ent := candidates[g.rng.IntN(len(candidates))]
	stem := strings.Replace(s.Text, ent.Text, domain.BlankMarker, 1)

	options := append([]string{ent.Text}, distractors(ent, passage)...)
	g.rng.Shuffle(len(options), func(i, j int) { options[i], options[j] = options[j], options[i] })

	return domain.Question{
		QType:         domain.QTypeWHMCQ,
		Prompt:        fmt.Sprintf("%s is missing in the sentence: %s", whPhrases[ent.Label], stem),
		Options:       options,
		CorrectAnswer: ent.Text,
		Evidence:      s.Text,
	}, true
}

// distractors collects up to three same-label entities from the passage in
// passage order, padding with generic fillers.
func distractors(target domain.Entity, passage []domain.Sentence) []string {
	out := make([]string, 0, maxDistractors)
	seen := map[string]struct{}{target.Text: {}}

	for _, s := range passage {
		for _, e := range s.Entities {
			if len(out) >= maxDistractors {
				return out
			}
			if e.Label != target.Label {
				continue
			}
			if _, dup := seen[e.Text]; dup {
				continue
			}
			seen[e.Text] = struct{}{}
			out = append(out, e.Text)
		}
	}

	for _, f := range fillers {
		if len(out) >= maxDistractors {
			break
		}
		if strings.EqualFold(f, target.Text) {
			continue
		}
		if _, dup := seen[f]; dup {
			continue
		}
		seen[f] = struct{}{}
		out = append(out, f)
	}
	return out
}
