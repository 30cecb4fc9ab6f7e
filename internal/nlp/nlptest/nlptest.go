// Package nlptest provides a deterministic, rule-based domain.Pipeline for
// tests that must not depend on statistical models.
package nlptest

import (
	"regexp"
	"sort"
	"strings"
	"unicode"

	"reading-quiz/internal/domain"
	"reading-quiz/internal/nlp"
)

var (
	sentencePattern = regexp.MustCompile(`[^.!?]+[.!?]*`)
	tokenPattern    = regexp.MustCompile(`[\p{L}]+|\d+|[^\s\p{L}\d]`)
)

// Pipeline splits sentences on terminal punctuation and tags tokens from
// the lookup tables. Words absent from POS default to NOUN, or PROPN when
// capitalised mid-sentence; stopwords default to DET.
type Pipeline struct {
	Lemmas   map[string]string
	POS      map[string]string
	Entities map[string]domain.EntityLabel
}

// New returns an empty Pipeline.
func New() *Pipeline {
	return &Pipeline{
		Lemmas:   map[string]string{},
		POS:      map[string]string{},
		Entities: map[string]domain.EntityLabel{},
	}
}

// Segment implements domain.Pipeline.
func (p *Pipeline) Segment(text string) []domain.Sentence {
	var out []domain.Sentence
	for _, raw := range sentencePattern.FindAllString(text, -1) {
		s := strings.TrimSpace(raw)
		if s == "" || !strings.ContainsFunc(s, func(r rune) bool { return !unicode.IsPunct(r) }) {
			continue
		}
		out = append(out, p.analyze(s))
	}
	return out
}

func (p *Pipeline) analyze(text string) domain.Sentence {
	sent := domain.Sentence{Text: text}
	for i, tok := range tokenPattern.FindAllString(text, -1) {
		lower := strings.ToLower(tok)
		lemma, ok := p.Lemmas[lower]
		if !ok {
			lemma = lower
		}
		sent.Tokens = append(sent.Tokens, domain.Token{
			Text:    tok,
			Lemma:   lemma,
			POS:     p.pos(tok, i),
			IsAlpha: nlp.IsAlpha(tok),
			IsStop:  nlp.IsStopword(tok),
		})
	}
	sent.Entities = p.entities(text)
	return sent
}

func (p *Pipeline) pos(tok string, index int) string {
	if tag, ok := p.POS[strings.ToLower(tok)]; ok {
		return tag
	}
	r := []rune(tok)
	switch {
	case nlp.IsStopword(tok):
		return domain.POSDet
	case unicode.IsDigit(r[0]):
		return domain.POSNum
	case !unicode.IsLetter(r[0]):
		return domain.POSPunct
	case index > 0 && unicode.IsUpper(r[0]):
		return domain.POSPropN
	}
	return domain.POSNoun
}

func (p *Pipeline) entities(text string) []domain.Entity {
	surfaces := make([]string, 0, len(p.Entities))
	for s := range p.Entities {
		surfaces = append(surfaces, s)
	}
	// Longer surfaces first so "New York City" wins over "York".
	sort.Slice(surfaces, func(i, j int) bool {
		if len(surfaces[i]) != len(surfaces[j]) {
			return len(surfaces[i]) > len(surfaces[j])
		}
		return surfaces[i] < surfaces[j]
	})

	var ents []domain.Entity
	for _, s := range surfaces {
		offset := 0
		for {
			idx := strings.Index(text[offset:], s)
			if idx < 0 {
				break
			}
			start := offset + idx
			e := domain.Entity{Text: s, Label: p.Entities[s], Start: start, End: start + len(s)}
			if !overlapping(ents, e) {
				ents = append(ents, e)
			}
			offset = e.End
		}
	}
	sort.SliceStable(ents, func(i, j int) bool { return ents[i].Start < ents[j].Start })
	return ents
}

func overlapping(ents []domain.Entity, e domain.Entity) bool {
	for _, x := range ents {
		if e.Start < x.End && x.Start < e.End {
			return true
		}
	}
	return false
}

// MuseumPassage is the three-sentence passage used across the test suites.
const MuseumPassage = "Sam visited a museum in Paris. He saw fossils and bones. The museum opens in 1990."

// Museum returns a Pipeline configured for MuseumPassage: one PERSON, one
// GPE and one DATE entity, and verb/plural lemmas.
func Museum() *Pipeline {
	p := New()
	p.Entities["Sam"] = domain.LabelPerson
	p.Entities["Paris"] = domain.LabelGPE
	p.Entities["1990"] = domain.LabelDate
	p.POS["visited"] = domain.POSVerb
	p.POS["saw"] = domain.POSVerb
	p.POS["opens"] = domain.POSVerb
	p.Lemmas["visited"] = "visit"
	p.Lemmas["saw"] = "see"
	p.Lemmas["opens"] = "open"
	p.Lemmas["fossils"] = "fossil"
	p.Lemmas["bones"] = "bone"
	return p
}
