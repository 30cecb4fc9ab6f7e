package nlp

import (
	"fmt"
	"sort"
	"strings"

	"reading-quiz/internal/domain"
	"reading-quiz/internal/logger"

	"github.com/aaaton/golem/v4"
	"github.com/aaaton/golem/v4/dicts/en"
	"github.com/jdkato/prose/v2"
	"go.uber.org/zap"
)

// entityLabels maps tagger labels onto the supported set.
var entityLabels = map[string]domain.EntityLabel{
	"PERSON":   domain.LabelPerson,
	"ORG":      domain.LabelOrg,
	"GPE":      domain.LabelGPE,
	"LOC":      domain.LabelLoc,
	"LOCATION": domain.LabelLoc,
	"DATE":     domain.LabelDate,
}

// ProsePipeline implements domain.Pipeline with the prose tokenizer, tagger
// and entity extractor and the golem English lemmatizer. The tagger and
// entity model are read-only after construction and shared by all calls.
type ProsePipeline struct {
	lemmatizer *golem.Lemmatizer
	model      *prose.Model
}

// NewProsePipeline loads the lemmatizer dictionary and the prose model. A
// failure here means the process cannot produce trustworthy questions and
// should not start.
func NewProsePipeline() (*ProsePipeline, error) {
	lemmatizer, err := golem.New(en.New())
	if err != nil {
		return nil, fmt.Errorf("failed to load English lemmatizer: %w", err)
	}
	// prose builds its model inside NewDocument unless one is supplied.
	seed, err := prose.NewDocument("", prose.WithSegmentation(false))
	if err != nil {
		return nil, fmt.Errorf("failed to load prose model: %w", err)
	}
	return &ProsePipeline{lemmatizer: lemmatizer, model: seed.Model}, nil
}

// span is a sentence's byte range in the analyzed text.
type span struct {
	text       string
	start, end int
}

// Segment implements domain.Pipeline. The whole text is tokenized, tagged
// and searched for entities in one pass. Tokens and entities are then
// assigned to sentences by their position in the text.
func (p *ProsePipeline) Segment(text string) []domain.Sentence {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	doc, err := prose.NewDocument(text, prose.UsingModel(p.model))
	if err != nil {
		logger.Get().Warn("nlp: document analysis failed", zap.Error(err))
		return nil
	}

	spans := sentenceSpans(text, doc.Sentences())
	if len(spans) == 0 {
		return nil
	}
	sentences := make([]domain.Sentence, len(spans))
	for i, sp := range spans {
		sentences[i].Text = sp.text
	}

	cursor, si := 0, 0
	for _, tok := range doc.Tokens() {
		var at int
		at, cursor = locate(text, tok.Text, cursor)
		si = spanAt(spans, si, at)
		pos := coarsePOS(tok.Tag)
		sentences[si].Tokens = append(sentences[si].Tokens, domain.Token{
			Text:    tok.Text,
			Lemma:   p.lemma(tok.Text, pos),
			POS:     pos,
			IsAlpha: IsAlpha(tok.Text),
			IsStop:  IsStopword(tok.Text),
		})
	}

	found := make([][]prose.Entity, len(spans))
	cursor, si = 0, 0
	for _, e := range doc.Entities() {
		var at int
		at, cursor = locate(text, e.Text, cursor)
		si = spanAt(spans, si, at)
		found[si] = append(found[si], e)
	}
	for i := range sentences {
		sentences[i].Entities = mergeEntities(sentences[i].Text, found[i])
	}
	return sentences
}

// sentenceSpans places each non-blank sentence in text, in order.
func sentenceSpans(text string, sents []prose.Sentence) []span {
	var spans []span
	cursor := 0
	for _, s := range sents {
		raw := strings.TrimSpace(s.Text)
		if raw == "" {
			continue
		}
		start, end := locate(text, raw, cursor)
		if start == end {
			end = start + len(raw)
		}
		spans = append(spans, span{text: raw, start: start, end: end})
		cursor = min(end, len(text))
	}
	return spans
}

// locate finds s in text at or after cursor and returns its start and the
// cursor to resume from. When s is missing the cursor is returned unchanged.
func locate(text, s string, cursor int) (int, int) {
	if s == "" || cursor > len(text) {
		return cursor, cursor
	}
	idx := strings.Index(text[cursor:], s)
	if idx < 0 {
		return cursor, cursor
	}
	start := cursor + idx
	return start, start + len(s)
}

// spanAt advances from span si to the span containing offset at.
func spanAt(spans []span, si, at int) int {
	for si+1 < len(spans) && at >= spans[si+1].start {
		si++
	}
	return si
}

func (p *ProsePipeline) lemma(word, pos string) string {
	if !IsAlpha(word) || pos == domain.POSPropN {
		return word
	}
	return p.lemmatizer.Lemma(strings.ToLower(word))
}

// mergeEntities locates tagger entities inside the sentence, adds DATE spans
// and drops unsupported labels and overlaps, keeping sentence order.
func mergeEntities(text string, found []prose.Entity) []domain.Entity {
	var ents []domain.Entity
	cursor := 0
	for _, e := range found {
		label, ok := entityLabels[e.Label]
		if !ok || e.Text == "" {
			continue
		}
		idx := strings.Index(text[cursor:], e.Text)
		if idx < 0 {
			idx = strings.Index(text, e.Text)
			if idx < 0 {
				continue
			}
		} else {
			idx += cursor
		}
		ents = append(ents, domain.Entity{Text: e.Text, Label: label, Start: idx, End: idx + len(e.Text)})
		cursor = idx + len(e.Text)
	}

	for _, d := range findDates(text) {
		if !overlaps(ents, d) {
			ents = append(ents, d)
		}
	}

	sort.SliceStable(ents, func(i, j int) bool { return ents[i].Start < ents[j].Start })
	return ents
}

func overlaps(ents []domain.Entity, e domain.Entity) bool {
	for _, x := range ents {
		if e.Start < x.End && x.Start < e.End {
			return true
		}
	}
	return false
}
