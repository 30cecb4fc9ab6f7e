package domain

// Coarse part-of-speech tags produced by a Pipeline.
const (
	POSNoun  = "NOUN"
	POSPropN = "PROPN"
	POSVerb  = "VERB"
	POSAux   = "AUX"
	POSAdj   = "ADJ"
	POSAdv   = "ADV"
	POSPron  = "PRON"
	POSDet   = "DET"
	POSAdp   = "ADP"
	POSCConj = "CCONJ"
	POSSConj = "SCONJ"
	POSNum   = "NUM"
	POSPart  = "PART"
	POSIntj  = "INTJ"
	POSPunct = "PUNCT"
	POSSym   = "SYM"
	POSOther = "X"
)

// EntityLabel is the type of a named entity.
type EntityLabel string

const (
	LabelPerson EntityLabel = "PERSON"
	LabelOrg    EntityLabel = "ORG"
	LabelGPE    EntityLabel = "GPE"
	LabelLoc    EntityLabel = "LOC"
	LabelDate   EntityLabel = "DATE"
)

// Supported reports whether questions can be asked about entities of this label.
func (l EntityLabel) Supported() bool {
	switch l {
	case LabelPerson, LabelOrg, LabelGPE, LabelLoc, LabelDate:
		return true
	}
	return false
}

// Token is a single word or punctuation unit of a sentence.
type Token struct {
	Text    string
	Lemma   string
	POS     string
	IsAlpha bool
	IsStop  bool
}

// Entity is a named-entity span. Start and End are byte offsets into the
// owning sentence's Text.
type Entity struct {
	Text  string
	Label EntityLabel
	Start int
	End   int
}

// Sentence is a segmented span of a passage with its analysis.
type Sentence struct {
	Text     string
	Tokens   []Token
	Entities []Entity
}

// Pipeline is the linguistic analysis capability the generators and the
// grader depend on. Implementations are built once per process and must be
// safe for concurrent use.
type Pipeline interface {
	// Segment splits text into analyzed sentences, in passage order.
	Segment(text string) []Sentence
}
