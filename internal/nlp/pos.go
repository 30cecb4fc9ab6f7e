package nlp

import (
	"strings"
	"unicode"

	"reading-quiz/internal/domain"
)

// coarsePOS maps a Penn Treebank tag to the coarse universal tag set.
func coarsePOS(tag string) string {
	switch {
	case tag == "NN" || tag == "NNS":
		return domain.POSNoun
	case tag == "NNP" || tag == "NNPS":
		return domain.POSPropN
	case tag == "MD":
		return domain.POSAux
	case strings.HasPrefix(tag, "VB"):
		return domain.POSVerb
	case strings.HasPrefix(tag, "JJ"):
		return domain.POSAdj
	case strings.HasPrefix(tag, "RB") || tag == "WRB":
		return domain.POSAdv
	case tag == "PRP" || tag == "PRP$" || tag == "WP" || tag == "WP$" || tag == "EX":
		return domain.POSPron
	case tag == "DT" || tag == "PDT" || tag == "WDT":
		return domain.POSDet
	case tag == "IN":
		return domain.POSAdp
	case tag == "CC":
		return domain.POSCConj
	case tag == "CD":
		return domain.POSNum
	case tag == "RP" || tag == "TO" || tag == "POS":
		return domain.POSPart
	case tag == "UH":
		return domain.POSIntj
	case tag == "SYM" || tag == "$" || tag == "#":
		return domain.POSSym
	case isPunctTag(tag):
		return domain.POSPunct
	}
	return domain.POSOther
}

func isPunctTag(tag string) bool {
	if tag == "" {
		return false
	}
	for _, r := range tag {
		if unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// IsAlpha reports whether s is non-empty and made only of letters.
func IsAlpha(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
