package qg

import (
	"regexp"
)

const (
	highlightOpen  = "<span class='highlight'>"
	highlightClose = "</span>"
)

// HighlightSpan wraps the first case-insensitive occurrence of span in
// sentence with a highlight marker. The sentence is returned unchanged when
// span is empty or absent.
func HighlightSpan(sentence, span string) string {
	if span == "" {
		return sentence
	}
	re := regexp.MustCompile("(?i)" + regexp.QuoteMeta(span))
	loc := re.FindStringIndex(sentence)
	if loc == nil {
		return sentence
	}
	return sentence[:loc[0]] + highlightOpen + sentence[loc[0]:loc[1]] + highlightClose + sentence[loc[1]:]
}
