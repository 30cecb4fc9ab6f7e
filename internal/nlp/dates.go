package nlp

import (
	"regexp"

	"reading-quiz/internal/domain"
)

var datePattern = regexp.MustCompile(`\b(?:` +
	`(?:January|February|March|April|May|June|July|August|September|October|November|December)` +
	`(?:\s+\d{1,2}(?:st|nd|rd|th)?)?(?:,?\s+\d{4})?` +
	`|\d{1,2}\s+(?:January|February|March|April|May|June|July|August|September|October|November|December)(?:\s+\d{4})?` +
	`|(?:1[0-9]|20)\d{2}s?` +
	`)\b`)

// findDates returns DATE entities the statistical tagger does not label.
// Bare month names are skipped because "May" is usually not a date.
func findDates(sentence string) []domain.Entity {
	var ents []domain.Entity
	for _, loc := range datePattern.FindAllStringIndex(sentence, -1) {
		text := sentence[loc[0]:loc[1]]
		if isBareMonth(text) {
			continue
		}
		ents = append(ents, domain.Entity{
			Text:  text,
			Label: domain.LabelDate,
			Start: loc[0],
			End:   loc[1],
		})
	}
	return ents
}

var monthOnly = regexp.MustCompile(`^[A-Z][a-z]+$`)

func isBareMonth(s string) bool {
	return monthOnly.MatchString(s)
}
