// Package samples loads the bundled sample passages.
package samples

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Passage is one entry of the samples file: [{"title": ..., "text": ...}].
type Passage struct {
	Title string `json:"title"`
	Text  string `json:"text"`
}

// Load reads the samples file at path. Entries without text are skipped.
func Load(path string) ([]Passage, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read samples file %s: %w", path, err)
	}
	return Parse(raw)
}

// Parse decodes samples JSON.
func Parse(raw []byte) ([]Passage, error) {
	var all []Passage
	if err := json.Unmarshal(raw, &all); err != nil {
		return nil, fmt.Errorf("invalid samples JSON: %w", err)
	}
	out := make([]Passage, 0, len(all))
	for _, p := range all {
		if strings.TrimSpace(p.Text) == "" {
			continue
		}
		p.Title = strings.TrimSpace(p.Title)
		out = append(out, p)
	}
	return out, nil
}

// Find returns the passage with the given title, ignoring case.
func Find(passages []Passage, title string) (Passage, bool) {
	for _, p := range passages {
		if strings.EqualFold(p.Title, strings.TrimSpace(title)) {
			return p, true
		}
	}
	return Passage{}, false
}
