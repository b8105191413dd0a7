// Package nlu holds the lexical resolution pieces: the keyword intent
// matcher and the device entity extractor. Both do longest-substring
// matching over lower-cased text, nothing fancier. No stemming and no
// punctuation stripping: a deliberate simplicity/precision trade-off.
package nlu

import (
	"strings"

	"deskpilot/internal/catalog"
)

// IntentUnknown is returned when no catalog example matches.
const IntentUnknown = "unknown"

// Matcher resolves free text to a named intent.
type Matcher struct {
	intents []catalog.IntentSpec
}

// NewMatcher builds a matcher over the loaded intent catalog. Examples are
// lower-cased once here so matching is a plain substring test.
func NewMatcher(intents []catalog.IntentSpec) *Matcher {
	lowered := make([]catalog.IntentSpec, len(intents))
	for i, in := range intents {
		examples := make([]string, len(in.Examples))
		for j, ex := range in.Examples {
			examples[j] = strings.ToLower(ex)
		}
		lowered[i] = catalog.IntentSpec{Name: in.Name, Examples: examples}
	}
	return &Matcher{intents: lowered}
}

// ResolveIntent picks the intent whose example phrase is the longest
// substring of the input. Equal-length matches keep catalog order.
// Falls back to "unknown".
func (m *Matcher) ResolveIntent(text string) string {
	textL := strings.ToLower(text)

	best := IntentUnknown
	bestLen := 0
	for _, intent := range m.intents {
		for _, example := range intent.Examples {
			if example == "" {
				continue
			}
			if strings.Contains(textL, example) && len(example) > bestLen {
				best = intent.Name
				bestLen = len(example)
			}
		}
	}

	return best
}
