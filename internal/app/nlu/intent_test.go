package nlu_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"deskpilot/internal/app/nlu"
	"deskpilot/internal/catalog"
)

func testIntents() []catalog.IntentSpec {
	return []catalog.IntentSpec{
		{Name: "turn_on_device", Examples: []string{"turn on", "switch on"}},
		{Name: "turn_off_device", Examples: []string{"turn off", "switch off"}},
		{Name: "greeting", Examples: []string{"hello", "hi there"}},
	}
}

func TestResolveIntentCatalogExamples(t *testing.T) {
	m := nlu.NewMatcher(testIntents())

	// Every catalog example resolves to its own intent.
	for _, intent := range testIntents() {
		for _, example := range intent.Examples {
			assert.Equal(t, intent.Name, m.ResolveIntent(example), "example %q", example)
		}
	}
}

func TestResolveIntentUnknown(t *testing.T) {
	m := nlu.NewMatcher(testIntents())

	assert.Equal(t, nlu.IntentUnknown, m.ResolveIntent("what's the weather like"))
	assert.Equal(t, nlu.IntentUnknown, m.ResolveIntent(""))
}

func TestResolveIntentCaseFolding(t *testing.T) {
	m := nlu.NewMatcher(testIntents())

	assert.Equal(t, "turn_on_device", m.ResolveIntent("PLEASE TURN ON THE FAN"))
}

func TestResolveIntentLongestMatchWins(t *testing.T) {
	// Two intents with overlapping examples of different lengths: the
	// longer phrase wins regardless of catalog order.
	m := nlu.NewMatcher([]catalog.IntentSpec{
		{Name: "generic_on", Examples: []string{"turn on"}},
		{Name: "light_on", Examples: []string{"turn on the light"}},
	})

	assert.Equal(t, "light_on", m.ResolveIntent("please turn on the light now"))
	assert.Equal(t, "generic_on", m.ResolveIntent("please turn on the fan"))
}

func TestResolveIntentTieKeepsCatalogOrder(t *testing.T) {
	m := nlu.NewMatcher([]catalog.IntentSpec{
		{Name: "first", Examples: []string{"abcd"}},
		{Name: "second", Examples: []string{"wxyz"}},
	})

	// Both four-char examples match; the first-encountered intent wins.
	assert.Equal(t, "first", m.ResolveIntent("abcd wxyz"))
}

func TestResolveIntentNoPunctuationStripping(t *testing.T) {
	m := nlu.NewMatcher([]catalog.IntentSpec{
		{Name: "greeting", Examples: []string{"hi there"}},
	})

	// Substring containment only: interior punctuation breaks the match.
	assert.Equal(t, nlu.IntentUnknown, m.ResolveIntent("hi, there"))
}
