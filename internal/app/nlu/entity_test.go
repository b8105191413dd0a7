package nlu_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"deskpilot/internal/app/nlu"
)

func TestExtractEntityLongestMatch(t *testing.T) {
	e := nlu.NewExtractor([]string{"light", "living room light"})

	entity, ok := e.ExtractEntity("turn on the living room light")
	assert.True(t, ok)
	assert.Equal(t, "living room light", entity)
}

func TestExtractEntitySimpleMatch(t *testing.T) {
	e := nlu.NewExtractor([]string{"light", "fan"})

	entity, ok := e.ExtractEntity("Switch on the Fan please")
	assert.True(t, ok)
	assert.Equal(t, "fan", entity)
}

func TestExtractEntityAbsent(t *testing.T) {
	e := nlu.NewExtractor([]string{"light", "fan"})

	_, ok := e.ExtractEntity("turn on the television")
	assert.False(t, ok)
}

func TestExtractEntityKeepsCatalogSpelling(t *testing.T) {
	e := nlu.NewExtractor([]string{"Coffee Machine"})

	entity, ok := e.ExtractEntity("start the coffee machine")
	assert.True(t, ok)
	assert.Equal(t, "Coffee Machine", entity)
}

func TestExtractEntityEmptyCatalog(t *testing.T) {
	e := nlu.NewExtractor(nil)

	_, ok := e.ExtractEntity("turn on the light")
	assert.False(t, ok)
}
