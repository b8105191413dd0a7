package nlu

import "strings"

// Extractor finds a known device name inside free text.
type Extractor struct {
	devices []device
}

type device struct {
	name    string // catalog spelling, returned to the caller
	lowered string
}

// NewExtractor builds an extractor over the loaded device catalog.
func NewExtractor(names []string) *Extractor {
	devices := make([]device, 0, len(names))
	for _, n := range names {
		devices = append(devices, device{name: n, lowered: strings.ToLower(n)})
	}
	return &Extractor{devices: devices}
}

// ExtractEntity returns the longest catalog device that is a substring of
// the text, or false when none matches. Equal-length matches keep catalog
// order.
func (e *Extractor) ExtractEntity(text string) (string, bool) {
	textL := strings.ToLower(text)

	var best device
	found := false
	for _, d := range e.devices {
		if d.lowered == "" {
			continue
		}
		if strings.Contains(textL, d.lowered) && len(d.lowered) > len(best.lowered) {
			best = d
			found = true
		}
	}

	if !found {
		return "", false
	}
	return best.name, true
}
