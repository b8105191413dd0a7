package resolve

import (
	"context"

	"deskpilot/internal/app/nlu"
	"deskpilot/internal/domain"
)

// Device intents handled by the keyword path. Other catalog intents fall
// through to the next resolver.
const (
	IntentTurnOnDevice  = "turn_on_device"
	IntentTurnOffDevice = "turn_off_device"
)

// KeywordResolver is the lexical path: intent matcher plus entity extractor.
type KeywordResolver struct {
	matcher   *nlu.Matcher
	extractor *nlu.Extractor
}

func NewKeywordResolver(matcher *nlu.Matcher, extractor *nlu.Extractor) *KeywordResolver {
	return &KeywordResolver{matcher: matcher, extractor: extractor}
}

func (r *KeywordResolver) Name() string {
	return "keyword"
}

// Resolve claims the input only for device intents. A device intent without
// a recognizable device is a validation error, not a fall-through: the user
// clearly asked for a device action and we cannot tell which device.
func (r *KeywordResolver) Resolve(ctx context.Context, in Input) (domain.Action, bool, error) {
	intent := r.matcher.ResolveIntent(in.Text)

	switch intent {
	case IntentTurnOnDevice, IntentTurnOffDevice:
		entity, found := r.extractor.ExtractEntity(in.Text)
		if !found {
			return domain.Action{}, false, domain.Invalid("no device specified for %s", intent)
		}
		if intent == IntentTurnOnDevice {
			return domain.DeviceOn(entity), true, nil
		}
		return domain.DeviceOff(entity), true, nil
	}

	return domain.Action{}, false, nil
}
