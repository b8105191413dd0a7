package domain

// ActionKind discriminates the Action union.
type ActionKind string

const (
	ActionDeviceOn       ActionKind = "device_on"
	ActionDeviceOff      ActionKind = "device_off"
	ActionSetFontSize    ActionKind = "set_font_size"
	ActionToggleBold     ActionKind = "toggle_bold"
	ActionAlignParagraph ActionKind = "align_paragraph"
	ActionPlainReply     ActionKind = "plain_reply"
	ActionUnknown        ActionKind = "unknown"
)

// Action is the normalized command produced by either resolution path
// (keyword matching or an LLM function call). The dispatch core has exactly
// one switch over Kind; only the fields relevant to a given kind are set.
type Action struct {
	Kind ActionKind

	// Device actions.
	Entity string

	// Document actions.
	ParagraphIndex int
	FontSize       float64
	Alignment      Alignment

	// Plain replies.
	Text string
}

func DeviceOn(entity string) Action  { return Action{Kind: ActionDeviceOn, Entity: entity} }
func DeviceOff(entity string) Action { return Action{Kind: ActionDeviceOff, Entity: entity} }

func SetFontSize(index int, size float64) Action {
	return Action{Kind: ActionSetFontSize, ParagraphIndex: index, FontSize: size}
}

func ToggleBold(index int) Action {
	return Action{Kind: ActionToggleBold, ParagraphIndex: index}
}

func AlignParagraph(index int, alignment Alignment) Action {
	return Action{Kind: ActionAlignParagraph, ParagraphIndex: index, Alignment: alignment}
}

func PlainReply(text string) Action { return Action{Kind: ActionPlainReply, Text: text} }

func Unknown() Action { return Action{Kind: ActionUnknown} }
