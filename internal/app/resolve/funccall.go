package resolve

import "deskpilot/internal/domain"

// Function names the LLM collaborator may call. These are part of the
// contract with the prompt/tool declarations in the llm adapter.
const (
	FuncTurnOnDevice   = "turn_on_device"
	FuncTurnOffDevice  = "turn_off_device"
	FuncSetFontSize    = "set_font_size"
	FuncToggleBold     = "toggle_bold"
	FuncAlignParagraph = "align_paragraph"
)

// DecodeFunctionCall maps a structured function call to an action. Any
// unrecognized name, and any call missing a required argument, is a
// validation error.
func DecodeFunctionCall(call *domain.FunctionCall) (domain.Action, error) {
	switch call.Name {
	case FuncTurnOnDevice, FuncTurnOffDevice:
		name := getString(call.Arguments, "device_name")
		if name == "" {
			return domain.Action{}, domain.Invalid("%s: missing device_name", call.Name)
		}
		if call.Name == FuncTurnOnDevice {
			return domain.DeviceOn(name), nil
		}
		return domain.DeviceOff(name), nil

	case FuncSetFontSize:
		index, ok := getNumber(call.Arguments, "paragraph_index")
		if !ok {
			return domain.Action{}, domain.Invalid("set_font_size: missing paragraph_index")
		}
		size, ok := getNumber(call.Arguments, "size")
		if !ok {
			return domain.Action{}, domain.Invalid("set_font_size: missing size")
		}
		return domain.SetFontSize(int(index), size), nil

	case FuncToggleBold:
		index, ok := getNumber(call.Arguments, "paragraph_index")
		if !ok {
			return domain.Action{}, domain.Invalid("toggle_bold: missing paragraph_index")
		}
		return domain.ToggleBold(int(index)), nil

	case FuncAlignParagraph:
		index, ok := getNumber(call.Arguments, "paragraph_index")
		if !ok {
			return domain.Action{}, domain.Invalid("align_paragraph: missing paragraph_index")
		}
		alignment, ok := domain.ParseAlignment(getString(call.Arguments, "alignment"))
		if !ok {
			return domain.Action{}, domain.Invalid("align_paragraph: invalid alignment %q",
				getString(call.Arguments, "alignment"))
		}
		return domain.AlignParagraph(int(index), alignment), nil
	}

	return domain.Action{}, domain.Invalid("unknown function: %s", call.Name)
}

// --- argument helpers --- //

func getString(m map[string]any, key string) string {
	if m == nil {
		return ""
	}
	if v, ok := m[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// getNumber accepts the numeric shapes JSON decoding and the genai SDK
// produce for a number argument.
func getNumber(m map[string]any, key string) (float64, bool) {
	if m == nil {
		return 0, false
	}
	switch v := m[key].(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	}
	return 0, false
}
