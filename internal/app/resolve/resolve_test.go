package resolve_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"deskpilot/internal/app/nlu"
	"deskpilot/internal/app/resolve"
	"deskpilot/internal/catalog"
	"deskpilot/internal/domain"
)

func newKeywordResolver() *resolve.KeywordResolver {
	matcher := nlu.NewMatcher([]catalog.IntentSpec{
		{Name: "turn_on_device", Examples: []string{"turn on", "switch on"}},
		{Name: "turn_off_device", Examples: []string{"turn off"}},
		{Name: "greeting", Examples: []string{"hello"}},
	})
	extractor := nlu.NewExtractor([]string{"light", "living room light", "fan"})
	return resolve.NewKeywordResolver(matcher, extractor)
}

func TestKeywordResolverDeviceOn(t *testing.T) {
	r := newKeywordResolver()

	action, ok, err := r.Resolve(context.Background(), resolve.Input{
		Text: "turn on the living room light",
	})
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, domain.DeviceOn("living room light"), action)
}

func TestKeywordResolverDeviceOff(t *testing.T) {
	r := newKeywordResolver()

	action, ok, err := r.Resolve(context.Background(), resolve.Input{
		Text: "please turn off the fan",
	})
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, domain.DeviceOff("fan"), action)
}

func TestKeywordResolverMissingEntity(t *testing.T) {
	r := newKeywordResolver()

	_, _, err := r.Resolve(context.Background(), resolve.Input{
		Text: "turn on the television",
	})
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))
}

func TestKeywordResolverPassesThroughNonDeviceIntents(t *testing.T) {
	r := newKeywordResolver()

	for _, text := range []string{"hello", "what time is it"} {
		_, ok, err := r.Resolve(context.Background(), resolve.Input{Text: text})
		require.NoError(t, err)
		assert.False(t, ok, "text %q", text)
	}
}

// fakeLLM is a scripted LLM collaborator.
type fakeLLM struct {
	reply *domain.LLMReply
	err   error
}

func (f *fakeLLM) Complete(ctx context.Context, history []domain.ChatTurn, userMessage string) (*domain.LLMReply, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.reply, nil
}

func TestLLMResolverPlainText(t *testing.T) {
	r := resolve.NewLLMResolver(&fakeLLM{reply: &domain.LLMReply{Text: "hi!"}})

	action, ok, err := r.Resolve(context.Background(), resolve.Input{Text: "hello"})
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, domain.PlainReply("hi!"), action)
}

func TestLLMResolverFunctionCall(t *testing.T) {
	r := resolve.NewLLMResolver(&fakeLLM{reply: &domain.LLMReply{
		Call: &domain.FunctionCall{
			Name:      "toggle_bold",
			Arguments: map[string]any{"paragraph_index": float64(2)},
		},
	}})

	action, ok, err := r.Resolve(context.Background(), resolve.Input{Text: "bold paragraph 3"})
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, domain.ToggleBold(2), action)
}

func TestLLMResolverPropagatesFailure(t *testing.T) {
	r := resolve.NewLLMResolver(&fakeLLM{err: errors.New("model unavailable")})

	_, _, err := r.Resolve(context.Background(), resolve.Input{Text: "hello"})
	require.Error(t, err)
	assert.False(t, domain.IsValidation(err))
}

func TestChainFallsBackToUnknown(t *testing.T) {
	chain := resolve.NewChain(newKeywordResolver())

	action, err := chain.Resolve(context.Background(), resolve.Input{Text: "what time is it"})
	require.NoError(t, err)
	assert.Equal(t, domain.ActionUnknown, action.Kind)
}

func TestChainKeywordWinsBeforeLLM(t *testing.T) {
	// The LLM would answer with text, but the keyword path claims device
	// commands first.
	chain := resolve.NewChain(
		newKeywordResolver(),
		resolve.NewLLMResolver(&fakeLLM{reply: &domain.LLMReply{Text: "should not be used"}}),
	)

	action, err := chain.Resolve(context.Background(), resolve.Input{Text: "switch on the light"})
	require.NoError(t, err)
	assert.Equal(t, domain.DeviceOn("light"), action)
}

func TestDecodeFunctionCall(t *testing.T) {
	cases := []struct {
		name string
		call domain.FunctionCall
		want domain.Action
	}{
		{
			name: "turn_on_device",
			call: domain.FunctionCall{
				Name:      "turn_on_device",
				Arguments: map[string]any{"device_name": "heater"},
			},
			want: domain.DeviceOn("heater"),
		},
		{
			name: "turn_off_device",
			call: domain.FunctionCall{
				Name:      "turn_off_device",
				Arguments: map[string]any{"device_name": "heater"},
			},
			want: domain.DeviceOff("heater"),
		},
		{
			name: "set_font_size",
			call: domain.FunctionCall{
				Name:      "set_font_size",
				Arguments: map[string]any{"paragraph_index": float64(1), "size": float64(14)},
			},
			want: domain.SetFontSize(1, 14),
		},
		{
			name: "toggle_bold",
			call: domain.FunctionCall{
				Name:      "toggle_bold",
				Arguments: map[string]any{"paragraph_index": float64(0)},
			},
			want: domain.ToggleBold(0),
		},
		{
			name: "align_paragraph",
			call: domain.FunctionCall{
				Name:      "align_paragraph",
				Arguments: map[string]any{"paragraph_index": float64(2), "alignment": "center"},
			},
			want: domain.AlignParagraph(2, domain.AlignCenter),
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := resolve.DecodeFunctionCall(&tc.call)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestDecodeFunctionCallErrors(t *testing.T) {
	cases := []struct {
		name string
		call domain.FunctionCall
	}{
		{
			name: "unknown function",
			call: domain.FunctionCall{Name: "delete_everything"},
		},
		{
			name: "missing device name",
			call: domain.FunctionCall{Name: "turn_on_device", Arguments: map[string]any{}},
		},
		{
			name: "missing paragraph index",
			call: domain.FunctionCall{Name: "toggle_bold", Arguments: map[string]any{}},
		},
		{
			name: "bad alignment",
			call: domain.FunctionCall{
				Name:      "align_paragraph",
				Arguments: map[string]any{"paragraph_index": float64(0), "alignment": "diagonal"},
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := resolve.DecodeFunctionCall(&tc.call)
			require.Error(t, err)
			assert.True(t, domain.IsValidation(err))
		})
	}
}

func TestDecodeFunctionCallIntegerArgs(t *testing.T) {
	// The genai SDK may hand over integers rather than float64.
	got, err := resolve.DecodeFunctionCall(&domain.FunctionCall{
		Name:      "set_font_size",
		Arguments: map[string]any{"paragraph_index": 1, "size": int64(14)},
	})
	require.NoError(t, err)
	assert.Equal(t, domain.SetFontSize(1, 14), got)
}
