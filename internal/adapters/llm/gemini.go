package llm

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"deskpilot/internal/domain"
)

// GeminiClient implements domain.LLMClient on Vertex AI (Gemini), with the
// command functions declared as tools so the model can emit function calls.
type GeminiClient struct {
	client    *genai.Client
	modelName string
}

func NewGeminiClient(ctx context.Context, projectID, location, modelName string) (*GeminiClient, error) {
	if projectID == "" || location == "" {
		return nil, fmt.Errorf("gcp project and location must be set")
	}
	if modelName == "" {
		modelName = "gemini-2.5-flash"
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		Project:  projectID,
		Location: location,
		Backend:  genai.BackendVertexAI,
	})
	if err != nil {
		return nil, fmt.Errorf("creating Vertex AI client: %w", err)
	}

	return &GeminiClient{
		client:    client,
		modelName: modelName,
	}, nil
}

// Declarations for the five command functions. Names and argument shapes are
// the contract the resolver decodes against.
var commandFunctions = []*genai.FunctionDeclaration{
	{
		Name:        "turn_on_device",
		Description: "Turn on a device by name",
		Parameters: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"device_name": {Type: genai.TypeString, Description: "Name of the device to turn on"},
			},
			Required: []string{"device_name"},
		},
	},
	{
		Name:        "turn_off_device",
		Description: "Turn off a device by name",
		Parameters: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"device_name": {Type: genai.TypeString, Description: "Name of the device to turn off"},
			},
			Required: []string{"device_name"},
		},
	},
	{
		Name:        "set_font_size",
		Description: "Set the font size of every text run in one paragraph",
		Parameters: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"paragraph_index": {Type: genai.TypeInteger, Description: "0-based paragraph index"},
				"size":            {Type: genai.TypeNumber, Description: "Font size in points"},
			},
			Required: []string{"paragraph_index", "size"},
		},
	},
	{
		Name:        "toggle_bold",
		Description: "Toggle bold on every text run in one paragraph",
		Parameters: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"paragraph_index": {Type: genai.TypeInteger, Description: "0-based paragraph index"},
			},
			Required: []string{"paragraph_index"},
		},
	},
	{
		Name:        "align_paragraph",
		Description: "Set the alignment of one paragraph",
		Parameters: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"paragraph_index": {Type: genai.TypeInteger, Description: "0-based paragraph index"},
				"alignment":       {Type: genai.TypeString, Description: "left, center, right or justify"},
			},
			Required: []string{"paragraph_index", "alignment"},
		},
	},
}

// Complete implements domain.LLMClient.
func (g *GeminiClient) Complete(
	ctx context.Context,
	history []domain.ChatTurn,
	userMessage string,
) (*domain.LLMReply, error) {
	// 1) History (user / assistant) as conversation
	var contents []*genai.Content
	for _, turn := range history {
		var role genai.Role
		switch turn.Role {
		case domain.RoleAssistant:
			role = genai.RoleModel
		default:
			role = genai.RoleUser
		}

		contents = append(contents, genai.NewContentFromText(turn.Content, role))
	}

	// 2) Current user message
	contents = append(contents, genai.NewContentFromText(userMessage, genai.RoleUser))

	// 3) Model config: system prompt + the command functions as tools
	temp := float32(0.2)
	topP := float32(0.9)
	outputTokens := int32(1024)

	cfg := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemPrompt, genai.RoleUser),
		Tools: []*genai.Tool{
			{FunctionDeclarations: commandFunctions},
		},
		Temperature:     &temp,
		TopP:            &topP,
		MaxOutputTokens: outputTokens,
	}

	res, err := g.client.Models.GenerateContent(ctx, g.modelName, contents, cfg)
	if err != nil {
		return nil, fmt.Errorf("gemini generate content: %w", err)
	}

	// 4) A function call wins over any accompanying text
	if calls := res.FunctionCalls(); len(calls) > 0 {
		fc := calls[0]
		return &domain.LLMReply{
			Call: &domain.FunctionCall{
				Name:      fc.Name,
				Arguments: fc.Args,
			},
		}, nil
	}

	text := res.Text()
	if text == "" {
		return nil, fmt.Errorf("gemini returned empty text")
	}

	return &domain.LLMReply{Text: text}, nil
}
