package llm

import (
	"context"
	"fmt"

	"deskpilot/internal/domain"
)

// MockLLM is the local/dev stand-in for the real model. It never calls
// functions; it just echoes a canned reply.
type MockLLM struct{}

func NewMockLLM() *MockLLM {
	return &MockLLM{}
}

func (m *MockLLM) Complete(
	ctx context.Context,
	history []domain.ChatTurn,
	userMessage string,
) (*domain.LLMReply, error) {
	return &domain.LLMReply{
		Text: fmt.Sprintf(
			"I heard %q. Try something like \"turn on the living room light\" or \"make paragraph 1 bold\".",
			userMessage,
		),
	}, nil
}
