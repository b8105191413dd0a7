package resolve

import (
	"context"
	"fmt"

	"deskpilot/internal/domain"
)

// LLMResolver is the function-call path: it hands the message to the LLM
// collaborator and maps the outcome (plain text or function call) to an
// action.
type LLMResolver struct {
	llm domain.LLMClient
}

func NewLLMResolver(llm domain.LLMClient) *LLMResolver {
	return &LLMResolver{llm: llm}
}

func (r *LLMResolver) Name() string {
	return "llm"
}

func (r *LLMResolver) Resolve(ctx context.Context, in Input) (domain.Action, bool, error) {
	reply, err := r.llm.Complete(ctx, in.History, in.Text)
	if err != nil {
		return domain.Action{}, false, fmt.Errorf("llm complete: %w", err)
	}

	if reply.Call != nil {
		action, err := DecodeFunctionCall(reply.Call)
		if err != nil {
			return domain.Action{}, false, err
		}
		return action, true, nil
	}

	if reply.Text != "" {
		return domain.PlainReply(reply.Text), true, nil
	}

	return domain.Action{}, false, nil
}
