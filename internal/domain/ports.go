package domain

import "context"

// FunctionCall is a structured command produced by the LLM collaborator.
// Arguments carries the decoded JSON object of the call.
type FunctionCall struct {
	Name      string
	Arguments map[string]any
}

// LLMReply is the outcome of one LLM completion: either a plain text reply
// or a function call, never both.
type LLMReply struct {
	Text string
	Call *FunctionCall
}

// LLMClient defines how the core talks to the LLM collaborator. The provider
// is opaque; retry and timeout policy belong to the implementation.
type LLMClient interface {
	Complete(ctx context.Context, history []ChatTurn, userMessage string) (*LLMReply, error)
}

// DeviceController is the device-action collaborator. Calls are synchronous
// and side-effecting; failures propagate, they are never swallowed here.
type DeviceController interface {
	TurnOn(ctx context.Context, deviceName string) (string, error)
	TurnOff(ctx context.Context, deviceName string) (string, error)
}

// SessionStore defines session persistence. GetOrCreate mints a new opaque
// id when the given one is empty, and creates an empty session for any
// unseen id. Save overwrites the stored snapshot atomically as seen by
// subsequent reads. Delete exists so a bounded or expiring store can slot in
// behind the same interface later.
type SessionStore interface {
	GetOrCreate(id SessionID) (*Session, error)
	Save(id SessionID, history []ChatTurn, doc Document) error
	Delete(id SessionID) error
}
