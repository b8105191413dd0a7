package domain

type SessionID string

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleSystem    Role = "system"
)

// ChatTurn is a single entry in a session's conversation history.
type ChatTurn struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// Session holds the conversational and document state of one client
// interaction stream. It lives in memory for the process lifetime only.
type Session struct {
	ID       SessionID
	History  []ChatTurn
	Document Document
}

// Clone returns an independent copy of the session. Stores hand out clones
// so callers never alias the stored snapshot.
func (s *Session) Clone() *Session {
	return &Session{
		ID:       s.ID,
		History:  append([]ChatTurn(nil), s.History...),
		Document: s.Document.Clone(),
	}
}
