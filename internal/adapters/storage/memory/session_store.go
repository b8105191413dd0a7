package memory

import (
	"errors"
	"sync"

	"github.com/google/uuid"

	"deskpilot/internal/domain"
)

// SessionStore is the in-memory session store. Process-lifetime only, no
// eviction: the Delete capability exists so a bounded store can replace this
// one behind the same interface.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[domain.SessionID]*domain.Session
}

func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[domain.SessionID]*domain.Session),
	}
}

// GetOrCreate returns a copy of the stored session. An empty id mints a new
// opaque id; an unseen id gets an empty session. Callers get a clone, so
// whatever they do with it never leaks into the store before Save.
func (s *SessionStore) GetOrCreate(id domain.SessionID) (*domain.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id == "" {
		id = domain.SessionID(uuid.NewString())
	}

	sess, ok := s.sessions[id]
	if !ok {
		sess = &domain.Session{ID: id, Document: domain.Document{}}
		s.sessions[id] = sess
	}

	return sess.Clone(), nil
}

// Save overwrites the stored snapshot. History and document are stored
// together under one lock, so readers see either the old pair or the new
// pair, never a mix.
func (s *SessionStore) Save(id domain.SessionID, history []domain.ChatTurn, doc domain.Document) error {
	if id == "" {
		return errors.New("session id is required")
	}

	snapshot := &domain.Session{
		ID:       id,
		History:  append([]domain.ChatTurn(nil), history...),
		Document: doc.Clone(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[id] = snapshot
	return nil
}

func (s *SessionStore) Delete(id domain.SessionID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, id)
	return nil
}
