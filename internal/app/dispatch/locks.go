package dispatch

import (
	"sync"

	"deskpilot/internal/domain"
)

// sessionLocks serializes dispatches per session id. Lock entries are never
// removed; they are tiny and the session map itself is unbounded anyway
// until an expiring store lands.
type sessionLocks struct {
	mu    sync.Mutex
	locks map[domain.SessionID]*sync.Mutex
}

func newSessionLocks() *sessionLocks {
	return &sessionLocks{
		locks: make(map[domain.SessionID]*sync.Mutex),
	}
}

// lock acquires the per-session mutex and returns its unlock func.
func (l *sessionLocks) lock(id domain.SessionID) func() {
	l.mu.Lock()
	m, ok := l.locks[id]
	if !ok {
		m = &sync.Mutex{}
		l.locks[id] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m.Unlock
}
