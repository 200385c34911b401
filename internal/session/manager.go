package session

import "sync"

// Manager is the registry of live sessions, keyed by attempt id. It enforces
// the single-active-session-per-attempt assumption on this instance: Put
// closes any session it displaces.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*Session
}

func NewManager() *Manager {
	return &Manager{sessions: make(map[string]*Session)}
}

// Get returns the live session for an attempt, if any.
func (m *Manager) Get(attemptID string) (*Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[attemptID]
	return s, ok
}

// Put registers a session. An existing session for the same attempt is
// closed and replaced; its timers must not keep writing for a discarded view.
func (m *Manager) Put(s *Session) {
	m.mu.Lock()
	old := m.sessions[s.AttemptID()]
	m.sessions[s.AttemptID()] = s
	m.mu.Unlock()

	if old != nil && old != s {
		old.Close()
	}
}

// Remove evicts and closes the session for an attempt.
func (m *Manager) Remove(attemptID string) {
	m.mu.Lock()
	s := m.sessions[attemptID]
	delete(m.sessions, attemptID)
	m.mu.Unlock()

	if s != nil {
		s.Close()
	}
}

// Evict drops the session without closing it. Used by the OnComplete hook,
// where the session has already shut itself down.
func (m *Manager) Evict(attemptID string) {
	m.mu.Lock()
	delete(m.sessions, attemptID)
	m.mu.Unlock()
}

// CloseAll closes every live session, flushing unsaved answers. Called on
// shutdown; open attempts stay resumable from the persisted state.
func (m *Manager) CloseAll() {
	m.mu.Lock()
	sessions := make([]*Session, 0, len(m.sessions))
	for _, s := range m.sessions {
		sessions = append(sessions, s)
	}
	m.sessions = make(map[string]*Session)
	m.mu.Unlock()

	for _, s := range sessions {
		s.Close()
	}
}
