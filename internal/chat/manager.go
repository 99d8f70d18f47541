package chat

import (
	"sync"

	"github.com/google/uuid"
)

// Manager hands out sessions keyed by id. Each session's state is fully
// isolated; sessions never share buffers or resume text.
type Manager struct {
	mu          sync.Mutex
	sessions    map[uuid.UUID]*Session
	maxMessages int
}

// NewManager returns a manager whose sessions bound their history at
// maxMessages.
func NewManager(maxMessages int) *Manager {
	return &Manager{
		sessions:    make(map[uuid.UUID]*Session),
		maxMessages: maxMessages,
	}
}

// Create registers and returns a new session.
func (m *Manager) Create() *Session {
	s := NewSession(m.maxMessages)
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.ID] = s
	return s
}

// Get looks up a session by id.
func (m *Manager) Get(id uuid.UUID) (*Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	return s, ok
}

// Remove forgets a session. Removing an unknown id is a no-op.
func (m *Manager) Remove(id uuid.UUID) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
}

// Len reports the number of live sessions.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}
