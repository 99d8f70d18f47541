package chat

import (
	"sync"

	"github.com/google/uuid"
)

// Session owns one user's conversation state: the bounded history and the
// resume text loaded as chat context. Handlers receive a Session
// explicitly; nothing lives in process-wide globals. Methods are safe for
// concurrent use, though each request for a session is expected to run to
// completion before the next.
type Session struct {
	ID uuid.UUID

	mu         sync.Mutex
	buf        *Buffer
	resumeName string
	resumeText string
}

// NewSession returns a fresh session with an empty history bounded at
// maxMessages.
func NewSession(maxMessages int) *Session {
	return &Session{ID: uuid.New(), buf: NewBuffer(maxMessages)}
}

// AppendUser records a user turn.
func (s *Session) AppendUser(content string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.buf.Append(RoleUser, content)
}

// AppendModel records a model turn.
func (s *Session) AppendModel(content string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.buf.Append(RoleModel, content)
}

// History returns a copy of the conversation in order.
func (s *Session) History() []Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.Snapshot()
}

// SetResume stores the normalized resume text and its source file name.
func (s *Session) SetResume(name, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resumeName = name
	s.resumeText = text
}

// Resume reports the loaded resume. ok is false when none is loaded.
func (s *Session) Resume() (name, text string, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.resumeName, s.resumeText, s.resumeText != ""
}

// ClearResume drops the loaded resume but keeps the conversation.
func (s *Session) ClearResume() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resumeName = ""
	s.resumeText = ""
}

// Reset drops the conversation and the resume, returning the session to
// its initial state.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.buf.Clear()
	s.resumeName = ""
	s.resumeText = ""
}
