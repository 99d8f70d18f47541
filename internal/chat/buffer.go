package chat

// DefaultMaxMessages bounds a buffer when no explicit limit is given.
const DefaultMaxMessages = 10

// Buffer is an ordered, size-bounded conversation history. Appending past
// the limit evicts the oldest messages first; survivors keep their order.
// A Buffer does no locking of its own: it belongs to exactly one Session,
// which synchronizes access.
type Buffer struct {
	max  int
	msgs []Message
}

// NewBuffer returns an empty buffer holding at most max messages.
// A non-positive max falls back to DefaultMaxMessages.
func NewBuffer(max int) *Buffer {
	if max <= 0 {
		max = DefaultMaxMessages
	}
	return &Buffer{max: max}
}

// Append adds a message at the end. It always succeeds; when the buffer
// would exceed its limit, messages are dropped from the front until the
// length equals the limit.
func (b *Buffer) Append(role Role, content string) {
	b.msgs = append(b.msgs, Message{Role: role, Content: content})
	if over := len(b.msgs) - b.max; over > 0 {
		b.msgs = b.msgs[over:]
	}
}

// Snapshot returns a copy of the history in order. Callers may mutate the
// returned slice freely.
func (b *Buffer) Snapshot() []Message {
	out := make([]Message, len(b.msgs))
	copy(out, b.msgs)
	return out
}

// Clear empties the buffer unconditionally.
func (b *Buffer) Clear() {
	b.msgs = nil
}

// Len reports the number of stored messages.
func (b *Buffer) Len() int {
	return len(b.msgs)
}
