// Package chat holds per-session conversation state: role-tagged
// messages, the bounded history window, and the session objects the
// surfaces hand around.
package chat

// Role tags who produced a message. The values follow the Gemini API
// vocabulary; UIs usually render RoleModel as "assistant".
type Role string

const (
	RoleUser  Role = "user"
	RoleModel Role = "model"
)

// Message is a single conversation turn, immutable once appended.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}
