// Package assistant orchestrates a session's work: loading resume context
// and running chat turns against a model provider.
package assistant

import (
	"context"
	"fmt"

	"github.com/muhammadolammi/resumechat/internal/chat"
	"github.com/muhammadolammi/resumechat/internal/extract"
	"github.com/muhammadolammi/resumechat/internal/markdown"
)

// resumePreamble frames the loaded resume as leading context for a model
// call. It is sent per request and never stored in the buffer.
const resumePreamble = "Here is the user's resume. Use it as context when answering:\n\n"

// ChatProvider is the model collaborator the assistant talks to.
type ChatProvider interface {
	Model() string
	Reply(ctx context.Context, history []chat.Message, instruction string) (string, error)
}

// Assistant runs resume loading and chat turns for sessions.
type Assistant struct {
	provider    ChatProvider
	instruction string
}

// New builds an assistant around a provider and the system instruction
// sent with every call.
func New(provider ChatProvider, instruction string) *Assistant {
	return &Assistant{provider: provider, instruction: instruction}
}

// Model reports the provider's model name.
func (a *Assistant) Model() string {
	return a.provider.Model()
}

// LoadResume extracts and normalizes an uploaded document and stores the
// result as the session's resume. A failed extraction clears any
// previously loaded resume; an extraction that succeeds with no text
// leaves the session untouched and returns an empty string.
func (a *Assistant) LoadResume(sess *chat.Session, filename string, data []byte) (string, error) {
	text, err := extract.Extract(extract.Document{Name: filename, Data: data})
	if err != nil {
		sess.ClearResume()
		return "", fmt.Errorf("loading resume %q: %w", filename, err)
	}

	md := markdown.Normalize(text)
	if md == "" {
		return "", nil
	}
	sess.SetResume(filename, md)
	return md, nil
}

// Chat appends the user's message, sends the resume context plus the
// history snapshot to the provider, and appends the reply. On provider
// failure the user's message stays in the buffer and no model message is
// appended.
func (a *Assistant) Chat(ctx context.Context, sess *chat.Session, input string) (string, error) {
	sess.AppendUser(input)

	history := sess.History()
	if _, resume, ok := sess.Resume(); ok {
		withResume := make([]chat.Message, 0, len(history)+1)
		withResume = append(withResume, chat.Message{Role: chat.RoleUser, Content: resumePreamble + resume})
		history = append(withResume, history...)
	}

	reply, err := a.provider.Reply(ctx, history, a.instruction)
	if err != nil {
		return "", err
	}

	sess.AppendModel(reply)
	return reply, nil
}
