// Package gemini adapts the Google generative AI client to the chat
// surfaces: one GenerateContent call per turn, history passed verbatim.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/muhammadolammi/resumechat/internal/chat"
)

// DefaultModel is used when no model name is configured.
const DefaultModel = "gemini-2.5-pro"

var (
	// ErrService wraps transport, auth, and quota failures from the
	// generative API.
	ErrService = errors.New("gemini service error")
	// ErrEmptyReply reports a response that carried no text.
	ErrEmptyReply = errors.New("empty model response")
)

// Client sends conversation snapshots to the Gemini API.
type Client struct {
	client *genai.Client
	model  string
}

// NewClient builds a Gemini-backed chat client. An empty model falls back
// to DefaultModel.
func NewClient(ctx context.Context, apiKey, model string) (*Client, error) {
	if model == "" {
		model = DefaultModel
	}
	c, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}
	return &Client{client: c, model: model}, nil
}

// Model reports the configured model name.
func (c *Client) Model() string {
	return c.model
}

// Reply sends the ordered history plus the system instruction and returns
// the model's text reply. The call blocks until the service answers;
// there are no retries and no timeout beyond ctx.
func (c *Client) Reply(ctx context.Context, history []chat.Message, instruction string) (string, error) {
	config := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{
				{Text: instruction},
			},
		},
	}
	resp, err := c.client.Models.GenerateContent(ctx, c.model, contentsFromHistory(history), config)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrService, err)
	}

	reply := responseText(resp)
	if strings.TrimSpace(reply) == "" {
		return "", ErrEmptyReply
	}
	return reply, nil
}

// contentsFromHistory maps buffer messages onto the wire content types.
// Both sides use the user/model role vocabulary.
func contentsFromHistory(history []chat.Message) []*genai.Content {
	contents := make([]*genai.Content, 0, len(history))
	for _, m := range history {
		contents = append(contents, &genai.Content{
			Role: string(m.Role),
			Parts: []*genai.Part{
				{Text: m.Content},
			},
		})
	}
	return contents
}

// responseText concatenates the text parts of the first candidate.
func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}
	candidate := resp.Candidates[0]
	if candidate == nil || candidate.Content == nil {
		return ""
	}
	var b strings.Builder
	for _, part := range candidate.Content.Parts {
		if part != nil {
			b.WriteString(part.Text)
		}
	}
	return b.String()
}
