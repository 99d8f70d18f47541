package main

import (
	"errors"
	"strings"

	"github.com/muhammadolammi/resumechat/internal/extract"
	"github.com/muhammadolammi/resumechat/internal/gemini"
)

func CleanJson(input string) string {
	clean := strings.TrimSpace(input)

	// Remove opening ```json or ``` with optional newline
	if strings.HasPrefix(clean, "```json") {
		clean = strings.TrimPrefix(clean, "```json")
	} else if strings.HasPrefix(clean, "```") {
		clean = strings.TrimPrefix(clean, "```")
	}
	clean = strings.TrimLeft(clean, "\r\n") // remove newline immediately after opening backticks

	// Remove closing ``` unconditionally
	clean = strings.TrimSuffix(clean, "```")

	clean = strings.TrimSpace(clean) // final trim

	return clean

}

// userMessage turns an internal error into a sentence safe to show in a chat
// reply or API response.
func userMessage(err error) string {
	switch {
	case errors.Is(err, extract.ErrUnsupportedFormat):
		return err.Error()
	case errors.Is(err, extract.ErrCorruptDocument):
		return "The document could not be parsed. Re-export it and try uploading again."
	case errors.Is(err, extract.ErrInvalidUTF8):
		return "The text file is not valid UTF-8. Re-save it with UTF-8 encoding."
	case errors.Is(err, gemini.ErrEmptyReply):
		return "The model returned an empty reply. Please resend your message."
	case errors.Is(err, gemini.ErrService):
		return serviceMessage(err)
	default:
		return err.Error()
	}
}

func serviceMessage(err error) string {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "quota") || strings.Contains(msg, "rate limit") || strings.Contains(msg, "resource_exhausted"):
		return "The model is rate limited right now. Wait a moment and send your message again."
	case strings.Contains(msg, "api key") || strings.Contains(msg, "unauthorized") || strings.Contains(msg, "permission"):
		return "The model rejected the server's credentials. Check the API key configuration."
	case strings.Contains(msg, "deadline") || strings.Contains(msg, "timeout"):
		return "The model took too long to answer. Your message is kept; send it again."
	case strings.Contains(msg, "connection") || strings.Contains(msg, "unavailable"):
		return "The model service is unreachable. Your message is kept; send it again in a moment."
	default:
		return "The model service failed to answer. Your message is kept; send it again in a moment."
	}
}
