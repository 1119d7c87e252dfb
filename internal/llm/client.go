package llm

import (
	"context"
	"strings"
)

// Options controls a single completion
type Options struct {
	// System is the system message sent before the prompt
	System string
	// Temperature is the sampling temperature
	Temperature float64
	// MaxTokens caps the completion length; 0 leaves it to the provider
	MaxTokens int
}

// Client defines the interface for a chat-completion language model
//
//go:generate mockgen -source=client.go -destination=../mocks/llm_client.go -package=mocks -mock_names=Client=MockLLMClient
type Client interface {
	// Available reports whether the client is configured to make calls.
	// Callers check it before Complete and use their deterministic fallback when false.
	Available() bool

	// Complete sends prompt and returns the model's text reply
	Complete(ctx context.Context, prompt string, opts Options) (string, error)
}

// ExtractJSON returns the JSON payload of a model reply, stripping markdown code fences
// and any prose around the outermost object or array
func ExtractJSON(text string) string {
	s := strings.TrimSpace(text)

	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```")
		if nl := strings.IndexByte(s, '\n'); nl >= 0 {
			// drop the language tag line (```json)
			s = s[nl+1:]
		}
		if end := strings.LastIndex(s, "```"); end >= 0 {
			s = s[:end]
		}
		s = strings.TrimSpace(s)
	}

	start := strings.IndexAny(s, "{[")
	if start < 0 {
		return s
	}
	closer := byte('}')
	if s[start] == '[' {
		closer = ']'
	}
	end := strings.LastIndexByte(s, closer)
	if end < start {
		return s
	}
	return s[start : end+1]
}
