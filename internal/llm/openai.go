package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/feral-file/ip-search-agent/internal/adapter"
	"github.com/feral-file/ip-search-agent/internal/domain"
	"github.com/feral-file/ip-search-agent/internal/logger"
)

// Config holds configuration for an OpenAI-compatible chat completion endpoint
type Config struct {
	Enabled bool
	BaseURL string
	APIKey  string
	Model   string
	Timeout time.Duration
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

type openAIClient struct {
	config     Config
	httpClient adapter.HTTPClient
	json       adapter.JSON
}

// NewOpenAIClient creates a client for an OpenAI-compatible /chat/completions endpoint.
// The client is available only when enabled and an API key is set.
func NewOpenAIClient(config Config, httpClient adapter.HTTPClient, json adapter.JSON) Client {
	return &openAIClient{
		config:     config,
		httpClient: httpClient,
		json:       json,
	}
}

func (c *openAIClient) Available() bool {
	return c.config.Enabled && c.config.APIKey != ""
}

func (c *openAIClient) Complete(ctx context.Context, prompt string, opts Options) (string, error) {
	if !c.Available() {
		return "", domain.ErrLLMUnavailable
	}

	messages := make([]chatMessage, 0, 2)
	if opts.System != "" {
		messages = append(messages, chatMessage{Role: "system", Content: opts.System})
	}
	messages = append(messages, chatMessage{Role: "user", Content: prompt})

	body, err := c.json.Marshal(chatRequest{
		Model:       c.config.Model,
		Messages:    messages,
		Temperature: opts.Temperature,
		MaxTokens:   opts.MaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal completion request: %w", err)
	}

	if c.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.config.Timeout)
		defer cancel()
	}

	url := strings.TrimRight(c.config.BaseURL, "/") + "/chat/completions"
	respBody, err := c.httpClient.Post(ctx, url, map[string]string{
		"Content-Type":  "application/json",
		"Authorization": "Bearer " + c.config.APIKey,
	}, body)
	if err != nil {
		return "", fmt.Errorf("completion request failed: %w", err)
	}

	var resp chatResponse
	if err := c.json.Unmarshal(respBody, &resp); err != nil {
		return "", fmt.Errorf("failed to decode completion response: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("completion response has no choices")
	}

	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	if content == "" {
		return "", errors.New("completion response is empty")
	}

	logger.DebugCtx(ctx, "LLM completion received", zap.String("model", c.config.Model), zap.Int("length", len(content)))

	return content, nil
}
