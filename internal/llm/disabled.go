package llm

import (
	"context"

	"github.com/feral-file/ip-search-agent/internal/domain"
)

type disabledClient struct{}

// NewDisabled returns a client that is never available
func NewDisabled() Client {
	return disabledClient{}
}

func (disabledClient) Available() bool {
	return false
}

func (disabledClient) Complete(context.Context, string, Options) (string, error) {
	return "", domain.ErrLLMUnavailable
}
