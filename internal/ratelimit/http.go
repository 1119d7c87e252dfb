package ratelimit

import (
	"context"

	"github.com/feral-file/ip-search-agent/internal/adapter"
)

// httpClient routes every request of one provider through the proxy
type httpClient struct {
	proxy    Proxy
	provider string
	client   adapter.HTTPClient
}

// NewHTTPClient wraps client so its requests share the provider's rate limit
func NewHTTPClient(proxy Proxy, provider string, client adapter.HTTPClient) adapter.HTTPClient {
	return &httpClient{
		proxy:    proxy,
		provider: provider,
		client:   client,
	}
}

func (c *httpClient) Get(ctx context.Context, url string, headers map[string]string) ([]byte, error) {
	return Request(ctx, c.proxy, c.provider, func(ctx context.Context) ([]byte, error) {
		return c.client.Get(ctx, url, headers)
	})
}

func (c *httpClient) Post(ctx context.Context, url string, headers map[string]string, body []byte) ([]byte, error) {
	return Request(ctx, c.proxy, c.provider, func(ctx context.Context) ([]byte, error) {
		return c.client.Post(ctx, url, headers, body)
	})
}
