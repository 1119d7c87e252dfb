package metadata

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"go.uber.org/zap"

	"github.com/feral-file/ip-search-agent/internal/adapter"
	"github.com/feral-file/ip-search-agent/internal/logger"
	"github.com/feral-file/ip-search-agent/internal/metrics"
	"github.com/feral-file/ip-search-agent/internal/uri"
)

// Fetcher defines the interface for fetching JSON metadata documents
//
//go:generate mockgen -source=fetcher.go -destination=../mocks/metadata_fetcher.go -package=mocks -mock_names=Fetcher=MockMetadataFetcher
type Fetcher interface {
	// FetchJSON fetches the JSON object at uri.
	// Any failure (network, timeout, non-JSON body, non-object JSON) is logged and yields nil.
	FetchJSON(ctx context.Context, uri string) map[string]interface{}
}

type fetcher struct {
	httpClient  adapter.HTTPClient
	uriResolver uri.Resolver
	json        adapter.JSON
	base64      adapter.Base64
	timeout     time.Duration
	metrics     *metrics.Metrics
}

// NewFetcher creates a new metadata fetcher
func NewFetcher(httpClient adapter.HTTPClient, uriResolver uri.Resolver, json adapter.JSON, base64 adapter.Base64, timeout time.Duration, m *metrics.Metrics) Fetcher {
	return &fetcher{
		httpClient:  httpClient,
		uriResolver: uriResolver,
		json:        json,
		base64:      base64,
		timeout:     timeout,
		metrics:     m,
	}
}

func (f *fetcher) FetchJSON(ctx context.Context, docURI string) map[string]interface{} {
	if strings.TrimSpace(docURI) == "" {
		return nil
	}

	doc, err := f.fetch(ctx, docURI)
	if err != nil {
		logger.WarnCtx(ctx, "Failed to fetch metadata", zap.String("uri", docURI), zap.Error(err))
		f.metrics.ObserveMetadataFetch(metrics.OutcomeError)
		return nil
	}

	f.metrics.ObserveMetadataFetch(metrics.OutcomeOK)
	return doc
}

func (f *fetcher) fetch(ctx context.Context, docURI string) (map[string]interface{}, error) {
	if uri.IsDataURI(docURI) {
		parsed, err := uri.ParseDataURI(docURI, f.base64)
		if err != nil {
			return nil, err
		}
		return f.decode(parsed.Data)
	}

	url := f.uriResolver.Resolve(docURI)
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		return nil, fmt.Errorf("unsupported URI scheme: %s", docURI)
	}

	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	logger.DebugCtx(ctx, "Fetching metadata", zap.String("uri", docURI), zap.String("url", url))

	body, err := f.httpClient.Get(ctx, url, map[string]string{"Accept": "application/json"})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch URL: %w", err)
	}

	return f.decode(body)
}

// decode sniffs the body before unmarshalling so gateway HTML error pages are rejected early
func (f *fetcher) decode(body []byte) (map[string]interface{}, error) {
	if len(body) == 0 {
		return nil, fmt.Errorf("empty metadata document")
	}

	mtype := mimetype.Detect(body)
	if !isJSONLike(mtype) {
		return nil, fmt.Errorf("unexpected content type: %s", mtype.String())
	}

	var doc map[string]interface{}
	if err := f.json.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}
	if doc == nil {
		return nil, fmt.Errorf("metadata document is not a JSON object")
	}

	return doc, nil
}

// isJSONLike accepts JSON and plain text; documents larger than the sniff window are reported as text/plain
func isJSONLike(mtype *mimetype.MIME) bool {
	return mtype.Is("application/json") || mtype.Is("text/plain")
}
