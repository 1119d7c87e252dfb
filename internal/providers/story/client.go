package story

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/feral-file/ip-search-agent/internal/adapter"
	"github.com/feral-file/ip-search-agent/internal/domain"
	"github.com/feral-file/ip-search-agent/internal/logger"
	"github.com/feral-file/ip-search-agent/internal/metrics"
)

const (
	PROVIDER_NAME = "story"

	operationGetAsset    = "get_asset"
	operationQueryAssets = "query_assets"
)

// Config holds the Story API connection settings
type Config struct {
	APIURL  string
	APIKey  string
	Timeout time.Duration
}

// Client defines the interface for the Story Protocol registry to enable mocking
//
//go:generate mockgen -source=client.go -destination=../../mocks/story_client.go -package=mocks -mock_names=Client=MockStoryClient
type Client interface {
	// GetAssetByID fetches a single asset.
	// It returns domain.ErrAssetNotFound when the registry has no such asset and wraps
	// domain.ErrRegistryUnavailable for every other failure.
	GetAssetByID(ctx context.Context, ipID string) (domain.AssetResult, error)

	// QueryAssets runs a free-text search. Zero matches is an empty, non-nil slice.
	QueryAssets(ctx context.Context, query domain.ParsedQuery) ([]domain.RawAssetRecord, error)

	// MockAsset builds the demonstration record substituted when the registry cannot be reached
	MockAsset(ipID, reason string) domain.AssetResult
}

type client struct {
	config     Config
	httpClient adapter.HTTPClient
	json       adapter.JSON
	clock      adapter.Clock
	metrics    *metrics.Metrics
}

// NewClient creates a new Story API client
func NewClient(config Config, httpClient adapter.HTTPClient, json adapter.JSON, clock adapter.Clock, m *metrics.Metrics) Client {
	config.APIURL = strings.TrimRight(config.APIURL, "/")
	return &client{
		config:     config,
		httpClient: httpClient,
		json:       json,
		clock:      clock,
		metrics:    m,
	}
}

func (c *client) headers() map[string]string {
	headers := map[string]string{
		"Accept": "application/json",
	}
	if c.config.APIKey != "" {
		headers["X-API-Key"] = c.config.APIKey
	}
	return headers
}

func (c *client) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.config.Timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, c.config.Timeout)
}

// GetAssetByID fetches an asset through GET /assets?ipIds=<id>
func (c *client) GetAssetByID(ctx context.Context, ipID string) (domain.AssetResult, error) {
	if !domain.IsValidIdentifier(ipID) {
		return domain.AssetResult{}, fmt.Errorf("%w: %s", domain.ErrInvalidIdentifier, ipID)
	}

	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	endpoint := fmt.Sprintf("%s/assets?ipIds=%s", c.config.APIURL, url.QueryEscape(ipID))
	logger.DebugCtx(ctx, "Fetching IP asset", zap.String("ipId", ipID), zap.String("url", endpoint))

	body, err := c.httpClient.Get(ctx, endpoint, c.headers())
	if err != nil {
		if adapter.StatusCode(err) == http.StatusNotFound {
			c.metrics.ObserveRegistry(operationGetAsset, metrics.OutcomeNotFound)
			return domain.AssetResult{}, fmt.Errorf("%w: %s", domain.ErrAssetNotFound, ipID)
		}
		c.metrics.ObserveRegistry(operationGetAsset, metrics.OutcomeError)
		return domain.AssetResult{}, fmt.Errorf("%w: failed to get asset %s: %v", domain.ErrRegistryUnavailable, ipID, err)
	}

	var response AssetListResponse
	if err := c.json.Unmarshal(body, &response); err != nil {
		c.metrics.ObserveRegistry(operationGetAsset, metrics.OutcomeError)
		return domain.AssetResult{}, fmt.Errorf("%w: failed to unmarshal asset response: %v", domain.ErrRegistryUnavailable, err)
	}

	asset, ok := pickAsset(response.Data, ipID)
	if !ok {
		c.metrics.ObserveRegistry(operationGetAsset, metrics.OutcomeNotFound)
		return domain.AssetResult{}, fmt.Errorf("%w: %s", domain.ErrAssetNotFound, ipID)
	}

	c.metrics.ObserveRegistry(operationGetAsset, metrics.OutcomeOK)
	return domain.AssetResult{
		Kind:   domain.AssetKindReal,
		Record: asset.ToRecord(),
	}, nil
}

// pickAsset returns the asset matching ipID, or the first one when none carries an id
func pickAsset(assets []Asset, ipID string) (Asset, bool) {
	if len(assets) == 0 {
		return Asset{}, false
	}
	for _, a := range assets {
		id := a.IPID
		if id == "" {
			id = a.ID
		}
		if domain.SameIdentifier(id, ipID) {
			return a, true
		}
	}
	if assets[0].IPID == "" && assets[0].ID == "" {
		return assets[0], true
	}
	return Asset{}, false
}

// QueryAssets searches through POST /assets/search
func (c *client) QueryAssets(ctx context.Context, query domain.ParsedQuery) ([]domain.RawAssetRecord, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	request := SearchRequest{
		Query:      query.Query,
		Creator:    query.Creator,
		Tags:       query.Tags,
		Pagination: Pagination{Limit: domain.DEFAULT_SEARCH_LIMIT},
	}
	if query.MediaType != nil {
		mt := string(*query.MediaType)
		request.MediaType = &mt
	}
	if query.License != nil {
		l := string(*query.License)
		request.License = &l
	}

	payload, err := c.json.Marshal(request)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal search request: %w", err)
	}

	headers := c.headers()
	headers["Content-Type"] = "application/json"

	body, err := c.httpClient.Post(ctx, c.config.APIURL+"/assets/search", headers, payload)
	if err != nil {
		c.metrics.ObserveRegistry(operationQueryAssets, metrics.OutcomeError)
		return nil, fmt.Errorf("%w: failed to search assets: %v", domain.ErrRegistryUnavailable, err)
	}

	var response AssetListResponse
	if err := c.json.Unmarshal(body, &response); err != nil {
		c.metrics.ObserveRegistry(operationQueryAssets, metrics.OutcomeError)
		return nil, fmt.Errorf("%w: failed to unmarshal search response: %v", domain.ErrRegistryUnavailable, err)
	}

	records := make([]domain.RawAssetRecord, 0, len(response.Data))
	for _, a := range response.Data {
		records = append(records, a.ToRecord())
	}

	logger.DebugCtx(ctx, "Searched IP assets", zap.String("query", query.Query), zap.Int("count", len(records)))
	c.metrics.ObserveRegistry(operationQueryAssets, metrics.OutcomeOK)
	return records, nil
}

// IsTransient reports whether err is a registry failure that a demonstration record may stand in for
func IsTransient(err error) bool {
	return errors.Is(err, domain.ErrRegistryUnavailable)
}
