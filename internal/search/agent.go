package search

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/alitto/pond/v2"
	"go.uber.org/zap"

	"github.com/feral-file/ip-search-agent/internal/adapter"
	"github.com/feral-file/ip-search-agent/internal/domain"
	"github.com/feral-file/ip-search-agent/internal/history"
	"github.com/feral-file/ip-search-agent/internal/interpreter"
	"github.com/feral-file/ip-search-agent/internal/logger"
	"github.com/feral-file/ip-search-agent/internal/metadata"
	"github.com/feral-file/ip-search-agent/internal/metrics"
	"github.com/feral-file/ip-search-agent/internal/providers/story"
	"github.com/feral-file/ip-search-agent/internal/synthesizer"
)

// Branch labels for search metrics
const (
	branchText       = "text"
	branchIdentifier = "identifier"
	branchFilters    = "filters"
	branchBatch      = "batch"
)

// Config holds the agent settings
type Config struct {
	// ExplorerURL is the base of the portal links in identifier envelopes
	ExplorerURL string
	// BatchWorkers bounds concurrent lookups in a batch
	BatchWorkers int
	// MaxBatchIDs is the largest accepted batch
	MaxBatchIDs int
}

// Filters are the structured constraints of a filtered search
type Filters struct {
	MediaType *domain.MediaType `json:"mediaType,omitempty"`
	License   *domain.License   `json:"license,omitempty"`
	Creator   *string           `json:"creator,omitempty"`
	Tags      []string          `json:"tags,omitempty"`
}

// IsEmpty reports whether no filter is set
func (f Filters) IsEmpty() bool {
	return f.MediaType == nil && f.License == nil && f.Creator == nil && len(f.Tags) == 0
}

// Agent answers natural-language and identifier searches over the registry.
// Every operation reports failures inside the returned envelope and never panics.
//
//go:generate mockgen -source=agent.go -destination=../mocks/search_agent.go -package=mocks -mock_names=Agent=MockSearchAgent
type Agent interface {
	// Search interprets input and runs a text search, or an identifier lookup when
	// the input names an asset
	Search(ctx context.Context, input string) *Envelope

	// SearchByIdentifier looks up the first identifier found in input
	SearchByIdentifier(ctx context.Context, input string) *Envelope

	// SearchWithFilters runs a text search with explicit filters and no interpretation
	SearchWithFilters(ctx context.Context, query string, filters Filters) *Envelope

	// SmartSearch routes exact identifiers to SearchByIdentifier and everything else to Search
	SmartSearch(ctx context.Context, input string) *Envelope

	// SearchMultipleIdentifiers looks up every identifier concurrently and keeps partial results
	SearchMultipleIdentifiers(ctx context.Context, ids []string) *BatchEnvelope

	// CompareAssets looks up several assets and summarizes how they differ
	CompareAssets(ctx context.Context, ids []string) *BatchEnvelope

	// AnalyzeAsset reviews one asset's metadata, licensing and relationships
	AnalyzeAsset(ctx context.Context, input, intent string) *AnalysisEnvelope

	// Recommendations derives follow-up searches from past searches
	Recommendations(entries []history.Entry) []Recommendation

	// Suggestions proposes related searches for query given past searches
	Suggestions(ctx context.Context, query string, entries []history.Entry) []string

	// Close stops the batch worker pool
	Close()
}

type agent struct {
	config      Config
	interpreter interpreter.Interpreter
	registry    story.Client
	aggregator  metadata.Aggregator
	synthesizer synthesizer.Synthesizer
	clock       adapter.Clock
	metrics     *metrics.Metrics
	pool        pond.ResultPool[*Envelope]
}

// NewAgent creates a new search agent
func NewAgent(
	config Config,
	interp interpreter.Interpreter,
	registry story.Client,
	aggregator metadata.Aggregator,
	synth synthesizer.Synthesizer,
	clock adapter.Clock,
	m *metrics.Metrics,
) Agent {
	if config.BatchWorkers < 1 {
		config.BatchWorkers = 1
	}
	if config.ExplorerURL == "" {
		config.ExplorerURL = domain.DEFAULT_STORY_EXPLORER_URL
	}

	return &agent{
		config:      config,
		interpreter: interp,
		registry:    registry,
		aggregator:  aggregator,
		synthesizer: synth,
		clock:       clock,
		metrics:     m,
		pool:        pond.NewResultPool[*Envelope](config.BatchWorkers),
	}
}

func (a *agent) Close() {
	a.pool.StopAndWait()
}

func (a *agent) timestamp() string {
	return adapter.Timestamp(a.clock.Now())
}

// recoverInto converts a panic into the failure value returned by build
func recoverInto[E any](ctx context.Context, env *E, build func(msg string) E) {
	if r := recover(); r != nil {
		logger.ErrorCtx(ctx, errors.New("search panicked"), zap.Any("panic", r))
		*env = build(fmt.Sprintf("internal error: %v", r))
	}
}

func (a *agent) Search(ctx context.Context, input string) (env *Envelope) {
	defer recoverInto(ctx, &env, func(msg string) *Envelope {
		return a.textFailure(input, msg)
	})

	logger.DebugCtx(ctx, "Search received", zap.String("input", input))
	if strings.TrimSpace(input) == "" {
		a.metrics.ObserveSearch(branchText, metrics.OutcomeError)
		return a.textFailure(input, "Query is required")
	}

	logger.DebugCtx(ctx, "Interpreting query")
	parsed := a.interpreter.Parse(ctx, input)

	if parsed.IsIdentifier || domain.IsValidIdentifier(input) {
		logger.DebugCtx(ctx, "Input names an asset, switching to identifier lookup")
		return a.SearchByIdentifier(ctx, input)
	}

	results, err := a.registry.QueryAssets(ctx, parsed)
	if err != nil {
		logger.ErrorCtx(ctx, err, zap.String("query", input))
		a.metrics.ObserveSearch(branchText, metrics.OutcomeError)
		return a.textFailure(input, err.Error())
	}

	logger.DebugCtx(ctx, "Summarizing results", zap.Int("count", len(results)))
	summary := a.synthesizer.SummarizeResults(ctx, results, input)

	a.metrics.ObserveSearch(branchText, metrics.OutcomeOK)
	return &Envelope{
		Success:     true,
		Query:       input,
		ParsedQuery: &parsed,
		Listing: &Listing{
			Results:      results,
			TotalResults: len(results),
		},
		Summary:   summary,
		Timestamp: a.timestamp(),
	}
}

func (a *agent) textFailure(query, msg string) *Envelope {
	return &Envelope{
		Success:   false,
		Query:     query,
		Error:     msg,
		Timestamp: a.timestamp(),
	}
}

func (a *agent) identifierFailure(ipID, msg string) *Envelope {
	return &Envelope{
		Success:    false,
		SearchType: SearchTypeIdentifier,
		IPID:       ipID,
		Error:      msg,
		Timestamp:  a.timestamp(),
	}
}

func (a *agent) notFound(ipID string) *Envelope {
	env := a.identifierFailure(ipID, fmt.Sprintf("IP Asset dengan IPID %s tidak ditemukan di Story Protocol.", ipID))
	env.Suggestion = "Pastikan IPID valid dan terdaftar di Story Protocol Explorer."
	env.ValidExample = fmt.Sprintf("Contoh IPID valid: %s (Official Ippy)", domain.EXAMPLE_IP_ID)
	env.ExplorerURL = strings.TrimRight(a.config.ExplorerURL, "/") + "/"
	return env
}

func (a *agent) SearchByIdentifier(ctx context.Context, input string) (env *Envelope) {
	defer recoverInto(ctx, &env, func(msg string) *Envelope {
		return a.identifierFailure(input, msg)
	})

	data, failure := a.lookup(ctx, input)
	if failure != nil {
		return failure
	}

	summary := strings.TrimSpace(a.summarizeAsset(ctx, data))
	if summary == "" {
		summary = fmt.Sprintf("IP Asset dengan ID %s berhasil ditemukan di Story Protocol. Lihat detail lengkap di portal.", data.IPID)
	}

	outcome := metrics.OutcomeOK
	if data.IsMock {
		outcome = metrics.OutcomeMock
	}
	a.metrics.ObserveSearch(branchIdentifier, outcome)

	return &Envelope{
		Success:    true,
		SearchType: SearchTypeIdentifier,
		IPID:       data.IPID,
		AssetView: &AssetView{
			Data:      data,
			PortalURL: domain.ExplorerURL(a.config.ExplorerURL, data.IPID),
			IsMock:    data.IsMock,
		},
		Summary:   summary,
		Timestamp: a.timestamp(),
	}
}

// summarizeAsset returns "" when the synthesizer panics so the found asset is still returned
func (a *agent) summarizeAsset(ctx context.Context, data *AssetData) (summary string) {
	defer func() {
		if r := recover(); r != nil {
			logger.WarnCtx(ctx, "Asset summary failed, using template", zap.String("ipId", data.IPID), zap.Any("panic", r))
			summary = ""
		}
	}()
	return a.synthesizer.SummarizeAsset(ctx, data.IPID, data.Metadata)
}

// lookup fetches and aggregates one asset. A transient registry failure is answered
// with a flagged demonstration record; a confirmed absence is a failure envelope.
func (a *agent) lookup(ctx context.Context, input string) (*AssetData, *Envelope) {
	ipID, ok := domain.ExtractIdentifier(strings.TrimSpace(input))
	if !ok {
		a.metrics.ObserveSearch(branchIdentifier, metrics.OutcomeError)
		return nil, a.identifierFailure(input,
			fmt.Sprintf("Invalid IPID format: %s. IPID should be a valid Ethereum address.", input))
	}

	logger.DebugCtx(ctx, "Looking up IP asset", zap.String("ipId", ipID))
	result, err := a.registry.GetAssetByID(ctx, ipID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrAssetNotFound):
			logger.InfoCtx(ctx, "IP asset not found", zap.String("ipId", ipID))
			a.metrics.ObserveSearch(branchIdentifier, metrics.OutcomeNotFound)
			return nil, a.notFound(ipID)
		case story.IsTransient(err):
			logger.WarnCtx(ctx, "Registry unavailable, substituting demonstration asset",
				zap.String("ipId", ipID), zap.Error(err))
			result = a.registry.MockAsset(ipID, err.Error())
		default:
			a.metrics.ObserveSearch(branchIdentifier, metrics.OutcomeError)
			return nil, a.identifierFailure(ipID, err.Error())
		}
	}

	meta := a.aggregator.Aggregate(ctx, ipID, result.Record)
	return &AssetData{
		IPID:       ipID,
		BasicInfo:  result.Record,
		Metadata:   meta,
		IsMock:     result.IsMock(),
		MockReason: result.MockReason,
	}, nil
}

func (a *agent) SearchWithFilters(ctx context.Context, query string, filters Filters) (env *Envelope) {
	defer recoverInto(ctx, &env, func(msg string) *Envelope {
		return a.textFailure(query, msg)
	})

	if strings.TrimSpace(query) == "" {
		a.metrics.ObserveSearch(branchFilters, metrics.OutcomeError)
		return a.textFailure(query, "Query is required")
	}

	params := domain.ParsedQuery{
		Query:     query,
		MediaType: filters.MediaType,
		License:   filters.License,
		Creator:   filters.Creator,
		Tags:      filters.Tags,
		Intent:    domain.FALLBACK_QUERY_INTENT,
	}
	if params.Tags == nil {
		params.Tags = []string{}
	}

	results, err := a.registry.QueryAssets(ctx, params)
	if err != nil {
		logger.ErrorCtx(ctx, err, zap.String("query", query))
		a.metrics.ObserveSearch(branchFilters, metrics.OutcomeError)
		return a.textFailure(query, err.Error())
	}

	a.metrics.ObserveSearch(branchFilters, metrics.OutcomeOK)
	return &Envelope{
		Success: true,
		Query:   query,
		Filters: &params,
		Listing: &Listing{
			Results:      results,
			TotalResults: len(results),
		},
		Timestamp: a.timestamp(),
	}
}

func (a *agent) SmartSearch(ctx context.Context, input string) *Envelope {
	if domain.IsValidIdentifier(strings.TrimSpace(input)) {
		return a.SearchByIdentifier(ctx, input)
	}
	return a.Search(ctx, input)
}
