package rest

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/feral-file/ip-search-agent/internal/adapter"
	"github.com/feral-file/ip-search-agent/internal/api/rest/dto"
	"github.com/feral-file/ip-search-agent/internal/domain"
	"github.com/feral-file/ip-search-agent/internal/history"
	"github.com/feral-file/ip-search-agent/internal/logger"
	"github.com/feral-file/ip-search-agent/internal/search"
)

// History entry types that have no search type of their own
const (
	entryTypeText    = "text"
	entryTypeFilters = "filters"
)

// Handler defines the interface for REST API handlers
// This interface allows for easy mocking and testing
//
//go:generate mockgen -source=handler.go -destination=../../mocks/api_handler.go -package=mocks -mock_names=Handler=MockAPIHandler
type Handler interface {
	// Search runs a natural-language search, optionally constrained by filters
	// POST /api/search
	Search(c *gin.Context)

	// SearchByIdentifier looks up one IP asset
	// POST /search/ipid
	SearchByIdentifier(c *gin.Context)

	// SearchBatch looks up several IP assets at once
	// POST /search/batch-ipid
	SearchBatch(c *gin.Context)

	// SmartSearch routes identifiers to a lookup and everything else to a text search
	// POST /search/smart
	SmartSearch(c *gin.Context)

	// CompareAssets looks up several IP assets and summarizes their differences
	// POST /search/compare
	CompareAssets(c *gin.Context)

	// GetMetadata returns the aggregated metadata of one IP asset
	// GET /metadata/:ipId
	GetMetadata(c *gin.Context)

	// AnalyzeAsset reviews the metadata, licensing and relationships of one IP asset
	// GET /metadata/:ipId/analysis?intent=<intent>
	AnalyzeAsset(c *gin.Context)

	// GetHistory returns the most recent searches, oldest first
	// GET /api/history?limit=<limit>
	GetHistory(c *gin.Context)

	// GetRecommendations derives follow-up searches from the search history
	// GET /api/recommendations
	GetRecommendations(c *gin.Context)

	// GetSuggestions proposes related searches
	// GET /api/suggestions?q=<query>
	GetSuggestions(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /health, GET /api/health
	HealthCheck(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	agent   search.Agent
	history history.Store
	json    adapter.JSON
	clock   adapter.Clock
}

// NewHandler creates a new REST API handler
func NewHandler(agent search.Agent, store history.Store, json adapter.JSON, clock adapter.Clock) Handler {
	return &handler{
		agent:   agent,
		history: store,
		json:    json,
		clock:   clock,
	}
}

func (h *handler) Search(c *gin.Context) {
	var req dto.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}

	if strings.TrimSpace(req.Query) == "" {
		respondMissingField(c, "Query is required")
		return
	}

	filters, err := req.Filters.ToFilters()
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	ctx := c.Request.Context()
	var env *search.Envelope
	if filters.IsEmpty() {
		env = h.agent.Search(ctx, req.Query)
	} else {
		env = h.agent.SearchWithFilters(ctx, req.Query, filters)
	}

	h.record(ctx, envelopeEntry(req.Query, env), env)
	c.JSON(http.StatusOK, env)
}

func (h *handler) SearchByIdentifier(c *gin.Context) {
	var req dto.IdentifierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}

	if strings.TrimSpace(req.IPID) == "" {
		respondMissingField(c, "IPID is required")
		return
	}

	ctx := c.Request.Context()
	logger.InfoCtx(ctx, "Identifier search requested", zap.String("ipId", req.IPID))

	env := h.agent.SearchByIdentifier(ctx, req.IPID)

	h.record(ctx, envelopeEntry(req.IPID, env), env)
	c.JSON(http.StatusOK, env)
}

func (h *handler) SearchBatch(c *gin.Context) {
	ids, ok := h.bindIdentifiers(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	env := h.agent.SearchMultipleIdentifiers(ctx, ids)

	h.record(ctx, batchEntry(ids, env), env)
	c.JSON(http.StatusOK, env)
}

func (h *handler) CompareAssets(c *gin.Context) {
	ids, ok := h.bindIdentifiers(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	env := h.agent.CompareAssets(ctx, ids)

	h.record(ctx, batchEntry(ids, env), env)
	c.JSON(http.StatusOK, env)
}

// bindIdentifiers decodes a non-empty identifier list, responding on failure
func (h *handler) bindIdentifiers(c *gin.Context) ([]string, bool) {
	var req dto.BatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return nil, false
	}

	if len(req.IPIDs) == 0 {
		respondMissingField(c, "Array of IPIDs is required")
		return nil, false
	}

	return req.IPIDs, true
}

func (h *handler) SmartSearch(c *gin.Context) {
	var req dto.SmartSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}

	if strings.TrimSpace(req.Input) == "" {
		respondMissingField(c, "Search input is required")
		return
	}

	ctx := c.Request.Context()
	env := h.agent.SmartSearch(ctx, req.Input)

	h.record(ctx, envelopeEntry(req.Input, env), env)
	c.JSON(http.StatusOK, env)
}

func (h *handler) GetMetadata(c *gin.Context) {
	ipID := c.Param("ipId")
	if strings.TrimSpace(ipID) == "" {
		respondMissingField(c, "IPID is required")
		return
	}

	env := h.agent.SearchByIdentifier(c.Request.Context(), ipID)
	if !env.Success || env.AssetView == nil || env.AssetView.Data == nil {
		c.JSON(lookupFailureStatus(ipID), env)
		return
	}

	meta := env.AssetView.Data.Metadata
	response := gin.H{
		"success":  true,
		"metadata": meta,
	}
	if meta != nil {
		response["portalData"] = meta.PortalData
	}
	c.JSON(http.StatusOK, response)
}

func (h *handler) AnalyzeAsset(c *gin.Context) {
	ipID := c.Param("ipId")
	if strings.TrimSpace(ipID) == "" {
		respondMissingField(c, "IPID is required")
		return
	}

	params, err := ParseAnalysisQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	ctx := c.Request.Context()
	env := h.agent.AnalyzeAsset(ctx, ipID, params.Intent)

	h.record(ctx, history.Entry{
		Query:      ipID,
		SearchType: env.SearchType,
		Success:    env.Success,
	}, env)

	if !env.Success {
		c.JSON(lookupFailureStatus(ipID), env)
		return
	}
	c.JSON(http.StatusOK, env)
}

// lookupFailureStatus is 400 when the path holds no identifier at all, 404 otherwise
func lookupFailureStatus(ipID string) int {
	if _, ok := domain.ExtractIdentifier(strings.TrimSpace(ipID)); !ok {
		return http.StatusBadRequest
	}
	return http.StatusNotFound
}

func (h *handler) GetHistory(c *gin.Context) {
	params, err := ParseHistoryQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	entries, err := h.history.Recent(c.Request.Context(), params.Limit)
	if err != nil {
		logger.ErrorCtx(c.Request.Context(), err)
		respondServiceError(c, "Failed to load search history")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"history": nonNil(entries),
	})
}

func (h *handler) GetRecommendations(c *gin.Context) {
	entries, err := h.history.Recent(c.Request.Context(), 0)
	if err != nil {
		logger.ErrorCtx(c.Request.Context(), err)
		respondServiceError(c, "Failed to load search history")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":         true,
		"recommendations": h.agent.Recommendations(entries),
	})
}

func (h *handler) GetSuggestions(c *gin.Context) {
	params, err := ParseSuggestionsQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	ctx := c.Request.Context()
	entries, err := h.history.Recent(ctx, DEFAULT_HISTORY_LIMIT)
	if err != nil {
		// Suggestions still work without history
		logger.WarnCtx(ctx, "Failed to load search history for suggestions", zap.Error(err))
		entries = nil
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"suggestions": h.agent.Suggestions(ctx, params.Query, entries),
	})
}

func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"message":   "Smart IP Search Agent is running",
		"timestamp": adapter.Timestamp(h.clock.Now()),
	})
}

// record appends a search to the history. Failures are logged and never fail the request.
func (h *handler) record(ctx context.Context, entry history.Entry, response interface{}) {
	body, err := h.json.Marshal(response)
	if err != nil {
		logger.WarnCtx(ctx, "Failed to encode search response for history", zap.Error(err))
		return
	}
	entry.Response = body

	if _, err := h.history.Append(ctx, entry); err != nil {
		logger.WarnCtx(ctx, "Failed to record search history", zap.Error(err))
	}
}

func envelopeEntry(query string, env *search.Envelope) history.Entry {
	entry := history.Entry{
		Query:       query,
		SearchType:  env.SearchType,
		Success:     env.Success,
		ParsedQuery: env.ParsedQuery,
	}

	if entry.ParsedQuery == nil {
		entry.ParsedQuery = env.Filters
	}

	if entry.SearchType == "" {
		entry.SearchType = entryTypeText
		if env.Filters != nil {
			entry.SearchType = entryTypeFilters
		}
	}

	return entry
}

func batchEntry(ids []string, env *search.BatchEnvelope) history.Entry {
	return history.Entry{
		Query:      strings.Join(ids, ","),
		SearchType: env.SearchType,
		Success:    env.Success,
	}
}

func nonNil(entries []history.Entry) []history.Entry {
	if entries == nil {
		return []history.Entry{}
	}
	return entries
}
