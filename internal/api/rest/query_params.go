package rest

import (
	"github.com/gin-gonic/gin"
)

const (
	DEFAULT_HISTORY_LIMIT = 10
	MAX_HISTORY_LIMIT     = 50
)

// HistoryQueryParams holds query parameters for GET /api/history
type HistoryQueryParams struct {
	Limit int `form:"limit,default=10"`
}

// SuggestionsQueryParams holds query parameters for GET /api/suggestions
type SuggestionsQueryParams struct {
	Query string `form:"q"`
}

// AnalysisQueryParams holds query parameters for GET /metadata/:ipId/analysis
type AnalysisQueryParams struct {
	Intent string `form:"intent"`
}

// ParseHistoryQuery parses query parameters for GET /api/history
func ParseHistoryQuery(c *gin.Context) (*HistoryQueryParams, error) {
	var params HistoryQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}

	// Cap limits
	if params.Limit <= 0 {
		params.Limit = DEFAULT_HISTORY_LIMIT
	}
	if params.Limit > MAX_HISTORY_LIMIT {
		params.Limit = MAX_HISTORY_LIMIT
	}

	return &params, nil
}

// ParseSuggestionsQuery parses query parameters for GET /api/suggestions
func ParseSuggestionsQuery(c *gin.Context) (*SuggestionsQueryParams, error) {
	var params SuggestionsQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}
	return &params, nil
}

// ParseAnalysisQuery parses query parameters for GET /metadata/:ipId/analysis
func ParseAnalysisQuery(c *gin.Context) (*AnalysisQueryParams, error) {
	var params AnalysisQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}
	return &params, nil
}
