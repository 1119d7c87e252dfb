package search

import (
	"github.com/feral-file/ip-search-agent/internal/domain"
	"github.com/feral-file/ip-search-agent/internal/metadata"
)

// Search types reported in envelopes
const (
	SearchTypeIdentifier = "ipid"
	SearchTypeBatch      = "batch_ipid"
	SearchTypeComparison = "comparison"
	SearchTypeAnalysis   = "analysis"
)

// Envelope is the response to a text, filtered or identifier search.
// Exactly one of Listing and AssetView is set on success; both are nil on failure.
type Envelope struct {
	Success     bool                `json:"success"`
	SearchType  string              `json:"searchType,omitempty"`
	Query       string              `json:"query,omitempty"`
	IPID        string              `json:"ipId,omitempty"`
	ParsedQuery *domain.ParsedQuery `json:"parsedQuery,omitempty"`
	Filters     *domain.ParsedQuery `json:"filters,omitempty"`

	*Listing
	*AssetView

	Summary      string `json:"summary,omitempty"`
	Error        string `json:"error,omitempty"`
	Suggestion   string `json:"suggestion,omitempty"`
	ValidExample string `json:"validExample,omitempty"`
	ExplorerURL  string `json:"explorerUrl,omitempty"`
	Timestamp    string `json:"timestamp"`
}

// Listing is the result list of a text or filtered search
type Listing struct {
	Results      []domain.RawAssetRecord `json:"results"`
	TotalResults int                     `json:"totalResults"`
}

// AssetView is the single asset found by an identifier search
type AssetView struct {
	Data      *AssetData `json:"data"`
	PortalURL string     `json:"portalUrl"`
	IsMock    bool       `json:"isMock"`
}

// AssetData is the registry record of an asset together with its aggregated metadata
type AssetData struct {
	IPID       string                  `json:"ipId"`
	BasicInfo  domain.RawAssetRecord   `json:"basicInfo"`
	Metadata   *metadata.AssetMetadata `json:"metadata"`
	IsMock     bool                    `json:"isMock"`
	MockReason string                  `json:"mockReason,omitempty"`
}

// BatchEnvelope is the response to a multi-identifier lookup
type BatchEnvelope struct {
	Success       bool         `json:"success"`
	SearchType    string       `json:"searchType"`
	TotalSearched int          `json:"totalSearched"`
	Successful    int          `json:"successful"`
	Failed        int          `json:"failed"`
	Results       []*Envelope  `json:"results"`
	Errors        []BatchError `json:"errors"`
	Summary       string       `json:"summary,omitempty"`
	Error         string       `json:"error,omitempty"`
	Timestamp     string       `json:"timestamp"`
}

// BatchError is a failed lookup keyed by the identifier the caller supplied
type BatchError struct {
	IPID  string `json:"ipId"`
	Error string `json:"error"`
}

// AnalysisEnvelope is the in-depth review of one asset
type AnalysisEnvelope struct {
	Success                  bool   `json:"success"`
	SearchType               string `json:"searchType"`
	IPID                     string `json:"ipId"`
	Intent                   string `json:"intent,omitempty"`
	MetadataAnalysis         string `json:"metadataAnalysis,omitempty"`
	LicensingRecommendations string `json:"licensingRecommendations,omitempty"`
	RelationshipInsights     string `json:"relationshipInsights,omitempty"`
	IsMock                   bool   `json:"isMock"`
	Error                    string `json:"error,omitempty"`
	Suggestion               string `json:"suggestion,omitempty"`
	Timestamp                string `json:"timestamp"`
}

// Recommendation is a follow-up search derived from past searches
type Recommendation struct {
	Type       string `json:"type"`
	Suggestion string `json:"suggestion"`
	Query      string `json:"query"`
}
