package dto

import (
	"fmt"
	"strings"

	"github.com/feral-file/ip-search-agent/internal/domain"
	"github.com/feral-file/ip-search-agent/internal/search"
)

// SearchRequest is the body of POST /api/search
type SearchRequest struct {
	Query   string          `json:"query"`
	Filters *FiltersRequest `json:"filters,omitempty"`
}

// FiltersRequest holds the optional structured constraints of a search
type FiltersRequest struct {
	MediaType string   `json:"mediaType,omitempty"`
	License   string   `json:"license,omitempty"`
	Creator   string   `json:"creator,omitempty"`
	Tags      []string `json:"tags,omitempty"`
}

// ToFilters validates the request filters and converts them to search filters
func (f *FiltersRequest) ToFilters() (search.Filters, error) {
	var filters search.Filters
	if f == nil {
		return filters, nil
	}

	if s := strings.TrimSpace(f.MediaType); s != "" {
		mt, ok := domain.ParseMediaType(s)
		if !ok {
			return filters, fmt.Errorf("unsupported mediaType: %s", s)
		}
		filters.MediaType = &mt
	}

	if s := strings.TrimSpace(f.License); s != "" {
		l, ok := domain.ParseLicense(s)
		if !ok {
			return filters, fmt.Errorf("unsupported license: %s", s)
		}
		filters.License = &l
	}

	if s := strings.TrimSpace(f.Creator); s != "" {
		filters.Creator = &s
	}

	for _, tag := range f.Tags {
		if tag = strings.TrimSpace(tag); tag != "" {
			filters.Tags = append(filters.Tags, tag)
		}
	}

	return filters, nil
}

// IdentifierRequest is the body of POST /search/ipid
type IdentifierRequest struct {
	IPID string `json:"ipId"`
}

// BatchRequest is the body of POST /search/batch-ipid and POST /search/compare
type BatchRequest struct {
	IPIDs []string `json:"ipIds"`
}

// SmartSearchRequest is the body of POST /search/smart
type SmartSearchRequest struct {
	Input string `json:"input"`
}
