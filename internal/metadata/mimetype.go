package metadata

import (
	"fmt"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"github.com/feral-file/ip-search-agent/internal/domain"
)

// DescribeMediaType returns a human readable label for a media type such as
// "image/png" or "video". Unknown or empty values are labelled "unknown".
func DescribeMediaType(mediaType string) string {
	mediaType = strings.ToLower(strings.TrimSpace(mediaType))
	if mediaType == "" || mediaType == domain.UNKNOWN_MEDIA_TYPE {
		return domain.UNKNOWN_MEDIA_TYPE
	}

	mtype := mimetype.Lookup(mediaType)
	if mtype == nil || mtype.Extension() == "" {
		return mediaType
	}

	return fmt.Sprintf("%s (%s)", mtype.String(), mtype.Extension())
}

// MediaCategory returns the top-level category of a media type ("image/png" → "image").
// Bare category names are returned as-is.
func MediaCategory(mediaType string) string {
	mediaType = strings.ToLower(strings.TrimSpace(mediaType))
	if mt, ok := domain.ParseMediaType(mediaType); ok {
		return string(mt)
	}

	category, _, ok := strings.Cut(mediaType, "/")
	if !ok {
		return domain.UNKNOWN_MEDIA_TYPE
	}
	if category == "application" && strings.Contains(mediaType, "json") {
		return string(domain.MediaTypeText)
	}
	if mt, ok := domain.ParseMediaType(category); ok {
		return string(mt)
	}
	return domain.UNKNOWN_MEDIA_TYPE
}
