package uri

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/feral-file/ip-search-agent/internal/adapter"
)

const dataScheme = "data:"

// DataURI is a parsed RFC 2397 data URI
type DataURI struct {
	MimeType string
	IsBase64 bool
	Data     []byte
}

// IsDataURI reports whether s uses the data: scheme
func IsDataURI(s string) bool {
	return len(s) >= len(dataScheme) && strings.EqualFold(s[:len(dataScheme)], dataScheme)
}

// ParseDataURI parses a data URI of the form data:[<mediatype>][;base64],<data>
func ParseDataURI(s string, b64 adapter.Base64) (*DataURI, error) {
	if !IsDataURI(s) {
		return nil, fmt.Errorf("invalid data URI: missing data: prefix")
	}

	header, payload, ok := strings.Cut(s[len(dataScheme):], ",")
	if !ok {
		return nil, fmt.Errorf("invalid data URI: missing comma separator")
	}

	parsed := &DataURI{MimeType: "text/plain"}
	params := strings.Split(header, ";")
	if mt := strings.TrimSpace(params[0]); mt != "" {
		parsed.MimeType = strings.ToLower(mt)
	}
	for _, p := range params[1:] {
		if strings.EqualFold(strings.TrimSpace(p), "base64") {
			parsed.IsBase64 = true
		}
	}

	if parsed.IsBase64 {
		data, err := b64.Decode(payload)
		if err != nil {
			return nil, fmt.Errorf("invalid data URI: failed to decode base64: %w", err)
		}
		parsed.Data = data
		return parsed, nil
	}

	data, err := url.PathUnescape(payload)
	if err != nil {
		return nil, fmt.Errorf("invalid data URI: failed to unescape payload: %w", err)
	}
	parsed.Data = []byte(data)
	return parsed, nil
}
