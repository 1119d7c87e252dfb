package uri_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ip-search-agent/internal/adapter"
	"github.com/feral-file/ip-search-agent/internal/uri"
)

func TestParseDataURI(t *testing.T) {
	b64 := adapter.NewBase64()

	tests := []struct {
		name         string
		input        string
		expectedMime string
		expectedData string
		isBase64     bool
		expectedErr  string
	}{
		{
			name:         "base64 json",
			input:        "data:application/json;base64,eyJhIjoxfQ==",
			expectedMime: "application/json",
			expectedData: `{"a":1}`,
			isBase64:     true,
		},
		{
			name:         "percent-encoded json",
			input:        "data:application/json,%7B%22a%22%3A1%7D",
			expectedMime: "application/json",
			expectedData: `{"a":1}`,
		},
		{
			name:         "charset parameter",
			input:        "data:application/json;charset=utf-8;base64,eyJhIjoxfQ==",
			expectedMime: "application/json",
			expectedData: `{"a":1}`,
			isBase64:     true,
		},
		{
			name:         "default mime type",
			input:        "data:,hello",
			expectedMime: "text/plain",
			expectedData: "hello",
		},
		{
			name:        "missing comma",
			input:       "data:application/json",
			expectedErr: "missing comma separator",
		},
		{
			name:        "not a data uri",
			input:       "https://example.com",
			expectedErr: "missing data: prefix",
		},
		{
			name:        "bad base64",
			input:       "data:application/json;base64,!!!",
			expectedErr: "failed to decode base64",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed, err := uri.ParseDataURI(tt.input, b64)
			if tt.expectedErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedMime, parsed.MimeType)
			assert.Equal(t, tt.expectedData, string(parsed.Data))
			assert.Equal(t, tt.isBase64, parsed.IsBase64)
		})
	}
}

func TestIsDataURI(t *testing.T) {
	assert.True(t, uri.IsDataURI("data:,x"))
	assert.True(t, uri.IsDataURI("DATA:,x"))
	assert.False(t, uri.IsDataURI("ipfs://x"))
	assert.False(t, uri.IsDataURI("dat"))
}
