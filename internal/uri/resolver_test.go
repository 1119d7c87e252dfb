package uri_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ip-search-agent/internal/uri"
)

func TestResolver_Resolve(t *testing.T) {
	resolver, err := uri.NewResolver(&uri.Config{
		IPFSGateways:    []string{"https://ipfs.io/", "https://cloudflare-ipfs.com"},
		ArweaveGateways: []string{"https://arweave.net"},
	})
	require.NoError(t, err)

	tests := []struct {
		name     string
		uri      string
		expected string
	}{
		{
			name:     "ipfs scheme",
			uri:      "ipfs://QmTest123",
			expected: "https://ipfs.io/ipfs/QmTest123",
		},
		{
			name:     "ipfs scheme with path",
			uri:      "ipfs://bafybeigdyrzt/metadata.json",
			expected: "https://ipfs.io/ipfs/bafybeigdyrzt/metadata.json",
		},
		{
			name:     "ipfs scheme with redundant ipfs segment",
			uri:      "ipfs://ipfs/QmTest123",
			expected: "https://ipfs.io/ipfs/QmTest123",
		},
		{
			name:     "arweave scheme",
			uri:      "ar://abc123",
			expected: "https://arweave.net/abc123",
		},
		{
			name:     "https unchanged",
			uri:      "https://example.com/metadata.json",
			expected: "https://example.com/metadata.json",
		},
		{
			name:     "gateway url unchanged",
			uri:      "https://gateway.pinata.cloud/ipfs/QmTest",
			expected: "https://gateway.pinata.cloud/ipfs/QmTest",
		},
		{
			name:     "data uri unchanged",
			uri:      "data:application/json,{}",
			expected: "data:application/json,{}",
		},
		{
			name:     "empty",
			uri:      "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, resolver.Resolve(tt.uri))
		})
	}
}

func TestNewResolver_RequiresGateways(t *testing.T) {
	_, err := uri.NewResolver(nil)
	assert.Error(t, err)

	_, err = uri.NewResolver(&uri.Config{IPFSGateways: []string{"https://ipfs.io"}})
	assert.Error(t, err)

	_, err = uri.NewResolver(&uri.Config{ArweaveGateways: []string{"https://arweave.net"}})
	assert.Error(t, err)
}
