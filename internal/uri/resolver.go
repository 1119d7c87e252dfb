package uri

import (
	"fmt"
	"strings"
)

const (
	ipfsScheme    = "ipfs://"
	arweaveScheme = "ar://"
)

// Config holds configuration for the URI resolver
type Config struct {
	// IPFSGateways is the list of IPFS gateways; the first one is used
	IPFSGateways []string
	// ArweaveGateways is the list of Arweave gateways; the first one is used
	ArweaveGateways []string
}

// Resolver defines the interface for resolving content-addressed URIs
//
//go:generate mockgen -source=resolver.go -destination=../mocks/uri_resolver.go -package=mocks -mock_names=Resolver=MockURIResolver
type Resolver interface {
	// Resolve rewrites ipfs:// and ar:// URIs into HTTP gateway URLs.
	// Any other URI is returned unchanged. No network access is performed.
	Resolve(uri string) string
}

type resolver struct {
	ipfsGateway    string
	arweaveGateway string
}

// NewResolver creates a resolver from config. At least one gateway of each kind is required.
func NewResolver(config *Config) (Resolver, error) {
	if config == nil || len(config.IPFSGateways) == 0 {
		return nil, fmt.Errorf("no IPFS gateways configured")
	}
	if len(config.ArweaveGateways) == 0 {
		return nil, fmt.Errorf("no Arweave gateways configured")
	}

	return &resolver{
		ipfsGateway:    strings.TrimRight(config.IPFSGateways[0], "/"),
		arweaveGateway: strings.TrimRight(config.ArweaveGateways[0], "/"),
	}, nil
}

func (r *resolver) Resolve(uri string) string {
	if cid, ok := strings.CutPrefix(uri, ipfsScheme); ok {
		// Some metadata carries ipfs://ipfs/<cid>
		cid = strings.TrimPrefix(cid, "ipfs/")
		return fmt.Sprintf("%s/ipfs/%s", r.ipfsGateway, cid)
	}

	if txID, ok := strings.CutPrefix(uri, arweaveScheme); ok {
		return fmt.Sprintf("%s/%s", r.arweaveGateway, txID)
	}

	return uri
}
