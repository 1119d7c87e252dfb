package metadata

import (
	"github.com/feral-file/ip-search-agent/internal/types"
)

// Source names used by the display field rules
const (
	SourceIPMetadata  = "ipMetadata"
	SourceNFTMetadata = "nftMetadata"
	SourceRecord      = "record"
)

// Source is one named document consulted by the field resolver.
// A nil Doc is treated as an absent source.
type Source struct {
	Name string
	Doc  map[string]interface{}
}

// Lookup reads Key from the source called Source
type Lookup struct {
	Source string
	Key    string
}

// FieldRule resolves one output field: the first non-empty lookup wins, otherwise Default is used
type FieldRule struct {
	Name    string
	Lookups []Lookup
	Default func() string
}

// ResolveFields applies rules to sources and returns a value for every rule.
// It performs no I/O.
func ResolveFields(rules []FieldRule, sources []Source) map[string]string {
	docs := make(map[string]map[string]interface{}, len(sources))
	for _, s := range sources {
		docs[s.Name] = s.Doc
	}

	resolved := make(map[string]string, len(rules))
	for _, rule := range rules {
		resolved[rule.Name] = resolveField(rule, docs)
	}
	return resolved
}

func resolveField(rule FieldRule, docs map[string]map[string]interface{}) string {
	for _, l := range rule.Lookups {
		if v := types.MapString(docs[l.Source], l.Key); v != "" {
			return v
		}
	}
	if rule.Default != nil {
		return rule.Default()
	}
	return ""
}
