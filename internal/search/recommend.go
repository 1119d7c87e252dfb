package search

import (
	"context"
	"fmt"
	"sort"

	"github.com/feral-file/ip-search-agent/internal/history"
)

type tally struct {
	order  []string
	counts map[string]int
}

func newTally() *tally {
	return &tally{counts: map[string]int{}}
}

func (t *tally) add(key string) {
	if key == "" {
		return
	}
	if _, ok := t.counts[key]; !ok {
		t.order = append(t.order, key)
	}
	t.counts[key]++
}

// top returns the most frequent key; ties go to the key seen first
func (t *tally) top() (string, bool) {
	if len(t.order) == 0 {
		return "", false
	}
	keys := append([]string(nil), t.order...)
	sort.SliceStable(keys, func(i, j int) bool {
		return t.counts[keys[i]] > t.counts[keys[j]]
	})
	return keys[0], true
}

// Recommendations picks the most searched media type, license and tag
func (a *agent) Recommendations(entries []history.Entry) []Recommendation {
	mediaTypes, licenses, tags := newTally(), newTally(), newTally()
	for _, e := range entries {
		if e.ParsedQuery == nil {
			continue
		}
		if e.ParsedQuery.MediaType != nil {
			mediaTypes.add(string(*e.ParsedQuery.MediaType))
		}
		if e.ParsedQuery.License != nil {
			licenses.add(string(*e.ParsedQuery.License))
		}
		for _, tag := range e.ParsedQuery.Tags {
			tags.add(tag)
		}
	}

	recommendations := []Recommendation{}
	if mt, ok := mediaTypes.top(); ok {
		recommendations = append(recommendations, Recommendation{
			Type:       "media_type",
			Suggestion: fmt.Sprintf("Explore more %s assets", mt),
			Query:      fmt.Sprintf("latest %s assets", mt),
		})
	}
	if l, ok := licenses.top(); ok {
		recommendations = append(recommendations, Recommendation{
			Type:       "license",
			Suggestion: fmt.Sprintf("Find more assets with %s license", l),
			Query:      fmt.Sprintf("%s license assets", l),
		})
	}
	if tag, ok := tags.top(); ok {
		recommendations = append(recommendations, Recommendation{
			Type:       "tag",
			Suggestion: fmt.Sprintf("Discover more about %s", tag),
			Query:      tag,
		})
	}
	return recommendations
}

func (a *agent) Suggestions(ctx context.Context, query string, entries []history.Entry) []string {
	queries := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.Query != "" {
			queries = append(queries, e.Query)
		}
	}

	searchContext := map[string]interface{}{
		"query": query,
	}
	return a.synthesizer.SuggestSearches(ctx, searchContext, queries)
}
