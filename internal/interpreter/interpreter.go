package interpreter

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/feral-file/ip-search-agent/internal/adapter"
	"github.com/feral-file/ip-search-agent/internal/domain"
	"github.com/feral-file/ip-search-agent/internal/llm"
	"github.com/feral-file/ip-search-agent/internal/logger"
	"github.com/feral-file/ip-search-agent/internal/metrics"
)

const metricsPurpose = "parse"

// Interpreter turns free text into a structured query
//
//go:generate mockgen -source=interpreter.go -destination=../mocks/interpreter.go -package=mocks -mock_names=Interpreter=MockInterpreter
type Interpreter interface {
	// Parse interprets text with the language model when available and falls back
	// to keyword rules otherwise. It never fails.
	Parse(ctx context.Context, text string) domain.ParsedQuery
}

type interpreter struct {
	llm     llm.Client
	json    adapter.JSON
	metrics *metrics.Metrics
}

// New creates a new query interpreter
func New(llmClient llm.Client, json adapter.JSON, m *metrics.Metrics) Interpreter {
	return &interpreter{
		llm:     llmClient,
		json:    json,
		metrics: m,
	}
}

func (i *interpreter) Parse(ctx context.Context, text string) domain.ParsedQuery {
	if !i.llm.Available() {
		i.metrics.ObserveLLM(metricsPurpose, metrics.OutcomeFallback)
		return Fallback(text)
	}

	reply, err := i.llm.Complete(ctx, parsePrompt(text), llm.Options{
		System:      parseSystem,
		Temperature: parseTemperature,
	})
	if err != nil {
		logger.WarnCtx(ctx, "LLM query parsing failed, using fallback", zap.Error(err))
		i.metrics.ObserveLLM(metricsPurpose, metrics.OutcomeFallback)
		return Fallback(text)
	}

	parsed, err := i.decode(reply, text)
	if err != nil {
		logger.WarnCtx(ctx, "LLM returned an unusable query, using fallback", zap.Error(err), zap.String("reply", reply))
		i.metrics.ObserveLLM(metricsPurpose, metrics.OutcomeFallback)
		return Fallback(text)
	}

	i.metrics.ObserveLLM(metricsPurpose, metrics.OutcomeOK)
	return parsed
}

// llmQuery is the loosely typed shape of the model's reply
type llmQuery struct {
	Query        string        `json:"query"`
	MediaType    *string       `json:"mediaType"`
	License      *string       `json:"license"`
	Creator      *string       `json:"creator"`
	Tags         []interface{} `json:"tags"`
	Intent       string        `json:"intent"`
	IsIdentifier bool          `json:"isIdentifier"`
	IsIPID       bool          `json:"isIPID"`
}

func (i *interpreter) decode(reply, input string) (domain.ParsedQuery, error) {
	var q llmQuery
	if err := i.json.Unmarshal([]byte(llm.ExtractJSON(reply)), &q); err != nil {
		return domain.ParsedQuery{}, fmt.Errorf("invalid JSON: %w", err)
	}

	query := strings.TrimSpace(q.Query)
	if query == "" {
		return domain.ParsedQuery{}, errors.New("reply has no query")
	}

	parsed := domain.ParsedQuery{
		Query:        query,
		Tags:         []string{},
		Intent:       strings.TrimSpace(q.Intent),
		IsIdentifier: q.IsIdentifier || q.IsIPID || domain.IsValidIdentifier(input),
	}
	if parsed.Intent == "" {
		parsed.Intent = domain.FALLBACK_QUERY_INTENT
	}
	if q.MediaType != nil {
		if mt, ok := domain.ParseMediaType(*q.MediaType); ok {
			parsed.MediaType = &mt
		}
	}
	if q.License != nil {
		if l, ok := domain.ParseLicense(*q.License); ok {
			parsed.License = &l
		}
	}
	if q.Creator != nil {
		if c := strings.TrimSpace(*q.Creator); c != "" && !strings.EqualFold(c, "null") {
			parsed.Creator = &c
		}
	}
	for _, t := range q.Tags {
		if s, ok := t.(string); ok && strings.TrimSpace(s) != "" {
			parsed.Tags = append(parsed.Tags, strings.TrimSpace(s))
		}
	}

	return parsed, nil
}

var mediaKeywords = []struct {
	mediaType domain.MediaType
	keywords  []string
}{
	{domain.MediaTypeImage, []string{"gambar", "image", "foto"}},
	{domain.MediaTypeVideo, []string{"video", "film"}},
	{domain.MediaTypeAudio, []string{"audio", "musik", "lagu"}},
	{domain.MediaTypeText, []string{"text", "artikel"}},
}

// licenseKeywords is checked in order, so "non-commercial" input matches "commercial" first
var licenseKeywords = []struct {
	license  domain.License
	keywords []string
}{
	{domain.LicenseOpenUse, []string{"open use", "bebas"}},
	{domain.LicenseCommercial, []string{"commercial", "komersial"}},
	{domain.LicenseNonCommercial, []string{"non-commercial"}},
}

// Fallback interprets text with fixed keyword rules
func Fallback(text string) domain.ParsedQuery {
	lower := strings.ToLower(text)

	return domain.ParsedQuery{
		Query:        text,
		MediaType:    detectMediaType(lower),
		License:      detectLicense(lower),
		Creator:      nil,
		Tags:         extractTags(lower),
		Intent:       domain.FALLBACK_QUERY_INTENT,
		IsIdentifier: domain.IsValidIdentifier(text),
	}
}

func detectMediaType(lower string) *domain.MediaType {
	for _, entry := range mediaKeywords {
		if containsAny(lower, entry.keywords) {
			mt := entry.mediaType
			return &mt
		}
	}
	return nil
}

func detectLicense(lower string) *domain.License {
	for _, entry := range licenseKeywords {
		if containsAny(lower, entry.keywords) {
			l := entry.license
			return &l
		}
	}
	return nil
}

func extractTags(lower string) []string {
	tags := []string{}
	for _, word := range strings.Fields(lower) {
		if utf8.RuneCountInString(word) >= domain.MIN_FALLBACK_TAG_LEN {
			tags = append(tags, word)
		}
		if len(tags) == domain.MAX_FALLBACK_TAGS {
			break
		}
	}
	return tags
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}
