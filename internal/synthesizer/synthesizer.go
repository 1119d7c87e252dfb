package synthesizer

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/feral-file/ip-search-agent/internal/adapter"
	"github.com/feral-file/ip-search-agent/internal/domain"
	"github.com/feral-file/ip-search-agent/internal/llm"
	"github.com/feral-file/ip-search-agent/internal/logger"
	"github.com/feral-file/ip-search-agent/internal/metadata"
	"github.com/feral-file/ip-search-agent/internal/metrics"
)

// Purposes used as the LLM metrics label
const (
	PurposeSummary       = "summary"
	PurposeAsset         = "asset"
	PurposeComparison    = "comparison"
	PurposeMetadata      = "metadata"
	PurposeLicensing     = "licensing"
	PurposeRelationships = "relationships"
	PurposeSuggestions   = "suggestions"
)

const (
	resultsPreviewSize   = 3
	suggestionHistory    = 5
	refineSearchHint     = "Coba gunakan kata kunci lain atau kurangi filter untuk memperluas pencarian."
	comparisonFallback   = "Perbandingan IP Assets berhasil diambil. Lihat detail masing-masing asset untuk informasi lengkap."
	metadataFallback     = "Analisis metadata berhasil dilakukan. Metadata mengikuti standar IPA dan siap untuk integrasi."
	licensingFallback    = "Rekomendasi lisensi tersedia berdasarkan terms yang ada. Silakan review detail lisensi untuk memahami hak dan kewajiban."
	relationshipFallback = "Analisis hubungan IP menunjukkan struktur keluarga IP yang kompleks dengan berbagai peluang pengembangan."
)

// DefaultSuggestions is returned when the language model cannot be used
var DefaultSuggestions = []string{
	"Explore IP assets populer",
	"Cari berdasarkan creator",
	"Filter by media type",
	"Lisensi open use",
	"AI agents terbaru",
}

// AlternativeSuggestions is returned when the model replies with something other than a list
var AlternativeSuggestions = []string{
	"IP assets serupa dengan lisensi berbeda",
	"Karya dari creator yang sama",
	"Derivative works terbaru",
	"IP dengan lisensi komersial",
	"AI agents terpopuler",
}

// Synthesizer writes user-facing text about search results and assets.
// Every operation asks the language model first and falls back to a fixed template,
// so none of them fail.
//
//go:generate mockgen -source=synthesizer.go -destination=../mocks/synthesizer.go -package=mocks -mock_names=Synthesizer=MockSynthesizer
type Synthesizer interface {
	// SummarizeResults describes the outcome of a free-text search
	SummarizeResults(ctx context.Context, results []domain.RawAssetRecord, query string) string

	// SummarizeAsset describes a single asset found by identifier
	SummarizeAsset(ctx context.Context, ipID string, asset *metadata.AssetMetadata) string

	// SummarizeComparison contrasts several assets
	SummarizeComparison(ctx context.Context, assets []*metadata.AssetMetadata) string

	// AnalyzeMetadata reviews an asset's metadata for technical users
	AnalyzeMetadata(ctx context.Context, asset *metadata.AssetMetadata) string

	// RecommendLicensing advises on license terms given what the user wants to do
	RecommendLicensing(ctx context.Context, info metadata.LicenseInfo, intent string) string

	// RelationshipInsights explains an asset's parents and derivatives
	RelationshipInsights(ctx context.Context, info metadata.RelationshipInfo) string

	// SuggestSearches proposes follow-up searches from the current context and recent queries
	SuggestSearches(ctx context.Context, searchContext interface{}, history []string) []string
}

type synthesizer struct {
	llm         llm.Client
	json        adapter.JSON
	explorerURL string
	metrics     *metrics.Metrics
}

// New creates a new response synthesizer. explorerURL is the base of the asset links
// written into fallback cards.
func New(llmClient llm.Client, json adapter.JSON, explorerURL string, m *metrics.Metrics) Synthesizer {
	return &synthesizer{
		llm:         llmClient,
		json:        json,
		explorerURL: explorerURL,
		metrics:     m,
	}
}

// generate runs one completion. ok is false when the caller must use its fallback.
func (s *synthesizer) generate(ctx context.Context, purpose string, opts llm.Options, prompt func() string) (string, bool) {
	if !s.llm.Available() {
		s.metrics.ObserveLLM(purpose, metrics.OutcomeFallback)
		return "", false
	}

	reply, err := s.llm.Complete(ctx, prompt(), opts)
	if err != nil {
		logger.WarnCtx(ctx, "LLM generation failed, using fallback", zap.String("purpose", purpose), zap.Error(err))
		s.metrics.ObserveLLM(purpose, metrics.OutcomeFallback)
		return "", false
	}

	s.metrics.ObserveLLM(purpose, metrics.OutcomeOK)
	return reply, true
}

func (s *synthesizer) SummarizeResults(ctx context.Context, results []domain.RawAssetRecord, query string) string {
	reply, ok := s.generate(ctx, PurposeSummary, llm.Options{System: summarySystem, Temperature: summaryTemperature}, func() string {
		preview := results
		if len(preview) > resultsPreviewSize {
			preview = preview[:resultsPreviewSize]
		}
		return summaryPrompt(query, len(results), s.marshal(ctx, preview))
	})
	if ok {
		return reply
	}

	return ResultsFallback(len(results), query)
}

// ResultsFallback is the templated summary of a free-text search
func ResultsFallback(count int, query string) string {
	summary := fmt.Sprintf("Ditemukan %d hasil untuk pencarian \"%s\".", count, query)
	if count == 0 {
		summary += " " + refineSearchHint
	}
	return summary
}

func (s *synthesizer) SummarizeAsset(ctx context.Context, ipID string, asset *metadata.AssetMetadata) string {
	var view metadata.PortalView
	if asset != nil {
		view = asset.PortalData
	}

	reply, ok := s.generate(ctx, PurposeAsset, llm.Options{System: assetSystem, Temperature: assetTemperature}, func() string {
		return assetPrompt(ipID, view)
	})
	if ok {
		return reply
	}

	return AssetFallback(s.explorerURL, ipID, view)
}

// AssetFallback is the templated card for a single asset
func AssetFallback(explorerURL, ipID string, view metadata.PortalView) string {
	title := view.DisplayInfo.Title
	if title == "" {
		title = metadata.PlaceholderTitle(ipID)
	}
	if ipID == "" {
		ipID = "Unknown"
	}

	content := "📄 Digital content"
	if hasImage(view) {
		content = "🖼️ Have visual content"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "🎨 **%s** berhasil ditemukan!\n\n", title)
	b.WriteString("📋 **Detail IP Asset:**\n")
	fmt.Fprintf(&b, "- ID: %s\n", ipID)
	b.WriteString("- Registered on Story Protocol\n")
	fmt.Fprintf(&b, "- %s\n\n", content)
	if hasImage(view) {
		fmt.Fprintf(&b, "🔗 **See Image:** %s\n\n", view.DisplayInfo.Image)
	}
	b.WriteString("💡 **How to Use:**\n")
	b.WriteString("1. Check the license before use\n")
	b.WriteString("2. Access the content via the provided URL\n")
	b.WriteString("3. Contact the creator for collaboration\n\n")
	fmt.Fprintf(&b, "🌐 **Portal Story:** %s", domain.ExplorerURL(explorerURL, ipID))
	return b.String()
}

func (s *synthesizer) SummarizeComparison(ctx context.Context, assets []*metadata.AssetMetadata) string {
	present := make([]*metadata.AssetMetadata, 0, len(assets))
	for _, a := range assets {
		if a != nil {
			present = append(present, a)
		}
	}

	reply, ok := s.generate(ctx, PurposeComparison, llm.Options{System: comparisonSystem, Temperature: comparisonTemperature}, func() string {
		return comparisonPrompt(present)
	})
	if ok {
		return reply
	}
	return comparisonFallback
}

func (s *synthesizer) AnalyzeMetadata(ctx context.Context, asset *metadata.AssetMetadata) string {
	reply, ok := s.generate(ctx, PurposeMetadata, llm.Options{System: metadataSystem, Temperature: metadataTemperature}, func() string {
		return metadataPrompt(s.marshal(ctx, asset))
	})
	if ok {
		return reply
	}
	return metadataFallback
}

func (s *synthesizer) RecommendLicensing(ctx context.Context, info metadata.LicenseInfo, intent string) string {
	reply, ok := s.generate(ctx, PurposeLicensing, llm.Options{System: licensingSystem, Temperature: licensingTemperature}, func() string {
		return licensingPrompt(info, s.marshal(ctx, info.LicenseTerms), intent)
	})
	if ok {
		return reply
	}
	return licensingFallback
}

func (s *synthesizer) RelationshipInsights(ctx context.Context, info metadata.RelationshipInfo) string {
	reply, ok := s.generate(ctx, PurposeRelationships, llm.Options{System: relationshipsSystem, Temperature: relationshipsTemperature}, func() string {
		return relationshipsPrompt(info)
	})
	if ok {
		return reply
	}
	return relationshipFallback
}

func (s *synthesizer) SuggestSearches(ctx context.Context, searchContext interface{}, history []string) []string {
	if len(history) > suggestionHistory {
		history = history[len(history)-suggestionHistory:]
	}

	reply, ok := s.generate(ctx, PurposeSuggestions, llm.Options{System: suggestionsSystem, Temperature: suggestionsTemperature}, func() string {
		return suggestionsPrompt(s.marshal(ctx, searchContext), history)
	})
	if !ok {
		return cloneStrings(DefaultSuggestions)
	}

	var items []interface{}
	if err := s.json.Unmarshal([]byte(llm.ExtractJSON(reply)), &items); err != nil {
		logger.WarnCtx(ctx, "LLM suggestions are not a JSON array", zap.Error(err))
		return cloneStrings(AlternativeSuggestions)
	}

	suggestions := make([]string, 0, len(items))
	for _, item := range items {
		if str, ok := item.(string); ok && strings.TrimSpace(str) != "" {
			suggestions = append(suggestions, strings.TrimSpace(str))
		}
	}
	if len(suggestions) == 0 {
		return cloneStrings(AlternativeSuggestions)
	}
	return suggestions
}

func (s *synthesizer) marshal(ctx context.Context, v interface{}) string {
	data, err := s.json.Marshal(v)
	if err != nil {
		logger.WarnCtx(ctx, "Failed to marshal prompt data", zap.Error(err))
		return "{}"
	}
	return string(data)
}

// hasImage reports whether the view carries a real image rather than the placeholder
func hasImage(view metadata.PortalView) bool {
	image := view.DisplayInfo.Image
	return image != "" && image != domain.PLACEHOLDER_IMAGE_URL
}

func relatedList(assets []domain.RelatedAsset) string {
	var b strings.Builder
	for _, a := range assets {
		title := a.Title
		if title == "" {
			title = "Unknown"
		}
		fmt.Fprintf(&b, "- %s (%s)\n", a.IPID, title)
	}
	return b.String()
}

func cloneStrings(s []string) []string {
	return append([]string(nil), s...)
}
