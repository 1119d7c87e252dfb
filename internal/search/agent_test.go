package search_test

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ip-search-agent/internal/domain"
	"github.com/feral-file/ip-search-agent/internal/history"
	"github.com/feral-file/ip-search-agent/internal/logger"
	"github.com/feral-file/ip-search-agent/internal/metadata"
	"github.com/feral-file/ip-search-agent/internal/metrics"
	"github.com/feral-file/ip-search-agent/internal/mocks"
	"github.com/feral-file/ip-search-agent/internal/search"
)

const (
	testExplorer = "https://aeneid.explorer.story.foundation"
	testIPID     = domain.EXAMPLE_IP_ID
	otherIPID    = "0x7d126DB8bdD3bF88d757FC2e99BFE3d77a55509b"
)

var testNow = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func TestMain(m *testing.M) {
	err := logger.Initialize(logger.Config{
		Debug: false,
	})
	if err != nil {
		panic(err)
	}

	code := m.Run()
	os.Exit(code)
}

type testAgent struct {
	interpreter *mocks.MockInterpreter
	registry    *mocks.MockStoryClient
	aggregator  *mocks.MockMetadataAggregator
	synthesizer *mocks.MockSynthesizer
	metrics     *metrics.Metrics
	agent       search.Agent
}

func setupTestAgent(t *testing.T) *testAgent {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	ta := &testAgent{
		interpreter: mocks.NewMockInterpreter(ctrl),
		registry:    mocks.NewMockStoryClient(ctrl),
		aggregator:  mocks.NewMockMetadataAggregator(ctrl),
		synthesizer: mocks.NewMockSynthesizer(ctrl),
	}

	clock := mocks.NewMockClock(ctrl)
	clock.EXPECT().Now().Return(testNow).AnyTimes()

	reg := prometheus.NewRegistry()
	ta.metrics = metrics.New(reg, reg)

	ta.agent = search.NewAgent(search.Config{
		ExplorerURL:  testExplorer,
		BatchWorkers: 4,
		MaxBatchIDs:  3,
	}, ta.interpreter, ta.registry, ta.aggregator, ta.synthesizer, clock, ta.metrics)
	t.Cleanup(ta.agent.Close)

	return ta
}

func assetMetadata(ipID, title string) *metadata.AssetMetadata {
	return &metadata.AssetMetadata{
		Basic: domain.RawAssetRecord{IPID: ipID, Title: title},
		PortalData: metadata.PortalView{
			DisplayInfo: metadata.DisplayInfo{Title: title},
		},
	}
}

// expectFound wires a successful lookup and summary for ipID
func (ta *testAgent) expectFound(ipID, title string) {
	record := domain.RawAssetRecord{IPID: ipID, Title: title}
	meta := assetMetadata(ipID, title)
	ta.registry.EXPECT().GetAssetByID(gomock.Any(), ipID).
		Return(domain.AssetResult{Kind: domain.AssetKindReal, Record: record}, nil)
	ta.aggregator.EXPECT().Aggregate(gomock.Any(), ipID, record).Return(meta)
	ta.synthesizer.EXPECT().SummarizeAsset(gomock.Any(), ipID, meta).Return("summary of " + title)
}

func TestAgent_Search_Text(t *testing.T) {
	ta := setupTestAgent(t)
	image := domain.MediaTypeImage
	parsed := domain.ParsedQuery{Query: "kucing", MediaType: &image, Tags: []string{"kucing"}, Intent: "cats"}
	results := []domain.RawAssetRecord{{IPID: "0x1"}, {IPID: "0x2"}}

	ta.interpreter.EXPECT().Parse(gomock.Any(), "gambar kucing").Return(parsed)
	ta.registry.EXPECT().QueryAssets(gomock.Any(), parsed).Return(results, nil)
	ta.synthesizer.EXPECT().SummarizeResults(gomock.Any(), results, "gambar kucing").Return("Ditemukan 2 hasil")

	env := ta.agent.Search(context.Background(), "gambar kucing")

	require.True(t, env.Success)
	require.NotNil(t, env.Listing)
	assert.Nil(t, env.AssetView)
	assert.Equal(t, "gambar kucing", env.Query)
	assert.Equal(t, &parsed, env.ParsedQuery)
	assert.Equal(t, results, env.Results)
	assert.Equal(t, 2, env.TotalResults)
	assert.Equal(t, "Ditemukan 2 hasil", env.Summary)
	assert.Equal(t, "2025-03-01T12:00:00.000Z", env.Timestamp)
	assert.Equal(t, float64(1), testutil.ToFloat64(ta.metrics.SearchTotal.WithLabelValues("text", metrics.OutcomeOK)))
}

func TestAgent_Search_ZeroResults(t *testing.T) {
	ta := setupTestAgent(t)
	parsed := domain.ParsedQuery{Query: "naga"}

	ta.interpreter.EXPECT().Parse(gomock.Any(), "naga").Return(parsed)
	ta.registry.EXPECT().QueryAssets(gomock.Any(), parsed).Return([]domain.RawAssetRecord{}, nil)
	ta.synthesizer.EXPECT().SummarizeResults(gomock.Any(), []domain.RawAssetRecord{}, "naga").Return("none")

	env := ta.agent.Search(context.Background(), "naga")

	require.True(t, env.Success)
	data, err := json.Marshal(env)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"results":[]`)
	assert.Contains(t, string(data), `"totalResults":0`)
}

func TestAgent_Search_RegistryError(t *testing.T) {
	ta := setupTestAgent(t)
	parsed := domain.ParsedQuery{Query: "kucing"}

	ta.interpreter.EXPECT().Parse(gomock.Any(), "kucing").Return(parsed)
	ta.registry.EXPECT().QueryAssets(gomock.Any(), parsed).
		Return(nil, fmt.Errorf("%w: boom", domain.ErrRegistryUnavailable))

	env := ta.agent.Search(context.Background(), "kucing")

	assert.False(t, env.Success)
	assert.Equal(t, "kucing", env.Query)
	assert.Contains(t, env.Error, "registry unavailable")
	assert.Nil(t, env.Listing)
}

func TestAgent_Search_Empty(t *testing.T) {
	ta := setupTestAgent(t)

	env := ta.agent.Search(context.Background(), "   ")

	assert.False(t, env.Success)
	assert.Equal(t, "Query is required", env.Error)
}

func TestAgent_Search_IdentifierBranch(t *testing.T) {
	t.Run("validator on raw input", func(t *testing.T) {
		ta := setupTestAgent(t)
		ta.interpreter.EXPECT().Parse(gomock.Any(), testIPID).Return(domain.ParsedQuery{Query: testIPID})
		ta.expectFound(testIPID, "Official Ippy")

		env := ta.agent.Search(context.Background(), testIPID)

		require.True(t, env.Success)
		assert.Equal(t, search.SearchTypeIdentifier, env.SearchType)
	})

	t.Run("interpreter flag with embedded identifier", func(t *testing.T) {
		ta := setupTestAgent(t)
		input := "tolong cari " + testIPID
		ta.interpreter.EXPECT().Parse(gomock.Any(), input).Return(domain.ParsedQuery{Query: input, IsIdentifier: true})
		ta.expectFound(testIPID, "Official Ippy")

		env := ta.agent.Search(context.Background(), input)

		require.True(t, env.Success)
		assert.Equal(t, testIPID, env.IPID)
	})

	t.Run("interpreter flag without identifier", func(t *testing.T) {
		ta := setupTestAgent(t)
		ta.interpreter.EXPECT().Parse(gomock.Any(), "ippy").Return(domain.ParsedQuery{Query: "ippy", IsIdentifier: true})

		env := ta.agent.Search(context.Background(), "ippy")

		assert.False(t, env.Success)
		assert.Equal(t, "Invalid IPID format: ippy. IPID should be a valid Ethereum address.", env.Error)
	})
}

func TestAgent_SearchByIdentifier(t *testing.T) {
	ta := setupTestAgent(t)
	ta.expectFound(testIPID, "Official Ippy")

	env := ta.agent.SearchByIdentifier(context.Background(), "  "+testIPID+"  ")

	require.True(t, env.Success)
	require.NotNil(t, env.AssetView)
	assert.Equal(t, testIPID, env.IPID)
	assert.Equal(t, "summary of Official Ippy", env.Summary)
	assert.Equal(t, testExplorer+"/ipa/"+testIPID, env.PortalURL)
	assert.False(t, env.IsMock)
	assert.Equal(t, "Official Ippy", env.Data.Metadata.PortalData.DisplayInfo.Title)
	assert.Equal(t, float64(1), testutil.ToFloat64(ta.metrics.SearchTotal.WithLabelValues("identifier", metrics.OutcomeOK)))
}

func TestAgent_SearchByIdentifier_NotFound(t *testing.T) {
	ta := setupTestAgent(t)
	ta.registry.EXPECT().GetAssetByID(gomock.Any(), testIPID).
		Return(domain.AssetResult{}, fmt.Errorf("%w: %s", domain.ErrAssetNotFound, testIPID))

	env := ta.agent.SearchByIdentifier(context.Background(), testIPID)

	assert.False(t, env.Success)
	assert.Equal(t, search.SearchTypeIdentifier, env.SearchType)
	assert.Equal(t, "IP Asset dengan IPID "+testIPID+" tidak ditemukan di Story Protocol.", env.Error)
	assert.Equal(t, "Pastikan IPID valid dan terdaftar di Story Protocol Explorer.", env.Suggestion)
	assert.Contains(t, env.ValidExample, domain.EXAMPLE_IP_ID)
	assert.Equal(t, testExplorer+"/", env.ExplorerURL)
	assert.Nil(t, env.AssetView)
	assert.Equal(t, float64(1), testutil.ToFloat64(ta.metrics.SearchTotal.WithLabelValues("identifier", metrics.OutcomeNotFound)))
}

func TestAgent_SearchByIdentifier_TransientUsesMock(t *testing.T) {
	ta := setupTestAgent(t)
	mock := domain.AssetResult{
		Kind:       domain.AssetKindMock,
		MockReason: "registry unavailable: timeout",
		Record:     domain.RawAssetRecord{IPID: testIPID, Title: "Story Protocol IP Asset"},
	}
	meta := assetMetadata(testIPID, "Story Protocol IP Asset")

	ta.registry.EXPECT().GetAssetByID(gomock.Any(), testIPID).
		Return(domain.AssetResult{}, fmt.Errorf("%w: timeout", domain.ErrRegistryUnavailable))
	ta.registry.EXPECT().MockAsset(testIPID, "registry unavailable: timeout").Return(mock)
	ta.aggregator.EXPECT().Aggregate(gomock.Any(), testIPID, mock.Record).Return(meta)
	ta.synthesizer.EXPECT().SummarizeAsset(gomock.Any(), testIPID, meta).Return("demo")

	env := ta.agent.SearchByIdentifier(context.Background(), testIPID)

	require.True(t, env.Success)
	assert.True(t, env.IsMock)
	assert.True(t, env.Data.IsMock)
	assert.Equal(t, "registry unavailable: timeout", env.Data.MockReason)
	assert.Equal(t, float64(1), testutil.ToFloat64(ta.metrics.SearchTotal.WithLabelValues("identifier", metrics.OutcomeMock)))
}

func TestAgent_SearchByIdentifier_EmptySummary(t *testing.T) {
	ta := setupTestAgent(t)
	record := domain.RawAssetRecord{IPID: testIPID}
	meta := assetMetadata(testIPID, "")

	ta.registry.EXPECT().GetAssetByID(gomock.Any(), testIPID).Return(domain.AssetResult{Kind: domain.AssetKindReal, Record: record}, nil)
	ta.aggregator.EXPECT().Aggregate(gomock.Any(), testIPID, record).Return(meta)
	ta.synthesizer.EXPECT().SummarizeAsset(gomock.Any(), testIPID, meta).Return("  ")

	env := ta.agent.SearchByIdentifier(context.Background(), testIPID)

	assert.Equal(t,
		"IP Asset dengan ID "+testIPID+" berhasil ditemukan di Story Protocol. Lihat detail lengkap di portal.",
		env.Summary)
}

func TestAgent_SearchByIdentifier_SummaryPanics(t *testing.T) {
	ta := setupTestAgent(t)
	record := domain.RawAssetRecord{IPID: testIPID, Title: "Official Ippy"}
	meta := assetMetadata(testIPID, "Official Ippy")

	ta.registry.EXPECT().GetAssetByID(gomock.Any(), testIPID).Return(domain.AssetResult{Kind: domain.AssetKindReal, Record: record}, nil)
	ta.aggregator.EXPECT().Aggregate(gomock.Any(), testIPID, record).Return(meta)
	ta.synthesizer.EXPECT().SummarizeAsset(gomock.Any(), testIPID, meta).
		DoAndReturn(func(context.Context, string, *metadata.AssetMetadata) string {
			panic("llm boom")
		})

	env := ta.agent.SearchByIdentifier(context.Background(), testIPID)

	require.True(t, env.Success)
	assert.Empty(t, env.Error)
	require.NotNil(t, env.AssetView)
	assert.Equal(t, meta, env.Data.Metadata)
	assert.Equal(t,
		"IP Asset dengan ID "+testIPID+" berhasil ditemukan di Story Protocol. Lihat detail lengkap di portal.",
		env.Summary)
	assert.Equal(t, float64(1), testutil.ToFloat64(ta.metrics.SearchTotal.WithLabelValues("identifier", metrics.OutcomeOK)))
}

func TestAgent_SearchByIdentifier_Invalid(t *testing.T) {
	ta := setupTestAgent(t)

	env := ta.agent.SearchByIdentifier(context.Background(), "0x123")

	assert.False(t, env.Success)
	assert.Equal(t, "0x123", env.IPID)
	assert.Equal(t, "Invalid IPID format: 0x123. IPID should be a valid Ethereum address.", env.Error)
}

func TestAgent_SearchByIdentifier_Panic(t *testing.T) {
	ta := setupTestAgent(t)
	ta.registry.EXPECT().GetAssetByID(gomock.Any(), testIPID).
		Return(domain.AssetResult{Kind: domain.AssetKindReal}, nil)
	ta.aggregator.EXPECT().Aggregate(gomock.Any(), testIPID, gomock.Any()).
		DoAndReturn(func(context.Context, string, domain.RawAssetRecord) *metadata.AssetMetadata {
			panic("unexpected")
		})

	var env *search.Envelope
	assert.NotPanics(t, func() {
		env = ta.agent.SearchByIdentifier(context.Background(), testIPID)
	})
	require.NotNil(t, env)
	assert.False(t, env.Success)
	assert.Contains(t, env.Error, "unexpected")
}

func TestAgent_SearchWithFilters(t *testing.T) {
	ta := setupTestAgent(t)
	license := domain.LicenseCommercial
	expected := domain.ParsedQuery{
		Query:   "musik",
		License: &license,
		Tags:    []string{},
		Intent:  domain.FALLBACK_QUERY_INTENT,
	}
	ta.registry.EXPECT().QueryAssets(gomock.Any(), expected).Return([]domain.RawAssetRecord{{IPID: "0x1"}}, nil)

	env := ta.agent.SearchWithFilters(context.Background(), "musik", search.Filters{License: &license})

	require.True(t, env.Success)
	assert.Equal(t, &expected, env.Filters)
	assert.Nil(t, env.ParsedQuery)
	assert.Equal(t, 1, env.TotalResults)
	assert.Empty(t, env.Summary)
}

func TestAgent_SmartSearch(t *testing.T) {
	t.Run("identifier skips interpretation", func(t *testing.T) {
		ta := setupTestAgent(t)
		ta.expectFound(testIPID, "Official Ippy")

		env := ta.agent.SmartSearch(context.Background(), testIPID)
		assert.True(t, env.Success)
		assert.Equal(t, search.SearchTypeIdentifier, env.SearchType)
	})

	t.Run("text", func(t *testing.T) {
		ta := setupTestAgent(t)
		ta.interpreter.EXPECT().Parse(gomock.Any(), "lagu").Return(domain.ParsedQuery{Query: "lagu"})
		ta.registry.EXPECT().QueryAssets(gomock.Any(), gomock.Any()).Return([]domain.RawAssetRecord{}, nil)
		ta.synthesizer.EXPECT().SummarizeResults(gomock.Any(), gomock.Any(), "lagu").Return("none")

		env := ta.agent.SmartSearch(context.Background(), "lagu")
		assert.True(t, env.Success)
		assert.Empty(t, env.SearchType)
	})
}

func TestAgent_SearchMultipleIdentifiers(t *testing.T) {
	ta := setupTestAgent(t)
	ta.expectFound(testIPID, "Official Ippy")
	ta.registry.EXPECT().GetAssetByID(gomock.Any(), otherIPID).
		Return(domain.AssetResult{}, fmt.Errorf("%w: %s", domain.ErrAssetNotFound, otherIPID))

	env := ta.agent.SearchMultipleIdentifiers(context.Background(), []string{testIPID, "bogus", otherIPID})

	require.True(t, env.Success)
	assert.Equal(t, search.SearchTypeBatch, env.SearchType)
	assert.Equal(t, 3, env.TotalSearched)
	assert.Equal(t, 1, env.Successful)
	assert.Equal(t, 2, env.Failed)
	require.Len(t, env.Results, 1)
	assert.Equal(t, testIPID, env.Results[0].IPID)
	assert.Equal(t, []search.BatchError{
		{IPID: "bogus", Error: "Invalid IPID format: bogus. IPID should be a valid Ethereum address."},
		{IPID: otherIPID, Error: "IP Asset dengan IPID " + otherIPID + " tidak ditemukan di Story Protocol."},
	}, env.Errors)
	assert.Equal(t, 1, testutil.CollectAndCount(ta.metrics.BatchSize))
}

func TestAgent_SearchMultipleIdentifiers_OneMalformed(t *testing.T) {
	ta := setupTestAgent(t)
	ta.expectFound(testIPID, "Official Ippy")
	ta.expectFound(otherIPID, "Song")

	env := ta.agent.SearchMultipleIdentifiers(context.Background(), []string{testIPID, "0xnot-an-address", otherIPID})

	require.True(t, env.Success)
	assert.Equal(t, 3, env.TotalSearched)
	assert.Equal(t, 2, env.Successful)
	assert.Equal(t, 1, env.Failed)
	require.Len(t, env.Results, 2)
	assert.Equal(t, testIPID, env.Results[0].IPID)
	assert.Equal(t, otherIPID, env.Results[1].IPID)
	require.Len(t, env.Errors, 1)
	assert.Equal(t, "0xnot-an-address", env.Errors[0].IPID)
	assert.Contains(t, env.Errors[0].Error, "Invalid IPID format")
}

func TestAgent_SearchMultipleIdentifiers_Validation(t *testing.T) {
	ta := setupTestAgent(t)

	empty := ta.agent.SearchMultipleIdentifiers(context.Background(), nil)
	assert.False(t, empty.Success)
	assert.Equal(t, "Array of IPIDs is required", empty.Error)

	tooMany := ta.agent.SearchMultipleIdentifiers(context.Background(), []string{"a", "b", "c", "d"})
	assert.False(t, tooMany.Success)
	assert.Contains(t, tooMany.Error, "too many identifiers")
	assert.Equal(t, search.SearchTypeBatch, tooMany.SearchType)
}

func TestAgent_CompareAssets(t *testing.T) {
	ta := setupTestAgent(t)
	ta.expectFound(testIPID, "Ippy")
	ta.expectFound(otherIPID, "Song")
	ta.synthesizer.EXPECT().SummarizeComparison(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, assets []*metadata.AssetMetadata) string {
			require.Len(t, assets, 2)
			assert.Equal(t, "Ippy", assets[0].PortalData.DisplayInfo.Title)
			assert.Equal(t, "Song", assets[1].PortalData.DisplayInfo.Title)
			return "Ippy vs Song"
		})

	env := ta.agent.CompareAssets(context.Background(), []string{testIPID, otherIPID})

	require.True(t, env.Success)
	assert.Equal(t, search.SearchTypeComparison, env.SearchType)
	assert.Equal(t, "Ippy vs Song", env.Summary)
}

func TestAgent_CompareAssets_SynthesizerPanics(t *testing.T) {
	ta := setupTestAgent(t)
	ta.expectFound(testIPID, "Ippy")
	ta.expectFound(otherIPID, "Song")
	ta.synthesizer.EXPECT().SummarizeComparison(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, []*metadata.AssetMetadata) string {
			panic("llm boom")
		})

	var env *search.BatchEnvelope
	assert.NotPanics(t, func() {
		env = ta.agent.CompareAssets(context.Background(), []string{testIPID, otherIPID})
	})

	require.NotNil(t, env)
	assert.False(t, env.Success)
	assert.Equal(t, search.SearchTypeComparison, env.SearchType)
	assert.Equal(t, "internal error: llm boom", env.Error)
	assert.NotNil(t, env.Results)
	assert.NotNil(t, env.Errors)
	assert.Equal(t, testNow.Format("2006-01-02T15:04:05.000Z"), env.Timestamp)
}

func TestAgent_AnalyzeAsset(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		ta := setupTestAgent(t)
		record := domain.RawAssetRecord{IPID: testIPID}
		meta := assetMetadata(testIPID, "Ippy")
		meta.PortalData.LicenseInfo = metadata.LicenseInfo{CommercialUse: true, MintingFee: "0"}

		ta.registry.EXPECT().GetAssetByID(gomock.Any(), testIPID).Return(domain.AssetResult{Kind: domain.AssetKindReal, Record: record}, nil)
		ta.aggregator.EXPECT().Aggregate(gomock.Any(), testIPID, record).Return(meta)
		ta.synthesizer.EXPECT().AnalyzeMetadata(gomock.Any(), meta).Return("metadata ok")
		ta.synthesizer.EXPECT().RecommendLicensing(gomock.Any(), meta.PortalData.LicenseInfo, "merchandise").Return("license ok")
		ta.synthesizer.EXPECT().RelationshipInsights(gomock.Any(), meta.PortalData.RelationshipInfo).Return("family ok")

		env := ta.agent.AnalyzeAsset(context.Background(), testIPID, "merchandise")

		require.True(t, env.Success)
		assert.Equal(t, "metadata ok", env.MetadataAnalysis)
		assert.Equal(t, "license ok", env.LicensingRecommendations)
		assert.Equal(t, "family ok", env.RelationshipInsights)
		assert.Equal(t, "merchandise", env.Intent)
	})

	t.Run("synthesizer panics", func(t *testing.T) {
		ta := setupTestAgent(t)
		record := domain.RawAssetRecord{IPID: testIPID}
		meta := assetMetadata(testIPID, "Ippy")

		ta.registry.EXPECT().GetAssetByID(gomock.Any(), testIPID).Return(domain.AssetResult{Kind: domain.AssetKindReal, Record: record}, nil)
		ta.aggregator.EXPECT().Aggregate(gomock.Any(), testIPID, record).Return(meta)
		ta.synthesizer.EXPECT().AnalyzeMetadata(gomock.Any(), meta).
			DoAndReturn(func(context.Context, *metadata.AssetMetadata) string {
				panic("llm boom")
			})
		ta.synthesizer.EXPECT().RecommendLicensing(gomock.Any(), gomock.Any(), gomock.Any()).Return("license ok").AnyTimes()
		ta.synthesizer.EXPECT().RelationshipInsights(gomock.Any(), gomock.Any()).Return("family ok").AnyTimes()

		var env *search.AnalysisEnvelope
		assert.NotPanics(t, func() {
			env = ta.agent.AnalyzeAsset(context.Background(), testIPID, "merchandise")
		})

		require.NotNil(t, env)
		assert.False(t, env.Success)
		assert.Equal(t, search.SearchTypeAnalysis, env.SearchType)
		assert.Equal(t, testIPID, env.IPID)
		assert.Equal(t, "internal error: llm boom", env.Error)
	})

	t.Run("not found", func(t *testing.T) {
		ta := setupTestAgent(t)
		ta.registry.EXPECT().GetAssetByID(gomock.Any(), testIPID).Return(domain.AssetResult{}, domain.ErrAssetNotFound)

		env := ta.agent.AnalyzeAsset(context.Background(), testIPID, "")

		assert.False(t, env.Success)
		assert.Equal(t, testIPID, env.IPID)
		assert.NotEmpty(t, env.Suggestion)
	})
}

func entry(mediaType *domain.MediaType, license *domain.License, tags ...string) history.Entry {
	return history.Entry{ParsedQuery: &domain.ParsedQuery{MediaType: mediaType, License: license, Tags: tags}}
}

func TestAgent_Recommendations(t *testing.T) {
	ta := setupTestAgent(t)
	image, audio := domain.MediaTypeImage, domain.MediaTypeAudio
	openUse := domain.LicenseOpenUse

	assert.Empty(t, ta.agent.Recommendations(nil))
	assert.Empty(t, ta.agent.Recommendations([]history.Entry{{Query: "batch"}}))

	got := ta.agent.Recommendations([]history.Entry{
		entry(&audio, nil, "lofi"),
		entry(&image, &openUse, "kucing", "lofi"),
		entry(&image, nil, "kucing"),
		{Query: "no parsed query"},
	})

	assert.Equal(t, []search.Recommendation{
		{Type: "media_type", Suggestion: "Explore more image assets", Query: "latest image assets"},
		{Type: "license", Suggestion: "Find more assets with open use license", Query: "open use license assets"},
		{Type: "tag", Suggestion: "Discover more about lofi", Query: "lofi"},
	}, got)
}

func TestAgent_Suggestions(t *testing.T) {
	ta := setupTestAgent(t)
	ta.synthesizer.EXPECT().
		SuggestSearches(gomock.Any(), map[string]interface{}{"query": "kucing"}, []string{"a", "b"}).
		Return([]string{"kucing oranye"})

	got := ta.agent.Suggestions(context.Background(), "kucing", []history.Entry{{Query: "a"}, {}, {Query: "b"}})
	assert.Equal(t, []string{"kucing oranye"}, got)
}
