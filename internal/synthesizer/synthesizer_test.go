package synthesizer_test

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/feral-file/ip-search-agent/internal/adapter"
	"github.com/feral-file/ip-search-agent/internal/domain"
	"github.com/feral-file/ip-search-agent/internal/llm"
	"github.com/feral-file/ip-search-agent/internal/logger"
	"github.com/feral-file/ip-search-agent/internal/metadata"
	"github.com/feral-file/ip-search-agent/internal/metrics"
	"github.com/feral-file/ip-search-agent/internal/mocks"
	"github.com/feral-file/ip-search-agent/internal/synthesizer"
)

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

type testSynthesizer struct {
	llm     *mocks.MockLLMClient
	metrics *metrics.Metrics
	synth   synthesizer.Synthesizer
}

func setupTestSynthesizer(t *testing.T) *testSynthesizer {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	client := mocks.NewMockLLMClient(ctrl)
	reg := prometheus.NewRegistry()
	m := metrics.New(reg, reg)

	return &testSynthesizer{
		llm:     client,
		metrics: m,
		synth:   synthesizer.New(client, adapter.NewJSON(), domain.DEFAULT_STORY_EXPLORER_URL, m),
	}
}

func (ts *testSynthesizer) unavailable() {
	ts.llm.EXPECT().Available().Return(false).AnyTimes()
}

func (ts *testSynthesizer) failing() {
	ts.llm.EXPECT().Available().Return(true).AnyTimes()
	ts.llm.EXPECT().Complete(gomock.Any(), gomock.Any(), gomock.Any()).Return("", errors.New("connection reset")).AnyTimes()
}

func imageView(image string) metadata.PortalView {
	return metadata.PortalView{
		DisplayInfo: metadata.DisplayInfo{
			Title: "Official Ippy",
			Image: image,
		},
	}
}

func TestResultsFallback(t *testing.T) {
	assert.Equal(t, `Ditemukan 3 hasil untuk pencarian "kucing".`, synthesizer.ResultsFallback(3, "kucing"))

	zero := synthesizer.ResultsFallback(0, "naga ungu")
	assert.True(t, strings.HasPrefix(zero, `Ditemukan 0 hasil untuk pencarian "naga ungu".`))
	assert.Greater(t, len(zero), len(`Ditemukan 0 hasil untuk pencarian "naga ungu".`))
}

func TestSummarizeResults(t *testing.T) {
	results := []domain.RawAssetRecord{{IPID: "0x1"}, {IPID: "0x2"}}

	t.Run("unavailable", func(t *testing.T) {
		ts := setupTestSynthesizer(t)
		ts.unavailable()

		assert.Equal(t, `Ditemukan 2 hasil untuk pencarian "kucing".`, ts.synth.SummarizeResults(context.Background(), results, "kucing"))
		assert.Equal(t, float64(1), testutil.ToFloat64(ts.metrics.LLMTotal.WithLabelValues(synthesizer.PurposeSummary, metrics.OutcomeFallback)))
	})

	t.Run("error", func(t *testing.T) {
		ts := setupTestSynthesizer(t)
		ts.failing()

		assert.Equal(t, `Ditemukan 2 hasil untuk pencarian "kucing".`, ts.synth.SummarizeResults(context.Background(), results, "kucing"))
	})

	t.Run("llm reply", func(t *testing.T) {
		ts := setupTestSynthesizer(t)
		ts.llm.EXPECT().Available().Return(true)
		ts.llm.EXPECT().
			Complete(gomock.Any(), gomock.Any(), llm.Options{
				System:      "You are a helpful AI assistant for IP asset search. Respond in Indonesian.",
				Temperature: 0.7,
			}).
			DoAndReturn(func(_ context.Context, prompt string, _ llm.Options) (string, error) {
				assert.Contains(t, prompt, `Original Query: "kucing"`)
				assert.Contains(t, prompt, "Number of Results: 2")
				return "Ada 2 kucing!", nil
			})

		assert.Equal(t, "Ada 2 kucing!", ts.synth.SummarizeResults(context.Background(), results, "kucing"))
		assert.Equal(t, float64(1), testutil.ToFloat64(ts.metrics.LLMTotal.WithLabelValues(synthesizer.PurposeSummary, metrics.OutcomeOK)))
	})

	t.Run("preview limited to three results", func(t *testing.T) {
		ts := setupTestSynthesizer(t)
		many := []domain.RawAssetRecord{{IPID: "0xa"}, {IPID: "0xb"}, {IPID: "0xc"}, {IPID: "0xd"}}
		ts.llm.EXPECT().Available().Return(true)
		ts.llm.EXPECT().Complete(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, prompt string, _ llm.Options) (string, error) {
				assert.Contains(t, prompt, `"0xc"`)
				assert.NotContains(t, prompt, `"0xd"`)
				assert.Contains(t, prompt, "Number of Results: 4")
				return "ok", nil
			})

		ts.synth.SummarizeResults(context.Background(), many, "x")
	})
}

func TestAssetFallback(t *testing.T) {
	ipID := domain.EXAMPLE_IP_ID

	t.Run("with image", func(t *testing.T) {
		card := synthesizer.AssetFallback(domain.DEFAULT_STORY_EXPLORER_URL, ipID, imageView("https://ipfs.io/ipfs/QmImage"))

		assert.True(t, strings.HasPrefix(card, "🎨 **Official Ippy** berhasil ditemukan!"))
		assert.Contains(t, card, "- ID: "+ipID)
		assert.Contains(t, card, "- Registered on Story Protocol")
		assert.Contains(t, card, "🖼️ Have visual content")
		assert.Contains(t, card, "🔗 **See Image:** https://ipfs.io/ipfs/QmImage")
		assert.Contains(t, card, "1. Check the license before use")
		assert.True(t, strings.HasSuffix(card, "🌐 **Portal Story:** https://aeneid.explorer.story.foundation/ipa/"+ipID))
	})

	t.Run("placeholder image is not visual content", func(t *testing.T) {
		card := synthesizer.AssetFallback(domain.DEFAULT_STORY_EXPLORER_URL, ipID, imageView(domain.PLACEHOLDER_IMAGE_URL))

		assert.Contains(t, card, "📄 Digital content")
		assert.NotContains(t, card, "See Image")
	})

	t.Run("empty view", func(t *testing.T) {
		card := synthesizer.AssetFallback(domain.DEFAULT_STORY_EXPLORER_URL, ipID, metadata.PortalView{})

		assert.True(t, strings.HasPrefix(card, "🎨 **IP Asset 0xB1D831...** berhasil ditemukan!"))
		assert.Contains(t, card, "📄 Digital content")
	})

	t.Run("unknown id", func(t *testing.T) {
		card := synthesizer.AssetFallback(domain.DEFAULT_STORY_EXPLORER_URL, "", metadata.PortalView{})

		assert.Contains(t, card, "- ID: Unknown")
		assert.True(t, strings.HasSuffix(card, "/ipa/Unknown"))
	})
}

func TestSummarizeAsset(t *testing.T) {
	asset := &metadata.AssetMetadata{PortalData: imageView("https://ipfs.io/ipfs/QmImage")}

	t.Run("fallback", func(t *testing.T) {
		ts := setupTestSynthesizer(t)
		ts.failing()

		got := ts.synth.SummarizeAsset(context.Background(), domain.EXAMPLE_IP_ID, asset)
		assert.Equal(t, synthesizer.AssetFallback(domain.DEFAULT_STORY_EXPLORER_URL, domain.EXAMPLE_IP_ID, asset.PortalData), got)
	})

	t.Run("nil asset", func(t *testing.T) {
		ts := setupTestSynthesizer(t)
		ts.unavailable()

		got := ts.synth.SummarizeAsset(context.Background(), domain.EXAMPLE_IP_ID, nil)
		assert.Contains(t, got, "IP Asset 0xB1D831...")
	})

	t.Run("llm reply", func(t *testing.T) {
		ts := setupTestSynthesizer(t)
		ts.llm.EXPECT().Available().Return(true)
		ts.llm.EXPECT().Complete(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, prompt string, opts llm.Options) (string, error) {
				assert.Equal(t, 0.8, opts.Temperature)
				assert.Contains(t, prompt, "- Title: Official Ippy")
				assert.Contains(t, prompt, "- Has Image: Yes ✅")
				assert.Contains(t, prompt, "- Creator information not available")
				return "Wow!", nil
			})

		assert.Equal(t, "Wow!", ts.synth.SummarizeAsset(context.Background(), domain.EXAMPLE_IP_ID, asset))
	})
}

func TestAnalysisFallbacks(t *testing.T) {
	ts := setupTestSynthesizer(t)
	ts.unavailable()
	ctx := context.Background()

	assert.Equal(t,
		"Perbandingan IP Assets berhasil diambil. Lihat detail masing-masing asset untuk informasi lengkap.",
		ts.synth.SummarizeComparison(ctx, nil))
	assert.Equal(t,
		"Analisis metadata berhasil dilakukan. Metadata mengikuti standar IPA dan siap untuk integrasi.",
		ts.synth.AnalyzeMetadata(ctx, &metadata.AssetMetadata{}))
	assert.Equal(t,
		"Rekomendasi lisensi tersedia berdasarkan terms yang ada. Silakan review detail lisensi untuk memahami hak dan kewajiban.",
		ts.synth.RecommendLicensing(ctx, metadata.LicenseInfo{}, "commercial"))
	assert.Equal(t,
		"Analisis hubungan IP menunjukkan struktur keluarga IP yang kompleks dengan berbagai peluang pengembangan.",
		ts.synth.RelationshipInsights(ctx, metadata.RelationshipInfo{}))
}

func TestSummarizeComparison_Prompt(t *testing.T) {
	ts := setupTestSynthesizer(t)
	assets := []*metadata.AssetMetadata{
		{PortalData: metadata.PortalView{
			DisplayInfo: metadata.DisplayInfo{
				Title:    "First",
				Creators: []domain.Creator{{Name: "Alice"}},
			},
			LicenseInfo: metadata.LicenseInfo{CommercialUse: true},
		}},
		nil,
		{PortalData: metadata.PortalView{DisplayInfo: metadata.DisplayInfo{Title: "Second"}}},
	}

	ts.llm.EXPECT().Available().Return(true)
	ts.llm.EXPECT().Complete(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, prompt string, _ llm.Options) (string, error) {
			assert.Contains(t, prompt, "IP ASSET 1:\n- Title: First")
			assert.Contains(t, prompt, "- Creator: Alice")
			assert.Contains(t, prompt, "IP ASSET 2:\n- Title: Second")
			assert.Contains(t, prompt, "- Creator: Unknown")
			assert.NotContains(t, prompt, "IP ASSET 3")
			return "comparison", nil
		})

	assert.Equal(t, "comparison", ts.synth.SummarizeComparison(context.Background(), assets))
}

func TestRelationshipInsights_Prompt(t *testing.T) {
	ts := setupTestSynthesizer(t)
	info := metadata.RelationshipInfo{
		Parents:  []domain.RelatedAsset{{IPID: "0xparent", Title: "Origin"}},
		Children: []domain.RelatedAsset{{IPID: "0xchild"}},
	}

	ts.llm.EXPECT().Available().Return(true)
	ts.llm.EXPECT().Complete(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, prompt string, opts llm.Options) (string, error) {
			assert.Equal(t, 0.6, opts.Temperature)
			assert.Contains(t, prompt, "- 0xparent (Origin)")
			assert.Contains(t, prompt, "- 0xchild (Unknown)")
			return "family", nil
		})

	assert.Equal(t, "family", ts.synth.RelationshipInsights(context.Background(), info))
}

func TestSuggestSearches(t *testing.T) {
	ctx := context.Background()

	t.Run("unavailable", func(t *testing.T) {
		ts := setupTestSynthesizer(t)
		ts.unavailable()

		assert.Equal(t, synthesizer.DefaultSuggestions, ts.synth.SuggestSearches(ctx, nil, nil))
	})

	t.Run("error", func(t *testing.T) {
		ts := setupTestSynthesizer(t)
		ts.failing()

		assert.Equal(t, synthesizer.DefaultSuggestions, ts.synth.SuggestSearches(ctx, nil, nil))
	})

	t.Run("non json reply", func(t *testing.T) {
		ts := setupTestSynthesizer(t)
		ts.llm.EXPECT().Available().Return(true)
		ts.llm.EXPECT().Complete(gomock.Any(), gomock.Any(), gomock.Any()).Return("1. kucing\n2. anjing", nil)

		assert.Equal(t, synthesizer.AlternativeSuggestions, ts.synth.SuggestSearches(ctx, nil, nil))
	})

	t.Run("json array", func(t *testing.T) {
		ts := setupTestSynthesizer(t)
		ts.llm.EXPECT().Available().Return(true)
		ts.llm.EXPECT().Complete(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, prompt string, _ llm.Options) (string, error) {
				assert.NotContains(t, prompt, "- q1\n")
				assert.Contains(t, prompt, "- q2\n")
				assert.Contains(t, prompt, "- q6\n")
				assert.Contains(t, prompt, `"query":"kucing"`)
				return "```json\n[\"kucing oranye\", 7, \"  anjing  \"]\n```", nil
			})

		got := ts.synth.SuggestSearches(ctx,
			map[string]string{"query": "kucing"},
			[]string{"q1", "q2", "q3", "q4", "q5", "q6"})
		assert.Equal(t, []string{"kucing oranye", "anjing"}, got)
	})

	t.Run("returned list is a copy", func(t *testing.T) {
		ts := setupTestSynthesizer(t)
		ts.unavailable()

		got := ts.synth.SuggestSearches(ctx, nil, nil)
		got[0] = "changed"
		assert.Equal(t, "Explore IP assets populer", synthesizer.DefaultSuggestions[0])
	})
}
