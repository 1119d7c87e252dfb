package interpreter_test

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ip-search-agent/internal/adapter"
	"github.com/feral-file/ip-search-agent/internal/domain"
	"github.com/feral-file/ip-search-agent/internal/interpreter"
	"github.com/feral-file/ip-search-agent/internal/llm"
	"github.com/feral-file/ip-search-agent/internal/logger"
	"github.com/feral-file/ip-search-agent/internal/metrics"
	"github.com/feral-file/ip-search-agent/internal/mocks"
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

func mediaType(mt domain.MediaType) *domain.MediaType { return &mt }
func license(l domain.License) *domain.License       { return &l }

func TestFallback(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected domain.ParsedQuery
	}{
		{
			name:  "image with open use license",
			input: "cari gambar anime lisensi bebas",
			expected: domain.ParsedQuery{
				Query:     "cari gambar anime lisensi bebas",
				MediaType: mediaType(domain.MediaTypeImage),
				License:   license(domain.LicenseOpenUse),
				Tags:      []string{"cari", "gambar", "anime", "lisensi", "bebas"},
				Intent:    "General IP asset search",
			},
		},
		{
			name:  "music",
			input: "Musik lofi",
			expected: domain.ParsedQuery{
				Query:     "Musik lofi",
				MediaType: mediaType(domain.MediaTypeAudio),
				Tags:      []string{"musik", "lofi"},
				Intent:    "General IP asset search",
			},
		},
		{
			name:  "image wins over video by rule order",
			input: "video and image",
			expected: domain.ParsedQuery{
				Query:     "video and image",
				MediaType: mediaType(domain.MediaTypeImage),
				Tags:      []string{"video", "image"},
				Intent:    "General IP asset search",
			},
		},
		{
			name:  "non-commercial matches commercial first",
			input: "artikel non-commercial",
			expected: domain.ParsedQuery{
				Query:     "artikel non-commercial",
				MediaType: mediaType(domain.MediaTypeText),
				License:   license(domain.LicenseCommercial),
				Tags:      []string{"artikel", "non-commercial"},
				Intent:    "General IP asset search",
			},
		},
		{
			name:  "tags capped at five",
			input: "alpha bravo charlie delta echoes foxtrot golfing",
			expected: domain.ParsedQuery{
				Query:  "alpha bravo charlie delta echoes foxtrot golfing",
				Tags:   []string{"alpha", "bravo", "charlie", "delta", "echoes"},
				Intent: "General IP asset search",
			},
		},
		{
			name:  "identifier",
			input: domain.EXAMPLE_IP_ID,
			expected: domain.ParsedQuery{
				Query:        domain.EXAMPLE_IP_ID,
				Tags:         []string{"0xb1d831271a68db5c18c8f0b69327446f7c8d0a42"},
				Intent:       "General IP asset search",
				IsIdentifier: true,
			},
		},
		{
			name:  "empty",
			input: "",
			expected: domain.ParsedQuery{
				Query:  "",
				Tags:   []string{},
				Intent: "General IP asset search",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, interpreter.Fallback(tt.input))
		})
	}
}

func TestFallback_Deterministic(t *testing.T) {
	input := "foto kucing komersial"
	assert.Equal(t, interpreter.Fallback(input), interpreter.Fallback(input))
}

func newTestInterpreter(t *testing.T) (*mocks.MockLLMClient, *metrics.Metrics, interpreter.Interpreter) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	client := mocks.NewMockLLMClient(ctrl)
	reg := prometheus.NewRegistry()
	m := metrics.New(reg, reg)
	return client, m, interpreter.New(client, adapter.NewJSON(), m)
}

func TestInterpreter_Parse_Unavailable(t *testing.T) {
	client, m, i := newTestInterpreter(t)
	client.EXPECT().Available().Return(false)

	got := i.Parse(context.Background(), "gambar kucing")

	assert.Equal(t, interpreter.Fallback("gambar kucing"), got)
	assert.Equal(t, float64(1), testutil.ToFloat64(m.LLMTotal.WithLabelValues("parse", metrics.OutcomeFallback)))
}

func TestInterpreter_Parse_LLMError(t *testing.T) {
	client, _, i := newTestInterpreter(t)
	client.EXPECT().Available().Return(true)
	client.EXPECT().Complete(gomock.Any(), gomock.Any(), gomock.Any()).Return("", errors.New("timeout"))

	assert.Equal(t, interpreter.Fallback("video kucing"), i.Parse(context.Background(), "video kucing"))
}

func TestInterpreter_Parse_InvalidReply(t *testing.T) {
	replies := []string{
		"Sorry, I cannot help with that.",
		`{"mediaType":"image"}`,
		`{"query":"   "}`,
		`{"query":"x","tags":"not-an-array"}`,
	}

	for _, reply := range replies {
		t.Run(reply, func(t *testing.T) {
			client, _, i := newTestInterpreter(t)
			client.EXPECT().Available().Return(true)
			client.EXPECT().Complete(gomock.Any(), gomock.Any(), gomock.Any()).Return(reply, nil)

			assert.Equal(t, interpreter.Fallback("lagu santai"), i.Parse(context.Background(), "lagu santai"))
		})
	}
}

func TestInterpreter_Parse_LLMReply(t *testing.T) {
	client, m, i := newTestInterpreter(t)
	client.EXPECT().Available().Return(true)
	client.EXPECT().
		Complete(gomock.Any(), gomock.Any(), llm.Options{
			System:      "You are an expert at parsing search queries for intellectual property assets. Always return valid JSON.",
			Temperature: 0.3,
		}).
		Return("```json\n{\"query\":\"kucing lucu\",\"mediaType\":\"Image\",\"license\":\"open use\",\"creator\":\"Budi\",\"tags\":[\"kucing\",\"lucu\",3],\"intent\":\"Funny cats\",\"isIdentifier\":false}\n```", nil)

	got := i.Parse(context.Background(), "gambar kucing lucu karya Budi, lisensi open use")

	require.NotNil(t, got.MediaType)
	require.NotNil(t, got.License)
	require.NotNil(t, got.Creator)
	assert.Equal(t, "kucing lucu", got.Query)
	assert.Equal(t, domain.MediaTypeImage, *got.MediaType)
	assert.Equal(t, domain.LicenseOpenUse, *got.License)
	assert.Equal(t, "Budi", *got.Creator)
	assert.Equal(t, []string{"kucing", "lucu"}, got.Tags)
	assert.Equal(t, "Funny cats", got.Intent)
	assert.False(t, got.IsIdentifier)
	assert.Equal(t, float64(1), testutil.ToFloat64(m.LLMTotal.WithLabelValues("parse", metrics.OutcomeOK)))
}

func TestInterpreter_Parse_UnknownEnumsDropped(t *testing.T) {
	client, _, i := newTestInterpreter(t)
	client.EXPECT().Available().Return(true)
	client.EXPECT().Complete(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(`{"query":"3d chair","mediaType":"3d","license":"cc0","creator":null,"tags":[],"intent":""}`, nil)

	got := i.Parse(context.Background(), "3d chair")

	assert.Nil(t, got.MediaType)
	assert.Nil(t, got.License)
	assert.Nil(t, got.Creator)
	assert.Equal(t, "General IP asset search", got.Intent)
}

func TestInterpreter_Parse_IdentifierFlagOrValidator(t *testing.T) {
	t.Run("model says false but input is an identifier", func(t *testing.T) {
		client, _, i := newTestInterpreter(t)
		client.EXPECT().Available().Return(true)
		client.EXPECT().Complete(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(`{"query":"`+domain.EXAMPLE_IP_ID+`","isIdentifier":false}`, nil)

		assert.True(t, i.Parse(context.Background(), domain.EXAMPLE_IP_ID).IsIdentifier)
	})

	t.Run("legacy isIPID flag", func(t *testing.T) {
		client, _, i := newTestInterpreter(t)
		client.EXPECT().Available().Return(true)
		client.EXPECT().Complete(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(`{"query":"ippy","isIPID":true}`, nil)

		assert.True(t, i.Parse(context.Background(), "find ippy "+domain.EXAMPLE_IP_ID).IsIdentifier)
	})
}
