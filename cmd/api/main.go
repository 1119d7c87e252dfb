package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/feral-file/ip-search-agent/internal/adapter"
	"github.com/feral-file/ip-search-agent/internal/api/server"
	"github.com/feral-file/ip-search-agent/internal/config"
	"github.com/feral-file/ip-search-agent/internal/history"
	"github.com/feral-file/ip-search-agent/internal/interpreter"
	"github.com/feral-file/ip-search-agent/internal/llm"
	"github.com/feral-file/ip-search-agent/internal/logger"
	"github.com/feral-file/ip-search-agent/internal/metadata"
	"github.com/feral-file/ip-search-agent/internal/metrics"
	"github.com/feral-file/ip-search-agent/internal/providers/story"
	"github.com/feral-file/ip-search-agent/internal/ratelimit"
	"github.com/feral-file/ip-search-agent/internal/search"
	"github.com/feral-file/ip-search-agent/internal/synthesizer"
	"github.com/feral-file/ip-search-agent/internal/uri"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadAPIConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "ip-search-agent",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting Smart IP Search Agent")

	// Initialize adapters
	jsonAdapter := adapter.NewJSON()
	clock := adapter.NewClock()
	base64 := adapter.NewBase64()
	jcs := adapter.NewJCS()
	m := metrics.New(prometheus.DefaultRegisterer, prometheus.DefaultGatherer)

	// Outbound rate limits
	rateLimitProxy := ratelimit.NewProxy(map[string]config.RateLimitConfig{
		ratelimit.PROVIDER_STORY: cfg.RateLimit.Story,
		ratelimit.PROVIDER_LLM:   cfg.RateLimit.LLM,
	})
	defer func() {
		_ = rateLimitProxy.Close()
	}()

	// Story Protocol registry
	storyClient := story.NewClient(story.Config{
		APIURL:  cfg.Story.APIURL,
		APIKey:  cfg.Story.APIKey,
		Timeout: cfg.Story.Timeout,
	}, ratelimit.NewHTTPClient(rateLimitProxy, ratelimit.PROVIDER_STORY, adapter.NewHTTPClient(cfg.Story.Timeout)), jsonAdapter, clock, m)
	if cfg.Story.APIKey == "" {
		logger.WarnCtx(ctx, "Story API key not configured, registry requests may be rejected")
	}
	logger.InfoCtx(ctx, "Configured Story Protocol registry", zap.String("api_url", cfg.Story.APIURL))

	// Language model
	var llmClient llm.Client
	if cfg.LLM.Enabled && cfg.LLM.APIKey != "" {
		llmClient = llm.NewOpenAIClient(llm.Config{
			Enabled: cfg.LLM.Enabled,
			BaseURL: cfg.LLM.BaseURL,
			APIKey:  cfg.LLM.APIKey,
			Model:   cfg.LLM.Model,
			Timeout: cfg.LLM.Timeout,
		}, ratelimit.NewHTTPClient(rateLimitProxy, ratelimit.PROVIDER_LLM, adapter.NewHTTPClient(cfg.LLM.Timeout)), jsonAdapter)
		logger.InfoCtx(ctx, "Configured language model", zap.String("model", cfg.LLM.Model))
	} else {
		llmClient = llm.NewDisabled()
		logger.WarnCtx(ctx, "Language model not configured, using rule-based interpretation and fixed summaries")
	}

	// Metadata
	uriResolver, err := uri.NewResolver(&uri.Config{
		IPFSGateways:    cfg.URI.IPFSGateways,
		ArweaveGateways: cfg.URI.ArweaveGateways,
	})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to create URI resolver", zap.Error(err))
	}
	fetcher := metadata.NewFetcher(
		adapter.NewHTTPClient(cfg.Metadata.FetchTimeout),
		uriResolver,
		jsonAdapter,
		base64,
		cfg.Metadata.FetchTimeout,
		m,
	)
	aggregator := metadata.NewAggregator(fetcher, uriResolver, jsonAdapter, jcs, clock)

	// Search agent
	agent := search.NewAgent(search.Config{
		ExplorerURL:  cfg.Story.ExplorerURL,
		BatchWorkers: cfg.Batch.MaxWorkers,
		MaxBatchIDs:  cfg.Batch.MaxIDs,
	},
		interpreter.New(llmClient, jsonAdapter, m),
		storyClient,
		aggregator,
		synthesizer.New(llmClient, jsonAdapter, cfg.Story.ExplorerURL, m),
		clock,
		m,
	)
	defer agent.Close()

	// Search history
	var historyStore history.Store
	switch cfg.History.Backend {
	case config.HISTORY_BACKEND_REDIS:
		redisClient := adapter.NewRedisClient(cfg.History.Redis.Addr, cfg.History.Redis.Password, cfg.History.Redis.DB)
		defer func() {
			if err := redisClient.Close(); err != nil {
				logger.ErrorCtx(context.Background(), err, zap.String("component", "redis"))
			}
		}()

		pingCtx, pingCancel := context.WithTimeout(ctx, 5*time.Second)
		err := redisClient.Ping(pingCtx)
		pingCancel()
		if err != nil {
			logger.FatalCtx(ctx, "Failed to connect to Redis", zap.Error(err), zap.String("addr", cfg.History.Redis.Addr))
		}

		historyStore = history.NewRedisStore(redisClient, jsonAdapter, clock, cfg.History.Redis.Key, cfg.History.Capacity)
		logger.InfoCtx(ctx, "Using Redis search history", zap.String("addr", cfg.History.Redis.Addr))
	default:
		historyStore = history.NewMemoryStore(cfg.History.Capacity, clock)
		logger.InfoCtx(ctx, "Using in-memory search history", zap.Int("capacity", cfg.History.Capacity))
	}

	// Create server config
	serverConfig := server.Config{
		Debug:          cfg.Debug,
		Host:           cfg.Server.Host,
		Port:           cfg.Server.Port,
		ReadTimeout:    time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout:   time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:    time.Duration(cfg.Server.IdleTimeout) * time.Second,
		MetricsEnabled: cfg.Metrics.Enabled,
		MetricsPath:    cfg.Metrics.Path,
	}

	// Create and start server
	srv := server.New(serverConfig, agent, historyStore, jsonAdapter, clock, m)

	// Start server in a goroutine
	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil {
			errCh <- err
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
		cancel()
	case err := <-errCh:
		logger.ErrorCtx(ctx, err, zap.String("component", "server"))
		cancel()
	}

	// Create shutdown context with timeout (don't use canceled ctx)
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	logger.InfoCtx(shutdownCtx, "Shutting down server...")

	// Shutdown server
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.ErrorCtx(shutdownCtx, fmt.Errorf("server forced to shutdown: %w", err))
	}

	// Use non-context logger for final message since original ctx is canceled
	logger.Info("API server stopped")
}
