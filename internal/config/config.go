package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/feral-file/ip-search-agent/internal/domain"
)

// History backends
const (
	HISTORY_BACKEND_MEMORY = "memory"
	HISTORY_BACKEND_REDIS  = "redis"
)

// BaseConfig holds base configuration
type BaseConfig struct {
	Debug     bool   `mapstructure:"debug"`
	SentryDSN string `mapstructure:"sentry_dsn"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	ReadTimeout  int    `mapstructure:"read_timeout"`  // in seconds
	WriteTimeout int    `mapstructure:"write_timeout"` // in seconds
	IdleTimeout  int    `mapstructure:"idle_timeout"`  // in seconds
}

// StoryConfig holds Story Protocol registry configuration
type StoryConfig struct {
	APIURL      string        `mapstructure:"api_url"`
	APIKey      string        `mapstructure:"api_key"`
	ExplorerURL string        `mapstructure:"explorer_url"`
	Timeout     time.Duration `mapstructure:"timeout"`
}

// LLMConfig holds language model configuration.
// The model is only used when enabled and an API key is set.
type LLMConfig struct {
	Enabled bool          `mapstructure:"enabled"`
	BaseURL string        `mapstructure:"base_url"`
	APIKey  string        `mapstructure:"api_key"`
	Model   string        `mapstructure:"model"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// URIConfig holds URI resolver configuration
type URIConfig struct {
	IPFSGateways    []string `mapstructure:"ipfs_gateways"`
	ArweaveGateways []string `mapstructure:"arweave_gateways"`
}

// MetadataConfig holds metadata fetching configuration
type MetadataConfig struct {
	FetchTimeout time.Duration `mapstructure:"fetch_timeout"`
}

// RedisConfig holds Redis connection configuration
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	Key      string `mapstructure:"key"`
}

// HistoryConfig holds search history configuration
type HistoryConfig struct {
	Backend  string      `mapstructure:"backend"` // memory or redis
	Capacity int         `mapstructure:"capacity"`
	Redis    RedisConfig `mapstructure:"redis"`
}

// BatchConfig holds batch lookup configuration
type BatchConfig struct {
	MaxWorkers int `mapstructure:"max_workers"`
	MaxIDs     int `mapstructure:"max_ids"`
}

// MetricsConfig holds Prometheus configuration
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}

// RateLimitConfig holds the outbound rate limit of one provider.
// A non-positive RequestsPerSecond disables the limit.
type RateLimitConfig struct {
	RequestsPerSecond float64       `mapstructure:"requests_per_second"`
	Burst             int           `mapstructure:"burst"`
	MaxQueueTime      time.Duration `mapstructure:"max_queue_time"`
}

// RateLimitsConfig holds the outbound rate limits per provider
type RateLimitsConfig struct {
	Story RateLimitConfig `mapstructure:"story"`
	LLM   RateLimitConfig `mapstructure:"llm"`
}

// APIConfig holds configuration for the api service
type APIConfig struct {
	BaseConfig `mapstructure:",squash"`
	Server     ServerConfig     `mapstructure:"server"`
	Story      StoryConfig      `mapstructure:"story"`
	LLM        LLMConfig        `mapstructure:"llm"`
	URI        URIConfig        `mapstructure:"uri"`
	Metadata   MetadataConfig   `mapstructure:"metadata"`
	History    HistoryConfig    `mapstructure:"history"`
	Batch      BatchConfig      `mapstructure:"batch"`
	Metrics    MetricsConfig    `mapstructure:"metrics"`
	RateLimit  RateLimitsConfig `mapstructure:"rate_limit"`
}

// LoadAPIConfig loads configuration for the api service
func LoadAPIConfig(configFile string, envPath string) (*APIConfig, error) {
	v := configureViper("api", configFile, envPath)

	// Set defaults
	v.SetDefault("debug", false)
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 3000)
	v.SetDefault("server.read_timeout", 10)
	v.SetDefault("server.write_timeout", 60)
	v.SetDefault("server.idle_timeout", 120)
	v.SetDefault("story.api_url", domain.DEFAULT_STORY_API_URL)
	v.SetDefault("story.explorer_url", domain.DEFAULT_STORY_EXPLORER_URL)
	v.SetDefault("story.timeout", 10*time.Second)
	v.SetDefault("llm.enabled", true)
	v.SetDefault("llm.base_url", "https://api.openai.com/v1")
	v.SetDefault("llm.model", "gpt-3.5-turbo")
	v.SetDefault("llm.timeout", 30*time.Second)
	v.SetDefault("uri.ipfs_gateways", []string{domain.DEFAULT_IPFS_GATEWAY})
	v.SetDefault("uri.arweave_gateways", []string{domain.DEFAULT_ARWEAVE_GATEWAY})
	v.SetDefault("metadata.fetch_timeout", 10*time.Second)
	v.SetDefault("history.backend", HISTORY_BACKEND_MEMORY)
	v.SetDefault("history.capacity", 100)
	v.SetDefault("history.redis.addr", "localhost:6379")
	v.SetDefault("history.redis.db", 0)
	v.SetDefault("history.redis.key", "ip-search:history")
	v.SetDefault("batch.max_workers", 5)
	v.SetDefault("batch.max_ids", 20)
	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.path", "/metrics")
	v.SetDefault("rate_limit.story.requests_per_second", 10)
	v.SetDefault("rate_limit.story.burst", 10)
	v.SetDefault("rate_limit.story.max_queue_time", 5*time.Second)
	v.SetDefault("rate_limit.llm.requests_per_second", 3)
	v.SetDefault("rate_limit.llm.burst", 5)
	v.SetDefault("rate_limit.llm.max_queue_time", 10*time.Second)

	if err := v.ReadInConfig(); err != nil {
		var error viper.ConfigFileNotFoundError
		if errors.As(err, &error) {
			// Config file not found, use environment variables
		} else {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config APIConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

// Validate checks the settings that have no usable fallback
func (c *APIConfig) Validate() error {
	switch c.History.Backend {
	case HISTORY_BACKEND_MEMORY, HISTORY_BACKEND_REDIS:
	default:
		return fmt.Errorf("unsupported history backend: %q", c.History.Backend)
	}

	if c.History.Capacity < 1 {
		return fmt.Errorf("history capacity must be positive, got %d", c.History.Capacity)
	}

	if c.Batch.MaxWorkers < 1 {
		return fmt.Errorf("batch max_workers must be positive, got %d", c.Batch.MaxWorkers)
	}

	if c.Batch.MaxIDs < 1 {
		return fmt.Errorf("batch max_ids must be positive, got %d", c.Batch.MaxIDs)
	}

	if strings.TrimSpace(c.Story.APIURL) == "" {
		return errors.New("story api_url is required")
	}

	return nil
}

func configureViper(service string, configFile string, envPath string) *viper.Viper {
	v := viper.New()

	// Load environment variables
	loadEnv(envPath, service)

	// Set config file
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		// Search for config.yaml in multiple locations:
		// 1. Current directory
		v.AddConfigPath(".")
		// 2. Service-specific directory (e.g., cmd/api/)
		v.AddConfigPath(fmt.Sprintf("cmd/%s/", service))
		// 3. Config directory
		v.AddConfigPath("config/")
	}

	// Set environment variables
	v.SetEnvPrefix("IP_SEARCH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Explicitly bind all environment variables
	bindAllEnvVars(v)
	return v
}

// bindAllEnvVars explicitly binds all possible environment variables
// This is required for viper to map env vars to config struct fields when no config file exists
func bindAllEnvVars(v *viper.Viper) {
	keys := []string{
		"debug",
		"sentry_dsn",
		// Server
		"server.host",
		"server.port",
		"server.read_timeout",
		"server.write_timeout",
		"server.idle_timeout",
		// Story
		"story.api_url",
		"story.api_key",
		"story.explorer_url",
		"story.timeout",
		// LLM
		"llm.enabled",
		"llm.base_url",
		"llm.api_key",
		"llm.model",
		"llm.timeout",
		// URI
		"uri.ipfs_gateways",
		"uri.arweave_gateways",
		// Metadata
		"metadata.fetch_timeout",
		// History
		"history.backend",
		"history.capacity",
		"history.redis.addr",
		"history.redis.password",
		"history.redis.db",
		"history.redis.key",
		// Batch
		"batch.max_workers",
		"batch.max_ids",
		// Metrics
		"metrics.enabled",
		"metrics.path",
		// Rate limits
		"rate_limit.story.requests_per_second",
		"rate_limit.story.burst",
		"rate_limit.story.max_queue_time",
		"rate_limit.llm.requests_per_second",
		"rate_limit.llm.burst",
		"rate_limit.llm.max_queue_time",
	}

	for _, key := range keys {
		_ = v.BindEnv(key)
	}
}

// loadEnv loads environment variables from the config directory
func loadEnv(envPath string, service string) {
	// Always try shared base first, then local, then optional per-service local.
	envFiles := []string{".env", ".env.local"}
	if service != "" {
		envFiles = append(envFiles, ".env."+service+".local")
	}

	// Default to config directory
	if envPath == "" {
		envPath = "config/"
	}

	// Create candidates list
	for _, envFile := range envFiles {
		candidate := filepath.Join(envPath, envFile)
		_ = godotenv.Overload(candidate) // Overload lets later files override earlier ones
	}
}

// ChdirRepoRoot changes the current working directory to the repository root
func ChdirRepoRoot() {
	cwd, _ := os.Getwd()
	for range 5 {
		if _, err := os.Stat(filepath.Join(cwd, "config")); err == nil {
			_ = os.Chdir(cwd)
			return
		}
		cwd = filepath.Dir(cwd)
	}
}
