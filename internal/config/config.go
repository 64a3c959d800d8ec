package config

import (
	"fmt"
	"math"
	"strings"
	"time"

	"atsmatch/internal/engine"

	"github.com/spf13/viper"
)

// Config holds all application configuration
// API Key Precedence Order:
// 1. Vault (if configured) - Highest priority
// 2. Config File values
// 3. Environment Variables (ATSMATCH_AI_APIKEY, etc.)
// 4. Default values - Lowest priority
type Config struct {
	AI            AIConfig            `mapstructure:"ai"`
	Engine        EngineConfig        `mapstructure:"engine"`
	Server        ServerConfig        `mapstructure:"server"`
	App           AppConfig           `mapstructure:"app"`
	Vault         VaultConfig         `mapstructure:"vault"`
	Observability ObservabilityConfig `mapstructure:"observability"`

	// viper handle retained for config file watching in serve mode.
	// Nil for configs constructed directly in tests.
	viper *viper.Viper
}

// AIConfig holds AI service configuration
type AIConfig struct {
	// Global/fallback configuration shared by all operations
	Provider    string        `mapstructure:"provider"`
	Model       string        `mapstructure:"model"`
	Timeout     time.Duration `mapstructure:"timeout"`
	APIKey      string        `mapstructure:"apiKey"`
	MaxRetries  int           `mapstructure:"maxRetries"`
	Temperature float32       `mapstructure:"temperature"`

	// Operation-specific configurations
	Extract OperationAIConfig `mapstructure:"extract"`
	Suggest OperationAIConfig `mapstructure:"suggest"`

	// Embedding provider configuration for semantic similarity
	Embedding EmbeddingConfig `mapstructure:"embedding"`
}

// OperationAIConfig holds AI configuration for specific operations
type OperationAIConfig struct {
	Provider       string               `mapstructure:"provider"`
	Model          string               `mapstructure:"model"`
	Timeout        *time.Duration       `mapstructure:"timeout"`
	APIKey         string               `mapstructure:"apiKey"`
	MaxRetries     *int                 `mapstructure:"maxRetries"`
	Temperature    *float32             `mapstructure:"temperature"`
	CircuitBreaker CircuitBreakerConfig `mapstructure:"circuitBreaker"`
}

// EmbeddingConfig holds the embedding similarity provider configuration
type EmbeddingConfig struct {
	Provider       string               `mapstructure:"provider"`
	Model          string               `mapstructure:"model"`
	Timeout        *time.Duration       `mapstructure:"timeout"`
	APIKey         string               `mapstructure:"apiKey"`
	MaxRetries     *int                 `mapstructure:"maxRetries"`
	CircuitBreaker CircuitBreakerConfig `mapstructure:"circuitBreaker"`
}

// CircuitBreakerConfig represents circuit breaker configuration
type CircuitBreakerConfig struct {
	Enabled          bool          `mapstructure:"enabled"`          // Whether circuit breaker is enabled
	MaxRequests      uint32        `mapstructure:"maxRequests"`      // Max requests allowed when half-open
	Interval         time.Duration `mapstructure:"interval"`         // Interval to clear counts
	Timeout          time.Duration `mapstructure:"timeout"`          // Timeout for half-open to open
	MinRequests      uint32        `mapstructure:"minRequests"`      // Minimum requests before tripping
	FailureThreshold float64       `mapstructure:"failureThreshold"` // Failure ratio threshold (0.0-1.0)
}

// EngineConfig holds the scoring engine configuration. The weights are part
// of the scoring contract; the defaults here are the documented blend and any
// deviation changes what a score means.
type EngineConfig struct {
	Weights engine.Weights `mapstructure:"weights"`
	// Suggestions toggles the optional AI improvement suggestions attached
	// to score reports.
	Suggestions bool `mapstructure:"suggestions"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host         string        `mapstructure:"host"`
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"readTimeout"`
	WriteTimeout time.Duration `mapstructure:"writeTimeout"`
	IdleTimeout  time.Duration `mapstructure:"idleTimeout"`

	// TLS Configuration
	TLS TLSConfig `mapstructure:"tls"`

	// API Authentication
	APIKeys []string `mapstructure:"apiKeys"` // Valid API keys for authentication

	// Rate Limiting Configuration
	RateLimit RateLimitConfig `mapstructure:"rateLimit"`
}

// TLSConfig holds TLS configuration for the HTTP server
type TLSConfig struct {
	Mode       string `mapstructure:"mode"`       // TLS mode: "disabled", "server"
	CertFile   string `mapstructure:"certFile"`   // Server certificate file (PEM)
	KeyFile    string `mapstructure:"keyFile"`    // Server private key file (PEM)
	MinVersion string `mapstructure:"minVersion"` // Minimum TLS version: "1.2", "1.3"
}

// RateLimitConfig holds rate limiting configuration
type RateLimitConfig struct {
	Enabled        bool          `mapstructure:"enabled"`        // Enable/disable rate limiting
	RequestsPerMin int           `mapstructure:"requestsPerMin"` // Requests allowed per minute
	BurstCapacity  int           `mapstructure:"burstCapacity"`  // Burst capacity for token bucket
	ByIP           bool          `mapstructure:"byIP"`           // Enable per-IP rate limiting
	ByAPIKey       bool          `mapstructure:"byAPIKey"`       // Enable per-API-key rate limiting
	Window         time.Duration `mapstructure:"window"`         // Rate limiting window duration
}

// AppConfig holds general application configuration
type AppConfig struct {
	LogLevel         string   `mapstructure:"logLevel"`
	DefaultFormat    string   `mapstructure:"defaultFormat"`
	SupportedFormats []string `mapstructure:"supportedFormats"`
	MaxFileSize      int64    `mapstructure:"maxFileSize"`
}

// ObservabilityConfig holds observability configuration
type ObservabilityConfig struct {
	Enabled         bool                `mapstructure:"enabled"`
	ServiceName     string              `mapstructure:"serviceName"`
	ServiceVersion  string              `mapstructure:"serviceVersion"`
	ServiceInstance string              `mapstructure:"serviceInstance"`
	ConsoleOutput   bool                `mapstructure:"consoleOutput"`
	SampleRate      float64             `mapstructure:"sampleRate"`
	Tracing         TracingConfig       `mapstructure:"tracing"`
	Metrics         MetricsConfig       `mapstructure:"metrics"`
	CustomMetrics   CustomMetricsConfig `mapstructure:"customMetrics"`
	Console         ConsoleConfig       `mapstructure:"console"`
	Prometheus      PrometheusConfig    `mapstructure:"prometheus"`
	OTLP            OTLPConfig          `mapstructure:"otlp"`
	HealthCheck     HealthCheckConfig   `mapstructure:"healthCheck"`
}

// TracingConfig holds tracing configuration
type TracingConfig struct {
	Enabled    bool    `mapstructure:"enabled"`
	SampleRate float64 `mapstructure:"sampleRate"`
}

// MetricsConfig holds metrics configuration
type MetricsConfig struct {
	Enabled            bool          `mapstructure:"enabled"`
	CollectionInterval time.Duration `mapstructure:"collectionInterval"`
}

// ConsoleConfig holds console output configuration
type ConsoleConfig struct {
	Enabled     bool `mapstructure:"enabled"`
	PrettyPrint bool `mapstructure:"prettyPrint"`
}

// CustomMetricsConfig holds fine-grained custom metrics configuration
type CustomMetricsConfig struct {
	AIOperations    AIOperationsMetricsConfig   `mapstructure:"aiOperations"`
	BusinessMetrics BusinessMetricsConfig       `mapstructure:"businessMetrics"`
	Infrastructure  InfrastructureMetricsConfig `mapstructure:"infrastructure"`
}

// AIOperationsMetricsConfig holds AI operation metrics configuration
type AIOperationsMetricsConfig struct {
	Enabled         bool `mapstructure:"enabled"`
	TrackDuration   bool `mapstructure:"trackDuration"`
	TrackTokenUsage bool `mapstructure:"trackTokenUsage"`
}

// BusinessMetricsConfig holds business metrics configuration
type BusinessMetricsConfig struct {
	Enabled           bool `mapstructure:"enabled"`
	TrackSuccessRates bool `mapstructure:"trackSuccessRates"`
	TrackScores       bool `mapstructure:"trackScores"`
}

// InfrastructureMetricsConfig holds infrastructure metrics configuration
type InfrastructureMetricsConfig struct {
	Enabled         bool `mapstructure:"enabled"`
	TrackRateLimits bool `mapstructure:"trackRateLimits"`
}

// PrometheusConfig holds Prometheus configuration
type PrometheusConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Endpoint string `mapstructure:"endpoint"`
	Port     string `mapstructure:"port"`
}

// OTLPConfig holds OTLP exporter configuration
type OTLPConfig struct {
	Enabled  bool              `mapstructure:"enabled"`
	Endpoint string            `mapstructure:"endpoint"`
	Insecure bool              `mapstructure:"insecure"`
	Headers  map[string]string `mapstructure:"headers"`
}

// HealthCheckConfig holds health check configuration
type HealthCheckConfig struct {
	Timeout             time.Duration `mapstructure:"timeout"`
	AIModelCheckTimeout time.Duration `mapstructure:"aiModelCheckTimeout"`
}

// LoadConfig loads configuration from defaults, an optional config file, and
// environment variables, then applies fallbacks and validates the result.
func LoadConfig() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetEnvPrefix("ATSMATCH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("/etc/atsmatch/")
	v.AddConfigPath("$HOME/.atsmatch")
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	config.applyFallbacks()

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	config.viper = v
	return &config, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.AI.Timeout <= 0 {
		return fmt.Errorf("AI timeout must be positive")
	}

	if c.Server.Port == "" {
		return fmt.Errorf("server port is required")
	}

	validFormats := make(map[string]bool)
	for _, format := range c.App.SupportedFormats {
		validFormats[format] = true
	}
	if !validFormats[c.App.DefaultFormat] {
		return fmt.Errorf("invalid default format: %s", c.App.DefaultFormat)
	}

	if err := c.validateEngineConfig(); err != nil {
		return fmt.Errorf("engine configuration error: %w", err)
	}

	if err := c.ValidateTLSConfig(); err != nil {
		return fmt.Errorf("TLS configuration error: %w", err)
	}

	return nil
}

// validateEngineConfig checks the scoring weight configuration
func (c *Config) validateEngineConfig() error {
	w := c.Engine.Weights
	for name, value := range map[string]float64{
		"skill":      w.Skill,
		"semantic":   w.Semantic,
		"structure":  w.Structure,
		"experience": w.Experience,
	} {
		if value < 0 || value > 1 {
			return fmt.Errorf("weight %s must be in [0,1], got %v", name, value)
		}
	}

	// The blend only stays within [0,100] when the weights sum to 1.
	if sum := w.Sum(); math.Abs(sum-1.0) > 1e-9 {
		return fmt.Errorf("weights must sum to 1.0, got %v", sum)
	}

	return nil
}

// ValidateTLSConfig validates the TLS configuration
func (c *Config) ValidateTLSConfig() error {
	tls := c.Server.TLS

	switch tls.Mode {
	case "disabled":
		// No validation needed for disabled mode
	case "server":
		if tls.CertFile == "" || tls.KeyFile == "" {
			return fmt.Errorf("TLS certificate and key files are required for server mode")
		}
	default:
		return fmt.Errorf("invalid TLS mode: %s (must be 'disabled' or 'server')", tls.Mode)
	}

	switch tls.MinVersion {
	case "", "1.2", "1.3":
		// Valid versions (empty defaults to 1.2)
	default:
		return fmt.Errorf("invalid TLS minVersion: %s (must be '1.2' or '1.3')", tls.MinVersion)
	}

	return nil
}
