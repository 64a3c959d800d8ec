package server

import (
	"time"

	"atsmatch/internal/analyzer"
	"atsmatch/internal/config"
	atsErrors "atsmatch/internal/errors"
)

// ScoreRequest represents the request body for the score endpoint
type ScoreRequest struct {
	Resume         string `json:"resume"`
	JobDescription string `json:"jobDescription"`
}

// ExtractRequest represents the request body for the extract endpoint
type ExtractRequest struct {
	JobDescription string `json:"jobDescription"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// Server holds configuration for the HTTP server
type Server struct {
	Host    string
	Port    string
	Version string

	// Full application configuration
	AppConfig *config.Config

	// Scoring pipeline shared by all requests
	Analyzer *analyzer.Analyzer

	// TLS Configuration
	TLSConfig config.TLSConfig

	// API Authentication
	APIKeys map[string]bool

	// Timeout configurations
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration

	// Request size limit
	MaxRequestSize int64

	// Rate limiting
	RateLimit   *config.RateLimitConfig
	RateLimiter *RateLimiter

	// Logger
	Logger *atsErrors.Logger
}

// ServerConfig holds configuration for creating a Server instance
type ServerConfig struct {
	Host           string
	Port           string
	Version        string
	TLSConfig      config.TLSConfig
	APIKeys        []string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	IdleTimeout    time.Duration
	MaxRequestSize int64
	RateLimit      *config.RateLimitConfig
}

// NewServer creates a new Server instance from a ServerConfig struct
func NewServer(appCfg *config.Config, cfg ServerConfig, an *analyzer.Analyzer, logger *atsErrors.Logger) *Server {
	// Convert API keys slice to map for O(1) lookup
	apiKeyMap := make(map[string]bool)
	for _, key := range cfg.APIKeys {
		if key != "" {
			apiKeyMap[key] = true
		}
	}

	var rateLimiter *RateLimiter
	if cfg.RateLimit != nil && cfg.RateLimit.Enabled {
		rateLimiter = NewRateLimiter(
			cfg.RateLimit.RequestsPerMin,
			cfg.RateLimit.BurstCapacity,
			logger,
		)
	}

	return &Server{
		Host:           cfg.Host,
		Port:           cfg.Port,
		Version:        cfg.Version,
		AppConfig:      appCfg,
		Analyzer:       an,
		TLSConfig:      cfg.TLSConfig,
		APIKeys:        apiKeyMap,
		ReadTimeout:    cfg.ReadTimeout,
		WriteTimeout:   cfg.WriteTimeout,
		IdleTimeout:    cfg.IdleTimeout,
		MaxRequestSize: cfg.MaxRequestSize,
		RateLimit:      cfg.RateLimit,
		RateLimiter:    rateLimiter,
		Logger:         logger,
	}
}
