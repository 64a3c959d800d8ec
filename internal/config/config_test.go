package config

import (
	"testing"
	"time"

	"atsmatch/internal/engine"

	"github.com/spf13/viper"
)

func validConfig() *Config {
	return &Config{
		AI: AIConfig{
			Provider: "gemini",
			Model:    "gemini-2.0-flash",
			Timeout:  60 * time.Second,
		},
		Engine: EngineConfig{
			Weights: engine.DefaultWeights,
		},
		Server: ServerConfig{
			Host: "localhost",
			Port: "8080",
			TLS:  TLSConfig{Mode: "disabled"},
		},
		App: AppConfig{
			LogLevel:         "info",
			DefaultFormat:    "json",
			SupportedFormats: []string{"json", "text", "markdown"},
			MaxFileSize:      1024,
		},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:   "valid defaults",
			mutate: func(c *Config) {},
		},
		{
			name:    "zero AI timeout",
			mutate:  func(c *Config) { c.AI.Timeout = 0 },
			wantErr: true,
		},
		{
			name:    "missing server port",
			mutate:  func(c *Config) { c.Server.Port = "" },
			wantErr: true,
		},
		{
			name:    "unsupported default format",
			mutate:  func(c *Config) { c.App.DefaultFormat = "xml" },
			wantErr: true,
		},
		{
			name:    "weights do not sum to one",
			mutate:  func(c *Config) { c.Engine.Weights.Skill = 0.9 },
			wantErr: true,
		},
		{
			name:    "negative weight",
			mutate:  func(c *Config) { c.Engine.Weights.Skill = -0.2; c.Engine.Weights.Skill = 0.9 },
			wantErr: true,
		},
		{
			name: "rebalanced weights still sum to one",
			mutate: func(c *Config) {
				c.Engine.Weights = engine.Weights{Skill: 0.4, Semantic: 0.3, Structure: 0.2, Experience: 0.1}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateTLSConfig(t *testing.T) {
	tests := []struct {
		name    string
		tls     TLSConfig
		wantErr bool
	}{
		{
			name: "disabled mode",
			tls:  TLSConfig{Mode: "disabled"},
		},
		{
			name: "server mode with cert and key",
			tls:  TLSConfig{Mode: "server", CertFile: "server.crt", KeyFile: "server.key", MinVersion: "1.2"},
		},
		{
			name:    "server mode without key",
			tls:     TLSConfig{Mode: "server", CertFile: "server.crt"},
			wantErr: true,
		},
		{
			name:    "unknown mode",
			tls:     TLSConfig{Mode: "mutual"},
			wantErr: true,
		},
		{
			name:    "bad min version",
			tls:     TLSConfig{Mode: "disabled", MinVersion: "1.0"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			cfg.Server.TLS = tt.tls
			err := cfg.ValidateTLSConfig()
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateTLSConfig() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestDefaultWeightsAreValid(t *testing.T) {
	v := viper.New()
	setDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	cfg.applyFallbacks()

	if err := cfg.Validate(); err != nil {
		t.Fatalf("default configuration is invalid: %v", err)
	}

	want := engine.DefaultWeights
	if cfg.Engine.Weights != want {
		t.Errorf("default weights = %+v, want %+v", cfg.Engine.Weights, want)
	}
}

func TestGetExtractConfigFallbacks(t *testing.T) {
	cfg := validConfig()
	cfg.AI.APIKey = "global-key"
	cfg.AI.MaxRetries = 4
	cfg.AI.Temperature = 0.7
	cfg.AI.Extract.Model = "gemini-2.5-pro"

	op := cfg.GetExtractConfig()

	if op.Provider != "gemini" {
		t.Errorf("Provider = %q, want fallback %q", op.Provider, "gemini")
	}
	if op.Model != "gemini-2.5-pro" {
		t.Errorf("Model = %q, want operation override %q", op.Model, "gemini-2.5-pro")
	}
	if op.APIKey != "global-key" {
		t.Errorf("APIKey = %q, want fallback %q", op.APIKey, "global-key")
	}
	if op.Timeout == nil || *op.Timeout != 60*time.Second {
		t.Errorf("Timeout = %v, want fallback 60s", op.Timeout)
	}
	if op.MaxRetries == nil || *op.MaxRetries != 4 {
		t.Errorf("MaxRetries = %v, want fallback 4", op.MaxRetries)
	}
}

func TestGetEmbeddingConfigFallbacks(t *testing.T) {
	cfg := validConfig()
	cfg.AI.APIKey = "global-key"
	cfg.AI.Embedding.Model = "text-embedding-004"

	emb := cfg.GetEmbeddingConfig()

	if emb.Provider != "gemini" {
		t.Errorf("Provider = %q, want fallback %q", emb.Provider, "gemini")
	}
	if emb.APIKey != "global-key" {
		t.Errorf("APIKey = %q, want fallback %q", emb.APIKey, "global-key")
	}
	if emb.Model != "text-embedding-004" {
		t.Errorf("Model = %q, want %q", emb.Model, "text-embedding-004")
	}
}
