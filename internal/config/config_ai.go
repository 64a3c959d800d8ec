package config

import (
	"os"
	"strings"
)

// applyOperationDefaults applies global defaults to operation-specific configuration
func (c *Config) applyOperationDefaults(opCfg *OperationAIConfig) {
	if opCfg.Provider == "" {
		opCfg.Provider = c.AI.Provider
	}
	if opCfg.Model == "" {
		opCfg.Model = c.AI.Model
	}
	if opCfg.Timeout == nil {
		opCfg.Timeout = &c.AI.Timeout
	}
	if opCfg.APIKey == "" {
		opCfg.APIKey = c.AI.APIKey
	}
	if opCfg.MaxRetries == nil {
		opCfg.MaxRetries = &c.AI.MaxRetries
	}
	if opCfg.Temperature == nil {
		opCfg.Temperature = &c.AI.Temperature
	}
}

// GetExtractConfig returns the AI configuration for skill extraction with fallback to global config
func (c *Config) GetExtractConfig() OperationAIConfig {
	config := c.AI.Extract
	c.applyOperationDefaults(&config)
	return config
}

// GetSuggestConfig returns the AI configuration for improvement suggestions with fallback to global config
func (c *Config) GetSuggestConfig() OperationAIConfig {
	config := c.AI.Suggest
	c.applyOperationDefaults(&config)
	return config
}

// GetEmbeddingConfig returns the embedding provider configuration with fallback to global config
func (c *Config) GetEmbeddingConfig() EmbeddingConfig {
	config := c.AI.Embedding
	if config.Provider == "" {
		config.Provider = c.AI.Provider
	}
	if config.Timeout == nil {
		config.Timeout = &c.AI.Timeout
	}
	if config.APIKey == "" {
		config.APIKey = c.AI.APIKey
	}
	if config.MaxRetries == nil {
		config.MaxRetries = &c.AI.MaxRetries
	}
	return config
}

// applyFallbacks applies environment variable fallbacks
func (c *Config) applyFallbacks() {
	c.applyAPIKeyFallback()
	c.applyServerAPIKeyFallbacks()
	c.applyObservabilityDefaults()
}

// applyAPIKeyFallback supports the conventional GEMINI_API_KEY variable
func (c *Config) applyAPIKeyFallback() {
	if c.AI.APIKey == "" {
		c.AI.APIKey = os.Getenv("GEMINI_API_KEY")
	}
}

// applyServerAPIKeyFallbacks applies API key fallbacks from environment variables
func (c *Config) applyServerAPIKeyFallbacks() {
	if len(c.Server.APIKeys) == 0 {
		if apiKeysEnv := os.Getenv("ATSMATCH_SERVER_APIKEYS"); apiKeysEnv != "" {
			c.Server.APIKeys = strings.Split(apiKeysEnv, ",")
			for i, key := range c.Server.APIKeys {
				c.Server.APIKeys[i] = strings.TrimSpace(key)
			}
		}
	}
}

// applyObservabilityDefaults applies default observability configuration values
func (c *Config) applyObservabilityDefaults() {
	if c.Observability.ServiceInstance == "" {
		c.Observability.ServiceInstance = generateServiceInstanceID(c.Observability.ServiceName)
	}
}

// generateServiceInstanceID generates a unique service instance ID
func generateServiceInstanceID(serviceName string) string {
	if hostname, err := os.Hostname(); err == nil {
		return serviceName + "-" + hostname
	}
	return serviceName + "-1"
}
