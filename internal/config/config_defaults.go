package config

import (
	"time"

	"github.com/spf13/viper"
)

// setDefaults sets the default configuration values
func setDefaults(v *viper.Viper) {
	// AI Configuration - Global defaults
	v.SetDefault("ai.provider", "gemini")
	v.SetDefault("ai.model", "gemini-2.0-flash")
	v.SetDefault("ai.timeout", 60*time.Second)
	v.SetDefault("ai.apiKey", "")
	v.SetDefault("ai.maxRetries", 3)
	v.SetDefault("ai.temperature", 0.7)

	// AI Configuration - Extract operation defaults
	v.SetDefault("ai.extract.provider", "gemini")
	v.SetDefault("ai.extract.model", "")
	v.SetDefault("ai.extract.timeout", 45*time.Second)
	v.SetDefault("ai.extract.apiKey", "")
	v.SetDefault("ai.extract.maxRetries", 3)
	v.SetDefault("ai.extract.temperature", 0.1) // Low temperature for deterministic extraction

	// AI Configuration - Suggest operation defaults
	v.SetDefault("ai.suggest.provider", "gemini")
	v.SetDefault("ai.suggest.model", "")
	v.SetDefault("ai.suggest.timeout", 60*time.Second)
	v.SetDefault("ai.suggest.apiKey", "")
	v.SetDefault("ai.suggest.maxRetries", 2)
	v.SetDefault("ai.suggest.temperature", 0.4) // Some variety in suggestions

	// AI Configuration - Embedding provider defaults
	v.SetDefault("ai.embedding.provider", "gemini")
	v.SetDefault("ai.embedding.model", "text-embedding-004")
	v.SetDefault("ai.embedding.timeout", 30*time.Second)
	v.SetDefault("ai.embedding.apiKey", "")
	v.SetDefault("ai.embedding.maxRetries", 3)

	// Circuit Breaker Configuration defaults for all operations
	v.SetDefault("ai.extract.circuitBreaker.enabled", true)
	v.SetDefault("ai.extract.circuitBreaker.maxRequests", 3)
	v.SetDefault("ai.extract.circuitBreaker.interval", 60*time.Second)
	v.SetDefault("ai.extract.circuitBreaker.timeout", 60*time.Second)
	v.SetDefault("ai.extract.circuitBreaker.minRequests", 3)
	v.SetDefault("ai.extract.circuitBreaker.failureThreshold", 0.6)

	v.SetDefault("ai.suggest.circuitBreaker.enabled", true)
	v.SetDefault("ai.suggest.circuitBreaker.maxRequests", 3)
	v.SetDefault("ai.suggest.circuitBreaker.interval", 60*time.Second)
	v.SetDefault("ai.suggest.circuitBreaker.timeout", 60*time.Second)
	v.SetDefault("ai.suggest.circuitBreaker.minRequests", 3)
	v.SetDefault("ai.suggest.circuitBreaker.failureThreshold", 0.6)

	v.SetDefault("ai.embedding.circuitBreaker.enabled", true)
	v.SetDefault("ai.embedding.circuitBreaker.maxRequests", 3)
	v.SetDefault("ai.embedding.circuitBreaker.interval", 60*time.Second)
	v.SetDefault("ai.embedding.circuitBreaker.timeout", 60*time.Second)
	v.SetDefault("ai.embedding.circuitBreaker.minRequests", 3)
	v.SetDefault("ai.embedding.circuitBreaker.failureThreshold", 0.6)

	// Engine Configuration - scoring weights
	v.SetDefault("engine.weights.skill", 0.50)
	v.SetDefault("engine.weights.semantic", 0.20)
	v.SetDefault("engine.weights.structure", 0.15)
	v.SetDefault("engine.weights.experience", 0.15)
	v.SetDefault("engine.suggestions", false)

	// Server Configuration
	v.SetDefault("server.host", "localhost")
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.readTimeout", 30*time.Second)
	v.SetDefault("server.writeTimeout", 30*time.Second)
	v.SetDefault("server.idleTimeout", 120*time.Second)
	// TLS Configuration defaults
	v.SetDefault("server.tls.mode", "disabled") // disabled, server
	v.SetDefault("server.tls.certFile", "")
	v.SetDefault("server.tls.keyFile", "")
	v.SetDefault("server.tls.minVersion", "1.2") // TLS 1.2 minimum
	// API Authentication defaults
	v.SetDefault("server.apiKeys", []string{})
	// Rate limiting defaults
	v.SetDefault("server.rateLimit.enabled", false)
	v.SetDefault("server.rateLimit.requestsPerMin", 60)
	v.SetDefault("server.rateLimit.burstCapacity", 10)
	v.SetDefault("server.rateLimit.byIP", true)
	v.SetDefault("server.rateLimit.byAPIKey", false)
	v.SetDefault("server.rateLimit.window", time.Minute)

	// App Configuration
	v.SetDefault("app.logLevel", "info")
	v.SetDefault("app.defaultFormat", "json")
	v.SetDefault("app.supportedFormats", []string{"json", "text", "markdown"})
	v.SetDefault("app.maxFileSize", 5*1024*1024) // 5MB, PDF resumes included

	// Vault Configuration
	v.SetDefault("vault.enabled", false)
	v.SetDefault("vault.address", "")
	v.SetDefault("vault.token", "")
	v.SetDefault("vault.tokenFile", "")
	v.SetDefault("vault.namespace", "")
	v.SetDefault("vault.secrets.apiKeys", "")
	v.SetDefault("vault.secrets.geminiKey", "")

	// Observability Configuration
	v.SetDefault("observability.enabled", true)
	v.SetDefault("observability.serviceName", "atsmatch")
	v.SetDefault("observability.serviceVersion", "")  // Will use app version if empty
	v.SetDefault("observability.serviceInstance", "") // Will be auto-generated if empty
	v.SetDefault("observability.consoleOutput", false)
	v.SetDefault("observability.sampleRate", 1.0)

	// Tracing Configuration
	v.SetDefault("observability.tracing.enabled", true)
	v.SetDefault("observability.tracing.sampleRate", 1.0)

	// Metrics Configuration
	v.SetDefault("observability.metrics.enabled", true)
	v.SetDefault("observability.metrics.collectionInterval", 15*time.Second)

	// Custom Metrics Configuration
	v.SetDefault("observability.customMetrics.aiOperations.enabled", true)
	v.SetDefault("observability.customMetrics.aiOperations.trackDuration", true)
	v.SetDefault("observability.customMetrics.aiOperations.trackTokenUsage", true)
	v.SetDefault("observability.customMetrics.businessMetrics.enabled", true)
	v.SetDefault("observability.customMetrics.businessMetrics.trackSuccessRates", true)
	v.SetDefault("observability.customMetrics.businessMetrics.trackScores", true)
	v.SetDefault("observability.customMetrics.infrastructure.enabled", true)
	v.SetDefault("observability.customMetrics.infrastructure.trackRateLimits", true)

	// Console Configuration
	v.SetDefault("observability.console.enabled", false)
	v.SetDefault("observability.console.prettyPrint", true)

	// Prometheus Configuration
	v.SetDefault("observability.prometheus.enabled", true)
	v.SetDefault("observability.prometheus.endpoint", "/metrics")
	v.SetDefault("observability.prometheus.port", "9090")

	// OTLP Configuration
	v.SetDefault("observability.otlp.enabled", false)
	v.SetDefault("observability.otlp.endpoint", "http://localhost:4318")
	v.SetDefault("observability.otlp.insecure", true)
	v.SetDefault("observability.otlp.headers", map[string]string{})

	// Health Check Configuration
	v.SetDefault("observability.healthCheck.timeout", 15*time.Second)
	v.SetDefault("observability.healthCheck.aiModelCheckTimeout", 10*time.Second)
}
