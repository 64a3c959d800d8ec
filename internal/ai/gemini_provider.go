package ai

import (
	"context"
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"math/big"
	"net"
	"net/http"
	"time"

	"atsmatch/internal/config"
	atsErrors "atsmatch/internal/errors"
	"atsmatch/internal/types"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"google.golang.org/api/googleapi"
	"google.golang.org/genai"
)

// maxPromptSectionLength caps the resume and JD text embedded in prompts so
// a long document cannot blow the model's context window.
const maxPromptSectionLength = 4000

// GeminiProvider implements AIProvider for Google Gemini
type GeminiProvider struct {
	client         *genai.Client
	httpClient     *http.Client
	config         *config.OperationAIConfig
	circuitBreaker *AICircuitBreaker
	modelBreaker   *ModelCircuitBreaker
	logger         *atsErrors.Logger
}

// Ensure GeminiProvider implements AIProvider
var _ AIProvider = (*GeminiProvider)(nil)

// NewGeminiProvider creates a new Gemini provider instance for a specific operation
func NewGeminiProvider(cfg *config.OperationAIConfig, operationType string, logger *atsErrors.Logger) (*GeminiProvider, error) {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: cfg.APIKey,
	})
	if err != nil {
		return nil, atsErrors.NewAIError(atsErrors.ErrCodeAIServiceFailed,
			"Failed to create Gemini client", err)
	}

	// Initialize circuit breaker with operation-specific configuration
	circuitBreaker := NewAICircuitBreaker(operationType, cfg, logger)
	modelBreaker := NewModelCircuitBreaker(operationType, cfg, logger)

	return &GeminiProvider{
		client: client,
		httpClient: &http.Client{
			Timeout: *cfg.Timeout,
		},
		config:         cfg,
		circuitBreaker: circuitBreaker,
		modelBreaker:   modelBreaker,
		logger:         logger,
	}, nil
}

// ModelInfo represents information about the AI model
type ModelInfo struct {
	Name        string `json:"name"`
	DisplayName string `json:"displayName,omitempty"`
	Version     string `json:"version,omitempty"`
	Available   bool   `json:"available"`
	Error       string `json:"error,omitempty"`
}

// GetModelInfo checks the readiness and availability of the configured model
func (g *GeminiProvider) GetModelInfo(ctx context.Context) *ModelInfo {
	modelInfo := &ModelInfo{
		Name:      g.config.Model,
		Available: false,
	}

	checkCtx, cancel := context.WithTimeout(ctx, modelCheckTimeout)
	defer cancel()

	model, err := g.modelBreaker.ExecuteModel(func() (*genai.Model, error) {
		return g.client.Models.Get(checkCtx, g.config.Model, &genai.GetModelConfig{})
	})
	if err != nil {
		modelInfo.Error = fmt.Sprintf("Failed to get model info: %v", err)

		g.logger.Warn("Model availability check failed",
			"model", g.config.Model,
			"provider", g.config.Provider,
			"error", err.Error())
		return modelInfo
	}

	modelInfo.Available = true
	if model.DisplayName != "" {
		modelInfo.DisplayName = model.DisplayName
	}
	if model.Version != "" {
		modelInfo.Version = model.Version
	}

	g.logger.Debug("Model availability check successful",
		"model", g.config.Model,
		"provider", g.config.Provider,
		"display_name", modelInfo.DisplayName,
		"version", modelInfo.Version)

	return modelInfo
}

const modelCheckTimeout = 10 * time.Second

// executeWithRetry executes an AI operation with retry logic and exponential backoff
func (g *GeminiProvider) executeWithRetry(ctx context.Context, operation string, fn func() (*genai.GenerateContentResponse, error)) (*genai.GenerateContentResponse, error) {
	var lastErr error

	for attempt := 0; attempt <= *g.config.MaxRetries; attempt++ {
		if attempt > 0 {
			g.logger.Warn("Retrying AI operation",
				"operation", operation,
				"attempt", attempt,
				"max_retries", *g.config.MaxRetries,
				"error", lastErr.Error())

			// Exponential backoff with jitter to prevent thundering herd
			baseDelay := time.Duration(math.Pow(2, float64(attempt-1))) * time.Second
			jitterMax := big.NewInt(int64(float64(baseDelay) * 0.1))
			jitterBig, _ := rand.Int(rand.Reader, jitterMax)
			jitter := time.Duration(jitterBig.Int64())
			// Cap maximum backoff at 30 seconds
			backoff := min(baseDelay+jitter, 30*time.Second)

			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		result, err := fn()
		if err == nil {
			if attempt > 0 {
				g.logger.Info("AI operation succeeded after retry",
					"operation", operation,
					"successful_attempt", attempt+1,
					"total_attempts", attempt+1)
			}
			return result, nil
		}

		lastErr = err

		// Don't retry on certain errors (auth, invalid input, etc.)
		if !g.isRetryableError(err) {
			g.logger.Debug("Error is not retryable, stopping retry attempts",
				"operation", operation,
				"error", err.Error())
			break
		}
	}

	g.logger.LogError(lastErr, "AI operation failed after all retry attempts",
		"operation", operation,
		"total_attempts", *g.config.MaxRetries+1)

	return nil, fmt.Errorf("operation '%s' failed after %d retries: %w", operation, *g.config.MaxRetries, lastErr)
}

// isRetryableError determines if an error should trigger a retry
func (g *GeminiProvider) isRetryableError(err error) bool {
	if err == nil {
		return false
	}

	// Network errors (timeouts, connection issues)
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}

	// Google API errors (HTTP status codes)
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case http.StatusTooManyRequests,
			http.StatusInternalServerError,
			http.StatusBadGateway,
			http.StatusServiceUnavailable,
			http.StatusGatewayTimeout:
			return true
		}
	}

	return false
}

// executeAIOperation is a generic helper to run AI operations with common tracing, circuit breaker, and parsing logic.
func executeAIOperation[Out any](
	g *GeminiProvider,
	ctx context.Context,
	operationName string,
	userPrompt string,
	systemPrompt string,
	genaiConfig *genai.GenerateContentConfig,
	spanAttributes ...attribute.KeyValue,
) (Out, *TokenUsage, error) {
	var output Out
	tracer := otel.Tracer("atsmatch.ai.gemini")
	ctx, span := tracer.Start(ctx, "gemini."+operationName)
	defer span.End()

	span.SetAttributes(
		attribute.String("ai.provider", "gemini"),
		attribute.String("ai.model", g.config.Model),
		attribute.Float64("ai.temperature", float64(*g.config.Temperature)),
	)
	span.SetAttributes(spanAttributes...)

	if systemPrompt != "" {
		genaiConfig.SystemInstruction = genai.NewContentFromText(systemPrompt, genai.RoleUser)
	}

	result, err := g.circuitBreaker.Execute(func() (*genai.GenerateContentResponse, error) {
		return g.executeWithRetry(ctx, operationName, func() (*genai.GenerateContentResponse, error) {
			return g.client.Models.GenerateContent(ctx, g.config.Model, genai.Text(userPrompt), genaiConfig)
		})
	})

	if err != nil {
		span.RecordError(err)
		span.SetAttributes(attribute.Bool("success", false))
		return output, nil, atsErrors.NewAIError(atsErrors.ErrCodeAIServiceFailed, "Failed to generate content for "+operationName, err)
	}

	if err := json.Unmarshal([]byte(result.Text()), &output); err != nil {
		span.RecordError(err)
		span.SetAttributes(attribute.Bool("success", false))
		return output, nil, atsErrors.NewAIError("AI_RESPONSE_PARSE_FAILED", "Failed to parse AI response for "+operationName, err)
	}

	tokenUsage := extractTokenUsage(result)
	if tokenUsage != nil {
		span.SetAttributes(
			attribute.Int64("ai.tokens.input", tokenUsage.InputTokens),
			attribute.Int64("ai.tokens.output", tokenUsage.OutputTokens),
			attribute.Int64("ai.tokens.total", tokenUsage.TotalTokens),
		)
	}

	span.SetAttributes(attribute.Bool("success", true))
	return output, tokenUsage, nil
}

type extractSkillsResponse struct {
	Skills []string `json:"skills"`
}

type suggestionsResponse struct {
	Suggestions []string `json:"suggestions"`
}

// ExtractSkills implements AIProvider for JD skill extraction. The returned
// skills are raw model output; callers canonicalize and dedupe them.
func (g *GeminiProvider) ExtractSkills(ctx context.Context, input types.ExtractSkillsInput) ([]string, *TokenUsage, error) {
	userPrompt := fmt.Sprintf(DefaultUserPrompts.ExtractSkills, truncateSection(input.JobDescription))
	cfg := g.buildExtractSchema()

	output, tokenUsage, err := executeAIOperation[extractSkillsResponse](
		g,
		ctx,
		"extract_skills",
		userPrompt,
		DefaultSystemPrompts.ExtractSkills,
		cfg,
		attribute.Int("input.job_length", len(input.JobDescription)),
	)

	if err != nil {
		return nil, nil, err
	}

	if span := trace.SpanFromContext(ctx); span.IsRecording() {
		span.SetAttributes(
			attribute.Int("output.skills_count", len(output.Skills)),
		)
	}

	return output.Skills, tokenUsage, nil
}

// SuggestImprovements implements AIProvider for resume improvement suggestions
func (g *GeminiProvider) SuggestImprovements(ctx context.Context, resumeText, jobDescription string) ([]string, *TokenUsage, error) {
	userPrompt := fmt.Sprintf(DefaultUserPrompts.SuggestImprovements,
		truncateSection(resumeText), truncateSection(jobDescription))
	cfg := g.buildSuggestSchema()

	output, tokenUsage, err := executeAIOperation[suggestionsResponse](
		g,
		ctx,
		"suggest_improvements",
		userPrompt,
		DefaultSystemPrompts.SuggestImprovements,
		cfg,
		attribute.Int("input.resume_length", len(resumeText)),
		attribute.Int("input.job_length", len(jobDescription)),
	)

	if err != nil {
		return nil, nil, err
	}

	if span := trace.SpanFromContext(ctx); span.IsRecording() {
		span.SetAttributes(
			attribute.Int("output.suggestions_count", len(output.Suggestions)),
		)
	}

	return output.Suggestions, tokenUsage, nil
}

// GetCircuitBreakerStats returns circuit breaker statistics
func (g *GeminiProvider) GetCircuitBreakerStats() map[string]any {
	stats := map[string]any{
		"ai_operations":    g.circuitBreaker.GetStats(),
		"model_operations": g.modelBreaker.GetModelStats(),
	}

	// Overall health - both breakers must be healthy
	aiHealthy := g.circuitBreaker.IsHealthy()
	modelHealthy := g.modelBreaker.IsModelHealthy()
	stats["overall_healthy"] = aiHealthy && modelHealthy

	return stats
}

// Close implements AIProvider interface
func (g *GeminiProvider) Close() error {
	// Gemini client doesn't have a Close method in current single-shot usage
	return nil
}

// buildExtractSchema creates the schema for skill extraction requests
func (g *GeminiProvider) buildExtractSchema() *genai.GenerateContentConfig {
	cfg := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"skills": {
					Type:  genai.TypeArray,
					Items: &genai.Schema{Type: genai.TypeString},
				},
			},
			Required: []string{"skills"},
		},
	}

	if *g.config.Temperature > 0 {
		cfg.Temperature = g.config.Temperature
	}

	return cfg
}

// buildSuggestSchema creates the schema for improvement suggestion requests
func (g *GeminiProvider) buildSuggestSchema() *genai.GenerateContentConfig {
	cfg := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"suggestions": {
					Type:  genai.TypeArray,
					Items: &genai.Schema{Type: genai.TypeString},
				},
			},
			Required: []string{"suggestions"},
		},
	}

	if *g.config.Temperature > 0 {
		cfg.Temperature = g.config.Temperature
	}

	return cfg
}

// truncateSection trims document text embedded in a prompt to the section cap
func truncateSection(s string) string {
	if len(s) > maxPromptSectionLength {
		return s[:maxPromptSectionLength]
	}
	return s
}

// TokenUsage represents token usage information from AI responses
type TokenUsage struct {
	InputTokens  int64
	OutputTokens int64
	TotalTokens  int64
}

// extractTokenUsage extracts token usage information from Gemini API response
func extractTokenUsage(result *genai.GenerateContentResponse) *TokenUsage {
	if result == nil || result.UsageMetadata == nil {
		return nil
	}

	usage := result.UsageMetadata
	return &TokenUsage{
		InputTokens:  int64(usage.PromptTokenCount),
		OutputTokens: int64(usage.CandidatesTokenCount),
		TotalTokens:  int64(usage.TotalTokenCount),
	}
}
