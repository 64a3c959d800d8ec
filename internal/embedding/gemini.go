package embedding

import (
	"context"
	"fmt"
	"strings"

	"atsmatch/internal/config"
	atsErrors "atsmatch/internal/errors"

	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"google.golang.org/genai"
)

// GeminiProvider implements Provider using the Gemini embedding models
type GeminiProvider struct {
	client  *genai.Client
	config  *config.EmbeddingConfig
	breaker *gobreaker.CircuitBreaker[*genai.EmbedContentResponse]
	logger  *atsErrors.Logger
}

var _ Provider = (*GeminiProvider)(nil)

// NewGeminiProvider creates a Gemini-backed similarity provider
func NewGeminiProvider(cfg *config.EmbeddingConfig, logger *atsErrors.Logger) (*GeminiProvider, error) {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: cfg.APIKey,
	})
	if err != nil {
		return nil, atsErrors.NewAIError(atsErrors.ErrCodeEmbeddingFailed,
			"Failed to create Gemini embedding client", err)
	}

	return &GeminiProvider{
		client:  client,
		config:  cfg,
		breaker: newEmbeddingBreaker(cfg, logger),
		logger:  logger,
	}, nil
}

func newEmbeddingBreaker(cfg *config.EmbeddingConfig, logger *atsErrors.Logger) *gobreaker.CircuitBreaker[*genai.EmbedContentResponse] {
	if !cfg.CircuitBreaker.Enabled {
		return nil
	}

	settings := gobreaker.Settings{
		Name:        "AI-Embedding",
		MaxRequests: cfg.CircuitBreaker.MaxRequests,
		Interval:    cfg.CircuitBreaker.Interval,
		Timeout:     cfg.CircuitBreaker.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= cfg.CircuitBreaker.MinRequests &&
				failureRatio >= cfg.CircuitBreaker.FailureThreshold
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logger.Info("Circuit breaker state changed",
				"name", name,
				"from", from.String(),
				"to", to.String())
		},
	}

	return gobreaker.NewCircuitBreaker[*genai.EmbedContentResponse](settings)
}

// Similarity embeds both documents in one request and returns the cosine
// similarity on a 0-100 scale. Empty input on either side scores 0 without
// touching the API.
func (p *GeminiProvider) Similarity(ctx context.Context, resumeText, jobText string) (float64, error) {
	if strings.TrimSpace(resumeText) == "" || strings.TrimSpace(jobText) == "" {
		return 0, nil
	}

	tracer := otel.Tracer("atsmatch.embedding.gemini")
	ctx, span := tracer.Start(ctx, "gemini.embed_similarity")
	defer span.End()

	span.SetAttributes(
		attribute.String("ai.provider", "gemini"),
		attribute.String("ai.model", p.config.Model),
		attribute.Int("input.resume_length", len(resumeText)),
		attribute.Int("input.job_length", len(jobText)),
	)

	callCtx := ctx
	if p.config.Timeout != nil {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, *p.config.Timeout)
		defer cancel()
	}

	contents := []*genai.Content{
		genai.NewContentFromText(resumeText, genai.RoleUser),
		genai.NewContentFromText(jobText, genai.RoleUser),
	}

	embed := func() (*genai.EmbedContentResponse, error) {
		return p.client.Models.EmbedContent(callCtx, p.config.Model, contents, &genai.EmbedContentConfig{})
	}

	var result *genai.EmbedContentResponse
	var err error
	if p.breaker != nil {
		result, err = p.breaker.Execute(embed)
	} else {
		result, err = embed()
	}

	if err != nil {
		span.RecordError(err)
		span.SetAttributes(attribute.Bool("success", false))
		return 0, atsErrors.NewAIError(atsErrors.ErrCodeEmbeddingFailed,
			"Failed to embed documents", err)
	}

	if len(result.Embeddings) != 2 {
		err := fmt.Errorf("expected 2 embeddings, got %d", len(result.Embeddings))
		span.RecordError(err)
		span.SetAttributes(attribute.Bool("success", false))
		return 0, atsErrors.NewAIError(atsErrors.ErrCodeEmbeddingFailed,
			"Unexpected embedding response shape", err)
	}

	score := similarityScore(CosineSimilarity(result.Embeddings[0].Values, result.Embeddings[1].Values))

	span.SetAttributes(
		attribute.Bool("success", true),
		attribute.Float64("similarity.score", score),
	)

	return score, nil
}

// IsHealthy reports whether the embedding circuit breaker is closed
func (p *GeminiProvider) IsHealthy() bool {
	if p.breaker == nil {
		return true
	}
	return p.breaker.State() == gobreaker.StateClosed
}

// GetCircuitBreakerStats returns circuit breaker statistics
func (p *GeminiProvider) GetCircuitBreakerStats() map[string]any {
	if p.breaker == nil {
		return map[string]any{"enabled": false}
	}
	return map[string]any{
		"name":    p.breaker.Name(),
		"state":   p.breaker.State().String(),
		"counts":  p.breaker.Counts(),
		"enabled": true,
	}
}
