package cli

import (
	"fmt"

	"atsmatch/internal/ai"
	"atsmatch/internal/analyzer"
	"atsmatch/internal/config"
	"atsmatch/internal/embedding"
	"atsmatch/internal/errors"
)

// buildAnalyzer wires the AI extraction service, the suggestion service, and
// the embedding similarity provider into a scoring pipeline.
func buildAnalyzer(cfg *config.Config, logger *errors.Logger) (*analyzer.Analyzer, error) {
	extractConfig := cfg.GetExtractConfig()
	extractService, err := ai.NewService(&extractConfig, "extract", logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create extract service: %w", err)
	}

	// The suggester is always wired; the suggestions flag decides at runtime
	// whether score reports include it, and the flag can change on reload.
	suggestConfig := cfg.GetSuggestConfig()
	suggestService, err := ai.NewService(&suggestConfig, "suggest", logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create suggest service: %w", err)
	}

	embeddingConfig := cfg.GetEmbeddingConfig()
	similarity, err := embedding.NewGeminiProvider(&embeddingConfig, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create embedding provider: %w", err)
	}

	return analyzer.New(analyzer.Options{
		Extractor:   extractService.Provider,
		Suggester:   suggestService.Provider,
		Similarity:  similarity,
		Weights:     cfg.Engine.Weights,
		Suggestions: cfg.Engine.Suggestions,
	}, logger), nil
}
