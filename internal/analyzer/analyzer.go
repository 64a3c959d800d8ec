// Package analyzer orchestrates a scoring run: text normalization, skill
// extraction with its fallback path, semantic similarity, matching, and the
// final score blend.
package analyzer

import (
	"context"
	"sync"

	"atsmatch/internal/ai"
	"atsmatch/internal/embedding"
	"atsmatch/internal/engine"
	"atsmatch/internal/errors"
	"atsmatch/internal/types"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

// SkillExtractor extracts raw skill candidates from a job description
type SkillExtractor interface {
	ExtractSkills(ctx context.Context, input types.ExtractSkillsInput) ([]string, *ai.TokenUsage, error)
}

// SuggestionProvider generates resume improvement suggestions
type SuggestionProvider interface {
	SuggestImprovements(ctx context.Context, resumeText, jobDescription string) ([]string, *ai.TokenUsage, error)
}

// Options configures an Analyzer. Extractor, Suggester, and Similarity may be
// nil: a nil Extractor means the heuristic fallback handles every run, a nil
// Similarity scores the semantic component as 0, and a nil Suggester disables
// suggestions regardless of the Suggestions flag.
type Options struct {
	Extractor   SkillExtractor
	Suggester   SuggestionProvider
	Similarity  embedding.Provider
	Weights     engine.Weights
	Suggestions bool
}

// Analyzer runs the end-to-end matching pipeline
type Analyzer struct {
	extractor  SkillExtractor
	suggester  SuggestionProvider
	similarity embedding.Provider
	logger     *errors.Logger

	mu          sync.RWMutex
	weights     engine.Weights
	suggestions bool
}

// New creates an Analyzer from the given options
func New(opts Options, logger *errors.Logger) *Analyzer {
	return &Analyzer{
		extractor:   opts.Extractor,
		suggester:   opts.Suggester,
		similarity:  opts.Similarity,
		logger:      logger,
		weights:     opts.Weights,
		suggestions: opts.Suggestions,
	}
}

// UpdateEngine swaps the scoring weights and suggestion flag. Used by config
// hot-reload; safe to call while scoring runs are in flight.
func (a *Analyzer) UpdateEngine(weights engine.Weights, suggestions bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.weights = weights
	a.suggestions = suggestions
}

func (a *Analyzer) engineConfig() (engine.Weights, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.weights, a.suggestions
}

// ScoreResume scores a resume against a job description and returns the full
// match report
func (a *Analyzer) ScoreResume(ctx context.Context, input types.ScoreResumeInput) (types.MatchReport, *ai.TokenUsage, error) {
	tracer := otel.Tracer("atsmatch.analyzer")
	ctx, span := tracer.Start(ctx, "analyzer.score_resume")
	defer span.End()

	resumeText := engine.Normalize(input.Resume)
	jdText := engine.Normalize(input.JobDescription)

	if resumeText == "" || jdText == "" {
		return types.MatchReport{}, nil, errors.NewValidationError(errors.ErrCodeInvalidRequest,
			"Resume and job description must both contain text", nil)
	}

	// Skill extraction sees the raw job description. Normalization is for
	// matching and similarity; the extractor does better with the original
	// layout intact.
	extraction, usage := a.extractSkills(ctx, input.JobDescription)
	if len(extraction.Skills) == 0 {
		return types.MatchReport{}, usage, errors.NewAIError(errors.ErrCodeExtractionFailed,
			"No skills could be extracted from the job description", nil)
	}

	semantic := a.semanticScore(ctx, resumeText, jdText)

	match := engine.MatchSkills(resumeText, extraction.Skills)

	weights, wantSuggestions := a.engineConfig()
	final, components := engine.FinalScore(weights, semantic, match.Matched, match.Missing, resumeText, jdText)

	report := types.MatchReport{
		FinalScore:      final,
		Verdict:         types.VerdictFor(final),
		Components:      components,
		ExtractedSkills: extraction.Skills,
		MatchedSkills:   match.Matched,
		MissingSkills:   match.Missing,
		SkillSource:     extraction.Source,
	}

	if wantSuggestions && a.suggester != nil {
		suggestions, suggestUsage, err := a.suggester.SuggestImprovements(ctx, resumeText, input.JobDescription)
		if err != nil {
			// Suggestions are an enrichment; a failed call never sinks the score.
			a.logger.Warn("Suggestion generation failed", "error", err.Error())
		} else {
			report.Suggestions = suggestions
			usage = addTokenUsage(usage, suggestUsage)
		}
	}

	span.SetAttributes(
		attribute.Float64("score.final", final),
		attribute.String("score.verdict", report.Verdict),
		attribute.String("skills.source", extraction.Source),
		attribute.Int("skills.matched", len(match.Matched)),
		attribute.Int("skills.missing", len(match.Missing)),
	)

	return report, usage, nil
}

// ExtractSkills extracts and canonicalizes skills from a job description
func (a *Analyzer) ExtractSkills(ctx context.Context, input types.ExtractSkillsInput) (types.ExtractSkillsOutput, *ai.TokenUsage, error) {
	tracer := otel.Tracer("atsmatch.analyzer")
	ctx, span := tracer.Start(ctx, "analyzer.extract_skills")
	defer span.End()

	if engine.Normalize(input.JobDescription) == "" {
		return types.ExtractSkillsOutput{}, nil, errors.NewValidationError(errors.ErrCodeInvalidRequest,
			"Job description must contain text", nil)
	}

	extraction, usage := a.extractSkills(ctx, input.JobDescription)
	if len(extraction.Skills) == 0 {
		return types.ExtractSkillsOutput{}, usage, errors.NewAIError(errors.ErrCodeExtractionFailed,
			"No skills could be extracted from the job description", nil)
	}

	span.SetAttributes(
		attribute.String("skills.source", extraction.Source),
		attribute.Int("skills.count", len(extraction.Skills)),
	)

	return extraction, usage, nil
}

// extractSkills tries the AI extractor first and falls back to the heuristic
// extractor when the AI path fails or yields nothing usable. Both paths end
// in the same canonicalization, so downstream code never sees raw output.
func (a *Analyzer) extractSkills(ctx context.Context, jobDescription string) (types.ExtractSkillsOutput, *ai.TokenUsage) {
	if a.extractor != nil {
		raw, usage, err := a.extractor.ExtractSkills(ctx, types.ExtractSkillsInput{JobDescription: jobDescription})
		if err == nil {
			if skills := engine.NewSkillSet(raw); len(skills) > 0 {
				return types.ExtractSkillsOutput{Skills: skills, Source: types.SkillSourceAI}, usage
			}
			a.logger.Warn("AI extractor returned no usable skills, using fallback")
		} else {
			a.logger.Warn("AI skill extraction failed, using fallback", "error", err.Error())
		}

		skills := engine.NewSkillSet(ai.FallbackExtractSkills(jobDescription))
		return types.ExtractSkillsOutput{Skills: skills, Source: types.SkillSourceFallback}, usage
	}

	skills := engine.NewSkillSet(ai.FallbackExtractSkills(jobDescription))
	return types.ExtractSkillsOutput{Skills: skills, Source: types.SkillSourceFallback}, nil
}

// semanticScore computes the similarity component. Provider errors degrade to
// a 0 score so a similarity outage reduces precision instead of failing runs.
func (a *Analyzer) semanticScore(ctx context.Context, resumeText, jdText string) float64 {
	if a.similarity == nil {
		return 0
	}

	score, err := a.similarity.Similarity(ctx, resumeText, jdText)
	if err != nil {
		a.logger.Warn("Semantic similarity failed, scoring component as 0", "error", err.Error())
		return 0
	}
	return score
}

func addTokenUsage(a, b *ai.TokenUsage) *ai.TokenUsage {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	return &ai.TokenUsage{
		InputTokens:  a.InputTokens + b.InputTokens,
		OutputTokens: a.OutputTokens + b.OutputTokens,
		TotalTokens:  a.TotalTokens + b.TotalTokens,
	}
}
