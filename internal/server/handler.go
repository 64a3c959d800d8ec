package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"atsmatch/internal/observability"
	"atsmatch/internal/types"

	"go.opentelemetry.io/otel/attribute"
)

// createScoreHandler wraps the score handler with observability
func (s *Server) createScoreHandler(om *observability.ObservabilityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		tracer := om.Tracer("atsmatch.api")
		ctx, span := tracer.Start(ctx, "api.score")
		defer span.End()

		var req ScoreRequest
		if err := parseJSONRequest(r, &req); err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Invalid request body", err.Error(), http.StatusBadRequest)
			return
		}

		if strings.TrimSpace(req.Resume) == "" {
			err := fmt.Errorf("missing resume")
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Missing resume", "resume field is required", http.StatusBadRequest)
			return
		}
		if strings.TrimSpace(req.JobDescription) == "" {
			err := fmt.Errorf("missing job description")
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Missing job description", "jobDescription field is required", http.StatusBadRequest)
			return
		}

		// Size validation
		if len(req.Resume) > int(s.MaxRequestSize/2) {
			err := fmt.Errorf("resume too large: %d chars", len(req.Resume))
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Resume too large", fmt.Sprintf("resume exceeds recommended size limit of %d characters", s.MaxRequestSize/2), http.StatusBadRequest)
			return
		}
		if len(req.JobDescription) > int(s.MaxRequestSize/2) {
			err := fmt.Errorf("job description too large: %d chars", len(req.JobDescription))
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Job description too large", fmt.Sprintf("jobDescription exceeds recommended size limit of %d characters", s.MaxRequestSize/2), http.StatusBadRequest)
			return
		}

		span.SetAttributes(
			attribute.Int("request.resume_length", len(req.Resume)),
			attribute.Int("request.job_length", len(req.JobDescription)),
			attribute.String("operation", "score"),
		)

		input := types.ScoreResumeInput{
			Resume:         req.Resume,
			JobDescription: req.JobDescription,
		}

		metrics := om.GetMetrics()
		var report types.MatchReport
		err := metrics.TrackAIOperationWithTokens(ctx, "score", func(ctx context.Context) *observability.AIOperationResult {
			output, tokenUsage, scoreErr := s.Analyzer.ScoreResume(ctx, input)
			report = output
			return &observability.AIOperationResult{
				Error:      scoreErr,
				TokenUsage: (*observability.TokenUsage)(tokenUsage),
			}
		}, om)

		if err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "scoring"))
			metrics.RecordBusinessMetric(ctx, "match_scored", false, om,
				attribute.String("error", err.Error()))
			writeErrorResponse(w, "Failed to score resume", err.Error(), http.StatusInternalServerError)
			return
		}

		metrics.RecordBusinessMetric(ctx, "match_scored", true, om,
			attribute.String("verdict", report.Verdict),
			attribute.String("skill_source", report.SkillSource))
		metrics.RecordMatchScore(ctx, report.FinalScore, om,
			attribute.String("verdict", report.Verdict))
		if report.SkillSource == types.SkillSourceFallback {
			metrics.RecordBusinessMetric(ctx, "extraction_fallback", true, om)
		}

		span.SetAttributes(
			attribute.Bool("success", true),
			attribute.Float64("score.final", report.FinalScore),
			attribute.String("score.verdict", report.Verdict),
			attribute.Int("skills.matched", len(report.MatchedSkills)),
			attribute.Int("skills.missing", len(report.MissingSkills)),
		)

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(report); err != nil {
			span.RecordError(err)
			http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		}
	}
}

// createExtractHandler wraps the extract handler with observability
func (s *Server) createExtractHandler(om *observability.ObservabilityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		tracer := om.Tracer("atsmatch.api")
		ctx, span := tracer.Start(ctx, "api.extract")
		defer span.End()

		var req ExtractRequest
		if err := parseJSONRequest(r, &req); err != nil {
			span.RecordError(err)
			writeErrorResponse(w, "Invalid request body", err.Error(), http.StatusBadRequest)
			return
		}

		if strings.TrimSpace(req.JobDescription) == "" {
			err := fmt.Errorf("missing job description")
			span.RecordError(err)
			writeErrorResponse(w, "Missing job description", "jobDescription field is required", http.StatusBadRequest)
			return
		}

		span.SetAttributes(
			attribute.Int("request.job_length", len(req.JobDescription)),
			attribute.String("operation", "extract"),
		)

		input := types.ExtractSkillsInput{
			JobDescription: req.JobDescription,
		}

		metrics := om.GetMetrics()
		var result types.ExtractSkillsOutput
		err := metrics.TrackAIOperationWithTokens(ctx, "extract", func(ctx context.Context) *observability.AIOperationResult {
			output, tokenUsage, extractErr := s.Analyzer.ExtractSkills(ctx, input)
			result = output
			return &observability.AIOperationResult{
				Error:      extractErr,
				TokenUsage: (*observability.TokenUsage)(tokenUsage),
			}
		}, om)

		if err != nil {
			span.RecordError(err)
			metrics.RecordBusinessMetric(ctx, "skills_extracted", false, om)
			writeErrorResponse(w, "Failed to extract skills", err.Error(), http.StatusInternalServerError)
			return
		}

		metrics.RecordBusinessMetric(ctx, "skills_extracted", true, om,
			attribute.Int("skills_count", len(result.Skills)),
			attribute.String("skill_source", result.Source))
		if result.Source == types.SkillSourceFallback {
			metrics.RecordBusinessMetric(ctx, "extraction_fallback", true, om)
		}

		span.SetAttributes(
			attribute.Bool("success", true),
			attribute.Int("skills_count", len(result.Skills)),
			attribute.String("skill_source", result.Source),
		)

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			span.RecordError(err)
			http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		}
	}
}

// createRateLimitMiddleware adds observability to rate limiting
func (s *Server) createRateLimitMiddleware(om *observability.ObservabilityManager) func(http.HandlerFunc) http.HandlerFunc {
	originalMiddleware := s.rateLimitMiddleware()

	return func(next http.HandlerFunc) http.HandlerFunc {
		return originalMiddleware(func(w http.ResponseWriter, r *http.Request) {
			// Wrap the ResponseWriter to detect rate limit responses
			wrapper := &responseWrapper{ResponseWriter: w, statusCode: 200}

			next(wrapper, r)

			if wrapper.statusCode == http.StatusTooManyRequests {
				metrics := om.GetMetrics()
				metrics.RecordBusinessMetric(r.Context(), "rate_limit_hit", true, om,
					attribute.String("endpoint", r.URL.Path),
					attribute.String("method", r.Method))
			}
		})
	}
}

// responseWrapper wraps http.ResponseWriter to capture status code
type responseWrapper struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWrapper) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}
