package analyzer

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"testing"

	"atsmatch/internal/ai"
	"atsmatch/internal/engine"
	atsErrors "atsmatch/internal/errors"
	"atsmatch/internal/types"
)

var testLogger = atsErrors.NewLogger(slog.LevelError)

type stubExtractor struct {
	skills []string
	usage  *ai.TokenUsage
	err    error
}

func (s *stubExtractor) ExtractSkills(ctx context.Context, input types.ExtractSkillsInput) ([]string, *ai.TokenUsage, error) {
	return s.skills, s.usage, s.err
}

type stubSimilarity struct {
	score float64
	err   error
}

func (s *stubSimilarity) Similarity(ctx context.Context, resumeText, jobText string) (float64, error) {
	return s.score, s.err
}

type stubSuggester struct {
	suggestions []string
	usage       *ai.TokenUsage
	err         error
}

func (s *stubSuggester) SuggestImprovements(ctx context.Context, resumeText, jobDescription string) ([]string, *ai.TokenUsage, error) {
	return s.suggestions, s.usage, s.err
}

const (
	testResume = "Senior engineer with 5 years of experience in Go and SQL. Education: B.Sc degree. Skills and projects included."
	testJD     = "Looking for a senior engineer with 3+ years of experience in Go, SQL, Kubernetes."
)

func TestScoreResumeFullPipeline(t *testing.T) {
	a := New(Options{
		Extractor:  &stubExtractor{skills: []string{"Go", "SQL", "Kubernetes"}},
		Similarity: &stubSimilarity{score: 80},
		Weights:    engine.DefaultWeights,
	}, testLogger)

	report, _, err := a.ScoreResume(context.Background(), types.ScoreResumeInput{
		Resume:         testResume,
		JobDescription: testJD,
	})
	if err != nil {
		t.Fatalf("ScoreResume() error = %v", err)
	}

	// skill ratio 2/3, semantic 80, structure 100, experience 100
	if report.FinalScore != 79.33 {
		t.Errorf("FinalScore = %v, want 79.33", report.FinalScore)
	}
	if report.Verdict != types.VerdictGood {
		t.Errorf("Verdict = %q, want %q", report.Verdict, types.VerdictGood)
	}
	if report.SkillSource != types.SkillSourceAI {
		t.Errorf("SkillSource = %q, want %q", report.SkillSource, types.SkillSourceAI)
	}
	if !slices.Equal(report.MatchedSkills, []string{"go", "sql"}) {
		t.Errorf("MatchedSkills = %v, want [go sql]", report.MatchedSkills)
	}
	if !slices.Equal(report.MissingSkills, []string{"kubernetes"}) {
		t.Errorf("MissingSkills = %v, want [kubernetes]", report.MissingSkills)
	}
	if report.Components.Structure != 100 || report.Components.Experience != 100 {
		t.Errorf("Components = %+v, want structure and experience at 100", report.Components)
	}
	if report.Components.Semantic != 80 {
		t.Errorf("Components.Semantic = %v, want 80", report.Components.Semantic)
	}
	if len(report.Suggestions) != 0 {
		t.Errorf("Suggestions = %v, want none when disabled", report.Suggestions)
	}
}

func TestScoreResumeFallsBackWhenExtractorFails(t *testing.T) {
	a := New(Options{
		Extractor:  &stubExtractor{err: errors.New("model unavailable")},
		Similarity: &stubSimilarity{score: 50},
		Weights:    engine.DefaultWeights,
	}, testLogger)

	report, _, err := a.ScoreResume(context.Background(), types.ScoreResumeInput{
		Resume:         testResume,
		JobDescription: testJD,
	})
	if err != nil {
		t.Fatalf("ScoreResume() error = %v", err)
	}

	if report.SkillSource != types.SkillSourceFallback {
		t.Errorf("SkillSource = %q, want %q", report.SkillSource, types.SkillSourceFallback)
	}
	if len(report.ExtractedSkills) == 0 {
		t.Error("fallback extraction produced no skills")
	}
}

func TestScoreResumeFallsBackWhenExtractorReturnsNothingUsable(t *testing.T) {
	a := New(Options{
		// Everything the extractor returns dies in canonicalization.
		Extractor: &stubExtractor{skills: []string{"a", "the", "of and with"}},
		Weights:   engine.DefaultWeights,
	}, testLogger)

	report, _, err := a.ScoreResume(context.Background(), types.ScoreResumeInput{
		Resume:         testResume,
		JobDescription: testJD,
	})
	if err != nil {
		t.Fatalf("ScoreResume() error = %v", err)
	}

	if report.SkillSource != types.SkillSourceFallback {
		t.Errorf("SkillSource = %q, want %q", report.SkillSource, types.SkillSourceFallback)
	}
}

func TestScoreResumeSimilarityErrorScoresZero(t *testing.T) {
	a := New(Options{
		Extractor:  &stubExtractor{skills: []string{"Go", "SQL"}},
		Similarity: &stubSimilarity{err: errors.New("embedding outage")},
		Weights:    engine.DefaultWeights,
	}, testLogger)

	report, _, err := a.ScoreResume(context.Background(), types.ScoreResumeInput{
		Resume:         testResume,
		JobDescription: testJD,
	})
	if err != nil {
		t.Fatalf("ScoreResume() error = %v", err)
	}

	if report.Components.Semantic != 0 {
		t.Errorf("Components.Semantic = %v, want 0 on provider error", report.Components.Semantic)
	}
}

func TestScoreResumeRejectsEmptyInput(t *testing.T) {
	a := New(Options{Weights: engine.DefaultWeights}, testLogger)

	tests := []struct {
		name  string
		input types.ScoreResumeInput
	}{
		{name: "empty resume", input: types.ScoreResumeInput{JobDescription: testJD}},
		{name: "empty job description", input: types.ScoreResumeInput{Resume: testResume}},
		{name: "whitespace only resume", input: types.ScoreResumeInput{Resume: "  \r\n ", JobDescription: testJD}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := a.ScoreResume(context.Background(), tt.input); err == nil {
				t.Error("ScoreResume() expected error for empty input")
			}
		})
	}
}

func TestScoreResumeWithSuggestions(t *testing.T) {
	a := New(Options{
		Extractor:   &stubExtractor{skills: []string{"Go"}, usage: &ai.TokenUsage{InputTokens: 10, OutputTokens: 5, TotalTokens: 15}},
		Suggester:   &stubSuggester{suggestions: []string{"Add a Kubernetes project"}, usage: &ai.TokenUsage{InputTokens: 20, OutputTokens: 10, TotalTokens: 30}},
		Weights:     engine.DefaultWeights,
		Suggestions: true,
	}, testLogger)

	report, usage, err := a.ScoreResume(context.Background(), types.ScoreResumeInput{
		Resume:         testResume,
		JobDescription: testJD,
	})
	if err != nil {
		t.Fatalf("ScoreResume() error = %v", err)
	}

	if !slices.Equal(report.Suggestions, []string{"Add a Kubernetes project"}) {
		t.Errorf("Suggestions = %v", report.Suggestions)
	}
	if usage == nil || usage.TotalTokens != 45 {
		t.Errorf("token usage = %+v, want total 45", usage)
	}
}

func TestScoreResumeSuggestionErrorIsNotFatal(t *testing.T) {
	a := New(Options{
		Extractor:   &stubExtractor{skills: []string{"Go"}},
		Suggester:   &stubSuggester{err: errors.New("quota exceeded")},
		Weights:     engine.DefaultWeights,
		Suggestions: true,
	}, testLogger)

	report, _, err := a.ScoreResume(context.Background(), types.ScoreResumeInput{
		Resume:         testResume,
		JobDescription: testJD,
	})
	if err != nil {
		t.Fatalf("ScoreResume() error = %v", err)
	}
	if len(report.Suggestions) != 0 {
		t.Errorf("Suggestions = %v, want none after suggester failure", report.Suggestions)
	}
}

func TestExtractSkillsCanonicalizesOutput(t *testing.T) {
	a := New(Options{
		Extractor: &stubExtractor{skills: []string{"Python!", "SQL", "sql", "the", "very long skill phrase here"}},
		Weights:   engine.DefaultWeights,
	}, testLogger)

	out, _, err := a.ExtractSkills(context.Background(), types.ExtractSkillsInput{JobDescription: testJD})
	if err != nil {
		t.Fatalf("ExtractSkills() error = %v", err)
	}

	if !slices.Equal(out.Skills, []string{"python", "sql"}) {
		t.Errorf("Skills = %v, want [python sql]", out.Skills)
	}
	if out.Source != types.SkillSourceAI {
		t.Errorf("Source = %q, want %q", out.Source, types.SkillSourceAI)
	}
}

func TestUpdateEngineChangesBlend(t *testing.T) {
	a := New(Options{
		Extractor:  &stubExtractor{skills: []string{"Go", "SQL", "Kubernetes"}},
		Similarity: &stubSimilarity{score: 42},
		Weights:    engine.DefaultWeights,
	}, testLogger)

	// All weight on the semantic component: the blend becomes the similarity score.
	a.UpdateEngine(engine.Weights{Semantic: 1}, false)

	report, _, err := a.ScoreResume(context.Background(), types.ScoreResumeInput{
		Resume:         testResume,
		JobDescription: testJD,
	})
	if err != nil {
		t.Fatalf("ScoreResume() error = %v", err)
	}
	if report.FinalScore != 42 {
		t.Errorf("FinalScore = %v, want 42 with semantic-only weights", report.FinalScore)
	}
}
