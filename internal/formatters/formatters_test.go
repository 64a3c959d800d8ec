package formatters

import (
	"strings"
	"testing"

	"atsmatch/internal/engine"
	"atsmatch/internal/types"
)

func sampleReport() types.MatchReport {
	return types.MatchReport{
		FinalScore: 79.33,
		Verdict:    types.VerdictGood,
		Components: engine.ScoreComponents{
			Semantic:   80,
			SkillRatio: 2.0 / 3.0,
			Structure:  100,
			Experience: 100,
		},
		ExtractedSkills: []string{"go", "sql", "kubernetes"},
		MatchedSkills:   []string{"go", "sql"},
		MissingSkills:   []string{"kubernetes"},
		SkillSource:     types.SkillSourceAI,
	}
}

func TestFormatMatchReport(t *testing.T) {
	registry := NewFormatterRegistry()

	for _, format := range []string{"json", "text", "markdown"} {
		t.Run(format, func(t *testing.T) {
			out, err := registry.Format(sampleReport(), format)
			if err != nil {
				t.Fatalf("Format(%q) error = %v", format, err)
			}
			if !strings.Contains(out, "79.33") {
				t.Errorf("formatted output missing score:\n%s", out)
			}
			if !strings.Contains(out, "kubernetes") {
				t.Errorf("formatted output missing skill list:\n%s", out)
			}
		})
	}
}

func TestFormatExtractSkillsOutput(t *testing.T) {
	registry := NewFormatterRegistry()
	out, err := registry.Format(types.ExtractSkillsOutput{
		Skills: []string{"go", "sql"},
		Source: types.SkillSourceFallback,
	}, "text")
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if !strings.Contains(out, "fallback") || !strings.Contains(out, "sql") {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestFormatUnknownFormat(t *testing.T) {
	registry := NewFormatterRegistry()
	if _, err := registry.Format(sampleReport(), "yaml"); err == nil {
		t.Error("Format() expected error for unsupported format")
	}
}
