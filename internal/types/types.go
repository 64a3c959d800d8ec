package types

import "atsmatch/internal/engine"

// ScoreResumeInput represents the input for scoring a resume against a job
// description
type ScoreResumeInput struct {
	Resume         string `json:"resume"`
	JobDescription string `json:"jobDescription"`
}

// ExtractSkillsInput represents the input for extracting skills from a job
// description
type ExtractSkillsInput struct {
	JobDescription string `json:"jobDescription"`
}

// ExtractSkillsOutput represents the skills pulled out of a job description
type ExtractSkillsOutput struct {
	Skills []string `json:"skills"`
	// Source is "ai" when the generative extractor produced the skills or
	// "fallback" when the heuristic extractor was used instead.
	Source string `json:"source"`
}

// MatchReport is the terminal output of a scoring run: the blended ATS score,
// its components, and the skill partition behind it.
type MatchReport struct {
	FinalScore      float64                `json:"finalScore"`
	Verdict         string                 `json:"verdict"`
	Components      engine.ScoreComponents `json:"components"`
	ExtractedSkills []string               `json:"extractedSkills"`
	MatchedSkills   []string               `json:"matchedSkills"`
	MissingSkills   []string               `json:"missingSkills"`
	SkillSource     string                 `json:"skillSource"`
	Suggestions     []string               `json:"suggestions,omitempty"`
}

// Skill source values reported in ExtractSkillsOutput and MatchReport.
const (
	SkillSourceAI       = "ai"
	SkillSourceFallback = "fallback"
)

// Verdict bands for the final score.
const (
	VerdictExcellent = "excellent"
	VerdictGood      = "good"
	VerdictPartial   = "partial"
	VerdictLow       = "low"
)

// VerdictFor maps a final score to its verdict band.
func VerdictFor(score float64) string {
	switch {
	case score >= 80:
		return VerdictExcellent
	case score >= 60:
		return VerdictGood
	case score >= 40:
		return VerdictPartial
	default:
		return VerdictLow
	}
}
