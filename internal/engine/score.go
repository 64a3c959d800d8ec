package engine

import "math"

// Weights control the blend of score components. They are part of the
// scoring contract: changing any value changes what a given score means, so
// deviations from DefaultWeights must be deliberate and versioned.
type Weights struct {
	Skill      float64 `mapstructure:"skill" json:"skill"`
	Semantic   float64 `mapstructure:"semantic" json:"semantic"`
	Structure  float64 `mapstructure:"structure" json:"structure"`
	Experience float64 `mapstructure:"experience" json:"experience"`
}

// DefaultWeights is the documented default blend.
var DefaultWeights = Weights{
	Skill:      0.50,
	Semantic:   0.20,
	Structure:  0.15,
	Experience: 0.15,
}

// Sum returns the total of all weights. A well-formed configuration sums to
// 1.0 so the blended score stays within [0,100].
func (w Weights) Sum() float64 {
	return w.Skill + w.Semantic + w.Structure + w.Experience
}

// ScoreComponents carries the individual inputs of a final score, as
// reported back to callers alongside the blend.
type ScoreComponents struct {
	Semantic   float64 `json:"semantic"`
	SkillRatio float64 `json:"skillRatio"`
	Structure  int     `json:"structure"`
	Experience int     `json:"experience"`
}

// SkillRatio returns the fraction of skills found in the résumé, or 0 when
// no skills were extracted at all.
func SkillRatio(matched, missing []string) float64 {
	total := len(matched) + len(missing)
	if total == 0 {
		return 0
	}
	return float64(len(matched)) / float64(total)
}

// FinalScore blends the skill ratio, semantic similarity, structure score,
// and experience score into a single 0–100 value rounded to two decimals.
// The semantic input is expected already scaled to [0,100]; degraded
// collaborators supply 0 there rather than an error.
func FinalScore(w Weights, semantic float64, matched, missing []string, resumeText, jdText string) (float64, ScoreComponents) {
	components := ScoreComponents{
		Semantic:   semantic,
		SkillRatio: SkillRatio(matched, missing),
		Structure:  StructureScore(resumeText),
		Experience: ExperienceScore(resumeText, jdText),
	}

	skillComponent := components.SkillRatio * 100
	final := w.Skill*skillComponent +
		w.Semantic*components.Semantic +
		w.Structure*float64(components.Structure) +
		w.Experience*float64(components.Experience)

	return round2(final), components
}

// round2 rounds to two decimal places.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
