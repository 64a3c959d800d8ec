package engine

import "testing"

func TestSkillRatio(t *testing.T) {
	tests := []struct {
		name     string
		matched  []string
		missing  []string
		expected float64
	}{
		{name: "no skills at all", matched: nil, missing: nil, expected: 0},
		{name: "all matched", matched: []string{"a", "b"}, missing: nil, expected: 1},
		{name: "none matched", matched: nil, missing: []string{"a"}, expected: 0},
		{name: "three of four", matched: []string{"a", "b", "c"}, missing: []string{"d"}, expected: 0.75},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SkillRatio(tt.matched, tt.missing)
			if got != tt.expected {
				t.Errorf("SkillRatio = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestFinalScore(t *testing.T) {
	// Resume text scoring exactly 100 on structure; JD with no seniority
	// marker and no years pattern gives the neutral experience 50.
	resume := "work experience education skills projects"
	jd := "looking for a data analyst"

	final, components := FinalScore(DefaultWeights, 80, []string{"a", "b", "c"}, []string{"d"}, resume, jd)

	if components.SkillRatio != 0.75 {
		t.Errorf("SkillRatio = %v, want 0.75", components.SkillRatio)
	}
	if components.Structure != 100 {
		t.Errorf("Structure = %d, want 100", components.Structure)
	}
	if components.Experience != 50 {
		t.Errorf("Experience = %d, want 50", components.Experience)
	}

	// 0.5*75 + 0.2*80 + 0.15*100 + 0.15*50 = 37.5 + 16 + 15 + 7.5 = 76.0
	if final != 76.0 {
		t.Errorf("FinalScore = %v, want 76.0", final)
	}
}

func TestFinalScoreNoSkills(t *testing.T) {
	final, components := FinalScore(DefaultWeights, 0, nil, nil, "", "")

	if components.SkillRatio != 0 {
		t.Errorf("SkillRatio = %v, want 0", components.SkillRatio)
	}
	// Empty texts still earn the neutral experience baseline.
	// 0.15 * 50 = 7.5
	if final != 7.5 {
		t.Errorf("FinalScore = %v, want 7.5", final)
	}
}

func TestFinalScoreBounds(t *testing.T) {
	cases := []struct {
		semantic float64
		matched  []string
		missing  []string
		resume   string
		jd       string
	}{
		{0, nil, nil, "", ""},
		{100, []string{"a"}, nil, "work experience education skills project senior 10 years", "senior 5+ years"},
		{50, []string{"a"}, []string{"b", "c"}, "education", "3+ years"},
	}

	for _, c := range cases {
		final, _ := FinalScore(DefaultWeights, c.semantic, c.matched, c.missing, c.resume, c.jd)
		if final < 0 || final > 100 {
			t.Errorf("FinalScore = %v out of [0,100] for %+v", final, c)
		}
	}
}

func TestWeightsSum(t *testing.T) {
	if got := DefaultWeights.Sum(); got != 1.0 {
		t.Errorf("DefaultWeights.Sum() = %v, want 1.0", got)
	}
}
