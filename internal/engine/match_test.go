package engine

import (
	"slices"
	"testing"
)

func TestMatchSkills(t *testing.T) {
	tests := []struct {
		name        string
		resume      string
		skills      []string
		wantMatched []string
		wantMissing []string
	}{
		{
			name:        "direct substring match",
			resume:      "advanced excel and reporting",
			skills:      []string{"excel"},
			wantMatched: []string{"excel"},
			wantMissing: []string{},
		},
		{
			name:        "two token skill needs both tokens",
			resume:      "led a project for the data team",
			skills:      []string{"project management"},
			wantMatched: []string{},
			wantMissing: []string{"project management"},
		},
		{
			name:        "two token skill with both tokens present",
			resume:      "project planning and people management",
			skills:      []string{"project management"},
			wantMatched: []string{"project management"},
			wantMissing: []string{},
		},
		{
			name:        "three token skill needs two tokens",
			resume:      "familiar with kubernetes",
			skills:      []string{"kubernetes orchestration platform"},
			wantMatched: []string{},
			wantMissing: []string{"kubernetes orchestration platform"},
		},
		{
			name:        "three token skill with two tokens present",
			resume:      "kubernetes platform operations",
			skills:      []string{"kubernetes orchestration platform"},
			wantMatched: []string{"kubernetes orchestration platform"},
			wantMissing: []string{},
		},
		{
			name:        "slash separated tokens",
			resume:      "built ci and cd pipelines",
			skills:      []string{"ci/cd"},
			wantMatched: []string{"ci/cd"},
			wantMissing: []string{},
		},
		{
			name:        "completely absent skill",
			resume:      "warehouse logistics coordinator",
			skills:      []string{"terraform"},
			wantMatched: []string{},
			wantMissing: []string{"terraform"},
		},
		{
			name:        "empty skill set",
			resume:      "anything",
			skills:      nil,
			wantMatched: []string{},
			wantMissing: []string{},
		},
		{
			name:        "duplicates collapsed per list",
			resume:      "python developer",
			skills:      []string{"python", "python", "terraform", "terraform"},
			wantMatched: []string{"python"},
			wantMissing: []string{"terraform"},
		},
		{
			name:        "case insensitive against resume",
			resume:      "Senior Python Developer",
			skills:      []string{"python"},
			wantMatched: []string{"python"},
			wantMissing: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MatchSkills(tt.resume, tt.skills)
			if !slices.Equal(got.Matched, tt.wantMatched) {
				t.Errorf("Matched = %v, want %v", got.Matched, tt.wantMatched)
			}
			if !slices.Equal(got.Missing, tt.wantMissing) {
				t.Errorf("Missing = %v, want %v", got.Missing, tt.wantMissing)
			}
		})
	}
}

func TestMatchSkillsPartition(t *testing.T) {
	resume := "python developer with excel reporting and five years of sql"
	skills := []string{"python", "excel macros", "terraform", "sql", "data analysis"}

	got := MatchSkills(resume, skills)

	inExactlyOne := 0
	for _, s := range skills {
		inMatched := slices.Contains(got.Matched, s)
		inMissing := slices.Contains(got.Missing, s)
		if inMatched && inMissing {
			t.Errorf("skill %q present in both matched and missing", s)
		}
		if inMatched || inMissing {
			inExactlyOne++
		}
	}
	if inExactlyOne != len(skills) {
		t.Errorf("partition lost skills: %d of %d accounted for", inExactlyOne, len(skills))
	}
}
