package engine

import "testing"

func TestStructureScore(t *testing.T) {
	tests := []struct {
		name     string
		resume   string
		expected int
	}{
		{
			name:     "all four sections present",
			resume:   "work experience education skills projects",
			expected: 100,
		},
		{
			name:     "empty resume",
			resume:   "",
			expected: 0,
		},
		{
			name:     "experience only",
			resume:   "10 years of experience in sales",
			expected: 35,
		},
		{
			name:     "degree counts as education",
			resume:   "bachelor degree in physics",
			expected: 25,
		},
		{
			name:     "intern counts as project bucket",
			resume:   "software intern at a startup",
			expected: 20,
		},
		{
			name:     "skills and education",
			resume:   "skills: python. education: bsc",
			expected: 45,
		},
		{
			name:     "check is case insensitive",
			resume:   "EXPERIENCE and EDUCATION",
			expected: 60,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StructureScore(tt.resume)
			if got != tt.expected {
				t.Errorf("StructureScore(%q) = %d, want %d", tt.resume, got, tt.expected)
			}
		})
	}
}

func TestExperienceScore(t *testing.T) {
	tests := []struct {
		name     string
		resume   string
		jd       string
		expected int
	}{
		{
			name:     "neutral baseline when jd has no requirements",
			resume:   "plain resume text",
			jd:       "plain jd text",
			expected: 50,
		},
		{
			name:     "seniority aligned plus years met",
			resume:   "senior engineer with 6 years of go",
			jd:       "senior role requiring 5+ years experience",
			expected: 100,
		},
		{
			name:     "seniority required but resume has none",
			resume:   "engineer with 6 years of go",
			jd:       "senior role, no year requirement",
			expected: 60,
		},
		{
			name:     "years short of requirement",
			resume:   "developer with 3 years of python",
			jd:       "requires 6 years experience",
			expected: 25,
		},
		{
			name:     "years required but resume silent",
			resume:   "developer with python",
			jd:       "requires 4 years experience",
			expected: 10,
		},
		{
			name:     "plus suffix on requirement",
			resume:   "8 years in operations",
			jd:       "8+ years required",
			expected: 50,
		},
		{
			name:     "abbreviated seniority markers",
			resume:   "jr. developer",
			jd:       "sr. engineer wanted",
			expected: 100,
		},
		{
			name:     "empty inputs",
			resume:   "",
			jd:       "",
			expected: 50,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExperienceScore(tt.resume, tt.jd)
			if got != tt.expected {
				t.Errorf("ExperienceScore(%q, %q) = %d, want %d", tt.resume, tt.jd, got, tt.expected)
			}
		})
	}
}
