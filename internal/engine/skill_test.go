package engine

import (
	"slices"
	"testing"
)

func TestCanonicalizeSkill(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		accepted bool
	}{
		{
			name:     "simple skill",
			input:    "Python",
			expected: "python",
			accepted: true,
		},
		{
			name:     "trims and lowercases",
			input:    "  SQL Server  ",
			expected: "sql server",
			accepted: true,
		},
		{
			name:     "keeps allowed punctuation",
			input:    "C++ / C#",
			expected: "c++ / c#",
			accepted: true,
		},
		{
			name:     "strips disallowed characters",
			input:    "node.js (backend)",
			expected: "node.js backend",
			accepted: true,
		},
		{
			name:     "rejects too short after cleaning",
			input:    "go",
			accepted: false,
		},
		{
			name:     "rejects short after symbol stripping",
			input:    "(r)",
			accepted: false,
		},
		{
			name:     "rejects stop words only",
			input:    "and the",
			accepted: false,
		},
		{
			name:     "rejects single stop word",
			input:    "very",
			accepted: false,
		},
		{
			name:     "accepts stop word mixed with real token",
			input:    "attention to detail",
			expected: "attention to detail",
			accepted: true,
		},
		{
			name:     "rejects empty",
			input:    "",
			accepted: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := CanonicalizeSkill(tt.input)
			if ok != tt.accepted {
				t.Fatalf("CanonicalizeSkill(%q) accepted = %v, want %v", tt.input, ok, tt.accepted)
			}
			if ok && got != tt.expected {
				t.Errorf("CanonicalizeSkill(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestNewSkillSet(t *testing.T) {
	tests := []struct {
		name       string
		candidates []string
		expected   []string
	}{
		{
			name:       "empty input",
			candidates: nil,
			expected:   []string{},
		},
		{
			name:       "dedupes preserving first-seen order",
			candidates: []string{"Python", "SQL", "python", "Excel", "sql"},
			expected:   []string{"python", "sql", "excel"},
		},
		{
			name:       "drops rejected candidates",
			candidates: []string{"and", "go", "Python"},
			expected:   []string{"python"},
		},
		{
			name:       "drops phrases over three words",
			candidates: []string{"experience building large distributed systems", "kubernetes"},
			expected:   []string{"kubernetes"},
		},
		{
			name:       "keeps exactly three words",
			candidates: []string{"project management office"},
			expected:   []string{"project management office"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewSkillSet(tt.candidates)
			if !slices.Equal(got, tt.expected) {
				t.Errorf("NewSkillSet(%v) = %v, want %v", tt.candidates, got, tt.expected)
			}
		})
	}
}
