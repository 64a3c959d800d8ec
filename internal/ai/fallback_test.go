package ai

import (
	"slices"
	"testing"
)

func TestFallbackExtractSkills(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "plain terms with stop words removed",
			text: "Experience with SQL and Excel reporting required",
			want: []string{"experience", "sql", "excel", "reporting", "required"},
		},
		{
			name: "duplicates collapse case insensitively",
			text: "SQL sql SQL",
			want: []string{"sql"},
		},
		{
			name: "keyword tokens with punctuation survive",
			text: "excel-based macros",
			want: []string{"excel", "based", "macros", "excel-based"},
		},
		{
			name: "short tokens are dropped",
			text: "Go R",
			want: nil,
		},
		{
			name: "empty input",
			text: "",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FallbackExtractSkills(tt.text)
			if !slices.Equal(got, tt.want) {
				t.Errorf("FallbackExtractSkills() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFallbackExtractSkillsNeverReturnsStopWordOnly(t *testing.T) {
	got := FallbackExtractSkills("and the with from during while those these")
	if len(got) != 0 {
		t.Errorf("expected no skills from stop-word-only text, got %v", got)
	}
}
