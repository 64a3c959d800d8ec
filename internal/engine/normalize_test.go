package engine

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "plain text unchanged",
			input:    "software engineer",
			expected: "software engineer",
		},
		{
			name:     "newlines become spaces",
			input:    "line one\nline two\r\nline three",
			expected: "line one line two line three",
		},
		{
			name:     "whitespace runs collapse",
			input:    "too   many\t\tspaces",
			expected: "too many spaces",
		},
		{
			name:     "leading and trailing whitespace trimmed",
			input:    "  padded  ",
			expected: "padded",
		},
		{
			name:     "non-ascii stripped",
			input:    "résumé — engineer",
			expected: "rsum engineer",
		},
		{
			name:     "control characters stripped",
			input:    "a\x00b\x07c",
			expected: "abc",
		},
		{
			name:     "only whitespace",
			input:    " \n\t \r ",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.input)
			if got != tt.expected {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"",
		"plain text",
		"  messy\n\ninput\twithé noise  ",
		"already normalized text",
		"\r\n\r\n",
	}

	for _, input := range inputs {
		once := Normalize(input)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: first %q, second %q", input, once, twice)
		}
	}
}

func TestNormalizeOutputIsASCII(t *testing.T) {
	out := Normalize("日本語 text with émojis 🎉 and tabs\tmixed in")
	for i, r := range out {
		if r < 0x20 || r >= 0x7f {
			t.Fatalf("non-printable-ASCII rune %q at index %d in %q", r, i, out)
		}
	}
}
