package ai

import (
	"regexp"
	"strings"

	"atsmatch/internal/engine"
)

// wordPattern matches standalone alphabetic terms of at least two letters
var wordPattern = regexp.MustCompile(`\b[A-Za-z]{2,}\b`)

// skillKeywords are substrings that mark a token as a likely skill term even
// when it carries punctuation, e.g. "excel-based" or "sql/nosql".
var skillKeywords = []string{"excel", "sql", "analysis", "report", "macro"}

// FallbackExtractSkills extracts candidate skills from text without any AI
// involvement. It is deliberately generous: it collects every plausible term
// and relies on canonicalization to reject noise. Used when the AI extractor
// is unavailable or returns nothing. Results preserve first-appearance order.
func FallbackExtractSkills(text string) []string {
	text = strings.ToLower(text)

	seen := make(map[string]bool)
	var skills []string

	add := func(raw string) {
		skill, ok := engine.CanonicalizeSkill(raw)
		if !ok || seen[skill] {
			return
		}
		seen[skill] = true
		skills = append(skills, skill)
	}

	for _, word := range wordPattern.FindAllString(text, -1) {
		add(word)
	}

	for _, token := range strings.Fields(text) {
		for _, keyword := range skillKeywords {
			if strings.Contains(token, keyword) {
				add(token)
				break
			}
		}
	}

	return skills
}
