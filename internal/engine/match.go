package engine

import (
	"regexp"
	"strings"
)

// MatchResult partitions a skill set into skills found in the résumé and
// skills absent from it. Both lists are ordered, duplicate-free, and
// disjoint; every input skill appears in exactly one of them.
type MatchResult struct {
	Matched []string `json:"matched"`
	Missing []string `json:"missing"`
}

// skillPartSplitter breaks a skill into its constituent tokens for the
// partial-match rule. Slashes, commas, and hyphens separate tokens the same
// way whitespace does ("ci/cd", "front-end").
var skillPartSplitter = regexp.MustCompile(`[\s/,-]+`)

// MatchSkills classifies each skill in the set as matched or missing against
// the normalized, lowercased résumé text.
//
// A skill matches when it appears verbatim as a substring of the résumé, or
// when strictly more than half of its tokens (minimum one) appear as
// substrings. Both result lists are deduplicated preserving first-seen
// order. An empty skill set yields an empty partition.
func MatchSkills(resumeText string, skills []string) MatchResult {
	resumeLow := strings.ToLower(resumeText)

	matched := make([]string, 0, len(skills))
	missing := make([]string, 0)
	seenMatched := make(map[string]struct{})
	seenMissing := make(map[string]struct{})

	for _, skill := range skills {
		sk := strings.ToLower(strings.TrimSpace(skill))

		if strings.Contains(resumeLow, sk) {
			if _, dup := seenMatched[sk]; !dup {
				seenMatched[sk] = struct{}{}
				matched = append(matched, sk)
			}
			continue
		}

		parts := splitSkillParts(sk)
		found := 0
		for _, p := range parts {
			if strings.Contains(resumeLow, p) {
				found++
			}
		}

		// Require at least 50% + 1 of the tokens. A skill with zero
		// tokens can never satisfy the threshold and falls to missing.
		if found >= max(1, len(parts)/2+1) {
			if _, dup := seenMatched[sk]; !dup {
				seenMatched[sk] = struct{}{}
				matched = append(matched, sk)
			}
		} else {
			if _, dup := seenMissing[sk]; !dup {
				seenMissing[sk] = struct{}{}
				missing = append(missing, sk)
			}
		}
	}

	return MatchResult{Matched: matched, Missing: missing}
}

// splitSkillParts returns the non-empty tokens of a skill.
func splitSkillParts(skill string) []string {
	parts := skillPartSplitter.Split(skill, -1)
	out := parts[:0]
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
