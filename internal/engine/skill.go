package engine

import "strings"

// MaxSkillWords is the maximum number of whitespace-separated words a
// canonical skill may have. Longer phrases are treated as extractor noise.
const MaxSkillWords = 3

// minSkillLength is the minimum length of a cleaned skill token.
const minSkillLength = 3

// stopWords are conjunctions, articles, and generic qualifiers that carry no
// skill signal. A candidate consisting only of these is rejected.
var stopWords = map[string]struct{}{
	"and": {}, "or": {}, "with": {}, "the": {}, "a": {}, "an": {}, "of": {},
	"for": {}, "to": {}, "from": {}, "in": {}, "on": {}, "by": {}, "as": {},
	"your": {}, "our": {}, "their": {}, "its": {}, "be": {}, "is": {},
	"are": {}, "was": {}, "were": {}, "will": {}, "can": {}, "may": {},
	"beyond": {}, "very": {}, "more": {}, "less": {}, "that": {}, "this": {},
	"those": {}, "these": {}, "while": {}, "during": {},
}

// IsStopWord reports whether w is in the fixed stop-word set.
func IsStopWord(w string) bool {
	_, ok := stopWords[w]
	return ok
}

// CanonicalizeSkill cleans a raw candidate skill string into a canonical
// skill token. It trims and lowercases the input, strips characters outside
// [a-zA-Z0-9 +/#.-], and rejects results shorter than three characters or
// composed entirely of stop words. The second return value is false when the
// candidate is rejected; canonicalization never fails otherwise.
func CanonicalizeSkill(raw string) (string, bool) {
	s := strings.ToLower(strings.TrimSpace(raw))

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '+' || r == '/' || r == '#' || r == '.' || r == '-':
			b.WriteRune(r)
		}
	}
	s = b.String()

	if len(s) < minSkillLength {
		return "", false
	}

	allStop := true
	for _, w := range strings.Fields(s) {
		if !IsStopWord(w) {
			allStop = false
			break
		}
	}
	if allStop {
		return "", false
	}

	return s, true
}

// NewSkillSet canonicalizes a sequence of candidate skills into an ordered,
// duplicate-free skill set. Candidates that fail canonicalization or exceed
// MaxSkillWords words are dropped silently; first-seen order is preserved.
func NewSkillSet(candidates []string) []string {
	seen := make(map[string]struct{}, len(candidates))
	skills := make([]string, 0, len(candidates))

	for _, raw := range candidates {
		skill, ok := CanonicalizeSkill(raw)
		if !ok {
			continue
		}
		if len(strings.Fields(skill)) > MaxSkillWords {
			continue
		}
		if _, dup := seen[skill]; dup {
			continue
		}
		seen[skill] = struct{}{}
		skills = append(skills, skill)
	}

	return skills
}
