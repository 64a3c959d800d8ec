// Package engine implements the ATS matching and scoring core: text
// normalization, skill canonicalization and matching, résumé structure and
// experience heuristics, and the weighted score blend.
//
// Every function in this package is pure and total: no I/O, no shared state,
// and a defined result for every input including empty strings and empty
// slices. Callers run one pipeline per analysis; concurrent analyses need no
// coordination.
package engine

import "strings"

// Normalize canonicalizes raw extracted text for downstream matching.
// Newlines become spaces, characters outside printable 7-bit ASCII are
// dropped, whitespace runs collapse to a single space, and the result is
// trimmed. Normalize is idempotent: Normalize(Normalize(s)) == Normalize(s).
func Normalize(text string) string {
	if text == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(text))
	lastSpace := false
	for _, r := range text {
		switch {
		case r == '\r' || r == '\n' || r == ' ' || r == '\t' || r == '\v' || r == '\f':
			if !lastSpace {
				b.WriteByte(' ')
				lastSpace = true
			}
		case r >= 0x20 && r < 0x7f:
			b.WriteRune(r)
			lastSpace = false
		default:
			// Non-ASCII and control characters are stripped for stability.
		}
	}

	return strings.TrimSpace(b.String())
}
