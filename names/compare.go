package names

import (
	"math"
	"strings"
	"unicode/utf8"

	"namematch/similarity"
)

// Bonus rewards structural agreement between two sanitized names: 0.05 for
// an identical last token (shared surname) plus 0.02 for matching first
// letters of the first tokens (shared first initial). It is an additive
// nudge on top of a base similarity score, not a score of its own; the
// possible values are 0, 0.02, 0.05 and 0.07. Either input sanitizing to
// no tokens yields 0.
func Bonus(a, b string) float64 {
	at := strings.Fields(a)
	bt := strings.Fields(b)
	if len(at) == 0 || len(bt) == 0 {
		return 0.0
	}

	bonus := 0.0
	if at[len(at)-1] == bt[len(bt)-1] {
		bonus += 0.05
	}
	ra, _ := utf8.DecodeRuneInString(at[0])
	rb, _ := utf8.DecodeRuneInString(bt[0])
	if ra == rb {
		bonus += 0.02
	}
	return bonus
}

// Compare scores how likely two raw names refer to the same person, in
// [0,1]. Both names are sanitized, scored with similarity.Score and nudged
// by Bonus, capped at 1. Absent or fully-stripped names score 0.
func Compare(a, b string) float64 {
	sa := Sanitize(a)
	sb := Sanitize(b)
	return math.Min(1.0, similarity.Score(sa, sb)+Bonus(sa, sb))
}
