// Package similarity scores how alike two strings are.
//
// The score blends three independent sub-metrics: normalized Levenshtein
// edit distance, Jaccard overlap of token sets, and the length of the
// longest common substring. Each sub-metric lands in [0,1] and so does
// the blend.
package similarity

import (
	"math"
	"strings"
	"unicode"

	lev "github.com/texttheater/golang-levenshtein/levenshtein"
)

const (
	editWeight      = 0.5
	jaccardWeight   = 0.3
	substringWeight = 0.2
)

// Score returns a similarity score between a and b in the range [0,1].
// Inputs are lowercased and trimmed before comparison. An empty or
// whitespace-only input carries no signal and always scores 0. A string
// scores 1 against itself only when it contains at least one word token;
// punctuation-only input has an empty token set, so the Jaccard component
// contributes nothing even on identical inputs.
func Score(a, b string) float64 {
	a = strings.TrimSpace(strings.ToLower(a))
	b = strings.TrimSpace(strings.ToLower(b))
	if a == "" || b == "" {
		return 0.0
	}

	ra := []rune(a)
	rb := []rune(b)
	score := editWeight*editScore(ra, rb) +
		jaccardWeight*jaccardScore(a, b) +
		substringWeight*substringScore(ra, rb)

	// Guard against floating-point overshoot.
	return math.Min(1.0, math.Max(0.0, score))
}

func editScore(a, b []rune) float64 {
	maxLen := len(a)
	if len(b) > len(a) {
		maxLen = len(b)
	}
	if maxLen == 0 {
		return 0.0
	}
	dist := lev.DistanceForStrings(a, b, lev.DefaultOptionsWithSub)
	return 1.0 - float64(dist)/float64(maxLen)
}

func jaccardScore(a, b string) float64 {
	set1 := tokenSet(a)
	set2 := tokenSet(b)

	intersect := 0
	union := make(map[string]struct{})
	for t := range set1 {
		union[t] = struct{}{}
		if _, ok := set2[t]; ok {
			intersect++
		}
	}
	for t := range set2 {
		union[t] = struct{}{}
	}

	if len(union) == 0 {
		return 0.0
	}
	return float64(intersect) / float64(len(union))
}

// tokenSet splits on runs of non-word runes (word = letter, digit or '_')
// and collapses duplicates.
func tokenSet(s string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, t := range strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_'
	}) {
		set[t] = struct{}{}
	}
	return set
}

// substringScore finds the longest contiguous run of runes common to both
// strings and normalizes it by the longer length.
func substringScore(a, b []rune) float64 {
	maxLen := len(a)
	if len(b) > len(a) {
		maxLen = len(b)
	}
	if maxLen == 0 {
		return 0.0
	}

	longest := 0
	prev := make([]int, len(b)+1)
	for i := 1; i <= len(a); i++ {
		curr := make([]int, len(b)+1)
		for j := 1; j <= len(b); j++ {
			if a[i-1] == b[j-1] {
				curr[j] = prev[j-1] + 1
				if curr[j] > longest {
					longest = curr[j]
				}
			}
		}
		prev = curr
	}
	return float64(longest) / float64(maxLen)
}
