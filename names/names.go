// Package names canonicalizes personal names and scores how likely two of
// them refer to the same person.
package names

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// StripDiacritics removes combining diacritical marks from a string
// (e.g. "José" -> "Jose"). Plain ASCII passes through unchanged.
func StripDiacritics(s string) string {
	out, _, _ := transform.String(stripMarks, s)
	return out
}

// Titles preceding a name and qualifiers following it carry no identity
// signal and are stripped during sanitization. Tokens are matched after
// lowercasing and punctuation folding.
var honorifics = map[string]struct{}{
	"mr": {}, "mrs": {}, "ms": {}, "miss": {}, "mx": {},
	"dr": {}, "prof": {}, "sir": {}, "dame": {},
}

var suffixes = map[string]struct{}{
	"jr": {}, "sr": {}, "ii": {}, "iii": {}, "iv": {}, "v": {},
	"md": {}, "phd": {}, "esq": {},
}

const punctuation = `_.,/\'’"-`

// Sanitize reduces a raw name to its canonical form: diacritics stripped,
// lowercased, punctuation folded to spaces, leading honorifics and trailing
// suffixes removed, and runs of consecutive single-letter initials fused
// into one token ("H E Smith" -> "he smith"). An absent name is the empty
// string in and out; a name made up entirely of honorifics and suffixes
// also sanitizes to the empty string.
func Sanitize(s string) string {
	s = strings.ToLower(StripDiacritics(s))
	s = strings.Map(func(r rune) rune {
		if strings.ContainsRune(punctuation, r) {
			return ' '
		}
		return r
	}, s)

	tokens := strings.Fields(s)

	for len(tokens) > 0 {
		if _, ok := honorifics[tokens[0]]; !ok {
			break
		}
		tokens = tokens[1:]
	}
	for len(tokens) > 0 {
		last := strings.TrimRight(tokens[len(tokens)-1], ".")
		if _, ok := suffixes[last]; !ok {
			break
		}
		tokens = tokens[:len(tokens)-1]
	}

	return strings.Join(fuseInitials(tokens), " ")
}

// fuseInitials concatenates each run of consecutive single-letter tokens
// into one token, preserving order. Multi-letter tokens flush the run.
func fuseInitials(tokens []string) []string {
	var out []string
	var run strings.Builder
	for _, tok := range tokens {
		if isInitial(tok) {
			run.WriteString(tok)
			continue
		}
		if run.Len() > 0 {
			out = append(out, run.String())
			run.Reset()
		}
		out = append(out, tok)
	}
	if run.Len() > 0 {
		out = append(out, run.String())
	}
	return out
}

func isInitial(tok string) bool {
	r, size := utf8.DecodeRuneInString(tok)
	return size == len(tok) && unicode.IsLetter(r)
}
