// Package search holds the matching primitives shared by the fare and
// long-trip filters.
package search

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalize lowercases s, strips diacritics and trims surrounding space.
// Normalize(Normalize(s)) == Normalize(s) for every s.
//
// Lowercasing happens before decomposition: some uppercase letters (İ)
// lowercase into a base letter plus a combining mark, which the mark
// removal then drops.
func Normalize(s string) string {
	if s == "" {
		return ""
	}
	// transform.Chain keeps state, so build one per call.
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, strings.ToLower(s))
	if err != nil {
		out = strings.ToLower(s)
	}
	return strings.TrimSpace(out)
}

// Contains reports whether the normalized haystack contains the normalized needle.
// An empty needle matches everything.
func Contains(haystack, needle string) bool {
	return strings.Contains(Normalize(haystack), Normalize(needle))
}
