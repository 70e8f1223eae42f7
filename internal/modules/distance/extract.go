package distance

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	// Markdown emphasis or quotes may wrap the marker value, as in "RESULT_KM: **217.5**".
	markerRe = regexp.MustCompile("(?i)(?:RESULT_KM|VALOR)[*_]*\\s*:\\s*[*_\"'`]*\\s*(-?\\d+(?:[.,]\\d+)?)")
	unitRe   = regexp.MustCompile(`(?i)(-?\d+(?:[.,]\d+)?)\s*(?:kms?|quil[oô]metros?|kilomet(?:er|re)s?)\b`)
	numberRe = regexp.MustCompile(`-?\d+(?:[.,]\d+)?`)
)

// Extract pulls a positive kilometer value out of free text. It tries, in
// order: the marker label, a number followed by a distance unit, and the
// first positive number anywhere. Zero and negative values never count.
func Extract(text string) (float64, bool) {
	if v, ok := fromMarker(text); ok {
		return v, true
	}
	if v, ok := firstPositive(text, unitRe, 1); ok {
		return v, true
	}
	return firstPositive(text, numberRe, 0)
}

// fromMarker uses the last marker in the text, since the answer is asked
// to end with it and earlier ones may echo the instructions.
func fromMarker(text string) (float64, bool) {
	matches := markerRe.FindAllStringSubmatchIndex(text, -1)
	if len(matches) == 0 {
		return 0, false
	}
	m := matches[len(matches)-1]
	return numberAt(text, m[2], m[3])
}

func firstPositive(text string, re *regexp.Regexp, group int) (float64, bool) {
	for _, m := range re.FindAllStringSubmatchIndex(text, -1) {
		if v, ok := numberAt(text, m[2*group], m[2*group+1]); ok {
			return v, true
		}
	}
	return 0, false
}

// numberAt parses text[start:end] as a positive decimal. A leading '-'
// glued to a letter or digit is a separator, as in "BR-381", not a sign.
func numberAt(text string, start, end int) (float64, bool) {
	raw := text[start:end]
	if strings.HasPrefix(raw, "-") && start > 0 {
		prev, _ := utf8.DecodeLastRuneInString(text[:start])
		if unicode.IsLetter(prev) || unicode.IsDigit(prev) {
			raw = raw[1:]
		}
	}
	v, err := strconv.ParseFloat(strings.Replace(raw, ",", ".", 1), 64)
	if err != nil || v <= 0 {
		return 0, false
	}
	return v, true
}
