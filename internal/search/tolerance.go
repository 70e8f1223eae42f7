package search

import (
	"math"
	"strconv"
	"strings"
)

const (
	// MinKmTolerance is the absolute slack, in km, allowed by MatchKm.
	MinKmTolerance = 5.0
	// KmToleranceRatio is the relative slack allowed by MatchKm. Routing
	// engines disagree by a few percent depending on the chosen route.
	KmToleranceRatio = 0.05
)

// ParseDecimal parses user input that may use a comma as decimal separator.
// NaN and infinities are rejected.
func ParseDecimal(raw string) (float64, bool) {
	raw = strings.ReplaceAll(strings.TrimSpace(raw), ",", ".")
	if raw == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// KmTolerance returns max(5, 5% of v).
func KmTolerance(v float64) float64 {
	return math.Max(MinKmTolerance, v*KmToleranceRatio)
}

// FormatKm renders a kilometer value the way listings display it.
func FormatKm(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}

// MatchKm reports whether a stored kilometer value v matches the raw km
// filter typed by a user. Blank input matches everything. Otherwise it
// matches when the displayed value contains the input literally, or when
// the input parses to a number within KmTolerance of v.
func MatchKm(v float64, raw string) bool {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return true
	}
	if strings.Contains(FormatKm(v), raw) {
		return true
	}
	n, ok := ParseDecimal(raw)
	if !ok {
		return false
	}
	return math.Abs(v-n) <= KmTolerance(v)
}
