package longtrip

import (
	"strings"

	"tabela/internal/search"
	"tabela/internal/types"
)

// Filter keeps trips whose normalized city contains text. The km filter
// only applies when kmQuery is non-blank, so a text search never comes back
// empty just because a measured distance drifted from the saved one.
func Filter(trips []LongTrip, text, kmQuery string) []LongTrip {
	useKm := strings.TrimSpace(kmQuery) != ""
	out := make([]LongTrip, 0, len(trips))
	for _, t := range trips {
		if !search.Contains(t.City, text) {
			continue
		}
		if useKm && !search.MatchKm(t.Kilometers, kmQuery) {
			continue
		}
		out = append(out, t)
	}
	return out
}

// MatchSaved returns the first trip whose city contains destination or is
// contained by it, both sides normalized. Blank inputs never match.
func MatchSaved(trips []LongTrip, destination string) (LongTrip, bool) {
	dest := search.Normalize(destination)
	if dest == "" {
		return LongTrip{}, false
	}
	for _, t := range trips {
		city := search.Normalize(t.City)
		if city == "" {
			continue
		}
		if strings.Contains(dest, city) || strings.Contains(city, dest) {
			return t, true
		}
	}
	return LongTrip{}, false
}

// Price attaches km × perKm to each trip. It is recomputed on every call.
func Price(trips []LongTrip, perKm float64) []Priced {
	out := make([]Priced, len(trips))
	for i, t := range trips {
		out[i] = Priced{LongTrip: t, Price: types.MoneyFromFloat(t.Kilometers * perKm)}
	}
	return out
}
