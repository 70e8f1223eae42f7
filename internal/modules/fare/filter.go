package fare

import (
	"sort"
	"strings"

	"tabela/internal/search"
)

// Filter returns the fares whose destination or region contains q.Text
// (case and diacritic insensitive) and whose region equals q.Region when
// one is given. Input order is preserved and the input is not modified.
func Filter(fares []Fare, q Query) []Fare {
	text := search.Normalize(q.Text)
	out := make([]Fare, 0, len(fares))
	for _, f := range fares {
		if q.Region != "" && f.Region != q.Region {
			continue
		}
		if !strings.Contains(search.Normalize(f.Destination), text) &&
			!strings.Contains(search.Normalize(f.Region), text) {
			continue
		}
		out = append(out, f)
	}
	return out
}

// Regions lists the distinct non-blank regions in ascending order.
func Regions(fares []Fare) []string {
	seen := make(map[string]struct{}, len(fares))
	out := make([]string, 0)
	for _, f := range fares {
		if strings.TrimSpace(f.Region) == "" {
			continue
		}
		if _, ok := seen[f.Region]; ok {
			continue
		}
		seen[f.Region] = struct{}{}
		out = append(out, f.Region)
	}
	sort.Strings(out)
	return out
}
