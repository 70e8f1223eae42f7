// README: LongTrip aggregate (fixed city + kilometers used for long-distance pricing).
package longtrip

import (
	"errors"
	"math"
	"strings"

	"tabela/internal/types"
)

// Topic is the change-feed topic published after every long-trip mutation.
const Topic = "long_trips"

// DivergenceKm is how far a resolved distance may drift from the saved
// kilometers before the trip is flagged as divergent.
const DivergenceKm = 5.0

var (
	ErrNotFound   = errors.New("long trip not found")
	ErrBadRequest = errors.New("bad request")
)

type LongTrip struct {
	ID         types.ID `json:"id"`
	City       string   `json:"city"`
	Kilometers float64  `json:"kilometers"`
}

// Priced is a trip together with its price at the current per-km rate.
type Priced struct {
	LongTrip
	Price types.Money `json:"price"`
}

func (t LongTrip) validate() error {
	if strings.TrimSpace(t.City) == "" {
		return ErrBadRequest
	}
	if math.IsNaN(t.Kilometers) || math.IsInf(t.Kilometers, 0) || t.Kilometers < 0 {
		return ErrBadRequest
	}
	return nil
}

// Divergent reports whether distance differs from the saved kilometers by
// more than DivergenceKm.
func (t LongTrip) Divergent(distance float64) bool {
	return math.Abs(distance-t.Kilometers) > DivergenceKm
}

// RoundKm rounds a distance to one decimal, the precision trips are stored with.
func RoundKm(v float64) float64 {
	return math.Round(v*10) / 10
}
