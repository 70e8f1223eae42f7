// README: Pricing rate for long trips (one price per kilometer for every trip).
package pricing

import (
	"errors"
	"math"
)

const (
	// Topic is the change-feed topic published after the rate changes.
	Topic = "price_per_km"
	// SettingKey names the rate row in the settings table and the Redis cache.
	SettingKey = "price_per_km"
)

var (
	ErrInvalidRate = errors.New("price per km must be a finite non-negative number")
	ErrNotSet      = errors.New("price per km not set")
)

// Rate is the view returned to clients.
type Rate struct {
	PerKm float64 `json:"price_per_km"`
}

func validRate(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}
