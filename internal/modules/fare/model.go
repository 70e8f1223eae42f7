// README: Fare aggregate (fixed taxi price for a short destination/region pair).
package fare

import (
	"errors"
	"math"
	"strings"

	"tabela/internal/types"
)

// Topic is the change-feed topic published after every fare mutation.
const Topic = "fares"

var (
	ErrNotFound   = errors.New("fare not found")
	ErrBadRequest = errors.New("bad request")
)

type Fare struct {
	ID           types.ID    `json:"id"`
	Region       string      `json:"region"`
	Destination  string      `json:"destination"`
	MeterValue   types.Money `json:"meter_value"`
	CounterValue types.Money `json:"counter_value"`
}

// Query narrows a fare listing. Region must match exactly when set.
type Query struct {
	Text   string
	Region string
}

func (f Fare) validate() error {
	if strings.TrimSpace(f.Destination) == "" {
		return ErrBadRequest
	}
	if f.MeterValue.Amount < 0 || f.CounterValue.Amount < 0 {
		return ErrBadRequest
	}
	return nil
}

// maxAmount is the largest value a NUMERIC(12,2) column holds.
const maxAmount = 9_999_999_999.99

// Amount converts a decimal input in reais to Money. Values that are not
// finite, negative or too large for the fares table are rejected.
func Amount(v float64) (types.Money, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 || v > maxAmount {
		return types.Money{}, ErrBadRequest
	}
	return types.MoneyFromFloat(v), nil
}
