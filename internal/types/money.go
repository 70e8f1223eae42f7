// README: Common money value object used across modules.
package types

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// DefaultCurrency is the currency every fare and trip price is quoted in.
const DefaultCurrency = "BRL"

// Money keeps amounts in centavos so repeated recomputation never drifts.
type Money struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

// MoneyFromFloat rounds a decimal value to the nearest centavo.
func MoneyFromFloat(v float64) Money {
	return Money{Amount: int64(math.Round(v * 100)), Currency: DefaultCurrency}
}

// Float is the amount in reais, for NUMERIC columns.
func (m Money) Float() float64 {
	return float64(m.Amount) / 100
}

// String renders the amount the way the fare table shows it, e.g. "R$ 1.234,50".
func (m Money) String() string {
	neg := m.Amount < 0
	cents := m.Amount
	if neg {
		cents = -cents
	}
	whole := strconv.FormatInt(cents/100, 10)

	var b strings.Builder
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}

	sign := ""
	if neg {
		sign = "-"
	}
	symbol := m.Currency
	if symbol == "" || symbol == DefaultCurrency {
		symbol = "R$"
	}
	return fmt.Sprintf("%s%s %s,%02d", sign, symbol, b.String(), cents%100)
}

// MarshalJSON adds the display form next to the raw amount.
func (m Money) MarshalJSON() ([]byte, error) {
	type plain Money
	return json.Marshal(struct {
		plain
		Formatted string `json:"formatted"`
	}{plain(m), m.String()})
}
