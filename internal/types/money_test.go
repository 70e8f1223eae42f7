package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMoneyFromFloat_Rounds(t *testing.T) {
	assert.Equal(t, int64(55650), MoneyFromFloat(556.5).Amount)
	assert.Equal(t, int64(1234), MoneyFromFloat(12.335).Amount)
	assert.Equal(t, DefaultCurrency, MoneyFromFloat(1).Currency)
}

func TestMoney_String(t *testing.T) {
	tests := []struct {
		in   Money
		want string
	}{
		{Money{Amount: 0, Currency: "BRL"}, "R$ 0,00"},
		{Money{Amount: 3550, Currency: "BRL"}, "R$ 35,50"},
		{Money{Amount: 123450, Currency: "BRL"}, "R$ 1.234,50"},
		{Money{Amount: 123456789, Currency: "BRL"}, "R$ 1.234.567,89"},
		{Money{Amount: -500}, "-R$ 5,00"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.in.String())
	}
}

func TestMoney_JSONCarriesFormatted(t *testing.T) {
	b, err := json.Marshal(MoneyFromFloat(550))
	assert.NoError(t, err)
	assert.JSONEq(t, `{"amount":55000,"currency":"BRL","formatted":"R$ 550,00"}`, string(b))

	var back Money
	assert.NoError(t, json.Unmarshal(b, &back))
	assert.Equal(t, MoneyFromFloat(550), back)
	assert.InDelta(t, 550.0, back.Float(), 1e-9)
}

func TestNewID_Unique(t *testing.T) {
	a, b := NewID(), NewID()
	assert.NotEmpty(t, a)
	assert.NotEqual(t, a, b)
}
