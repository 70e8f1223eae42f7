package fare

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"tabela/internal/types"
)

func brl(v float64) types.Money {
	return types.MoneyFromFloat(v)
}

var sampleFares = []Fare{
	{ID: "1", Region: "Zona Sul", Destination: "Savassi", MeterValue: brl(35.5), CounterValue: brl(40)},
	{ID: "2", Region: "Zona Norte", Destination: "Venda Nova", MeterValue: brl(22), CounterValue: brl(25)},
	{ID: "3", Region: "Pampulha", Destination: "Mineirão - Estádio", MeterValue: brl(48), CounterValue: brl(55)},
	{ID: "4", Region: "Zona Sul", Destination: "Belvedere", MeterValue: brl(41), CounterValue: brl(45)},
	{ID: "5", Region: "  ", Destination: "São José", MeterValue: brl(10), CounterValue: brl(12)},
}

func ids(fares []Fare) []string {
	out := make([]string, len(fares))
	for i, f := range fares {
		out[i] = string(f.ID)
	}
	return out
}

func TestFilter(t *testing.T) {
	tests := []struct {
		name string
		q    Query
		want []string
	}{
		{"empty query keeps everything in order", Query{}, []string{"1", "2", "3", "4", "5"}},
		{"destination match ignores accents", Query{Text: "mineirao"}, []string{"3"}},
		{"destination match ignores case", Query{Text: "SAVASSI"}, []string{"1"}},
		{"region text match", Query{Text: "zona sul"}, []string{"1", "4"}},
		{"region filter is exact", Query{Region: "Zona Sul"}, []string{"1", "4"}},
		{"region filter is case sensitive", Query{Region: "zona sul"}, []string{}},
		{"text and region combine", Query{Text: "bel", Region: "Zona Sul"}, []string{"4"}},
		{"accented query matches plain text", Query{Text: "SÃO"}, []string{"5"}},
		{"no match", Query{Text: "contagem"}, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(Filter(sampleFares, tt.q)))
		})
	}
}

func TestFilter_DoesNotModifyInput(t *testing.T) {
	in := append([]Fare(nil), sampleFares...)
	_ = Filter(in, Query{Text: "sul"})
	assert.Equal(t, sampleFares, in)
}

func TestRegions(t *testing.T) {
	assert.Equal(t, []string{"Pampulha", "Zona Norte", "Zona Sul"}, Regions(sampleFares))
	assert.Empty(t, Regions(nil))
}

func TestAmount(t *testing.T) {
	m, err := Amount(35.556)
	assert.NoError(t, err)
	assert.Equal(t, int64(3556), m.Amount)
	assert.Equal(t, "R$ 35,56", m.String())

	for _, bad := range []float64{-0.01, math.NaN(), math.Inf(1), 1e13} {
		_, err := Amount(bad)
		assert.ErrorIs(t, err, ErrBadRequest, "%v", bad)
	}
}
