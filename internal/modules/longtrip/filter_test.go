package longtrip

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var sampleTrips = []LongTrip{
	{ID: "1", City: "Ipatinga", Kilometers: 220},
	{ID: "2", City: "São João del-Rei", Kilometers: 190.5},
	{ID: "3", City: "Ouro Preto", Kilometers: 100},
	{ID: "4", City: "Governador Valadares", Kilometers: 300},
}

func tripIDs(trips []LongTrip) []string {
	out := make([]string, len(trips))
	for i, t := range trips {
		out[i] = string(t.ID)
	}
	return out
}

func TestFilter(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		kmQuery string
		want    []string
	}{
		{"no filters", "", "", []string{"1", "2", "3", "4"}},
		{"text only ignores km", "ipatinga", "", []string{"1"}},
		{"text is accent insensitive", "sao joao", "", []string{"2"}},
		{"km within absolute tolerance", "", "104", []string{"3"}},
		{"km outside tolerance", "", "94", []string{}},
		{"km within relative tolerance", "", "310", []string{"4"}},
		{"km beyond relative tolerance", "", "320", []string{}},
		{"km with decimal comma", "", "190,5", []string{"2"}},
		{"km literal substring of display", "", "0.5", []string{"2"}},
		{"text and km both apply", "preto", "220", []string{}},
		{"blank km is no filter", "ouro", "   ", []string{"3"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tripIDs(Filter(sampleTrips, tt.text, tt.kmQuery)))
		})
	}
}

func TestFilter_TextOnlyKeepsTripAfterDistanceDrift(t *testing.T) {
	trips := []LongTrip{{ID: "ipa", City: "Ipatinga", Kilometers: 220}}
	got := Filter(trips, "ipatinga", "")
	assert.Equal(t, trips, got)
}

func TestMatchSaved(t *testing.T) {
	trips := append([]LongTrip{{ID: "blank", City: "  "}}, sampleTrips...)

	tests := []struct {
		name        string
		destination string
		wantID      string
		wantOK      bool
	}{
		{"destination contains city", "Centro, Ipatinga - MG", "1", true},
		{"city contains destination", "valadares", "4", true},
		{"accents ignored", "Sao Joao del-Rei", "2", true},
		{"no match", "Uberlândia", "", false},
		{"blank destination", "  ", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := MatchSaved(trips, tt.destination)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantID, string(got.ID))
		})
	}
}

func TestDivergent(t *testing.T) {
	trip := LongTrip{City: "Ipatinga", Kilometers: 220}
	assert.False(t, trip.Divergent(225))
	assert.False(t, trip.Divergent(215))
	assert.True(t, trip.Divergent(225.1))
	assert.True(t, trip.Divergent(200))
}

func TestPrice_RecomputesWithRate(t *testing.T) {
	trips := []LongTrip{{ID: "a", Kilometers: 220}, {ID: "b", Kilometers: 100.5}}

	first := Price(trips, 2.5)
	assert.Equal(t, int64(55000), first[0].Price.Amount)
	assert.Equal(t, int64(25125), first[1].Price.Amount)

	second := Price(trips, 3)
	for i, p := range second {
		assert.Equal(t, trips[i], p.LongTrip)
		assert.Equal(t, int64(trips[i].Kilometers*300), p.Price.Amount)
	}
	assert.Equal(t, int64(55000), first[0].Price.Amount, "earlier view must not change")
}

func TestRoundKm(t *testing.T) {
	assert.InDelta(t, 217.5, RoundKm(217.46), 1e-9)
	assert.InDelta(t, 85.0, RoundKm(84.96), 1e-9)
}
