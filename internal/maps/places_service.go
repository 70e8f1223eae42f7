package maps

import (
	"context"
	"fmt"
	"strings"

	"googlemaps.github.io/maps"
)

// Prediction is a simplified autocomplete result.
type Prediction struct {
	Description string
	PlaceID     string
}

// PlacesService handles interactions with Google Places API.
type PlacesService struct {
	client   *maps.Client
	language string
	country  string
}

// NewPlacesService creates a new PlacesService with the given API Key.
// Predictions are in Brazilian Portuguese and restricted to Brazil.
func NewPlacesService(apiKey string) (*PlacesService, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &PlacesService{client: client, language: "pt-BR", country: "BR"}, nil
}

// Autocomplete returns place predictions for a partially typed address.
func (s *PlacesService) Autocomplete(ctx context.Context, input string) ([]Prediction, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, nil
	}

	r := &maps.PlaceAutocompleteRequest{
		Input:        input,
		Language:     s.language,
		Components:   map[maps.Component][]string{maps.ComponentCountry: {s.country}},
		SessionToken: maps.NewPlaceAutocompleteSessionToken(),
	}

	resp, err := s.client.PlaceAutocomplete(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("places api error: %w", err)
	}

	results := make([]Prediction, 0, len(resp.Predictions))
	for _, p := range resp.Predictions {
		if p.Description == "" {
			continue
		}
		results = append(results, Prediction{Description: p.Description, PlaceID: p.PlaceID})
	}
	return results, nil
}
