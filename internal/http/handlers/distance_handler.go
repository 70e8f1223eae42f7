// README: Distance handler resolves a road distance and prices it against the saved trips.
package handlers

import (
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"tabela/internal/modules/distance"
	"tabela/internal/modules/longtrip"
	"tabela/internal/modules/pricing"
	"tabela/internal/types"
)

const (
	routeNotFound       = "route not found, try a more specific address"
	distanceUnavailable = "distance lookup unavailable"
)

type DistanceHandler struct {
	resolver *distance.Resolver
	trips    *longtrip.Service
	pricing  *pricing.Service
}

func NewDistanceHandler(resolver *distance.Resolver, trips *longtrip.Service, pricing *pricing.Service) *DistanceHandler {
	return &DistanceHandler{resolver: resolver, trips: trips, pricing: pricing}
}

type distanceReq struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
}

type distanceResp struct {
	Distance           *float64          `json:"distance"`
	Sources            []distance.Source `json:"sources"`
	Price              *types.Money      `json:"price"`
	PricePerKm         float64           `json:"price_per_km"`
	MatchedTrip        *longtrip.Priced  `json:"matched_trip"`
	Divergent          bool              `json:"divergent"`
	SuggestedKmQuery   string            `json:"suggested_km_query,omitempty"`
	SuggestedTextQuery string            `json:"suggested_text_query,omitempty"`
	Message            string            `json:"message,omitempty"`
}

func (h *DistanceHandler) Resolve(c *gin.Context) {
	var req distanceReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	origin, destination := strings.TrimSpace(req.Origin), strings.TrimSpace(req.Destination)
	if origin == "" || destination == "" {
		writeError(c, http.StatusBadRequest, "origin and destination are required")
		return
	}
	if !h.resolver.Enabled() {
		writeError(c, http.StatusServiceUnavailable, distanceUnavailable)
		return
	}

	res := h.resolver.Resolve(c.Request.Context(), origin, destination)
	perKm := h.pricing.PerKm()
	out := distanceResp{Distance: res.Distance, Sources: res.Sources, PricePerKm: perKm}

	trip, matched := h.trips.MatchSaved(destination)
	if matched {
		priced := longtrip.Price([]longtrip.LongTrip{trip}, perKm)[0]
		out.MatchedTrip = &priced
	}

	if !res.Found() {
		out.Message = routeNotFound
		writeJSON(c, http.StatusOK, out)
		return
	}

	km := *res.Distance
	price := h.pricing.Price(km)
	out.Price = &price
	out.SuggestedKmQuery = strconv.FormatFloat(math.Floor(km), 'f', 0, 64)
	out.SuggestedTextQuery = destination
	if matched {
		out.Divergent = trip.Divergent(km)
	}
	writeJSON(c, http.StatusOK, out)
}
