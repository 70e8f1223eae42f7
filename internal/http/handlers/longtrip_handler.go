// README: Long-trip handlers; listings carry prices at the current per-km rate.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tabela/internal/modules/longtrip"
	"tabela/internal/modules/pricing"
	"tabela/internal/types"
)

type LongTripHandler struct {
	trips   *longtrip.Service
	pricing *pricing.Service
}

func NewLongTripHandler(trips *longtrip.Service, pricing *pricing.Service) *LongTripHandler {
	return &LongTripHandler{trips: trips, pricing: pricing}
}

type longTripReq struct {
	City       string  `json:"city"`
	Kilometers float64 `json:"kilometers"`
}

type syncReq struct {
	Distance float64 `json:"distance"`
}

func (h *LongTripHandler) List(c *gin.Context) {
	trips := h.trips.Search(c.Query("q"), c.Query("km"))
	perKm := h.pricing.PerKm()
	writeJSON(c, http.StatusOK, gin.H{
		"long_trips":   longtrip.Price(trips, perKm),
		"count":        len(trips),
		"price_per_km": perKm,
	})
}

func (h *LongTripHandler) Create(c *gin.Context) {
	var req longTripReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	t, err := h.trips.Add(c.Request.Context(), longtrip.LongTrip{City: req.City, Kilometers: req.Kilometers})
	if err != nil {
		writeDomainError(c, err)
		return
	}
	writeJSON(c, http.StatusCreated, h.priced(t))
}

func (h *LongTripHandler) Update(c *gin.Context) {
	var req longTripReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	t, err := h.trips.Update(c.Request.Context(), longtrip.LongTrip{
		ID:         types.ID(c.Param("id")),
		City:       req.City,
		Kilometers: req.Kilometers,
	})
	if err != nil {
		writeDomainError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, h.priced(t))
}

func (h *LongTripHandler) Delete(c *gin.Context) {
	if err := h.trips.Delete(c.Request.Context(), types.ID(c.Param("id"))); err != nil {
		writeDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *LongTripHandler) Import(c *gin.Context) {
	var req []longTripReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	batch := make([]longtrip.LongTrip, len(req))
	for i, r := range req {
		batch[i] = longtrip.LongTrip{City: r.City, Kilometers: r.Kilometers}
	}
	added, err := h.trips.Import(c.Request.Context(), batch)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	writeJSON(c, http.StatusCreated, gin.H{"imported": len(added), "long_trips": added})
}

// Sync overwrites a trip's kilometers with a freshly resolved distance.
func (h *LongTripHandler) Sync(c *gin.Context) {
	var req syncReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	t, err := h.trips.SyncDistance(c.Request.Context(), types.ID(c.Param("id")), req.Distance)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, h.priced(t))
}

func (h *LongTripHandler) priced(t longtrip.LongTrip) longtrip.Priced {
	return longtrip.Price([]longtrip.LongTrip{t}, h.pricing.PerKm())[0]
}
