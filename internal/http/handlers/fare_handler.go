// README: Fare handlers for listing, filtering and admin edits of the fare table.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tabela/internal/modules/fare"
	"tabela/internal/types"
)

type FareHandler struct {
	fares *fare.Service
}

func NewFareHandler(svc *fare.Service) *FareHandler {
	return &FareHandler{fares: svc}
}

type fareReq struct {
	Region       string  `json:"region"`
	Destination  string  `json:"destination"`
	MeterValue   float64 `json:"meter_value"`
	CounterValue float64 `json:"counter_value"`
}

func (r fareReq) toFare(id types.ID) (fare.Fare, error) {
	meter, err := fare.Amount(r.MeterValue)
	if err != nil {
		return fare.Fare{}, err
	}
	counter, err := fare.Amount(r.CounterValue)
	if err != nil {
		return fare.Fare{}, err
	}
	return fare.Fare{
		ID:           id,
		Region:       r.Region,
		Destination:  r.Destination,
		MeterValue:   meter,
		CounterValue: counter,
	}, nil
}

func (h *FareHandler) List(c *gin.Context) {
	fares := h.fares.Search(fare.Query{Text: c.Query("q"), Region: c.Query("region")})
	writeJSON(c, http.StatusOK, gin.H{"fares": fares, "count": len(fares)})
}

func (h *FareHandler) Regions(c *gin.Context) {
	writeJSON(c, http.StatusOK, gin.H{"regions": h.fares.Regions()})
}

func (h *FareHandler) Create(c *gin.Context) {
	var req fareReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	f, err := req.toFare("")
	if err == nil {
		f, err = h.fares.Add(c.Request.Context(), f)
	}
	if err != nil {
		writeDomainError(c, err)
		return
	}
	writeJSON(c, http.StatusCreated, f)
}

func (h *FareHandler) Update(c *gin.Context) {
	var req fareReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	f, err := req.toFare(types.ID(c.Param("id")))
	if err == nil {
		f, err = h.fares.Update(c.Request.Context(), f)
	}
	if err != nil {
		writeDomainError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, f)
}

func (h *FareHandler) Delete(c *gin.Context) {
	if err := h.fares.Delete(c.Request.Context(), types.ID(c.Param("id"))); err != nil {
		writeDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *FareHandler) Import(c *gin.Context) {
	var req []fareReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	batch := make([]fare.Fare, len(req))
	for i, r := range req {
		f, err := r.toFare("")
		if err != nil {
			writeDomainError(c, err)
			return
		}
		batch[i] = f
	}
	added, err := h.fares.Import(c.Request.Context(), batch)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	writeJSON(c, http.StatusCreated, gin.H{"imported": len(added), "fares": added})
}
