package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tabela/internal/modules/pricing"
)

type PricingHandler struct {
	pricing *pricing.Service
}

func NewPricingHandler(svc *pricing.Service) *PricingHandler {
	return &PricingHandler{pricing: svc}
}

type setRateReq struct {
	PerKm decimalInput `json:"price_per_km"`
}

func (h *PricingHandler) Get(c *gin.Context) {
	writeJSON(c, http.StatusOK, pricing.Rate{PerKm: h.pricing.PerKm()})
}

func (h *PricingHandler) Set(c *gin.Context) {
	var req setRateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	v, err := h.pricing.Set(c.Request.Context(), req.PerKm.String())
	if err != nil {
		writeDomainError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, pricing.Rate{PerKm: v})
}
