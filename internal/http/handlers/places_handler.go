package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tabela/internal/modules/places"
)

type PlacesHandler struct {
	places *places.Service
}

func NewPlacesHandler(svc *places.Service) *PlacesHandler {
	return &PlacesHandler{places: svc}
}

func (h *PlacesHandler) Suggest(c *gin.Context) {
	writeJSON(c, http.StatusOK, gin.H{"suggestions": h.places.Suggest(c.Request.Context(), c.Query("q"))})
}
