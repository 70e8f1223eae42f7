// README: HTTP router registration.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tabela/internal/http/handlers"
	"tabela/internal/http/middleware"
	"tabela/internal/modules/changefeed"
	"tabela/internal/modules/distance"
	"tabela/internal/modules/fare"
	"tabela/internal/modules/longtrip"
	"tabela/internal/modules/places"
	"tabela/internal/modules/pricing"
)

// Deps are the services the API exposes.
type Deps struct {
	Fares     *fare.Service
	LongTrips *longtrip.Service
	Pricing   *pricing.Service
	Distance  *distance.Resolver
	Places    *places.Service
	Changes   *changefeed.Hub
}

func NewRouter(deps Deps, adminKey string, log *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Recovery(log), middleware.Logging(log))

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	api := r.Group("/api")
	admin := middleware.RequireAdmin(adminKey)

	fareHandler := handlers.NewFareHandler(deps.Fares)
	api.GET("/fares", fareHandler.List)
	api.GET("/fares/regions", fareHandler.Regions)
	api.POST("/fares", admin, fareHandler.Create)
	api.POST("/fares/import", admin, fareHandler.Import)
	api.PUT("/fares/:id", admin, fareHandler.Update)
	api.DELETE("/fares/:id", admin, fareHandler.Delete)

	tripHandler := handlers.NewLongTripHandler(deps.LongTrips, deps.Pricing)
	api.GET("/long-trips", tripHandler.List)
	api.POST("/long-trips", admin, tripHandler.Create)
	api.POST("/long-trips/import", admin, tripHandler.Import)
	api.PUT("/long-trips/:id", admin, tripHandler.Update)
	api.DELETE("/long-trips/:id", admin, tripHandler.Delete)
	api.POST("/long-trips/:id/sync", admin, tripHandler.Sync)

	pricingHandler := handlers.NewPricingHandler(deps.Pricing)
	api.GET("/pricing/per-km", pricingHandler.Get)
	api.PUT("/pricing/per-km", admin, pricingHandler.Set)

	distanceHandler := handlers.NewDistanceHandler(deps.Distance, deps.LongTrips, deps.Pricing)
	api.POST("/distance", distanceHandler.Resolve)

	placesHandler := handlers.NewPlacesHandler(deps.Places)
	api.GET("/places/suggest", placesHandler.Suggest)

	if deps.Changes != nil {
		changesHandler := handlers.NewChangesHandler(deps.Changes)
		api.GET("/changes", changesHandler.Subscribe)
	}

	return r
}
