// README: Entry point; loads config, applies migrations, wires services and the change feed, serves HTTP.
package main

import (
	"context"
	"errors"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"tabela/internal/ai"
	"tabela/internal/config"
	httptransport "tabela/internal/http"
	"tabela/internal/infra"
	"tabela/internal/maps"
	"tabela/internal/modules/changefeed"
	"tabela/internal/modules/distance"
	"tabela/internal/modules/fare"
	"tabela/internal/modules/longtrip"
	"tabela/internal/modules/places"
	"tabela/internal/modules/pricing"
	"tabela/internal/types"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	logger, err := infra.NewLogger(cfg.Env)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = logger.Sync() }()

	if err := run(cfg, logger); err != nil {
		logger.Fatal("tabela-api stopped", zap.Error(err))
	}
}

func run(cfg config.Config, logger *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := infra.Migrate(cfg.DB.DSN); err != nil {
		return err
	}
	dbPool, err := infra.NewDB(ctx, cfg.DB.DSN)
	if err != nil {
		return err
	}
	defer dbPool.Close()

	var redisClient *redis.Client
	if cfg.Redis.Addr != "" {
		redisClient, err = infra.NewRedis(ctx, cfg.Redis.Addr)
		if err != nil {
			return err
		}
		defer redisClient.Close()
	} else {
		logger.Warn("redis disabled: changes stay local to this instance")
	}

	instanceID := string(types.NewID())
	hub := changefeed.NewHub(logger.Named("hub"))
	feed := changefeed.NewFeed(redisClient, instanceID, hub, logger.Named("changefeed"))

	fareSvc := fare.NewService(fare.NewStore(dbPool), feed, logger.Named("fare"))
	tripSvc := longtrip.NewService(longtrip.NewStore(dbPool), feed, logger.Named("longtrip"))
	priceSvc := pricing.NewService(pricing.NewStore(dbPool, redisClient), feed, logger.Named("pricing"), cfg.Pricing.DefaultPerKm)
	for _, r := range []changefeed.Reloader{fareSvc, tripSvc, priceSvc} {
		if err := r.Reload(ctx); err != nil {
			return err
		}
	}
	feed.Watch(fareSvc, tripSvc, priceSvc)

	gen, err := ai.New(ctx, cfg.AI)
	if err != nil {
		return err
	}
	if closer, ok := gen.(io.Closer); ok {
		defer closer.Close()
	}
	if gen == nil {
		logger.Warn("GEMINI_API_KEY not set: distance lookup disabled")
	}
	resolver := distance.NewResolver(gen, distance.Options{
		Region:      cfg.AI.RegionContext,
		Temperature: cfg.AI.Temperature,
	}, logger.Named("distance"))

	var autocomplete places.Autocompleter
	if cfg.Maps.APIKey != "" {
		placesSvc, err := maps.NewPlacesService(cfg.Maps.APIKey)
		if err != nil {
			return err
		}
		autocomplete = placesSvc
	}
	suggester := places.NewService(places.Popular, autocomplete, logger.Named("places"))

	if cfg.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := httptransport.NewRouter(httptransport.Deps{
		Fares:     fareSvc,
		LongTrips: tripSvc,
		Pricing:   priceSvc,
		Distance:  resolver,
		Places:    suggester,
		Changes:   hub,
	}, cfg.Admin.Key, logger.Named("http"))
	if cfg.Admin.Key == "" {
		logger.Warn("TABELA_ADMIN_KEY not set: admin routes are open")
	}

	go hub.Run(ctx)
	if redisClient != nil {
		go func() {
			if err := feed.Run(ctx); err != nil && ctx.Err() == nil {
				logger.Error("change feed stopped", zap.Error(err))
			}
		}()
	}

	server := &http.Server{Addr: cfg.HTTP.Addr, Handler: router}
	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", zap.String("addr", cfg.HTTP.Addr), zap.String("instance", instanceID))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
