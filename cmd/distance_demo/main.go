package main

import (
	"context"
	"encoding/json"
	"flag"
	"io"
	"log"
	"os"

	"tabela/internal/ai"
	"tabela/internal/config"
	"tabela/internal/infra"
	"tabela/internal/modules/distance"
	"tabela/internal/modules/places"
)

func main() {
	origin := flag.String("origin", places.DefaultOrigin, "origin place or \"lat, lng\"")
	destination := flag.String("destination", "Ipatinga", "destination place")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	if !cfg.AI.Enabled() {
		log.Fatal("GEMINI_API_KEY environment variable not set")
	}

	logger, err := infra.NewLogger("development")
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = logger.Sync() }()

	ctx := context.Background()
	gen, err := ai.New(ctx, cfg.AI)
	if err != nil {
		log.Fatalf("Failed to initialize AI backend: %v", err)
	}
	if closer, ok := gen.(io.Closer); ok {
		defer closer.Close()
	}

	resolver := distance.NewResolver(gen, distance.Options{
		Region:      cfg.AI.RegionContext,
		Temperature: cfg.AI.Temperature,
	}, logger)

	res := resolver.Resolve(ctx, *origin, *destination)

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(res); err != nil {
		log.Fatal(err)
	}
}
