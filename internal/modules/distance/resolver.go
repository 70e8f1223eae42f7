// README: Distance resolver asks the model for a road distance, with a search-grounded call first and a knowledge-only fallback.
package distance

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"tabela/internal/ai"
)

// Source is a web or map reference cited for a resolved distance.
type Source struct {
	Title string `json:"title"`
	URI   string `json:"uri"`
}

// Result is produced fresh for every query and never cached.
// Distance is nil when nothing could be resolved.
type Result struct {
	Distance *float64 `json:"distance"`
	Sources  []Source `json:"sources"`
}

// Found reports whether a distance was resolved.
func (r Result) Found() bool {
	return r.Distance != nil
}

type Options struct {
	// Region is added to the prompt to disambiguate place names.
	Region      string
	Temperature float32
}

type Resolver struct {
	gen  ai.Generator
	opts Options
	log  *zap.Logger
}

// NewResolver builds a resolver. A nil generator means no credential is
// configured, and every Resolve returns an empty result without calling out.
func NewResolver(gen ai.Generator, opts Options, log *zap.Logger) *Resolver {
	if log == nil {
		log = zap.NewNop()
	}
	return &Resolver{gen: gen, opts: opts, log: log}
}

func (r *Resolver) Enabled() bool {
	return r.gen != nil
}

// Resolve returns the driving distance in km between origin and destination.
// It never fails: every error ends in a Result with a nil Distance.
func (r *Resolver) Resolve(ctx context.Context, origin, destination string) Result {
	if r.gen == nil {
		r.log.Warn("distance lookup disabled: no Gemini API key configured")
		return empty()
	}
	log := r.log.With(zap.String("origin", origin), zap.String("destination", destination))

	if res, ok := r.attempt(ctx, log, origin, destination, true); ok {
		return res
	}
	if res, ok := r.attempt(ctx, log, origin, destination, false); ok {
		return res
	}
	log.Error("distance not found after fallback")
	return empty()
}

func (r *Resolver) attempt(ctx context.Context, log *zap.Logger, origin, destination string, search bool) (Result, bool) {
	log = log.With(zap.Bool("search", search))

	resp, err := r.gen.Generate(ctx, ai.Request{
		Prompt:      BuildPrompt(origin, destination, r.opts.Region, search),
		Search:      search,
		Temperature: r.opts.Temperature,
	})
	if errors.Is(err, ai.ErrSearchUnsupported) {
		log.Debug("backend cannot search, skipping grounded attempt")
		return Result{}, false
	}
	if err != nil {
		log.Warn("distance attempt failed", zap.Error(err))
		return Result{}, false
	}

	km, ok := Extract(resp.Text)
	if !ok {
		log.Warn("no distance in model answer", zap.String("text", resp.Text))
		return Result{}, false
	}
	log.Debug("distance resolved", zap.Float64("km", km))
	return Result{Distance: &km, Sources: sources(resp.Grounding)}, true
}

// sources keeps grounding entries that have both a title and a URI, in order.
func sources(entries []ai.GroundingEntry) []Source {
	out := make([]Source, 0, len(entries))
	for _, e := range entries {
		title, uri := strings.TrimSpace(e.Title), strings.TrimSpace(e.URI)
		if title == "" || uri == "" {
			continue
		}
		out = append(out, Source{Title: title, URI: uri})
	}
	return out
}

func empty() Result {
	return Result{Sources: []Source{}}
}
