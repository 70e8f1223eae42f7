package ai

import (
	"context"
	"fmt"

	"tabela/internal/config"
)

// New builds the Generator selected by cfg.Backend. It returns nil, nil
// when no credential is configured.
func New(ctx context.Context, cfg config.AIConfig) (Generator, error) {
	if !cfg.Enabled() {
		return nil, nil
	}
	switch cfg.Backend {
	case config.BackendLegacy:
		g, err := NewLegacyGenerator(ctx, cfg.GeminiKey, cfg.Model)
		if err != nil {
			return nil, err
		}
		return g, nil
	case config.BackendGenAI, "":
		g, err := NewGeminiGenerator(ctx, cfg.GeminiKey, cfg.Model)
		if err != nil {
			return nil, err
		}
		return g, nil
	default:
		return nil, fmt.Errorf("unknown AI backend %q", cfg.Backend)
	}
}
