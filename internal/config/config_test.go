package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("API_KEY", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTP.Addr)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, BackendGenAI, cfg.AI.Backend)
	assert.Equal(t, "Minas Gerais, Brasil", cfg.AI.RegionContext)
	assert.InDelta(t, 0.1, float64(cfg.AI.Temperature), 1e-6)
	assert.InDelta(t, 2.50, cfg.Pricing.DefaultPerKm, 1e-9)
	assert.False(t, cfg.AI.Enabled())
}

func TestLoad_GeminiKeyFallsBackToAPIKey(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("API_KEY", "legacy-key")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "legacy-key", cfg.AI.GeminiKey)
	assert.True(t, cfg.AI.Enabled())
}

func TestLoad_Overrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("GEMINI_API_KEY", "k")
	t.Setenv("TABELA_HTTP_ADDR", ":9090")
	t.Setenv("TABELA_AI_BACKEND", "LEGACY")
	t.Setenv("TABELA_DEFAULT_PRICE_PER_KM", "3.2")
	t.Setenv("TABELA_REDIS_ADDR", "OFF")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.HTTP.Addr)
	assert.Equal(t, BackendLegacy, cfg.AI.Backend)
	assert.InDelta(t, 3.2, cfg.Pricing.DefaultPerKm, 1e-9)
	assert.Empty(t, cfg.Redis.Addr)
}

func TestLoad_RejectsUnknownBackend(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("TABELA_AI_BACKEND", "openai")

	_, err := Load()
	assert.Error(t, err)
}
