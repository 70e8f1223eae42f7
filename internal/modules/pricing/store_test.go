package pricing

import (
	"context"
	"os"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tabela/internal/infra"
)

func newMiniRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return mr, rdb
}

func TestStore_CachedRateSkipsDatabase(t *testing.T) {
	mr, rdb := newMiniRedis(t)
	require.NoError(t, mr.Set(cacheKey, "2.75"))

	// A nil pool would panic if the database were queried.
	store := NewStore(nil, rdb)
	v, err := store.GetPerKm(context.Background())
	require.NoError(t, err)
	assert.InDelta(t, 2.75, v, 1e-9)
}

func TestStore_CacheWrite(t *testing.T) {
	mr, rdb := newMiniRedis(t)
	store := NewStore(nil, rdb)

	store.cache(context.Background(), 3.2)
	got, err := mr.Get(cacheKey)
	require.NoError(t, err)
	assert.Equal(t, "3.2", got)
	assert.True(t, mr.TTL(cacheKey) > 0)

	_, ok := NewStore(nil, nil).cached(context.Background())
	assert.False(t, ok)
}

func TestStore_Postgres(t *testing.T) {
	dsn := os.Getenv("TABELA_TEST_DSN")
	if dsn == "" {
		t.Skip("TABELA_TEST_DSN not set; skipping DB-backed tests")
	}
	require.NoError(t, infra.Migrate(dsn))

	ctx := context.Background()
	db, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(db.Close)
	_, err = db.Exec(ctx, `DELETE FROM settings WHERE key = $1`, SettingKey)
	require.NoError(t, err)

	mr, rdb := newMiniRedis(t)
	store := NewStore(db, rdb)

	_, err = store.GetPerKm(ctx)
	assert.ErrorIs(t, err, ErrNotSet)

	require.NoError(t, store.SetPerKm(ctx, 2.9))
	mr.FlushAll()

	v, err := store.GetPerKm(ctx)
	require.NoError(t, err)
	assert.InDelta(t, 2.9, v, 1e-9)
	assert.True(t, mr.Exists(cacheKey), "read should repopulate the cache")
}
