package longtrip

import (
	"context"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tabela/internal/infra"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()

	dsn := os.Getenv("TABELA_TEST_DSN")
	if dsn == "" {
		t.Skip("TABELA_TEST_DSN not set; skipping DB-backed tests")
	}
	require.NoError(t, infra.Migrate(dsn))

	ctx := context.Background()
	db, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(db.Close)

	_, err = db.Exec(ctx, "TRUNCATE TABLE long_trips")
	require.NoError(t, err)
	return NewStore(db)
}

func TestStoreKeepsOrderAndKilometers(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	want := []LongTrip{
		{ID: "b", City: "Ouro Preto", Kilometers: 98.7},
		{ID: "a", City: "Sete Lagoas", Kilometers: 72},
		{ID: "a", City: "Inhotim", Kilometers: 60.35},
	}
	require.NoError(t, store.Replace(ctx, want))

	got, err := store.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	require.NoError(t, store.Replace(ctx, want[:1]))
	got, err = store.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, want[:1], got)
}
