// README: Pricing store backed by the PostgreSQL settings table with a Redis read-through cache.
package pricing

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

const cacheKey = "tabela:setting:" + SettingKey

type Store struct {
	db    *pgxpool.Pool
	redis *redis.Client
	ttl   time.Duration
}

// NewStore builds a store. redis may be nil, which disables caching.
func NewStore(db *pgxpool.Pool, redis *redis.Client) *Store {
	return &Store{db: db, redis: redis, ttl: 10 * time.Minute}
}

// GetPerKm returns the stored rate, or ErrNotSet when none was saved yet.
func (s *Store) GetPerKm(ctx context.Context) (float64, error) {
	if v, ok := s.cached(ctx); ok {
		return v, nil
	}

	var raw string
	err := s.db.QueryRow(ctx, `SELECT value FROM settings WHERE key = $1`, SettingKey).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, ErrNotSet
	}
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, err
	}
	s.cache(ctx, v)
	return v, nil
}

func (s *Store) SetPerKm(ctx context.Context, v float64) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO settings (key, value, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`,
		SettingKey, strconv.FormatFloat(v, 'f', -1, 64))
	if err != nil {
		return err
	}
	s.cache(ctx, v)
	return nil
}

// cache failures only cost a database round trip, so they are ignored.
func (s *Store) cached(ctx context.Context) (float64, bool) {
	if s.redis == nil {
		return 0, false
	}
	raw, err := s.redis.Get(ctx, cacheKey).Result()
	if err != nil {
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func (s *Store) cache(ctx context.Context, v float64) {
	if s.redis == nil {
		return
	}
	_ = s.redis.Set(ctx, cacheKey, strconv.FormatFloat(v, 'f', -1, 64), s.ttl).Err()
}
