// README: Pricing service holds the current per-km rate and prices long trips with it.
package pricing

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"tabela/internal/search"
	"tabela/internal/types"
)

type Repository interface {
	GetPerKm(ctx context.Context) (float64, error)
	SetPerKm(ctx context.Context, v float64) error
}

type Publisher interface {
	Publish(ctx context.Context, topic string) error
}

type Service struct {
	store    Repository
	feed     Publisher
	log      *zap.Logger
	fallback float64

	writeMu sync.Mutex
	mu      sync.RWMutex
	perKm   float64
}

// NewService builds a service whose rate starts at fallback until Reload
// finds a stored one.
func NewService(store Repository, feed Publisher, log *zap.Logger, fallback float64) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{store: store, feed: feed, log: log, fallback: fallback, perKm: fallback}
}

func (s *Service) Reload(ctx context.Context) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	v, err := s.store.GetPerKm(ctx)
	switch {
	case errors.Is(err, ErrNotSet):
		v = s.fallback
	case err != nil:
		return fmt.Errorf("load price per km: %w", err)
	case !validRate(v):
		s.log.Warn("stored price per km is invalid, using default", zap.Float64("value", v))
		v = s.fallback
	}
	s.swap(v)
	return nil
}

func (s *Service) PerKm() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.perKm
}

// Set parses raw, accepting a comma decimal separator, and stores it.
// Invalid input returns ErrInvalidRate and leaves the current rate untouched.
func (s *Service) Set(ctx context.Context, raw string) (float64, error) {
	v, ok := search.ParseDecimal(raw)
	if !ok || !validRate(v) {
		return 0, ErrInvalidRate
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	if err := s.store.SetPerKm(ctx, v); err != nil {
		return 0, fmt.Errorf("store price per km: %w", err)
	}
	s.swap(v)

	if s.feed != nil {
		if err := s.feed.Publish(ctx, Topic); err != nil {
			s.log.Warn("publish price change", zap.Error(err))
		}
	}
	return v, nil
}

// Price returns km × the current rate.
func (s *Service) Price(km float64) types.Money {
	return types.MoneyFromFloat(km * s.PerKm())
}

func (s *Service) swap(v float64) {
	s.mu.Lock()
	s.perKm = v
	s.mu.Unlock()
}
