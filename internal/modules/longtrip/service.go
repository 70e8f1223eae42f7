// README: Long-trip service owns the in-memory trip list; mutations replace the whole list.
package longtrip

import (
	"context"
	"fmt"
	"math"
	"strings"
	"sync"

	"go.uber.org/zap"

	"tabela/internal/types"
)

type Repository interface {
	List(ctx context.Context) ([]LongTrip, error)
	Replace(ctx context.Context, trips []LongTrip) error
}

type Publisher interface {
	Publish(ctx context.Context, topic string) error
}

type Service struct {
	store Repository
	feed  Publisher
	log   *zap.Logger

	writeMu sync.Mutex
	mu      sync.RWMutex
	trips   []LongTrip
}

func NewService(store Repository, feed Publisher, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{store: store, feed: feed, log: log}
}

func (s *Service) Reload(ctx context.Context) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	trips, err := s.store.List(ctx)
	if err != nil {
		return fmt.Errorf("load long trips: %w", err)
	}
	s.swap(trips)
	return nil
}

func (s *Service) List() []LongTrip {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]LongTrip(nil), s.trips...)
}

func (s *Service) Search(text, kmQuery string) []LongTrip {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Filter(s.trips, text, kmQuery)
}

// MatchSaved looks destination up against the whole list, ignoring any filter.
func (s *Service) MatchSaved(destination string) (LongTrip, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return MatchSaved(s.trips, destination)
}

func (s *Service) Add(ctx context.Context, t LongTrip) (LongTrip, error) {
	t = clean(t)
	if err := t.validate(); err != nil {
		return LongTrip{}, err
	}
	if t.ID == "" {
		t.ID = types.NewID()
	}
	err := s.mutate(ctx, func(cur []LongTrip) ([]LongTrip, error) {
		return append(cur, t), nil
	})
	if err != nil {
		return LongTrip{}, err
	}
	return t, nil
}

func (s *Service) Update(ctx context.Context, t LongTrip) (LongTrip, error) {
	t = clean(t)
	if t.ID == "" {
		return LongTrip{}, ErrBadRequest
	}
	if err := t.validate(); err != nil {
		return LongTrip{}, err
	}
	err := s.mutate(ctx, func(cur []LongTrip) ([]LongTrip, error) {
		if !replaceByID(cur, t.ID, func(LongTrip) LongTrip { return t }) {
			return nil, ErrNotFound
		}
		return cur, nil
	})
	if err != nil {
		return LongTrip{}, err
	}
	return t, nil
}

// SyncDistance overwrites the kilometers of trip id with distance rounded
// to one decimal.
func (s *Service) SyncDistance(ctx context.Context, id types.ID, distance float64) (LongTrip, error) {
	if math.IsNaN(distance) || math.IsInf(distance, 0) || distance <= 0 {
		return LongTrip{}, ErrBadRequest
	}
	km := RoundKm(distance)

	var synced LongTrip
	err := s.mutate(ctx, func(cur []LongTrip) ([]LongTrip, error) {
		ok := replaceByID(cur, id, func(t LongTrip) LongTrip {
			t.Kilometers = km
			synced = t
			return t
		})
		if !ok {
			return nil, ErrNotFound
		}
		return cur, nil
	})
	if err != nil {
		return LongTrip{}, err
	}
	return synced, nil
}

func (s *Service) Delete(ctx context.Context, id types.ID) error {
	return s.mutate(ctx, func(cur []LongTrip) ([]LongTrip, error) {
		next := cur[:0]
		for _, t := range cur {
			if t.ID != id {
				next = append(next, t)
			}
		}
		if len(next) == len(cur) {
			return nil, ErrNotFound
		}
		return next, nil
	})
}

func (s *Service) Import(ctx context.Context, trips []LongTrip) ([]LongTrip, error) {
	if len(trips) == 0 {
		return nil, ErrBadRequest
	}
	batch := make([]LongTrip, len(trips))
	for i, t := range trips {
		t = clean(t)
		if err := t.validate(); err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		if t.ID == "" {
			t.ID = types.NewID()
		}
		batch[i] = t
	}
	err := s.mutate(ctx, func(cur []LongTrip) ([]LongTrip, error) {
		return append(cur, batch...), nil
	})
	if err != nil {
		return nil, err
	}
	return batch, nil
}

func (s *Service) mutate(ctx context.Context, fn func([]LongTrip) ([]LongTrip, error)) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	next, err := fn(s.List())
	if err != nil {
		return err
	}
	if err := s.store.Replace(ctx, next); err != nil {
		return fmt.Errorf("store long trips: %w", err)
	}
	s.swap(next)

	if s.feed != nil {
		if err := s.feed.Publish(ctx, Topic); err != nil {
			s.log.Warn("publish long trip change", zap.Error(err))
		}
	}
	return nil
}

func (s *Service) swap(trips []LongTrip) {
	s.mu.Lock()
	s.trips = trips
	s.mu.Unlock()
}

func replaceByID(trips []LongTrip, id types.ID, fn func(LongTrip) LongTrip) bool {
	found := false
	for i := range trips {
		if trips[i].ID == id {
			trips[i] = fn(trips[i])
			found = true
		}
	}
	return found
}

func clean(t LongTrip) LongTrip {
	t.ID = types.ID(strings.TrimSpace(string(t.ID)))
	t.City = strings.TrimSpace(t.City)
	return t
}
