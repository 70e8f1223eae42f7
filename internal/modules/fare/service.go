// README: Fare service owns the in-memory fare table and funnels every mutation through one replace.
package fare

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"

	"tabela/internal/types"
)

// Repository persists the whole fare collection.
type Repository interface {
	List(ctx context.Context) ([]Fare, error)
	Replace(ctx context.Context, fares []Fare) error
}

// Publisher announces that a collection changed.
type Publisher interface {
	Publish(ctx context.Context, topic string) error
}

type Service struct {
	store Repository
	feed  Publisher
	log   *zap.Logger

	// writeMu serializes read-modify-replace cycles; mu guards the snapshot.
	writeMu sync.Mutex
	mu      sync.RWMutex
	fares   []Fare
}

func NewService(store Repository, feed Publisher, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{store: store, feed: feed, log: log}
}

// Reload re-reads the collection from the store.
func (s *Service) Reload(ctx context.Context) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	fares, err := s.store.List(ctx)
	if err != nil {
		return fmt.Errorf("load fares: %w", err)
	}
	s.swap(fares)
	return nil
}

// List returns a copy of the whole collection.
func (s *Service) List() []Fare {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Fare(nil), s.fares...)
}

func (s *Service) Search(q Query) []Fare {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Filter(s.fares, q)
}

func (s *Service) Regions() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Regions(s.fares)
}

// Add appends f, assigning an id when none is given.
func (s *Service) Add(ctx context.Context, f Fare) (Fare, error) {
	f = clean(f)
	if err := f.validate(); err != nil {
		return Fare{}, err
	}
	if f.ID == "" {
		f.ID = types.NewID()
	}
	err := s.mutate(ctx, func(cur []Fare) ([]Fare, error) {
		return append(cur, f), nil
	})
	if err != nil {
		return Fare{}, err
	}
	return f, nil
}

// Update replaces every fare sharing f.ID.
func (s *Service) Update(ctx context.Context, f Fare) (Fare, error) {
	f = clean(f)
	if f.ID == "" {
		return Fare{}, ErrBadRequest
	}
	if err := f.validate(); err != nil {
		return Fare{}, err
	}
	err := s.mutate(ctx, func(cur []Fare) ([]Fare, error) {
		found := false
		for i := range cur {
			if cur[i].ID == f.ID {
				cur[i] = f
				found = true
			}
		}
		if !found {
			return nil, ErrNotFound
		}
		return cur, nil
	})
	if err != nil {
		return Fare{}, err
	}
	return f, nil
}

func (s *Service) Delete(ctx context.Context, id types.ID) error {
	return s.mutate(ctx, func(cur []Fare) ([]Fare, error) {
		next := cur[:0]
		for _, f := range cur {
			if f.ID != id {
				next = append(next, f)
			}
		}
		if len(next) == len(cur) {
			return nil, ErrNotFound
		}
		return next, nil
	})
}

// Import appends fares in order. Invalid rows reject the whole batch.
func (s *Service) Import(ctx context.Context, fares []Fare) ([]Fare, error) {
	if len(fares) == 0 {
		return nil, ErrBadRequest
	}
	batch := make([]Fare, len(fares))
	for i, f := range fares {
		f = clean(f)
		if err := f.validate(); err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		if f.ID == "" {
			f.ID = types.NewID()
		}
		batch[i] = f
	}
	err := s.mutate(ctx, func(cur []Fare) ([]Fare, error) {
		return append(cur, batch...), nil
	})
	if err != nil {
		return nil, err
	}
	return batch, nil
}

// mutate applies fn to a private copy of the collection, persists the
// result, swaps it in and announces the change.
func (s *Service) mutate(ctx context.Context, fn func([]Fare) ([]Fare, error)) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	next, err := fn(s.List())
	if err != nil {
		return err
	}
	if err := s.store.Replace(ctx, next); err != nil {
		return fmt.Errorf("store fares: %w", err)
	}
	s.swap(next)

	if s.feed != nil {
		if err := s.feed.Publish(ctx, Topic); err != nil {
			s.log.Warn("publish fare change", zap.Error(err))
		}
	}
	return nil
}

func (s *Service) swap(fares []Fare) {
	s.mu.Lock()
	s.fares = fares
	s.mu.Unlock()
}

func clean(f Fare) Fare {
	f.ID = types.ID(strings.TrimSpace(string(f.ID)))
	f.Region = strings.TrimSpace(f.Region)
	f.Destination = strings.TrimSpace(f.Destination)
	return f
}
