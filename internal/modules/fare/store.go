// README: Fare store backed by PostgreSQL; the collection is replaced as a whole.
package fare

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"tabela/internal/types"
)

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

func (s *Store) List(ctx context.Context) ([]Fare, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, region, destination, meter_value, counter_value
		FROM fares
		ORDER BY position`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	fares := make([]Fare, 0)
	for rows.Next() {
		var f Fare
		var id string
		var meter, counter float64
		if err := rows.Scan(&id, &f.Region, &f.Destination, &meter, &counter); err != nil {
			return nil, err
		}
		f.ID = types.ID(id)
		f.MeterValue = types.MoneyFromFloat(meter)
		f.CounterValue = types.MoneyFromFloat(counter)
		fares = append(fares, f)
	}
	return fares, rows.Err()
}

// Replace swaps the stored collection for fares inside one transaction.
func (s *Store) Replace(ctx context.Context, fares []Fare) error {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `DELETE FROM fares`); err != nil {
		return fmt.Errorf("clear fares: %w", err)
	}
	_, err = tx.CopyFrom(ctx,
		pgx.Identifier{"fares"},
		[]string{"position", "id", "region", "destination", "meter_value", "counter_value"},
		pgx.CopyFromSlice(len(fares), func(i int) ([]any, error) {
			f := fares[i]
			return []any{i, string(f.ID), f.Region, f.Destination, f.MeterValue.Float(), f.CounterValue.Float()}, nil
		}),
	)
	if err != nil {
		return fmt.Errorf("copy fares: %w", err)
	}
	return tx.Commit(ctx)
}
