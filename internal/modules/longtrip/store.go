// README: Long-trip store backed by PostgreSQL; the collection is replaced as a whole.
package longtrip

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

func (s *Store) List(ctx context.Context) ([]LongTrip, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, city, kilometers
		FROM long_trips
		ORDER BY position`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	trips := make([]LongTrip, 0)
	for rows.Next() {
		var t LongTrip
		var id string
		if err := rows.Scan(&id, &t.City, &t.Kilometers); err != nil {
			return nil, err
		}
		t.ID = types.ID(id)
		trips = append(trips, t)
	}
	return trips, rows.Err()
}

func (s *Store) Replace(ctx context.Context, trips []LongTrip) error {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `DELETE FROM long_trips`); err != nil {
		return fmt.Errorf("clear long trips: %w", err)
	}
	_, err = tx.CopyFrom(ctx,
		pgx.Identifier{"long_trips"},
		[]string{"position", "id", "city", "kilometers"},
		pgx.CopyFromRows(rowsOf(trips)),
	)
	if err != nil {
		return fmt.Errorf("copy long trips: %w", err)
	}
	return tx.Commit(ctx)
}

func rowsOf(trips []LongTrip) [][]any {
	rows := make([][]any, len(trips))
	for i, t := range trips {
		rows[i] = []any{i, string(t.ID), t.City, t.Kilometers}
	}
	return rows
}
