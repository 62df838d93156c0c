package store

import (
	"context"
	"sync"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Store owns the database handle. A single mutex serializes every call, so a
// multi-statement operation (transfer, durability tick, check-then-decrement)
// never interleaves with another writer. Each call additionally runs inside
// one database transaction: an error aborts the whole operation with no
// partial effect.
type Store struct {
	mu sync.Mutex
	db *pgxpool.Pool
}

func New(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

// Pool exposes the underlying handle for health checks.
func (s *Store) Pool() *pgxpool.Pool {
	return s.db
}

// Update runs fn inside a transaction under the global critical section.
// Commit happens only if fn returns nil.
func (s *Store) Update(ctx context.Context, fn func(tx pgx.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

// View runs fn read-only under the same critical section, so a reader never
// observes a half-applied multi-statement operation.
func (s *Store) View(ctx context.Context, fn func(tx pgx.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, pgx.TxOptions{AccessMode: pgx.ReadOnly})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit(ctx)
}
