package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hollowpine/frontier/internal/domain"
	"github.com/hollowpine/frontier/internal/repository"
)

// queries carries the shared instance and container query methods over a pool
// or a transaction
type queries struct {
	db dbtx
}

// Store is the pgx-backed implementation of repository.Store
type Store struct {
	queries
	pool *pgxpool.Pool
}

// NewStore creates a Store over a connection pool
func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{
		queries: queries{db: pool},
		pool:    pool,
	}
}

// BeginTx opens a transaction-scoped view of the store
func (s *Store) BeginTx(ctx context.Context) (repository.Tx, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return &storeTx{
		queries: queries{db: tx},
		tx:      tx,
	}, nil
}

// storeTx is a transaction-scoped repository.Tx
type storeTx struct {
	queries
	tx pgx.Tx
}

// Commit commits the transaction
func (t *storeTx) Commit(ctx context.Context) error {
	if err := t.tx.Commit(ctx); err != nil {
		if errors.Is(err, pgx.ErrTxClosed) {
			return domain.ErrTxClosed
		}
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// Rollback discards the transaction. Rolling back after a commit reports
// domain.ErrTxClosed, which callers treat as a no-op.
func (t *storeTx) Rollback(ctx context.Context) error {
	if err := t.tx.Rollback(ctx); err != nil {
		if errors.Is(err, pgx.ErrTxClosed) {
			return domain.ErrTxClosed
		}
		return fmt.Errorf("failed to rollback transaction: %w", err)
	}
	return nil
}
