package repository

import "context"

// Tx defines the interface for transactional operations. One engine invocation
// runs inside exactly one Tx; all touched instance and container records are
// committed together or not at all.
type Tx interface {
	Instance
	Container
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// Store opens transactions over the instance and container stores
type Store interface {
	Instance
	Container
	BeginTx(ctx context.Context) (Tx, error)
}
