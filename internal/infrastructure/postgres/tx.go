package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/realty-hub/realty-hub/internal/domain/negotiation"
)

// TxManager implements negotiation.TransactionManager on a pgx pool. The
// unit of work it hands to fn is the pgx.Tx itself; repositories unwrap it
// through dbFrom.
type TxManager struct {
	pool *pgxpool.Pool
}

func NewTxManager(pool *pgxpool.Pool) *TxManager {
	return &TxManager{pool: pool}
}

// Run executes fn in one transaction: commit on normal return, rollback and
// error propagation otherwise.
func (m *TxManager) Run(ctx context.Context, fn func(ctx context.Context, uow negotiation.UnitOfWork) error) error {
	tx, err := m.pool.Begin(ctx)
	if err != nil {
		return err
	}
	if err := fn(ctx, tx); err != nil {
		_ = tx.Rollback(ctx)
		return err
	}
	return tx.Commit(ctx)
}
