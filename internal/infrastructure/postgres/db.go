package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/realty-hub/realty-hub/internal/domain/negotiation"
)

// NewPool creates a pgx connection pool.
func NewPool(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, err
	}
	return pgxpool.NewWithConfig(ctx, config)
}

// querier is satisfied by both *pgxpool.Pool and pgx.Tx, so repository
// methods run the same SQL inside or outside an open unit of work.
type querier interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// dbFrom resolves the querier for a call: the supplied open transaction when
// there is one, the pool otherwise.
func dbFrom(pool *pgxpool.Pool, uow negotiation.UnitOfWork) querier {
	if tx, ok := uow.(pgx.Tx); ok {
		return tx
	}
	return pool
}
