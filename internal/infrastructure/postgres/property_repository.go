package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/realty-hub/realty-hub/internal/domain/negotiation"
	"github.com/realty-hub/realty-hub/internal/domain/property"
)

// PropertyRepository implements negotiation.PropertiesRepository.
type PropertyRepository struct {
	pool *pgxpool.Pool
}

func NewPropertyRepository(pool *pgxpool.Pool) *PropertyRepository {
	return &PropertyRepository{pool: pool}
}

func (r *PropertyRepository) GetValue(ctx context.Context, uow negotiation.UnitOfWork, propertyID int64) (float64, error) {
	var value float64
	err := dbFrom(r.pool, uow).QueryRow(ctx, `
		SELECT value FROM properties WHERE id=$1
	`, propertyID).Scan(&value)
	if err == pgx.ErrNoRows {
		return 0, fmt.Errorf("property %d not found", propertyID)
	}
	return value, err
}

func (r *PropertyRepository) UpdateLifecycleStatus(ctx context.Context, uow negotiation.UnitOfWork, propertyID int64, status property.Status) error {
	return r.setStatus(ctx, uow, propertyID, status)
}

func (r *PropertyRepository) MarkUnderNegotiation(ctx context.Context, uow negotiation.UnitOfWork, propertyID int64) error {
	return r.setStatus(ctx, uow, propertyID, property.StatusUnderNegotiation)
}

func (r *PropertyRepository) MarkAvailable(ctx context.Context, uow negotiation.UnitOfWork, propertyID int64) error {
	return r.setStatus(ctx, uow, propertyID, property.StatusAvailable)
}

func (r *PropertyRepository) setStatus(ctx context.Context, uow negotiation.UnitOfWork, propertyID int64, status property.Status) error {
	tag, err := dbFrom(r.pool, uow).Exec(ctx, `
		UPDATE properties SET status=$1, updated_at=NOW() WHERE id=$2
	`, status, propertyID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("property %d not found", propertyID)
	}
	return nil
}

// GetByID reads a full property row. Used by the creation path to check
// availability before opening a negotiation.
func (r *PropertyRepository) GetByID(ctx context.Context, propertyID int64) (*property.Property, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, address, value, status, broker_id, created_at, updated_at
		FROM properties WHERE id=$1
	`, propertyID)
	var p property.Property
	if err := row.Scan(&p.ID, &p.Address, &p.Value, &p.Status, &p.BrokerID, &p.CreatedAt, &p.UpdatedAt); err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}
