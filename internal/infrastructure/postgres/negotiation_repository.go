package postgres

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/realty-hub/realty-hub/internal/domain/negotiation"
)

// NegotiationRepository implements negotiation.Repository.
type NegotiationRepository struct {
	pool *pgxpool.Pool
}

func NewNegotiationRepository(pool *pgxpool.Pool) *NegotiationRepository {
	return &NegotiationRepository{pool: pool}
}

func (r *NegotiationRepository) Create(ctx context.Context, snap *negotiation.Snapshot) error {
	payment, err := marshalPayment(snap.Payment)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx, `
		INSERT INTO negotiations
		(negotiation_id, status, version, property_id, capturing_broker_id, selling_broker_id, buyer_client_id, final_value, payment, proposal_validity_date, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
	`, snap.ID, snap.Status, snap.Version, snap.PropertyID, snap.CapturingBrokerID, snap.SellingBrokerID, snap.BuyerClientID, snap.FinalValue, payment, snap.ProposalValidityDate, snap.CreatedAt, snap.UpdatedAt)
	return err
}

func (r *NegotiationRepository) GetByID(ctx context.Context, id uuid.UUID) (*negotiation.Snapshot, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT negotiation_id, status, version, property_id, capturing_broker_id, selling_broker_id, buyer_client_id, final_value, payment, proposal_validity_date, created_at, updated_at
		FROM negotiations WHERE negotiation_id=$1
	`, id)
	var snap negotiation.Snapshot
	var payment []byte
	if err := row.Scan(&snap.ID, &snap.Status, &snap.Version, &snap.PropertyID, &snap.CapturingBrokerID, &snap.SellingBrokerID, &snap.BuyerClientID, &snap.FinalValue, &payment, &snap.ProposalValidityDate, &snap.CreatedAt, &snap.UpdatedAt); err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	if len(payment) > 0 {
		var p negotiation.PaymentDetails
		if err := json.Unmarshal(payment, &p); err != nil {
			return nil, err
		}
		snap.Payment = &p
	}
	return &snap, nil
}

// UpdateStatus performs the optimistic-lock transition write. The version
// guard is the WHERE clause: when the stored status or version moved on, the
// update affects zero rows and the caller treats that as a conflict. A
// matching write also appends a row to the transition history.
func (r *NegotiationRepository) UpdateStatus(ctx context.Context, uow negotiation.UnitOfWork, upd negotiation.StatusUpdate) (int64, error) {
	db := dbFrom(r.pool, uow)
	tag, err := db.Exec(ctx, `
		UPDATE negotiations SET status=$1, version=version+1, updated_at=NOW()
		WHERE negotiation_id=$2 AND status=$3 AND version=$4
	`, upd.ToStatus, upd.ID, upd.FromStatus, upd.ExpectedVersion)
	if err != nil {
		return 0, err
	}
	affected := tag.RowsAffected()
	if affected == 0 {
		return 0, nil
	}
	metadata, err := marshalMetadata(upd.Metadata)
	if err != nil {
		return 0, err
	}
	_, err = db.Exec(ctx, `
		INSERT INTO negotiation_transitions
		(negotiation_id, from_status, to_status, actor_id, metadata, created_at)
		VALUES ($1,$2,$3,$4,$5,NOW())
	`, upd.ID, upd.FromStatus, upd.ToStatus, upd.ActorID, metadata)
	if err != nil {
		return 0, err
	}
	return affected, nil
}

// UpdateDraft rewrites the negotiable draft fields under the same version
// guard. Only a PROPOSAL_DRAFT row at the expected version matches.
func (r *NegotiationRepository) UpdateDraft(ctx context.Context, uow negotiation.UnitOfWork, upd negotiation.DraftUpdate) (int64, error) {
	db := dbFrom(r.pool, uow)
	payment, err := marshalPayment(&upd.Payment)
	if err != nil {
		return 0, err
	}
	tag, err := db.Exec(ctx, `
		UPDATE negotiations
		SET payment=$1, final_value=$2, proposal_validity_date=$3, selling_broker_id=$4, version=version+1, updated_at=NOW()
		WHERE negotiation_id=$5 AND status=$6 AND version=$7
	`, payment, upd.FinalValue, upd.ProposalValidityDate, upd.SellingBrokerID, upd.ID, negotiation.StatusProposalDraft, upd.ExpectedVersion)
	if err != nil {
		return 0, err
	}
	affected := tag.RowsAffected()
	if affected == 0 {
		return 0, nil
	}
	_, err = db.Exec(ctx, `
		INSERT INTO negotiation_transitions
		(negotiation_id, from_status, to_status, actor_id, metadata, created_at)
		VALUES ($1,$2,$2,$3,$4,NOW())
	`, upd.ID, negotiation.StatusProposalDraft, upd.ActorID, []byte(`{"action":"draft_updated"}`))
	if err != nil {
		return 0, err
	}
	return affected, nil
}

func marshalPayment(p *negotiation.PaymentDetails) ([]byte, error) {
	if p == nil {
		return nil, nil
	}
	return json.Marshal(p)
}

func marshalMetadata(m map[string]interface{}) ([]byte, error) {
	if len(m) == 0 {
		return nil, nil
	}
	return json.Marshal(m)
}
