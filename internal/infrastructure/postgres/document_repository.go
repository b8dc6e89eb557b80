package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/realty-hub/realty-hub/internal/domain/document"
	"github.com/realty-hub/realty-hub/internal/domain/negotiation"
)

// DocumentRepository implements negotiation.DocumentsRepository.
type DocumentRepository struct {
	pool *pgxpool.Pool
}

func NewDocumentRepository(pool *pgxpool.Pool) *DocumentRepository {
	return &DocumentRepository{pool: pool}
}

// CountByReview aggregates the review states of the documents the client
// supplied for one negotiation. Generated proposal documents are excluded:
// they are system output, not reviewable client paperwork.
func (r *DocumentRepository) CountByReview(ctx context.Context, uow negotiation.UnitOfWork, negotiationID uuid.UUID) (document.ReviewCounts, error) {
	var counts document.ReviewCounts
	err := dbFrom(r.pool, uow).QueryRow(ctx, `
		SELECT
			COUNT(*) FILTER (WHERE review_status IN ($2, $3)),
			COUNT(*) FILTER (WHERE review_status = $4)
		FROM negotiation_documents
		WHERE negotiation_id=$1 AND kind <> $5
	`, negotiationID, document.ReviewPending, document.ReviewRejected, document.ReviewApproved, document.KindProposal).
		Scan(&counts.PendingOrRejected, &counts.Approved)
	return counts, err
}

// SaveProposal stores a rendered proposal document and returns its id.
func (r *DocumentRepository) SaveProposal(ctx context.Context, uow negotiation.UnitOfWork, negotiationID uuid.UUID, pdf []byte) (uuid.UUID, error) {
	documentID := uuid.New()
	_, err := dbFrom(r.pool, uow).Exec(ctx, `
		INSERT INTO negotiation_documents
		(document_id, negotiation_id, kind, review_status, content, created_at)
		VALUES ($1,$2,$3,$4,$5,$6)
	`, documentID, negotiationID, document.KindProposal, document.ReviewApproved, pdf, time.Now().UTC())
	if err != nil {
		return uuid.Nil, err
	}
	return documentID, nil
}
