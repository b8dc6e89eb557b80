package negotiation

import (
	"context"

	"github.com/google/uuid"

	"github.com/realty-hub/realty-hub/internal/domain/document"
	"github.com/realty-hub/realty-hub/internal/domain/property"
)

// UnitOfWork is an opaque handle to an open transaction. It is produced by
// the TransactionManager and threaded explicitly through repository calls so
// composite operations can group several writes into one atomic unit.
type UnitOfWork interface{}

// TransactionManager executes fn atomically: it opens a unit of work, commits
// on normal return and rolls back (rethrowing the error) otherwise.
type TransactionManager interface {
	Run(ctx context.Context, fn func(ctx context.Context, uow UnitOfWork) error) error
}

// StatusUpdate parameterizes an optimistic-lock status transition write.
type StatusUpdate struct {
	ID              uuid.UUID
	FromStatus      Status
	ToStatus        Status
	ExpectedVersion int
	ActorID         int64
	Metadata        map[string]interface{}
}

// DraftUpdate parameterizes an optimistic-lock draft field update.
type DraftUpdate struct {
	ID                   uuid.UUID
	ExpectedVersion      int
	ActorID              int64
	Payment              PaymentDetails
	FinalValue           *float64
	ProposalValidityDate *string
	SellingBrokerID      int64
}

// Repository defines negotiation persistence. Mutating writes take the open
// unit of work and return the number of affected rows; zero rows means the
// optimistic-lock guard did not match and the caller must treat the write as
// a conflict.
type Repository interface {
	Create(ctx context.Context, snap *Snapshot) error
	GetByID(ctx context.Context, id uuid.UUID) (*Snapshot, error)
	UpdateStatus(ctx context.Context, uow UnitOfWork, upd StatusUpdate) (int64, error)
	UpdateDraft(ctx context.Context, uow UnitOfWork, upd DraftUpdate) (int64, error)
}

// PropertiesRepository is the slice of property persistence the negotiation
// core needs. All writes participate in the caller's unit of work.
type PropertiesRepository interface {
	GetValue(ctx context.Context, uow UnitOfWork, propertyID int64) (float64, error)
	UpdateLifecycleStatus(ctx context.Context, uow UnitOfWork, propertyID int64, status property.Status) error
	MarkUnderNegotiation(ctx context.Context, uow UnitOfWork, propertyID int64) error
	MarkAvailable(ctx context.Context, uow UnitOfWork, propertyID int64) error
}

// DocumentsRepository persists negotiation documents.
type DocumentsRepository interface {
	CountByReview(ctx context.Context, uow UnitOfWork, negotiationID uuid.UUID) (document.ReviewCounts, error)
	SaveProposal(ctx context.Context, uow UnitOfWork, negotiationID uuid.UUID, pdf []byte) (uuid.UUID, error)
}

// EventBus publishes domain events after a transaction commits.
// Fire-and-forget: no return value is consumed.
type EventBus interface {
	EmitDealClosed(negotiationID uuid.UUID)
}

// ProposalRenderer renders a proposal into a binary document.
type ProposalRenderer interface {
	RenderProposal(ctx context.Context, data ProposalData) ([]byte, error)
}
