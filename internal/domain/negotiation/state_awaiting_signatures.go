package negotiation

import (
	"context"

	"github.com/realty-hub/realty-hub/internal/domain/property"
)

// AwaitingSignaturesState exposes the operations legal in AWAITING_SIGNATURES.
type AwaitingSignaturesState struct {
	base
}

func newAwaitingSignaturesState(env Context) (State, error) {
	return &AwaitingSignaturesState{base{status: StatusAwaitingSignatures, env: env}}, nil
}

// MarkSold closes the deal as a sale: the negotiation moves to SOLD and the
// property to its permanent SOLD lifecycle status in one transaction, then
// the deal-closed event is emitted.
func (s *AwaitingSignaturesState) MarkSold(ctx context.Context, actorID int64, metadata map[string]interface{}) (*Snapshot, error) {
	return s.closeDeal(ctx, StatusSold, actorID, metadata)
}

// MarkRented closes the deal as a rental, symmetric to MarkSold.
func (s *AwaitingSignaturesState) MarkRented(ctx context.Context, actorID int64, metadata map[string]interface{}) (*Snapshot, error) {
	return s.closeDeal(ctx, StatusRented, actorID, metadata)
}

func (s *AwaitingSignaturesState) closeDeal(ctx context.Context, target Status, actorID int64, metadata map[string]interface{}) (*Snapshot, error) {
	next, err := s.persistTransition(ctx, target, actorID, metadata, nil,
		func(ctx context.Context, uow UnitOfWork) error {
			return updatePropertyLifecycle(ctx, uow, s.env.Properties, s.env.Snapshot.PropertyID, target)
		})
	if err != nil {
		return nil, err
	}
	emitDealClosed(s.env.Events, next)
	return next, nil
}

// Cancel transitions to CANCELLED and releases the property.
func (s *AwaitingSignaturesState) Cancel(ctx context.Context, actorID int64, metadata map[string]interface{}) (*Snapshot, error) {
	return s.cancelTransition(ctx, actorID, metadata)
}

// propertyOutcome maps a terminal negotiation status to the matching
// permanent property lifecycle status.
func propertyOutcome(status Status) (property.Status, error) {
	switch status {
	case StatusSold:
		return property.StatusSold, nil
	case StatusRented:
		return property.StatusRented, nil
	default:
		return "", NewValidation("status %s has no property outcome", status)
	}
}
