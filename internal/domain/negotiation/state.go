package negotiation

import (
	"context"
)

// Context bundles a snapshot with the collaborators state operations need.
// Renderer and Events may be nil; operations that need them either skip the
// side effect (proposal rendering) or no-op (event emission is guarded).
type Context struct {
	Snapshot     *Snapshot
	Negotiations Repository
	Properties   PropertiesRepository
	Documents    DocumentsRepository
	TxManager    TransactionManager
	Events       EventBus
	Renderer     ProposalRenderer
}

// State exposes the operations legal in one negotiation status. Concrete
// state types add their own transition methods; callers obtain them through
// NewState and assert to the type matching the snapshot's status.
type State interface {
	Status() Status
}

// base carries the declared status and the operation context shared by all
// state types.
type base struct {
	status Status
	env    Context
}

func (b *base) Status() Status { return b.status }

// checkCurrent verifies the snapshot still matches the state's declared
// status. A mismatch means the snapshot went stale under a concurrent
// transition and must fail loudly rather than write.
func (b *base) checkCurrent() error {
	if cur := b.env.Snapshot.Status; cur != b.status {
		return NewConflict("negotiation %s is in status %s, expected %s",
			b.env.Snapshot.ID, cur, b.status)
	}
	return nil
}

// persistTransition is the shared transition primitive. It verifies the
// declared status, writes the status change under the optimistic-lock guard
// and returns a snapshot copy with the target status and version+1. When uow
// is nil it opens its own transaction; otherwise it joins the caller's, so
// composite operations stay within one atomic unit. inTx, when non-nil, runs
// inside the same transaction after the status write (coupled property
// updates ride on this hook).
func (b *base) persistTransition(
	ctx context.Context,
	target Status,
	actorID int64,
	metadata map[string]interface{},
	uow UnitOfWork,
	inTx func(ctx context.Context, uow UnitOfWork) error,
) (*Snapshot, error) {
	if err := b.checkCurrent(); err != nil {
		return nil, err
	}
	snap := b.env.Snapshot

	write := func(ctx context.Context, uow UnitOfWork) error {
		affected, err := b.env.Negotiations.UpdateStatus(ctx, uow, StatusUpdate{
			ID:              snap.ID,
			FromStatus:      b.status,
			ToStatus:        target,
			ExpectedVersion: snap.Version,
			ActorID:         actorID,
			Metadata:        metadata,
		})
		if err != nil {
			return err
		}
		if affected == 0 {
			return NewConflict("negotiation %s changed concurrently (expected version %d)",
				snap.ID, snap.Version)
		}
		if inTx != nil {
			return inTx(ctx, uow)
		}
		return nil
	}

	var err error
	if uow != nil {
		err = write(ctx, uow)
	} else {
		err = b.env.TxManager.Run(ctx, write)
	}
	if err != nil {
		return nil, err
	}

	next := *snap
	next.Status = target
	next.Version++
	return &next, nil
}

// cancelTransition moves to CANCELLED and releases the property in the same
// transaction. Shared by every state with an outgoing cancel edge.
func (b *base) cancelTransition(ctx context.Context, actorID int64, metadata map[string]interface{}) (*Snapshot, error) {
	return b.persistTransition(ctx, StatusCancelled, actorID, metadata, nil,
		func(ctx context.Context, uow UnitOfWork) error {
			return b.env.Properties.MarkAvailable(ctx, uow, b.env.Snapshot.PropertyID)
		})
}

// updatePropertyLifecycle sets the property's permanent outcome inside the
// caller's transaction. Free function: closing a deal acts on the property
// row, not on any state-instance data.
func updatePropertyLifecycle(ctx context.Context, uow UnitOfWork, properties PropertiesRepository, propertyID int64, status Status) error {
	target, err := propertyOutcome(status)
	if err != nil {
		return err
	}
	return properties.UpdateLifecycleStatus(ctx, uow, propertyID, target)
}

// emitDealClosed publishes the deal-closed event when a bus is configured.
func emitDealClosed(events EventBus, snap *Snapshot) {
	if events != nil {
		events.EmitDealClosed(snap.ID)
	}
}
