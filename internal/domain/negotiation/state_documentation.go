package negotiation

import "context"

// DocumentationPhaseState exposes the operations legal in DOCUMENTATION_PHASE.
type DocumentationPhaseState struct {
	base
}

func newDocumentationPhaseState(env Context) (State, error) {
	return &DocumentationPhaseState{base{status: StatusDocumentationPhase, env: env}}, nil
}

// MoveToContractDrafting verifies the document gate and transitions to
// CONTRACT_DRAFTING. The count query and the status write share one
// transaction: the transition primitive joins the open unit of work instead
// of opening its own.
func (s *DocumentationPhaseState) MoveToContractDrafting(ctx context.Context, actorID int64, metadata map[string]interface{}) (*Snapshot, error) {
	if err := s.checkCurrent(); err != nil {
		return nil, err
	}
	snap := s.env.Snapshot
	if snap.SellingBrokerID == nil {
		return nil, NewValidation("selling broker must be set before contract drafting")
	}

	var out *Snapshot
	err := s.env.TxManager.Run(ctx, func(ctx context.Context, uow UnitOfWork) error {
		counts, err := s.env.Documents.CountByReview(ctx, uow, snap.ID)
		if err != nil {
			return err
		}
		if counts.PendingOrRejected > 0 || counts.Approved == 0 {
			return NewValidation("all required documents must be approved (%d pending or rejected, %d approved)",
				counts.PendingOrRejected, counts.Approved)
		}
		next, err := s.persistTransition(ctx, StatusContractDrafting, actorID, metadata, uow, nil)
		if err != nil {
			return err
		}
		out = next
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Cancel transitions to CANCELLED and releases the property.
func (s *DocumentationPhaseState) Cancel(ctx context.Context, actorID int64, metadata map[string]interface{}) (*Snapshot, error) {
	return s.cancelTransition(ctx, actorID, metadata)
}
