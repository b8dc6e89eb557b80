package negotiation

import "context"

// DraftState exposes the operations legal in PROPOSAL_DRAFT.
type DraftState struct {
	base
}

func newDraftState(env Context) (State, error) {
	return &DraftState{base{status: StatusProposalDraft, env: env}}, nil
}

// DraftUpdateInput carries the UpdateDraft parameters. PropertyValue, when
// supplied, is a read-only mirror of the stored property value and must match
// it exactly.
type DraftUpdateInput struct {
	ActorID              int64
	Payment              PaymentDetails
	FinalValue           *float64
	ProposalValidityDate *string
	SelfAsSellingBroker  bool
	SellingBrokerID      *int64
	PropertyValue        *float64
}

// UpdateDraft rewrites the draft's negotiable fields in one transaction,
// guarded by the optimistic lock on version. The effective selling broker is
// the capturing broker when SelfAsSellingBroker is set, otherwise the
// supplied SellingBrokerID, which is then required.
func (s *DraftState) UpdateDraft(ctx context.Context, in DraftUpdateInput) (*Snapshot, error) {
	if err := s.checkCurrent(); err != nil {
		return nil, err
	}
	snap := s.env.Snapshot

	var out *Snapshot
	err := s.env.TxManager.Run(ctx, func(ctx context.Context, uow UnitOfWork) error {
		stored, err := s.env.Properties.GetValue(ctx, uow, snap.PropertyID)
		if err != nil {
			return err
		}
		if in.PropertyValue != nil && *in.PropertyValue != stored {
			return NewValidation("property value is read only: stored value is %v, got %v",
				stored, *in.PropertyValue)
		}

		sellingBroker := snap.CapturingBrokerID
		if !in.SelfAsSellingBroker {
			if in.SellingBrokerID == nil {
				return NewValidation("sellingBrokerId is required when the capturing broker does not sell")
			}
			sellingBroker = *in.SellingBrokerID
		}

		affected, err := s.env.Negotiations.UpdateDraft(ctx, uow, DraftUpdate{
			ID:                   snap.ID,
			ExpectedVersion:      snap.Version,
			ActorID:              in.ActorID,
			Payment:              in.Payment,
			FinalValue:           in.FinalValue,
			ProposalValidityDate: in.ProposalValidityDate,
			SellingBrokerID:      sellingBroker,
		})
		if err != nil {
			return err
		}
		if affected == 0 {
			return NewConflict("negotiation %s changed concurrently (expected version %d)",
				snap.ID, snap.Version)
		}

		next := *snap
		next.Version++
		payment := in.Payment
		next.Payment = &payment
		next.FinalValue = in.FinalValue
		next.ProposalValidityDate = in.ProposalValidityDate
		next.SellingBrokerID = &sellingBroker
		out = &next
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// SendProposal transitions to PROPOSAL_SENT. When proposal data and a
// renderer are both configured, the proposal document is generated and stored
// after the transition committed; a rendering failure is reported alongside
// the already-transitioned snapshot and never rolls the transition back.
// Callers that need a document must pass proposal data; without a configured
// renderer the transition still completes and generation is deferred to a
// later explicit call.
func (s *DraftState) SendProposal(ctx context.Context, actorID int64, proposal *ProposalData, metadata map[string]interface{}) (*Snapshot, error) {
	next, err := s.persistTransition(ctx, StatusProposalSent, actorID, metadata, nil, nil)
	if err != nil {
		return nil, err
	}
	if proposal != nil && s.env.Renderer != nil {
		env := s.env
		env.Snapshot = next
		sent := &ProposalSentState{base{status: StatusProposalSent, env: env}}
		if _, err := sent.GenerateAndStorePDF(ctx, *proposal); err != nil {
			return next, err
		}
	}
	return next, nil
}
