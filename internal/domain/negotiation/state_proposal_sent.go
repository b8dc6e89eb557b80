package negotiation

import (
	"context"

	"github.com/google/uuid"
)

// ProposalSentState exposes the operations legal in PROPOSAL_SENT.
type ProposalSentState struct {
	base
}

func newProposalSentState(env Context) (State, error) {
	return &ProposalSentState{base{status: StatusProposalSent, env: env}}, nil
}

// ApproveProposal transitions to IN_NEGOTIATION and reserves the property in
// the same transaction.
func (s *ProposalSentState) ApproveProposal(ctx context.Context, actorID int64, metadata map[string]interface{}) (*Snapshot, error) {
	return s.persistTransition(ctx, StatusInNegotiation, actorID, metadata, nil,
		func(ctx context.Context, uow UnitOfWork) error {
			return s.env.Properties.MarkUnderNegotiation(ctx, uow, s.env.Snapshot.PropertyID)
		})
}

// GenerateAndStorePDF renders the proposal and persists the document. It runs
// outside any transition transaction (it is invoked after commit), so a
// failure here leaves the committed transition intact; the call can simply be
// repeated.
func (s *ProposalSentState) GenerateAndStorePDF(ctx context.Context, data ProposalData) (uuid.UUID, error) {
	if s.env.Renderer == nil {
		return uuid.Nil, NewValidation("no proposal renderer configured")
	}
	if s.env.Snapshot == nil || s.env.Snapshot.ID == uuid.Nil {
		return uuid.Nil, NewValidation("negotiation id is required to store a proposal document")
	}
	pdf, err := s.env.Renderer.RenderProposal(ctx, data)
	if err != nil {
		return uuid.Nil, err
	}
	return s.env.Documents.SaveProposal(ctx, nil, s.env.Snapshot.ID, pdf)
}

// Cancel transitions to CANCELLED and releases the property.
func (s *ProposalSentState) Cancel(ctx context.Context, actorID int64, metadata map[string]interface{}) (*Snapshot, error) {
	return s.cancelTransition(ctx, actorID, metadata)
}
