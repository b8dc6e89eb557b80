package negotiation

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	domain "github.com/realty-hub/realty-hub/internal/domain/negotiation"
	"github.com/realty-hub/realty-hub/internal/domain/property"
)

// PropertyReader is the read surface the creation path needs.
type PropertyReader interface {
	GetByID(ctx context.Context, propertyID int64) (*property.Property, error)
}

// Service drives the negotiation state machine: it fetches the current
// snapshot, asks the factory for the matching state object and dispatches the
// requested operation.
type Service struct {
	negotiations domain.Repository
	properties   domain.PropertiesRepository
	propertyRead PropertyReader
	documents    domain.DocumentsRepository
	txManager    domain.TransactionManager
	events       domain.EventBus
	renderer     domain.ProposalRenderer
	logger       zerolog.Logger
}

// NewService creates a negotiation service. renderer may be nil; proposal
// document generation is then skipped on SendProposal and rejected on the
// explicit generation call.
func NewService(
	negotiations domain.Repository,
	properties domain.PropertiesRepository,
	propertyRead PropertyReader,
	documents domain.DocumentsRepository,
	txManager domain.TransactionManager,
	events domain.EventBus,
	renderer domain.ProposalRenderer,
	logger zerolog.Logger,
) *Service {
	return &Service{
		negotiations: negotiations,
		properties:   properties,
		propertyRead: propertyRead,
		documents:    documents,
		txManager:    txManager,
		events:       events,
		renderer:     renderer,
		logger:       logger.With().Str("service", "negotiation").Logger(),
	}
}

// CreateInput parameterizes negotiation creation.
type CreateInput struct {
	PropertyID        int64
	CapturingBrokerID int64
	BuyerClientID     *int64
}

// Create opens a PROPOSAL_DRAFT negotiation for an available property. The
// capturing broker and property are fixed for the negotiation's lifetime;
// exclusivity against concurrent creations rests on the storage layer's
// one-active-negotiation-per-property guarantee.
func (s *Service) Create(ctx context.Context, in CreateInput) (*domain.Snapshot, error) {
	prop, err := s.propertyRead.GetByID(ctx, in.PropertyID)
	if err != nil {
		return nil, err
	}
	if prop == nil {
		return nil, domain.NewValidation("property %d not found", in.PropertyID)
	}
	if prop.Status != property.StatusAvailable {
		return nil, domain.NewConflict("property %d is %s, not available for negotiation", prop.ID, prop.Status)
	}

	now := time.Now().UTC()
	snap := &domain.Snapshot{
		ID:                uuid.New(),
		Status:            domain.StatusProposalDraft,
		Version:           0,
		PropertyID:        in.PropertyID,
		CapturingBrokerID: in.CapturingBrokerID,
		BuyerClientID:     in.BuyerClientID,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := s.negotiations.Create(ctx, snap); err != nil {
		return nil, err
	}
	s.logger.Info().Str("negotiation_id", snap.ID.String()).Int64("property_id", in.PropertyID).Msg("negotiation created")
	return snap, nil
}

// Get fetches the current snapshot.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Snapshot, error) {
	snap, err := s.negotiations.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if snap == nil {
		return nil, domain.ErrNotFound
	}
	return snap, nil
}

// UpdateDraft rewrites the draft's negotiable fields.
func (s *Service) UpdateDraft(ctx context.Context, id uuid.UUID, in domain.DraftUpdateInput) (*domain.Snapshot, error) {
	st, err := s.stateFor(ctx, id)
	if err != nil {
		return nil, err
	}
	draft, ok := st.(*domain.DraftState)
	if !ok {
		return nil, opNotAllowed("update_draft", st)
	}
	snap, err := draft.UpdateDraft(ctx, in)
	return s.logOutcome("update_draft", id, snap, err)
}

// SendProposal transitions a draft to PROPOSAL_SENT, generating the proposal
// document afterwards when proposal data and a renderer are available.
func (s *Service) SendProposal(ctx context.Context, id uuid.UUID, actorID int64, proposal *domain.ProposalData, metadata map[string]interface{}) (*domain.Snapshot, error) {
	st, err := s.stateFor(ctx, id)
	if err != nil {
		return nil, err
	}
	draft, ok := st.(*domain.DraftState)
	if !ok {
		return nil, opNotAllowed("send_proposal", st)
	}
	snap, err := draft.SendProposal(ctx, actorID, proposal, metadata)
	if err != nil && snap != nil {
		// The transition committed; only document generation failed.
		s.logger.Warn().Err(err).Str("negotiation_id", id.String()).Msg("proposal sent but document generation failed")
		return snap, err
	}
	return s.logOutcome("send_proposal", id, snap, err)
}

// ApproveProposal moves PROPOSAL_SENT to IN_NEGOTIATION, reserving the
// property.
func (s *Service) ApproveProposal(ctx context.Context, id uuid.UUID, actorID int64, metadata map[string]interface{}) (*domain.Snapshot, error) {
	st, err := s.stateFor(ctx, id)
	if err != nil {
		return nil, err
	}
	sent, ok := st.(*domain.ProposalSentState)
	if !ok {
		return nil, opNotAllowed("approve_proposal", st)
	}
	snap, err := sent.ApproveProposal(ctx, actorID, metadata)
	return s.logOutcome("approve_proposal", id, snap, err)
}

// GenerateProposalDocument renders and stores the proposal document for a
// negotiation already in PROPOSAL_SENT.
func (s *Service) GenerateProposalDocument(ctx context.Context, id uuid.UUID, data domain.ProposalData) (uuid.UUID, error) {
	st, err := s.stateFor(ctx, id)
	if err != nil {
		return uuid.Nil, err
	}
	sent, ok := st.(*domain.ProposalSentState)
	if !ok {
		return uuid.Nil, opNotAllowed("generate_proposal_document", st)
	}
	return sent.GenerateAndStorePDF(ctx, data)
}

// RequestDocumentation moves IN_NEGOTIATION to DOCUMENTATION_PHASE.
func (s *Service) RequestDocumentation(ctx context.Context, id uuid.UUID, actorID int64, metadata map[string]interface{}) (*domain.Snapshot, error) {
	st, err := s.stateFor(ctx, id)
	if err != nil {
		return nil, err
	}
	neg, ok := st.(*domain.InNegotiationState)
	if !ok {
		return nil, opNotAllowed("request_documentation", st)
	}
	snap, err := neg.RequestDocumentation(ctx, actorID, metadata)
	return s.logOutcome("request_documentation", id, snap, err)
}

// MoveToContractDrafting verifies the document gate and moves to
// CONTRACT_DRAFTING.
func (s *Service) MoveToContractDrafting(ctx context.Context, id uuid.UUID, actorID int64, metadata map[string]interface{}) (*domain.Snapshot, error) {
	st, err := s.stateFor(ctx, id)
	if err != nil {
		return nil, err
	}
	docs, ok := st.(*domain.DocumentationPhaseState)
	if !ok {
		return nil, opNotAllowed("move_to_contract_drafting", st)
	}
	snap, err := docs.MoveToContractDrafting(ctx, actorID, metadata)
	return s.logOutcome("move_to_contract_drafting", id, snap, err)
}

// UploadFinalContract moves CONTRACT_DRAFTING to AWAITING_SIGNATURES.
func (s *Service) UploadFinalContract(ctx context.Context, id uuid.UUID, actorID int64, metadata map[string]interface{}) (*domain.Snapshot, error) {
	st, err := s.stateFor(ctx, id)
	if err != nil {
		return nil, err
	}
	drafting, ok := st.(*domain.ContractDraftingState)
	if !ok {
		return nil, opNotAllowed("upload_final_contract", st)
	}
	snap, err := drafting.UploadFinalContract(ctx, actorID, metadata)
	return s.logOutcome("upload_final_contract", id, snap, err)
}

// MarkSold closes the negotiation as a sale.
func (s *Service) MarkSold(ctx context.Context, id uuid.UUID, actorID int64, metadata map[string]interface{}) (*domain.Snapshot, error) {
	st, err := s.stateFor(ctx, id)
	if err != nil {
		return nil, err
	}
	awaiting, ok := st.(*domain.AwaitingSignaturesState)
	if !ok {
		return nil, opNotAllowed("mark_sold", st)
	}
	snap, err := awaiting.MarkSold(ctx, actorID, metadata)
	return s.logOutcome("mark_sold", id, snap, err)
}

// MarkRented closes the negotiation as a rental.
func (s *Service) MarkRented(ctx context.Context, id uuid.UUID, actorID int64, metadata map[string]interface{}) (*domain.Snapshot, error) {
	st, err := s.stateFor(ctx, id)
	if err != nil {
		return nil, err
	}
	awaiting, ok := st.(*domain.AwaitingSignaturesState)
	if !ok {
		return nil, opNotAllowed("mark_rented", st)
	}
	snap, err := awaiting.MarkRented(ctx, actorID, metadata)
	return s.logOutcome("mark_rented", id, snap, err)
}

// canceller is satisfied by every state with an outgoing cancel edge.
type canceller interface {
	Cancel(ctx context.Context, actorID int64, metadata map[string]interface{}) (*domain.Snapshot, error)
}

// Cancel transitions any cancellable state to CANCELLED, releasing the
// property.
func (s *Service) Cancel(ctx context.Context, id uuid.UUID, actorID int64, metadata map[string]interface{}) (*domain.Snapshot, error) {
	st, err := s.stateFor(ctx, id)
	if err != nil {
		return nil, err
	}
	c, ok := st.(canceller)
	if !ok {
		return nil, opNotAllowed("cancel", st)
	}
	snap, err := c.Cancel(ctx, actorID, metadata)
	return s.logOutcome("cancel", id, snap, err)
}

func (s *Service) stateFor(ctx context.Context, id uuid.UUID) (domain.State, error) {
	snap, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return domain.NewState(domain.Context{
		Snapshot:     snap,
		Negotiations: s.negotiations,
		Properties:   s.properties,
		Documents:    s.documents,
		TxManager:    s.txManager,
		Events:       s.events,
		Renderer:     s.renderer,
	})
}

func (s *Service) logOutcome(op string, id uuid.UUID, snap *domain.Snapshot, err error) (*domain.Snapshot, error) {
	if err != nil {
		s.logger.Warn().Err(err).Str("operation", op).Str("negotiation_id", id.String()).Msg("operation failed")
		return nil, err
	}
	s.logger.Info().
		Str("operation", op).
		Str("negotiation_id", id.String()).
		Str("status", string(snap.Status)).
		Int("version", snap.Version).
		Msg("operation applied")
	return snap, nil
}

func opNotAllowed(op string, st domain.State) error {
	return domain.NewConflict("operation %s is not allowed in status %s", op, st.Status())
}
