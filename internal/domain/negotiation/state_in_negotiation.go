package negotiation

import "context"

// InNegotiationState exposes the operations legal in IN_NEGOTIATION.
type InNegotiationState struct {
	base
}

func newInNegotiationState(env Context) (State, error) {
	return &InNegotiationState{base{status: StatusInNegotiation, env: env}}, nil
}

// RequestDocumentation transitions to DOCUMENTATION_PHASE.
func (s *InNegotiationState) RequestDocumentation(ctx context.Context, actorID int64, metadata map[string]interface{}) (*Snapshot, error) {
	return s.persistTransition(ctx, StatusDocumentationPhase, actorID, metadata, nil, nil)
}

// Cancel transitions to CANCELLED and releases the property.
func (s *InNegotiationState) Cancel(ctx context.Context, actorID int64, metadata map[string]interface{}) (*Snapshot, error) {
	return s.cancelTransition(ctx, actorID, metadata)
}
