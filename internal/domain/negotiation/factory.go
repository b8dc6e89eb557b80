package negotiation

// stateConstructors is the closed registry mapping every status to its state
// constructor. Adding a status constant without registering it here makes
// NewState fail with a ValidationError, which factory tests keep exhaustive.
var stateConstructors = map[Status]func(Context) (State, error){
	StatusProposalDraft:      newDraftState,
	StatusProposalSent:       newProposalSentState,
	StatusInNegotiation:      newInNegotiationState,
	StatusDocumentationPhase: newDocumentationPhaseState,
	StatusContractDrafting:   newContractDraftingState,
	StatusAwaitingSignatures: newAwaitingSignaturesState,
	StatusSold:               newSoldState,
	StatusRented:             newRentedState,
	StatusCancelled:          newCancelledState,
}

// NewState produces the state object matching the snapshot's status. The
// returned state's Status() always equals the snapshot's status.
func NewState(env Context) (State, error) {
	if env.Snapshot == nil {
		return nil, NewValidation("snapshot is required")
	}
	ctor, ok := stateConstructors[env.Snapshot.Status]
	if !ok {
		return nil, NewValidation("unknown negotiation status %q", env.Snapshot.Status)
	}
	return ctor(env)
}
