package negotiation

import "context"

// ContractDraftingState exposes the operations legal in CONTRACT_DRAFTING.
// Construction enforces the state's entry condition: a negotiation cannot be
// in contract drafting without a selling broker.
type ContractDraftingState struct {
	base
}

func newContractDraftingState(env Context) (State, error) {
	if env.Snapshot.SellingBrokerID == nil {
		return nil, NewValidation("negotiation %s is in contract drafting without a selling broker", env.Snapshot.ID)
	}
	return &ContractDraftingState{base{status: StatusContractDrafting, env: env}}, nil
}

// UploadFinalContract transitions to AWAITING_SIGNATURES, tagging the
// transition metadata with the contract-uploaded action. Caller-supplied
// metadata keys are carried through; the action tag always wins.
func (s *ContractDraftingState) UploadFinalContract(ctx context.Context, actorID int64, metadata map[string]interface{}) (*Snapshot, error) {
	merged := make(map[string]interface{}, len(metadata)+1)
	for k, v := range metadata {
		merged[k] = v
	}
	merged["action"] = "contract_uploaded"
	return s.persistTransition(ctx, StatusAwaitingSignatures, actorID, merged, nil, nil)
}

// Cancel transitions to CANCELLED and releases the property.
func (s *ContractDraftingState) Cancel(ctx context.Context, actorID int64, metadata map[string]interface{}) (*Snapshot, error) {
	return s.cancelTransition(ctx, actorID, metadata)
}
