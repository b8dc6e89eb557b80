package negotiation_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/realty-hub/realty-hub/internal/domain/negotiation"
)

func TestNewStateCoversEveryStatus(t *testing.T) {
	broker := int64(101)
	statuses := []negotiation.Status{
		negotiation.StatusProposalDraft,
		negotiation.StatusProposalSent,
		negotiation.StatusInNegotiation,
		negotiation.StatusDocumentationPhase,
		negotiation.StatusContractDrafting,
		negotiation.StatusAwaitingSignatures,
		negotiation.StatusSold,
		negotiation.StatusRented,
		negotiation.StatusCancelled,
	}
	for _, status := range statuses {
		snap := &negotiation.Snapshot{
			ID:                uuid.New(),
			Status:            status,
			Version:           1,
			PropertyID:        10,
			CapturingBrokerID: broker,
			SellingBrokerID:   &broker,
		}
		st, err := negotiation.NewState(negotiation.Context{Snapshot: snap})
		require.NoError(t, err, "status %s", status)
		require.Equal(t, status, st.Status())
	}
}

func TestNewStateUnknownStatus(t *testing.T) {
	snap := &negotiation.Snapshot{ID: uuid.New(), Status: negotiation.Status("HAGGLING")}
	_, err := negotiation.NewState(negotiation.Context{Snapshot: snap})
	require.Error(t, err)
	require.True(t, negotiation.IsValidation(err))
}

func TestNewStateNilSnapshot(t *testing.T) {
	_, err := negotiation.NewState(negotiation.Context{})
	require.Error(t, err)
	require.True(t, negotiation.IsValidation(err))
}

func TestContractDraftingEntryGuard(t *testing.T) {
	snap := &negotiation.Snapshot{
		ID:                uuid.New(),
		Status:            negotiation.StatusContractDrafting,
		Version:           3,
		PropertyID:        10,
		CapturingBrokerID: 101,
	}
	_, err := negotiation.NewState(negotiation.Context{Snapshot: snap})
	require.Error(t, err)
	require.True(t, negotiation.IsValidation(err), "missing selling broker must fail at construction")
}
